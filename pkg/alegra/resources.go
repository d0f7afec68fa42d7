package alegra

// Domain schemas for the e-provider API. These are plain data carriers: the
// resource layer treats them as opaque validated records and never inspects
// field semantics. Optional fields are pointers so that an unset field can be
// told apart from a zero value when request bodies are prepared.

// TaxCode identifies a tax responsibility code from the DIAN catalog.
type TaxCode struct {
	Code string `json:"code,omitempty"`
	Name string `json:"name,omitempty"`
}

// Address is a physical address as the upstream API expects it.
type Address struct {
	Address    string `json:"address,omitempty"`
	City       string `json:"city,omitempty"`
	Department string `json:"department,omitempty"`
	Country    string `json:"country,omitempty"`
}

// Customer is the receiving party on an invoice or note.
//
// DV is the identification check digit. It stays nullable and is stripped
// from request bodies when unset; see the body preparation rules in
// internal/client.
type Customer struct {
	Name                 string   `json:"name"                           validate:"required"`
	TaxCode              *TaxCode `json:"taxCode,omitempty"`
	OrganizationType     int      `json:"organizationType,omitempty"`
	IdentificationType   string   `json:"identificationType,omitempty"`
	IdentificationNumber *string  `json:"identificationNumber,omitempty"`
	DV                   *string  `json:"dv"`
	Email                string   `json:"email,omitempty"`
	Address              *Address `json:"address,omitempty"`
	Phone                string   `json:"phone,omitempty"`
}

// Company is a provider company registered with the platform.
type Company struct {
	ID                 string   `json:"id,omitempty"`
	Name               string   `json:"name"                         validate:"required"`
	Identification     string   `json:"identification,omitempty"`
	DV                 *string  `json:"dv,omitempty"`
	Email              string   `json:"email,omitempty"`
	Phone              string   `json:"phone,omitempty"`
	Address            *Address `json:"address,omitempty"`
	TaxCode            *TaxCode `json:"taxCode,omitempty"`
	OrganizationType   int      `json:"organizationType,omitempty"`
	RegimeCode         string   `json:"regimeCode,omitempty"`
	EconomicActivity   string   `json:"economicActivity,omitempty"`
	CertificateStatus  string   `json:"certificateStatus,omitempty"`
	EnabledForElectron bool     `json:"enabledForElectronicInvoicing,omitempty"`
}

// PayrollPeriod is the settlement window of a payroll document.
type PayrollPeriod struct {
	StartDate string `json:"startDate,omitempty"`
	EndDate   string `json:"endDate,omitempty"`
	IssueDate string `json:"issueDate,omitempty"`
}

// PayrollEmployee identifies the employee a payroll document covers.
type PayrollEmployee struct {
	FirstName            string  `json:"firstName,omitempty"`
	LastName             string  `json:"lastName,omitempty"`
	IdentificationType   string  `json:"identificationType,omitempty"`
	IdentificationNumber string  `json:"identificationNumber,omitempty"`
	Email                string  `json:"email,omitempty"`
	ContractType         string  `json:"contractType,omitempty"`
	Salary               float64 `json:"salary,omitempty"`
}

// PayrollItem is a single earning or deduction concept.
type PayrollItem struct {
	Concept  string  `json:"concept"`
	Quantity float64 `json:"quantity,omitempty"`
	Amount   float64 `json:"amount"`
}

// Payroll is an electronic payroll document.
type Payroll struct {
	ID         string           `json:"id,omitempty"`
	Number     string           `json:"number,omitempty"`
	Period     *PayrollPeriod   `json:"period,omitempty"`
	Employee   *PayrollEmployee `json:"employee,omitempty"`
	Earnings   []PayrollItem    `json:"earnings,omitempty"`
	Deductions []PayrollItem    `json:"deductions,omitempty"`
	Total      float64          `json:"total,omitempty"`
	CUNE       string           `json:"cune,omitempty"`
	Status     string           `json:"status,omitempty"`
}

// InvoiceItem is a billed line on an invoice or note.
type InvoiceItem struct {
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	Price       float64 `json:"price"`
	TaxRate     float64 `json:"taxRate,omitempty"`
	Total       float64 `json:"total,omitempty"`
}

// Invoice is an electronic invoice as submitted for issuance.
type Invoice struct {
	ID       string        `json:"id,omitempty"`
	Number   string        `json:"number,omitempty"`
	Date     string        `json:"date,omitempty"`
	DueDate  string        `json:"dueDate,omitempty"`
	Customer *Customer     `json:"customer,omitempty"`
	Items    []InvoiceItem `json:"items,omitempty"`
	Total    float64       `json:"total,omitempty"`
	Notes    string        `json:"notes,omitempty"`
}

// InvoiceResponse is an issued invoice as the platform reports it back,
// including the DIAN acceptance trail.
type InvoiceResponse struct {
	ID          string        `json:"id,omitempty"`
	Number      string        `json:"number,omitempty"`
	Date        string        `json:"date,omitempty"`
	Customer    *Customer     `json:"customer,omitempty"`
	Items       []InvoiceItem `json:"items,omitempty"`
	Total       float64       `json:"total,omitempty"`
	CUFE        string        `json:"cufe,omitempty"`
	QRCode      string        `json:"qrCode,omitempty"`
	Status      string        `json:"status,omitempty"`
	LegalStatus string        `json:"legalStatus,omitempty"`
}

// FileResponse carries a generated document artifact such as the signed XML.
type FileResponse struct {
	FileName string `json:"fileName,omitempty"`
	MimeType string `json:"mimeType,omitempty"`
	// Content is base64 encoded.
	Content string `json:"content" validate:"required"`
}

// BillingReference points a note back at the invoice it adjusts.
type BillingReference struct {
	Number string `json:"number,omitempty"`
	CUFE   string `json:"cufe,omitempty"`
	Date   string `json:"date,omitempty"`
}

// CreditNote decreases the value of a previously issued invoice.
type CreditNote struct {
	ID               string            `json:"id,omitempty"`
	Number           string            `json:"number,omitempty"`
	Date             string            `json:"date,omitempty"`
	Reason           string            `json:"reason,omitempty"`
	BillingReference *BillingReference `json:"billingReference,omitempty"`
	Customer         *Customer         `json:"customer,omitempty"`
	Items            []InvoiceItem     `json:"items,omitempty"`
	Total            float64           `json:"total,omitempty"`
}

// DebitNote increases the value of a previously issued invoice.
type DebitNote struct {
	ID               string            `json:"id,omitempty"`
	Number           string            `json:"number,omitempty"`
	Date             string            `json:"date,omitempty"`
	Reason           string            `json:"reason,omitempty"`
	BillingReference *BillingReference `json:"billingReference,omitempty"`
	Customer         *Customer         `json:"customer,omitempty"`
	Items            []InvoiceItem     `json:"items,omitempty"`
	Total            float64           `json:"total,omitempty"`
}

// NoteResponse is an issued credit or debit note as reported back by the
// platform.
type NoteResponse struct {
	ID          string        `json:"id,omitempty"`
	Number      string        `json:"number,omitempty"`
	Date        string        `json:"date,omitempty"`
	Customer    *Customer     `json:"customer,omitempty"`
	Items       []InvoiceItem `json:"items,omitempty"`
	Total       float64       `json:"total,omitempty"`
	CUDE        string        `json:"cude,omitempty"`
	QRCode      string        `json:"qrCode,omitempty"`
	Status      string        `json:"status,omitempty"`
	LegalStatus string        `json:"legalStatus,omitempty"`
}

// TestSet tracks the DIAN habilitation test set required before a company can
// issue production documents.
type TestSet struct {
	ID        string `json:"id,omitempty"`
	TestSetID string `json:"testSetId,omitempty"`
	Status    string `json:"status,omitempty"`
	Total     int    `json:"total,omitempty"`
	Accepted  int    `json:"accepted,omitempty"`
	Rejected  int    `json:"rejected,omitempty"`
}

// DianResource is an entry from the DIAN catalogs (document types,
// responsibility codes, and similar).
type DianResource struct {
	Code        string `json:"code,omitempty"`
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
	Type        string `json:"type,omitempty"`
}
