package alegra

import "context"

// Client provides access to every resource exposed by the e-provider API.
// Construct one with pkg/alegraclient.New.
type Client interface {
	Company() CompanyClient
	Companies() CompaniesClient
	Payrolls() PayrollsClient
	Invoices() InvoicesClient
	CreditNotes() CreditNotesClient
	DebitNotes() DebitNotesClient
	TestSets() TestSetsClient
	Dian() DianClient
}

// CompanyClient operates on the account's own company record.
type CompanyClient interface {
	Get(ctx context.Context, id string) (*Company, error)
	Update(ctx context.Context, id string, company *Company) (*Company, error)
}

// CompaniesClient manages provider companies.
type CompaniesClient interface {
	Create(ctx context.Context, company *Company) (*Company, error)
	Get(ctx context.Context, id string) (*Company, error)
	Update(ctx context.Context, id string, company *Company) (*Company, error)
	List(ctx context.Context, params *QueryParams) ([]Company, error)
}

// PayrollsClient manages electronic payroll documents, including the
// replace and cancel adjustment flows.
type PayrollsClient interface {
	Create(ctx context.Context, payroll *Payroll) (*Payroll, error)
	Get(ctx context.Context, id string) (*Payroll, error)
	Update(ctx context.Context, id string, payroll *Payroll) (*Payroll, error)
	List(ctx context.Context, params *QueryParams) ([]Payroll, error)
	Replace(ctx context.Context, id string, payroll *Payroll) (*Payroll, error)
	Cancel(ctx context.Context, id string) (*Payroll, error)
}

// InvoicesClient manages electronic invoices.
type InvoicesClient interface {
	Create(ctx context.Context, invoice *Invoice) (*InvoiceResponse, error)
	Get(ctx context.Context, id string) (*InvoiceResponse, error)
	List(ctx context.Context, params *QueryParams) ([]InvoiceResponse, error)
	// FileXML fetches the signed XML document produced for an invoice.
	FileXML(ctx context.Context, id string) (*FileResponse, error)
}

// CreditNotesClient manages credit notes.
type CreditNotesClient interface {
	Create(ctx context.Context, note *CreditNote) (*NoteResponse, error)
	Get(ctx context.Context, id string) (*NoteResponse, error)
	List(ctx context.Context, params *QueryParams) ([]NoteResponse, error)
	FileXML(ctx context.Context, id string) (*FileResponse, error)
}

// DebitNotesClient manages debit notes.
type DebitNotesClient interface {
	Create(ctx context.Context, note *DebitNote) (*NoteResponse, error)
	Get(ctx context.Context, id string) (*NoteResponse, error)
	List(ctx context.Context, params *QueryParams) ([]NoteResponse, error)
	FileXML(ctx context.Context, id string) (*FileResponse, error)
}

// TestSetsClient manages DIAN habilitation test sets.
type TestSetsClient interface {
	Create(ctx context.Context, testSet *TestSet) (*TestSet, error)
	Get(ctx context.Context, id string) (*TestSet, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// DianClient exposes DIAN catalog resources.
type DianClient interface {
	List(ctx context.Context, params *QueryParams) ([]DianResource, error)
}
