// Package client implements the alegra.Client interface on top of a
// config-driven action registry shared by every resource.
package client

import (
	"fmt"

	internalhttp "github.com/einvoice-io/alegra-client/internal/http"
	"github.com/einvoice-io/alegra-client/pkg/alegra"
)

// Client implements the alegra.Client interface.
type Client struct {
	httpClient *internalhttp.Client
	baseURL    string

	company     alegra.CompanyClient
	companies   alegra.CompaniesClient
	payrolls    alegra.PayrollsClient
	invoices    alegra.InvoicesClient
	creditNotes alegra.CreditNotesClient
	debitNotes  alegra.DebitNotesClient
	testSets    alegra.TestSetsClient
	dian        alegra.DianClient
}

// New creates a client from a validated configuration.
func New(config *alegra.Config) (*Client, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	baseURL := config.ResolveBaseURL()
	httpClient := internalhttp.NewClient(baseURL, config.APIKey, httpOptions(config)...)

	client := &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
	}

	if err := client.initializeResourceClients(); err != nil {
		return nil, err
	}

	return client, nil
}

// NewWithExecutor builds a client over a custom executor. Intended for tests
// and callers that bring their own transport.
func NewWithExecutor(executor Executor) (*Client, error) {
	client := &Client{}

	if err := client.initializeResourceClientsWith(executor); err != nil {
		return nil, err
	}

	return client, nil
}

// httpOptions builds executor options from config.
func httpOptions(config *alegra.Config) []internalhttp.Option {
	var opts []internalhttp.Option

	if config.Logger != nil {
		opts = append(opts, internalhttp.WithLogger(config.Logger))
	}

	if config.Debug {
		opts = append(opts, internalhttp.WithDebug(true))
	}

	if config.UserAgent != "" {
		opts = append(opts, internalhttp.WithUserAgent(config.UserAgent))
	}

	if config.HTTPTimeout > 0 {
		opts = append(opts, internalhttp.WithTimeout(config.HTTPTimeout))
	}

	if config.RetryMax > 0 {
		opts = append(opts, internalhttp.WithRetryConfig(config.RetryMax, config.RetryWaitMin, config.RetryWaitMax))
	}

	return opts
}

func (c *Client) initializeResourceClients() error {
	return c.initializeResourceClientsWith(c.httpClient)
}

func (c *Client) initializeResourceClientsWith(executor Executor) error {
	var err error

	if c.company, err = NewCompanyClient(executor); err != nil {
		return fmt.Errorf("initializing company client: %w", err)
	}

	if c.companies, err = NewCompaniesClient(executor); err != nil {
		return fmt.Errorf("initializing companies client: %w", err)
	}

	if c.payrolls, err = NewPayrollsClient(executor); err != nil {
		return fmt.Errorf("initializing payrolls client: %w", err)
	}

	if c.invoices, err = NewInvoicesClient(executor); err != nil {
		return fmt.Errorf("initializing invoices client: %w", err)
	}

	if c.creditNotes, err = NewCreditNotesClient(executor); err != nil {
		return fmt.Errorf("initializing credit notes client: %w", err)
	}

	if c.debitNotes, err = NewDebitNotesClient(executor); err != nil {
		return fmt.Errorf("initializing debit notes client: %w", err)
	}

	if c.testSets, err = NewTestSetsClient(executor); err != nil {
		return fmt.Errorf("initializing test sets client: %w", err)
	}

	if c.dian, err = NewDianClient(executor); err != nil {
		return fmt.Errorf("initializing dian client: %w", err)
	}

	return nil
}

// Company implements alegra.Client.Company.
func (c *Client) Company() alegra.CompanyClient {
	return c.company
}

// Companies implements alegra.Client.Companies.
func (c *Client) Companies() alegra.CompaniesClient {
	return c.companies
}

// Payrolls implements alegra.Client.Payrolls.
func (c *Client) Payrolls() alegra.PayrollsClient {
	return c.payrolls
}

// Invoices implements alegra.Client.Invoices.
func (c *Client) Invoices() alegra.InvoicesClient {
	return c.invoices
}

// CreditNotes implements alegra.Client.CreditNotes.
func (c *Client) CreditNotes() alegra.CreditNotesClient {
	return c.creditNotes
}

// DebitNotes implements alegra.Client.DebitNotes.
func (c *Client) DebitNotes() alegra.DebitNotesClient {
	return c.debitNotes
}

// TestSets implements alegra.Client.TestSets.
func (c *Client) TestSets() alegra.TestSetsClient {
	return c.testSets
}

// Dian implements alegra.Client.Dian.
func (c *Client) Dian() alegra.DianClient {
	return c.dian
}
