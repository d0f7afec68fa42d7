package client

import (
	"context"

	"github.com/einvoice-io/alegra-client/pkg/alegra"
)

// InvoicesClient implements alegra.InvoicesClient.
type InvoicesClient struct {
	handle *resourceHandle
}

// NewInvoicesClient creates a new invoices client.
func NewInvoicesClient(executor Executor) (*InvoicesClient, error) {
	handle, err := newResourceHandle("invoices", registry{
		{kind: actionCreate}: {result: shapeOf[alegra.InvoiceResponse](), responseKey: "invoice"},
		{kind: actionGet}:    {result: shapeOf[alegra.InvoiceResponse](), responseKey: "invoice"},
		{kind: actionList}:   {result: shapeOf[alegra.InvoiceResponse](), responseKey: "invoices"},
		{kind: actionPerform, sub: "file_xml"}: {
			result:         shapeOf[alegra.FileResponse](),
			responseKey:    "file",
			endpointSuffix: "files/XML",
		},
	}, executor)
	if err != nil {
		return nil, err
	}

	return &InvoicesClient{handle: handle}, nil
}

// Create implements alegra.InvoicesClient.Create.
func (c *InvoicesClient) Create(ctx context.Context, invoice *alegra.Invoice) (*alegra.InvoiceResponse, error) {
	result, err := c.handle.Create(ctx, invoice)
	if err != nil {
		return nil, err
	}

	return result.(*alegra.InvoiceResponse), nil
}

// Get implements alegra.InvoicesClient.Get.
func (c *InvoicesClient) Get(ctx context.Context, id string) (*alegra.InvoiceResponse, error) {
	result, err := c.handle.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	return result.(*alegra.InvoiceResponse), nil
}

// List implements alegra.InvoicesClient.List.
func (c *InvoicesClient) List(ctx context.Context, params *alegra.QueryParams) ([]alegra.InvoiceResponse, error) {
	results, err := c.handle.List(ctx, params.ToValues())
	if err != nil {
		return nil, err
	}

	invoices := make([]alegra.InvoiceResponse, 0, len(results))
	for _, result := range results {
		invoices = append(invoices, *result.(*alegra.InvoiceResponse))
	}

	return invoices, nil
}

// FileXML implements alegra.InvoicesClient.FileXML. The subaction is served
// from a nested files path rather than a segment named after the action.
func (c *InvoicesClient) FileXML(ctx context.Context, id string) (*alegra.FileResponse, error) {
	result, err := c.handle.Perform(ctx, id, "file_xml", nil)
	if err != nil {
		return nil, err
	}

	return result.(*alegra.FileResponse), nil
}
