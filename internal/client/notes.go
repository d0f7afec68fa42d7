package client

import (
	"context"

	"github.com/einvoice-io/alegra-client/pkg/alegra"
)

func noteRegistry(single, plural string) registry {
	return registry{
		{kind: actionCreate}: {result: shapeOf[alegra.NoteResponse](), responseKey: single},
		{kind: actionGet}:    {result: shapeOf[alegra.NoteResponse](), responseKey: single},
		{kind: actionList}:   {result: shapeOf[alegra.NoteResponse](), responseKey: plural},
		{kind: actionPerform, sub: "file_xml"}: {
			result:         shapeOf[alegra.FileResponse](),
			responseKey:    "file",
			endpointSuffix: "files/XML",
		},
	}
}

// CreditNotesClient implements alegra.CreditNotesClient.
type CreditNotesClient struct {
	handle *resourceHandle
}

// NewCreditNotesClient creates a new credit notes client.
func NewCreditNotesClient(executor Executor) (*CreditNotesClient, error) {
	handle, err := newResourceHandle("credit-notes", noteRegistry("creditNote", "creditNotes"), executor)
	if err != nil {
		return nil, err
	}

	return &CreditNotesClient{handle: handle}, nil
}

// Create implements alegra.CreditNotesClient.Create.
func (c *CreditNotesClient) Create(ctx context.Context, note *alegra.CreditNote) (*alegra.NoteResponse, error) {
	result, err := c.handle.Create(ctx, note)
	if err != nil {
		return nil, err
	}

	return result.(*alegra.NoteResponse), nil
}

// Get implements alegra.CreditNotesClient.Get.
func (c *CreditNotesClient) Get(ctx context.Context, id string) (*alegra.NoteResponse, error) {
	result, err := c.handle.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	return result.(*alegra.NoteResponse), nil
}

// List implements alegra.CreditNotesClient.List.
func (c *CreditNotesClient) List(ctx context.Context, params *alegra.QueryParams) ([]alegra.NoteResponse, error) {
	results, err := c.handle.List(ctx, params.ToValues())
	if err != nil {
		return nil, err
	}

	notes := make([]alegra.NoteResponse, 0, len(results))
	for _, result := range results {
		notes = append(notes, *result.(*alegra.NoteResponse))
	}

	return notes, nil
}

// FileXML implements alegra.CreditNotesClient.FileXML.
func (c *CreditNotesClient) FileXML(ctx context.Context, id string) (*alegra.FileResponse, error) {
	result, err := c.handle.Perform(ctx, id, "file_xml", nil)
	if err != nil {
		return nil, err
	}

	return result.(*alegra.FileResponse), nil
}

// DebitNotesClient implements alegra.DebitNotesClient.
type DebitNotesClient struct {
	handle *resourceHandle
}

// NewDebitNotesClient creates a new debit notes client.
func NewDebitNotesClient(executor Executor) (*DebitNotesClient, error) {
	handle, err := newResourceHandle("debit-notes", noteRegistry("debitNote", "debitNotes"), executor)
	if err != nil {
		return nil, err
	}

	return &DebitNotesClient{handle: handle}, nil
}

// Create implements alegra.DebitNotesClient.Create.
func (c *DebitNotesClient) Create(ctx context.Context, note *alegra.DebitNote) (*alegra.NoteResponse, error) {
	result, err := c.handle.Create(ctx, note)
	if err != nil {
		return nil, err
	}

	return result.(*alegra.NoteResponse), nil
}

// Get implements alegra.DebitNotesClient.Get.
func (c *DebitNotesClient) Get(ctx context.Context, id string) (*alegra.NoteResponse, error) {
	result, err := c.handle.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	return result.(*alegra.NoteResponse), nil
}

// List implements alegra.DebitNotesClient.List.
func (c *DebitNotesClient) List(ctx context.Context, params *alegra.QueryParams) ([]alegra.NoteResponse, error) {
	results, err := c.handle.List(ctx, params.ToValues())
	if err != nil {
		return nil, err
	}

	notes := make([]alegra.NoteResponse, 0, len(results))
	for _, result := range results {
		notes = append(notes, *result.(*alegra.NoteResponse))
	}

	return notes, nil
}

// FileXML implements alegra.DebitNotesClient.FileXML.
func (c *DebitNotesClient) FileXML(ctx context.Context, id string) (*alegra.FileResponse, error) {
	result, err := c.handle.Perform(ctx, id, "file_xml", nil)
	if err != nil {
		return nil, err
	}

	return result.(*alegra.FileResponse), nil
}
