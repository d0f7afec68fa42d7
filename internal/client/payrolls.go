package client

import (
	"context"

	"github.com/einvoice-io/alegra-client/pkg/alegra"
)

// PayrollsClient implements alegra.PayrollsClient.
type PayrollsClient struct {
	handle *resourceHandle
}

// NewPayrollsClient creates a new payrolls client.
func NewPayrollsClient(executor Executor) (*PayrollsClient, error) {
	handle, err := newResourceHandle("payrolls", registry{
		{kind: actionCreate}:                  {result: shapeOf[alegra.Payroll](), responseKey: "payroll"},
		{kind: actionGet}:                     {result: shapeOf[alegra.Payroll](), responseKey: "payroll"},
		{kind: actionUpdate}:                  {result: shapeOf[alegra.Payroll](), responseKey: "payroll"},
		{kind: actionList}:                    {result: shapeOf[alegra.Payroll](), responseKey: "payrolls"},
		{kind: actionPerform, sub: "replace"}: {result: shapeOf[alegra.Payroll](), responseKey: "payroll"},
		{kind: actionPerform, sub: "cancel"}:  {result: shapeOf[alegra.Payroll](), responseKey: "payroll"},
	}, executor)
	if err != nil {
		return nil, err
	}

	return &PayrollsClient{handle: handle}, nil
}

// Create implements alegra.PayrollsClient.Create.
func (c *PayrollsClient) Create(ctx context.Context, payroll *alegra.Payroll) (*alegra.Payroll, error) {
	result, err := c.handle.Create(ctx, payroll)
	if err != nil {
		return nil, err
	}

	return result.(*alegra.Payroll), nil
}

// Get implements alegra.PayrollsClient.Get.
func (c *PayrollsClient) Get(ctx context.Context, id string) (*alegra.Payroll, error) {
	result, err := c.handle.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	return result.(*alegra.Payroll), nil
}

// Update implements alegra.PayrollsClient.Update.
func (c *PayrollsClient) Update(ctx context.Context, id string, payroll *alegra.Payroll) (*alegra.Payroll, error) {
	result, err := c.handle.Update(ctx, id, payroll)
	if err != nil {
		return nil, err
	}

	return result.(*alegra.Payroll), nil
}

// List implements alegra.PayrollsClient.List.
func (c *PayrollsClient) List(ctx context.Context, params *alegra.QueryParams) ([]alegra.Payroll, error) {
	results, err := c.handle.List(ctx, params.ToValues())
	if err != nil {
		return nil, err
	}

	payrolls := make([]alegra.Payroll, 0, len(results))
	for _, result := range results {
		payrolls = append(payrolls, *result.(*alegra.Payroll))
	}

	return payrolls, nil
}

// Replace implements alegra.PayrollsClient.Replace. It issues the replace
// adjustment flow against an already transmitted payroll.
func (c *PayrollsClient) Replace(ctx context.Context, id string, payroll *alegra.Payroll) (*alegra.Payroll, error) {
	result, err := c.handle.Perform(ctx, id, "replace", payroll)
	if err != nil {
		return nil, err
	}

	return result.(*alegra.Payroll), nil
}

// Cancel implements alegra.PayrollsClient.Cancel. No body is sent: the
// upstream treats a bodyless cancel as a full annulment.
func (c *PayrollsClient) Cancel(ctx context.Context, id string) (*alegra.Payroll, error) {
	result, err := c.handle.Perform(ctx, id, "cancel", nil)
	if err != nil {
		return nil, err
	}

	return result.(*alegra.Payroll), nil
}
