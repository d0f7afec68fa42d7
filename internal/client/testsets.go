package client

import (
	"context"

	"github.com/einvoice-io/alegra-client/pkg/alegra"
)

// TestSetsClient implements alegra.TestSetsClient.
type TestSetsClient struct {
	handle *resourceHandle
}

// NewTestSetsClient creates a new test sets client.
func NewTestSetsClient(executor Executor) (*TestSetsClient, error) {
	handle, err := newResourceHandle("test-sets", registry{
		{kind: actionCreate}: {result: shapeOf[alegra.TestSet](), responseKey: "test_set"},
		{kind: actionGet}:    {result: shapeOf[alegra.TestSet](), responseKey: "test_set"},
		{kind: actionDelete}: {passThrough: true},
	}, executor)
	if err != nil {
		return nil, err
	}

	return &TestSetsClient{handle: handle}, nil
}

// Create implements alegra.TestSetsClient.Create.
func (c *TestSetsClient) Create(ctx context.Context, testSet *alegra.TestSet) (*alegra.TestSet, error) {
	result, err := c.handle.Create(ctx, testSet)
	if err != nil {
		return nil, err
	}

	return result.(*alegra.TestSet), nil
}

// Get implements alegra.TestSetsClient.Get.
func (c *TestSetsClient) Get(ctx context.Context, id string) (*alegra.TestSet, error) {
	result, err := c.handle.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	return result.(*alegra.TestSet), nil
}

// Delete implements alegra.TestSetsClient.Delete. Sandbox test sets are
// disposable; true means the server acknowledged with 200 or 204.
func (c *TestSetsClient) Delete(ctx context.Context, id string) (bool, error) {
	return c.handle.Delete(ctx, id)
}
