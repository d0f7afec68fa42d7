package client

import (
	"context"

	"github.com/einvoice-io/alegra-client/pkg/alegra"
)

// DianClient implements alegra.DianClient.
type DianClient struct {
	handle *resourceHandle
}

// NewDianClient creates a new DIAN catalog client.
func NewDianClient(executor Executor) (*DianClient, error) {
	handle, err := newResourceHandle("dian", registry{
		{kind: actionList}: {result: shapeOf[alegra.DianResource](), responseKey: "dian"},
	}, executor)
	if err != nil {
		return nil, err
	}

	return &DianClient{handle: handle}, nil
}

// List implements alegra.DianClient.List.
func (c *DianClient) List(ctx context.Context, params *alegra.QueryParams) ([]alegra.DianResource, error) {
	results, err := c.handle.List(ctx, params.ToValues())
	if err != nil {
		return nil, err
	}

	resources := make([]alegra.DianResource, 0, len(results))
	for _, result := range results {
		resources = append(resources, *result.(*alegra.DianResource))
	}

	return resources, nil
}
