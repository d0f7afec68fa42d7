package client

import (
	"context"

	"github.com/einvoice-io/alegra-client/pkg/alegra"
)

// CompanyClient implements alegra.CompanyClient for the account's own
// company record.
type CompanyClient struct {
	handle *resourceHandle
}

// NewCompanyClient creates a new company client.
func NewCompanyClient(executor Executor) (*CompanyClient, error) {
	handle, err := newResourceHandle("company", registry{
		{kind: actionGet}:    {result: shapeOf[alegra.Company](), responseKey: "company"},
		{kind: actionUpdate}: {result: shapeOf[alegra.Company](), responseKey: "company"},
	}, executor)
	if err != nil {
		return nil, err
	}

	return &CompanyClient{handle: handle}, nil
}

// Get implements alegra.CompanyClient.Get.
func (c *CompanyClient) Get(ctx context.Context, id string) (*alegra.Company, error) {
	result, err := c.handle.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	return result.(*alegra.Company), nil
}

// Update implements alegra.CompanyClient.Update.
func (c *CompanyClient) Update(ctx context.Context, id string, company *alegra.Company) (*alegra.Company, error) {
	result, err := c.handle.Update(ctx, id, company)
	if err != nil {
		return nil, err
	}

	return result.(*alegra.Company), nil
}

// CompaniesClient implements alegra.CompaniesClient.
type CompaniesClient struct {
	handle *resourceHandle
}

// NewCompaniesClient creates a new companies client.
func NewCompaniesClient(executor Executor) (*CompaniesClient, error) {
	handle, err := newResourceHandle("companies", registry{
		{kind: actionCreate}: {result: shapeOf[alegra.Company](), responseKey: "company"},
		{kind: actionGet}:    {result: shapeOf[alegra.Company](), responseKey: "company"},
		{kind: actionUpdate}: {result: shapeOf[alegra.Company](), responseKey: "company"},
		{kind: actionList}:   {result: shapeOf[alegra.Company](), responseKey: "companies"},
	}, executor)
	if err != nil {
		return nil, err
	}

	return &CompaniesClient{handle: handle}, nil
}

// Create implements alegra.CompaniesClient.Create.
func (c *CompaniesClient) Create(ctx context.Context, company *alegra.Company) (*alegra.Company, error) {
	result, err := c.handle.Create(ctx, company)
	if err != nil {
		return nil, err
	}

	return result.(*alegra.Company), nil
}

// Get implements alegra.CompaniesClient.Get.
func (c *CompaniesClient) Get(ctx context.Context, id string) (*alegra.Company, error) {
	result, err := c.handle.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	return result.(*alegra.Company), nil
}

// Update implements alegra.CompaniesClient.Update.
func (c *CompaniesClient) Update(ctx context.Context, id string, company *alegra.Company) (*alegra.Company, error) {
	result, err := c.handle.Update(ctx, id, company)
	if err != nil {
		return nil, err
	}

	return result.(*alegra.Company), nil
}

// List implements alegra.CompaniesClient.List.
func (c *CompaniesClient) List(ctx context.Context, params *alegra.QueryParams) ([]alegra.Company, error) {
	results, err := c.handle.List(ctx, params.ToValues())
	if err != nil {
		return nil, err
	}

	companies := make([]alegra.Company, 0, len(results))
	for _, result := range results {
		companies = append(companies, *result.(*alegra.Company))
	}

	return companies, nil
}
