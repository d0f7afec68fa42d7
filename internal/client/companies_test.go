package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	internalhttp "github.com/einvoice-io/alegra-client/internal/http"
	"github.com/einvoice-io/alegra-client/pkg/alegra"
)

func TestCompanyClient_Get(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/company/1", r.URL.Path)
		assert.Equal(t, "GET", r.Method)

		_, _ = w.Write([]byte(`{"company": {"id": "1", "name": "Acme", "identification": "900123456"}}`))
	}))
	defer server.Close()

	company, err := NewCompanyClient(internalhttp.NewClient(server.URL, "test-key"))
	require.NoError(t, err)

	result, err := company.Get(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, "1", result.ID)
	assert.Equal(t, "Acme", result.Name)
	assert.Equal(t, "900123456", result.Identification)
}

func TestCompanyClient_ListNotAllowed(t *testing.T) {
	// The singleton company resource only allows get and update.
	company, err := NewCompanyClient(&stubExecutor{})
	require.NoError(t, err)

	_, err = company.handle.List(context.Background(), nil)
	assert.True(t, alegra.IsConfiguration(err))
}

func TestCompaniesClient_Update(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/companies/1", r.URL.Path)
		assert.Equal(t, "PATCH", r.Method)

		_, _ = w.Write([]byte(`{"company": {"id": "1", "name": "Acme Holdings"}}`))
	}))
	defer server.Close()

	companies, err := NewCompaniesClient(internalhttp.NewClient(server.URL, "test-key"))
	require.NoError(t, err)

	result, err := companies.Update(context.Background(), "1", &alegra.Company{Name: "Acme Holdings"})
	require.NoError(t, err)
	assert.Equal(t, "Acme Holdings", result.Name)
}

func TestCompaniesClient_List(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/companies", r.URL.Path)
		assert.Equal(t, "name", r.URL.Query().Get("order_by"))

		_, _ = w.Write([]byte(`{"companies": [{"id": "1", "name": "Acme"}, {"id": "2", "name": "Umbrella"}]}`))
	}))
	defer server.Close()

	companies, err := NewCompaniesClient(internalhttp.NewClient(server.URL, "test-key"))
	require.NoError(t, err)

	params := alegra.NewQueryParams()
	params.OrderBy = "name"

	list, err := companies.List(context.Background(), params)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Acme", list[0].Name)
	assert.Equal(t, "Umbrella", list[1].Name)
}

func TestTestSetsClient_Delete(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/test-sets/ts-1", r.URL.Path)
		assert.Equal(t, "DELETE", r.Method)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	testSets, err := NewTestSetsClient(internalhttp.NewClient(server.URL, "test-key"))
	require.NoError(t, err)

	deleted, err := testSets.Delete(context.Background(), "ts-1")
	require.NoError(t, err)
	assert.True(t, deleted)
}

func TestDianClient_List(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/dian", r.URL.Path)

		_, _ = w.Write([]byte(`{"dian": [{"code": "01", "name": "Factura de Venta"}]}`))
	}))
	defer server.Close()

	dian, err := NewDianClient(internalhttp.NewClient(server.URL, "test-key"))
	require.NoError(t, err)

	list, err := dian.List(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "01", list[0].Code)
}
