package client

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	internalhttp "github.com/einvoice-io/alegra-client/internal/http"
	"github.com/einvoice-io/alegra-client/pkg/alegra"
)

// document is a minimal result shape for engine tests.
type document struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
}

// stubExecutor counts invocations without touching the network.
type stubExecutor struct {
	calls int
	resp  *internalhttp.Response
	err   error
}

func (s *stubExecutor) Do(_ context.Context, _ *internalhttp.Request) (*internalhttp.Response, error) {
	s.calls++

	return s.resp, s.err
}

func serverExecutor(t *testing.T, handler http.HandlerFunc) (Executor, *httptest.Server) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return internalhttp.NewClient(server.URL, "test-key"), server
}

func TestResourceHandle_ActionNotAllowed(t *testing.T) {
	stub := &stubExecutor{}

	handle, err := newResourceHandle("documents", registry{}, stub)
	require.NoError(t, err)

	ctx := context.Background()

	_, err = handle.Get(ctx, "1")
	assert.True(t, alegra.IsConfiguration(err))
	assert.Contains(t, err.Error(), "get")
	assert.Contains(t, err.Error(), "documents")

	_, err = handle.Create(ctx, &document{ID: "1"})
	assert.True(t, alegra.IsConfiguration(err))

	_, err = handle.Update(ctx, "1", &document{ID: "1"})
	assert.True(t, alegra.IsConfiguration(err))

	_, err = handle.Delete(ctx, "1")
	assert.True(t, alegra.IsConfiguration(err))

	_, err = handle.List(ctx, nil)
	assert.True(t, alegra.IsConfiguration(err))

	_, err = handle.Perform(ctx, "1", "approve", nil)
	assert.True(t, alegra.IsConfiguration(err))
	assert.Contains(t, err.Error(), "perform__approve")

	// No network call may happen for a disallowed action.
	assert.Equal(t, 0, stub.calls)
}

func TestNewResourceHandle_RequiresShapeOrPassThrough(t *testing.T) {
	_, err := newResourceHandle("documents", registry{
		{kind: actionGet}: {responseKey: "document"},
	}, &stubExecutor{})
	require.Error(t, err)
	assert.True(t, alegra.IsConfiguration(err))
}

func TestResourceHandle_GetUnwrapsResponseKey(t *testing.T) {
	executor, _ := serverExecutor(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/companies/1", r.URL.Path)
		assert.Equal(t, "GET", r.Method)

		_, _ = w.Write([]byte(`{"company": {"id": "1", "name": "Acme"}}`))
	})

	handle, err := newResourceHandle("companies", registry{
		{kind: actionGet}: {result: shapeOf[document](), responseKey: "company"},
	}, executor)
	require.NoError(t, err)

	result, err := handle.Get(context.Background(), "1")
	require.NoError(t, err)

	doc, ok := result.(*document)
	require.True(t, ok)
	assert.Equal(t, "1", doc.ID)
	assert.Equal(t, "Acme", doc.Name)
}

func TestResourceHandle_MissingResponseKey(t *testing.T) {
	executor, _ := serverExecutor(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"company": {"id": "1", "name": "Acme"}}`))
	})

	handle, err := newResourceHandle("companies", registry{
		{kind: actionGet}: {result: shapeOf[document](), responseKey: "missing"},
	}, executor)
	require.NoError(t, err)

	_, err = handle.Get(context.Background(), "1")
	require.Error(t, err)
	assert.True(t, alegra.IsHTTP(err))
	assert.Contains(t, err.Error(), `"missing"`)
	assert.Contains(t, err.Error(), "company") // available keys listed

	var apiErr *alegra.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "companies", apiErr.Endpoint)
	assert.Equal(t, "get", apiErr.Action)
	// Unwrap failure is independent of HTTP status: this was a 200.
	assert.Equal(t, http.StatusOK, apiErr.StatusCode)
}

func TestResourceHandle_MissingKeyPrefersAPIMessage(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{name: "message field", body: `{"message": "document rejected"}`, want: "document rejected"},
		{name: "errors field", body: `{"errors": ["bad period"]}`, want: `["bad period"]`},
		{name: "error field", body: `{"error": "unavailable"}`, want: "unavailable"},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			executor, _ := serverExecutor(t, func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(testCase.body))
			})

			handle, err := newResourceHandle("documents", registry{
				{kind: actionGet}: {result: shapeOf[document](), responseKey: "document"},
			}, executor)
			require.NoError(t, err)

			_, err = handle.Get(context.Background(), "1")
			require.Error(t, err)
			assert.True(t, alegra.IsHTTP(err))
			assert.Contains(t, err.Error(), testCase.want)
		})
	}
}

func TestResourceHandle_CreateStripsNullFields(t *testing.T) {
	type payload struct {
		Name     string           `json:"name"`
		Note     *string          `json:"note"`
		Customer *alegra.Customer `json:"customer,omitempty"`
	}

	var received map[string]interface{}

	executor, _ := serverExecutor(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POST", r.Method)

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(body, &received))

		_, _ = w.Write([]byte(`{"document": {"id": "1"}}`))
	})

	handle, err := newResourceHandle("documents", registry{
		{kind: actionCreate}: {result: shapeOf[document](), responseKey: "document"},
	}, executor)
	require.NoError(t, err)

	_, err = handle.Create(context.Background(), &payload{
		Name:     "X",
		Customer: &alegra.Customer{Name: "Acme"},
	})
	require.NoError(t, err)

	// Top-level null is omitted entirely, not sent as null.
	_, hasNote := received["note"]
	assert.False(t, hasNote)

	// The nested customer dv null is dropped from the customer object.
	customer, ok := received["customer"].(map[string]interface{})
	require.True(t, ok)

	_, hasDV := customer["dv"]
	assert.False(t, hasDV)
	assert.Equal(t, "Acme", customer["name"])
}

func TestResourceHandle_UpdateUsesPatch(t *testing.T) {
	executor, _ := serverExecutor(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "PATCH", r.Method)
		assert.Equal(t, "/documents/9", r.URL.Path)

		_, _ = w.Write([]byte(`{"document": {"id": "9", "name": "updated"}}`))
	})

	handle, err := newResourceHandle("documents", registry{
		{kind: actionUpdate}: {result: shapeOf[document](), responseKey: "document"},
	}, executor)
	require.NoError(t, err)

	result, err := handle.Update(context.Background(), "9", &document{Name: "updated"})
	require.NoError(t, err)
	assert.Equal(t, "updated", result.(*document).Name)
}

func TestResourceHandle_Delete(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		want    bool
		wantErr bool
	}{
		{name: "204 no content", status: http.StatusNoContent, want: true},
		{name: "200 ok", status: http.StatusOK, want: true},
		{name: "202 accepted is an explicit error", status: http.StatusAccepted, want: false, wantErr: true},
		{name: "404 classified before success check", status: http.StatusNotFound, want: false, wantErr: true},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			executor, _ := serverExecutor(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "DELETE", r.Method)
				w.WriteHeader(testCase.status)
			})

			handle, err := newResourceHandle("documents", registry{
				{kind: actionDelete}: {passThrough: true},
			}, executor)
			require.NoError(t, err)

			deleted, err := handle.Delete(context.Background(), "1")
			assert.Equal(t, testCase.want, deleted)

			if testCase.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}

	t.Run("404 maps to not found", func(t *testing.T) {
		executor, _ := serverExecutor(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		})

		handle, err := newResourceHandle("documents", registry{
			{kind: actionDelete}: {passThrough: true},
		}, executor)
		require.NoError(t, err)

		deleted, err := handle.Delete(context.Background(), "1")
		assert.False(t, deleted)
		assert.True(t, alegra.IsNotFound(err))
	})
}

func TestResourceHandle_List(t *testing.T) {
	t.Run("preserves response order", func(t *testing.T) {
		executor, _ := serverExecutor(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/documents", r.URL.Path)
			assert.Equal(t, "2", r.URL.Query().Get("page"))

			_, _ = w.Write([]byte(`{"items": [{"id": "1"}, {"id": "2"}]}`))
		})

		handle, err := newResourceHandle("documents", registry{
			{kind: actionList}: {result: shapeOf[document](), responseKey: "items"},
		}, executor)
		require.NoError(t, err)

		results, err := handle.List(context.Background(), alegra.NewQueryParams().WithPage(2).ToValues())
		require.NoError(t, err)
		require.Len(t, results, 2)
		assert.Equal(t, "1", results[0].(*document).ID)
		assert.Equal(t, "2", results[1].(*document).ID)
	})

	t.Run("empty array is an empty sequence", func(t *testing.T) {
		executor, _ := serverExecutor(t, func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"items": []}`))
		})

		handle, err := newResourceHandle("documents", registry{
			{kind: actionList}: {result: shapeOf[document](), responseKey: "items"},
		}, executor)
		require.NoError(t, err)

		results, err := handle.List(context.Background(), nil)
		require.NoError(t, err)
		assert.NotNil(t, results)
		assert.Empty(t, results)
	})

	t.Run("pass-through yields raw elements", func(t *testing.T) {
		executor, _ := serverExecutor(t, func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"items": [{"id": "1"}, 2, "three"]}`))
		})

		handle, err := newResourceHandle("documents", registry{
			{kind: actionList}: {passThrough: true, responseKey: "items"},
		}, executor)
		require.NoError(t, err)

		results, err := handle.List(context.Background(), nil)
		require.NoError(t, err)
		require.Len(t, results, 3)
		assert.JSONEq(t, `{"id": "1"}`, string(results[0].(jsoniter.RawMessage)))
		assert.JSONEq(t, `2`, string(results[1].(jsoniter.RawMessage)))
		assert.JSONEq(t, `"three"`, string(results[2].(jsoniter.RawMessage)))
	})

	t.Run("non-array payload is a parse error", func(t *testing.T) {
		executor, _ := serverExecutor(t, func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"items": {"id": "1"}}`))
		})

		handle, err := newResourceHandle("documents", registry{
			{kind: actionList}: {result: shapeOf[document](), responseKey: "items"},
		}, executor)
		require.NoError(t, err)

		_, err = handle.List(context.Background(), nil)
		assert.True(t, alegra.IsResponseParse(err))
	})
}

func TestResourceHandle_MalformedJSONOn2xx(t *testing.T) {
	executor, _ := serverExecutor(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"company": not json`))
	})

	handle, err := newResourceHandle("companies", registry{
		{kind: actionGet}: {result: shapeOf[document](), responseKey: "company"},
	}, executor)
	require.NoError(t, err)

	_, err = handle.Get(context.Background(), "1")
	require.Error(t, err)
	assert.True(t, alegra.IsResponseParse(err))

	var apiErr *alegra.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, `{"company": not json`, apiErr.RawBody)
	assert.Error(t, apiErr.Unwrap())
}

func TestResourceHandle_ShapeMismatch(t *testing.T) {
	executor, _ := serverExecutor(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"company": {"id": {"nested": true}}}`))
	})

	handle, err := newResourceHandle("companies", registry{
		{kind: actionGet}: {result: shapeOf[document](), responseKey: "company"},
	}, executor)
	require.NoError(t, err)

	_, err = handle.Get(context.Background(), "1")
	require.Error(t, err)
	assert.True(t, alegra.IsResponseParse(err))

	var apiErr *alegra.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Contains(t, apiErr.RawBody, "nested")
	assert.Error(t, apiErr.Unwrap())
}

func TestResourceHandle_ErrorStatusSkipsUnwrap(t *testing.T) {
	// The body lacks the response key, but classification must win over
	// unwrapping for a failed status.
	executor, _ := serverExecutor(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"message": "invalid document"}`))
	})

	handle, err := newResourceHandle("companies", registry{
		{kind: actionGet}: {result: shapeOf[document](), responseKey: "company"},
	}, executor)
	require.NoError(t, err)

	_, err = handle.Get(context.Background(), "1")
	assert.True(t, alegra.IsValidation(err))
	assert.Contains(t, err.Error(), "invalid document")
}

func TestResourceHandle_RetryableStatusesAreClassified(t *testing.T) {
	// 429 and 5xx must reach the classifier even though the transport could
	// treat them as retryable.
	tests := []struct {
		status int
		check  func(error) bool
		name   string
	}{
		{status: http.StatusTooManyRequests, check: alegra.IsRateLimit, name: "429 rate limit"},
		{status: http.StatusInternalServerError, check: alegra.IsServer, name: "500 server"},
		{status: http.StatusServiceUnavailable, check: alegra.IsServer, name: "503 server"},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			executor, _ := serverExecutor(t, func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(testCase.status)
				_, _ = w.Write([]byte(`{"message": "upstream unhappy"}`))
			})

			handle, err := newResourceHandle("documents", registry{
				{kind: actionGet}: {result: shapeOf[document](), responseKey: "document"},
			}, executor)
			require.NoError(t, err)

			_, err = handle.Get(context.Background(), "1")
			require.Error(t, err)
			assert.True(t, testCase.check(err))

			var apiErr *alegra.Error
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, testCase.status, apiErr.StatusCode)
			assert.Contains(t, apiErr.Message, "upstream unhappy")
		})
	}
}

func TestResourceHandle_Perform(t *testing.T) {
	t.Run("replace and cancel use POST", func(t *testing.T) {
		for _, sub := range []string{"replace", "cancel"} {
			executor, _ := serverExecutor(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "POST", r.Method)
				assert.Equal(t, "/documents/7/"+sub, r.URL.Path)

				_, _ = w.Write([]byte(`{"document": {"id": "7"}}`))
			})

			handle, err := newResourceHandle("documents", registry{
				{kind: actionPerform, sub: sub}: {result: shapeOf[document](), responseKey: "document"},
			}, executor)
			require.NoError(t, err)

			_, err = handle.Perform(context.Background(), "7", sub, &document{ID: "7"})
			require.NoError(t, err)
		}
	})

	t.Run("other subactions use GET", func(t *testing.T) {
		executor, _ := serverExecutor(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "GET", r.Method)
			assert.Equal(t, "/documents/7/status", r.URL.Path)

			_, _ = w.Write([]byte(`{"document": {"id": "7"}}`))
		})

		handle, err := newResourceHandle("documents", registry{
			{kind: actionPerform, sub: "status"}: {result: shapeOf[document](), responseKey: "document"},
		}, executor)
		require.NoError(t, err)

		_, err = handle.Perform(context.Background(), "7", "status", nil)
		require.NoError(t, err)
	})

	t.Run("endpoint suffix override", func(t *testing.T) {
		executor, _ := serverExecutor(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/documents/7/files/XML", r.URL.Path)

			_, _ = w.Write([]byte(`{"file": {"id": "7"}}`))
		})

		handle, err := newResourceHandle("documents", registry{
			{kind: actionPerform, sub: "file_xml"}: {
				result:         shapeOf[document](),
				responseKey:    "file",
				endpointSuffix: "files/XML",
			},
		}, executor)
		require.NoError(t, err)

		_, err = handle.Perform(context.Background(), "7", "file_xml", nil)
		require.NoError(t, err)
	})

	t.Run("nil payload sends no body", func(t *testing.T) {
		executor, _ := serverExecutor(t, func(w http.ResponseWriter, r *http.Request) {
			body, err := io.ReadAll(r.Body)
			require.NoError(t, err)
			assert.Empty(t, body)
			assert.Empty(t, r.Header.Get("Content-Type"))

			_, _ = w.Write([]byte(`{"document": {"id": "7"}}`))
		})

		handle, err := newResourceHandle("documents", registry{
			{kind: actionPerform, sub: "cancel"}: {result: shapeOf[document](), responseKey: "document"},
		}, executor)
		require.NoError(t, err)

		_, err = handle.Perform(context.Background(), "7", "cancel", nil)
		require.NoError(t, err)
	})
}

func TestResourceHandle_PassThrough(t *testing.T) {
	executor, _ := serverExecutor(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"anything": [1, 2, 3]}`))
	})

	handle, err := newResourceHandle("documents", registry{
		{kind: actionGet}: {passThrough: true},
	}, executor)
	require.NoError(t, err)

	result, err := handle.Get(context.Background(), "1")
	require.NoError(t, err)
	assert.JSONEq(t, `{"anything": [1, 2, 3]}`, string(result.(jsoniter.RawMessage)))
}
