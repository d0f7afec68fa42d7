package alegra

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyResponse_StatusTable(t *testing.T) {
	tests := []struct {
		status  int
		kind    ErrorKind
		message string
	}{
		{401, ErrorKindAuthentication, "Authentication failed. Please check your API key."},
		{403, ErrorKindAuthorization, "Access forbidden. You don't have permission to access this resource."},
		{404, ErrorKindNotFound, "Resource not found."},
		{422, ErrorKindValidation, "Validation error. Please check your request data."},
		{429, ErrorKindRateLimit, "Rate limit exceeded. Please try again later."},
		{500, ErrorKindServer, "Server error occurred. Please try again later."},
		{502, ErrorKindServer, "Server error occurred. Please try again later."},
		{503, ErrorKindServer, "Server error occurred. Please try again later."},
		{400, ErrorKindHTTP, "HTTP error occurred"},
		{418, ErrorKindHTTP, "HTTP error occurred"},
		{409, ErrorKindHTTP, "HTTP error occurred"},
	}

	for _, testCase := range tests {
		t.Run(fmt.Sprintf("status_%d", testCase.status), func(t *testing.T) {
			err := ClassifyResponse(testCase.status, "", "https://example.com/invoices")
			assert.Equal(t, testCase.kind, err.Kind)
			assert.Equal(t, testCase.message, err.Message)
			assert.Equal(t, testCase.status, err.StatusCode)
			assert.Equal(t, "https://example.com/invoices", err.URL)
		})
	}
}

func TestClassifyResponse_APIMessageDetail(t *testing.T) {
	err := ClassifyResponse(404, `{"message": "Invoice inv-9 does not exist"}`, "")

	assert.Equal(t, ErrorKindNotFound, err.Kind)
	assert.Equal(t, "Resource not found. - API message: Invoice inv-9 does not exist", err.Message)
}

func TestClassifyResponse_APIErrorsDetail(t *testing.T) {
	body := `{"errors": [{"field": "number", "message": "required"}]}`
	err := ClassifyResponse(422, body, "")

	assert.Equal(t, ErrorKindValidation, err.Kind)
	assert.Contains(t, err.Message, "API errors:")
	assert.Contains(t, err.Message, `"field"`)
}

func TestClassifyResponse_MessageWinsOverErrors(t *testing.T) {
	body := `{"message": "bad request", "errors": ["x"]}`
	err := ClassifyResponse(422, body, "")

	assert.Contains(t, err.Message, "API message: bad request")
	assert.NotContains(t, err.Message, "API errors")
}

func TestClassifyResponse_NonJSONBody(t *testing.T) {
	err := ClassifyResponse(500, "<html>Bad Gateway</html>", "")

	assert.Equal(t, "Server error occurred. Please try again later.", err.Message)
	assert.Equal(t, "<html>Bad Gateway</html>", err.RawBody)
}

func TestError_ErrorString(t *testing.T) {
	err := ClassifyResponse(404, "", "https://example.com/invoices/x")
	assert.Equal(t, "HTTP 404 error for https://example.com/invoices/x: Resource not found.", err.Error())

	noURL := &Error{Kind: ErrorKindServer, Message: "boom", StatusCode: 500}
	assert.Equal(t, "HTTP 500 error: boom", noURL.Error())

	noStatus := NewConfigurationError("API key cannot be empty")
	assert.Equal(t, "API key cannot be empty", noStatus.Error())
}

func TestNewNetworkError(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")
	err := NewNetworkError(cause, "https://example.com")

	assert.Equal(t, ErrorKindHTTP, err.Kind)
	assert.Contains(t, err.Message, "Network error occurred: dial tcp: connection refused")
	assert.Zero(t, err.StatusCode)
	assert.ErrorIs(t, err, cause)
}

func TestNewResponseParseError(t *testing.T) {
	cause := errors.New("invalid character '<'")
	err := NewResponseParseError("Failed to parse response", "<html/>", cause)

	assert.Equal(t, ErrorKindResponseParse, err.Kind)
	assert.Equal(t, "<html/>", err.RawBody)
	assert.ErrorIs(t, err, cause)
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, ErrorKindNotFound, KindOf(ClassifyResponse(404, "", "")))
	assert.Equal(t, ErrorKind(""), KindOf(errors.New("plain")))
	assert.Equal(t, ErrorKind(""), KindOf(nil))

	wrapped := fmt.Errorf("calling API: %w", ClassifyResponse(429, "", ""))
	assert.Equal(t, ErrorKindRateLimit, KindOf(wrapped))
}

func TestPredicates(t *testing.T) {
	require.True(t, IsAuthentication(ClassifyResponse(401, "", "")))
	require.True(t, IsAuthorization(ClassifyResponse(403, "", "")))
	require.True(t, IsNotFound(ClassifyResponse(404, "", "")))
	require.True(t, IsValidation(ClassifyResponse(422, "", "")))
	require.True(t, IsRateLimit(ClassifyResponse(429, "", "")))
	require.True(t, IsServer(ClassifyResponse(500, "", "")))
	require.True(t, IsHTTP(ClassifyResponse(400, "", "")))
	require.True(t, IsResponseParse(NewResponseParseError("x", "", nil)))
	require.True(t, IsConfiguration(NewConfigurationError("x")))

	assert.False(t, IsNotFound(ClassifyResponse(401, "", "")))
	assert.False(t, IsServer(errors.New("plain")))
}
