package alegra

import (
	"errors"
	"fmt"
	"strings"

	jsoniter "github.com/json-iterator/go"
)

// ErrorKind discriminates API client failures so callers can branch on the
// class of error without string matching.
type ErrorKind string

const (
	ErrorKindAuthentication ErrorKind = "authentication"
	ErrorKindAuthorization  ErrorKind = "authorization"
	ErrorKindNotFound       ErrorKind = "not_found"
	ErrorKindValidation     ErrorKind = "validation"
	ErrorKindRateLimit      ErrorKind = "rate_limit"
	ErrorKindServer         ErrorKind = "server"
	ErrorKindHTTP           ErrorKind = "http"
	ErrorKindResponseParse  ErrorKind = "response_parse"
	ErrorKindConfiguration  ErrorKind = "configuration"
)

// Error is the single error value surfaced by the client. Kind and StatusCode
// are the stable fields for programmatic handling; Message carries any
// API-provided detail but never replaces them.
type Error struct {
	Kind       ErrorKind
	Message    string
	StatusCode int // 0 when no HTTP status was received
	URL        string
	RawBody    string
	Endpoint   string
	Action     string
	Err        error
}

func (e *Error) Error() string {
	var b strings.Builder

	if e.StatusCode > 0 {
		fmt.Fprintf(&b, "HTTP %d error", e.StatusCode)
		if e.URL != "" {
			fmt.Fprintf(&b, " for %s", e.URL)
		}

		b.WriteString(": ")
	}

	b.WriteString(e.Message)

	if e.Err != nil {
		fmt.Fprintf(&b, ": %v", e.Err)
	}

	return b.String()
}

func (e *Error) Unwrap() error {
	return e.Err
}

var jsonErr = jsoniter.ConfigCompatibleWithStandardLibrary

// Status-specific messages, kept aligned with the upstream API documentation.
const (
	msgAuthentication = "Authentication failed. Please check your API key."
	msgAuthorization  = "Access forbidden. You don't have permission to access this resource."
	msgNotFound       = "Resource not found."
	msgValidation     = "Validation error. Please check your request data."
	msgRateLimit      = "Rate limit exceeded. Please try again later."
	msgServer         = "Server error occurred. Please try again later."
	msgHTTP           = "HTTP error occurred"
)

// ClassifyResponse maps a failed HTTP response to a typed error. The status
// to kind table is fixed:
//
//	401 authentication, 403 authorization, 404 not found, 422 validation,
//	429 rate limit, >=500 server, any other >=400 http.
//
// If the body parses as JSON and exposes a message or errors field, that text
// is appended to the message for readability; it never changes the kind.
func ClassifyResponse(statusCode int, body string, url string) *Error {
	var (
		kind ErrorKind
		msg  string
	)

	switch {
	case statusCode == 401:
		kind, msg = ErrorKindAuthentication, msgAuthentication
	case statusCode == 403:
		kind, msg = ErrorKindAuthorization, msgAuthorization
	case statusCode == 404:
		kind, msg = ErrorKindNotFound, msgNotFound
	case statusCode == 422:
		kind, msg = ErrorKindValidation, msgValidation
	case statusCode == 429:
		kind, msg = ErrorKindRateLimit, msgRateLimit
	case statusCode >= 500:
		kind, msg = ErrorKindServer, msgServer
	default:
		kind, msg = ErrorKindHTTP, msgHTTP
	}

	if detail := apiDetail(body); detail != "" {
		msg += detail
	}

	return &Error{
		Kind:       kind,
		Message:    msg,
		StatusCode: statusCode,
		URL:        url,
		RawBody:    body,
	}
}

// apiDetail extracts the API-provided message or errors field from an error
// body. A body that is not JSON yields no detail; the raw text is still kept
// on the error value.
func apiDetail(body string) string {
	var parsed map[string]jsoniter.RawMessage

	if err := jsonErr.UnmarshalFromString(body, &parsed); err != nil {
		return ""
	}

	if raw, ok := parsed["message"]; ok {
		var msg string
		if err := jsonErr.Unmarshal(raw, &msg); err == nil && msg != "" {
			return " - API message: " + msg
		}
	}

	if raw, ok := parsed["errors"]; ok {
		return " - API errors: " + string(raw)
	}

	return ""
}

// NewNetworkError wraps a transport-level failure (connection refused,
// timeout, DNS) that happened below the HTTP layer. No status code exists
// for these.
func NewNetworkError(err error, url string) *Error {
	return &Error{
		Kind:    ErrorKindHTTP,
		Message: fmt.Sprintf("Network error occurred: %v", err),
		URL:     url,
		Err:     err,
	}
}

// NewConfigurationError reports a disallowed or misconfigured action or an
// invalid client configuration. Raised before any network call.
func NewConfigurationError(message string) *Error {
	return &Error{
		Kind:    ErrorKindConfiguration,
		Message: message,
	}
}

// NewResponseParseError reports a response body that could not be decoded
// into the expected shape. The raw text and the decoding failure are kept for
// diagnosis.
func NewResponseParseError(message string, rawBody string, cause error) *Error {
	return &Error{
		Kind:    ErrorKindResponseParse,
		Message: message,
		RawBody: rawBody,
		Err:     cause,
	}
}

// KindOf returns the error kind, or an empty string when err is not a client
// error.
func KindOf(err error) ErrorKind {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Kind
	}

	return ""
}

// IsAuthentication checks for a 401-class error.
func IsAuthentication(err error) bool { return KindOf(err) == ErrorKindAuthentication }

// IsAuthorization checks for a 403-class error.
func IsAuthorization(err error) bool { return KindOf(err) == ErrorKindAuthorization }

// IsNotFound checks for a 404-class error.
func IsNotFound(err error) bool { return KindOf(err) == ErrorKindNotFound }

// IsValidation checks for a 422-class error.
func IsValidation(err error) bool { return KindOf(err) == ErrorKindValidation }

// IsRateLimit checks for a 429-class error.
func IsRateLimit(err error) bool { return KindOf(err) == ErrorKindRateLimit }

// IsServer checks for a 5xx-class error.
func IsServer(err error) bool { return KindOf(err) == ErrorKindServer }

// IsHTTP checks for an uncategorized HTTP or network-level error.
func IsHTTP(err error) bool { return KindOf(err) == ErrorKindHTTP }

// IsResponseParse checks for a response that did not match its expected shape.
func IsResponseParse(err error) bool { return KindOf(err) == ErrorKindResponseParse }

// IsConfiguration checks for a disallowed action or invalid configuration.
func IsConfiguration(err error) bool { return KindOf(err) == ErrorKindConfiguration }
