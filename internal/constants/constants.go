// Package constants centralizes shared client defaults.
package constants

import "time"

// HTTP defaults.
const (
	// DefaultHTTPTimeout caps any single request at the transport boundary.
	DefaultHTTPTimeout = 30 * time.Second

	// DefaultRetryWaitMin and DefaultRetryWaitMax bound the retry backoff
	// when retries are enabled.
	DefaultRetryWaitMin = 1 * time.Second
	DefaultRetryWaitMax = 30 * time.Second

	// DefaultUserAgent identifies the client to the API.
	DefaultUserAgent = "alegra-client-go/1.0"
)
