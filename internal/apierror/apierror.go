// Package apierror provides the standardized error envelope for the data
// service. Authentication failure is the only anomaly surfaced to callers with
// a user-facing message; everything else degrades to an empty result, so this
// package stays deliberately small.
package apierror

// APIError is the canonical error envelope.
type APIError struct {
	Detail string `json:"detail"`
}

func New(msg string) *APIError {
	return &APIError{Detail: msg}
}

// Error implements the error interface so dispatcher callers can surface the
// message directly.
func (e *APIError) Error() string { return e.Detail }

// InvalidCredentials is returned by /auth/login on a failed credential check.
func InvalidCredentials() *APIError {
	return New("Invalid username or password")
}
