package adapter

import "fmt"

// APIError carries a non-2xx answer from the server: the HTTP status code and
// the plain-text message body.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("server answered %d: %s", e.StatusCode, e.Message)
}
