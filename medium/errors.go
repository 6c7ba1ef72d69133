package medium

import "fmt"

// APIError is an error reported by the API in an error payload. Its
// message is passed through verbatim.
type APIError struct {
	Message string
	Code    int
}

func (e *APIError) Error() string {
	return e.Message
}

// TransportError means the request never produced a usable response: the
// connection failed, or the server answered with a non-2xx status and no
// error payload.
type TransportError struct {
	Op     string // e.g. "GET /v1/me"
	Status string // HTTP status line, empty if no response arrived
	Err    error
}

func (e *TransportError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("error calling %s: server said: %s", e.Op, e.Status)
	}
	return fmt.Sprintf("error calling %s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// DecodeError means the response body matched neither the success shape
// nor the error shape
type DecodeError struct {
	Op  string
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("error decoding response to %s: %v", e.Op, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
