package medium

import (
	"bytes"
	"encoding/json"
	"errors"
)

// ErrorDetail is a single entry in an error payload
type ErrorDetail struct {
	Message string `json:"message"`
	Code    int    `json:"code,omitempty"`
}

// ErrorPayload is what the API sends back in place of data when a call
// fails. It usually arrives with a 200 status.
type ErrorPayload struct {
	Errors []ErrorDetail `json:"errors"`
}

// Response holds exactly one of two variants: the contents of the "data"
// key of a successful response, or the error payload.
type Response[T any] struct {
	Ok  *T
	Err *ErrorPayload
}

// responseShape captures just the top-level keys, used to decide which
// variant a response body holds
type responseShape struct {
	Data   json.RawMessage `json:"data"`
	Errors json.RawMessage `json:"errors"`
}

func present(raw json.RawMessage) bool {
	return len(raw) > 0 && !bytes.Equal(raw, []byte("null"))
}

// UnmarshalJSON picks the variant by the presence of the "errors" or "data" key
func (r *Response[T]) UnmarshalJSON(buf []byte) error {
	var shape responseShape
	if err := json.Unmarshal(buf, &shape); err != nil {
		return err
	}

	switch {
	case present(shape.Errors):
		var payload ErrorPayload
		if err := json.Unmarshal(buf, &payload); err != nil {
			return err
		}
		if len(payload.Errors) == 0 {
			return errors.New(`"errors" key was present but contained no errors`)
		}
		*r = Response[T]{Err: &payload}
	case present(shape.Data):
		var v T
		if err := json.Unmarshal(shape.Data, &v); err != nil {
			return err
		}
		*r = Response[T]{Ok: &v}
	default:
		return errors.New(`response had neither a "data" nor an "errors" key`)
	}
	return nil
}

// FirstError returns the first error in the payload as an APIError
func (p *ErrorPayload) FirstError() *APIError {
	if len(p.Errors) == 0 {
		return &APIError{Message: "unknown error"}
	}
	return &APIError{
		Message: p.Errors[0].Message,
		Code:    p.Errors[0].Code,
	}
}
