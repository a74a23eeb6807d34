package httpx

import (
	"fmt"
	"io"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// DecodeError is returned by ReadJSON when the body was read successfully but
// is not valid JSON for the target.
type DecodeError struct {
	Body []byte
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("invalid json: %v", e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// ReadJSON reads the whole body and unmarshals it in to response.
func ReadJSON(body io.Reader, response any) error {
	b, err := io.ReadAll(body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}
	if err := json.Unmarshal(b, response); err != nil {
		return &DecodeError{Body: b, Err: err}
	}
	return nil
}

// MarshalJSON encodes a request payload.
func MarshalJSON(v any) ([]byte, error) {
	return json.Marshal(v)
}

// UnmarshalJSON decodes a payload that was already read.
func UnmarshalJSON(b []byte, v any) error {
	return json.Unmarshal(b, v)
}
