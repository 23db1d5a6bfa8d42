package providers

import (
	"errors"
	"fmt"
)

var (
	ErrTransport       = errors.New("transport error")
	ErrDeserialization = errors.New("deserialization error")
	ErrNoTextData      = errors.New("no text data in response")
	ErrNoImageData     = errors.New("no image data in response")
	ErrDecode          = errors.New("invalid inline data")
	ErrUnknownModel    = errors.New("unknown model")
)

// APIError is returned for non-2xx responses. It matches ErrTransport.
type APIError struct {
	StatusCode int
	Status     string
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("API error [%d]", e.StatusCode)
	}
	return fmt.Sprintf("API error [%d]: %s", e.StatusCode, e.Message)
}

func (e *APIError) Unwrap() error {
	return ErrTransport
}
