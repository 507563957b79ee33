package services

import "errors"

// Base errors classify validation failures; the REST layer maps them
// to status codes with errors.Is.
var (
	ErrInvalidRequest       = errors.New("invalid request")
	ErrPayloadTooLarge      = errors.New("payload too large")
	ErrUnsupportedMediaType = errors.New("unsupported media type")
)

// RequestError pairs a classification with the exact client-facing
// message.
type RequestError struct {
	kind error
	msg  string
}

func (e *RequestError) Error() string { return e.msg }
func (e *RequestError) Unwrap() error { return e.kind }

func invalidRequest(msg string) error {
	return &RequestError{kind: ErrInvalidRequest, msg: msg}
}

func payloadTooLarge(msg string) error {
	return &RequestError{kind: ErrPayloadTooLarge, msg: msg}
}

func unsupportedMediaType(msg string) error {
	return &RequestError{kind: ErrUnsupportedMediaType, msg: msg}
}
