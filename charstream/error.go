package charstream

import (
	"errors"
	"fmt"
)

// DecodeError reports a byte group that is not valid UTF-8. The group is
// structurally broken, retrying cannot fix it.
type DecodeError struct {
	bytes []byte
	cause error
}

func decodeErrorf(bytes []byte, formatter string, args ...interface{}) *DecodeError {
	return &DecodeError{bytes: bytes, cause: fmt.Errorf(formatter, args...)}
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf(`decode error on bytes [% x]: %v`, e.bytes, e.cause)
}

// Bytes returns the offending byte group.
func (e *DecodeError) Bytes() []byte {
	return e.bytes
}

func (e *DecodeError) Unwrap() error {
	return e.cause
}

// StreamError tags an io failure with the bytes consumed before it surfaced.
type StreamError struct {
	bytes []byte
	err   error
}

func (e *StreamError) Error() string {
	return fmt.Sprintf(`io error on bytes [% x]: %v`, e.bytes, e.err)
}

// Bytes returns the bytes read before the failure.
func (e *StreamError) Bytes() []byte {
	return e.bytes
}

func (e *StreamError) Unwrap() error {
	return e.err
}

func temporary(err error) bool {
	var t interface{ Temporary() bool }
	return errors.As(err, &t) && t.Temporary()
}
