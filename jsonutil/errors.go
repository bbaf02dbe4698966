package jsonutil

import (
	"errors"
	"fmt"
)

// ErrDecode is matched by every error produced while reading JSON text or extracting values from a Node.
var ErrDecode = errors.New("jsonutil: decode error")

// DecodeError describes malformed JSON text or a node value that cannot be coerced to the requested type.
type DecodeError struct {
	Message string
}

func (e *DecodeError) Error() string {
	return e.Message
}

// Is reports whether target is ErrDecode.
func (e *DecodeError) Is(target error) bool {
	return target == ErrDecode
}

func decodeErrorf(format string, args ...interface{}) *DecodeError {
	return &DecodeError{Message: fmt.Sprintf(format, args...)}
}
