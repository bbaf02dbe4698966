package namespace

import "errors"

// ErrInvalidArgument is matched by every *ArgumentError.
var ErrInvalidArgument = errors.New("namespace: invalid argument")

// ArgumentError reports a rejected namespace value or an unsupported JSON shape.
type ArgumentError struct {
	Message string
}

func (e *ArgumentError) Error() string {
	return e.Message
}

// Is reports whether target is ErrInvalidArgument.
func (e *ArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}

func invalidArgument(message string) error {
	return &ArgumentError{Message: message}
}
