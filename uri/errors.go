package uri

import "github.com/ghettovoice/urikit/internal/errorutil"

// Error is a string type that implements the error interface.
type Error = errorutil.Error

const (
	// ErrInvalidArgument is returned when a setter receives a value
	// that can not be used for the URI component.
	ErrInvalidArgument = errorutil.ErrInvalidArgument
	// ErrMalformedInput is returned when a URI can not be parsed.
	ErrMalformedInput Error = "malformed input"
)

func newNilURIError() error {
	return newInvalidArgumentError("nil URI") //errtrace:skip
}

func newInvalidArgumentError(args ...any) error {
	return errorutil.NewInvalidArgumentError(args...) //errtrace:skip
}

func newMalformedInputError(args ...any) error {
	return errorutil.NewWrapperError(ErrMalformedInput, args...) //errtrace:skip
}
