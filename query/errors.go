package query

import (
	"github.com/ghettovoice/urikit/internal/errorutil"
	"github.com/ghettovoice/urikit/internal/grammar"
)

const (
	// ErrInvalidArgument is returned when a required argument is missing or empty.
	ErrInvalidArgument = errorutil.ErrInvalidArgument
	// ErrDecode is returned when a name or value contains a malformed percent-encoded sequence.
	ErrDecode = grammar.ErrMalformedEscape
)

// Error represents a query error.
// See [errorutil.Error].
type Error = errorutil.Error

func newInvalidArgumentError(args ...any) error {
	return errorutil.NewInvalidArgumentError(args...) //errtrace:skip
}
