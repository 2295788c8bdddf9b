package query

import (
	"log/slog"
	"strconv"
)

// Value is an optional parameter value.
// The zero Value is absent, it represents a bare flag in parsed queries
// and a removal in update sets.
type Value struct {
	val string
	set bool
}

// Val returns a present value holding s. Empty s is still present.
func Val(s string) Value { return Value{s, true} }

// Get returns the value and whether it is present.
func (v Value) Get() (string, bool) { return v.val, v.set }

// IsSet reports whether the value is present.
func (v Value) IsSet() bool { return v.set }

// String returns the value or empty string if the value is absent.
func (v Value) String() string { return v.val }

// GoString implements [fmt.GoStringer].
func (v Value) GoString() string {
	if !v.set {
		return "query.Value{}"
	}
	return "query.Val(" + strconv.Quote(v.val) + ")"
}

// Equal compares the value with another one.
func (v Value) Equal(other Value) bool { return v == other }

// LogValue implements [slog.LogValuer].
func (v Value) LogValue() slog.Value {
	if !v.set {
		return slog.AnyValue(nil)
	}
	return slog.StringValue(v.val)
}

// Pair is a query parameter.
type Pair struct {
	Name  string
	Value Value
}

// KV returns a pair with present value.
func KV(name, value string) Pair { return Pair{name, Val(value)} }

// Flag returns a pair with absent value.
func Flag(name string) Pair { return Pair{Name: name} }

// Del returns an update pair that removes all parameters with the name.
// It is the same as [Flag], the name states the intent in update sets.
func Del(name string) Pair { return Pair{Name: name} }

// Equal compares the pair with another one.
func (p Pair) Equal(other Pair) bool { return p == other }
