package query

import (
	"io"
	"iter"
	"log/slog"
	"slices"

	"braces.dev/errtrace"
)

// Values is an immutable ordered collection of query parameters.
// Names may repeat. Methods never modify the receiver, the zero Values is empty and ready to use.
//
// Lookup methods match names case-sensitively.
// Values uses linear search which is efficient for the usual small amount of parameters.
type Values struct {
	pairs []Pair
}

// NewValues returns a new collection holding copies of pairs in the given order.
func NewValues(pairs ...Pair) Values {
	return Values{pairs: slices.Clone(pairs)}
}

// Len returns a number of stored pairs.
func (vs Values) Len() int { return len(vs.pairs) }

// IsEmpty reports whether there are no pairs.
func (vs Values) IsEmpty() bool { return len(vs.pairs) == 0 }

// All returns an iterator over names and values in insertion order.
func (vs Values) All() iter.Seq2[string, Value] {
	return func(yield func(string, Value) bool) {
		for _, p := range vs.pairs {
			if !yield(p.Name, p.Value) {
				return
			}
		}
	}
}

// Pairs returns a copy of the underlying pairs.
func (vs Values) Pairs() []Pair { return slices.Clone(vs.pairs) }

// Get returns the first value stored under the name and whether the name was found.
func (vs Values) Get(name string) (Value, bool) {
	for _, p := range vs.pairs {
		if p.Name == name {
			return p.Value, true
		}
	}
	return Value{}, false
}

// Values returns all present values stored under the name in insertion order.
// Absent values of bare flags are skipped. Returns nil if there are no such values.
func (vs Values) Values(name string) []string {
	var out []string
	for _, p := range vs.pairs {
		if p.Name == name && p.Value.IsSet() {
			out = append(out, p.Value.String())
		}
	}
	return out
}

// Has reports whether there is at least one pair with the name.
func (vs Values) Has(name string) bool {
	return slices.ContainsFunc(vs.pairs, func(p Pair) bool { return p.Name == name })
}

// Names returns unique names in order of first appearance.
func (vs Values) Names() []string {
	var out []string
	for _, p := range vs.pairs {
		if !slices.Contains(out, p.Name) {
			out = append(out, p.Name)
		}
	}
	return out
}

// Append returns a new collection with the pairs added to the end.
func (vs Values) Append(pairs ...Pair) Values {
	return Values{pairs: slices.Concat(vs.pairs, pairs)}
}

// Clone returns a deep copy of the collection.
func (vs Values) Clone() Values {
	return Values{pairs: slices.Clone(vs.pairs)}
}

// Map returns the collection as a map of name to present values.
// Bare flags are represented by a key with an empty slice.
func (vs Values) Map() map[string][]string {
	m := make(map[string][]string, len(vs.pairs))
	for _, p := range vs.pairs {
		vals, ok := m[p.Name]
		if !ok {
			vals = []string{}
		}
		if p.Value.IsSet() {
			vals = append(vals, p.Value.String())
		}
		m[p.Name] = vals
	}
	return m
}

// Equal compares the collection with another one.
// Collections are equal if they hold the same pairs in the same order.
func (vs Values) Equal(val any) bool {
	var other Values
	switch v := val.(type) {
	case Values:
		other = v
	case *Values:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}
	return slices.Equal(vs.pairs, other.pairs)
}

// RenderTo writes the rendered query to w using the [Default] codec.
func (vs Values) RenderTo(w io.Writer) (num int, err error) {
	return errtrace.Wrap2(Default().RenderTo(w, vs))
}

// String returns the rendered query using the [Default] codec.
func (vs Values) String() string {
	return Default().Render(vs)
}

// LogValue implements [slog.LogValuer].
func (vs Values) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, len(vs.pairs))
	for _, p := range vs.pairs {
		attrs = append(attrs, slog.Any(p.Name, p.Value))
	}
	return slog.GroupValue(attrs...)
}
