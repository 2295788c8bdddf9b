package query

import (
	"slices"
	"strings"

	"braces.dev/errtrace"
)

// Values parses a raw query string into values. It is a read-only [Codec.Parse].
func (c *Codec) Values(raw string) (Values, error) {
	return errtrace.Wrap2(c.Parse(raw))
}

// AddOrUpdateParam adds a parameter to the raw query or replaces all existing
// parameters with the same name. Absent value removes the parameter.
// Returns [ErrInvalidArgument] if name is empty.
func (c *Codec) AddOrUpdateParam(raw, name string, value Value) (string, error) {
	if name == "" {
		return "", errtrace.Wrap(newInvalidArgumentError("empty parameter name"))
	}
	return errtrace.Wrap2(c.update(raw, Pair{name, value}))
}

// AddOrUpdateParams applies the ordered update set to the raw query,
// see [Codec.Merge] for update semantics.
// Returns [ErrInvalidArgument] if updates is nil. An empty non-nil update set
// results in the normalized raw query.
func (c *Codec) AddOrUpdateParams(raw string, updates []Pair) (string, error) {
	if updates == nil {
		return "", errtrace.Wrap(newInvalidArgumentError("nil updates"))
	}
	return errtrace.Wrap2(c.update(raw, updates...))
}

// RemoveParam removes all parameters with the name from the raw query.
// An empty name removes nothing, the raw query is still validated and normalized.
func (c *Codec) RemoveParam(raw, name string) (string, error) {
	return errtrace.Wrap2(c.RemoveParams(raw, []string{name}))
}

// RemoveParams removes all parameters with any of the names from the raw query.
// Empty names are skipped, the result is always normalized like [Codec.AddOrUpdateParams] output.
func (c *Codec) RemoveParams(raw string, names []string) (string, error) {
	updates := make([]Pair, 0, len(names))
	for _, name := range names {
		if name != "" {
			updates = append(updates, Del(name))
		}
	}
	return errtrace.Wrap2(c.update(raw, updates...))
}

func (c *Codec) update(raw string, updates ...Pair) (string, error) {
	vs, err := c.Parse(raw)
	if err != nil {
		return "", errtrace.Wrap(err)
	}
	return c.Render(c.Merge(vs, updates...)), nil
}

// UpdatesFromMap converts a map to an update set ordered by name.
func UpdatesFromMap(m map[string]string) []Pair {
	if m == nil {
		return nil
	}

	updates := make([]Pair, 0, len(m))
	for name, val := range m {
		updates = append(updates, KV(name, val))
	}
	slices.SortFunc(updates, func(a, b Pair) int { return strings.Compare(a.Name, b.Name) })
	return updates
}

// AddOrUpdateParam is [Codec.AddOrUpdateParam] of the [Default] codec.
func AddOrUpdateParam(raw, name string, value Value) (string, error) {
	return errtrace.Wrap2(Default().AddOrUpdateParam(raw, name, value))
}

// AddOrUpdateParams is [Codec.AddOrUpdateParams] of the [Default] codec.
func AddOrUpdateParams(raw string, updates []Pair) (string, error) {
	return errtrace.Wrap2(Default().AddOrUpdateParams(raw, updates))
}

// RemoveParam is [Codec.RemoveParam] of the [Default] codec.
func RemoveParam(raw, name string) (string, error) {
	return errtrace.Wrap2(Default().RemoveParam(raw, name))
}

// RemoveParams is [Codec.RemoveParams] of the [Default] codec.
func RemoveParams(raw string, names []string) (string, error) {
	return errtrace.Wrap2(Default().RemoveParams(raw, names))
}
