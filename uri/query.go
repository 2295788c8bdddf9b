package uri

import (
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/urikit/query"
)

// WithQueryCodec returns a copy of the URI that uses the codec for query operations.
// Nil resets it to [query.Default].
// Nil URI results in nil.
func (u *URI) WithQueryCodec(c *query.Codec) *URI {
	u2 := u.clone()
	if u2 == nil {
		return nil
	}
	u2.codec = c
	return u2
}

func (u *URI) queryCodec() *query.Codec {
	if u == nil || u.codec == nil {
		return query.Default()
	}
	return u.codec
}

// Query parses the URI query.
// Nil URI has an empty query.
func (u *URI) Query() (query.Values, error) {
	return errtrace.Wrap2(u.queryCodec().Parse(u.RawQuery()))
}

// QueryMap parses the URI query into a map of name to values, see [query.Values.Map].
func (u *URI) QueryMap() (map[string][]string, error) {
	vs, err := u.Query()
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	return vs.Map(), nil
}

// AddOrUpdateQueryParam returns a copy of the URI with the query parameter added or replaced,
// absent value removes the parameter. See [query.Codec.AddOrUpdateParam].
func (u *URI) AddOrUpdateQueryParam(name string, value query.Value) (*URI, error) {
	if u == nil {
		return nil, errtrace.Wrap(newNilURIError())
	}
	raw, err := u.queryCodec().AddOrUpdateParam(u.url.RawQuery, name, value)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	return u.withRawQuery(raw), nil
}

// AddOrUpdateQueryParams returns a copy of the URI with the updates applied to the query.
// See [query.Codec.AddOrUpdateParams].
func (u *URI) AddOrUpdateQueryParams(updates []query.Pair) (*URI, error) {
	if u == nil {
		return nil, errtrace.Wrap(newNilURIError())
	}
	raw, err := u.queryCodec().AddOrUpdateParams(u.url.RawQuery, updates)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	return u.withRawQuery(raw), nil
}

// RemoveQueryParam returns a copy of the URI without query parameters with the name.
func (u *URI) RemoveQueryParam(name string) (*URI, error) {
	if u == nil {
		return nil, errtrace.Wrap(newNilURIError())
	}
	raw, err := u.queryCodec().RemoveParam(u.url.RawQuery, name)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	return u.withRawQuery(raw), nil
}

// RemoveQueryParams returns a copy of the URI without query parameters with any of the names.
func (u *URI) RemoveQueryParams(names []string) (*URI, error) {
	if u == nil {
		return nil, errtrace.Wrap(newNilURIError())
	}
	raw, err := u.queryCodec().RemoveParams(u.url.RawQuery, names)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	return u.withRawQuery(raw), nil
}

// RemoveQuery returns a copy of the URI without query.
// Query setters of nil URI return nil.
func (u *URI) RemoveQuery() *URI { return u.withRawQuery("") }

// SetQuery returns a copy of the URI with the raw query replaced.
// The raw query is used as is, leading "?" is optional.
func (u *URI) SetQuery(raw string) *URI { return u.withRawQuery(raw) }

// SetQueryValues returns a copy of the URI with the query rendered from vs.
func (u *URI) SetQueryValues(vs query.Values) *URI {
	return u.withRawQuery(u.queryCodec().Render(vs))
}

// HasQuery reports whether the URI has a non-empty query.
func (u *URI) HasQuery() bool { return u != nil && u.url.RawQuery != "" }

func (u *URI) withRawQuery(raw string) *URI {
	u2 := u.clone()
	if u2 == nil {
		return nil
	}
	u2.url.RawQuery = strings.TrimPrefix(raw, "?")
	u2.url.ForceQuery = false
	return u2
}
