package uri

import (
	"slices"
	"strings"

	"github.com/ghettovoice/urikit/query"
)

// PathBuilder builds a relative URI path with optional query.
// PathBuilder is an immutable value, the zero PathBuilder is ready to use.
//
//	p := uri.PathBuilder{}.
//		AddPath("/api/").
//		AddPath("users").
//		AddOrUpdateQueryParam("name", "John Smith").
//		Build() // "/api/users?name=John+Smith"
type PathBuilder struct {
	paths   []string
	updates []query.Pair
	codec   *query.Codec
}

// AddPath returns a copy of the builder with the path segment added.
func (b PathBuilder) AddPath(path string) PathBuilder {
	b.paths = slices.Concat(b.paths, []string{path})
	return b
}

// AddOrUpdateQueryParam returns a copy of the builder with the query parameter
// added or replaced.
func (b PathBuilder) AddOrUpdateQueryParam(name, value string) PathBuilder {
	b.updates = slices.Concat(b.updates, []query.Pair{query.KV(name, value)})
	return b
}

// WithQueryCodec returns a copy of the builder that renders the query with the codec.
// Nil resets it to [query.Default].
func (b PathBuilder) WithQueryCodec(c *query.Codec) PathBuilder {
	b.codec = c
	return b
}

// Build returns the path.
//
// Path segments are joined with exactly one "/", the result always starts with "/"
// and keeps the trailing slash of the last segment. The query is rendered with the codec.
func (b PathBuilder) Build() string {
	path := "/"
	for _, p := range b.paths {
		path = strings.TrimRight(path, "/") + "/" + strings.TrimLeft(p, "/")
	}

	codec := b.codec
	if codec == nil {
		codec = query.Default()
	}
	return path + codec.Render(codec.Merge(query.Values{}, b.updates...))
}
