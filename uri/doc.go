// Package uri provides an immutable URI value built on top of [net/url.URL]
// with query string manipulation driven by the [query] package.
//
// # Overview
//
// [URI] wraps a parsed URI reference. Every modifying method returns a new URI
// and leaves the receiver untouched, so URIs can be freely shared between goroutines.
//
//	u, err := uri.Parse("http://api.giphy.com/v1/gifs/search")
//	if err != nil {
//	    return err
//	}
//	u, err = u.AddOrUpdateQueryParam("api_key", query.Val("ABC123"))
//	if err != nil {
//	    return err
//	}
//	u = u.SetFragment("myFrag")
//	fmt.Println(u) // http://api.giphy.com/v1/gifs/search?api_key=ABC123#myFrag
//
// # Query
//
// Query operations parse the current raw query with the URI codec, apply the updates
// and render the result back. The codec is [query.Default] unless another one is selected
// with [URI.WithQueryCodec]. See [query.Codec.Merge] for the update rules.
//
// # Builders
//
// [PathBuilder] composes a relative path with query, [SlugBuilder] turns free text
// into a path segment with optional date-time or random suffix.
// Both builders are immutable values, each With/Add method returns an updated copy.
package uri

//go:generate go tool errtrace -w .
//go:generate go tool mockgen -destination=../internal/testutil/randmock/randmock.go -package=randmock . RandSource
