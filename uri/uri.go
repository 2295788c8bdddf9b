package uri

import (
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"strconv"

	"braces.dev/errtrace"

	"github.com/ghettovoice/urikit/internal/util"
	"github.com/ghettovoice/urikit/query"
)

// URI is an immutable URI reference.
// The zero URI is empty and ready to use.
type URI struct {
	url   url.URL
	codec *query.Codec
}

// Parse parses a URI reference from the given input s.
func Parse(s string) (*URI, error) {
	if s == "" {
		return nil, errtrace.Wrap(newMalformedInputError("empty input"))
	}

	u, err := url.Parse(s)
	if err != nil {
		return nil, errtrace.Wrap(newMalformedInputError(err))
	}
	return &URI{url: *u}, nil
}

// MustParse is like [Parse] but panics on error.
func MustParse(s string) *URI { return util.Must2(Parse(s)) }

// FromURL creates a URI from a copy of u.
func FromURL(u *url.URL) *URI {
	if u == nil {
		return nil
	}
	return &URI{url: cloneURL(u)}
}

func cloneURL(u *url.URL) url.URL {
	u2 := *u
	if u.User != nil {
		if pwd, ok := u.User.Password(); ok {
			u2.User = url.UserPassword(u.User.Username(), pwd)
		} else {
			u2.User = url.User(u.User.Username())
		}
	}
	return u2
}

// Clone returns a deep copy of the URI.
func (u *URI) Clone() *URI {
	if u == nil {
		return nil
	}
	return u.clone()
}

func (u *URI) clone() *URI {
	if u == nil {
		return nil
	}
	return &URI{url: cloneURL(&u.url), codec: u.codec}
}

// URL returns a copy of the underlying [url.URL].
func (u *URI) URL() *url.URL {
	if u == nil {
		return nil
	}
	u2 := cloneURL(&u.url)
	return &u2
}

// Scheme returns the URI scheme.
func (u *URI) Scheme() string {
	if u == nil {
		return ""
	}
	return u.url.Scheme
}

// Host returns the host with optional port.
func (u *URI) Host() string {
	if u == nil {
		return ""
	}
	return u.url.Host
}

// Hostname returns the host without port and IPv6 brackets.
func (u *URI) Hostname() string {
	if u == nil {
		return ""
	}
	return u.url.Hostname()
}

// Port returns the port or empty string if there is no port.
func (u *URI) Port() string {
	if u == nil {
		return ""
	}
	return u.url.Port()
}

// Path returns the decoded path.
func (u *URI) Path() string {
	if u == nil {
		return ""
	}
	return u.url.Path
}

// RawQuery returns the encoded query without leading "?".
func (u *URI) RawQuery() string {
	if u == nil {
		return ""
	}
	return u.url.RawQuery
}

// Fragment returns the decoded fragment without leading "#".
func (u *URI) Fragment() string {
	if u == nil {
		return ""
	}
	return u.url.Fragment
}

// RenderTo writes the URI to the provided writer.
func (u *URI) RenderTo(w io.Writer) (num int, err error) {
	if u == nil {
		return 0, nil
	}
	return errtrace.Wrap2(io.WriteString(w, u.url.String()))
}

// Render returns the string representation of the URI.
func (u *URI) Render() string {
	if u == nil {
		return ""
	}
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	u.RenderTo(sb) //nolint:errcheck
	return sb.String()
}

// String returns the string representation of the URI.
func (u *URI) String() string {
	return u.Render()
}

// Format implements [fmt.Formatter] for custom formatting of the URI.
func (u *URI) Format(f fmt.State, verb rune) {
	switch verb {
	case 's':
		if f.Flag('+') {
			u.RenderTo(f) //nolint:errcheck
			return
		}
		fmt.Fprint(f, u.String())
		return
	case 'q':
		fmt.Fprint(f, strconv.Quote(u.String()))
		return
	default:
		type hideMethods URI
		type URI hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), (*URI)(u))
		return
	}
}

// Equal compares this URI with another for equality.
// Scheme and host are compared case-insensitively, other components must match exactly.
// The query codec is not compared.
func (u *URI) Equal(val any) bool {
	var other *URI
	switch v := val.(type) {
	case URI:
		other = &v
	case *URI:
		other = v
	default:
		return false
	}

	if u == other {
		return true
	} else if u == nil || other == nil {
		return false
	}

	if !util.EqFold(u.url.Scheme, other.url.Scheme) || !util.EqFold(u.url.Host, other.url.Host) {
		return false
	}
	u1, u2 := cloneURL(&u.url), cloneURL(&other.url)
	u1.Scheme, u1.Host = "", ""
	u2.Scheme, u2.Host = "", ""
	return u1.String() == u2.String()
}

// IsValid checks whether the URI has at least one of opaque part, host or path.
func (u *URI) IsValid() bool {
	return u != nil &&
		(util.TrimSP(u.url.Opaque) != "" ||
			util.TrimSP(u.url.Host) != "" ||
			util.TrimSP(u.url.Path) != "")
}

// MarshalText implements [encoding.TextMarshaler].
func (u *URI) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (u *URI) UnmarshalText(text []byte) error {
	u1, err := Parse(string(text))
	if err != nil {
		*u = URI{}
		return errtrace.Wrap(err)
	}
	*u = *u1
	return nil
}

// LogValue implements [slog.LogValuer].
// The password of user info is redacted.
func (u *URI) LogValue() slog.Value {
	if u == nil {
		return slog.AnyValue(nil)
	}
	return slog.StringValue(u.url.Redacted())
}
