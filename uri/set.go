package uri

import (
	"net"
	"strconv"
	"strings"

	"braces.dev/errtrace"
	"github.com/miekg/dns"
	"golang.org/x/net/idna"

	"github.com/ghettovoice/urikit/internal/grammar"
	"github.com/ghettovoice/urikit/internal/util"
)

// SetScheme returns a copy of the URI with the scheme replaced.
// The scheme is lowercased, it must match RFC 3986 scheme rule.
func (u *URI) SetScheme(scheme string) (*URI, error) {
	if u == nil {
		return nil, errtrace.Wrap(newNilURIError())
	}
	if !grammar.IsScheme(scheme) {
		return nil, errtrace.Wrap(newInvalidArgumentError("invalid scheme %q", scheme))
	}
	u2 := u.clone()
	u2.url.Scheme = util.LCase(scheme)
	return u2, nil
}

// SetHost returns a copy of the URI with the host replaced, the port is kept.
// The host must be an IP address, optionally in brackets, or a valid domain name.
// Internationalized domain names are converted to the ASCII form.
func (u *URI) SetHost(host string) (*URI, error) {
	if u == nil {
		return nil, errtrace.Wrap(newNilURIError())
	}
	h, ok := normalizeHost(strings.TrimSuffix(strings.TrimPrefix(host, "["), "]"))
	if !ok {
		return nil, errtrace.Wrap(newInvalidArgumentError("invalid host %q", host))
	}
	u2 := u.clone()
	u2.url.Host = joinHostPort(h, u.url.Port())
	return u2, nil
}

// SetPort returns a copy of the URI with the port replaced.
// The port must be in range 0-65535 and the URI must have a host.
func (u *URI) SetPort(port int) (*URI, error) {
	if u == nil {
		return nil, errtrace.Wrap(newNilURIError())
	}
	if port < 0 || port > 65535 {
		return nil, errtrace.Wrap(newInvalidArgumentError("port %d out of range", port))
	}
	h := u.url.Hostname()
	if h == "" {
		return nil, errtrace.Wrap(newInvalidArgumentError("URI has no host"))
	}
	u2 := u.clone()
	u2.url.Host = joinHostPort(h, strconv.Itoa(port))
	return u2, nil
}

// RemovePort returns a copy of the URI without port.
// Setters without error result return nil for nil URI.
func (u *URI) RemovePort() *URI {
	u2 := u.clone()
	if u2 != nil && u.url.Port() != "" {
		u2.url.Host = joinHostPort(u.url.Hostname(), "")
	}
	return u2
}

// SetPath returns a copy of the URI with the path replaced.
func (u *URI) SetPath(path string) *URI {
	u2 := u.clone()
	if u2 == nil {
		return nil
	}
	u2.url.Path = path
	u2.url.RawPath = ""
	return u2
}

// AppendPath returns a copy of the URI with the segment appended to the path.
// Leading slashes of the segment are trimmed and exactly one "/" separates it from the path.
// Empty segment results in an unchanged copy.
func (u *URI) AppendPath(segment string) *URI {
	if u == nil || segment == "" {
		return u.clone()
	}
	return u.SetPath(strings.TrimRight(u.url.Path, "/") + "/" + strings.TrimLeft(segment, "/"))
}

// HasPath reports whether the URI has a path other than "/".
func (u *URI) HasPath() bool { return u != nil && u.url.Path != "" && u.url.Path != "/" }

// SetFragment returns a copy of the URI with the fragment replaced, leading "#" is trimmed.
func (u *URI) SetFragment(fragment string) *URI {
	u2 := u.clone()
	if u2 == nil {
		return nil
	}
	u2.url.Fragment = strings.TrimPrefix(fragment, "#")
	u2.url.RawFragment = ""
	return u2
}

// RemoveFragment returns a copy of the URI without fragment.
func (u *URI) RemoveFragment() *URI { return u.SetFragment("") }

// HasFragment reports whether the URI has a non-empty fragment.
func (u *URI) HasFragment() bool { return u != nil && u.url.Fragment != "" }

func normalizeHost(h string) (string, bool) {
	if h == "" {
		return "", false
	}
	if net.ParseIP(h) != nil {
		return h, true
	}

	h, err := idna.Lookup.ToASCII(h)
	if err != nil {
		return "", false
	}
	if !grammar.IsHostname(h) {
		return "", false
	}
	_, ok := dns.IsDomainName(h)
	return h, ok
}

func joinHostPort(host, port string) string {
	if port != "" {
		return net.JoinHostPort(host, port)
	}
	if strings.Contains(host, ":") {
		return "[" + host + "]"
	}
	return host
}
