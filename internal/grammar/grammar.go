// Package grammar contains character classes, ABNF rules and escaping primitives for URI components.
package grammar

//go:generate go tool errtrace -w .

import "github.com/ghettovoice/abnf"

func init() {
	abnf.EnableNodeCache(1024)
}

// Error is a grammar error.
type Error string

func (e Error) Error() string { return string(e) }

// ErrMalformedEscape is returned when a percent-encoded sequence can not be decoded.
const ErrMalformedEscape Error = "malformed escape sequence"

// IsAlphanumChar checks ALPHA / DIGIT rule.
func IsAlphanumChar(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || '0' <= c && c <= '9'
}

// IsCharUnreserved checks RFC 3986 unreserved rule.
func IsCharUnreserved(c byte) bool {
	switch c {
	case '-', '.', '_', '~':
		return true
	}
	return IsAlphanumChar(c)
}

// IsScheme checks RFC 3986 scheme rule: ALPHA *( ALPHA / DIGIT / "+" / "-" / "." ).
func IsScheme[T ~string | ~[]byte](s T) bool {
	return matchAll(Scheme, s)
}

// IsHostname checks that s consists of characters allowed in DNS host names: ALPHA / DIGIT / "-" / "." / "_".
func IsHostname[T ~string | ~[]byte](s T) bool {
	return matchAll(Hostname, s)
}

func matchAll[T ~string | ~[]byte](rule func([]byte, *abnf.Nodes) error, s T) bool {
	if len(s) == 0 {
		return false
	}

	ns := abnf.NewNodes()
	defer ns.Free()

	if err := rule([]byte(s), ns); err != nil {
		return false
	}
	return ns.Best().Len() == len(s)
}
