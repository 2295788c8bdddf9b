package grammar

import (
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/urikit/internal/errorutil"
)

// FormEscape escapes s in application/x-www-form-urlencoded manner: space is replaced with "+",
// every byte matched by shouldEscape callback is replaced with the hex form "% HEXDIG HEXDIG".
// If shouldEscape is nil, all bytes except unreserved ones are escaped.
// "%" and "+" are always escaped.
func FormEscape(s string, shouldEscape func(c byte) bool) string {
	if len(s) == 0 {
		return s
	}

	if shouldEscape == nil {
		shouldEscape = func(c byte) bool { return !IsCharUnreserved(c) }
	}
	mustEscape := func(c byte) bool { return c == '%' || c == '+' || shouldEscape(c) }

	i := 0
	for ; i < len(s); i++ {
		if s[i] == ' ' || mustEscape(s[i]) {
			break
		}
	}
	if i == len(s) {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + 2*(len(s)-i))
	b.WriteString(s[:i])
	for ; i < len(s); i++ {
		switch c := s[i]; {
		case c == ' ':
			b.WriteByte('+')
		case mustEscape(c):
			b.WriteByte('%')
			b.WriteByte(upperhex[c>>4])
			b.WriteByte(upperhex[c&15])
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

// FormUnescape converts each "+" into space and each 3-byte encoded substring
// of the form "% HEXDIG HEXDIG" into the hex-decoded byte.
// A truncated or non-hex sequence results in [ErrMalformedEscape] error.
func FormUnescape(s string) (string, error) {
	i := 0
	for ; i < len(s); i++ {
		if s[i] == '%' || s[i] == '+' {
			break
		}
	}
	if i == len(s) {
		return s, nil
	}

	var b strings.Builder
	b.Grow(len(s))
	b.WriteString(s[:i])
	for ; i < len(s); i++ {
		switch c := s[i]; c {
		case '+':
			b.WriteByte(' ')
		case '%':
			if i+2 >= len(s) || !ishex(s[i+1]) || !ishex(s[i+2]) {
				end := min(i+3, len(s))
				return "", errtrace.Wrap(errorutil.NewWrapperError(
					ErrMalformedEscape,
					"invalid sequence %q at offset %d", s[i:end], i,
				))
			}
			b.WriteByte(unhex(s[i+1])<<4 | unhex(s[i+2]))
			i += 2
		default:
			b.WriteByte(c)
		}
	}
	return b.String(), nil
}

const upperhex = "0123456789ABCDEF"

func ishex(c byte) bool {
	switch {
	case '0' <= c && c <= '9':
		return true
	case 'a' <= c && c <= 'f':
		return true
	case 'A' <= c && c <= 'F':
		return true
	}
	return false
}

func unhex(c byte) byte {
	switch {
	case '0' <= c && c <= '9':
		return c - '0'
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10
	}
	return 0
}
