package uri

import (
	"encoding/base64"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/ghettovoice/urikit/internal/randutils"
	"github.com/ghettovoice/urikit/internal/util"
)

// DefaultDateTimeLayout is the layout used by [SlugBuilder.WithDateTimeSuffix]
// when the layout is empty.
const DefaultDateTimeLayout = "20060102030405"

// RandSource generates random URL-safe strings of n characters.
type RandSource interface {
	RandString(n int) string
}

type cryptoRandSource struct{}

func (cryptoRandSource) RandString(n int) string { return randutils.RandString(n) }

// SlugBuilder builds a URL path segment from free text.
// SlugBuilder is an immutable value, the zero SlugBuilder is ready to use.
//
//	uri.SlugBuilder{}.
//		WithText("  My  first Post ").
//		WithRandomSuffix(6).
//		Build() // "my-first-post-Xa9_2b"
type SlugBuilder struct {
	text      string
	maxLen    int
	spaceChar rune
	randLen   int
	dtSuffix  string
	rnd       RandSource
}

// WithText returns a copy of the builder with the text to build the slug from.
func (b SlugBuilder) WithText(text string) SlugBuilder {
	b.text = text
	return b
}

// WithMaxLength returns a copy of the builder that truncates the slug text to n characters.
// The suffix is not counted. Non-positive n disables truncation.
func (b SlugBuilder) WithMaxLength(n int) SlugBuilder {
	b.maxLen = n
	return b
}

// WithSpaceChar returns a copy of the builder that replaces spaces with c.
// Default: '-'.
func (b SlugBuilder) WithSpaceChar(c rune) SlugBuilder {
	b.spaceChar = c
	return b
}

// WithRandomSuffix returns a copy of the builder that appends a random suffix of n characters.
// Non-positive n disables the suffix.
func (b SlugBuilder) WithRandomSuffix(n int) SlugBuilder {
	b.randLen = n
	return b
}

// WithDateTimeSuffix returns a copy of the builder that appends t formatted with layout
// and encoded with URL-safe base64 without padding.
// Empty layout means [DefaultDateTimeLayout].
// The date-time suffix takes precedence over the random suffix.
func (b SlugBuilder) WithDateTimeSuffix(t time.Time, layout string) SlugBuilder {
	if layout == "" {
		layout = DefaultDateTimeLayout
	}
	b.dtSuffix = base64.RawURLEncoding.EncodeToString([]byte(t.Format(layout)))
	return b
}

// WithRandSource returns a copy of the builder that takes random suffixes from src.
// Nil resets it to the default cryptographically secure source.
func (b SlugBuilder) WithRandSource(src RandSource) SlugBuilder {
	b.rnd = src
	return b
}

func (b SlugBuilder) space() string {
	if b.spaceChar == 0 {
		return "-"
	}
	return string(b.spaceChar)
}

func (b SlugBuilder) randSource() RandSource {
	if b.rnd == nil {
		return cryptoRandSource{}
	}
	return b.rnd
}

// Build returns the slug.
//
// The text is trimmed, runs of spaces are collapsed, the result is lowercased,
// spaces are replaced with the space char and the text is truncated to the max length.
// Then the suffix, if any, is appended after "-".
func (b SlugBuilder) Build() string {
	slug := util.LCase(util.CollapseSpaces(util.TrimSP(b.text)))
	if b.maxLen > 0 && utf8.RuneCountInString(slug) > b.maxLen {
		slug = strings.TrimRight(string([]rune(slug)[:b.maxLen]), " ")
	}
	slug = strings.ReplaceAll(slug, " ", b.space())

	suffix := b.dtSuffix
	if suffix == "" && b.randLen > 0 {
		suffix = b.randSource().RandString(b.randLen)
	}
	if suffix == "" {
		return slug
	}
	return slug + "-" + suffix
}
