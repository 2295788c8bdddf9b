package query

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/urikit/internal/errorutil"
	"github.com/ghettovoice/urikit/internal/grammar"
	"github.com/ghettovoice/urikit/internal/ioutil"
	"github.com/ghettovoice/urikit/internal/util"
	"github.com/ghettovoice/urikit/log"
)

// Encode escapes a name or value for safe inclusion in a query string.
// Space is encoded as "+", all bytes except ALPHA / DIGIT / "-" / "." / "_" / "~"
// are percent-encoded.
func Encode(token string) string {
	return grammar.FormEscape(token, nil)
}

// Decode reverses [Encode]: it decodes "%XX" sequences and turns "+" into space.
// Tokens without encoded sequences are returned unchanged.
// A malformed sequence results in [ErrDecode] error.
func Decode(token string) (string, error) {
	return errtrace.Wrap2(grammar.FormUnescape(token))
}

// ParsePair parses one "name=value" or bare "name" token, already split on "&".
// The token is split at the first "=", later "=" characters belong to the value.
// A token without "=" results in a pair with absent value.
// Both name and value are decoded with [Decode].
func ParsePair(pair string) (Pair, error) {
	p, err := Default().parsePair(pair)
	return p, errtrace.Wrap(err)
}

// Options are used to configure a [Codec].
type Options struct {
	// FoldCase enables case-insensitive name matching in [Codec.Merge] and derived
	// update and removal operations.
	// Default: false, names are matched case-sensitively.
	FoldCase bool
	// Lenient makes parsing keep the raw text of a name or value that can not be decoded
	// instead of failing with [ErrDecode].
	// Default: false.
	Lenient bool
	// Log is the logger used to report lenient decoding fallbacks.
	// If nil, the [log.Default] is used.
	Log *slog.Logger
}

func (o *Options) foldCase() bool { return o != nil && o.FoldCase }

func (o *Options) lenient() bool { return o != nil && o.Lenient }

func (o *Options) log() *slog.Logger {
	if o == nil || o.Log == nil {
		return log.Default()
	}
	return o.Log
}

// Codec converts raw query strings to [Values] and back, and applies updates to them.
// Codec has no mutable state and is safe for concurrent use.
type Codec struct {
	opts Options
}

// NewCodec creates a new codec.
// Options are optional, default options are used if nil (see [Options]).
func NewCodec(opts *Options) *Codec {
	c := new(Codec)
	if opts != nil {
		c.opts = *opts
	}
	return c
}

var defCodec = NewCodec(nil)

// Default returns the codec with default options: case-sensitive and strict.
func Default() *Codec { return defCodec }

// Parse parses a raw query string, optionally starting with "?", into ordered values.
//
// Empty input and a sole "?" result in empty values.
// Empty tokens between "&" are kept as pairs with empty name and absent value.
// Decoding errors of all tokens are collected, every one of them matches [ErrDecode].
func (c *Codec) Parse(raw string) (Values, error) {
	if raw == "" || raw == "?" {
		return Values{}, nil
	}

	raw = strings.TrimPrefix(raw, "?")
	pairs := make([]Pair, 0, strings.Count(raw, "&")+1)

	var errs []error
	for tok := range strings.SplitSeq(raw, "&") {
		p, err := c.parsePair(tok)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		pairs = append(pairs, p)
	}
	if len(errs) > 0 {
		return Values{}, errtrace.Wrap(errorutil.JoinPrefix("parse query", errs...))
	}
	return Values{pairs: pairs}, nil
}

func (c *Codec) parsePair(tok string) (Pair, error) {
	rawName, rawVal, hasVal := strings.Cut(tok, "=")

	name, err := c.decode(rawName)
	if err != nil {
		return Pair{}, errtrace.Wrap(err)
	}
	if !hasVal {
		return Flag(name), nil
	}

	val, err := c.decode(rawVal)
	if err != nil {
		return Pair{}, errtrace.Wrap(err)
	}
	return KV(name, val), nil
}

func (c *Codec) decode(tok string) (string, error) {
	s, err := Decode(tok)
	if err == nil {
		return s, nil
	}
	if c.opts.lenient() {
		c.opts.log().LogAttrs(context.Background(), slog.LevelDebug, "keep undecodable query token as is",
			slog.String("token", tok),
			slog.Any("error", err),
		)
		return tok, nil
	}
	return "", errtrace.Wrap(err)
}

// Render renders values to a raw query string.
//
// Pairs are written in order with "?" before the first one and "&" before the others.
// The value part is omitted for absent values. Pairs with empty name are skipped.
// The result is either empty or starts with exactly one "?".
func (c *Codec) Render(vs Values) string {
	if vs.IsEmpty() {
		return ""
	}

	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	c.RenderTo(sb, vs) //nolint:errcheck
	return sb.String()
}

// RenderTo writes rendered values to w, see [Codec.Render].
func (c *Codec) RenderTo(w io.Writer, vs Values) (num int, err error) {
	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)

	sep := "?"
	for _, p := range vs.pairs {
		if p.Name == "" {
			continue
		}
		cw.WriteString(sep, Encode(p.Name))
		if v, ok := p.Value.Get(); ok {
			cw.WriteString("=", Encode(v))
		}
		sep = "&"
	}
	return errtrace.Wrap2(cw.Result())
}

// FoldCase reports whether the codec matches names case-insensitively.
func (c *Codec) FoldCase() bool { return c.opts.foldCase() }

// Parse parses a raw query string with the [Default] codec.
func Parse(raw string) (Values, error) { return errtrace.Wrap2(Default().Parse(raw)) }

// Render renders values with the [Default] codec.
func Render(vs Values) string { return Default().Render(vs) }
