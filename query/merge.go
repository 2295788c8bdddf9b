package query

import (
	"slices"

	"github.com/ghettovoice/urikit/internal/util"
)

// Merge applies updates to existing values in the given order and returns the result.
// Existing values are never modified.
//
// An update with absent value removes every pair with a matching name.
// An update with present value, including empty one, replaces the first matching pair
// in place and removes the remaining ones, so a multi-valued parameter collapses
// to a single value. If there is no match, the update is appended.
//
// Names are matched case-sensitively unless the codec is configured with [Options.FoldCase].
func (c *Codec) Merge(existing Values, updates ...Pair) Values {
	pairs := slices.Clone(existing.pairs)
	for _, upd := range updates {
		match := nameMatcher(upd.Name, c.opts.foldCase())
		if !upd.Value.IsSet() {
			pairs = slices.DeleteFunc(pairs, match)
			continue
		}

		i := slices.IndexFunc(pairs, match)
		if i < 0 {
			pairs = append(pairs, upd)
			continue
		}
		pairs = slices.Concat(pairs[:i], []Pair{upd}, slices.DeleteFunc(pairs[i+1:], match))
	}
	return Values{pairs: pairs}
}

func nameMatcher(name string, fold bool) func(Pair) bool {
	if fold {
		return func(p Pair) bool { return util.EqFold(p.Name, name) }
	}
	return func(p Pair) bool { return p.Name == name }
}

// Merge applies updates to existing values with the [Default] codec.
func Merge(existing Values, updates ...Pair) Values { return Default().Merge(existing, updates...) }
