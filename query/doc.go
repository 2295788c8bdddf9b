// Package query implements conversion between raw URI query strings and ordered
// multi-valued parameter collections.
//
// # Data model
//
// [Values] is an immutable ordered list of [Pair]. A name may appear more than once,
// insertion order is preserved for names and repeated values. A [Value] may be absent
// to represent a bare flag parameter:
//
//	?flag    // Flag("flag"), absent value
//	?flag=   // KV("flag", ""), present empty value
//
// All names and values stored in [Values] are decoded.
//
// # Parsing and rendering
//
// [Codec.Parse] strips a single leading "?", splits the input on "&" and splits every
// pair at the first "=". Names and values are decoded in form manner ("+" is a space).
// Empty tokens produced by "a=1&&b=2" or a trailing "&" are kept as pairs with an
// empty name and absent value.
//
// [Codec.Render] writes pairs in order, "?" before the first one and "&" before the others.
// Pairs with an empty name are skipped, so an empty collection renders to "" and never to "?".
//
//	vs, _ := query.Parse("?name=John+Smith&flag")
//	vs.Get("name")        // "John Smith"
//	query.Render(vs)      // "?name=John+Smith&flag"
//
// # Updates
//
// [Codec.Merge] layers an ordered update set over existing values: a pair with absent
// value removes every entry with that name, a pair with present value replaces the first
// entry in place and drops the other ones or appends a new entry.
//
//	query.AddOrUpdateParams("q1=1&q2=2", []query.Pair{query.KV("q2", "3"), query.KV("q3", "10")})
//	// "?q1=1&q2=3&q3=10"
//
// Name matching is case-sensitive by default, see [Options.FoldCase].
//
// # Concurrency
//
// All functions are pure. [Codec] and [Values] are never mutated after construction
// and are safe for concurrent use.
package query

//go:generate go tool errtrace -w .
