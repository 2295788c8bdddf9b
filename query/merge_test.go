package query_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ghettovoice/urikit/query"
)

func TestCodec_Merge(t *testing.T) {
	t.Parallel()

	sensitive := query.Default()
	insensitive := query.NewCodec(&query.Options{FoldCase: true})

	cases := []struct {
		name     string
		codec    *query.Codec
		existing query.Values
		updates  []query.Pair
		want     query.Values
	}{
		{
			"no updates",
			sensitive,
			query.NewValues(query.KV("a", "1")),
			nil,
			query.NewValues(query.KV("a", "1")),
		},
		{
			"add to empty",
			sensitive,
			query.Values{},
			[]query.Pair{query.KV("name", "value")},
			query.NewValues(query.KV("name", "value")),
		},
		{
			"replace and append",
			sensitive,
			query.NewValues(query.KV("q1", "1"), query.KV("q2", "2")),
			[]query.Pair{query.KV("q2", "3"), query.KV("q3", "10")},
			query.NewValues(query.KV("q1", "1"), query.KV("q2", "3"), query.KV("q3", "10")),
		},
		{
			"collapse repeated",
			sensitive,
			query.NewValues(query.KV("a", "1"), query.KV("a", "2")),
			[]query.Pair{query.KV("a", "3")},
			query.NewValues(query.KV("a", "3")),
		},
		{
			"replace keeps first position",
			sensitive,
			query.NewValues(query.KV("a", "1"), query.KV("b", "2"), query.KV("a", "3")),
			[]query.Pair{query.KV("a", "x")},
			query.NewValues(query.KV("a", "x"), query.KV("b", "2")),
		},
		{
			"replace flag with value",
			sensitive,
			query.NewValues(query.Flag("debug"), query.KV("b", "2")),
			[]query.Pair{query.KV("debug", "1")},
			query.NewValues(query.KV("debug", "1"), query.KV("b", "2")),
		},
		{
			"empty value is present",
			sensitive,
			query.NewValues(query.KV("a", "1")),
			[]query.Pair{query.KV("a", "")},
			query.NewValues(query.KV("a", "")),
		},
		{
			"remove all",
			sensitive,
			query.NewValues(query.KV("a", "1"), query.KV("b", "2"), query.Flag("a")),
			[]query.Pair{query.Del("a")},
			query.NewValues(query.KV("b", "2")),
		},
		{
			"remove missing",
			sensitive,
			query.NewValues(query.KV("a", "1")),
			[]query.Pair{query.Del("b")},
			query.NewValues(query.KV("a", "1")),
		},
		{
			"set then remove",
			sensitive,
			query.NewValues(query.KV("a", "1")),
			[]query.Pair{query.KV("b", "2"), query.Del("b")},
			query.NewValues(query.KV("a", "1")),
		},
		{
			"remove then set",
			sensitive,
			query.NewValues(query.KV("b", "1"), query.KV("a", "1")),
			[]query.Pair{query.Del("b"), query.KV("b", "2")},
			query.NewValues(query.KV("a", "1"), query.KV("b", "2")),
		},
		{
			"case-sensitive remove",
			sensitive,
			query.NewValues(query.KV("NAME", "1"), query.KV("b", "2")),
			[]query.Pair{query.Del("name")},
			query.NewValues(query.KV("NAME", "1"), query.KV("b", "2")),
		},
		{
			"case-sensitive set",
			sensitive,
			query.NewValues(query.KV("Name", "1")),
			[]query.Pair{query.KV("name", "2")},
			query.NewValues(query.KV("Name", "1"), query.KV("name", "2")),
		},
		{
			"case-insensitive remove",
			insensitive,
			query.NewValues(query.KV("NAME", "1"), query.KV("b", "2"), query.KV("Name", "3")),
			[]query.Pair{query.Del("name")},
			query.NewValues(query.KV("b", "2")),
		},
		{
			"case-insensitive set uses update name",
			insensitive,
			query.NewValues(query.KV("Name", "1"), query.KV("b", "2"), query.KV("NAME", "3")),
			[]query.Pair{query.KV("name", "2")},
			query.NewValues(query.KV("name", "2"), query.KV("b", "2")),
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			got := c.codec.Merge(c.existing, c.updates...)
			if diff := cmp.Diff(got, c.want); diff != "" {
				t.Errorf("codec.Merge(%v, %v) = %v, want %v\ndiff (-got +want):\n%v",
					c.existing.Pairs(), c.updates, got.Pairs(), c.want.Pairs(), diff)
			}
		})
	}
}

func TestMerge_KeepsExisting(t *testing.T) {
	t.Parallel()

	existing := query.NewValues(query.KV("a", "1"), query.KV("b", "2"), query.KV("a", "3"))
	want := existing.Clone()

	_ = query.Merge(existing, query.KV("a", "x"), query.Del("b"), query.KV("c", "4"))

	if diff := cmp.Diff(existing, want); diff != "" {
		t.Errorf("existing values modified\ndiff (-got +want):\n%v", diff)
	}
}

func TestMerge_RemoveIdempotent(t *testing.T) {
	t.Parallel()

	existing := query.NewValues(query.KV("a", "1"), query.KV("b", "2"), query.KV("a", "3"))
	once := query.Merge(existing, query.Del("a"))
	twice := query.Merge(once, query.Del("a"))
	if diff := cmp.Diff(twice, once); diff != "" {
		t.Errorf("second removal changed values\ndiff (-got +want):\n%v", diff)
	}
	if once.Has("a") {
		t.Errorf("once.Has(\"a\") = true, want false")
	}
}

func BenchmarkMerge(b *testing.B) {
	existing := query.NewValues(query.KV("q1", "1"), query.KV("q2", "2"), query.KV("q2", "3"), query.Flag("f"))
	updates := []query.Pair{query.KV("q2", "3"), query.KV("q3", "10"), query.Del("f")}
	for b.Loop() {
		_ = query.Merge(existing, updates...)
	}
}
