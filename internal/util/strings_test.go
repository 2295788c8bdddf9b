package util_test

import (
	"testing"

	"github.com/ghettovoice/urikit/internal/util"
)

func TestCollapseSpaces(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in, want string
	}{
		{"", ""},
		{"a b", "a b"},
		{"a  b", "a b"},
		{"  a   b  ", " a b "},
		{"a\t\tb", "a\t\tb"},
	}

	for _, c := range cases {
		if got := util.CollapseSpaces(c.in); got != c.want {
			t.Errorf("util.CollapseSpaces(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestEqFold(t *testing.T) {
	t.Parallel()

	if !util.EqFold("Name", "nAME") {
		t.Error("util.EqFold(\"Name\", \"nAME\") = false, want true")
	}
	if util.EqFold("name", "names") {
		t.Error("util.EqFold(\"name\", \"names\") = true, want false")
	}
	if got, want := util.LCase(util.TrimSP("  Hello World ")), "hello world"; got != want {
		t.Errorf("util.LCase(util.TrimSP()) = %q, want %q", got, want)
	}
}

func TestMust2(t *testing.T) {
	t.Parallel()

	if got := util.Must2(42, nil); got != 42 {
		t.Errorf("util.Must2(42, nil) = %d, want 42", got)
	}

	defer func() {
		if recover() == nil {
			t.Error("util.Must2() did not panic on error")
		}
	}()
	util.Must2(0, errTest)
}

type testError string

func (e testError) Error() string { return string(e) }

const errTest testError = "test"
