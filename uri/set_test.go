package uri_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/ghettovoice/urikit/uri"
)

func TestURI_SetScheme(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		scheme  string
		want    string
		wantErr error
	}{
		{"https", "https", "https://example.com/a", nil},
		{"uppercase", "HTTPS", "https://example.com/a", nil},
		{"with plus", "svn+ssh", "svn+ssh://example.com/a", nil},
		{"empty", "", "", uri.ErrInvalidArgument},
		{"leading digit", "1http", "", uri.ErrInvalidArgument},
		{"bad char", "ht_tp", "", uri.ErrInvalidArgument},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			got, err := uri.MustParse("http://example.com/a").SetScheme(c.scheme)
			if diff := cmp.Diff(err, c.wantErr, cmpopts.EquateErrors()); diff != "" {
				t.Errorf("uri.SetScheme(%q) error = %v, want %v\ndiff (-got +want):\n%v", c.scheme, err, c.wantErr, diff)
			}
			if got.String() != c.want {
				t.Errorf("uri.SetScheme(%q) = %q, want %q", c.scheme, got, c.want)
			}
		})
	}
}

func TestURI_SetHost(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		uri     string
		host    string
		want    string
		wantErr error
	}{
		{"domain", "http://example.com/a", "api.giphy.com", "http://api.giphy.com/a", nil},
		{"keep port", "http://example.com:8080/a", "localhost", "http://localhost:8080/a", nil},
		{"ipv4", "http://example.com/a", "127.0.0.1", "http://127.0.0.1/a", nil},
		{"ipv6", "http://example.com/a", "::1", "http://[::1]/a", nil},
		{"ipv6 brackets with port", "http://example.com:80/a", "[::1]", "http://[::1]:80/a", nil},
		{"idn", "http://example.com/a", "bücher.example", "http://xn--bcher-kva.example/a", nil},
		{"empty", "http://example.com/a", "", "", uri.ErrInvalidArgument},
		{"space", "http://example.com/a", "exa mple.com", "", uri.ErrInvalidArgument},
		{"empty label", "http://example.com/a", "example..com", "", uri.ErrInvalidArgument},
		{"with port", "http://example.com/a", "example.com:80", "", uri.ErrInvalidArgument},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			got, err := uri.MustParse(c.uri).SetHost(c.host)
			if diff := cmp.Diff(err, c.wantErr, cmpopts.EquateErrors()); diff != "" {
				t.Errorf("uri.SetHost(%q) error = %v, want %v\ndiff (-got +want):\n%v", c.host, err, c.wantErr, diff)
			}
			if got.String() != c.want {
				t.Errorf("uri.SetHost(%q) = %q, want %q", c.host, got, c.want)
			}
		})
	}
}

func TestURI_SetPort(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		uri     string
		port    int
		want    string
		wantErr error
	}{
		{"add", "http://example.com/a", 8080, "http://example.com:8080/a", nil},
		{"replace", "http://example.com:80/a", 443, "http://example.com:443/a", nil},
		{"zero", "http://example.com/a", 0, "http://example.com:0/a", nil},
		{"max", "http://example.com/a", 65535, "http://example.com:65535/a", nil},
		{"ipv6", "http://[::1]/a", 5060, "http://[::1]:5060/a", nil},
		{"negative", "http://example.com/a", -1, "", uri.ErrInvalidArgument},
		{"too big", "http://example.com/a", 65536, "", uri.ErrInvalidArgument},
		{"no host", "/a", 80, "", uri.ErrInvalidArgument},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			got, err := uri.MustParse(c.uri).SetPort(c.port)
			if diff := cmp.Diff(err, c.wantErr, cmpopts.EquateErrors()); diff != "" {
				t.Errorf("uri.SetPort(%d) error = %v, want %v\ndiff (-got +want):\n%v", c.port, err, c.wantErr, diff)
			}
			if got.String() != c.want {
				t.Errorf("uri.SetPort(%d) = %q, want %q", c.port, got, c.want)
			}
		})
	}
}

func TestURI_RemovePort(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in, want string
	}{
		{"http://example.com:8080/a", "http://example.com/a"},
		{"http://example.com/a", "http://example.com/a"},
		{"http://[::1]:80/a", "http://[::1]/a"},
	}

	for _, c := range cases {
		if got := uri.MustParse(c.in).RemovePort().String(); got != c.want {
			t.Errorf("uri.RemovePort() of %q = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestURI_AppendPath(t *testing.T) {
	t.Parallel()

	cases := []struct {
		uri     string
		segment string
		want    string
	}{
		{"http://example.com", "a", "http://example.com/a"},
		{"http://example.com/", "a", "http://example.com/a"},
		{"http://example.com/v1", "gifs", "http://example.com/v1/gifs"},
		{"http://example.com/v1/", "/gifs", "http://example.com/v1/gifs"},
		{"http://example.com/v1//", "//gifs/", "http://example.com/v1/gifs/"},
		{"http://example.com/v1?a=1#f", "gifs", "http://example.com/v1/gifs?a=1#f"},
		{"http://example.com/v1", "", "http://example.com/v1"},
	}

	for _, c := range cases {
		if got := uri.MustParse(c.uri).AppendPath(c.segment).String(); got != c.want {
			t.Errorf("uri.AppendPath(%q) of %q = %q, want %q", c.segment, c.uri, got, c.want)
		}
	}
}

func TestURI_SetPath(t *testing.T) {
	t.Parallel()

	u := uri.MustParse("http://example.com/old%2Fpath?a=1")
	if got, want := u.SetPath("/new path").String(), "http://example.com/new%20path?a=1"; got != want {
		t.Errorf("uri.SetPath() = %q, want %q", got, want)
	}
	if got, want := u.SetPath("").String(), "http://example.com?a=1"; got != want {
		t.Errorf("uri.SetPath(\"\") = %q, want %q", got, want)
	}
}

func TestURI_Fragment(t *testing.T) {
	t.Parallel()

	u := uri.MustParse("http://example.com/a?b=c")

	withFrag := u.SetFragment("#myFrag")
	if got, want := withFrag.String(), "http://example.com/a?b=c#myFrag"; got != want {
		t.Errorf("uri.SetFragment() = %q, want %q", got, want)
	}
	if !withFrag.HasFragment() || u.HasFragment() {
		t.Errorf("uri.HasFragment() = (%v, %v), want (true, false)", withFrag.HasFragment(), u.HasFragment())
	}
	if got, want := withFrag.RemoveFragment().String(), "http://example.com/a?b=c"; got != want {
		t.Errorf("uri.RemoveFragment() = %q, want %q", got, want)
	}
}

func TestURI_Has(t *testing.T) {
	t.Parallel()

	cases := []struct {
		uri                           string
		wantPath, wantQuery, wantFrag bool
	}{
		{"http://example.com", false, false, false},
		{"http://example.com/", false, false, false},
		{"http://example.com/?", false, false, false},
		{"http://example.com/#", false, false, false},
		{"http://example.com/a?b#c", true, true, true},
		{"/a", true, false, false},
	}

	for _, c := range cases {
		u := uri.MustParse(c.uri)
		if got := u.HasPath(); got != c.wantPath {
			t.Errorf("uri.HasPath() of %q = %v, want %v", c.uri, got, c.wantPath)
		}
		if got := u.HasQuery(); got != c.wantQuery {
			t.Errorf("uri.HasQuery() of %q = %v, want %v", c.uri, got, c.wantQuery)
		}
		if got := u.HasFragment(); got != c.wantFrag {
			t.Errorf("uri.HasFragment() of %q = %v, want %v", c.uri, got, c.wantFrag)
		}
	}
}
