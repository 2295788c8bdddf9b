package grammar

import "github.com/ghettovoice/abnf"

var (
	alpha = abnf.AltFirst(
		"ALPHA",
		abnf.Range("%x41-5A", []byte{'A'}, []byte{'Z'}),
		abnf.Range("%x61-7A", []byte{'a'}, []byte{'z'}),
	)
	digit = abnf.Range("DIGIT", []byte{'0'}, []byte{'9'})
)

var scheme = abnf.Concat(
	"scheme",
	alpha,
	abnf.Repeat0Inf(
		"scheme-tail",
		abnf.AltFirst(
			"scheme-char",
			alpha,
			digit,
			abnf.Literal(`"+"`, []byte{'+'}),
			abnf.Literal(`"-"`, []byte{'-'}),
			abnf.Literal(`"."`, []byte{'.'}),
		),
	),
)

// Scheme matches RFC 3986 scheme rule at the start of s.
func Scheme(s []byte, ns *abnf.Nodes) error {
	return scheme(s, 0, ns) //errtrace:skip
}

var hostname = abnf.Repeat0Inf(
	"hostname",
	abnf.AltFirst(
		"hostname-char",
		alpha,
		digit,
		abnf.Literal(`"-"`, []byte{'-'}),
		abnf.Literal(`"."`, []byte{'.'}),
		abnf.Literal(`"_"`, []byte{'_'}),
	),
)

// Hostname matches a run of DNS host name characters at the start of s.
func Hostname(s []byte, ns *abnf.Nodes) error {
	return hostname(s, 0, ns) //errtrace:skip
}
