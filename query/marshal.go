package query

import (
	"fmt"
	"reflect"
	"slices"
	"strings"

	"braces.dev/errtrace"
)

// Marshal renders exported fields of a struct or a pointer to struct as a query string
// with the [Default] codec.
//
// The parameter name is taken from the "query" struct tag or the field name.
// Tag "-" skips the field, option "omitempty" skips zero values.
// Nil pointers, interfaces, maps and slices are always skipped.
// Values are formatted with [fmt.Sprint].
//
//	type Search struct {
//		Query  string `query:"q"`
//		Limit  int    `query:"limit,omitempty"`
//		Cursor *string
//	}
//
//	query.Marshal(Search{Query: "go modules"}) // "?q=go+modules"
func Marshal(v any) (string, error) {
	vs, err := MarshalValues(v)
	if err != nil {
		return "", errtrace.Wrap(err)
	}
	return Default().Render(vs), nil
}

// MarshalValues converts a struct to [Values], see [Marshal].
func MarshalValues(v any) (Values, error) {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return Values{}, errtrace.Wrap(newInvalidArgumentError("nil %T", v))
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return Values{}, errtrace.Wrap(newInvalidArgumentError("unexpected type %T, want struct", v))
	}

	rt := rv.Type()
	pairs := make([]Pair, 0, rt.NumField())
	for i := range rt.NumField() {
		f := rt.Field(i)
		if !f.IsExported() {
			continue
		}

		name, omitEmpty := parseTag(f)
		if name == "-" {
			continue
		}

		fv := rv.Field(i)
		if omitEmpty && fv.IsZero() {
			continue
		}
		fv, ok := indirect(fv)
		if !ok {
			continue
		}
		pairs = append(pairs, KV(name, fmt.Sprint(fv.Interface())))
	}
	return Values{pairs: pairs}, nil
}

func indirect(v reflect.Value) (reflect.Value, bool) {
	for {
		switch v.Kind() {
		case reflect.Pointer, reflect.Interface:
			if v.IsNil() {
				return v, false
			}
			v = v.Elem()
		case reflect.Map, reflect.Slice:
			return v, !v.IsNil()
		default:
			return v, true
		}
	}
}

func parseTag(f reflect.StructField) (name string, omitEmpty bool) {
	tag, ok := f.Tag.Lookup("query")
	if !ok {
		return f.Name, false
	}
	name, opts, _ := strings.Cut(tag, ",")
	if name == "" {
		name = f.Name
	}
	return name, slices.Contains(strings.Split(opts, ","), "omitempty")
}

// RenderNames renders distinct names as bare flag parameters, e.g. "?a&b".
// Empty names are skipped.
func RenderNames(names []string) string {
	pairs := make([]Pair, 0, len(names))
	for _, name := range names {
		if !slices.ContainsFunc(pairs, func(p Pair) bool { return p.Name == name }) {
			pairs = append(pairs, Flag(name))
		}
	}
	return Default().Render(Values{pairs: pairs})
}
