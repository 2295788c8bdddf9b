package util

import (
	"strings"
	"sync"
)

func LCase[T ~string](s T) T { return T(strings.ToLower(string(s))) }

func TrimSP[T ~string](s T) T { return T(strings.TrimSpace(string(s))) }

func EqFold[T1, T2 ~string](s1 T1, s2 T2) bool {
	return strings.EqualFold(string(s1), string(s2))
}

// CollapseSpaces replaces every run of spaces with a single space.
func CollapseSpaces(s string) string {
	if !strings.Contains(s, "  ") {
		return s
	}

	sb := GetStringBuilder()
	defer FreeStringBuilder(sb)

	var prevSP bool
	for i := 0; i < len(s); i++ {
		if s[i] == ' ' {
			if prevSP {
				continue
			}
			prevSP = true
		} else {
			prevSP = false
		}
		sb.WriteByte(s[i])
	}
	return sb.String()
}

var strBldrPool = &sync.Pool{
	New: func() any {
		sb := new(strings.Builder)
		sb.Grow(256)
		return sb
	},
}

func GetStringBuilder() *strings.Builder {
	return strBldrPool.Get().(*strings.Builder) //nolint:forcetypeassert
}

func FreeStringBuilder(sb *strings.Builder) {
	sb.Reset()
	strBldrPool.Put(sb)
}
