// Package randutils provides random string generation.
package randutils

import "github.com/dchest/uniuri"

// URLSafeChars are characters that need no escaping in any URI component.
var URLSafeChars = []byte("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789-_")

// RandString returns a cryptographically random string of n URL-safe characters.
// Non-positive n results in an empty string.
func RandString(n int) string {
	if n <= 0 {
		return ""
	}
	return uniuri.NewLenChars(n, URLSafeChars)
}
