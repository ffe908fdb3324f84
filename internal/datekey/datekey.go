// Package datekey derives the comparable date key from a folder name such as
// "2011 03 Trip": the leading numeric token, extended by a second token when
// that one is numeric too.
package datekey

import (
	"errors"
	"strings"
)

// ErrNoLeadingNumber is returned when the first whitespace token is not all digits.
var ErrNoLeadingNumber = errors.New("name does not start with a numeric token")

// Parse returns the date key of name.
//
//	"2011 03 Trip" -> "2011 03"
//	"2011 Summer"  -> "2011"
//	"2011"         -> "2011"
func Parse(name string) (string, error) {
	tokens := strings.Fields(name)
	if len(tokens) == 0 || !isDigits(tokens[0]) {
		return "", ErrNoLeadingNumber
	}
	if len(tokens) > 1 && isDigits(tokens[1]) {
		return tokens[0] + " " + tokens[1], nil
	}
	return tokens[0], nil
}

// Tokens splits a date key back into its numeric parts.
func Tokens(key string) []string {
	return strings.Fields(key)
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
