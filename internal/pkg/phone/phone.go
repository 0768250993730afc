package phone

import (
	"regexp"
	"strings"
)

// Matches an optional leading "+", an optional country "7", then 10-11
// digits, e.g. +79001234567.
var pattern = regexp.MustCompile(`^\+?7?\d{10,11}$`)

// Normalize strips the separators people habitually type into phone
// fields.
func Normalize(s string) string {
	r := strings.NewReplacer(" ", "", "-", "", "(", "", ")", "")
	return r.Replace(strings.TrimSpace(s))
}

func Valid(s string) bool {
	return pattern.MatchString(Normalize(s))
}
