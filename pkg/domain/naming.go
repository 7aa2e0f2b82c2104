package domain

import (
	"slices"
	"strings"
	"unicode/utf8"
)

// PreferredPrefixes is the ordered list of prefixes tried by PickAvailablePrefix.
var PreferredPrefixes = []string{"S", "Q", "P", "A", "B", "C"}

// FallbackPrefix is returned by PickAvailablePrefix when every preferred prefix is taken.
const FallbackPrefix = "X"

// firstRune returns the first rune of s and its width, which is 0 for an empty string.
func firstRune(s string) (rune, int) {
	return utf8.DecodeRuneInString(s)
}

// PickAvailablePrefix returns the first preferred prefix whose first character does
// not start any of the used identifiers, or FallbackPrefix.
func PickAvailablePrefix(used []string) string {
	taken := make(map[rune]struct{}, len(used))
	for _, id := range used {
		if r, n := firstRune(id); n > 0 {
			taken[r] = struct{}{}
		}
	}
	for _, p := range PreferredPrefixes {
		r, _ := firstRune(p)
		if _, ok := taken[r]; !ok {
			return p
		}
	}
	return FallbackPrefix
}

// FreshState returns prefix followed by one more than the largest numeric suffix
// among the identifiers sharing the prefix's first character, or prefix+"0" when
// there is none. Identifiers whose remainder is not a decimal number are ignored.
//
// The result never collides with states.
func FreshState(states []string, prefix string) string {
	pr, prefixWidth := firstRune(prefix)

	best := ""
	for _, id := range states {
		var rest string
		if prefixWidth > 0 {
			r, n := firstRune(id)
			if n == 0 || r != pr {
				continue
			}
			rest = id[n:]
		} else {
			rest = id
		}
		digits, ok := decimal(rest)
		if !ok {
			continue
		}
		if best == "" || compareDecimal(digits, best) > 0 {
			best = digits
		}
	}

	next := "0"
	if best != "" {
		next = incrementDecimal(best)
	}
	// Multi-character prefixes can still meet an identical id.
	for slices.Contains(states, prefix+next) {
		next = incrementDecimal(next)
	}
	return prefix + next
}

// decimal returns s without leading zeros when it is a non-empty run of ASCII digits.
func decimal(s string) (string, bool) {
	if s == "" {
		return "", false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return "", false
		}
	}
	s = strings.TrimLeft(s, "0")
	if s == "" {
		s = "0"
	}
	return s, true
}

func compareDecimal(x, y string) int {
	if len(x) != len(y) {
		if len(x) < len(y) {
			return -1
		}
		return 1
	}
	return strings.Compare(x, y)
}

func incrementDecimal(s string) string {
	b := []byte(s)
	for i := len(b) - 1; i >= 0; i-- {
		if b[i] < '9' {
			b[i]++
			return string(b)
		}
		b[i] = '0'
	}
	return "1" + string(b)
}
