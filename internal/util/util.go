package util

import "strings"

// MakeTextList joins items into a human-readable list of alternatives: "a",
// "a or b", or "a, b, or c" (an Oxford comma for three or more).
func MakeTextList(items []string) string {
	if len(items) < 1 {
		return ""
	}
	if len(items) == 1 {
		return items[0]
	}
	if len(items) == 2 {
		return items[0] + " or " + items[1]
	}
	cp := make([]string, len(items))
	copy(cp, items)
	cp[len(cp)-1] = "or " + cp[len(cp)-1]
	return strings.Join(cp, ", ")
}
