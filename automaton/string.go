package automaton

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dekarrin/rosed"
)

// String renders the DFA's transition table for debugging: one row per
// state, its accepted category (if any), and its outgoing transitions
// compressed into contiguous byte ranges rather than one column per byte
// of the alphabet.
func (d *DFA) String() string {
	data := [][]string{{"state", "category", "transitions"}}
	for i, n := range d.nodes {
		cat := ""
		if n.hasCategory {
			cat = strconv.Itoa(int(n.category))
		}
		state := strconv.Itoa(i)
		if i == 0 {
			state += " (start)"
		}
		data = append(data, []string{state, cat, transitionRanges(n)})
	}

	return rosed.
		Edit("").
		InsertTableOpts(0, data, 40, rosed.Options{
			TableHeaders:             true,
			NoTrailingLineSeparators: true,
		}).
		String()
}

// transitionRanges compresses a dfaNode's 256-entry transition table into
// "lo-hi->dest" groups of contiguous bytes sharing the same destination.
func transitionRanges(n dfaNode) string {
	var parts []string
	lo := -1
	dest := -2
	flush := func(hi int) {
		if lo < 0 {
			return
		}
		if lo == hi {
			parts = append(parts, fmt.Sprintf("%s->%d", byteLabel(lo), dest))
		} else {
			parts = append(parts, fmt.Sprintf("%s-%s->%d", byteLabel(lo), byteLabel(hi), dest))
		}
	}
	for x := 0; x < sigma; x++ {
		t := n.t[x]
		if t == dest {
			continue
		}
		flush(x - 1)
		lo, dest = -2, t
		if t >= 0 {
			lo = x
		}
	}
	flush(sigma - 1)
	return strings.Join(parts, ", ")
}

func byteLabel(b int) string {
	if b >= 0x20 && b < 0x7f {
		return fmt.Sprintf("%q", byte(b))
	}
	return fmt.Sprintf("0x%02x", b)
}
