package parse

import (
	"fmt"
	"strconv"

	"github.com/dekarrin/ictiobus/grammar"
	"github.com/dekarrin/rosed"
)

// String renders the ACTION/GOTO table for debugging: one row per state,
// one column per terminal (plus the end-of-input sentinel $) for ACTION,
// followed by one column per nonterminal for GOTO.
func (tbl *Table) String() string {
	data := [][]string{}

	headers := []string{"S", "|"}
	for t := 0; t < tbl.g.NumTerminals(); t++ {
		headers = append(headers, fmt.Sprintf("A:%s", tbl.g.TerminalName(grammar.Terminal(t))))
	}
	headers = append(headers, "A:$", "|")
	for nt := 0; nt < tbl.g.NumNonTerminals(); nt++ {
		headers = append(headers, fmt.Sprintf("G:%s", tbl.g.NonTerminalName(grammar.NonTerminal(nt))))
	}
	data = append(data, headers)

	for s := 0; s < len(tbl.Action); s++ {
		row := []string{strconv.Itoa(s), "|"}
		for t := 0; t < tbl.g.NumTerminals(); t++ {
			row = append(row, actionCell(tbl.Action[s][t]))
		}
		row = append(row, actionCell(tbl.Action[s][sentinelCol(tbl.g)]), "|")
		for nt := 0; nt < tbl.g.NumNonTerminals(); nt++ {
			cell := ""
			if g := tbl.Goto[s][nt]; g >= 0 {
				cell = strconv.Itoa(g)
			}
			row = append(row, cell)
		}
		data = append(data, row)
	}

	return rosed.
		Edit("").
		InsertTableOpts(0, data, 10, rosed.Options{
			TableHeaders:             true,
			NoTrailingLineSeparators: true,
		}).
		String()
}

func actionCell(act LRAction) string {
	switch act.Type {
	case LRAccept:
		return "acc"
	case LRShift:
		return fmt.Sprintf("s%d", act.State)
	case LRReduce:
		return fmt.Sprintf("rN%d.%d", act.PID.NT, act.PID.Idx)
	default:
		return ""
	}
}
