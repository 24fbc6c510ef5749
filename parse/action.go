// Package parse builds the LR(0) characteristic automaton, completes
// LALR(1) lookahead propagation over it, assembles ACTION/GOTO tables
// with conflict detection, and drives a stack-based LR parser over those
// tables.
package parse

import (
	"fmt"

	"github.com/dekarrin/ictiobus/grammar"
)

// LRActionType discriminates the action an ACTION-table cell holds.
type LRActionType int

const (
	LRError LRActionType = iota
	LRShift
	LRReduce
	LRAccept
)

// LRAction is one ACTION-table cell: a shift to a state, a reduce by a
// production, an accept, or (the zero value) an error.
type LRAction struct {
	Type  LRActionType
	State int        // valid when Type == LRShift
	PID   grammar.PID // valid when Type == LRReduce
}

func (a LRAction) String() string {
	switch a.Type {
	case LRShift:
		return fmt.Sprintf("shift %d", a.State)
	case LRReduce:
		return fmt.Sprintf("reduce N%d.%d", a.PID.NT, a.PID.Idx)
	case LRAccept:
		return "accept"
	default:
		return "error"
	}
}

func isShiftReduceConflict(a, b LRAction) (bool, LRAction) {
	if a.Type == LRReduce && b.Type == LRShift {
		return true, b
	}
	if b.Type == LRReduce && a.Type == LRShift {
		return true, a
	}
	return false, a
}

// conflictDetail describes an existing-vs-incoming ACTION-table clash in
// the same style lraction.go's makeLRConflictError does: name the kind of
// conflict and both candidate actions.
func conflictDetail(existing, incoming LRAction) string {
	if sr, shiftAct := isShiftReduceConflict(existing, incoming); sr {
		return fmt.Sprintf("shift/reduce conflict (could shift to %d, or %s)", shiftAct.State, theOtherReduce(existing, incoming))
	}
	if existing.Type == LRReduce && incoming.Type == LRReduce {
		return fmt.Sprintf("reduce/reduce conflict (could reduce N%d.%d or N%d.%d)",
			existing.PID.NT, existing.PID.Idx, incoming.PID.NT, incoming.PID.Idx)
	}
	if existing.Type == LRAccept || incoming.Type == LRAccept {
		return fmt.Sprintf("accept conflict (%s vs %s)", existing, incoming)
	}
	if existing.Type == LRShift && incoming.Type == LRShift {
		return fmt.Sprintf("shift/shift conflict (%s vs %s)", existing, incoming)
	}
	return fmt.Sprintf("%s vs %s", existing, incoming)
}

func theOtherReduce(a, b LRAction) string {
	if a.Type == LRReduce {
		return a.String()
	}
	return b.String()
}
