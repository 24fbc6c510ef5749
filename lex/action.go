// Package lex compiles a set of named regex rules into a single
// multi-pattern DFA and uses longest-match simulation to turn a byte
// stream into a stream of tokens, dispatching each match to its rule's
// action.
package lex

// Action produces a token value of type T from the bytes a rule matched.
// Skip marks the rule as one whose matches are discarded rather than
// turned into a token (typically used for whitespace and comments).
type Action[T any] struct {
	Skip bool
	Fn   func(matched []byte) T
}

// Constant returns an Action that ignores the matched bytes and always
// produces v.
func Constant[T any](v T) Action[T] {
	return Action[T]{Fn: func([]byte) T { return v }}
}

// Func returns an Action that computes its result from the matched bytes.
func Func[T any](f func(matched []byte) T) Action[T] {
	return Action[T]{Fn: f}
}

// Skip returns an Action whose matches are discarded entirely; the token
// stream simply resumes lexing past them without emitting anything.
func Skip[T any]() Action[T] {
	return Action[T]{Skip: true, Fn: func([]byte) T { var zero T; return zero }}
}
