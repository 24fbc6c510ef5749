// Package icterrors defines the typed error kinds produced across the
// regex, automaton, lex, grammar, and parse packages. Every exported error
// here wraps a plain string message and carries a Kind so callers can
// switch on failure category with errors.As instead of string-matching.
package icterrors

import (
	"fmt"

	"github.com/dekarrin/ictiobus/internal/util"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Kind categorizes a compile- or parse-time failure.
type Kind int

const (
	KindRegexParse Kind = iota
	KindLexerEmptyRule
	KindLexerAction
	KindLexerStuck
	KindGrammarConflict
	KindParseReject
)

func (k Kind) String() string {
	switch k {
	case KindRegexParse:
		return "RegexParse"
	case KindLexerEmptyRule:
		return "LexerEmptyRule"
	case KindLexerAction:
		return "LexerAction"
	case KindLexerStuck:
		return "LexerStuck"
	case KindGrammarConflict:
		return "GrammarConflict"
	case KindParseReject:
		return "ParseReject"
	default:
		return "Unknown"
	}
}

// Error is the concrete error type returned by every package in this
// module. Msg is the human-readable explanation; Kind lets callers recover
// the failure category without parsing Msg.
type Error struct {
	Kind Kind
	Msg  string
	Pos  int // byte offset into the offending input, -1 if not applicable
}

func (e *Error) Error() string {
	if e.Pos >= 0 {
		return fmt.Sprintf("%s: %s (at byte %d)", e.Kind, e.Msg, e.Pos)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

func newErr(k Kind, pos int, format string, args ...any) *Error {
	return &Error{Kind: k, Msg: fmt.Sprintf(format, args...), Pos: pos}
}

// RegexParse reports a failure to parse a regex pattern at byte offset pos.
func RegexParse(pos int, format string, args ...any) *Error {
	return newErr(KindRegexParse, pos, format, args...)
}

// LexerEmptyRule reports that a lexer rule's pattern can match the empty
// string, which would let the lexer spin forever making zero-length
// progress.
func LexerEmptyRule(ruleName string) *Error {
	return newErr(KindLexerEmptyRule, -1, "rule %q may match the empty string", ruleName)
}

// LexerAction reports that a lexer rule's action function returned an
// error while producing a token.
func LexerAction(ruleName string, cause error) *Error {
	e := newErr(KindLexerAction, -1, "action for rule %q failed: %v", ruleName, cause)
	return e
}

// LexerStuck reports that no lexer rule could advance past the given byte
// offset.
func LexerStuck(pos int, context string) *Error {
	return newErr(KindLexerStuck, pos, "no rule matches input starting here: %q", context)
}

// GrammarConflict reports an unresolved shift/reduce, reduce/reduce,
// shift/shift, or accept conflict discovered during LR table construction.
func GrammarConflict(stateNum int, symbol string, detail string) *Error {
	return newErr(KindGrammarConflict, -1, "state %d on %q: %s", stateNum, symbol, detail)
}

// ParseReject reports that the LR driver rejected the input at the given
// token position. expected, if non-empty, lists the terminals that would
// have been accepted there; got is what was actually seen. expected, if
// non-empty, is also consulted for a "did you mean" suggestion via fuzzy
// matching against got.
func ParseReject(tokPos int, got string, expected []string) *Error {
	msg := fmt.Sprintf("unexpected %q", got)
	if len(expected) > 0 {
		article := util.ArticleFor(expected[0], false)
		msg += fmt.Sprintf("; expected %s %s", article, util.MakeTextList(expected))
		if suggestion, ok := bestSuggestion(got, expected); ok {
			msg += fmt.Sprintf(" (did you mean %q?)", suggestion)
		}
	}
	return newErr(KindParseReject, tokPos, "%s", msg)
}

// bestSuggestion finds the candidate string most similar to got, using
// fuzzy subsequence ranking, for inclusion in a ParseReject message.
func bestSuggestion(got string, candidates []string) (string, bool) {
	ranks := fuzzy.RankFindFold(got, candidates)
	if len(ranks) == 0 {
		return "", false
	}
	best := ranks[0]
	for _, r := range ranks[1:] {
		if r.Distance < best.Distance {
			best = r
		}
	}
	return best.Target, true
}
