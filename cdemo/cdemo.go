// Package cdemo is a worked example of the lex package: a lexer for a
// representative subset of C's keywords, operators, identifiers, and
// integer literals. It exists to exercise lex.Lexer against a grammar
// with real keyword/identifier ambiguity (e.g. "int" vs "integer"),
// touched only through the lex package's public contract.
package cdemo

import (
	"strconv"

	"github.com/dekarrin/ictiobus/lex"
)

// TokenKind discriminates the kind of token produced by the lexer New returns.
type TokenKind int

const (
	TokKeyword TokenKind = iota
	TokOperator
	TokIdentifier
	TokInteger
)

// Keyword names one of the reserved words recognized by New.
type Keyword int

const (
	KwAuto Keyword = iota
	KwBreak
	KwChar
	KwConst
	KwContinue
	KwDo
	KwDouble
	KwElse
	KwEnum
	KwExtern
	KwFloat
	KwFor
	KwGoto
	KwIf
	KwInt
	KwLong
	KwReturn
	KwShort
	KwSizeof
	KwStatic
	KwStruct
	KwSwitch
	KwTypedef
	KwUnion
	KwUnsigned
	KwVoid
	KwVolatile
	KwWhile
)

var keywordNames = map[Keyword]string{
	KwAuto: "auto", KwBreak: "break", KwChar: "char", KwConst: "const",
	KwContinue: "continue", KwDo: "do", KwDouble: "double", KwElse: "else",
	KwEnum: "enum", KwExtern: "extern", KwFloat: "float", KwFor: "for",
	KwGoto: "goto", KwIf: "if", KwInt: "int", KwLong: "long",
	KwReturn: "return", KwShort: "short", KwSizeof: "sizeof", KwStatic: "static",
	KwStruct: "struct", KwSwitch: "switch", KwTypedef: "typedef", KwUnion: "union",
	KwUnsigned: "unsigned", KwVoid: "void", KwVolatile: "volatile", KwWhile: "while",
}

// Operator names one of the recognized punctuation/operator tokens.
type Operator int

const (
	OpShl Operator = iota
	OpShr
	OpLe
	OpGe
	OpEq
	OpNe
	OpAndAnd
	OpOrOr
	OpInc
	OpDec
	OpArrow
	OpSemicolon
	OpComma
	OpLBrace
	OpRBrace
	OpLParen
	OpRParen
	OpAssign
	OpPlus
	OpMinus
	OpStar
	OpSlash
	OpLt
	OpGt
)

// Token is one lexed unit: its Kind plus whichever of Keyword / Operator /
// Ident / Int is relevant.
type Token struct {
	Kind     TokenKind
	Keyword  Keyword
	Operator Operator
	Ident    string
	Int      int64
}

// New builds a lexer over the C subset. Rule order matters: multi-char
// operators are listed before their single-char prefixes, and every
// keyword precedes the general identifier rule so that "int" lexes as
// KwInt rather than as an identifier named "int" — this is the same
// first-rule-wins discipline spec.md requires of DFA category
// resolution, here put to its canonical use.
func New() (*lex.Lexer[Token], error) {
	rules := []lex.Rule[Token]{
		{Name: "ws", Pattern: "( |\t|\n|\r)+", Action: lex.Skip[Token]()},
	}
	for _, e := range orderedKeywords() {
		kwCopy := e.kw
		rules = append(rules, lex.Rule[Token]{
			Name:    "kw_" + e.name,
			Pattern: e.name,
			Action:  lex.Constant(Token{Kind: TokKeyword, Keyword: kwCopy}),
		})
	}

	operators := []struct {
		name    string
		pattern string
		op      Operator
	}{
		{"shl", `<<`, OpShl},
		{"shr", `>>`, OpShr},
		{"le", `<=`, OpLe},
		{"ge", `>=`, OpGe},
		{"eq", `==`, OpEq},
		{"ne", `!=`, OpNe},
		{"andand", `&&`, OpAndAnd},
		{"oror", `\|\|`, OpOrOr},
		{"inc", `\+\+`, OpInc},
		{"dec", `\-\-`, OpDec},
		{"arrow", `\->`, OpArrow},
		{"semicolon", `;`, OpSemicolon},
		{"comma", `,`, OpComma},
		{"lbrace", `\{`, OpLBrace},
		{"rbrace", `\}`, OpRBrace},
		{"lparen", `\(`, OpLParen},
		{"rparen", `\)`, OpRParen},
		{"assign", `=`, OpAssign},
		{"plus", `\+`, OpPlus},
		{"minus", `\-`, OpMinus},
		{"star", `\*`, OpStar},
		{"slash", `/`, OpSlash},
		{"lt", `<`, OpLt},
		{"gt", `>`, OpGt},
	}
	for _, o := range operators {
		opCopy := o.op
		rules = append(rules, lex.Rule[Token]{
			Name:    "op_" + o.name,
			Pattern: o.pattern,
			Action:  lex.Constant(Token{Kind: TokOperator, Operator: opCopy}),
		})
	}

	rules = append(rules,
		lex.Rule[Token]{
			Name:    "integer",
			Pattern: `\d+`,
			Action: lex.Func(func(b []byte) Token {
				n, _ := strconv.ParseInt(string(b), 10, 64)
				return Token{Kind: TokInteger, Int: n}
			}),
		},
		lex.Rule[Token]{
			Name:    "identifier",
			Pattern: `\l(\l|\d)*`,
			Action: lex.Func(func(b []byte) Token {
				return Token{Kind: TokIdentifier, Ident: string(b)}
			}),
		},
	)

	return lex.NewLexer(rules)
}

// orderedKeywords returns keywords in a stable, deterministic order (by
// Keyword index) so rule-order tie-breaking is reproducible.
func orderedKeywords() []struct {
	kw   Keyword
	name string
} {
	out := make([]struct {
		kw   Keyword
		name string
	}, 0, len(keywordNames))
	for kw := KwAuto; int(kw) <= int(KwWhile); kw++ {
		out = append(out, struct {
			kw   Keyword
			name string
		}{kw, keywordNames[kw]})
	}
	return out
}
