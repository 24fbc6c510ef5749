package regex

import (
	"github.com/dekarrin/ictiobus/combinator"
	"github.com/dekarrin/ictiobus/internal/icterrors"
)

// reserved bytes require a backslash to stand for themselves; unescaped,
// they carry syntactic meaning somewhere in the grammar below.
const reservedBytes = `^-.*+?|()[]{}\`

func isReserved(b byte) bool {
	for i := 0; i < len(reservedBytes); i++ {
		if reservedBytes[i] == b {
			return true
		}
	}
	return false
}

func toMetaClass(b byte) (MetaClass, bool) {
	switch b {
	case 'd':
		return MetaDigit, true
	case 'h':
		return MetaHex, true
	case 'l':
		return MetaLetter, true
	case 's':
		return MetaSpace, true
	case 'w':
		return MetaWord, true
	default:
		return 0, false
	}
}

// escapedLiteral matches a backslash followed by one of the reserved bytes,
// producing that byte literally. Outside brackets this is the only way a
// reserved byte, including '-', can appear as a literal character; inside
// brackets see classEndpointByte.
var escapedLiteral = combinator.Then(combinator.Satisfy('\\'),
	combinator.Filter(combinator.Parser[byte](combinator.AnyByte), isReserved))

// metaEscape matches a backslash followed by a meta-class letter.
var metaEscape = combinator.Then(combinator.Satisfy('\\'),
	combinator.FilterMap(combinator.Parser[byte](combinator.AnyByte), toMetaClass))

// plainLiteral matches any byte that isn't reserved and so stands for
// itself without escaping.
var plainLiteral = combinator.Filter(combinator.Parser[byte](combinator.AnyByte),
	func(b byte) bool { return !isReserved(b) })

// literalByte is a byte usable directly as a literal atom: either escaped
// or unreserved.
var literalByte = combinator.Or(escapedLiteral, plainLiteral)

// classEndpointByte is a byte usable as a class-item endpoint: an escaped
// reserved byte, or any plain byte except ']' and '\\' (so '-' and other
// reserved-outside-class bytes are fine unescaped here, matching the
// original grammar's char() used inside brackets).
var classEndpointByte = combinator.Or(escapedLiteral,
	combinator.Filter(combinator.Parser[byte](combinator.AnyByte),
		func(b byte) bool { return b != ']' && b != '\\' }))

// classRange matches endpoint '-' endpoint and produces a range item.
var classRange = combinator.Map(
	combinator.And(classEndpointByte, combinator.Then(combinator.Satisfy('-'), classEndpointByte)),
	func(p struct {
		A byte
		B byte
	}) ClassItem {
		return rangeItem(p.A, p.B)
	},
)

// classSingle matches a lone endpoint byte as a single-byte item.
var classSingle = combinator.Map(classEndpointByte, byteItem)

// classMetaItem matches a meta-class escape as a class item (valid inside
// brackets: "[\d_]").
var classMetaItem = combinator.Map(metaEscape, metaItem)

// classItem tries a meta-class escape first, then a range (longest match),
// falling back to a single byte.
var classItem = combinator.Or(classMetaItem, combinator.Or(classRange, classSingle))

// classItems matches zero or more class items.
var classItems = combinator.Collect(classItem)

// charClassAtom matches "[...]" or "[^...]".
func charClassAtom(s []byte) (AST, []byte, bool) {
	if len(s) == 0 || s[0] != '[' {
		return AST{}, s, false
	}
	rest := s[1:]
	negated := false
	if len(rest) > 0 && rest[0] == '^' {
		negated = true
		rest = rest[1:]
	}
	items, rest, ok := classItems(rest)
	if !ok || len(rest) == 0 || rest[0] != ']' {
		return AST{}, s, false
	}
	return classNode(CharClass{Negated: negated, Items: items}), rest[1:], true
}

// dotAtom matches ".".
var dotAtom = combinator.Map(combinator.Satisfy('.'),
	func(struct{}) AST { return classNode(CharClass{Dot: true}) })

// metaAtom matches a bare meta-class escape outside brackets, e.g. "\d".
var metaAtom = combinator.Map(metaEscape,
	func(m MetaClass) AST { return classNode(CharClass{Items: []ClassItem{metaItem(m)}}) })

// literalAtom matches a single literal byte.
var literalAtom = combinator.Map(literalByte,
	func(b byte) AST { return classNode(CharClass{Items: []ClassItem{byteItem(b)}}) })

// regexRef is the deferred self-reference used by groupAtom to parse a full
// sub-pattern between parentheses.
var regexRef combinator.Parser[AST]

var groupAtom = combinator.Between(combinator.Defer(&regexRef), '(', ')')

// atomBase matches one unmodified atom: a group, a character class, a dot,
// a bare meta escape, or a literal byte.
func atomBase(s []byte) (AST, []byte, bool) {
	if v, rest, ok := groupAtom(s); ok {
		return v, rest, true
	}
	if v, rest, ok := charClassAtom(s); ok {
		return v, rest, true
	}
	if v, rest, ok := dotAtom(s); ok {
		return v, rest, true
	}
	if v, rest, ok := metaAtom(s); ok {
		return v, rest, true
	}
	return literalAtom(s)
}

// atom matches atomBase followed by zero or more of the postfix operators
// *, +, ? applied left-to-right (so "a*?" is QnMk(Star(a))).
func atom(s []byte) (AST, []byte, bool) {
	a, rest, ok := atomBase(s)
	if !ok {
		return AST{}, s, false
	}
	for len(rest) > 0 {
		switch rest[0] {
		case '*':
			a = star(a)
			rest = rest[1:]
		case '+':
			a = plus(a)
			rest = rest[1:]
		case '?':
			a = qnmk(a)
			rest = rest[1:]
		default:
			return a, rest, true
		}
	}
	return a, rest, true
}

// concatExpr matches one or more atoms in sequence.
func concatExpr(s []byte) (AST, []byte, bool) {
	first, rest, ok := atom(s)
	if !ok {
		return AST{}, s, false
	}
	kids, rest2, _ := combinator.Collect(combinator.Parser[AST](atom))(rest)
	all := append([]AST{first}, kids...)
	return concat(all), rest2, true
}

// altrExpr matches one or more concatenations separated by '|'.
func altrExpr(s []byte) (AST, []byte, bool) {
	kids, rest, ok := combinator.Intersperse(combinator.Parser[AST](concatExpr), '|')(s)
	if !ok {
		return AST{}, s, false
	}
	return alternation(kids), rest, true
}

func init() {
	regexRef = altrExpr
}

// Parse compiles a pattern's surface syntax into an AST. It fails with a
// RegexParse error if any input remains unconsumed or if the pattern is
// empty.
func Parse(pattern string) (AST, error) {
	if len(pattern) == 0 {
		return AST{}, icterrors.RegexParse(0, "pattern is empty")
	}
	v, rest, ok := altrExpr([]byte(pattern))
	if !ok {
		return AST{}, icterrors.RegexParse(0, "could not parse pattern %q", pattern)
	}
	if len(rest) > 0 {
		consumed := len(pattern) - len(rest)
		return AST{}, icterrors.RegexParse(consumed, "unexpected trailing input %q", string(rest))
	}
	return v, nil
}

// Compile parses pattern and lowers it directly to IR.
func Compile(pattern string) (IR, error) {
	a, err := Parse(pattern)
	if err != nil {
		return IR{}, err
	}
	return Lower(a), nil
}
