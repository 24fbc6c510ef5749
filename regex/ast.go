// Package regex compiles the byte-level pattern syntax into an
// intermediate form (IR) ready for Thompson
// construction. It is split into a surface grammar (this file and
// parser.go, built on top of the combinator package) and an IR (ir.go).
package regex

// MetaClass names one of the built-in character-class shorthands.
type MetaClass int

const (
	MetaDigit MetaClass = iota // \d: 0-9
	MetaHex                    // \h: hex digits
	MetaLetter                 // \l: letters and underscore
	MetaSpace                  // \s: space, \r, \n, \t
	MetaWord                   // \w: alphanumerics and underscore
)

// ClassItem is one element of a character class: a single byte, an
// inclusive byte range, or a meta-class shorthand.
type ClassItem struct {
	Single byte
	Lo, Hi byte // valid when Kind == ItemRange
	Meta   MetaClass
	Kind   ClassItemKind
}

// ClassItemKind discriminates the variant held by a ClassItem.
type ClassItemKind int

const (
	ItemByte ClassItemKind = iota
	ItemRange
	ItemMeta
)

func byteItem(b byte) ClassItem        { return ClassItem{Kind: ItemByte, Single: b} }
func rangeItem(lo, hi byte) ClassItem  { return ClassItem{Kind: ItemRange, Lo: lo, Hi: hi} }
func metaItem(m MetaClass) ClassItem   { return ClassItem{Kind: ItemMeta, Meta: m} }

// CharClass is a (possibly negated) character class: [abc], [^a-z], \d, ".".
// Dot is a special case: it matches any byte except '\n' and carries no
// Items.
type CharClass struct {
	Negated bool
	Dot     bool
	Items   []ClassItem
}

// AST is the regex surface syntax tree, produced by the surface parser in
// parser.go. It is deliberately a thin wrapper over CharClass plus the
// familiar regular-expression combinators; character-class enumeration
// (ranges, meta classes, negation) is resolved at lowering time, in ir.go.
type AST struct {
	Kind  ASTKind
	Class CharClass  // valid when Kind == ASTClass
	Kids  []AST      // Concat, Alternation: ordered children (never empty)
	Child *AST       // Star, Plus, QnMk: single child
}

type ASTKind int

const (
	ASTClass ASTKind = iota
	ASTConcat
	ASTAlternation
	ASTStar
	ASTPlus
	ASTQnMk
)

func classNode(c CharClass) AST { return AST{Kind: ASTClass, Class: c} }

// concat builds a Concat node, collapsing a singleton list to its only
// child as required by the data-model invariant that empty or singleton
// Concat/Alternation nodes are never constructed.
func concat(kids []AST) AST {
	if len(kids) == 1 {
		return kids[0]
	}
	return AST{Kind: ASTConcat, Kids: kids}
}

func alternation(kids []AST) AST {
	if len(kids) == 1 {
		return kids[0]
	}
	return AST{Kind: ASTAlternation, Kids: kids}
}

func star(x AST) AST { return AST{Kind: ASTStar, Child: &x} }
func plus(x AST) AST { return AST{Kind: ASTPlus, Child: &x} }
func qnmk(x AST) AST { return AST{Kind: ASTQnMk, Child: &x} }
