package regex

import "github.com/dekarrin/ictiobus/internal/util"

// IRKind names one of the five intermediate-representation node shapes that
// Thompson construction (see the automaton package) knows how to turn into
// NFA fragments.
type IRKind int

const (
	IREmpty IRKind = iota // E: matches the empty string
	IRLiteral              // L(bytes): matches exactly one byte from a set
	IRConcat               // C[xs...]: xs in sequence
	IRUnion                // U[xs...]: any one of xs
	IRStar                 // K(x): zero or more repetitions of x
)

// IR is the lowered form of an AST: character classes have been resolved
// to concrete byte sets, and Plus/QnMk sugar has been expanded in terms of
// Concat/Union/Star, matching the five-variant IR data model.
type IR struct {
	Kind  IRKind
	Bytes *util.BitSet // valid when Kind == IRLiteral
	Kids  []IR         // valid when Kind == IRConcat or IRUnion
	Kid   *IR          // valid when Kind == IRStar
}

func irEmpty() IR             { return IR{Kind: IREmpty} }
func irLiteral(b *util.BitSet) IR { return IR{Kind: IRLiteral, Bytes: b} }
func irConcat(xs []IR) IR {
	if len(xs) == 1 {
		return xs[0]
	}
	return IR{Kind: IRConcat, Kids: xs}
}
func irUnion(xs []IR) IR {
	if len(xs) == 1 {
		return xs[0]
	}
	return IR{Kind: IRUnion, Kids: xs}
}
func irStar(x IR) IR { return IR{Kind: IRStar, Kid: &x} }

// Lower resolves an AST node into IR form: character classes become literal
// byte sets, Plus(x) becomes Concat[x, Star(x)], and QnMk(x) becomes
// Union[Empty, x].
func Lower(a AST) IR {
	switch a.Kind {
	case ASTClass:
		return irLiteral(classBytes(a.Class))
	case ASTConcat:
		kids := make([]IR, len(a.Kids))
		for i, k := range a.Kids {
			kids[i] = Lower(k)
		}
		return irConcat(kids)
	case ASTAlternation:
		kids := make([]IR, len(a.Kids))
		for i, k := range a.Kids {
			kids[i] = Lower(k)
		}
		return irUnion(kids)
	case ASTStar:
		return irStar(Lower(*a.Child))
	case ASTPlus:
		x := Lower(*a.Child)
		return irConcat([]IR{x, irStar(x)})
	case ASTQnMk:
		return irUnion([]IR{irEmpty(), Lower(*a.Child)})
	default:
		panic("regex: unreachable AST kind")
	}
}

// classBytes enumerates a CharClass into the concrete 256-element byte set
// it matches, applying negation last.
func classBytes(c CharClass) *util.BitSet {
	if c.Dot {
		return DotBytes()
	}
	set := util.NewBitSet()
	for _, item := range c.Items {
		switch item.Kind {
		case ItemByte:
			set.Add(int(item.Single))
		case ItemRange:
			for b := int(item.Lo); b <= int(item.Hi); b++ {
				set.Add(b)
			}
		case ItemMeta:
			addMetaBytes(set, item.Meta)
		}
	}
	if !c.Negated {
		return set
	}
	negated := util.NewBitSet()
	for b := 0; b < 256; b++ {
		if !set.Has(b) {
			negated.Add(b)
		}
	}
	return negated
}

func addMetaBytes(set *util.BitSet, m MetaClass) {
	switch m {
	case MetaDigit:
		for b := '0'; b <= '9'; b++ {
			set.Add(int(b))
		}
	case MetaHex:
		for b := '0'; b <= '9'; b++ {
			set.Add(int(b))
		}
		for b := 'a'; b <= 'f'; b++ {
			set.Add(int(b))
		}
		for b := 'A'; b <= 'F'; b++ {
			set.Add(int(b))
		}
	case MetaLetter:
		for b := 'a'; b <= 'z'; b++ {
			set.Add(int(b))
		}
		for b := 'A'; b <= 'Z'; b++ {
			set.Add(int(b))
		}
		set.Add(int('_'))
	case MetaSpace:
		set.Add(int(' '))
		set.Add(int('\r'))
		set.Add(int('\n'))
		set.Add(int('\t'))
	case MetaWord:
		for b := 'a'; b <= 'z'; b++ {
			set.Add(int(b))
		}
		for b := 'A'; b <= 'Z'; b++ {
			set.Add(int(b))
		}
		for b := '0'; b <= '9'; b++ {
			set.Add(int(b))
		}
		set.Add(int('_'))
	}
}

// DotBytes returns the byte set matched by ".": any byte except newline.
func DotBytes() *util.BitSet {
	set := util.NewBitSet()
	for b := 0; b < 256; b++ {
		if b != '\n' {
			set.Add(b)
		}
	}
	return set
}
