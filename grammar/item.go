package grammar

// Item is an LR item: a production with a dot position, or — when HasPID
// is false — the implicit initial item ⊤ → • S for the grammar's
// augmented start. InitItem is the only item with HasPID == false.
type Item struct {
	HasPID bool
	PID    PID
	Dot    int
}

// InitItem is the augmented start's initial item, ⊤ → • S.
var InitItem = Item{HasPID: false, Dot: 0}

// Symbol returns the symbol immediately after the dot, or false if the
// dot is at the end of the production (the item is "complete").
func (g *Grammar) Symbol(item Item) (Symbol, bool) {
	if !item.HasPID {
		if item.Dot == 0 {
			return N(g.StartSymbol()), true
		}
		return Symbol{}, false
	}
	rhs := g.Production(item.PID)
	if item.Dot >= len(rhs) {
		return Symbol{}, false
	}
	return rhs[item.Dot], true
}

// Shifted returns the item with its dot advanced by one, or false if the
// dot is already at the end.
func (g *Grammar) Shifted(item Item) (Item, bool) {
	if _, ok := g.Symbol(item); !ok {
		return Item{}, false
	}
	return Item{HasPID: item.HasPID, PID: item.PID, Dot: item.Dot + 1}, true
}

// IsAccept reports whether item is the augmented start fully shifted
// (⊤ → S •), the item whose completion means the input is accepted.
func (g *Grammar) IsAccept(item Item) bool {
	return !item.HasPID && item.Dot == 1
}

// ItemSet is an LR(0) item set split into its kernel (items carried over
// explicitly, e.g. by a shift) and its closure-derived nonkernel part,
// represented compactly as the set of nonterminals whose dot-0
// productions it implies. Two ItemSets with equal Kernel (the
// conventional notion of "same state") always have equal NonKernel too,
// since NonKernel is entirely determined by Kernel via closure.
type ItemSet struct {
	Kernel    map[Item]struct{}
	NonKernel map[NonTerminal]struct{}
}

func newItemSet() ItemSet {
	return ItemSet{Kernel: map[Item]struct{}{}, NonKernel: map[NonTerminal]struct{}{}}
}

// IsEmpty reports whether the set has no items at all.
func (s ItemSet) IsEmpty() bool {
	return len(s.Kernel) == 0 && len(s.NonKernel) == 0
}

// FromSet enumerates every item implied by s: its kernel items verbatim,
// plus, for every nonterminal in its NonKernel part, every one of that
// nonterminal's productions with the dot at position 0.
func (g *Grammar) FromSet(s ItemSet) []Item {
	out := make([]Item, 0, len(s.Kernel))
	for item := range s.Kernel {
		out = append(out, item)
	}
	for nt := range s.NonKernel {
		for _, pid := range g.Productions(nt) {
			out = append(out, Item{HasPID: true, PID: pid, Dot: 0})
		}
	}
	return out
}

// kernelKey canonicalizes a kernel set for use as a map key / equality
// check between item sets.
func kernelKey(kernel map[Item]struct{}) string {
	items := make([]Item, 0, len(kernel))
	for it := range kernel {
		items = append(items, it)
	}
	// simple O(n^2) stable sort is fine: kernels are small.
	for i := 1; i < len(items); i++ {
		for j := i; j > 0 && itemLess(items[j], items[j-1]); j-- {
			items[j], items[j-1] = items[j-1], items[j]
		}
	}
	buf := make([]byte, 0, len(items)*12)
	for _, it := range items {
		buf = appendItem(buf, it)
	}
	return string(buf)
}

func itemLess(a, b Item) bool {
	if a.HasPID != b.HasPID {
		return !a.HasPID
	}
	if a.PID.NT != b.PID.NT {
		return a.PID.NT < b.PID.NT
	}
	if a.PID.Idx != b.PID.Idx {
		return a.PID.Idx < b.PID.Idx
	}
	return a.Dot < b.Dot
}

func appendItem(buf []byte, it Item) []byte {
	put := func(x int) {
		buf = append(buf, byte(x), byte(x>>8), byte(x>>16), byte(x>>24))
	}
	if it.HasPID {
		buf = append(buf, 1)
	} else {
		buf = append(buf, 0)
	}
	put(int(it.PID.NT))
	put(it.PID.Idx)
	put(it.Dot)
	return buf
}

// LR0Closure computes the LR(0) closure of a kernel item set: repeatedly,
// for every item whose next symbol is a nonterminal, that nonterminal's
// dot-0 productions are added to the closure (recorded compactly in
// NonKernel), including the virtual augmented-start production when the
// nonterminal in question is reached via the implicit initial item.
func (g *Grammar) LR0Closure(kernel map[Item]struct{}) ItemSet {
	s := ItemSet{Kernel: kernel, NonKernel: map[NonTerminal]struct{}{}}
	for {
		changed := false
		for _, item := range g.FromSet(s) {
			sym, ok := g.Symbol(item)
			if !ok || sym.IsTerminal {
				continue
			}
			nt := NonTerminal(sym.Index)
			if _, has := s.NonKernel[nt]; !has {
				s.NonKernel[nt] = struct{}{}
				changed = true
			}
		}
		if !changed {
			break
		}
	}
	return s
}

// LR0Goto computes GOTO(s, sym): shift every item in s whose next symbol
// is sym, then close the result.
func (g *Grammar) LR0Goto(s ItemSet, sym Symbol) ItemSet {
	kernel := map[Item]struct{}{}
	for _, item := range g.FromSet(s) {
		next, ok := g.Symbol(item)
		if !ok || next != sym {
			continue
		}
		shifted, ok := g.Shifted(item)
		if !ok {
			continue
		}
		kernel[shifted] = struct{}{}
	}
	return g.LR0Closure(kernel)
}

// SameKernel reports whether a and b have equal kernels, i.e. represent
// the same LR(0) state.
func SameKernel(a, b ItemSet) bool {
	return kernelKey(a.Kernel) == kernelKey(b.Kernel)
}

// KernelKey exposes kernelKey for callers (parse package) that need to
// deduplicate item sets in a map.
func KernelKey(s ItemSet) string { return kernelKey(s.Kernel) }
