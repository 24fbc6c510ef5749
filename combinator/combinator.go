// Package combinator is the deterministic, byte-level parser-combinator
// kernel used to build the regex surface parser. A Parser[T] is nothing
// more than a function from a byte slice to an optional (value, remaining
// input) pair; combinators build bigger parsers out of smaller ones by
// composing these functions. There is no backtracking across combinator
// boundaries: Or tries its left alternative and, if that fails, re-runs its
// right alternative against the original input, but a failed Or never
// un-consumes bytes a sibling combinator already committed to.
package combinator

// Parser runs against a byte slice and, on success, returns the value it
// produced along with the unconsumed remainder of the input.
type Parser[T any] func(s []byte) (T, []byte, bool)

// Accept reports whether p matches s and consumes all of it.
func Accept[T any](p Parser[T], s []byte) bool {
	_, rest, ok := p(s)
	return ok && len(rest) == 0
}

// Run applies p to s once and returns whatever it produced.
func Run[T any](p Parser[T], s []byte) (T, []byte, bool) {
	return p(s)
}

// And runs p then q against the remainder of p, pairing their results.
func And[A, B any](p Parser[A], q Parser[B]) Parser[struct {
	A A
	B B
}] {
	type pair = struct {
		A A
		B B
	}
	return func(s []byte) (pair, []byte, bool) {
		a, t, ok := p(s)
		if !ok {
			return pair{}, s, false
		}
		b, u, ok := q(t)
		if !ok {
			return pair{}, s, false
		}
		return pair{A: a, B: b}, u, true
	}
}

// Or tries p against s; if it fails, q is tried against the original,
// unconsumed s. p's partial consumption is never visible to q.
func Or[T any](p, q Parser[T]) Parser[T] {
	return func(s []byte) (T, []byte, bool) {
		if v, t, ok := p(s); ok {
			return v, t, true
		}
		return q(s)
	}
}

// Then runs p then q, keeping q's value and discarding p's.
func Then[A, B any](p Parser[A], q Parser[B]) Parser[B] {
	return func(s []byte) (B, []byte, bool) {
		_, t, ok := p(s)
		if !ok {
			var zero B
			return zero, s, false
		}
		return q(t)
	}
}

// Skip runs p then q, keeping p's value and discarding q's.
func Skip[A, B any](p Parser[A], q Parser[B]) Parser[A] {
	return func(s []byte) (A, []byte, bool) {
		a, t, ok := p(s)
		if !ok {
			var zero A
			return zero, s, false
		}
		_, u, ok := q(t)
		if !ok {
			var zero A
			return zero, s, false
		}
		return a, u, true
	}
}

// Map transforms a successful result's value.
func Map[A, B any](p Parser[A], f func(A) B) Parser[B] {
	return func(s []byte) (B, []byte, bool) {
		a, t, ok := p(s)
		if !ok {
			var zero B
			return zero, s, false
		}
		return f(a), t, true
	}
}

// Filter keeps a successful result only if it satisfies f.
func Filter[A any](p Parser[A], f func(A) bool) Parser[A] {
	return func(s []byte) (A, []byte, bool) {
		a, t, ok := p(s)
		if !ok || !f(a) {
			var zero A
			return zero, s, false
		}
		return a, t, true
	}
}

// FilterMap transforms a result and drops it if f returns false for the
// second value.
func FilterMap[A, B any](p Parser[A], f func(A) (B, bool)) Parser[B] {
	return func(s []byte) (B, []byte, bool) {
		a, t, ok := p(s)
		if !ok {
			var zero B
			return zero, s, false
		}
		b, ok := f(a)
		if !ok {
			var zero B
			return zero, s, false
		}
		return b, t, true
	}
}

// Collect greedily applies p and returns the (possibly empty) list of
// successes. Collect itself always succeeds.
func Collect[A any](p Parser[A]) Parser[[]A] {
	return func(s []byte) ([]A, []byte, bool) {
		var out []A
		rest := s
		for {
			a, t, ok := p(rest)
			if !ok {
				break
			}
			out = append(out, a)
			rest = t
		}
		return out, rest, true
	}
}

// AnyByte consumes exactly one byte, whatever it is.
func AnyByte(s []byte) (byte, []byte, bool) {
	if len(s) == 0 {
		return 0, s, false
	}
	return s[0], s[1:], true
}

// Satisfy consumes exactly the given byte.
func Satisfy(b byte) Parser[struct{}] {
	return FilterMap(Parser[byte](AnyByte), func(x byte) (struct{}, bool) {
		return struct{}{}, x == b
	})
}

// Between matches open, then p, then close, keeping p's value.
func Between[A any](p Parser[A], open, close byte) Parser[A] {
	return Skip(Then(Satisfy(open), p), Satisfy(close))
}

// Intersperse matches one or more occurrences of p separated by sep,
// requiring at least one occurrence.
func Intersperse[A any](p Parser[A], sep byte) Parser[[]A] {
	return func(s []byte) ([]A, []byte, bool) {
		first, t, ok := p(s)
		if !ok {
			return nil, s, false
		}
		rest, u, _ := Collect(Then(Satisfy(sep), p))(t)
		out := append([]A{first}, rest...)
		return out, u, true
	}
}

// Defer builds a recursive parser: ref points to the (possibly
// not-yet-assigned) parser it should dispatch to, and is dereferenced only
// when the returned parser runs, letting a grammar rule refer to itself
// before its own definition is complete. The caller is expected to assign
// *ref before the returned parser is ever invoked.
func Defer[T any](ref *Parser[T]) Parser[T] {
	return func(s []byte) (T, []byte, bool) {
		return (*ref)(s)
	}
}
