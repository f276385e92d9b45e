package parsec

// AnyParser is a type-erased Parser[T], used only as the element type of the
// variadic sub-parser lists passed to All and Any. Go has generics but no
// variadic type parameters, so unlike every fixed-arity combinator in this
// package (Or, And, Many, ...), the reducer combinators take the "dynamic
// target" branch of the design: sub-results flow through as []any instead
// of an inferred tuple type. Build one with Erase.
type AnyParser struct {
	Name string
	run  func(c *Cursor) (any, bool)
}

// Erase type-erases p for use as a sub-parser of All or Any.
func Erase[T any](p Parser[T]) AnyParser {
	return AnyParser{
		Name: p.Name,
		run: func(c *Cursor) (any, bool) {
			var tmp T
			ok := p.run(c, &tmp)
			return tmp, ok
		},
	}
}

// All runs each of ps in order, each against its own fresh, default-valued
// temporary slot. If every sub-parser succeeds, it calls f once with out and
// the slice of sub-results (positionally aligned with ps) and returns true.
// On the first sub-parser to fail, All returns false immediately without
// constructing temporaries for the rest — f is never called.
func All[T any](f func(out *T, results []any), ps ...AnyParser) Parser[T] {
	return Parser[T]{
		Name: "all(" + namesOf(ps) + ")",
		run: func(c *Cursor, out *T) bool {
			results := make([]any, len(ps))
			for i, p := range ps {
				r, ok := p.run(c)
				if !ok {
					return false
				}
				results[i] = r
			}
			f(out, results)
			return true
		},
	}
}

// Any runs ps in order. On the first one (index k, zero-based) that
// succeeds, it calls f once with out, k, and the results slice — every slot
// except index k is nil, not its sub-parser's zero value — and returns true. If a
// sub-parser fails without consuming, Any tries the next one; if it fails
// after consuming, Any fails immediately without trying the rest, the same
// committed-failure discipline as Or.
func Any[T any](f func(out *T, index int, results []any), ps ...AnyParser) Parser[T] {
	return Parser[T]{
		Name: "any(" + namesOf(ps) + ")",
		run: func(c *Cursor, out *T) bool {
			results := make([]any, len(ps))
			for i, p := range ps {
				before := c.Save()
				r, ok := p.run(c)
				if ok {
					results[i] = r
					f(out, i, results)
					return true
				}
				if committed(c, before) {
					return false
				}
			}
			return false
		},
	}
}

func namesOf(ps []AnyParser) string {
	s := ""
	for i, p := range ps {
		if i > 0 {
			s += ", "
		}
		s += p.Name
	}
	return s
}
