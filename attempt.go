package parsec

// Attempt wraps p so that a committed failure (p consumed input and then
// failed) is rolled back to how the cursor and out looked before p ran,
// turning it back into a non-consuming failure that Or/Option/Many can
// recover from. out is restored from a shallow copy, so a map or pointer
// result that p mutated in place is not rolled back.
// This is the core's only source of backtracking past one symbol, and it is
// opt-in exactly because it is not free: it requires the Source to implement
// Checkpointer, and it does not roll back Cursor.State — an inherited
// attribute mutated by a failed attempt stays mutated, the same constraint
// the original C++ library's parser_state documents by making itself
// uncopyable.
func Attempt[T any](p Parser[T]) Parser[T] {
	return Parser[T]{
		Name: "attempt(" + p.Name + ")",
		run: func(c *Cursor, out *T) bool {
			before := c.Save()
			var saved T
			if out != nil {
				saved = *out
			}
			if p.run(c, out) {
				return true
			}
			if !c.Restore(before) {
				c.Fail("attempt requires a checkpointing source", p.Name)
			}
			if out != nil {
				*out = saved
			}
			return false
		},
	}
}

// Strict wraps p so that any failure — committed or not — is raised as a
// hard parse error instead of returned as false, per §7's third error kind.
func Strict[T any](message string, p Parser[T]) Parser[T] {
	return Parser[T]{
		Name: p.Name,
		run: func(c *Cursor, out *T) bool {
			if p.run(c, out) {
				return true
			}
			c.Fail(message, p.Name)
			return false
		},
	}
}

// Rec ties the recursive knot for grammars that call themselves, such as a
// Prolog structure's arguments or an expression grammar's nested
// subexpressions. Go has no lazy value to let a parser reference itself
// before it exists, so Rec holds a settable indirection instead — the
// generic analogue of _examples/tef-ez's Grammar.Call(name), which looks a
// not-yet-built rule up by name at parse time rather than at construction
// time.
type Rec[T any] struct {
	name string
	p    *Parser[T]
}

// NewRec creates an unresolved recursive parser named name. Its Parser() may
// be taken before Define, but running that parser before Define panics,
// since that indicates a grammar bug, not a parse-time condition.
func NewRec[T any](name string) *Rec[T] {
	return &Rec[T]{name: name}
}

// Define resolves the recursive parser to p. It must be called exactly once,
// typically right after the recursive grammar rule is built.
func (r *Rec[T]) Define(p Parser[T]) {
	r.p = &p
}

// Parser returns the indirection: a Parser[T] that, at parse time, forwards
// to whatever Define last set.
func (r *Rec[T]) Parser() Parser[T] {
	return Parser[T]{
		Name: r.name,
		run: func(c *Cursor, out *T) bool {
			if r.p == nil {
				panic("parsec: recursive parser " + r.name + " used before Define")
			}
			return r.p.run(c, out)
		},
	}
}
