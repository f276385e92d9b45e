package parsec

// Define attaches a human-readable name to an arbitrary parser, purely to
// make composed expectation strings and EBNF-shaped error reports read
// better — grounded in original_source/prolog.cpp's `define("atom",
// atom_tok)`, which the original comments "helps clean up the EBNF output in
// error reports". It changes nothing about how p runs.
func Define[T any](name string, p Parser[T]) Parser[T] {
	return Parser[T]{Name: name, run: p.run}
}

// whitespace is the run of Space symbols skipped around tokens. It is not
// exported: grammars that need a different notion of inter-token space (an
// infix expression grammar, say) build their own from Accept(Space) directly.
var whitespace = Discard(Many(Accept(Space)))

// Tokenise skips leading whitespace, then runs p, keeping p's result. It is
// the supplemented combinator behind original_source/prolog.cpp's
// `tokenise(...)` wrapper around every terminal.
func Tokenise[T any](p Parser[T]) Parser[T] {
	return SeqL(whitespace, p)
}

// FirstToken skips any whitespace before a grammar's very first token. Used
// once at the top of a grammar, the way original_source/prolog.cpp's
// `first_token && ...` and test_combinators.cpp's `first_token && ...` do.
var FirstToken = whitespace

// SepBy parses one or more occurrences of p separated by sep, collecting the
// p results into a slice. It requires at least one occurrence of p — the
// shape every grounding use (original_source/prolog.cpp's structure
// arguments, test_combinators.cpp's CSV line) actually needs, since the
// "zero occurrences" case is handled one level up by wrapping the whole
// SepBy in Option.
func SepBy[T any](p Parser[T], sep Parser[Void]) Parser[[]T] {
	return Parser[[]T]{
		Name: "sep_by(" + p.Name + ")",
		run: func(c *Cursor, out *[]T) bool {
			var first T
			if !p.run(c, &first) {
				return false
			}
			items := []T{first}
			for {
				var unit Void
				before := c.Save()
				if !sep.run(c, &unit) {
					if committed(c, before) {
						return false
					}
					break
				}
				var next T
				if !p.run(c, &next) {
					c.Fail("expected item after separator", p.Name)
				}
				items = append(items, next)
			}
			if out != nil {
				*out = append(*out, items...)
			}
			return true
		},
	}
}
