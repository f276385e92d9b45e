package parsec

// Or is ordered choice, p || q in the spec's notation. It runs p; if p
// succeeds, Or succeeds. Otherwise, only if p did not consume any input, it
// runs q and returns q's outcome. If p consumes input and then fails, Or
// fails without trying q — full backtracking past a consumed symbol requires
// wrapping p in Attempt.
//
// p and q must share a result type: Go cannot infer spec §4.7's "least
// general" of two different types, so unlike the source, Or does not accept
// mismatched result types at all (see DESIGN.md). Use SeqL/SeqR for the
// discard-one-side case the "least general" rule exists to serve.
func Or[T any](p, q Parser[T]) Parser[T] {
	return Parser[T]{
		Name: "(" + p.Name + " or " + q.Name + ")",
		run: func(c *Cursor, out *T) bool {
			before := c.Save()
			if p.run(c, out) {
				return true
			}
			if !committed(c, before) {
				return q.run(c, out)
			}
			return false
		},
	}
}

// And is sequencing, p && q. It runs p, then — only if p succeeded — runs q
// against the advanced cursor. Both write into the same out slot. If q
// fails, the cursor is left wherever q left it (committed); callers must not
// treat And as atomic.
func And[T any](p, q Parser[T]) Parser[T] {
	return Parser[T]{
		Name: "(" + p.Name + " and " + q.Name + ")",
		run: func(c *Cursor, out *T) bool {
			return p.run(c, out) && q.run(c, out)
		},
	}
}

// Many runs p repeatedly while it returns true. It succeeds once p fails
// without consuming input; if p fails after consuming input, Many fails too,
// the same committed-failure discipline as Or. Termination relies on p
// consuming at least one symbol whenever it succeeds: Many over a parser that
// can succeed without consuming (Succ, Option, Many) does not terminate.
func Many[T any](p Parser[T]) Parser[T] {
	return Parser[T]{
		Name: "many(" + p.Name + ")",
		run: func(c *Cursor, out *T) bool {
			for {
				before := c.Save()
				if !p.run(c, out) {
					return !committed(c, before)
				}
			}
		},
	}
}

// Some is p at least once: p && many(p).
func Some[T any](p Parser[T]) Parser[T] {
	return And(p, Many(p))
}

// Option is p zero or one times: p || succ.
func Option[T any](p Parser[T]) Parser[T] {
	return Or(p, Succ[T]())
}

// Discard runs p against a throwaway slot: the caller's out is never written,
// and the combinator's own result type is Void.
func Discard[T any](p Parser[T]) Parser[Void] {
	return Parser[Void]{
		Name: "discard(" + p.Name + ")",
		run: func(c *Cursor, _ *Void) bool {
			var nowhere T
			return p.run(c, &nowhere)
		},
	}
}

// SeqL runs a void parser then p, keeping p's result. It is the named,
// explicit stand-in for §4.7's "least general" inference on discard(x) &&
// accept(y): this implementation requires the user to say which side's type
// wins instead of inferring it.
func SeqL[T any](void Parser[Void], p Parser[T]) Parser[T] {
	return Parser[T]{
		Name: "(" + void.Name + " and " + p.Name + ")",
		run: func(c *Cursor, out *T) bool {
			var unit Void
			return void.run(c, &unit) && p.run(c, out)
		},
	}
}

// SeqR runs p then a void parser, keeping p's result.
func SeqR[T any](p Parser[T], void Parser[Void]) Parser[T] {
	return Parser[T]{
		Name: "(" + p.Name + " and " + void.Name + ")",
		run: func(c *Cursor, out *T) bool {
			var unit Void
			return p.run(c, out) && void.run(c, &unit)
		},
	}
}

// committed reports whether the cursor advanced past the position recorded
// in before — i.e. whether the failure that just happened was a committed
// failure rather than a non-consuming one.
func committed(c *Cursor, before Checkpoint) bool {
	_, _, offset := c.Position()
	return offset != before.offset
}
