package parsec

// Void is the result type of parsers that carry no value: Discard, the
// skipped side of SeqL/SeqR, and Succ/Fail when instantiated as
// Succ[Void]/Fail[Void].
type Void struct{}

// Parser is a stateless, copyable value carrying a result-type tag (via the
// type parameter T) and a callable that runs against a Cursor and an
// optional, caller-owned result slot. A true return implies the cursor has
// advanced past exactly the consumed symbols and, if out was non-nil, out
// has been mutated only by appending or assigning the produced value. A
// false return is either a non-consuming failure (cursor unchanged) or a
// committed failure (cursor advanced) — which one applies is the calling
// combinator's discipline, not the Parser's.
type Parser[T any] struct {
	Name string
	run  func(c *Cursor, out *T) bool
}

// Parse runs the parser against c, writing into out on success if out is
// non-nil. It does not recover panics — use Run at the outermost call.
func (p Parser[T]) Parse(c *Cursor, out *T) bool {
	return p.run(c, out)
}

// Run is the top-level parse invocation: it runs p against c, recovering a
// *ParseError panic from an expect/Strict failure and returning it as an
// error instead of unwinding past this call.
func Run[T any](p Parser[T], c *Cursor, out *T) (ok bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			if pe, isParseError := r.(*ParseError); isParseError {
				err = pe
				return
			}
			panic(r)
		}
	}()
	ok = p.run(c, out)
	return
}

// Accept lifts pred to a recognizer: on a match it appends the symbol to out
// (if out is non-nil) and advances, returning true; on a mismatch it returns
// false without advancing (soft failure).
func Accept(pred Predicate) Parser[string] {
	return Parser[string]{
		Name: pred.Name,
		run: func(c *Cursor, out *string) bool {
			s := c.Peek()
			if !pred.Match(s) {
				return false
			}
			if out != nil {
				*out += string(rune(s))
			}
			c.Advance()
			return true
		},
	}
}

// Expect is Accept, but raises a parse error instead of failing softly when
// pred does not match the current symbol.
func Expect(pred Predicate) Parser[string] {
	return Parser[string]{
		Name: pred.Name,
		run: func(c *Cursor, out *string) bool {
			s := c.Peek()
			if !pred.Match(s) {
				c.Fail("unexpected symbol", pred.Name)
			}
			if out != nil {
				*out += string(rune(s))
			}
			c.Advance()
			return true
		},
	}
}

// Succ always succeeds without consuming input or touching out.
func Succ[T any]() Parser[T] {
	return Parser[T]{Name: "succ", run: func(*Cursor, *T) bool { return true }}
}

// Fail always fails without consuming input.
func Fail[T any]() Parser[T] {
	return Parser[T]{Name: "fail", run: func(*Cursor, *T) bool { return false }}
}

// Custom builds a primitive parser directly from a run function. It exists
// for grammars whose terminals or reducers need the Cursor itself rather
// than just sub-results — most often to read or mutate Cursor.State, the way
// examples/prolog's variable and clause parsers maintain their name tables.
// All/Any's reducer functions only ever see results, not c, precisely so
// that ordinary grammar code never needs this escape hatch.
func Custom[T any](name string, run func(c *Cursor, out *T) bool) Parser[T] {
	return Parser[T]{Name: name, run: run}
}
