package parsec_test

import (
	"testing"

	. "github.com/kschupke/parsec"
	"github.com/kschupke/parsec/internal/streamsrc"
)

func cursorOf(s string) *Cursor {
	return NewCursor(streamsrc.NewString(s))
}

func TestPredicates(t *testing.T) {
	for _, tc := range []struct {
		name string
		pred Predicate
		sym  Symbol
		want bool
	}{
		{"digit matches 5", Digit, Symbol('5'), true},
		{"digit rejects x", Digit, Symbol('x'), false},
		{"digit rejects eof", Digit, EndOfInput, false},
		{"eof matches eof", IsEOF, EndOfInput, true},
		{"any rejects eof", AnySym, EndOfInput, false},
		{"is_char matches literal", IsChar('a'), Symbol('a'), true},
		{"or short circuits left", Digit.Or(Alpha), Symbol('5'), true},
		{"or falls through to right", Digit.Or(Alpha), Symbol('x'), true},
		{"or rejects neither", Digit.Or(Alpha), Symbol(' '), false},
		{"not inverts", Digit.Not(), Symbol('x'), true},
	} {
		if got := tc.pred.Match(tc.sym); got != tc.want {
			t.Errorf("%s: Match(%v) = %v, want %v", tc.name, tc.sym, got, tc.want)
		}
	}
}

func TestPredicateNames(t *testing.T) {
	if got, want := Digit.Or(Alpha).Name, "(digit or alphabetic)"; got != want {
		t.Errorf("Or name = %q, want %q", got, want)
	}
	if got, want := Digit.Not().Name, "~digit"; got != want {
		t.Errorf("Not name = %q, want %q", got, want)
	}
}

func TestDeMorgan(t *testing.T) {
	p, q := Digit, Alpha
	left := p.Or(q).Not()
	right := p.Not()
	for _, sym := range []Symbol{'5', 'x', ' ', EndOfInput} {
		a := left.Match(sym)
		b := right.Match(sym) && q.Not().Match(sym)
		if a != b {
			t.Errorf("De Morgan failed at %v: ~(p or q)=%v, ~p && ~q=%v", sym, a, b)
		}
	}
}

func TestAcceptNonConsumption(t *testing.T) {
	c := cursorOf("x")
	var out string
	if Accept(Digit).Parse(c, &out) {
		t.Fatal("accept(digit) matched 'x'")
	}
	row, col, offset := c.Position()
	if row != 1 || col != 1 || offset != 0 {
		t.Errorf("cursor moved on soft failure: row=%d col=%d offset=%d", row, col, offset)
	}
	if out != "" {
		t.Errorf("out written on soft failure: %q", out)
	}
}

func TestScenario1SomeDigits(t *testing.T) {
	c := cursorOf("123abc")
	var out string
	if !Some(Accept(Digit)).Parse(c, &out) {
		t.Fatal("some(accept(digit)) failed on \"123abc\"")
	}
	if out != "123" {
		t.Errorf("result = %q, want %q", out, "123")
	}
	_, col, _ := c.Position()
	if col != 4 {
		t.Errorf("col = %d, want 4", col)
	}
	if c.Peek() != Symbol('a') {
		t.Errorf("cursor not positioned at 'a': peek = %v", c.Peek())
	}
}

func TestScenario2OrderedChoiceSuccess(t *testing.T) {
	c := cursorOf("b")
	var out string
	p := Or(Accept(IsChar('a')), Accept(IsChar('b')))
	if !p.Parse(c, &out) {
		t.Fatal("choice failed on \"b\"")
	}
	if out != "b" {
		t.Errorf("result = %q, want %q", out, "b")
	}
	if _, _, offset := c.Position(); offset != 1 {
		t.Errorf("offset = %d, want 1", offset)
	}
}

func TestScenario3SequenceCommits(t *testing.T) {
	c := cursorOf("ax")
	var out string
	p := And(Accept(IsChar('a')), Accept(IsChar('b')))
	if p.Parse(c, &out) {
		t.Fatal("sequence succeeded on \"ax\"")
	}
	if _, _, offset := c.Position(); offset != 1 {
		t.Errorf("offset = %d, want 1 (committed past 'a')", offset)
	}
}

func TestScenario6ExpectRaises(t *testing.T) {
	c := cursorOf("x")
	var out string
	_, err := Run(Expect(Digit), c, &out)
	if err == nil {
		t.Fatal("expect(digit) did not raise on \"x\"")
	}
	pe, ok := err.(*ParseError)
	if !ok {
		t.Fatalf("error type = %T, want *ParseError", err)
	}
	if pe.Expectation != "digit" || pe.Row != 1 || pe.Col != 1 || pe.Offending != Symbol('x') {
		t.Errorf("unexpected ParseError: %+v", pe)
	}
}

func TestManyTerminates(t *testing.T) {
	c := cursorOf("")
	var out string
	if !Many(Accept(Digit)).Parse(c, &out) {
		t.Fatal("many never fails")
	}
	if out != "" {
		t.Errorf("out = %q, want empty", out)
	}
}

func TestSuccLeftIdentity(t *testing.T) {
	c1, c2 := cursorOf("42"), cursorOf("42")
	var out1, out2 string
	p := Some(Accept(Digit))
	lhs := And(Succ[string](), p)
	ok1 := lhs.Parse(c1, &out1)
	ok2 := p.Parse(c2, &out2)
	if ok1 != ok2 || out1 != out2 {
		t.Errorf("succ && p != p: (%v,%q) vs (%v,%q)", ok1, out1, ok2, out2)
	}
}

func TestFailRightAbsorption(t *testing.T) {
	c1, c2 := cursorOf("42"), cursorOf("42")
	var out1, out2 string
	p := Some(Accept(Digit))
	lhs := Or(Fail[string](), p)
	ok1 := lhs.Parse(c1, &out1)
	ok2 := p.Parse(c2, &out2)
	if ok1 != ok2 || out1 != out2 {
		t.Errorf("fail || p != p: (%v,%q) vs (%v,%q)", ok1, out1, ok2, out2)
	}

	c3 := cursorOf("42")
	var out3 string
	if And(p, Fail[string]()).Parse(c3, &out3) {
		t.Error("p && fail succeeded")
	}
	if out3 != "42" {
		t.Errorf("p's effects lost: out = %q", out3)
	}
}

func TestOptionAndDiscard(t *testing.T) {
	c := cursorOf("x")
	var out string
	if !Option(Accept(Digit)).Parse(c, &out) {
		t.Fatal("option(accept(digit)) failed on non-digit")
	}
	if out != "" {
		t.Errorf("out = %q, want empty", out)
	}
	if c.Peek() != Symbol('x') {
		t.Errorf("cursor advanced, peek = %v", c.Peek())
	}

	var unit Void
	if !Discard(Accept(IsChar('x'))).Parse(c, &unit) {
		t.Fatal("discard failed to match 'x'")
	}
}

func TestSeqLSeqR(t *testing.T) {
	c := cursorOf("  42")
	var out string
	p := SeqL(Discard(Many(Accept(Space))), Some(Accept(Digit)))
	if !p.Parse(c, &out) {
		t.Fatal("SeqL failed")
	}
	if out != "42" {
		t.Errorf("result = %q, want %q", out, "42")
	}

	c2 := cursorOf("42  ")
	var out2 string
	q := SeqR(Some(Accept(Digit)), Discard(Many(Accept(Space))))
	if !q.Parse(c2, &out2) {
		t.Fatal("SeqR failed")
	}
	if out2 != "42" {
		t.Errorf("result = %q, want %q", out2, "42")
	}
	if c2.Peek() != EndOfInput {
		t.Errorf("SeqR left trailing whitespace unconsumed: peek = %v", c2.Peek())
	}
}

func TestRowColCorrectness(t *testing.T) {
	c := cursorOf("ab\ncd\tef")
	var out string
	Many(Accept(AnySym)).Parse(c, &out)
	row, col, _ := c.Position()
	if row != 2 {
		t.Errorf("row = %d, want 2", row)
	}
	// "cd\tef": c,d,e,f are printable (4), tab is not.
	if col != 5 {
		t.Errorf("col = %d, want 5", col)
	}
}

func TestAttemptBacktracks(t *testing.T) {
	c := cursorOf("ax")
	var out string
	p := Or(Attempt(And(Accept(IsChar('a')), Accept(IsChar('b')))), Accept(IsChar('a')))
	if !p.Parse(c, &out) {
		t.Fatal("attempt-guarded choice failed to recover")
	}
	if out != "a" {
		t.Errorf("result = %q, want %q", out, "a")
	}
}

func TestStrictRaises(t *testing.T) {
	c := cursorOf("x")
	var out string
	_, err := Run(Strict("bad thing", Accept(Digit)), c, &out)
	if err == nil {
		t.Fatal("strict did not raise on a failing sub-parser")
	}
}

func TestRec(t *testing.T) {
	// balanced parens: parens = "(" parens ")" | succ
	rec := NewRec[Void]("parens")
	var unit Void
	body := Or(
		And(Discard(Accept(IsChar('('))), And(rec.Parser(), Discard(Accept(IsChar(')'))))),
		Succ[Void](),
	)
	rec.Define(body)

	c := cursorOf("(())")
	if !rec.Parser().Parse(c, &unit) {
		t.Fatal("recursive parens grammar failed")
	}
	if c.Peek() != EndOfInput {
		t.Errorf("input not fully consumed, peek = %v", c.Peek())
	}
}
