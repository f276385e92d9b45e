package parsec

import "unicode"

// Symbol is a single character drawn from a parser input, coded as a rune.
// EndOfInput is a distinguished value that no class or literal predicate
// matches; IsEOF matches it, and so does the Not of any predicate that
// rejects it.
type Symbol rune

// EndOfInput is the sentinel returned by a Source once it is exhausted.
const EndOfInput Symbol = -1

// Predicate is a named, stateless test on a single Symbol. Predicates are
// freely copyable and carry no mutable state, so they are safe to share
// across goroutines and across parsers built from them.
type Predicate struct {
	Name  string
	match func(Symbol) bool
}

// Match reports whether s satisfies the predicate.
func (p Predicate) Match(s Symbol) bool {
	return p.match(s)
}

// Or builds the disjunction of p and q. Its name is "(p.Name or q.Name)".
func (p Predicate) Or(q Predicate) Predicate {
	return Predicate{
		Name:  "(" + p.Name + " or " + q.Name + ")",
		match: func(s Symbol) bool { return p.match(s) || q.match(s) },
	}
}

// Not builds the complement of p. Its name is "~p.Name".
func (p Predicate) Not() Predicate {
	return Predicate{
		Name:  "~" + p.Name,
		match: func(s Symbol) bool { return !p.match(s) },
	}
}

func newPredicate(name string, match func(Symbol) bool) Predicate {
	return Predicate{Name: name, match: match}
}

// AnySym matches every symbol except EndOfInput.
var AnySym = newPredicate("anything", func(s Symbol) bool { return s != EndOfInput })

// IsEOF matches only EndOfInput. It is the one named predicate EndOfInput
// satisfies; complements built with Not can match it too.
var IsEOF = newPredicate("end of input", func(s Symbol) bool { return s == EndOfInput })

// Space, Digit, Upper, Lower, Alpha, Alnum and Print are the class predicates,
// classifying EndOfInput as false just like the underlying ctype family does
// for EOF.
var (
	Space = newPredicate("space", classify(unicode.IsSpace))
	Digit = newPredicate("digit", classify(unicode.IsDigit))
	Upper = newPredicate("uppercase", classify(unicode.IsUpper))
	Lower = newPredicate("lowercase", classify(unicode.IsLower))
	Alpha = newPredicate("alphabetic", classify(unicode.IsLetter))
	Alnum = newPredicate("alphanumeric", classify(func(r rune) bool {
		return unicode.IsLetter(r) || unicode.IsDigit(r)
	}))
	Print = newPredicate("printable", classify(unicode.IsPrint))
)

func classify(f func(rune) bool) func(Symbol) bool {
	return func(s Symbol) bool {
		return s != EndOfInput && f(rune(s))
	}
}

// IsChar builds a predicate matching exactly one literal symbol, naming
// itself as 'c'.
func IsChar(c rune) Predicate {
	return newPredicate("'"+string(c)+"'", func(s Symbol) bool { return s == Symbol(c) })
}
