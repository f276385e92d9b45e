// Package streamsrc provides parsec.Source implementations over a string and
// over an io.Reader — the "stream adapters" the spec names as an external
// consumer of the combinator core, grounded in original_source's
// stream_iterator.hpp usage (never retrieved itself, only referenced by
// example_expression.cpp and prolog.cpp).
package streamsrc

import (
	"bufio"
	"io"

	"github.com/kschupke/parsec"
)

// String is a checkpointing Source over an in-memory string — cheap to seek,
// since the whole input is already resident.
type String struct {
	buf    string
	offset int
}

// NewString builds a String source over s.
func NewString(s string) *String {
	return &String{buf: s}
}

// Read implements parsec.Source.
func (s *String) Read() parsec.Symbol {
	if s.offset >= len(s.buf) {
		return parsec.EndOfInput
	}
	r := rune(s.buf[s.offset])
	s.offset++
	return parsec.Symbol(r)
}

// Mark implements parsec.Checkpointer.
func (s *String) Mark() any {
	return s.offset
}

// Seek implements parsec.Checkpointer.
func (s *String) Seek(mark any) {
	s.offset = mark.(int)
}

// Reader is a non-checkpointing Source over a buffered io.Reader. It cannot
// support parsec.Attempt, since rewinding an arbitrary reader would require
// buffering unbounded input — the tradeoff the core's design explicitly
// allows a Source to decline.
type Reader struct {
	br *bufio.Reader
}

// NewReader builds a Reader source over r.
func NewReader(r io.Reader) *Reader {
	return &Reader{br: bufio.NewReader(r)}
}

// Read implements parsec.Source.
func (r *Reader) Read() parsec.Symbol {
	b, err := r.br.ReadByte()
	if err != nil {
		return parsec.EndOfInput
	}
	return parsec.Symbol(rune(b))
}
