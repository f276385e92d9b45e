package parsec

// Cursor is the input cursor: underlying source, one buffered lookahead
// symbol, a byte count, and a 1-based row/column. A Cursor is single-owner —
// parsers never share one concurrently.
//
// State is an optional, user-supplied inherited attribute threaded through a
// parse by reference (not copied by Attempt's checkpointing — see Attempt in
// attempt.go). Grammars that need mutable side tables across a parse, such as
// examples/prolog's name interning, store them here instead of widening every
// Parser signature.
type Cursor struct {
	src Source
	sym Symbol

	offset int
	row    int
	col    int

	State any
}

// NewCursor builds a Cursor over src. The cursor holds a real symbol or
// EndOfInput immediately after construction, per the §3 invariant.
func NewCursor(src Source) *Cursor {
	c := &Cursor{src: src, row: 1, col: 1}
	c.sym = src.Read()
	return c
}

// Peek returns the buffered lookahead without advancing.
func (c *Cursor) Peek() Symbol {
	return c.sym
}

// Advance discards the buffered symbol and reads the next one, updating
// row/col/offset. col resets on newline and only printable symbols advance
// it, so control characters never shift visible columns in diagnostics.
func (c *Cursor) Advance() {
	consumed := c.sym
	c.sym = c.src.Read()
	c.offset++
	if consumed == Symbol('\n') {
		c.row++
		c.col = 1
	} else if Print.Match(consumed) {
		c.col++
	}
}

// Position returns the cursor's row, column and byte offset for diagnostics.
func (c *Cursor) Position() (row, col, offset int) {
	return c.row, c.col, c.offset
}

// Fail raises a parse error at the current position. It never returns.
func (c *Cursor) Fail(message, expectation string) {
	panic(&ParseError{
		Message:     message,
		Row:         c.row,
		Col:         c.col,
		Expectation: expectation,
		Offending:   c.sym,
	})
}

// Checkpoint is an opaque saved cursor position, produced by Save and
// consumed by Restore.
type Checkpoint struct {
	sym    Symbol
	offset int
	row    int
	col    int
	mark   any
	ok     bool
}

// Save captures the cursor's current position. The returned Checkpoint can
// only be restored if the underlying Source implements Checkpointer.
func (c *Cursor) Save() Checkpoint {
	cp := Checkpoint{sym: c.sym, offset: c.offset, row: c.row, col: c.col}
	if src, ok := c.src.(Checkpointer); ok {
		cp.mark = src.Mark()
		cp.ok = true
	}
	return cp
}

// Restore rewinds the cursor to cp, returning false if cp's source did not
// support checkpointing when it was saved.
func (c *Cursor) Restore(cp Checkpoint) bool {
	if !cp.ok {
		return false
	}
	c.src.(Checkpointer).Seek(cp.mark)
	c.sym, c.offset, c.row, c.col = cp.sym, cp.offset, cp.row, cp.col
	return true
}
