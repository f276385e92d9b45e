package parsec

// Source is the pull-based input contract: Read returns the next symbol and
// advances the underlying stream by one, returning EndOfInput once exhausted.
// Row/column tracking is the Cursor's responsibility, not the Source's.
type Source interface {
	Read() Symbol
}

// Checkpointer is implemented by sources that can cheaply save and restore
// a read position, without buffering unbounded input themselves. A Source
// that does not implement Checkpointer can still be parsed, but Attempt
// cannot recover from a committed failure against it (see cursor.go).
type Checkpointer interface {
	Mark() any
	Seek(mark any)
}
