package lexer

import (
	"fmt"
	"io"
)

// Stream is a read cursor over a completed Sequence. Consumed tokens are gone
// for sequential reads; the cursor never moves backward. A Stream is not safe
// for concurrent use.
type Stream struct {
	items Sequence
	cur   int
}

func NewStream(seq Sequence) *Stream {
	return &Stream{items: seq}
}

// Size returns the total number of tokens, consumed or not.
func (s *Stream) Size() int {
	return len(s.items)
}

// Remaining returns the number of tokens not yet consumed.
func (s *Stream) Remaining() int {
	return len(s.items) - s.cur
}

// Index returns the token at absolute position pos of the original sequence.
// Calling it with pos outside [0, Size()) is a programming error and panics.
func (s *Stream) Index(pos int) Item {
	if pos < 0 || pos >= len(s.items) {
		panic(fmt.Sprintf("lexer: stream index %d out of range [0, %d)", pos, len(s.items)))
	}
	return s.items[pos]
}

// Empty reports whether every token has been consumed.
func (s *Stream) Empty() bool {
	return s.cur >= len(s.items)
}

// Peek returns the token under the cursor without advancing.
func (s *Stream) Peek() (Item, error) {
	if s.Empty() {
		return Item{}, exhausted("Peek")
	}
	return s.items[s.cur], nil
}

// Pop discards the token under the cursor.
func (s *Stream) Pop() error {
	if s.Empty() {
		return exhausted("Pop")
	}
	s.cur++
	return nil
}

// Consume returns the token under the cursor and advances past it.
func (s *Stream) Consume() (Item, error) {
	if s.Empty() {
		return Item{}, exhausted("Consume")
	}
	it := s.items[s.cur]
	s.cur++
	return it, nil
}

// Print dumps the tokens that have not been consumed yet.
func (s *Stream) Print(w io.Writer) error {
	return s.items[s.cur:].Print(w)
}
