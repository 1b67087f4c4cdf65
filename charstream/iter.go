package charstream

import (
	"errors"
	"io"
)

// InterruptedMax is the default number of consecutive transient
// interruptions absorbed before the Iterator gives up.
const InterruptedMax = 5

// Iterator drains a CharStream as a pull sequence, one decode result per
// step. Transient interruptions are retried in place, everything else is
// either yielded or ends the sequence.
type Iterator struct {
	stream      CharStream
	max         int
	interrupted int
	done        bool
	current     result
}

// NewIterator wraps a decoding source. maxInterrupted bounds consecutive
// transient interruptions, the budget resets on every successful step.
func NewIterator(stream CharStream, maxInterrupted int) *Iterator {
	return &Iterator{stream: stream, max: maxInterrupted}
}

// Next advances to the next element. It returns false once the source is
// cleanly exhausted, ends mid-sequence, or the interruption budget is spent.
// Exhausting the budget ends the sequence silently, the interruptions are
// not surfaced as elements. Once false, Next stays false.
func (it *Iterator) Next() bool {

	if it.done {
		return false
	}

	for {
		ru, err := it.stream.ReadChar()
		if err == nil {
			it.interrupted = 0
			it.current = result{ru: ru}
			return true
		}

		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			it.done = true
			return false
		}

		if temporary(err) {
			if it.interrupted >= it.max {
				it.done = true
				return false
			}
			it.interrupted++
			continue
		}

		it.interrupted = 0
		it.current = result{err: err}
		return true
	}
}

// Char returns the character decoded by the last successful Next. Zero when
// the element is an error.
func (it *Iterator) Char() rune {
	return it.current.ru
}

// Err returns the error element produced by the last Next, if any. Decode
// and io errors are elements of the sequence, they do not end it.
func (it *Iterator) Err() error {
	return it.current.err
}

func (it *Iterator) Lossy() bool {
	return it.stream.Lossy()
}
