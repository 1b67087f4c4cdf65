package charstream

import (
	"errors"
	"io"
)

type result struct {
	ru  rune
	err error
}

// Peeked adds single slot lookahead to a Stream. Peek decodes at most one
// result ahead and caches it, errors included, so peeking never changes what
// a later ReadChar observes.
type Peeked struct {
	stream *Stream
	cached bool
	slot   result
}

// Peek returns the next unconsumed result without consuming it. Repeated
// calls return the identical cached result.
func (p *Peeked) Peek() (rune, error) {

	if !p.cached {
		ru, err := p.stream.ReadChar()
		p.slot = result{ru: ru, err: err}
		p.cached = true
	}
	return p.slot.ru, p.slot.err
}

// ReadChar drains the cached slot first, else calls through to the stream.
func (p *Peeked) ReadChar() (rune, error) {

	if p.cached {
		p.cached = false
		return p.slot.ru, p.slot.err
	}
	return p.stream.ReadChar()
}

func (p *Peeked) Lossy() bool {
	return p.stream.lossy
}

// Iterate wraps the buffer into an Iterator with the default interruption
// budget.
func (p *Peeked) Iterate() *Iterator {
	return NewIterator(p, InterruptedMax)
}

// MultiPeeked adds arbitrary lookahead to a Stream. A cursor replays queued
// results and extends the queue past its tail by decoding fresh ones, at the
// cost of unbounded growth until consumption catches up.
type MultiPeeked struct {
	stream   *Stream
	buf      []result
	position int
}

// Peek returns the result under the cursor and advances it, decoding a fresh
// result when the cursor is past the cached tail. Clean end of input is
// returned but never queued, so consumption is unaffected.
func (m *MultiPeeked) Peek() (rune, error) {

	if m.position < len(m.buf) {
		res := m.buf[m.position]
		m.position++
		return res.ru, res.err
	}

	ru, err := m.stream.ReadChar()
	if errors.Is(err, io.EOF) {
		return 0, io.EOF
	}

	m.buf = append(m.buf, result{ru: ru, err: err})
	m.position++
	return ru, err
}

// ResetPeek rewinds the cursor to the consumption point. The cache stays.
func (m *MultiPeeked) ResetPeek() {
	m.position = 0
}

// ReadChar resets the cursor and consumes exactly one result, dequeuing a
// cached one first.
func (m *MultiPeeked) ReadChar() (rune, error) {

	m.position = 0

	if len(m.buf) > 0 {
		res := m.buf[0]
		m.buf = m.buf[1:]
		return res.ru, res.err
	}
	return m.stream.ReadChar()
}

func (m *MultiPeeked) Lossy() bool {
	return m.stream.lossy
}

// Iterate wraps the buffer into an Iterator with the default interruption
// budget.
func (m *MultiPeeked) Iterate() *Iterator {
	return NewIterator(m, InterruptedMax)
}
