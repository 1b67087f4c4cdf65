package charstream

import (
	"errors"
	"io"
	"unicode/utf8"
)

// CharStream produces one decode result per call. Implemented by Stream,
// Peeked and MultiPeeked.
type CharStream interface {
	ReadChar() (rune, error)
	Lossy() bool
}

// Stream decodes UTF-8 scalar values from a byte source, one per call.
// It owns the source, concurrent use needs external locking.
type Stream struct {
	reader io.Reader
	lossy  bool
}

// New wraps a byte source. With lossy set, invalid byte sequences decode to
// utf8.RuneError instead of failing.
func New(reader io.Reader, lossy bool) *Stream {
	return &Stream{reader: reader, lossy: lossy}
}

func (s *Stream) Lossy() bool {
	return s.lossy
}

// ReadChar decodes the next scalar value. A cleanly exhausted source returns
// io.EOF. A source failing mid-sequence returns a *StreamError carrying the
// bytes already consumed; end of input inside a sequence wraps
// io.ErrUnexpectedEOF. Invalid byte groups return a *DecodeError unless the
// stream is lossy.
func (s *Stream) ReadChar() (rune, error) {

	var group [utf8.UTFMax]byte

	if _, err := io.ReadFull(s.reader, group[:1]); err != nil {
		if errors.Is(err, io.EOF) {
			return 0, io.EOF
		}
		return 0, &StreamError{err: err}
	}

	rest, ok := continuationCount(group[0])
	if !ok {
		if s.lossy {
			return utf8.RuneError, nil
		}
		return 0, decodeErrorf(group[:1:1], `invalid leading byte`)
	}

	seq := group[: 1+rest : 1+rest]
	if rest > 0 {
		n, err := io.ReadFull(s.reader, seq[1:])
		if err != nil {
			read := seq[:1+n]
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				return 0, &StreamError{bytes: read, err: io.ErrUnexpectedEOF}
			}
			return 0, &StreamError{bytes: read, err: err}
		}
	}

	ru, size := utf8.DecodeRune(seq)

	if ru == utf8.RuneError && size < len(seq) {
		if s.lossy {
			return utf8.RuneError, nil
		}
		return 0, decodeErrorf(seq, `invalid byte sequence`)
	}

	if size != len(seq) {
		return 0, decodeErrorf(seq, `expected a single character in %v bytes, decoded %v`, len(seq), size)
	}

	return ru, nil
}

// Peekable wraps the stream into a single slot peek buffer.
func (s *Stream) Peekable() *Peeked {
	return &Peeked{stream: s}
}

// PeekableMulti wraps the stream into a replay cursor peek buffer.
func (s *Stream) PeekableMulti() *MultiPeeked {
	return &MultiPeeked{stream: s}
}

// Iterate wraps the stream into an Iterator with the default interruption
// budget.
func (s *Stream) Iterate() *Iterator {
	return NewIterator(s, InterruptedMax)
}

func continuationCount(b byte) (count int, ok bool) {

	switch {
	case b>>7 == 0:
		return 0, true
	case b>>5 == 0x6:
		return 1, true
	case b>>4 == 0xe:
		return 2, true
	case b>>3 == 0x1e:
		return 3, true
	}
	return 0, false
}
