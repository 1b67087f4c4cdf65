package charstream

import (
	"errors"
	"io"
	"unicode/utf8"
)

// Reader re-emits a decoded character sequence as UTF-8 text through the
// io.Reader interface. It is fail stop, the first decode or io error latches
// and every later Read returns it. A lossy stream never produces decode
// errors, which makes io.Copy over a lossy Reader a stream sanitizer.
type Reader struct {
	stream CharStream
	outbuf []byte
	err    error
	done   bool
}

func NewReader(stream CharStream) *Reader {
	return &Reader{stream: stream}
}

// Done reports whether the source was consumed to a clean end.
func (r *Reader) Done() bool {
	return r.done
}

func (r *Reader) Err() error {
	return r.err
}

func (r *Reader) Read(p []byte) (n int, err error) {

	err = r.err
	var scratch [utf8.UTFMax]byte

	for err == nil && len(r.outbuf) < len(p) {

		ru, rerr := r.stream.ReadChar()
		if rerr != nil {
			err = rerr
			break
		}

		size := utf8.EncodeRune(scratch[:], ru)
		r.outbuf = append(r.outbuf, scratch[:size]...)
	}
	r.err = err

	if errors.Is(err, io.EOF) {
		r.done = true
	}

	n = len(r.outbuf)
	if n > len(p) {
		n = len(p)
	}

	copy(p, r.outbuf[:n])
	r.outbuf = r.outbuf[n:]

	return n, err
}
