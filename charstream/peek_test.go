package charstream

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPeeked_repeatedPeek(t *testing.T) {

	p := New(strings.NewReader(`a€b`), false).Peekable()

	for i := 0; i < 4; i++ {
		ru, err := p.Peek()
		require.NoError(t, err)
		assert.Equal(t, 'a', ru)
	}

	ru, err := p.ReadChar()
	require.NoError(t, err)
	assert.Equal(t, 'a', ru)

	ru, err = p.ReadChar()
	require.NoError(t, err)
	assert.Equal(t, '€', ru)

	ru, err = p.Peek()
	require.NoError(t, err)
	assert.Equal(t, 'b', ru)

	ru, err = p.ReadChar()
	require.NoError(t, err)
	assert.Equal(t, 'b', ru)

	_, err = p.Peek()
	assert.Equal(t, io.EOF, err)

	// the cached end survives repeated peeks and the consuming read
	_, err = p.Peek()
	assert.Equal(t, io.EOF, err)

	_, err = p.ReadChar()
	assert.Equal(t, io.EOF, err)
}

func TestPeeked_errorsPassThrough(t *testing.T) {

	p := New(bytes.NewReader([]byte{0xFF, 0x61}), false).Peekable()

	_, first := p.Peek()
	require.Error(t, first)

	_, second := p.Peek()
	assert.Equal(t, first, second)

	_, err := p.ReadChar()
	assert.Equal(t, first, err)

	ru, err := p.ReadChar()
	require.NoError(t, err)
	assert.Equal(t, 'a', ru)
}

func TestMultiPeeked_windowReplay(t *testing.T) {

	m := New(strings.NewReader(`abc`), false).PeekableMulti()

	peekAll := func() string {
		var out []rune
		for {
			ru, err := m.Peek()
			if err == io.EOF {
				return string(out)
			}
			require.NoError(t, err)
			out = append(out, ru)
		}
	}

	assert.Equal(t, `abc`, peekAll())

	m.ResetPeek()
	assert.Equal(t, `abc`, peekAll())

	// consuming one shifts the window by exactly one
	ru, err := m.ReadChar()
	require.NoError(t, err)
	assert.Equal(t, 'a', ru)
	assert.Equal(t, `bc`, peekAll())

	ru, err = m.ReadChar()
	require.NoError(t, err)
	assert.Equal(t, 'b', ru)
	assert.Equal(t, `c`, peekAll())

	ru, err = m.ReadChar()
	require.NoError(t, err)
	assert.Equal(t, 'c', ru)

	assert.Equal(t, ``, peekAll())

	_, err = m.ReadChar()
	assert.Equal(t, io.EOF, err)
}

func TestMultiPeeked_readResetsCursor(t *testing.T) {

	m := New(strings.NewReader(`abcd`), false).PeekableMulti()

	for _, expected := range []rune{'a', 'b', 'c'} {
		ru, err := m.Peek()
		require.NoError(t, err)
		assert.Equal(t, expected, ru)
	}

	ru, err := m.ReadChar()
	require.NoError(t, err)
	assert.Equal(t, 'a', ru)

	// the cursor rewound to the consumption point
	ru, err = m.Peek()
	require.NoError(t, err)
	assert.Equal(t, 'b', ru)
}

func TestMultiPeeked_peekDoesNotConsume(t *testing.T) {

	m := New(strings.NewReader(`xy`), false).PeekableMulti()

	for i := 0; i < 2; i++ {
		_, err := m.Peek()
		require.NoError(t, err)
	}

	assert.Equal(t, `xy`, drain(t, m))
}

func TestMultiPeeked_errorsPassThrough(t *testing.T) {

	m := New(bytes.NewReader([]byte{0x61, 0xFF, 0x62}), false).PeekableMulti()

	ru, err := m.Peek()
	require.NoError(t, err)
	assert.Equal(t, 'a', ru)

	_, peeked := m.Peek()
	require.Error(t, peeked)

	ru, err = m.Peek()
	require.NoError(t, err)
	assert.Equal(t, 'b', ru)

	ru, err = m.ReadChar()
	require.NoError(t, err)
	assert.Equal(t, 'a', ru)

	_, err = m.ReadChar()
	assert.Equal(t, peeked, err)

	ru, err = m.ReadChar()
	require.NoError(t, err)
	assert.Equal(t, 'b', ru)
}
