package pool

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestByteBuffer_WriteAndReset(t *testing.T) {
	bb := NewByteBuffer(16)
	bb.MustWrite([]byte("ur:"))
	bb.MustWriteByte('x')
	require.Equal(t, 4, bb.Len())
	require.Equal(t, []byte("ur:x"), bb.Bytes())

	bb.Reset()
	require.Equal(t, 0, bb.Len())
	require.GreaterOrEqual(t, bb.Cap(), 16)
}

func TestByteBuffer_Grow(t *testing.T) {
	bb := NewByteBuffer(8)
	bb.Grow(4)
	require.GreaterOrEqual(t, bb.Cap(), 4)

	// Growing beyond capacity must preserve contents.
	bb.MustWrite([]byte("abcd"))
	bb.Grow(PartBufferDefaultSize * 8)
	require.Equal(t, []byte("abcd"), bb.Bytes())
	require.GreaterOrEqual(t, bb.Cap()-bb.Len(), PartBufferDefaultSize*8)
}

func TestByteBufferPool_Reuse(t *testing.T) {
	p := NewByteBufferPool(32, 1024)
	bb := p.Get()
	require.NotNil(t, bb)
	bb.MustWrite([]byte("data"))
	p.Put(bb)

	bb2 := p.Get()
	require.Equal(t, 0, bb2.Len())
}

func TestByteBufferPool_DiscardsOversized(t *testing.T) {
	p := NewByteBufferPool(32, 64)
	bb := p.Get()
	bb.Grow(1024)
	p.Put(bb) // should be dropped, not panic

	bb2 := p.Get()
	require.LessOrEqual(t, bb2.Cap(), 1024)
}

func TestGetPartBuffer(t *testing.T) {
	bb := GetPartBuffer()
	require.NotNil(t, bb)
	require.Equal(t, 0, bb.Len())
	bb.MustWrite([]byte("part"))
	PutPartBuffer(bb)
}
