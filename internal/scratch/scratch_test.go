package scratch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLeaseTakeGrows(t *testing.T) {
	l := NewLease(0)
	defer l.Release()
	require.Equal(t, 0, l.Cap())

	b, err := l.Take(16)
	require.NoError(t, err)
	assert.Len(t, b, 16)
	assert.GreaterOrEqual(t, l.Cap(), 16)

	b, err = l.Take(3 * poolInitCap)
	require.NoError(t, err)
	assert.Len(t, b, 3*poolInitCap)
	assert.GreaterOrEqual(t, l.Cap(), 3*poolInitCap)
}

func TestLeaseKeepsBufferBetweenTakes(t *testing.T) {
	l := NewLease(0)
	defer l.Release()
	a, err := l.Take(8)
	require.NoError(t, err)
	a[0] = 'x'
	b, err := l.Take(8)
	require.NoError(t, err)
	assert.Same(t, &a[0], &b[0])
}

func TestLeaseLimit(t *testing.T) {
	l := NewLease(64)
	defer l.Release()
	_, err := l.Take(65)
	require.ErrorIs(t, err, ErrExhausted)
	assert.Equal(t, 0, l.Cap(), "refused take must not acquire a buffer")

	b, err := l.Take(64)
	require.NoError(t, err)
	assert.Len(t, b, 64)

	_, err = l.Take(-1)
	require.ErrorIs(t, err, ErrExhausted)
}

func TestLeaseRelease(t *testing.T) {
	l := NewLease(0)
	_, err := l.Take(10)
	require.NoError(t, err)
	l.Release()
	assert.Equal(t, 0, l.Cap())
	l.Release() // double release is harmless

	_, err = l.Take(10)
	require.NoError(t, err)
	assert.Positive(t, l.Cap())
	l.Release()
}

func TestPutBufRejectsOversized(t *testing.T) {
	big := make([]byte, 0, poolMaxCap+1)
	putBuf(&big)
	putBuf(nil)
}
