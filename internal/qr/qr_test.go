package qr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G'}

func TestPNG(t *testing.T) {
	png, err := PNG("0b1f8f3e-8f4e-4f6e-9c2b-1a2b3c4d5e6f", DefaultSize)
	require.NoError(t, err)
	assert.Equal(t, pngMagic, png[:4])
}

func TestPNGClampsSize(t *testing.T) {
	for _, size := range []int{-1, 0, 10, MaxSize + 1} {
		png, err := PNG("content", size)
		require.NoError(t, err)
		assert.Equal(t, pngMagic, png[:4])
	}
}
