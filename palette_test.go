package tga

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildPalette256_24Bit(t *testing.T) {
	cmap := []byte{0x00, 0x00, 0xFF, 0x00, 0xFF, 0x00} // red, green
	p := buildPalette256(cmap, 0, 2, 24)

	assert.Equal(t, bgra{B: 0x00, G: 0x00, R: 0xFF, A: 0xFF}, p[0])
	assert.Equal(t, bgra{B: 0x00, G: 0xFF, R: 0x00, A: 0xFF}, p[1])
	// Entries beyond cmap_len are zero-extended with alpha 0xFF.
	assert.Equal(t, bgra{A: 0xFF}, p[2])
	assert.Equal(t, bgra{A: 0xFF}, p[255])
}

func TestBuildPalette256_32Bit(t *testing.T) {
	cmap := []byte{0x10, 0x20, 0x30, 0x40}
	p := buildPalette256(cmap, 0, 1, 32)
	assert.Equal(t, bgra{B: 0x10, G: 0x20, R: 0x30, A: 0x40}, p[0])
}

func TestBuildPalette256_15BitDepthStaysOpaqueBlack(t *testing.T) {
	cmap := []byte{0xFF, 0xFF}
	p := buildPalette256(cmap, 0, 1, 15)
	assert.Equal(t, bgra{A: 0xFF}, p[0])
}

func TestBuildPalette256_TruncatedColorMapStopsEarly(t *testing.T) {
	cmap := []byte{0x00, 0x00, 0xFF} // only one full 24-bit entry
	p := buildPalette256(cmap, 0, 3, 24)
	assert.Equal(t, bgra{B: 0x00, G: 0x00, R: 0xFF, A: 0xFF}, p[0])
	assert.Equal(t, bgra{A: 0xFF}, p[1])
	assert.Equal(t, bgra{A: 0xFF}, p[2])
}
