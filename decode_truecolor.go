package tga

import "github.com/fluorohead/gia-tga/internal/bitpack"

// bgra is one canonical output pixel, stored B,G,R,A to match the canonical
// raster's fixed byte order.
type bgra struct {
	B, G, R, A uint8
}

func putBGRA(dst []byte, i int, p bgra) {
	o := i * 4
	dst[o+0] = p.B
	dst[o+1] = p.G
	dst[o+2] = p.R
	dst[o+3] = p.A
}

// rgb15 expands a TGA 15-bit truecolor pixel (type 2/10 at pix_depth 15). Each source uint16 packs B5,G5,R5 with no alpha bit; output
// alpha is always 0xFF.
func rgb15(w uint16) bgra {
	b5 := uint8(w & 0x1F)
	g5 := uint8((w >> 5) & 0x1F)
	r5 := uint8((w >> 10) & 0x1F)
	return bgra{B: bitpack.Expand5(b5), G: bitpack.Expand5(g5), R: bitpack.Expand5(r5), A: 0xFF}
}

// rgb16 expands a TGA 16-bit truecolor pixel (type 2/10 at pix_depth 16).
// Same RGB expansion as 15-bit; the top bit of w selects transparent (alpha
// 0x00) vs opaque (alpha 0xFF).
func rgb16(w uint16) bgra {
	p := rgb15(w)
	if w&0x8000 != 0 {
		p.A = 0x00
	} else {
		p.A = 0xFF
	}
	return p
}

// rgb16FromBytes performs the same 16-bit expansion but computes the 5-bit
// channels directly from the two raw bytes b0 (low byte) and b1 (high byte)
// rather than from an assembled uint16. It agrees with rgb16 for
// w = uint16(b0)|uint16(b1)<<8; the RLE path uses this helper, while the
// non-RLE path assembles w and calls rgb15/rgb16.
func rgb16FromBytes(b0, b1 byte) bgra {
	b5 := b0 & 0x1F
	g5 := ((b0 >> 5) | (b1 << 3)) & 0x1F
	r5 := (b1 >> 2) & 0x1F
	a := uint8(0xFF)
	if b1&0x80 != 0 {
		a = 0x00
	}
	return bgra{B: bitpack.Expand5(b5), G: bitpack.Expand5(g5), R: bitpack.Expand5(r5), A: a}
}

func rgb15FromBytes(b0, b1 byte) bgra {
	p := rgb16FromBytes(b0, b1)
	p.A = 0xFF
	return p
}

// decodeTrueColorNonRLE handles type 2 at every accepted pix_depth. It reads
// as many whole pixels as the input permits (stride-rounded), leaves the
// remainder at the pre-filled opaque black, and reports TruncDataAbort if
// the payload was short.
func decodeTrueColorNonRLE(dst []byte, buf []byte, off int, width, height, pixDepth int) Status {
	total := width * height
	stride := pixDepth / 8

	avail := len(buf) - off
	if avail < 0 {
		avail = 0
	}
	wholePixels := avail / stride
	if wholePixels > total {
		wholePixels = total
	}

	for i := 0; i < wholePixels; i++ {
		o := off + i*stride
		var p bgra
		switch pixDepth {
		case 15:
			w := uint16(buf[o]) | uint16(buf[o+1])<<8
			p = rgb15(w)
		case 16:
			w := uint16(buf[o]) | uint16(buf[o+1])<<8
			p = rgb16(w)
		case 24:
			p = bgra{B: buf[o], G: buf[o+1], R: buf[o+2], A: 0xFF}
		case 32:
			p = bgra{B: buf[o], G: buf[o+1], R: buf[o+2], A: buf[o+3]}
		}
		putBGRA(dst, i, p)
	}

	if wholePixels < total {
		return TruncDataAbort
	}
	return Success
}

// decodeTrueColorRLE handles type 10 at every accepted pix_depth, sharing
// the packet-framing loop in rle.go.
func decodeTrueColorRLE(dst []byte, buf []byte, off int, width, height, pixDepth int) Status {
	total := width * height
	stride := pixDepth / 8

	expand := func(raw []byte) bgra {
		switch pixDepth {
		case 15:
			return rgb15FromBytes(raw[0], raw[1])
		case 16:
			return rgb16FromBytes(raw[0], raw[1])
		case 24:
			return bgra{B: raw[0], G: raw[1], R: raw[2], A: 0xFF}
		default: // 32
			return bgra{B: raw[0], G: raw[1], R: raw[2], A: raw[3]}
		}
	}

	writeRun := func(pixel []byte, count int, decoded int) {
		p := expand(pixel)
		for i := 0; i < count; i++ {
			putBGRA(dst, decoded+i, p)
		}
	}
	writeLiteral := func(pixels []byte, count int, decoded int) {
		for i := 0; i < count; i++ {
			putBGRA(dst, decoded+i, expand(pixels[i*stride:(i+1)*stride]))
		}
	}

	return rlePackets(buf, off, stride, total, writeRun, writeLiteral)
}
