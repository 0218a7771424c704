package tga

import "github.com/fluorohead/gia-tga/internal/bitpack"

// palette256 is a 256-entry BGRA color map, materialized fresh for every
// color-map decode and released (by simply going out of scope — Go has no
// manual free) before the decode call returns: every exit path, including
// truncation and overflow aborts, leaves no dangling reference to it.
type palette256 [256]bgra

// buildPalette256 reads up to cmapLen entries from buf at cmapOffset and
// zero-extends (opaque black, alpha 0xFF) the rest. 15/16-bit color-map
// depths (which the header validator accepts for type 1 only) have no case
// here: such entries stay at the zero-initialized opaque-black default.
func buildPalette256(buf []byte, cmapOffset int, cmapLen int, cmapDepth uint8) palette256 {
	var p palette256
	for i := range p {
		p[i] = bgra{A: 0xFF}
	}

	if cmapLen > 256 {
		cmapLen = 256
	}

	switch cmapDepth {
	case 24:
		for i := 0; i < cmapLen; i++ {
			off := cmapOffset + i*3
			entry, ok := bitpack.Slice(buf, off, 3)
			if !ok {
				break
			}
			p[i] = bgra{B: entry[0], G: entry[1], R: entry[2], A: 0xFF}
		}
	case 32:
		for i := 0; i < cmapLen; i++ {
			off := cmapOffset + i*4
			entry, ok := bitpack.Slice(buf, off, 4)
			if !ok {
				break
			}
			p[i] = bgra{B: entry[0], G: entry[1], R: entry[2], A: entry[3]}
		}
	default:
		// cmapDepth of 15/16 (reachable for type 1 only): entries stay at
		// their zero-initialized opaque-black default.
	}

	return p
}
