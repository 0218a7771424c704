package tga

// flipRaster normalizes pixel orientation to top-left in place, dispatching
// on origin. It is null-safe: callers pass a nil/empty dst for an
// absent or detached raster and this function simply no-ops.
func flipRaster(dst []byte, width, height int, origin Origin) {
	if len(dst) == 0 {
		return
	}

	switch origin {
	case OriginTopLeft, OriginUnknown:
		// no-op
	case OriginTopRight:
		flipHorizontal(dst, width, height)
	case OriginBottomLeft:
		flipVertical(dst, width, height)
	case OriginBottomRight:
		flipDiagonal(dst, width*height)
	}
}

func swapPixel(dst []byte, i, j int) {
	a := i * 4
	b := j * 4
	dst[a], dst[b] = dst[b], dst[a]
	dst[a+1], dst[b+1] = dst[b+1], dst[a+1]
	dst[a+2], dst[b+2] = dst[b+2], dst[a+2]
	dst[a+3], dst[b+3] = dst[b+3], dst[a+3]
}

// flipHorizontal swaps pixels [i] and [width-1-i] within every scanline.
func flipHorizontal(dst []byte, width, height int) {
	for y := 0; y < height; y++ {
		row := y * width
		for i := 0; i < width/2; i++ {
			swapPixel(dst, row+i, row+width-1-i)
		}
	}
}

// flipVertical swaps scanline s with height-1-s.
func flipVertical(dst []byte, width, height int) {
	for s := 0; s < height/2; s++ {
		a := s * width
		b := (height - 1 - s) * width
		for x := 0; x < width; x++ {
			swapPixel(dst, a+x, b+x)
		}
	}
}

// flipDiagonal reverses the entire pixel sequence, equivalent to
// horizontal + vertical combined.
func flipDiagonal(dst []byte, totalPixels int) {
	for i := 0; i < totalPixels/2; i++ {
		swapPixel(dst, i, totalPixels-1-i)
	}
}
