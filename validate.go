package tga

// Geometry holds the derived fields populated only after successful header
// validation.
type Geometry struct {
	CmapOffset     int
	PixDataOffset  int
	TotalPixels    int
	TotalBytes     int
	BytesPerLine   int
	Origin         Origin
	IDString       string

	// BytesPerPixel is exposed to callers but not consumed internally
	// anywhere in this package.
	BytesPerPixel int
}

var validCmapDepths = map[uint8]bool{15: true, 16: true, 24: true, 32: true}
var validPixDepths = map[uint8]bool{8: true, 15: true, 16: true, 24: true, 32: true}
var validImgTypes = map[ImgType]bool{
	ImgColorMapped: true, ImgTrueColor: true, ImgGrayscale: true,
	ImgColorMappedRLE: true, ImgTrueColorRLE: true, ImgGrayscaleRLE: true,
}

// validateHeader implements the header acceptance predicate. It does not
// touch decoder state (the caller, Decoder.ValidateHeader, sets it); it
// returns the outcome and, on success, the derived Geometry.
func validateHeader(buf []byte, h header, maxWidth, maxHeight int) (Geometry, bool) {
	var g Geometry

	// 1. buffer size >= 18 is guaranteed by the caller (parseHeader already failed otherwise).
	if len(buf) < headerSize {
		return g, false
	}

	// 2. cmap_type in {0,1}
	if h.cmapType != 0 && h.cmapType != 1 {
		return g, false
	}

	// 3. if cmap_type == 1, cmap_depth in {15,16,24,32}
	if h.cmapType == 1 && !validCmapDepths[h.cmapDepth] {
		return g, false
	}

	// 4. img_type in {1,2,3,9,10,11}
	if !validImgTypes[h.imgType] {
		return g, false
	}

	// 5. pix_depth in {8,15,16,24,32}
	if !validPixDepths[h.pixDepth] {
		return g, false
	}

	// 6. width > 0 and height > 0
	if h.width == 0 || h.height == 0 {
		return g, false
	}

	alphaBits := h.alphaBits()

	// 7. truecolor alpha-bit constraints
	if h.imgType == ImgTrueColor || h.imgType == ImgTrueColorRLE {
		switch h.pixDepth {
		case 15:
			if alphaBits > 0 {
				return g, false
			}
		case 16:
			if alphaBits > 1 {
				return g, false
			}
		case 24:
			if alphaBits > 0 {
				return g, false
			}
		// 32: no constraint stated.
		}
	}

	// 8. grayscale must be 8-bit
	if h.imgType == ImgGrayscale || h.imgType == ImgGrayscaleRLE {
		if h.pixDepth != 8 {
			return g, false
		}
	}

	// 9. color-mapped type 9 tight check. Type 1 is left to the general
	// rules above, so a 15/16-bit cmap_depth can pass for type 1.
	if h.imgType == ImgColorMappedRLE {
		if h.cmapType != 1 {
			return g, false
		}
		if h.pixDepth != 8 {
			return g, false
		}
		if h.cmapDepth != 24 && h.cmapDepth != 32 {
			return g, false
		}
		if h.cmapLen > 256 {
			return g, false
		}
	}

	cmapOffset := headerSize + int(h.idLen)
	pixDataOffset := cmapOffset + int(h.cmapType)*int(h.cmapLen)*(int(h.cmapDepth)/8)

	// 10. pix_data_offset <= buffer size
	if pixDataOffset > len(buf) {
		return g, false
	}

	// 11. width/height within caller-supplied bounds
	if maxWidth > 0 && int(h.width) > maxWidth {
		return g, false
	}
	if maxHeight > 0 && int(h.height) > maxHeight {
		return g, false
	}

	totalPixels := int(h.width) * int(h.height)

	g.CmapOffset = cmapOffset
	g.PixDataOffset = pixDataOffset
	g.TotalPixels = totalPixels
	g.TotalBytes = totalPixels * 4
	g.BytesPerLine = int(h.width) * 4
	g.Origin = h.origin()
	g.IDString = idString(buf, h.idLen)
	g.BytesPerPixel = int(h.pixDepth) / 8

	return g, true
}
