package tga

import "github.com/fluorohead/gia-tga/internal/bitpack"

// headerSize is the fixed, packed TGA header length.
const headerSize = 18

// ImgType enumerates the six TGA image types this decoder accepts.
type ImgType uint8

const (
	ImgNone        ImgType = 0
	ImgColorMapped ImgType = 1
	ImgTrueColor   ImgType = 2
	ImgGrayscale   ImgType = 3
	ImgColorMappedRLE ImgType = 9
	ImgTrueColorRLE   ImgType = 10
	ImgGrayscaleRLE   ImgType = 11
)

// Origin is which corner of the image the first pixel in the payload maps to.
type Origin int

const (
	OriginUnknown Origin = iota
	OriginTopLeft
	OriginTopRight
	OriginBottomLeft
	OriginBottomRight
)

// header is a typed view over the first 18 bytes of a TGA buffer. It is
// populated by parseHeader and carries no validation of its own — field
// values may be out of range; validate.go enforces the acceptance predicate.
type header struct {
	idLen      uint8
	cmapType   uint8
	imgType    ImgType
	cmapStart  uint16
	cmapLen    uint16
	cmapDepth  uint8
	xOffset    uint16
	yOffset    uint16
	width      uint16
	height     uint16
	pixDepth   uint8
	imgDescr   uint8
}

// origin returns the corner encoded in bits 5..4 of imgDescr.
func (h header) origin() Origin {
	switch (h.imgDescr >> 4) & 0x3 {
	case 0:
		return OriginBottomLeft
	case 1:
		return OriginBottomRight
	case 2:
		return OriginTopLeft
	case 3:
		return OriginTopRight
	default:
		return OriginUnknown
	}
}

// alphaBits returns the low 4 bits of imgDescr, the declared alpha channel depth.
func (h header) alphaBits() uint8 {
	return h.imgDescr & 0x0F
}

// parseHeader reads the fixed 18-byte header prefix. It fails only if buf is
// shorter than headerSize; no other validation happens here — that is the
// validator's job.
func parseHeader(buf []byte) (header, bool) {
	if len(buf) < headerSize {
		return header{}, false
	}

	var h header
	idLen, _ := bitpack.U8(buf, 0)
	cmapType, _ := bitpack.U8(buf, 1)
	imgType, _ := bitpack.U8(buf, 2)
	cmapStart, _ := bitpack.U16(buf, 3)
	cmapLen, _ := bitpack.U16(buf, 5)
	cmapDepth, _ := bitpack.U8(buf, 7)
	xOffset, _ := bitpack.U16(buf, 8)
	yOffset, _ := bitpack.U16(buf, 10)
	width, _ := bitpack.U16(buf, 12)
	height, _ := bitpack.U16(buf, 14)
	pixDepth, _ := bitpack.U8(buf, 16)
	imgDescr, _ := bitpack.U8(buf, 17)

	h.idLen = idLen
	h.cmapType = cmapType
	h.imgType = ImgType(imgType)
	h.cmapStart = cmapStart
	h.cmapLen = cmapLen
	h.cmapDepth = cmapDepth
	h.xOffset = xOffset
	h.yOffset = yOffset
	h.width = width
	h.height = height
	h.pixDepth = pixDepth
	h.imgDescr = imgDescr

	return h, true
}

// idString extracts the id_string field: bytes at offset headerSize, up to
// idLen or the first NUL, whichever comes first.
func idString(buf []byte, idLen uint8) string {
	start := headerSize
	end := start + int(idLen)
	if end > len(buf) {
		end = len(buf)
	}
	if start > end {
		return ""
	}
	raw := buf[start:end]
	for i, b := range raw {
		if b == 0 {
			return string(raw[:i])
		}
	}
	return string(raw)
}
