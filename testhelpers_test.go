package tga

import "encoding/binary"

// tgaHeaderFields mirrors header for test fixture construction convenience.
type tgaHeaderFields struct {
	idLen     uint8
	cmapType  uint8
	imgType   uint8
	cmapStart uint16
	cmapLen   uint16
	cmapDepth uint8
	xOffset   uint16
	yOffset   uint16
	width     uint16
	height    uint16
	pixDepth  uint8
	imgDescr  uint8
}

// buildHeaderBytes packs f into the 18-byte on-disk TGA header layout.
func buildHeaderBytes(f tgaHeaderFields) []byte {
	buf := make([]byte, headerSize)
	buf[0] = f.idLen
	buf[1] = f.cmapType
	buf[2] = f.imgType
	binary.LittleEndian.PutUint16(buf[3:5], f.cmapStart)
	binary.LittleEndian.PutUint16(buf[5:7], f.cmapLen)
	buf[7] = f.cmapDepth
	binary.LittleEndian.PutUint16(buf[8:10], f.xOffset)
	binary.LittleEndian.PutUint16(buf[10:12], f.yOffset)
	binary.LittleEndian.PutUint16(buf[12:14], f.width)
	binary.LittleEndian.PutUint16(buf[14:16], f.height)
	buf[16] = f.pixDepth
	buf[17] = f.imgDescr
	return buf
}

// buildTGA concatenates a header, an id string, a color-map payload, and a
// pixel payload into one buffer ready to feed to Decoder.Init.
func buildTGA(f tgaHeaderFields, idStr string, cmap []byte, pix []byte) []byte {
	buf := buildHeaderBytes(f)
	buf = append(buf, []byte(idStr)...)
	buf = append(buf, cmap...)
	buf = append(buf, pix...)
	return buf
}
