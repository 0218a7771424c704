package tga

import (
	"github.com/fluorohead/gia-tga/internal/bitpack"
	"github.com/pkg/errors"
)

const (
	footerSize     = 26
	extensionSize  = 495
	tgaSignature   = "TRUEVISION-XFILE.\x00"
	extAuthorLen   = 41
	extCommentLen  = 324
	extJobNameLen  = 41
	extSoftwareLen = 41
)

// Extension-area field offsets, relative to the start of the 495-byte area.
const (
	extOffSize            = 0
	extOffAuthor          = 2
	extOffComment         = 43
	extOffJobName         = 367 + 12
	extOffSoftware        = extOffJobName + extJobNameLen + 6
	extOffSoftwareVersion = extOffSoftware + extSoftwareLen
	extOffKeyColor        = extOffSoftwareVersion + 3
	extOffAspectRatio     = extOffKeyColor + 4
	extOffGamma           = extOffAspectRatio + 4
	extOffAttrType        = 494
)

// Extension carries the optional TGA v2 extension-area fields. It is the
// zero value when the footer/extension probe fails at any step.
type Extension struct {
	Present  bool
	Author   string
	Comment  string
	JobName  string
	Software string

	// Passed through verbatim; unconsumed internally by this package.
	AttrType uint8

	SoftwareVersion uint16
	KeyColor        uint32
	AspectRatioNum  uint16
	AspectRatioDen  uint16
	GammaNum        uint16
	GammaDen        uint16
}

// probeFooterAndExtension requires strict inequality between the footer
// offset and pix_data_offset; equality is rejected rather than silently
// accepted.
func probeFooterAndExtension(buf []byte, pixDataOffset int) (Extension, error) {
	var ext Extension

	if len(buf) < footerSize {
		return ext, nil
	}

	footerOffset := len(buf) - footerSize
	if !(footerOffset > pixDataOffset) {
		return ext, nil
	}

	sig, ok := bitpack.Slice(buf, footerOffset+8, 18)
	if !ok || string(sig) != tgaSignature {
		return ext, nil
	}

	extOffset32, ok := bitpack.U32(buf, footerOffset)
	if !ok {
		return ext, nil
	}
	extOffset := int(extOffset32)

	if extOffset < pixDataOffset || extOffset > len(buf) {
		return ext, nil
	}
	if len(buf)-extOffset < extensionSize {
		return ext, nil
	}

	size, ok := bitpack.U16(buf, extOffset+extOffSize)
	if !ok || size < extensionSize {
		return ext, nil
	}

	author, err := readFixedString(buf, extOffset+extOffAuthor, extAuthorLen)
	if err != nil {
		return ext, errors.Wrap(err, "tga: decoding extension author field")
	}
	comment, err := readFixedString(buf, extOffset+extOffComment, extCommentLen)
	if err != nil {
		return ext, errors.Wrap(err, "tga: decoding extension comment field")
	}
	jobName, err := readFixedString(buf, extOffset+extOffJobName, extJobNameLen)
	if err != nil {
		return ext, errors.Wrap(err, "tga: decoding extension job-name field")
	}
	software, err := readFixedString(buf, extOffset+extOffSoftware, extSoftwareLen)
	if err != nil {
		return ext, errors.Wrap(err, "tga: decoding extension software field")
	}

	ext.Present = true
	ext.Author = author
	ext.Comment = comment
	ext.JobName = jobName
	ext.Software = software

	if v, ok := bitpack.U16(buf, extOffset+extOffSoftwareVersion); ok {
		ext.SoftwareVersion = v
	}
	if v, ok := bitpack.U32(buf, extOffset+extOffKeyColor); ok {
		ext.KeyColor = v
	}
	if v, ok := bitpack.U16(buf, extOffset+extOffAspectRatio); ok {
		ext.AspectRatioNum = v
	}
	if v, ok := bitpack.U16(buf, extOffset+extOffAspectRatio+2); ok {
		ext.AspectRatioDen = v
	}
	if v, ok := bitpack.U16(buf, extOffset+extOffGamma); ok {
		ext.GammaNum = v
	}
	if v, ok := bitpack.U16(buf, extOffset+extOffGamma+2); ok {
		ext.GammaDen = v
	}
	if v, ok := bitpack.U8(buf, extOffset+extOffAttrType); ok {
		ext.AttrType = v
	}

	return ext, nil
}

// readFixedString decodes a NUL-terminated field of fixed on-disk length,
// pinned to Latin-1: bytes map one-to-one to runes (Latin-1 is a superset
// of ASCII in the 0-255 range), avoiding a process-locale dependency.
func readFixedString(buf []byte, off, n int) (string, error) {
	raw, ok := bitpack.Slice(buf, off, n)
	if !ok {
		return "", errors.Errorf("tga: extension field at offset %d/%d out of range", off, n)
	}
	end := len(raw)
	for i, b := range raw {
		if b == 0 {
			end = i
			break
		}
	}
	runes := make([]rune, end)
	for i, b := range raw[:end] {
		runes[i] = rune(b)
	}
	return string(runes), nil
}
