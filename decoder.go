// Package tga decodes Truevision TGA raster images into a canonical
// 32-bit-per-pixel, top-left-origin BGRA raster. It validates the header,
// decodes the pixel payload for the six accepted image types across their
// accepted depths, normalizes orientation in place, and optionally surfaces
// extended metadata from the footer/extension area.
//
// There is no encoding path, no file I/O, and no concurrency: a Decoder is a
// single-threaded finite-state object driven by Init, ValidateHeader,
// Decode, Flip, and Info, in that order. Every operation returns a Status
// instead of using exception-style error propagation.
package tga

import (
	"image"
	"image/color"
)

// maxRasterBytes bounds the canonical raster allocation Decode is willing to
// attempt. width/height are each 16-bit fields, so a maliciously or
// carelessly crafted header (e.g. 65535x65535) can demand an allocation far
// beyond what any real caller needs; rather than hand that size to make and
// let the runtime crash the process, Decode checks against this bound first
// and reports MemAllocErr.
const maxRasterBytes = 256 << 20 // 256 MiB

// Decoder is the FSM-driven TGA decoder. The zero value is a valid,
// NotInitialized decoder; call Init before anything else.
type Decoder struct {
	buf   []byte
	st    state
	hdr   header
	geom  Geometry
	ext   Extension
	extOK bool

	raster   []byte
	detached bool
}

// NewDecoder returns a Decoder in the NotInitialized state.
func NewDecoder() *Decoder {
	return &Decoder{}
}

// Init binds buf as the decoder's borrowed input buffer and resets all
// derived state, transitioning to Initialized from any prior state. The
// caller must keep buf alive for as long as the Decoder is used against it.
// If a prior Decode call produced a raster that was never detached, that
// raster is dropped here (Go's garbage collector reclaims it; there is no
// manual free). A detached raster is never touched by Init, regardless of
// which decoder call produced it.
func (d *Decoder) Init(buf []byte) {
	d.buf = buf
	d.hdr = header{}
	d.geom = Geometry{}
	d.ext = Extension{}
	d.extOK = false
	d.raster = nil
	d.detached = false
	d.st = stateInitialized
}

// ValidateHeader enforces the header acceptance predicate against maxWidth and
// maxHeight (0 means "no limit" for either bound) and, on success, populates
// derived geometry. It is idempotent on repeat calls once a terminal header
// state (InvalidHeader) has been reached.
func (d *Decoder) ValidateHeader(maxWidth, maxHeight int) Status {
	switch d.st {
	case stateNotInitialized:
		return NotInitialized
	case stateInvalidHeader:
		return InvalidHeader
	}

	h, ok := parseHeader(d.buf)
	if !ok {
		d.st = stateInvalidHeader
		return InvalidHeader
	}

	geom, ok := validateHeader(d.buf, h, maxWidth, maxHeight)
	if !ok {
		d.st = stateInvalidHeader
		return InvalidHeader
	}

	d.hdr = h
	d.geom = geom
	d.st = stateHeaderValidated
	return ValidHeader
}

// Decode dispatches on (img_type, pix_depth) to the specialized pixel
// decoder. On entry it drops any prior non-detached raster, allocates
// a fresh total_bytes buffer pre-filled with opaque black (0xFF000000), and
// writes into it. The resulting state/Status pair reflects how far decoding
// got: Success/DecodedOK for a full decode, TruncDataAbort/DecodingAbort or
// TooMuchPixAbort/DecodingAbort for a partial one (with data() still usable),
// NotEnoughMem/MemAllocErr if the raster would exceed maxRasterBytes, or
// NeedHeaderValidation if called out of order.
func (d *Decoder) Decode() Status {
	if d.st != stateHeaderValidated {
		return NeedHeaderValidation
	}

	if d.geom.TotalBytes > maxRasterBytes {
		d.st = stateNotEnoughMem
		return MemAllocErr
	}

	d.raster = nil
	d.detached = false

	dst := make([]byte, d.geom.TotalBytes)
	prefillOpaqueBlack(dst)

	width := int(d.hdr.width)
	height := int(d.hdr.height)
	off := d.geom.PixDataOffset

	var status Status
	switch d.hdr.imgType {
	case ImgColorMapped:
		pal := buildPalette256(d.buf, d.geom.CmapOffset, int(d.hdr.cmapLen), d.hdr.cmapDepth)
		status = decodeColorMapNonRLE(dst, d.buf, off, width, height, pal)
	case ImgColorMappedRLE:
		pal := buildPalette256(d.buf, d.geom.CmapOffset, int(d.hdr.cmapLen), d.hdr.cmapDepth)
		status = decodeColorMapRLE(dst, d.buf, off, width, height, pal)
	case ImgTrueColor:
		status = decodeTrueColorNonRLE(dst, d.buf, off, width, height, int(d.hdr.pixDepth))
	case ImgTrueColorRLE:
		status = decodeTrueColorRLE(dst, d.buf, off, width, height, int(d.hdr.pixDepth))
	case ImgGrayscale:
		status = decodeGrayscaleNonRLE(dst, d.buf, off, width, height)
	case ImgGrayscaleRLE:
		status = decodeGrayscaleRLE(dst, d.buf, off, width, height)
	default:
		// Unreachable: ValidateHeader only accepts the six types above.
		status = InvalidHeader
	}

	d.raster = dst

	switch status {
	case Success:
		d.st = stateDecodedOK
	case TruncDataAbort, TooMuchPixAbort:
		d.st = stateDecodingAbort
	}

	return status
}

func prefillOpaqueBlack(dst []byte) {
	for i := 0; i+4 <= len(dst); i += 4 {
		dst[i+0] = 0x00
		dst[i+1] = 0x00
		dst[i+2] = 0x00
		dst[i+3] = 0xFF
	}
}

// Flip normalizes orientation to top-left in place. It is a no-op if
// there is no raster (not yet decoded, or already detached).
func (d *Decoder) Flip() {
	if d.detached {
		return
	}
	flipRaster(d.raster, int(d.hdr.width), int(d.hdr.height), d.geom.Origin)
}

// Info describes the decoder's info record: geometry fields are always
// populated once a header has been validated; the Extension sub-record is
// populated only if the footer/extension probe succeeds.
type Info struct {
	Width        int
	Height       int
	Origin       Origin
	PixelDepth   int
	BytesPerLine int
	TotalSize    int
	Type         ImgType
	IDString     string
	Extension    Extension
}

// Info always returns the basic geometry fields (valid once ValidateHeader
// has succeeded) and attempts the footer/extension probe.
func (d *Decoder) Info() Info {
	if !d.extOK {
		ext, err := probeFooterAndExtension(d.buf, d.geom.PixDataOffset)
		if err == nil {
			d.ext = ext
		}
		d.extOK = true
	}

	return Info{
		Width:        int(d.hdr.width),
		Height:       int(d.hdr.height),
		Origin:       d.geom.Origin,
		PixelDepth:   int(d.hdr.pixDepth),
		BytesPerLine: d.geom.BytesPerLine,
		TotalSize:    d.geom.TotalBytes,
		Type:         d.hdr.imgType,
		IDString:     d.geom.IDString,
		Extension:    d.ext,
	}
}

// Data returns the current raster, or nil if none has been decoded yet (or
// it has already been detached).
func (d *Decoder) Data() []byte {
	if d.detached {
		return nil
	}
	return d.raster
}

// DetachData transfers ownership of the raster to the caller: subsequent
// Init calls on this Decoder will not touch it, and Data/Flip treat the
// Decoder as if it held no raster at all. It requires a decode to have run
// (successfully or as a partial abort); otherwise it returns NeedDecoding.
func (d *Decoder) DetachData() Status {
	if d.st != stateDecodedOK && d.st != stateDecodingAbort {
		return NeedDecoding
	}
	d.detached = true
	return Success
}

// ErrStr returns the fixed English message for a status code.
func (d *Decoder) ErrStr(s Status) string {
	return ErrStr(s)
}

// Width returns the validated image width, or 0 before ValidateHeader succeeds.
func (d *Decoder) Width() int { return int(d.hdr.width) }

// Height returns the validated image height, or 0 before ValidateHeader succeeds.
func (d *Decoder) Height() int { return int(d.hdr.height) }

// PixDepth returns the original on-disk pixel depth (8/15/16/24/32).
func (d *Decoder) PixDepth() int { return int(d.hdr.pixDepth) }

// BytesPerLine returns width*4, the canonical raster's stride.
func (d *Decoder) BytesPerLine() int { return d.geom.BytesPerLine }

// Origin returns the source orientation decoded from img_descr.
func (d *Decoder) Origin() Origin { return d.geom.Origin }

// IDString returns the header's id_string field.
func (d *Decoder) IDString() string { return d.geom.IDString }

// Image wraps the current raster as an image.Image, so a decoded Decoder
// can be handed directly to image/png, image/draw, or golang.org/x/image/bmp
// without an intermediate copy. It returns nil if there is no raster.
func (d *Decoder) Image() image.Image {
	data := d.Data()
	if data == nil {
		return nil
	}
	return &Raster{pix: data, width: int(d.hdr.width), height: int(d.hdr.height)}
}

// Raster is a minimal image.Image adapter over a canonical BGRA byte slice,
// grounded on the flat-plane-wrapping pattern of github.com/prl900/scimage's
// image types (e.g. GrayU16, which also wraps a []byte plane directly rather
// than copying into image.Gray16).
type Raster struct {
	pix    []byte
	width  int
	height int
}

func (r *Raster) ColorModel() color.Model { return color.NRGBAModel }

func (r *Raster) Bounds() image.Rectangle { return image.Rect(0, 0, r.width, r.height) }

func (r *Raster) At(x, y int) color.Color {
	if x < 0 || y < 0 || x >= r.width || y >= r.height {
		return color.NRGBA{}
	}
	o := (y*r.width + x) * 4
	return color.NRGBA{R: r.pix[o+2], G: r.pix[o+1], B: r.pix[o+0], A: r.pix[o+3]}
}

// Pix returns the raw BGRA backing slice.
func (r *Raster) Pix() []byte { return r.pix }
