package tga

import (
	"image"

	"github.com/prl900/scimage"
	"github.com/prl900/scimage/scicolor"
)

// AsSciGray converts the decoded canonical raster into a *scimage.GrayU8
// flat-plane grayscale image, so a TGA decoded here can feed directly into
// any github.com/prl900/scimage-based pipeline instead of requiring a
// caller to round-trip through image/draw first.
//
// Luminance is computed from the canonical BGRA raster with the standard
// Rec. 601 weights; AsSciGray works for any decoded image, not only ones
// whose source img_type was grayscale.
func (d *Decoder) AsSciGray() *scimage.GrayU8 {
	data := d.Data()
	if data == nil {
		return nil
	}

	width := int(d.hdr.width)
	height := int(d.hdr.height)
	rect := image.Rect(0, 0, width, height)
	img := scimage.NewGrayU8(rect, 0, 255)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			o := (y*width + x) * 4
			b, g, r := data[o+0], data[o+1], data[o+2]
			lum := (299*int(r) + 587*int(g) + 114*int(b)) / 1000
			img.SetGrayU8(x, y, scicolor.GrayU8{uint8(lum), img.Min, img.Max})
		}
	}

	return img
}
