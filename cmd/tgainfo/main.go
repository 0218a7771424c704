// Command tgainfo decodes a TGA file and prints its header, status, and
// (if present) extension-area fields. It optionally applies orientation
// normalization, converts the result to BMP/PNG, or writes a
// nearest-neighbor thumbnail — all file-I/O-bearing operations the
// gia-tga decoder package itself is deliberately forbidden from doing.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/fluorohead/gia-tga"
	"github.com/pkg/errors"
	"golang.org/x/image/bmp"
	xdraw "golang.org/x/image/draw"
)

func main() {
	log.SetFlags(0)

	var (
		in        = flag.String("in", "", "path to a TGA file (required)")
		maxWidth  = flag.Int("max-width", 65535, "reject images wider than this")
		maxHeight = flag.Int("max-height", 65535, "reject images taller than this")
		flip      = flag.Bool("flip", true, "normalize orientation to top-left")
		convert   = flag.String("convert", "", "optional output path (.bmp or .png) for the decoded raster")
		thumbnail = flag.Int("thumbnail", 0, "optional thumbnail width in pixels (nearest-neighbor)")
	)
	flag.Parse()

	if *in == "" {
		log.Fatal("tgainfo: -in is required")
	}

	buf, err := os.ReadFile(*in)
	if err != nil {
		log.Fatalf("tgainfo: reading %s: %v", *in, err)
	}

	d := tga.NewDecoder()
	d.Init(buf)

	st := d.ValidateHeader(*maxWidth, *maxHeight)
	fmt.Printf("validate: %s\n", d.ErrStr(st))
	if st != tga.ValidHeader {
		os.Exit(1)
	}

	st = d.Decode()
	fmt.Printf("decode:   %s\n", d.ErrStr(st))

	if *flip {
		d.Flip()
	}

	info := d.Info()
	fmt.Printf("width=%d height=%d type=%d pix_depth=%d origin=%d bytes_per_line=%d total_size=%d id=%q\n",
		info.Width, info.Height, info.Type, info.PixelDepth, info.Origin, info.BytesPerLine, info.TotalSize, info.IDString)

	if info.Extension.Present {
		e := info.Extension
		fmt.Printf("extension: author=%q software=%q job=%q attr_type=%d\n", e.Author, e.Software, e.JobName, e.AttrType)
	} else {
		fmt.Println("extension: not present")
	}

	if *convert != "" {
		if err := convertTo(d, *convert); err != nil {
			log.Fatalf("tgainfo: converting output: %v", err)
		}
	}

	if *thumbnail > 0 {
		if err := writeThumbnail(d, *thumbnail, strings.TrimSuffix(*in, filepath.Ext(*in))+"_thumb.png"); err != nil {
			log.Fatalf("tgainfo: writing thumbnail: %v", err)
		}
	}
}

func convertTo(d *tga.Decoder, path string) error {
	img := d.Image()
	if img == nil {
		return errors.New("no raster to convert (decode did not succeed)")
	}

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "creating output file")
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".bmp":
		return errors.Wrap(bmp.Encode(f, img), "encoding bmp")
	case ".png":
		return errors.Wrap(png.Encode(f, img), "encoding png")
	default:
		return errors.Errorf("unsupported output extension %q (use .bmp or .png)", filepath.Ext(path))
	}
}

func writeThumbnail(d *tga.Decoder, width int, path string) error {
	img := d.Image()
	if img == nil {
		return errors.New("no raster to resize (decode did not succeed)")
	}

	b := img.Bounds()
	height := width * b.Dy() / b.Dx()
	if height < 1 {
		height = 1
	}

	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, draw.Over, nil)

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "creating thumbnail file")
	}
	defer f.Close()

	return errors.Wrap(png.Encode(f, dst), "encoding thumbnail png")
}
