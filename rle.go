package tga

// rlePackets reads RLE packets from buf starting at
// off and calls writeRun/writeLiteral for each one, until exactly
// totalPixels pixels have been produced or an abort condition is hit.
//
// stride is the raw pixel size in bytes (1, 2, 3, or 4). writeRun is called
// once per run packet with the stride raw bytes of the repeated pixel and
// the repeat count; writeLiteral is called once per literal packet with the
// stride*count raw bytes of the count distinct pixels. Both callbacks are
// responsible for writing their pixels into the destination raster at the
// correct offset — this function only tracks packet framing and the
// cumulative pixel count.
//
// It returns Success once totalPixels pixels have been decoded,
// TruncDataAbort if the input runs out before then, or TooMuchPixAbort if a
// packet's count would push the cumulative total past totalPixels.
func rlePackets(
	buf []byte,
	off int,
	stride int,
	totalPixels int,
	writeRun func(pixel []byte, count int, decoded int),
	writeLiteral func(pixels []byte, count int, decoded int),
) Status {
	decoded := 0

	for decoded < totalPixels {
		if off >= len(buf) {
			return TruncDataAbort
		}
		hdr := buf[off]
		off++

		isRun := hdr&0x80 != 0
		count := int(hdr&0x7F) + 1

		if decoded+count > totalPixels {
			return TooMuchPixAbort
		}

		if isRun {
			if off+stride > len(buf) {
				return TruncDataAbort
			}
			writeRun(buf[off:off+stride], count, decoded)
			off += stride
		} else {
			need := count * stride
			if off+need > len(buf) {
				return TruncDataAbort
			}
			writeLiteral(buf[off:off+need], count, decoded)
			off += need
		}

		decoded += count
	}

	return Success
}
