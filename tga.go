package tga

// Decode is a convenience wrapper around the Init/ValidateHeader/Decode/Flip
// sequence: most callers don't need the stepwise FSM and just
// want "give me the raster for this buffer". maxWidth/maxHeight of 0 means
// unbounded. The orientation is always normalized to top-left before return.
//
// The returned Status is whatever ValidateHeader or Decode last reported;
// on TruncDataAbort/TooMuchPixAbort the Decoder still holds a partial
// raster, reachable via the returned *Decoder's Data method.
func Decode(buf []byte, maxWidth, maxHeight int) (*Decoder, Status) {
	d := NewDecoder()
	d.Init(buf)

	if st := d.ValidateHeader(maxWidth, maxHeight); st != ValidHeader {
		return d, st
	}

	st := d.Decode()
	d.Flip()
	return d, st
}
