// Package delta implements the variable-width, prefix-tagged signed integer
// codec used to encode per-symbol basis-point price deltas.
//
// Three variants share a 2-bit tag in the top bits of the first byte:
//
//	Tiny  (tag 00): -8..+7,        1 byte
//	Small (tag 01): -8192..+8191,  2 bytes
//	Large (tag 1x): full int32,    5 bytes
//
// Encoding always picks the narrowest variant that fits; decoding dispatches
// purely on the tag bits, so an encoder that picked a wider variant than
// necessary would still decode correctly, but would waste the space the
// narrowest-fit rule is meant to save.
package delta

import "github.com/tsdelta/tsdelta/errs"

const (
	tagTiny  = 0x00
	tagSmall = 0x40
	tagLarge = 0xC0
	tagMask  = 0xC0
)

// Cursor is a shared, pass-by-reference read position into a delta-encoded
// byte stream. Decode advances *cur by the number of bytes the frame it read
// consumed.
type Cursor struct {
	Pos int
}

// Encode appends the prefix-tagged encoding of v to buf and returns the
// extended slice.
func Encode(buf []byte, v int32) []byte {
	switch {
	case v >= -8 && v <= 7:
		return append(buf, tagTiny|(byte(v)&0x0F))
	case v >= -8192 && v <= 8191:
		uv := uint32(v) & 0x3FFF
		b0 := tagSmall | byte(uv&0x3F)
		b1 := byte((uv >> 6) & 0xFF)
		return append(buf, b0, b1)
	default:
		uv := uint32(v)
		return append(buf, tagLarge,
			byte(uv),
			byte(uv>>8),
			byte(uv>>16),
			byte(uv>>24),
		)
	}
}

// Decode reads one delta frame from buf starting at cur.Pos, advancing
// cur.Pos past the frame it consumed.
//
// Returns errs.ErrDeltaUnderrun if the remaining buffer is shorter than the
// selected variant's frame size.
func Decode(buf []byte, cur *Cursor) (int32, error) {
	if cur.Pos+1 > len(buf) {
		return 0, errs.ErrDeltaUnderrun
	}

	b0 := buf[cur.Pos]
	switch b0 & tagMask {
	case tagTiny:
		v := int32(b0 & 0x0F)
		if v >= 8 {
			v -= 16
		}
		cur.Pos++

		return v, nil

	case tagSmall:
		if cur.Pos+2 > len(buf) {
			return 0, errs.ErrDeltaUnderrun
		}
		low := uint32(b0 & 0x3F)
		high := uint32(buf[cur.Pos+1])
		v := int32((high << 6) | low)
		if v >= 8192 {
			v -= 16384
		}
		cur.Pos += 2

		return v, nil

	default: // tag bits 10 or 11: Large variant
		if cur.Pos+5 > len(buf) {
			return 0, errs.ErrDeltaUnderrun
		}
		uv := uint32(buf[cur.Pos+1]) |
			uint32(buf[cur.Pos+2])<<8 |
			uint32(buf[cur.Pos+3])<<16 |
			uint32(buf[cur.Pos+4])<<24
		cur.Pos += 5

		return int32(uv), nil
	}
}
