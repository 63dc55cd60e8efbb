// Package blob lays out a frame.Record as the versioned binary blob and
// parses it back.
//
// Serialize and Deserialize are the two halves of a deliberately two-phase
// design: Deserialize reads the trailing overall_crc first and refuses to
// parse a single further byte if it doesn't match, before the header,
// symbol dictionary, reference frame, or payload are ever touched. The
// payload's own inner checksums (ref_crc, data_crc) are carried through
// into the returned Record but are re-verified only at frame.Decompress
// time — this package's job ends at "the bytes are what they claim to be",
// not "the tick data they encode is correct".
package blob

import (
	"unicode/utf8"

	"github.com/tsdelta/tsdelta/crc32table"
	"github.com/tsdelta/tsdelta/endian"
	"github.com/tsdelta/tsdelta/errs"
	"github.com/tsdelta/tsdelta/frame"
	"github.com/tsdelta/tsdelta/internal/pool"
	"github.com/tsdelta/tsdelta/section"
)

// trailerSize is the byte length of the overall_crc trailer.
const trailerSize = 4

// Serialize lays out r in a fixed field order: header, symbol dictionary,
// reference frame, inner checksums and payload length, tick payload, and
// finally a 4-byte overall_crc trailer computed over every preceding byte.
func Serialize(r *frame.Record) ([]byte, error) {
	for _, sym := range r.Symbols {
		if len(sym) > 255 {
			return nil, errs.ErrMalformedSymbol
		}
		if !utf8.ValidString(sym) {
			return nil, errs.ErrMalformedSymbol
		}
	}

	engine := endian.GetLittleEndianEngine()

	buf := pool.Get()
	defer pool.Put(buf)

	header := section.Header{
		Version:       r.Version,
		NumSymbols:    uint16(len(r.Symbols)), //nolint:gosec // length bound checked at Compress time
		NumTicks:      r.NumTicks,
		BaseTimestamp: r.BaseTimestamp,
	}
	buf.B = append(buf.B, header.Bytes()...)

	for _, sym := range r.Symbols {
		buf.B = append(buf.B, byte(len(sym)))
		buf.B = append(buf.B, sym...)
	}

	buf.B = append(buf.B, frame.ReferenceBytes(r.Reference)...)

	var tmp4 [4]byte
	engine.PutUint32(tmp4[:], r.RefCRC)
	buf.B = append(buf.B, tmp4[:]...)
	engine.PutUint32(tmp4[:], r.DataCRC)
	buf.B = append(buf.B, tmp4[:]...)
	engine.PutUint32(tmp4[:], uint32(len(r.Payload))) //nolint:gosec // payload length fits uint32 by construction
	buf.B = append(buf.B, tmp4[:]...)

	buf.B = append(buf.B, r.Payload...)

	overallCRC := crc32table.Checksum(buf.B)
	engine.PutUint32(tmp4[:], overallCRC)
	buf.B = append(buf.B, tmp4[:]...)

	out := make([]byte, len(buf.B))
	copy(out, buf.B)

	return out, nil
}
