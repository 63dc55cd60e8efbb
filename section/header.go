// Package section defines the fixed leading portion of the blob wire format
// and the cumulative byte offsets of its variable-length sections.
//
// Header is deliberately narrow: it covers only the fixed-size prefix a
// reader can validate before touching the variable-length symbol
// dictionary, mirroring the two-phase validation the blob serializer
// performs (overall CRC first, then structural parse).
package section

import (
	"github.com/tsdelta/tsdelta/endian"
	"github.com/tsdelta/tsdelta/errs"
	"github.com/tsdelta/tsdelta/format"
)

// HeaderSize is the byte size of the fixed header prefix: version (1) +
// symbol count N (2) + tick count T (4) + base_timestamp (8).
const HeaderSize = 1 + 2 + 4 + 8

// Header is the fixed leading section of a serialized blob.
type Header struct {
	Version       uint8
	NumSymbols    uint16
	NumTicks      uint32
	BaseTimestamp uint64
}

// Bytes serializes the header into a HeaderSize-byte little-endian slice.
func (h Header) Bytes() []byte {
	engine := endian.GetLittleEndianEngine()
	b := make([]byte, HeaderSize)
	b[0] = h.Version
	engine.PutUint16(b[1:3], h.NumSymbols)
	engine.PutUint32(b[3:7], h.NumTicks)
	engine.PutUint64(b[7:15], h.BaseTimestamp)

	return b
}

// ParseHeader parses a Header from the first HeaderSize bytes of data.
func ParseHeader(data []byte) (Header, error) {
	if len(data) < HeaderSize {
		return Header{}, errs.ErrTruncated
	}

	engine := endian.GetLittleEndianEngine()

	h := Header{
		Version:       data[0],
		NumSymbols:    engine.Uint16(data[1:3]),
		NumTicks:      engine.Uint32(data[3:7]),
		BaseTimestamp: engine.Uint64(data[7:15]),
	}

	if h.Version != format.Version1 {
		return Header{}, errs.ErrUnsupportedVersion
	}

	return h, nil
}

// Offsets records the cumulative byte offsets of each variable-length
// section of a serialized blob. blob.Offsets computes them while parsing a
// blob, to report structural metadata without a full decompress.
type Offsets struct {
	// SymbolDictOffset is the byte offset where the symbol dictionary begins
	// (immediately after Header).
	SymbolDictOffset int
	// ReferenceFrameOffset is the byte offset where the N-float64 reference
	// frame begins (immediately after the symbol dictionary).
	ReferenceFrameOffset int
	// ChecksumsOffset is the byte offset where ref_crc/data_crc/payload
	// length begin (immediately after the reference frame).
	ChecksumsOffset int
	// PayloadOffset is the byte offset where the tick payload begins.
	PayloadOffset int
	// PayloadLength is the byte length of the tick payload (P in §6.1).
	PayloadLength int
	// TotalLength is the full serialized blob length, including the 4-byte
	// overall_crc trailer.
	TotalLength int
}
