package blob

import (
	"unicode/utf8"

	"github.com/tsdelta/tsdelta/crc32table"
	"github.com/tsdelta/tsdelta/endian"
	"github.com/tsdelta/tsdelta/errs"
	"github.com/tsdelta/tsdelta/frame"
	"github.com/tsdelta/tsdelta/section"
)

// Deserialize parses a serialized blob back into a frame.Record.
//
// The overall_crc trailer is checked before any other field is read; a
// mismatch returns errs.ErrOverallChecksumMismatch and no record. Only a
// passing overall CRC unlocks parsing of the header, symbol dictionary,
// reference frame, inner CRCs, and payload.
func Deserialize(data []byte) (*frame.Record, error) {
	rec, _, err := parse(data)
	return rec, err
}

// Offsets computes structural metadata about a serialized blob without
// decompressing its tick payload, backing the CLI `info` subcommand.
func Offsets(data []byte) (section.Offsets, error) {
	_, offsets, err := parse(data)
	return offsets, err
}

func parse(data []byte) (*frame.Record, section.Offsets, error) {
	if len(data) < section.HeaderSize+trailerSize {
		return nil, section.Offsets{}, errs.ErrTruncated
	}

	body := data[:len(data)-trailerSize]
	engine := endian.GetLittleEndianEngine()

	wantOverall := engine.Uint32(data[len(data)-trailerSize:])
	gotOverall := crc32table.Checksum(body)
	if wantOverall != gotOverall {
		return nil, section.Offsets{}, errs.ErrOverallChecksumMismatch
	}

	header, err := section.ParseHeader(data)
	if err != nil {
		return nil, section.Offsets{}, err
	}

	offsets := section.Offsets{
		SymbolDictOffset: section.HeaderSize,
		TotalLength:      len(data),
	}

	pos := section.HeaderSize
	symbols := make([]string, 0, header.NumSymbols)
	for i := 0; i < int(header.NumSymbols); i++ {
		if pos+1 > len(body) {
			return nil, section.Offsets{}, errs.ErrTruncated
		}
		symLen := int(body[pos])
		pos++

		if pos+symLen > len(body) {
			return nil, section.Offsets{}, errs.ErrTruncated
		}
		symBytes := body[pos : pos+symLen]
		if !utf8.Valid(symBytes) {
			return nil, section.Offsets{}, errs.ErrMalformedSymbol
		}
		symbols = append(symbols, string(symBytes))
		pos += symLen
	}

	offsets.ReferenceFrameOffset = pos

	refLen := 8 * int(header.NumSymbols)
	if pos+refLen > len(body) {
		return nil, section.Offsets{}, errs.ErrTruncated
	}
	reference := parseReferenceFrame(body[pos:pos+refLen], engine)
	pos += refLen

	offsets.ChecksumsOffset = pos

	if pos+12 > len(body) {
		return nil, section.Offsets{}, errs.ErrTruncated
	}
	refCRC := engine.Uint32(body[pos : pos+4])
	dataCRC := engine.Uint32(body[pos+4 : pos+8])
	payloadLen := int(engine.Uint32(body[pos+8 : pos+12]))
	pos += 12

	offsets.PayloadOffset = pos
	offsets.PayloadLength = payloadLen

	if pos+payloadLen > len(body) {
		return nil, section.Offsets{}, errs.ErrTruncated
	}
	payload := make([]byte, payloadLen)
	copy(payload, body[pos:pos+payloadLen])

	rec := &frame.Record{
		Version:       header.Version,
		Symbols:       symbols,
		BaseTimestamp: header.BaseTimestamp,
		Reference:     reference,
		NumTicks:      header.NumTicks,
		Payload:       payload,
		RefCRC:        refCRC,
		DataCRC:       dataCRC,
		OverallCRC:    gotOverall,
	}

	return rec, offsets, nil
}

func parseReferenceFrame(b []byte, engine endian.EndianEngine) []float64 {
	n := len(b) / 8
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		bits := engine.Uint64(b[i*8 : i*8+8])
		out[i] = float64FromBits(bits)
	}

	return out
}
