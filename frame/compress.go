package frame

import (
	"math"
	"sort"

	"github.com/tsdelta/tsdelta/crc32table"
	"github.com/tsdelta/tsdelta/delta"
	"github.com/tsdelta/tsdelta/errs"
	"github.com/tsdelta/tsdelta/format"
	"github.com/tsdelta/tsdelta/internal/pool"
	"github.com/tsdelta/tsdelta/tick"
)

// Compress converts a tick series into an in-memory compressed Record.
//
// The symbol dictionary is derived from the first tick's price keys, sorted
// lexicographically before being frozen, rather than trusted to map
// iteration order: Go's map iteration is intentionally randomized, so two
// runs over the same input would otherwise serialize to different-but
// equivalent bytes.
func Compress(series tick.Series) (*Record, error) {
	if len(series) == 0 {
		return nil, errs.ErrEmptyInput
	}
	if err := series.Validate(); err != nil {
		return nil, err
	}

	symbols := make([]string, 0, len(series[0].Prices))
	for sym := range series[0].Prices {
		symbols = append(symbols, sym)
	}
	sort.Strings(symbols)

	if len(symbols) > math.MaxUint16 {
		return nil, errs.ErrSymbolTableOverflow
	}

	index := make(map[string]int, len(symbols))
	for i, sym := range symbols {
		index[sym] = i
	}

	reference := make([]float64, len(symbols))
	for i, sym := range symbols {
		reference[i] = series[0].Prices[sym]
	}

	baseTimestamp := series[0].Timestamp
	refCRC := crc32table.Checksum(ReferenceBytes(reference))

	payload := pool.Get()
	defer pool.Put(payload)

	prev := append([]float64(nil), reference...)

	n := len(symbols)
	bmSize := bitmapSize(n)

	for _, t := range series[1:] {
		tsDelta := uint32(t.Timestamp - baseTimestamp) //nolint:gosec // bounds enforced by Series.Validate
		payload.B = appendUint32LE(payload.B, tsDelta)

		bitmap := make([]byte, bmSize)
		type change struct {
			idx int
			bp  int32
		}
		changes := make([]change, 0, n)

		for idx, sym := range symbols {
			price, ok := t.Prices[sym]
			if !ok {
				continue
			}

			bp := roundHalfAwayFromZero((price - prev[idx]) / prev[idx] * 10000)
			if bp == 0 {
				continue
			}

			bitmap[idx/8] |= 1 << uint(idx%8)
			changes = append(changes, change{idx: idx, bp: bp})
			prev[idx] = prev[idx] * (1 + float64(bp)/10000)
		}

		payload.B = append(payload.B, bitmap...)

		for _, c := range changes {
			payload.B = delta.Encode(payload.B, c.bp)
		}
	}

	payloadBytes := append([]byte(nil), payload.B...)
	dataCRC := crc32table.Checksum(payloadBytes)

	return &Record{
		Version:       format.Version1,
		Symbols:       symbols,
		BaseTimestamp: baseTimestamp,
		Reference:     reference,
		NumTicks:      uint32(len(series)), //nolint:gosec // bounds enforced by Series.Validate
		Payload:       payloadBytes,
		RefCRC:        refCRC,
		DataCRC:       dataCRC,
		OverallCRC:    0,
	}, nil
}

// ReferenceBytes returns the little-endian byte image of a reference frame:
// 8 bytes per float64, in index order.
func ReferenceBytes(reference []float64) []byte {
	out := make([]byte, 8*len(reference))
	for i, v := range reference {
		bits := math.Float64bits(v)
		off := i * 8
		out[off+0] = byte(bits)
		out[off+1] = byte(bits >> 8)
		out[off+2] = byte(bits >> 16)
		out[off+3] = byte(bits >> 24)
		out[off+4] = byte(bits >> 32)
		out[off+5] = byte(bits >> 40)
		out[off+6] = byte(bits >> 48)
		out[off+7] = byte(bits >> 56)
	}

	return out
}

func appendUint32LE(buf []byte, v uint32) []byte {
	return append(buf, byte(v), byte(v>>8), byte(v>>16), byte(v>>24))
}

// roundHalfAwayFromZero rounds x to the nearest integer, ties rounding away
// from zero, the basis-point quantization rule used when building a delta.
func roundHalfAwayFromZero(x float64) int32 {
	if x >= 0 {
		return int32(math.Floor(x + 0.5))
	}

	return int32(math.Ceil(x - 0.5))
}
