package frame

import (
	"github.com/tsdelta/tsdelta/crc32table"
	"github.com/tsdelta/tsdelta/delta"
	"github.com/tsdelta/tsdelta/errs"
	"github.com/tsdelta/tsdelta/tick"
)

// Decompress expands a Record back into a tick series.
//
// Both inner checksums are verified before any payload byte is interpreted:
// the reference-frame CRC first, then the tick-payload CRC. Only then does
// decoding begin, emitting the implicit first tick from Reference and
// replaying ts_delta/bitmap/delta records for the rest.
func (r *Record) Decompress() (tick.Series, error) {
	if crc32table.Checksum(ReferenceBytes(r.Reference)) != r.RefCRC {
		return nil, errs.ErrReferenceChecksumMismatch
	}
	if crc32table.Checksum(r.Payload) != r.DataCRC {
		return nil, errs.ErrDataChecksumMismatch
	}

	n := len(r.Symbols)
	bmSize := bitmapSize(n)

	out := make(tick.Series, 0, r.NumTicks)
	out = append(out, tick.Tick{
		Timestamp: r.BaseTimestamp,
		Prices:    pricesFromFrame(r.Symbols, r.Reference),
	})

	curr := append([]float64(nil), r.Reference...)
	cur := delta.Cursor{}
	payload := r.Payload

	for cur.Pos < len(payload) {
		if cur.Pos+4 > len(payload) {
			if StrictTruncation {
				return nil, errs.ErrTruncated
			}

			break
		}
		tsDelta := uint32(payload[cur.Pos]) |
			uint32(payload[cur.Pos+1])<<8 |
			uint32(payload[cur.Pos+2])<<16 |
			uint32(payload[cur.Pos+3])<<24
		cur.Pos += 4

		if cur.Pos+bmSize > len(payload) {
			if StrictTruncation {
				return nil, errs.ErrTruncated
			}

			break
		}
		bitmap := payload[cur.Pos : cur.Pos+bmSize]
		cur.Pos += bmSize

		for idx := 0; idx < n; idx++ {
			if bitmap[idx/8]&(1<<uint(idx%8)) == 0 {
				continue
			}

			bp, err := delta.Decode(payload, &cur)
			if err != nil {
				// delta.Decode only fails when the payload runs out
				// mid-frame, which is the same truncation case as above.
				if StrictTruncation {
					return nil, errs.ErrTruncated
				}

				return out, nil
			}

			curr[idx] = curr[idx] * (1 + float64(bp)/10000)
		}

		out = append(out, tick.Tick{
			Timestamp: r.BaseTimestamp + uint64(tsDelta),
			Prices:    pricesFromFrame(r.Symbols, curr),
		})
	}

	return out, nil
}

// pricesFromFrame builds a fresh symbol->price map from a price frame so
// each emitted tick owns an independent map (curr is mutated in place by
// the decode loop above).
func pricesFromFrame(symbols []string, frame []float64) map[string]float64 {
	prices := make(map[string]float64, len(symbols))
	for i, sym := range symbols {
		prices[sym] = frame[i]
	}

	return prices
}
