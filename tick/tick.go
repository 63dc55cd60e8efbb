// Package tick defines the plain data model the codec operates on: a Tick
// is a timestamped snapshot of prices across symbols, and a Series is a
// time-ordered, non-empty run of Ticks.
package tick

import "github.com/tsdelta/tsdelta/errs"

// Tick is a timestamped snapshot of prices for a fixed set of symbols.
// Timestamps are opaque monotonic integers; the codec never interprets them
// beyond subtraction.
type Tick struct {
	Timestamp uint64
	Prices    map[string]float64
}

// Series is a non-empty, time-ordered run of Ticks.
//
// Input contract: the set of symbols in every tick must be a subset of the
// symbols present in the first tick (later unknown symbols are silently
// dropped by the frame compressor, not rejected here); timestamps must
// satisfy t[i] >= t[0] and t[i]-t[0] < 2^32.
type Series []Tick

// maxTimestampSpan is the largest (t[i] - t[0]) the 32-bit ts_delta field in
// the wire format can represent.
const maxTimestampSpan = uint64(1) << 32

// Validate checks the ordering and span invariants of the input contract.
// It does not check the symbol-subset rule: unknown later symbols are a
// normal, silently-handled case (see frame.Compress), not a validation
// error.
func (s Series) Validate() error {
	if len(s) == 0 {
		return errs.ErrEmptyInput
	}

	base := s[0].Timestamp
	for i, t := range s {
		if t.Timestamp < base {
			return errs.ErrInvalidSeries
		}
		if i > 0 && t.Timestamp-base >= maxTimestampSpan {
			return errs.ErrInvalidSeries
		}
	}

	return nil
}
