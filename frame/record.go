// Package frame implements the frame compressor: the in-memory compressed
// Record (symbol dictionary, reference frame, per-tick bitmap+delta
// payload) and its Compress and Decompress operations.
//
// This is the hard-part layer of the codec: blob handles the byte layout
// around a Record, but the lossy reference-frame-plus-rolling-delta scheme
// lives entirely here.
package frame

// Record is the in-memory compressed representation of a tick series.
//
// A Record is immutable after construction: Compress builds one, blob.Serialize
// reads it, blob.Deserialize rebuilds one, and Decompress expands it back to
// ticks. There is no partial-update API.
type Record struct {
	Version uint8
	// Symbols is the frozen symbol dictionary, in the index order established
	// at encode time (sorted lexicographically, never left to map iteration
	// order, so two runs over the same input serialize identically).
	Symbols []string
	// BaseTimestamp is the first tick's timestamp; all other timestamps are
	// stored as a delta from it.
	BaseTimestamp uint64
	// Reference holds one float64 price per symbol index, sourced from the
	// first tick.
	Reference []float64
	// NumTicks is the total number of ticks the record represents, including
	// the implicit first tick.
	NumTicks uint32
	// Payload is the encoded ticks 2..NumTicks: a concatenation of
	// (ts_delta, bitmap, deltas) records. Tick 1 is implicit in Reference.
	Payload []byte

	// RefCRC is the CRC-32 of the little-endian byte image of Reference.
	RefCRC uint32
	// DataCRC is the CRC-32 of Payload.
	DataCRC uint32
	// OverallCRC is 0 until a full blob is serialized; blob.Deserialize
	// populates it from the blob's trailer.
	OverallCRC uint32
}

// NumSymbols returns the number of symbols in the frozen dictionary.
func (r *Record) NumSymbols() int { return len(r.Symbols) }

// bitmapSize returns ceil(n/8), the byte length of a per-tick change bitmap
// for n symbols.
func bitmapSize(n int) int {
	return (n + 7) / 8
}

// StrictTruncation switches Decompress's handling of a payload that runs out
// mid-record: false (the default) returns the ticks produced so far without
// error; true tightens this to errs.ErrTruncated. It is a package variable
// rather than a Record field because it governs a decode policy, not a
// property of any one blob.
var StrictTruncation = false
