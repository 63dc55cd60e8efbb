// Package tsdelta provides a columnar delta-compression codec for
// multi-symbol financial tick series.
//
// A Tick is a timestamped snapshot of prices across a fixed set of symbols;
// a Series is a time-ordered run of Ticks. Compress converts a Series into
// an in-memory compressed Record; Serialize lays that Record out as a
// single self-describing byte blob with three independent integrity
// checks. Deserialize and Decompress reverse the process.
//
// # Basic usage
//
//	series := tsdelta.Series{
//	    {Timestamp: 1700000000, Prices: map[string]float64{"AAPL": 150.25, "MSFT": 305.10}},
//	    {Timestamp: 1700000001, Prices: map[string]float64{"AAPL": 150.30, "MSFT": 305.10}},
//	}
//
//	blob, err := tsdelta.CompressAndSerialize(series)
//	if err != nil {
//	    // handle error
//	}
//
//	out, err := tsdelta.DeserializeAndDecompress(blob)
//	if err != nil {
//	    // handle error
//	}
//
// # Package structure
//
// This package is a thin convenience wrapper over frame (the compressor)
// and blob (the serializer). Advanced callers who need the intermediate
// frame.Record — to inspect RefCRC/DataCRC before trusting the payload, for
// example — should use the frame and blob packages directly.
package tsdelta

import (
	"github.com/tsdelta/tsdelta/blob"
	"github.com/tsdelta/tsdelta/frame"
	"github.com/tsdelta/tsdelta/tick"
)

// Tick and Series re-export the tick package's data model so callers who
// only need the top-level convenience API don't need a second import.
type (
	Tick   = tick.Tick
	Series = tick.Series
)

// Record re-exports frame.Record for callers that want the intermediate
// compressed representation without reaching into the frame package.
type Record = frame.Record

// Compress converts a tick series into an in-memory compressed Record.
func Compress(series Series) (*Record, error) {
	return frame.Compress(series)
}

// Serialize lays out a compressed Record as a versioned binary blob.
func Serialize(r *Record) ([]byte, error) {
	return blob.Serialize(r)
}

// Deserialize parses a serialized blob back into a Record.
func Deserialize(data []byte) (*Record, error) {
	return blob.Deserialize(data)
}

// Decompress expands a Record back into a tick series.
func Decompress(r *Record) (Series, error) {
	return r.Decompress()
}

// CompressAndSerialize is a convenience wrapper chaining Compress and
// Serialize.
func CompressAndSerialize(series Series) ([]byte, error) {
	rec, err := Compress(series)
	if err != nil {
		return nil, err
	}

	return Serialize(rec)
}

// DeserializeAndDecompress is a convenience wrapper chaining Deserialize and
// Decompress.
func DeserializeAndDecompress(data []byte) (Series, error) {
	rec, err := Deserialize(data)
	if err != nil {
		return nil, err
	}

	return Decompress(rec)
}
