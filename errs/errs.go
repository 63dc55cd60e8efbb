// Package errs collects the sentinel error values returned across the
// codec, frame, blob, and external-collaborator layers of tsdelta.
//
// Callers should compare with errors.Is, since some call sites wrap a
// sentinel with extra context via fmt.Errorf("%w: ...", errs.ErrXxx).
package errs

import "errors"

var (
	// ErrEmptyInput is returned by frame.Compress when called with zero ticks.
	ErrEmptyInput = errors.New("tsdelta: empty tick series")

	// ErrInvalidSeries is returned by tick.Series.Validate when a tick's
	// timestamp is earlier than the first tick's, or lies 2^32 or more after
	// it. Ordering between later ticks is not checked.
	ErrInvalidSeries = errors.New("tsdelta: invalid tick series")

	// ErrSymbolTableOverflow is returned when the first tick carries more than
	// 65535 distinct symbols.
	ErrSymbolTableOverflow = errors.New("tsdelta: symbol table overflow")

	// ErrTruncated is returned when a blob is shorter than the minimum
	// header+trailer size, or a field read runs past the end of the buffer.
	ErrTruncated = errors.New("tsdelta: truncated blob")

	// ErrOverallChecksumMismatch is returned by blob.Deserialize when the
	// trailing CRC-32 does not match the CRC of the preceding bytes.
	ErrOverallChecksumMismatch = errors.New("tsdelta: overall checksum mismatch")

	// ErrReferenceChecksumMismatch is returned by frame.Decompress when the
	// reference-frame CRC stored in the record does not match the recomputed
	// CRC of the reference frame bytes.
	ErrReferenceChecksumMismatch = errors.New("tsdelta: reference checksum mismatch")

	// ErrDataChecksumMismatch is returned by frame.Decompress when the
	// tick-payload CRC stored in the record does not match the recomputed CRC
	// of the payload bytes.
	ErrDataChecksumMismatch = errors.New("tsdelta: data checksum mismatch")

	// ErrMalformedSymbol is returned when a symbol dictionary entry is not
	// valid UTF-8, or (by blob.Serialize) is longer than 255 bytes.
	ErrMalformedSymbol = errors.New("tsdelta: malformed symbol bytes")

	// ErrDeltaUnderrun is returned by delta.Decode when the remaining buffer
	// is shorter than the variant's frame demands.
	ErrDeltaUnderrun = errors.New("tsdelta: delta codec underrun")

	// ErrUnsupportedVersion is returned by blob.Deserialize when the version
	// byte is not 1.
	ErrUnsupportedVersion = errors.New("tsdelta: unsupported blob version")

	// ErrUnknownCodec is returned by the at-rest compress layer when a file's
	// codec tag byte doesn't match a registered compress.Codec.
	ErrUnknownCodec = errors.New("tsdelta: unknown at-rest codec tag")

	// ErrObjectNotFound is returned by objectstore.Store.Load when no object
	// exists under the requested key.
	ErrObjectNotFound = errors.New("tsdelta: object not found in store")

	// ErrContentCollision is returned by objectstore.Store.Put when two
	// different byte payloads hash to the same content key.
	ErrContentCollision = errors.New("tsdelta: content hash collision")
)
