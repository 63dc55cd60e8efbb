// Package format holds the small wire-format enumerations shared by the
// codec core and the at-rest compression layer.
package format

// Version1 identifies the blob layout this codec reads and writes. The
// codec core only ever produces and accepts Version1; the byte exists so a
// future layout change has a sentinel to branch on, without the wire format
// needing any broader schema-evolution machinery.
const Version1 = uint8(1)

// CompressionType identifies the optional at-rest codec wrapped around a
// serialized blob by the CLI file layer. It has no bearing on the core wire
// format, which never carries a compression flag.
type CompressionType uint8

const (
	CompressionNone CompressionType = 0x0
	CompressionZstd CompressionType = 0x1
	CompressionS2   CompressionType = 0x2
	CompressionLZ4  CompressionType = 0x3
)

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "none"
	case CompressionZstd:
		return "zstd"
	case CompressionS2:
		return "s2"
	case CompressionLZ4:
		return "lz4"
	default:
		return "unknown"
	}
}
