package main

import (
	"fmt"

	"github.com/tsdelta/tsdelta/compress"
	"github.com/tsdelta/tsdelta/format"
)

// wrapAtRest prepends a one-byte codec tag to data, compressing it with the
// codec named by tag first (compress.GetCodec(format.CompressionNone) is a
// zero-copy passthrough, so "none" always round-trips through the same
// envelope shape as any other codec).
func wrapAtRest(data []byte, codecType format.CompressionType) ([]byte, error) {
	codec, err := compress.GetCodec(codecType)
	if err != nil {
		return nil, err
	}

	compressed, err := codec.Compress(data)
	if err != nil {
		return nil, fmt.Errorf("compressing with %s: %w", codecType, err)
	}

	out := make([]byte, 0, len(compressed)+1)
	out = append(out, byte(codecType))
	out = append(out, compressed...)

	return out, nil
}

// unwrapAtRest reads the leading codec tag byte and decompresses the
// remainder with the matching codec.
func unwrapAtRest(data []byte) ([]byte, error) {
	if len(data) < 1 {
		return nil, fmt.Errorf("empty file")
	}

	codecType := format.CompressionType(data[0])
	codec, err := compress.GetCodec(codecType)
	if err != nil {
		return nil, err
	}

	out, err := codec.Decompress(data[1:])
	if err != nil {
		return nil, fmt.Errorf("decompressing with %s: %w", codecType, err)
	}

	return out, nil
}

// parseCodecFlag maps a -codec flag value to a format.CompressionType.
func parseCodecFlag(name string) (format.CompressionType, error) {
	switch name {
	case "", "none":
		return format.CompressionNone, nil
	case "zstd":
		return format.CompressionZstd, nil
	case "s2":
		return format.CompressionS2, nil
	case "lz4":
		return format.CompressionLZ4, nil
	default:
		return 0, fmt.Errorf("unknown codec %q (want none|zstd|s2|lz4)", name)
	}
}
