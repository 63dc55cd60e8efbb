package compress

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tsdelta/tsdelta/format"
)

var allCodecs = []struct {
	name string
	typ  format.CompressionType
}{
	{"none", format.CompressionNone},
	{"zstd", format.CompressionZstd},
	{"s2", format.CompressionS2},
	{"lz4", format.CompressionLZ4},
}

func TestCodecs_RoundTrip(t *testing.T) {
	payload := make([]byte, 4096)
	for i := range payload {
		payload[i] = byte(i % 251)
	}

	for _, c := range allCodecs {
		t.Run(c.name, func(t *testing.T) {
			codec, err := GetCodec(c.typ)
			require.NoError(t, err)

			compressed, err := codec.Compress(payload)
			require.NoError(t, err)

			decompressed, err := codec.Decompress(compressed)
			require.NoError(t, err)
			assert.Equal(t, payload, decompressed)
		})
	}
}

func TestCodecs_EmptyInput(t *testing.T) {
	for _, c := range allCodecs {
		t.Run(c.name, func(t *testing.T) {
			codec, err := GetCodec(c.typ)
			require.NoError(t, err)

			compressed, err := codec.Compress(nil)
			require.NoError(t, err)

			decompressed, err := codec.Decompress(compressed)
			require.NoError(t, err)
			assert.Empty(t, decompressed)
		})
	}
}

func TestGetCodec_UnknownTypeErrors(t *testing.T) {
	_, err := GetCodec(format.CompressionType(0xFF))
	assert.Error(t, err)
}

func TestCreateCodec_MatchesGetCodec(t *testing.T) {
	for _, c := range allCodecs {
		codec, err := CreateCodec(c.typ, "test")
		require.NoError(t, err)
		assert.NotNil(t, codec)
	}

	_, err := CreateCodec(format.CompressionType(0xFF), "test")
	assert.Error(t, err)
}

func TestCompressionStats_RatioAndSavings(t *testing.T) {
	stats := CompressionStats{OriginalSize: 1000, CompressedSize: 250}
	assert.InDelta(t, 0.25, stats.CompressionRatio(), 1e-9)
	assert.InDelta(t, 75.0, stats.SpaceSavings(), 1e-9)
}

func TestCompressionStats_ZeroOriginalSize(t *testing.T) {
	stats := CompressionStats{OriginalSize: 0, CompressedSize: 0}
	assert.Equal(t, 0.0, stats.CompressionRatio())
}
