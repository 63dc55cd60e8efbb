package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tsdelta/tsdelta/format"
)

func TestWrapUnwrapAtRest_RoundTrip(t *testing.T) {
	payload := []byte("a serialized blob, pretend")

	for _, codecType := range []format.CompressionType{
		format.CompressionNone, format.CompressionZstd, format.CompressionS2, format.CompressionLZ4,
	} {
		wrapped, err := wrapAtRest(payload, codecType)
		require.NoError(t, err)
		assert.Equal(t, byte(codecType), wrapped[0])

		got, err := unwrapAtRest(wrapped)
		require.NoError(t, err)
		assert.Equal(t, payload, got)
	}
}

func TestParseCodecFlag(t *testing.T) {
	cases := map[string]format.CompressionType{
		"":     format.CompressionNone,
		"none": format.CompressionNone,
		"zstd": format.CompressionZstd,
		"s2":   format.CompressionS2,
		"lz4":  format.CompressionLZ4,
	}
	for name, want := range cases {
		got, err := parseCodecFlag(name)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := parseCodecFlag("bogus")
	assert.Error(t, err)
}

func TestUnwrapAtRest_EmptyInput(t *testing.T) {
	_, err := unwrapAtRest(nil)
	assert.Error(t, err)
}
