package tsdelta_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tsdelta/tsdelta"
)

func TestCompressAndSerialize_RoundTrip(t *testing.T) {
	series := tsdelta.Series{
		{Timestamp: 1700000000, Prices: map[string]float64{"AAPL": 150.25, "MSFT": 305.10}},
		{Timestamp: 1700000001, Prices: map[string]float64{"AAPL": 150.30, "MSFT": 305.10}},
		{Timestamp: 1700000005, Prices: map[string]float64{"AAPL": 149.80, "MSFT": 306.25}},
	}

	encoded, err := tsdelta.CompressAndSerialize(series)
	require.NoError(t, err)

	out, err := tsdelta.DeserializeAndDecompress(encoded)
	require.NoError(t, err)
	require.Len(t, out, len(series))

	for i, want := range series {
		assert.Equal(t, want.Timestamp, out[i].Timestamp)
		for sym, price := range want.Prices {
			assert.InEpsilon(t, price, out[i].Prices[sym], 0.01)
		}
	}
}

func TestCompress_EmptySeriesErrors(t *testing.T) {
	_, err := tsdelta.Compress(nil)
	assert.Error(t, err)
}
