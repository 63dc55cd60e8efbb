package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tsdelta/tsdelta/tick"
)

func TestReadTicksCSV_GroupsRowsByTimestamp(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ticks.csv")
	content := "1700000001,MSFT,305.1\n1700000000,AAPL,150.25\n1700000000,MSFT,305.1\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	series, err := readTicksCSV(path)
	require.NoError(t, err)
	require.Len(t, series, 2)

	assert.Equal(t, uint64(1700000000), series[0].Timestamp)
	assert.Equal(t, 150.25, series[0].Prices["AAPL"])
	assert.Equal(t, 305.1, series[0].Prices["MSFT"])

	assert.Equal(t, uint64(1700000001), series[1].Timestamp)
	assert.Equal(t, 305.1, series[1].Prices["MSFT"])
}

func TestWriteTicksCSV_SortsSymbolsWithinTick(t *testing.T) {
	series := tick.Series{
		{Timestamp: 42, Prices: map[string]float64{"MSFT": 2.0, "AAPL": 1.0}},
	}

	var buf bytes.Buffer
	require.NoError(t, writeTicksCSV(&buf, series))

	assert.Equal(t, "42,AAPL,1\n42,MSFT,2\n", buf.String())
}

func TestCSV_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ticks.csv")

	original := tick.Series{
		{Timestamp: 1, Prices: map[string]float64{"AAPL": 150.25}},
		{Timestamp: 2, Prices: map[string]float64{"AAPL": 150.30}},
	}

	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, writeTicksCSV(f, original))
	require.NoError(t, f.Close())

	got, err := readTicksCSV(path)
	require.NoError(t, err)
	require.Len(t, got, len(original))
	for i := range original {
		assert.Equal(t, original[i].Timestamp, got[i].Timestamp)
		assert.Equal(t, original[i].Prices, got[i].Prices)
	}
}
