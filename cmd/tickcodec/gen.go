package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"strings"

	"github.com/tsdelta/tsdelta"
	"github.com/tsdelta/tsdelta/format"
	"github.com/tsdelta/tsdelta/internal/hash"
	"github.com/tsdelta/tsdelta/tick"
)

const (
	defaultSymbols = "AAPL,MSFT,GOOG"
	defaultCount   = 200
	startPrice     = 100.0
)

func runGen(args []string) error {
	fs := flag.NewFlagSet("gen", flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}

	rest := fs.Args()
	if len(rest) < 1 {
		return fmt.Errorf("gen: usage: tickcodec gen <output_file> [symbols_csv] [count]")
	}

	outputFile := rest[0]
	symbolsCSV := defaultSymbols
	if len(rest) > 1 {
		symbolsCSV = rest[1]
	}
	count := defaultCount
	if len(rest) > 2 {
		n, err := strconv.Atoi(rest[2])
		if err != nil {
			return fmt.Errorf("gen: parsing count %q: %w", rest[2], err)
		}
		count = n
	}

	symbols := strings.Split(symbolsCSV, ",")

	series := generateSeries(symbols, count)

	encoded, err := tsdelta.CompressAndSerialize(series)
	if err != nil {
		return fmt.Errorf("gen: compressing synthetic series: %w", err)
	}

	wrapped, err := wrapAtRest(encoded, format.CompressionNone)
	if err != nil {
		return fmt.Errorf("gen: %w", err)
	}

	if err := os.WriteFile(outputFile, wrapped, 0o644); err != nil {
		return fmt.Errorf("gen: writing %s: %w", outputFile, err)
	}

	return nil
}

// generateSeries produces a deterministic pseudo-random walk over symbols,
// seeded from the symbol list so the same invocation always produces the
// same bytes.
func generateSeries(symbols []string, count int) tick.Series {
	seed := int64(hash.ID(strings.Join(symbols, ","))) //nolint:gosec // deterministic seed, not a crypto use
	rng := rand.New(rand.NewSource(seed))

	prices := make(map[string]float64, len(symbols))
	for _, sym := range symbols {
		prices[sym] = startPrice
	}

	series := make(tick.Series, 0, count)
	var ts uint64
	for i := 0; i < count; i++ {
		snapshot := make(map[string]float64, len(symbols))
		for _, sym := range symbols {
			prices[sym] *= 1 + (rng.Float64()-0.5)*0.01
			snapshot[sym] = prices[sym]
		}

		series = append(series, tick.Tick{Timestamp: ts, Prices: snapshot})
		ts += uint64(1 + rng.Intn(5))
	}

	return series
}
