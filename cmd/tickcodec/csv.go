package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"

	"github.com/tsdelta/tsdelta/tick"
)

// readTicksCSV reads a timestamp,symbol,price CSV and groups rows into
// ticks keyed by timestamp, in ascending timestamp order.
func readTicksCSV(path string) (tick.Series, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = 3

	byTimestamp := make(map[uint64]map[string]float64)
	var order []uint64

	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}

		ts, err := strconv.ParseUint(row[0], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("parsing timestamp %q: %w", row[0], err)
		}
		price, err := strconv.ParseFloat(row[2], 64)
		if err != nil {
			return nil, fmt.Errorf("parsing price %q: %w", row[2], err)
		}

		prices, ok := byTimestamp[ts]
		if !ok {
			prices = make(map[string]float64)
			byTimestamp[ts] = prices
			order = append(order, ts)
		}
		prices[row[1]] = price
	}

	sort.Slice(order, func(i, j int) bool { return order[i] < order[j] })

	series := make(tick.Series, 0, len(order))
	for _, ts := range order {
		series = append(series, tick.Tick{Timestamp: ts, Prices: byTimestamp[ts]})
	}

	return series, nil
}

// writeTicksCSV writes series as a timestamp,symbol,price CSV to w, one row
// per (tick, symbol) pair in ascending symbol order within each tick.
func writeTicksCSV(w io.Writer, series tick.Series) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	for _, t := range series {
		symbols := make([]string, 0, len(t.Prices))
		for sym := range t.Prices {
			symbols = append(symbols, sym)
		}
		sort.Strings(symbols)

		for _, sym := range symbols {
			row := []string{
				strconv.FormatUint(t.Timestamp, 10),
				sym,
				strconv.FormatFloat(t.Prices[sym], 'f', -1, 64),
			}
			if err := cw.Write(row); err != nil {
				return fmt.Errorf("writing csv row: %w", err)
			}
		}
	}

	cw.Flush()

	return cw.Error()
}
