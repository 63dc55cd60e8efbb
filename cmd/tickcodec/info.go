package main

import (
	"fmt"
	"os"

	"github.com/tsdelta/tsdelta/blob"
)

func runInfo(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("info: usage: tickcodec info <input_file>")
	}
	inputFile := args[0]

	raw, err := os.ReadFile(inputFile)
	if err != nil {
		return fmt.Errorf("info: reading %s: %w", inputFile, err)
	}

	encoded, err := unwrapAtRest(raw)
	if err != nil {
		return fmt.Errorf("info: %w", err)
	}

	offsets, err := blob.Offsets(encoded)
	if err != nil {
		return fmt.Errorf("info: %w", err)
	}

	rec, err := blob.Deserialize(encoded)
	if err != nil {
		return fmt.Errorf("info: %w", err)
	}

	fmt.Printf("version:              %d\n", rec.Version)
	fmt.Printf("symbols:              %d\n", rec.NumSymbols())
	fmt.Printf("ticks:                %d\n", rec.NumTicks)
	fmt.Printf("base_timestamp:       %d\n", rec.BaseTimestamp)
	fmt.Printf("symbol_dict_offset:   %d\n", offsets.SymbolDictOffset)
	fmt.Printf("reference_offset:     %d\n", offsets.ReferenceFrameOffset)
	fmt.Printf("checksums_offset:     %d\n", offsets.ChecksumsOffset)
	fmt.Printf("payload_offset:       %d\n", offsets.PayloadOffset)
	fmt.Printf("payload_length:       %d\n", offsets.PayloadLength)
	fmt.Printf("total_length:         %d\n", offsets.TotalLength)

	return nil
}
