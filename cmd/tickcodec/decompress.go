package main

import (
	"fmt"
	"os"

	"github.com/tsdelta/tsdelta"
)

func runDecompress(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("decompress: usage: tickcodec decompress <input_file> [output_csv]")
	}
	inputFile := args[0]

	raw, err := os.ReadFile(inputFile)
	if err != nil {
		return fmt.Errorf("decompress: reading %s: %w", inputFile, err)
	}

	encoded, err := unwrapAtRest(raw)
	if err != nil {
		return fmt.Errorf("decompress: %w", err)
	}

	series, err := tsdelta.DeserializeAndDecompress(encoded)
	if err != nil {
		return fmt.Errorf("decompress: %w", err)
	}

	if len(args) > 1 {
		f, err := os.Create(args[1])
		if err != nil {
			return fmt.Errorf("decompress: creating %s: %w", args[1], err)
		}
		defer f.Close()

		return writeTicksCSV(f, series)
	}

	return writeTicksCSV(os.Stdout, series)
}
