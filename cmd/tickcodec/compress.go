package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/tsdelta/tsdelta"
)

func runCompress(args []string) error {
	fs := flag.NewFlagSet("compress", flag.ContinueOnError)
	codecName := fs.String("codec", "none", "at-rest codec: none|zstd|s2|lz4")
	if err := fs.Parse(args); err != nil {
		return err
	}

	rest := fs.Args()
	if len(rest) < 2 {
		return fmt.Errorf("compress: usage: tickcodec compress [-codec none|zstd|s2|lz4] <input_csv> <output_file>")
	}
	inputCSV, outputFile := rest[0], rest[1]

	codecType, err := parseCodecFlag(*codecName)
	if err != nil {
		return fmt.Errorf("compress: %w", err)
	}

	series, err := readTicksCSV(inputCSV)
	if err != nil {
		return fmt.Errorf("compress: %w", err)
	}

	encoded, err := tsdelta.CompressAndSerialize(series)
	if err != nil {
		return fmt.Errorf("compress: %w", err)
	}

	wrapped, err := wrapAtRest(encoded, codecType)
	if err != nil {
		return fmt.Errorf("compress: %w", err)
	}

	if err := os.WriteFile(outputFile, wrapped, 0o644); err != nil {
		return fmt.Errorf("compress: writing %s: %w", outputFile, err)
	}

	return nil
}
