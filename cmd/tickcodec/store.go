package main

import (
	"fmt"
	"os"

	"github.com/tsdelta/tsdelta/objectstore"
)

func runStore(args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("store: usage: tickcodec store <input_file> <store_dir>")
	}
	inputFile, storeDir := args[0], args[1]

	data, err := os.ReadFile(inputFile)
	if err != nil {
		return fmt.Errorf("store: reading %s: %w", inputFile, err)
	}

	s, err := objectstore.Open(storeDir)
	if err != nil {
		return fmt.Errorf("store: %w", err)
	}

	key, err := s.Put(data)
	if err != nil {
		return fmt.Errorf("store: %w", err)
	}

	fmt.Printf("%016x\n", key)

	return nil
}
