// Command tickcodec is a small driver around the tsdelta codec: it
// generates synthetic tick data, compresses and serializes CSV input,
// reverses the process, reports blob structure without a full decompress,
// and pushes blobs into a content-addressed object store.
package main

import (
	"fmt"
	"os"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	sub := os.Args[1]
	args := os.Args[2:]

	var err error
	switch sub {
	case "gen":
		err = runGen(args)
	case "compress":
		err = runCompress(args)
	case "decompress":
		err = runDecompress(args)
	case "info":
		err = runInfo(args)
	case "store":
		err = runStore(args)
	default:
		usage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, "tickcodec:", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage: tickcodec <command> [arguments]

commands:
  gen <output_file> [symbols_csv] [count]
  compress [-codec none|zstd|s2|lz4] <input_csv> <output_file>
  decompress <input_file> [output_csv]
  info <input_file>
  store <input_file> <store_dir>`)
}
