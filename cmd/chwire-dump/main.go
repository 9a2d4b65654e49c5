// Command chwire-dump decodes a RowBinaryWithNamesAndTypes stream from a
// file or stdin and prints its header and rows, for manual smoke-testing
// of the type grammar and decode path end to end.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/lithiumdb/chwire/codec"
	"github.com/lithiumdb/chwire/frame"
	"github.com/lithiumdb/chwire/stream"
)

func main() {
	path := flag.String("f", "", "input file (defaults to stdin)")
	chunkSize := flag.Int("chunk", 64*1024, "source read chunk size in bytes")
	mapAsArray := flag.Bool("map-as-array", false, "decode Map columns as ordered []KV instead of map[any]any")
	flag.Parse()

	in := os.Stdin
	if *path != "" {
		f, err := os.Open(*path)
		if err != nil {
			log.Fatalf("chwire-dump: %v", err)
		}
		defer f.Close()
		in = f
	}

	src := frame.FromReader(in, *chunkSize)
	r := stream.NewReader(src, codec.WithMapAsArray(*mapAsArray))

	names, types, err := r.ReadHeader()
	if err != nil {
		log.Fatalf("chwire-dump: reading header: %v", err)
	}

	fmt.Printf("columns: %d\n", len(names))
	columns := make([]codec.Codec, len(names))
	for i, t := range types {
		c, err := codec.Get(t)
		if err != nil {
			log.Fatalf("chwire-dump: column %q: %v", names[i], err)
		}
		columns[i] = c
		fmt.Printf("  %s %s\n", names[i], t)
	}

	rowNum := 0
	for batch, err := range r.Rows(columns) {
		if err != nil {
			fmt.Fprintf(os.Stderr, "chwire-dump: row %d: %v\n", rowNum, err)
			os.Exit(1)
		}
		for _, row := range batch {
			fmt.Printf("row %d: %v\n", rowNum, []any(row))
			rowNum++
		}
	}
}
