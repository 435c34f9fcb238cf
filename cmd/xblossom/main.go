// Command xblossom computes a maximum matching of a graph given as two
// whitespace-separated-integer files, row_offsets and col_indices, the
// same CSR text format original_source/main.cpp's readFileIntoVector
// reads.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"xblossom"
	"xblossom/csrgraph"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s <row_offsets_path> <col_indices_path> <num_threads>\n", os.Args[0])
	}
	verbose := flag.Bool("v", false, "enable debug logging of each phase")
	flag.Parse()

	args := flag.Args()
	if len(args) != 3 {
		flag.Usage()
		os.Exit(1)
	}

	numThreads, err := strconv.Atoi(args[2])
	if err != nil || numThreads < 1 {
		fmt.Fprintf(os.Stderr, "xblossom: invalid num_threads %q\n", args[2])
		os.Exit(1)
	}

	rowOffsets, err := loadInts(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "xblossom: reading %s: %v\n", args[0], err)
		os.Exit(1)
	}
	colIndices, err := loadInts(args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "xblossom: reading %s: %v\n", args[1], err)
		os.Exit(1)
	}

	g, err := csrgraph.New(rowOffsets, colIndices)
	if err != nil {
		fmt.Fprintf(os.Stderr, "xblossom: %v\n", err)
		os.Exit(1)
	}

	var opts []xblossom.Option
	if *verbose {
		logger, _ := zap.NewDevelopment()
		opts = append(opts, xblossom.WithLogger(logger))
	}

	fmt.Printf("vertices: %d, edges: %d\n", g.NumVertices(), g.EdgeCount())

	m, err := xblossom.MaximumMatching(g, numThreads, opts...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "xblossom: %v\n", err)
		os.Exit(1)
	}

	if err := xblossom.ValidateMatching(g, m); err != nil {
		fmt.Fprintf(os.Stderr, "xblossom: matching failed validation: %v\n", err)
		os.Exit(1)
	}

	matched := 0
	for v, mv := range m {
		if mv != -1 && int(mv) > v {
			matched++
		}
	}
	fmt.Printf("matched edges: %d\n", matched)
}

// loadInts reads whitespace-separated integers from path into an int32
// slice, the text-file analogue of the teacher's graphutils.ReadAdjList
// bufio.Scanner loop.
func loadInts(path string) ([]int32, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var out []int32
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	scanner.Split(bufio.ScanWords)
	for scanner.Scan() {
		tok := strings.TrimSpace(scanner.Text())
		if tok == "" {
			continue
		}
		v, err := strconv.ParseInt(tok, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("parsing %q: %w", tok, err)
		}
		out = append(out, int32(v))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
