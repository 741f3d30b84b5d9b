// Listscan scans a file of little-endian uint16 values block by block,
// searching each block for the permutation key that classifies the
// largest share of its values as members of the key's synthetic list.
//
// Usage:
//
//	go run ./cmd/listscan -data values.bin -block-len 64 -blocks 50
//
// Flags:
//
//	-data           Path to the data file (required)
//	-block-len      Values per block (default: 64)
//	-blocks         Maximum number of blocks to scan (default: 50)
//	-restarts       Random restarts per block (default: 250)
//	-passes         Hillclimb passes per restart (default: 8)
//	-seed           Base seed; block i searches with seed+i (default: 0xC0FFEE123456789)
//	-workers        Parallel hillclimb workers per block (default: 1)
//	-restart-scores Print each restart's best score per block (default: false)
package main

import (
	"flag"
	"fmt"
	"os"

	listsearch "github.com/azizgokhannarin/imaginarylistsearch"
	"github.com/azizgokhannarin/imaginarylistsearch/internal/datafile"
)

func main() {
	dataFlag := flag.String("data", "", "path to data file of little-endian uint16 values")
	blockLenFlag := flag.Int("block-len", 64, "values per block")
	blocksFlag := flag.Int("blocks", 50, "maximum number of blocks to scan")
	restartsFlag := flag.Int("restarts", listsearch.DefaultRestarts, "random restarts per block")
	passesFlag := flag.Int("passes", listsearch.DefaultHillClimbPasses, "hillclimb passes per restart")
	seedFlag := flag.Uint64("seed", listsearch.DefaultSeed, "base search seed; block i uses seed+i")
	workersFlag := flag.Int("workers", 1, "parallel hillclimb workers per block")
	restartScoresFlag := flag.Bool("restart-scores", false, "print per-restart best scores")
	flag.Parse()

	if *dataFlag == "" {
		fmt.Fprintln(os.Stderr, "missing required -data flag")
		flag.Usage()
		os.Exit(1)
	}
	if *blockLenFlag <= 0 {
		fmt.Fprintf(os.Stderr, "invalid -block-len %d: must be positive\n", *blockLenFlag)
		os.Exit(1)
	}

	f, err := datafile.Open(*dataFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cannot read %s: %v\n", *dataFlag, err)
		os.Exit(2)
	}
	defer func() { _ = f.Close() }()

	blockLen := *blockLenFlag
	if f.Len() < blockLen {
		fmt.Fprintf(os.Stderr, "data file holds %d values, need at least %d for one block\n",
			f.Len(), blockLen)
		os.Exit(3)
	}

	maxBlocks := min(*blocksFlag, f.Len()/blockLen)

	fmt.Printf("u16 count: %d (xxh64 %016x)\n", f.Len(), f.Checksum())
	fmt.Printf("blockLen: %d, blocks: %d\n", blockLen, maxBlocks)
	fmt.Printf("search: restarts=%d passes=%d workers=%d seed=0x%x\n\n",
		*restartsFlag, *passesFlag, *workersFlag, *seedFlag)

	opts := []listsearch.SearchOption{
		listsearch.WithRestarts(*restartsFlag),
		listsearch.WithHillClimbPasses(*passesFlag),
		listsearch.WithWorkers(*workersFlag),
	}
	if *restartScoresFlag {
		opts = append(opts, listsearch.WithRestartScores())
	}

	totalScore := 0
	bestEver := -1
	var bestEverKey uint32

	for bi := 0; bi < maxBlocks; bi++ {
		block := f.Block(bi*blockLen, blockLen)

		blockOpts := append(opts, listsearch.WithSeed(*seedFlag+uint64(bi)))
		res, err := listsearch.Search(block, blockOpts...)
		if err != nil {
			fmt.Fprintf(os.Stderr, "search failed on block %d: %v\n", bi, err)
			os.Exit(1)
		}

		totalScore += res.Score
		if res.Score > bestEver {
			bestEver = res.Score
			bestEverKey = res.Key
		}

		fmt.Printf("block %4d  score=%d/%d  key=0x%08x\n", bi, res.Score, blockLen, res.Key)
		if res.RestartScores != nil {
			fmt.Printf("            restart scores: %v\n", res.RestartScores)
		}
	}

	avg := float64(totalScore) / float64(maxBlocks)
	fmt.Printf("\naverage score: %.2f/%d (%.2f%%)\n", avg, blockLen, 100*avg/float64(blockLen))
	fmt.Printf("best ever: %d/%d  key=0x%08x\n", bestEver, blockLen, bestEverKey)
}
