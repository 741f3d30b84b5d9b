// Gendata writes synthetic data files of little-endian uint16 values for
// exercising listscan.
//
// Usage:
//
//	go run ./cmd/gendata -out values.bin -values 65536 -mode skewed
//
// Flags:
//
//	-out       Output path (required)
//	-values    Number of uint16 values to write (default: 65536)
//	-seed      Generator seed (default: 0x1234)
//	-mode      uniform or skewed (default: uniform)
//	-distinct  Distinct values used in skewed mode (default: 8)
//
// In uniform mode every value is derived independently from the seed and
// its index, so block scores should plateau near the binomial expectation
// for random data. In skewed mode values are drawn from a small distinct
// set, giving the key search real structure to capture.
package main

import (
	"bufio"
	"encoding/binary"
	"flag"
	"fmt"
	"os"

	"github.com/spaolacci/murmur3"
)

// distinctSetSalt separates the derivation of the skewed-mode value set
// from the per-index pick stream, so the two do not correlate.
const distinctSetSalt = 0x9E3779B9

// valueAt derives the i-th value of the stream for a seed. Murmur3 keeps
// the stream reproducible across runs and platforms.
func valueAt(seed uint32, i uint64) uint16 {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], i)
	return uint16(murmur3.Sum32WithSeed(buf[:], seed))
}

func main() {
	outFlag := flag.String("out", "", "output path")
	valuesFlag := flag.Int("values", 65536, "number of uint16 values to write")
	seedFlag := flag.Uint("seed", 0x1234, "generator seed")
	modeFlag := flag.String("mode", "uniform", "uniform or skewed")
	distinctFlag := flag.Int("distinct", 8, "distinct values used in skewed mode")
	flag.Parse()

	if *outFlag == "" {
		fmt.Fprintln(os.Stderr, "missing required -out flag")
		flag.Usage()
		os.Exit(1)
	}
	if *valuesFlag <= 0 {
		fmt.Fprintf(os.Stderr, "invalid -values %d: must be positive\n", *valuesFlag)
		os.Exit(1)
	}

	seed := uint32(*seedFlag)

	var pool []uint16
	switch *modeFlag {
	case "uniform":
	case "skewed":
		if *distinctFlag <= 0 {
			fmt.Fprintf(os.Stderr, "invalid -distinct %d: must be positive\n", *distinctFlag)
			os.Exit(1)
		}
		pool = make([]uint16, *distinctFlag)
		for i := range pool {
			pool[i] = valueAt(seed^distinctSetSalt, uint64(i))
		}
	default:
		fmt.Fprintf(os.Stderr, "unknown -mode %q (use 'uniform' or 'skewed')\n", *modeFlag)
		os.Exit(1)
	}

	out, err := os.Create(*outFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "create %s: %v\n", *outFlag, err)
		os.Exit(2)
	}

	w := bufio.NewWriter(out)
	var le [2]byte
	for i := 0; i < *valuesFlag; i++ {
		v := valueAt(seed, uint64(i))
		if pool != nil {
			v = pool[int(v)%len(pool)]
		}
		binary.LittleEndian.PutUint16(le[:], v)
		if _, err := w.Write(le[:]); err != nil {
			fmt.Fprintf(os.Stderr, "write %s: %v\n", *outFlag, err)
			os.Exit(2)
		}
	}
	if err := w.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "flush %s: %v\n", *outFlag, err)
		os.Exit(2)
	}
	if err := out.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "close %s: %v\n", *outFlag, err)
		os.Exit(2)
	}

	fmt.Printf("wrote %d values (%d bytes) to %s [mode=%s seed=0x%x]\n",
		*valuesFlag, *valuesFlag*2, *outFlag, *modeFlag, seed)
}
