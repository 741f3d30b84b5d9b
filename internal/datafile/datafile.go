// Package datafile provides read-only access to flat files of
// little-endian unsigned 16-bit values, the input format of the scan
// tools.
package datafile

import (
	"encoding/binary"
	"fmt"
	"os"

	"github.com/cespare/xxhash/v2"
	"github.com/edsrzf/mmap-go"

	lserrors "github.com/azizgokhannarin/imaginarylistsearch/errors"
)

// File is a memory-mapped data file of little-endian uint16 values.
//
// Thread Safety:
// - Len, Value, Block, and Checksum are safe for concurrent use
// - Close is NOT safe to call concurrently with reads
// - After Close returns, no methods may be called on the File
type File struct {
	mmap mmap.MMap
	data []byte
}

// Open opens path and memory-maps it read-only. The underlying file
// descriptor is closed before Open returns; per POSIX mmap(2) the mapping
// remains valid. A sequential read-ahead hint is applied on platforms
// that support it.
func Open(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open data file: %w", err)
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat data file: %w", err)
	}
	if stat.Size() < 2 {
		return nil, lserrors.ErrTruncatedData
	}

	mm, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return nil, fmt.Errorf("mmap data file: %w", err)
	}
	fadviseSequential(int(f.Fd()), 0, stat.Size())

	return &File{mmap: mm, data: []byte(mm)}, nil
}

// Len returns the number of values in the file. A trailing odd byte is
// ignored, matching the scan input convention.
func (f *File) Len() int {
	return len(f.data) / 2
}

// Value decodes the value at index i. The caller must guarantee
// 0 <= i < Len().
func (f *File) Value(i int) uint16 {
	return binary.LittleEndian.Uint16(f.data[2*i:])
}

// Block copies length consecutive values starting at start into a fresh
// slice. The caller must guarantee start+length <= Len().
func (f *File) Block(start, length int) []uint16 {
	out := make([]uint16, length)
	for i := range out {
		out[i] = f.Value(start + i)
	}
	return out
}

// Checksum returns the xxHash64 of the raw mapped bytes, including any
// trailing odd byte. Useful for correlating scan reports across runs on
// the same input.
func (f *File) Checksum() uint64 {
	return xxhash.Sum64(f.data)
}

// Close unmaps the file. Safe to call multiple times.
func (f *File) Close() error {
	if f.mmap == nil {
		return nil
	}
	err := f.mmap.Unmap()
	f.mmap = nil
	f.data = nil
	return err
}
