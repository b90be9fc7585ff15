// SPDX-License-Identifier: MIT

package gridio

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/klauspost/compress/zstd"

	"github.com/katalvlaran/gridrect/grid"
)

// MaxCells bounds m×n so a corrupt header cannot trigger a huge allocation.
const MaxCells = 1 << 26

// maxToken bounds a single whitespace-separated token.
const maxToken = 64 * 1024

var zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}

// Read parses "m n" followed by m×n binary cells from r.
// zstd-compressed input is detected by its frame magic and decompressed on the fly.
// Every format error wraps grid.ErrInvalidArgument; I/O errors are returned wrapped as-is.
func Read(r io.Reader) (*grid.Grid, error) {
	br := bufio.NewReader(r)
	src := io.Reader(br)
	if head, _ := br.Peek(len(zstdMagic)); bytes.Equal(head, zstdMagic) {
		dec, err := zstd.NewReader(br, zstd.WithDecoderConcurrency(1), zstd.WithDecoderLowmem(true))
		if err != nil {
			return nil, fmt.Errorf("gridio: zstd decode: %w", err)
		}
		defer dec.Close()
		src = dec
	}

	sc := bufio.NewScanner(src)
	sc.Buffer(make([]byte, 0, 4096), maxToken)
	sc.Split(bufio.ScanWords)

	rows, err := readDim(sc, "rows")
	if err != nil {
		return nil, err
	}
	cols, err := readDim(sc, "cols")
	if err != nil {
		return nil, err
	}
	if rows > MaxCells/cols {
		return nil, fmt.Errorf("%d×%d exceeds %d cells: %w", rows, cols, MaxCells, ErrBadHeader)
	}

	total := rows * cols
	cells := make([]int, 0, total)
	for len(cells) < total {
		if !sc.Scan() {
			if err := sc.Err(); errors.Is(err, bufio.ErrTooLong) {
				return nil, fmt.Errorf("cell %d: %w", len(cells), ErrBadToken)
			} else if err != nil {
				return nil, fmt.Errorf("gridio: read cell %d: %w", len(cells), err)
			}
			return nil, fmt.Errorf("got %d of %d cells: %w", len(cells), total, ErrTruncated)
		}
		v, err := strconv.Atoi(sc.Text())
		if err != nil {
			return nil, fmt.Errorf("cell %d %q: %w", len(cells), sc.Text(), ErrBadToken)
		}
		cells = append(cells, v)
	}
	if sc.Scan() {
		return nil, fmt.Errorf("token %q: %w", sc.Text(), ErrTrailingData)
	}
	if err := sc.Err(); errors.Is(err, bufio.ErrTooLong) {
		return nil, fmt.Errorf("after last cell: %w", ErrTrailingData)
	} else if err != nil {
		return nil, fmt.Errorf("gridio: read: %w", err)
	}

	return grid.NewFromCells(rows, cols, cells)
}

// readDim scans one positive dimension.
func readDim(sc *bufio.Scanner, name string) (int, error) {
	if !sc.Scan() {
		if err := sc.Err(); errors.Is(err, bufio.ErrTooLong) {
			return 0, fmt.Errorf("%s: %w", name, ErrBadHeader)
		} else if err != nil {
			return 0, fmt.Errorf("gridio: read %s: %w", name, err)
		}
		return 0, fmt.Errorf("missing %s: %w", name, ErrBadHeader)
	}
	n, err := strconv.Atoi(sc.Text())
	if err != nil {
		return 0, fmt.Errorf("%s %q: %w", name, sc.Text(), ErrBadHeader)
	}
	if n <= 0 {
		return 0, fmt.Errorf("%s = %d: %w", name, n, ErrBadHeader)
	}

	return n, nil
}

// ReadFile opens path and parses it with Read.
func ReadFile(path string) (*grid.Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	g, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return g, nil
}
