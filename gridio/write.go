// SPDX-License-Identifier: MIT

package gridio

import (
	"bufio"
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"

	"github.com/katalvlaran/gridrect/grid"
)

// ReportHeading introduces the rectangle list in WriteReport.
const ReportHeading = "List of rectangles [x, y, w, h]:"

// Write emits g in the input format: a "m n" header line, then one line per row.
func Write(w io.Writer, g *grid.Grid) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "%d %d\n", g.Rows(), g.Cols()); err != nil {
		return err
	}
	if _, err := bw.WriteString(g.String()); err != nil {
		return err
	}

	return bw.Flush()
}

// WriteCompressed emits g like Write, wrapped in a single zstd frame.
func WriteCompressed(w io.Writer, g *grid.Grid) error {
	enc, err := zstd.NewWriter(w,
		zstd.WithEncoderConcurrency(1),
		zstd.WithEncoderLevel(zstd.SpeedBetterCompression),
	)
	if err != nil {
		return fmt.Errorf("gridio: zstd encode: %w", err)
	}
	if err := Write(enc, g); err != nil {
		_ = enc.Close()
		return err
	}

	return enc.Close()
}

// WriteRects prints one "[x, y, w, h]" line per rectangle.
func WriteRects(w io.Writer, rects []grid.Rect) error {
	bw := bufio.NewWriter(w)
	for _, r := range rects {
		if _, err := fmt.Fprintln(bw, r); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// WriteReport prints ReportHeading followed by the rectangle list.
func WriteReport(w io.Writer, rects []grid.Rect) error {
	if _, err := fmt.Fprintln(w, ReportHeading); err != nil {
		return err
	}

	return WriteRects(w, rects)
}
