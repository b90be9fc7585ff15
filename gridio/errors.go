// SPDX-License-Identifier: MIT

package gridio

import (
	"fmt"

	"github.com/katalvlaran/gridrect/grid"
)

// Sentinel errors for malformed input. All wrap grid.ErrInvalidArgument.
var (
	// ErrBadHeader indicates missing, non-numeric, non-positive or oversized dimensions.
	ErrBadHeader = fmt.Errorf("gridio: malformed dimension header: %w", grid.ErrInvalidArgument)
	// ErrBadToken indicates a cell token that is not an integer.
	ErrBadToken = fmt.Errorf("gridio: malformed cell token: %w", grid.ErrInvalidArgument)
	// ErrTruncated indicates the stream ended before m×n cells were read.
	ErrTruncated = fmt.Errorf("gridio: input ended before all cells were read: %w", grid.ErrInvalidArgument)
	// ErrTrailingData indicates tokens after the last cell.
	ErrTrailingData = fmt.Errorf("gridio: unexpected data after last cell: %w", grid.ErrInvalidArgument)
)
