package simacogo

import (
	"errors"
	"fmt"
	"strings"
)

const (
	Rows = 9
	Cols = 9
)

var (
	ErrInvalidCell     = errors.New("cell holds an unknown piece")
	ErrGravityViolated = errors.New("column has an empty cell below an occupied one")
)

// Board is the 9x9 grid. Row 0 is the top of every column and row Rows-1 is the floor.
//
// Boardは9x9の盤面です。0行目が各列の最上段、Rows-1行目が最下段です。
type Board [Rows][Cols]Piece

// IsFull checks if all cells on the board are occupied.
//
// IsFullは、盤面の全てのセルが埋まっているかを確認します。
func (b Board) IsFull() bool {
	for _, row := range b {
		for _, piece := range row {
			if piece == Empty {
				return false
			}
		}
	}
	return true
}

// Count returns the number of occupied cells.
func (b Board) Count() int {
	n := 0
	for _, row := range b {
		for _, piece := range row {
			if piece != Empty {
				n++
			}
		}
	}
	return n
}

func isColumnInRange(col int) bool {
	return col >= 0 && col < Cols
}

// SpacesAvailable returns how many empty cells remain in col. It is 0 for a full
// column and for a column index outside the board.
//
// SpacesAvailableは列colの空きセル数を返します。
func (b Board) SpacesAvailable(col int) int {
	if !isColumnInRange(col) {
		return 0
	}
	for row := 0; row < Rows; row++ {
		if b[row][col] != Empty {
			return row
		}
	}
	return Rows
}

// ColumnIsOpen reports whether the top cell of col is empty.
func (b Board) ColumnIsOpen(col int) bool {
	if !isColumnInRange(col) {
		return false
	}
	return b[0][col] == Empty
}

// Validate checks that every cell holds a known piece and that every column is stacked
// contiguously from the floor.
func (b Board) Validate() error {
	for col := 0; col < Cols; col++ {
		landed := false
		for row := 0; row < Rows; row++ {
			piece := b[row][col]
			switch {
			case piece != Empty && !piece.IsValid():
				return fmt.Errorf("%w: (%d, %d) = %d", ErrInvalidCell, row, col, piece)
			case piece != Empty:
				landed = true
			case landed:
				return fmt.Errorf("%w: column %d, row %d", ErrGravityViolated, col, row)
			}
		}
	}
	return nil
}

func (b Board) String() string {
	var sb strings.Builder
	for _, row := range b {
		for col, piece := range row {
			if col > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(piece.String())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
