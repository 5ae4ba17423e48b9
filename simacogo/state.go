package simacogo

import "fmt"

// State is one position of a game. Every transition returns a new State and never
// touches the receiver.
//
// Stateはゲームの局面を表す値型です。遷移は常に新しいStateを返し、元のStateは変更しません。
type State struct {
	board      Board
	first      Piece
	turn       int
	lastColumn int
}

// NewInitState creates the empty board with first to move.
//
// NewInitStateは、firstが先手となる空の初期局面を作成します。
func NewInitState(first Piece) State {
	return State{
		first:      first,
		lastColumn: -1,
	}
}

// NewStateFromBoard builds a root state from an arbitrary grid. The turn number is the
// number of occupied cells and the next mover follows from its parity.
func NewStateFromBoard(board Board, first Piece) (State, error) {
	if !first.IsValid() {
		return State{}, fmt.Errorf("%w: first mover %d", ErrInvalidPiece, first)
	}
	if err := board.Validate(); err != nil {
		return State{}, err
	}
	return State{
		board:      board,
		first:      first,
		turn:       board.Count(),
		lastColumn: -1,
	}, nil
}

func (s State) Board() Board {
	return s.board
}

func (s State) FirstMover() Piece {
	return s.first
}

// Turn returns the number of pieces placed so far.
func (s State) Turn() int {
	return s.turn
}

// LastColumn returns the column dropped into to reach this state, or -1 for a root.
func (s State) LastColumn() int {
	return s.lastColumn
}

// Next returns the piece that will occupy the next dropped cell.
func (s State) Next() Piece {
	if s.turn%2 == 0 {
		return s.first
	}
	return s.first.Opposite()
}

// IsTerminal reports whether every cell is occupied.
func (s State) IsTerminal() bool {
	return s.board.IsFull()
}

func (s State) SpacesAvailable(col int) int {
	return s.board.SpacesAvailable(col)
}

func (s State) ColumnIsOpen(col int) bool {
	return s.board.ColumnIsOpen(col)
}

// DropInColumn returns the state reached by dropping the next piece into col. The piece
// lands in the lowest empty row. ok is false when col is full or off the board.
//
// DropInColumnは列colに駒を落とした後の局面を返します。列が満杯ならokはfalseです。
func (s State) DropInColumn(col int) (next State, ok bool) {
	spaces := s.board.SpacesAvailable(col)
	if spaces == 0 {
		return State{}, false
	}

	next = s
	next.board[spaces-1][col] = s.Next()
	next.turn = s.turn + 1
	next.lastColumn = col
	return next, true
}

// LegalColumns returns the open columns in ascending order.
func (s State) LegalColumns() []int {
	cols := make([]int, 0, Cols)
	for col := 0; col < Cols; col++ {
		if s.board.ColumnIsOpen(col) {
			cols = append(cols, col)
		}
	}
	return cols
}

// Successors returns one child per open column, in ascending column order.
// Full columns are skipped, so a terminal state has no successors.
//
// Successorsは空きのある列ごとに子局面を列番号の昇順で返します。
func (s State) Successors() []State {
	nexts := make([]State, 0, Cols)
	for col := 0; col < Cols; col++ {
		if next, ok := s.DropInColumn(col); ok {
			nexts = append(nexts, next)
		}
	}
	return nexts
}

func (s State) String() string {
	return s.board.String()
}
