package simacogo

// Piece identifies which player owns a cell. Empty marks an unoccupied cell.
//
// Pieceはセルを所有するプレイヤーを表します。Emptyは空きセルです。
type Piece int

const (
	Empty Piece = iota
	O
	X
)

// Opposite returns the other player's piece. Empty has no opposite and is returned as is.
//
// Oppositeは相手の駒を返します。Emptyはそのまま返します。
func (p Piece) Opposite() Piece {
	switch p {
	case O:
		return X
	case X:
		return O
	}
	return p
}

func (p Piece) IsValid() bool {
	return p == O || p == X
}

func (p Piece) String() string {
	switch p {
	case O:
		return "O"
	case X:
		return "X"
	case Empty:
		return "."
	}
	return "?"
}
