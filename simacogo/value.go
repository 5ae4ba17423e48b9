package simacogo

const (
	// Score for each same-piece neighbour above, below, left or right of a piece.
	NextToScore float32 = 1.0
	// Score for each same-piece neighbour on a diagonal.
	DiagonalScore float32 = 0.5
)

type neighbour struct {
	dRow, dCol int
	score      float32
}

var neighbours = [8]neighbour{
	{-1, 0, NextToScore},
	{-1, 1, DiagonalScore},
	{0, 1, NextToScore},
	{1, 1, DiagonalScore},
	{1, 0, NextToScore},
	{1, -1, DiagonalScore},
	{0, -1, NextToScore},
	{-1, -1, DiagonalScore},
}

// Score sums the adjacency contributions of every cell owned by piece. A pair of
// neighbouring pieces is seen from both of its cells, so an orthogonal pair is worth 2
// and a diagonal pair 1.
//
// Scoreはpieceが所有する全セルの隣接スコアを合計します。隣接ペアは両側から数えます。
func Score(piece Piece, state State) float32 {
	board := state.board
	var score float32
	for row := 0; row < Rows; row++ {
		for col := 0; col < Cols; col++ {
			if board[row][col] != piece || piece == Empty {
				continue
			}
			for _, n := range neighbours {
				r, c := row+n.dRow, col+n.dCol
				if r < 0 || r >= Rows || c < 0 || c >= Cols {
					continue
				}
				if board[r][c] == piece {
					score += n.score
				}
			}
		}
	}
	return score
}

// Evaluate is the leaf heuristic of the search: piece's score minus its opponent's.
//
// Evaluateは探索の葉の評価値で、自分のスコアから相手のスコアを引いた値です。
func Evaluate(piece Piece, state State) float32 {
	return Score(piece, state) - Score(piece.Opposite(), state)
}
