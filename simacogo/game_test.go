package simacogo_test

import (
	"errors"
	"testing"

	"github.com/pdruck/simacogo/simacogo"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name      string
		cfg       simacogo.Config
		wantErrIs error
	}{
		{name: "正常_デフォルト", cfg: simacogo.DefaultConfig()},
		{name: "正常_深さが盤面より大きい", cfg: simacogo.Config{FirstMover: simacogo.X, Plies: 100}},
		{name: "異常_深さ0", cfg: simacogo.Config{FirstMover: simacogo.O, Plies: 0}, wantErrIs: simacogo.ErrNonPositivePlies},
		{name: "異常_先手が空", cfg: simacogo.Config{FirstMover: simacogo.Empty, Plies: 2}, wantErrIs: simacogo.ErrInvalidPiece},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if tc.wantErrIs == nil {
				if err != nil {
					t.Errorf("予期せぬエラー: %v", err)
				}
				return
			}
			if !errors.Is(err, tc.wantErrIs) {
				t.Errorf("want err: %v, got: %v", tc.wantErrIs, err)
			}
		})
	}
}

func TestChooseMove(t *testing.T) {
	full := simacogo.NewGame(simacogo.O)
	for range simacogo.Rows {
		full = mustDrop(t, full, 6)
	}
	over, err := simacogo.NewStateFromBoard(checkerBoard(), simacogo.O)
	if err != nil {
		t.Fatalf("予期せぬエラー: %v", err)
	}

	tests := []struct {
		name      string
		state     simacogo.State
		column    int
		wantErrIs error
	}{
		{name: "正常_空の列", state: simacogo.NewGame(simacogo.O), column: 6},
		{name: "異常_満杯の列", state: full, column: 6, wantErrIs: simacogo.ErrColumnFull},
		{name: "異常_範囲外の列", state: full, column: simacogo.Cols, wantErrIs: simacogo.ErrColumnOutOfRange},
		{name: "異常_負の列", state: full, column: -1, wantErrIs: simacogo.ErrColumnOutOfRange},
		{name: "異常_終局", state: over, column: 0, wantErrIs: simacogo.ErrGameOver},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := simacogo.ChooseMove(tc.state, tc.column)
			if tc.wantErrIs != nil {
				if !errors.Is(err, tc.wantErrIs) {
					t.Fatalf("want err: %v, got: %v", tc.wantErrIs, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("予期せぬエラー: %v", err)
			}
			if got.LastColumn() != tc.column || got.Turn() != tc.state.Turn()+1 {
				t.Errorf("want column %d turn %d, got: %d, %d", tc.column, tc.state.Turn()+1, got.LastColumn(), got.Turn())
			}
		})
	}
}

func TestSearchBestMoveEmptyBoard(t *testing.T) {
	// 空の盤面ではどの列に落としても評価値は0なので、最も左の列が選ばれる
	got, err := simacogo.SearchBestMove(simacogo.NewGame(simacogo.O), 1, simacogo.O)
	if err != nil {
		t.Fatalf("予期せぬエラー: %v", err)
	}
	if got.LastColumn() != 0 {
		t.Errorf("want column 0, got: %d", got.LastColumn())
	}
	if got.Board()[simacogo.Rows-1][0] != simacogo.O || got.Turn() != 1 {
		t.Errorf("unexpected state:\n%v", got)
	}
}

func TestSearchBestMoveTieBreak(t *testing.T) {
	// O is on the floor of columns 2 and 6. Dropping O into 1, 2, 3, 5, 6 or 7 all
	// score one orthogonal pair, so the lowest of those columns must be picked.
	state := simacogo.NewGame(simacogo.O)
	state = mustDrop(t, state, 2, 0, 6, 8)

	got, err := simacogo.SearchBestMove(state, 1, simacogo.O)
	if err != nil {
		t.Fatalf("予期せぬエラー: %v", err)
	}
	if got.LastColumn() != 1 {
		t.Errorf("want column 1, got: %d\n%v", got.LastColumn(), got)
	}
}

func TestSearchBestMoveTakesPair(t *testing.T) {
	// X を (floor,4) の隣に置けば得点できる。2手読みでも最善は隣接させる手
	state := simacogo.NewGame(simacogo.O)
	state = mustDrop(t, state, 0, 4, 8)

	got, err := simacogo.SearchBestMoveWith(state, simacogo.Config{FirstMover: simacogo.O, Plies: 2, Parallelism: 3}, simacogo.X)
	if err != nil {
		t.Fatalf("予期せぬエラー: %v", err)
	}
	if col := got.LastColumn(); col < 3 || col > 5 {
		t.Errorf("want a column next to X, got: %d\n%v", col, got)
	}
	if simacogo.Score(simacogo.X, got) < 1 {
		t.Errorf("want X to score, got:\n%v", got)
	}
}

func TestSearchBestMoveDeepNearEnd(t *testing.T) {
	// 残り1マスの局面で深さ10を指定しても、終局判定で打ち切られる
	board := checkerBoard()
	board[0][5] = simacogo.Empty
	state, err := simacogo.NewStateFromBoard(board, simacogo.O)
	if err != nil {
		t.Fatalf("予期せぬエラー: %v", err)
	}

	got, err := simacogo.SearchBestMove(state, 10, state.Next())
	if err != nil {
		t.Fatalf("予期せぬエラー: %v", err)
	}
	if !simacogo.IsGameOver(got) || got.LastColumn() != 5 {
		t.Errorf("want the last drop into column 5, got: %d", got.LastColumn())
	}
}

func TestSearchBestMoveErrors(t *testing.T) {
	over, err := simacogo.NewStateFromBoard(checkerBoard(), simacogo.O)
	if err != nil {
		t.Fatalf("予期せぬエラー: %v", err)
	}

	tests := []struct {
		name      string
		state     simacogo.State
		plies     int
		searcher  simacogo.Piece
		wantErrIs error
	}{
		{name: "異常_深さ0", state: simacogo.NewGame(simacogo.O), plies: 0, searcher: simacogo.O, wantErrIs: simacogo.ErrNonPositivePlies},
		{name: "異常_探索者が空", state: simacogo.NewGame(simacogo.O), plies: 1, searcher: simacogo.Empty, wantErrIs: simacogo.ErrInvalidPiece},
		{name: "異常_終局", state: over, plies: 1, searcher: simacogo.O, wantErrIs: simacogo.ErrGameOver},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := simacogo.SearchBestMove(tc.state, tc.plies, tc.searcher)
			if !errors.Is(err, tc.wantErrIs) {
				t.Errorf("want err: %v, got: %v", tc.wantErrIs, err)
			}
		})
	}
}

func TestWinnerAndFinalScore(t *testing.T) {
	board := checkerBoard()
	// 最下段の左端を X にすると X の横の繋がりが増える
	board[simacogo.Rows-1][0] = simacogo.X
	state, err := simacogo.NewStateFromBoard(board, simacogo.O)
	if err != nil {
		t.Fatalf("予期せぬエラー: %v", err)
	}

	o, x := simacogo.FinalScore(state, simacogo.O), simacogo.FinalScore(state, simacogo.X)
	if x <= o {
		t.Fatalf("want X ahead, got O=%v X=%v", o, x)
	}
	winner, ok := simacogo.Winner(state)
	if !ok || winner != simacogo.X {
		t.Errorf("want winner X, got: %v, %t", winner, ok)
	}

	draw, err := simacogo.NewStateFromBoard(checkerBoard(), simacogo.O)
	if err != nil {
		t.Fatalf("予期せぬエラー: %v", err)
	}
	if _, ok := simacogo.Winner(draw); ok {
		t.Errorf("checker board should be a draw")
	}
}

func TestRankByAgentFunc(t *testing.T) {
	running, err := simacogo.RankByAgentFunc(simacogo.NewGame(simacogo.O))
	if err != nil || len(running) != 0 {
		t.Errorf("running game: want empty ranks, got: %v, %v", running, err)
	}

	draw, err := simacogo.NewStateFromBoard(checkerBoard(), simacogo.O)
	if err != nil {
		t.Fatalf("予期せぬエラー: %v", err)
	}
	ranks, err := simacogo.RankByAgentFunc(draw)
	if err != nil {
		t.Fatalf("予期せぬエラー: %v", err)
	}
	if ranks[simacogo.O] != 1 || ranks[simacogo.X] != 1 {
		t.Errorf("draw: want both first, got: %v", ranks)
	}
}
