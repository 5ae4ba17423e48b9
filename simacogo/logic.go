package simacogo

import (
	"fmt"

	"github.com/pdruck/simacogo/game/sequential"
	"github.com/pdruck/simacogo/game/sequential/minimax"
)

// MoveFunc drops the next piece into the column move.
//
// MoveFuncは、列moveに手番の駒を落とした次の局面を返します。
func MoveFunc(state State, move int) (State, error) {
	if !isColumnInRange(move) {
		return State{}, fmt.Errorf("%w: %d", ErrColumnOutOfRange, move)
	}
	next, ok := state.DropInColumn(move)
	if !ok {
		return State{}, fmt.Errorf("%w: %d", ErrColumnFull, move)
	}
	return next, nil
}

// NewLogic creates the Logic of Simacogo. A move is a 0-indexed column.
//
// NewLogicは、Simacogoのための新しいLogicインスタンスを作成します。手は0始まりの列番号です。
func NewLogic() sequential.Logic[State, int, Piece] {
	return sequential.Logic[State, int, Piece]{
		LegalMovesFunc: State.LegalColumns,
		MoveFunc:       MoveFunc,
		EqualFunc: func(s1, s2 State) bool {
			return s1 == s2
		},
		CurrentAgentFunc: State.Next,
	}
}

// RankByAgentFunc ranks the players by final score once the board is full.
// Equal scores share first place. While the game is running it returns an empty map.
func RankByAgentFunc(state State) (sequential.RankByAgent[Piece], error) {
	if !state.IsTerminal() {
		return sequential.RankByAgent[Piece]{}, nil
	}

	winner, ok := Winner(state)
	if !ok {
		return sequential.RankByAgent[Piece]{O: 1, X: 1}, nil
	}
	return sequential.RankByAgent[Piece]{
		winner:            1,
		winner.Opposite(): 2,
	}, nil
}

func NewEngine() sequential.Engine[State, int, Piece] {
	engine := sequential.Engine[State, int, Piece]{
		Logic:           NewLogic(),
		RankByAgentFunc: RankByAgentFunc,
		Agents:          []Piece{O, X},
	}
	engine.SetStandardResultScoreByAgentFunc()
	return engine
}

// NewSearcher returns the minimax searcher over Simacogo states with Evaluate as the
// leaf heuristic.
func NewSearcher(parallelism int) minimax.Searcher[State, int, Piece] {
	return minimax.Searcher[State, int, Piece]{
		Logic:     NewLogic(),
		IsEndFunc: State.IsTerminal,
		EvalFunc: func(state State, piece Piece) float32 {
			return Evaluate(piece, state)
		},
		Parallelism: parallelism,
	}
}
