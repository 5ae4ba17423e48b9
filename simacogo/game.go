// Package simacogo implements Simacogo: Connect-Four style drops on a 9x9 grid where
// neighbouring pieces of the same player score points. The game ends when the board is
// full and the higher score wins.
//
// Package simacogo は9x9の盤面で駒を列に落とし、隣接する自分の駒で得点を競うゲームです。
package simacogo

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidPiece     = errors.New("piece must be O or X")
	ErrNonPositivePlies = errors.New("plies must be positive")
	ErrColumnOutOfRange = errors.New("column out of range")
	ErrColumnFull       = errors.New("column is full")
	ErrGameOver         = errors.New("game is over")
)

const DefaultPlies = 4

// Config is fixed before a game starts and passed to every call that needs it.
type Config struct {
	FirstMover Piece
	Plies      int
	// Parallelism > 1 searches the root's subtrees concurrently.
	Parallelism int
}

func DefaultConfig() Config {
	return Config{
		FirstMover:  O,
		Plies:       DefaultPlies,
		Parallelism: 1,
	}
}

func (c Config) Validate() error {
	if !c.FirstMover.IsValid() {
		return fmt.Errorf("%w: first mover %d", ErrInvalidPiece, c.FirstMover)
	}
	if c.Plies < 1 {
		return fmt.Errorf("%w: got %d", ErrNonPositivePlies, c.Plies)
	}
	return nil
}

// NewGame returns the empty board with first to move.
func NewGame(first Piece) State {
	return NewInitState(first)
}

// ChooseMove applies a human move to the 0-indexed column.
func ChooseMove(state State, column int) (State, error) {
	if state.IsTerminal() {
		return State{}, ErrGameOver
	}
	return MoveFunc(state, column)
}

// SearchBestMove runs a plies-deep minimax for searcher and returns the chosen successor.
func SearchBestMove(state State, plies int, searcher Piece) (State, error) {
	cfg := DefaultConfig()
	cfg.FirstMover = state.FirstMover()
	cfg.Plies = plies
	return SearchBestMoveWith(state, cfg, searcher)
}

func SearchBestMoveWith(state State, cfg Config, searcher Piece) (State, error) {
	if err := cfg.Validate(); err != nil {
		return State{}, err
	}
	if !searcher.IsValid() {
		return State{}, fmt.Errorf("%w: searcher %d", ErrInvalidPiece, searcher)
	}
	if state.IsTerminal() {
		return State{}, ErrGameOver
	}

	result, err := NewSearcher(cfg.Parallelism).Search(state, cfg.Plies, searcher)
	if err != nil {
		return State{}, err
	}
	return result.Next, nil
}

func IsGameOver(state State) bool {
	return state.IsTerminal()
}

// FinalScore is the score reported for piece, with the same adjacency rules as Score.
func FinalScore(state State, piece Piece) float32 {
	return Score(piece, state)
}

// Winner returns the piece with the higher score. ok is false on a draw.
func Winner(state State) (winner Piece, ok bool) {
	o, x := Score(O, state), Score(X, state)
	switch {
	case o > x:
		return O, true
	case x > o:
		return X, true
	}
	return Empty, false
}
