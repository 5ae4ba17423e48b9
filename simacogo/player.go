package simacogo

import (
	"errors"
	"fmt"
)

var ErrNotYourTurn = errors.New("not this player's turn")

func checkTurn(state State, piece Piece) error {
	if state.Next() != piece {
		return fmt.Errorf("%w: %v to move, got %v", ErrNotYourTurn, state.Next(), piece)
	}
	return nil
}

// Player produces the next state on its turn. The column argument is only read by
// players that take their move from outside.
type Player interface {
	Piece() Piece
	Play(state State, column int) (State, error)
}

// HumanPlayer applies a column chosen by a person.
type HumanPlayer struct {
	piece Piece
}

func NewHumanPlayer(piece Piece) *HumanPlayer {
	return &HumanPlayer{piece: piece}
}

func (h *HumanPlayer) Piece() Piece {
	return h.piece
}

func (h *HumanPlayer) Play(state State, column int) (State, error) {
	if err := checkTurn(state, h.piece); err != nil {
		return State{}, err
	}
	return ChooseMove(state, column)
}

// ComputerPlayer searches for its move and ignores the column argument.
type ComputerPlayer struct {
	piece Piece
	cfg   Config
}

func NewComputerPlayer(piece Piece, cfg Config) (*ComputerPlayer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if !piece.IsValid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidPiece, piece)
	}
	return &ComputerPlayer{piece: piece, cfg: cfg}, nil
}

func (c *ComputerPlayer) Piece() Piece {
	return c.piece
}

func (c *ComputerPlayer) Plies() int {
	return c.cfg.Plies
}

func (c *ComputerPlayer) Play(state State, _ int) (State, error) {
	if err := checkTurn(state, c.piece); err != nil {
		return State{}, err
	}
	return SearchBestMoveWith(state, c.cfg, c.piece)
}
