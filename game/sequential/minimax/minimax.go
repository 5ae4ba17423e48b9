// Package minimax implements an exhaustive depth-limited minimax search over a sequential.Logic.
//
// The searching agent maximizes at the root and every leaf is evaluated from its point of view,
// so the opponent's layers simply minimize the same value. No pruning is applied.
package minimax

import (
	"errors"
	"fmt"

	"github.com/chewxy/math32"
	"github.com/pdruck/simacogo/game"
	"github.com/pdruck/simacogo/game/sequential"
	"github.com/sw965/omw/parallel"
)

var (
	ErrNegativeDepth = errors.New("search depth must not be negative")
	ErrNilFunc       = errors.New("searcher func is nil")
)

// EvalFunc returns the leaf value of a state from the point of view of agent.
type EvalFunc[S any, A comparable] func(S, A) float32

type IsEndFunc[S any] func(S) bool

// Result is the outcome of searching one node. Move and Next are only meaningful when
// Found is true, which is never the case for a node evaluated as a leaf.
type Result[S any, M comparable] struct {
	Value float32
	Move  M
	Next  S
	Found bool
	Nodes int
}

type Searcher[S any, M, A comparable] struct {
	Logic     sequential.Logic[S, M, A]
	IsEndFunc IsEndFunc[S]
	EvalFunc  EvalFunc[S, A]

	// Parallelism > 1 fans the root's subtrees out over that many workers.
	Parallelism int
}

func (s Searcher[S, M, A]) Validate() error {
	if s.Logic.LegalMovesFunc == nil {
		return fmt.Errorf("%w: Logic.LegalMovesFunc", ErrNilFunc)
	}
	if s.Logic.MoveFunc == nil {
		return fmt.Errorf("%w: Logic.MoveFunc", ErrNilFunc)
	}
	if s.IsEndFunc == nil {
		return fmt.Errorf("%w: IsEndFunc", ErrNilFunc)
	}
	if s.EvalFunc == nil {
		return fmt.Errorf("%w: EvalFunc", ErrNilFunc)
	}
	return nil
}

// Search runs a top-level minimax for agent, which maximizes at the root.
func (s Searcher[S, M, A]) Search(state S, depth int, agent A) (Result[S, M], error) {
	if err := s.Validate(); err != nil {
		return Result[S, M]{}, err
	}
	if depth < 0 {
		return Result[S, M]{}, fmt.Errorf("%w: got %d", ErrNegativeDepth, depth)
	}
	if s.Parallelism > 1 {
		return s.parallelRoot(state, depth, agent)
	}
	return s.Minimax(state, depth, true, agent)
}

// Minimax evaluates state with depth plies remaining. Among equal child values the first
// one in legal-move order is kept.
func (s Searcher[S, M, A]) Minimax(state S, depth int, isMax bool, agent A) (Result[S, M], error) {
	if depth < 0 {
		return Result[S, M]{}, fmt.Errorf("%w: got %d", ErrNegativeDepth, depth)
	}

	if depth == 0 || s.IsEndFunc(state) {
		return Result[S, M]{Value: s.EvalFunc(state, agent), Nodes: 1}, nil
	}

	legalMoves := s.Logic.LegalMovesFunc(state)
	if len(legalMoves) == 0 {
		return Result[S, M]{}, sequential.ErrNoLegalMoves
	}

	best := newBest[S, M](isMax)
	for _, move := range legalMoves {
		next, err := s.Logic.MoveFunc(state, move)
		if err != nil {
			return Result[S, M]{}, err
		}

		child, err := s.Minimax(next, depth-1, !isMax, agent)
		if err != nil {
			return Result[S, M]{}, err
		}
		best.offer(child, move, next, isMax)
	}
	return best, nil
}

func (s Searcher[S, M, A]) parallelRoot(state S, depth int, agent A) (Result[S, M], error) {
	if depth == 0 || s.IsEndFunc(state) {
		return Result[S, M]{Value: s.EvalFunc(state, agent), Nodes: 1}, nil
	}

	legalMoves := s.Logic.LegalMovesFunc(state)
	n := len(legalMoves)
	if n == 0 {
		return Result[S, M]{}, sequential.ErrNoLegalMoves
	}

	p := min(s.Parallelism, n)
	nexts := make([]S, n)
	children := make([]Result[S, M], n)

	err := parallel.For(n, p, func(workerId, idx int) error {
		next, err := s.Logic.MoveFunc(state, legalMoves[idx])
		if err != nil {
			return err
		}

		child, err := s.Minimax(next, depth-1, false, agent)
		if err != nil {
			return err
		}
		nexts[idx] = next
		children[idx] = child
		return nil
	})
	if err != nil {
		return Result[S, M]{}, err
	}

	// 到着順ではなく合法手の順に集約する
	best := newBest[S, M](true)
	for i, child := range children {
		best.offer(child, legalMoves[i], nexts[i], true)
	}
	return best, nil
}

func newBest[S any, M comparable](isMax bool) Result[S, M] {
	if isMax {
		return Result[S, M]{Value: math32.Inf(-1), Nodes: 1}
	}
	return Result[S, M]{Value: math32.Inf(1), Nodes: 1}
}

func (r *Result[S, M]) offer(child Result[S, M], move M, next S, isMax bool) {
	r.Nodes += child.Nodes
	better := child.Value < r.Value
	if isMax {
		better = child.Value > r.Value
	}
	if !better {
		return
	}
	r.Value = child.Value
	r.Move = move
	r.Next = next
	r.Found = true
}

// NewActor wraps a searcher into an actor that always plays the move found by a
// depth-ply search.
func NewActor[S any, M, A comparable](name game.ActorName, searcher Searcher[S, M, A], depth int) sequential.Actor[S, M, A] {
	policyFunc := func(state S, legalMoves []M) (game.Policy[M], error) {
		agent := searcher.Logic.CurrentAgentFunc(state)
		result, err := searcher.Search(state, depth, agent)
		if err != nil {
			return nil, err
		}
		if !result.Found {
			return nil, sequential.ErrNoLegalMoves
		}

		policy := game.Policy[M]{}
		for _, m := range legalMoves {
			policy[m] = 0
		}
		policy[result.Move] = 1
		return policy, nil
	}

	return sequential.Actor[S, M, A]{
		Name:       name,
		PolicyFunc: policyFunc,
		SelectFunc: game.MaxSelectFunc[M, A],
	}
}
