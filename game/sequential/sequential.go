// Package sequential provides the turn-based game plumbing shared by the concrete games:
// move generation through Logic, end-of-game ranking through Engine, and parallel playouts.
//
// Package sequential は逐次（ターン制）ゲームの共通部品を提供します。
package sequential

import (
	"errors"
	"fmt"
	"sort"
)

var (
	ErrEmptySlice = errors.New("empty slice")

	ErrNilLogicFunc  = errors.New("logic func is nil")
	ErrNilEngineFunc = errors.New("engine func is nil")

	ErrDuplicateAgent = errors.New("duplicate agent")

	ErrInvalidRankValue  = errors.New("rank must be a positive integer")
	ErrMinRankNotOne     = errors.New("ranks must start at 1")
	ErrRankNotContiguous = errors.New("ranks are not contiguous")

	ErrNoLegalMoves = errors.New("game is not ended but no legal moves are available")
)

type LegalMovesFunc[S any, M comparable] func(S) []M
type MoveFunc[S any, M comparable] func(S, M) (S, error)
type EqualFunc[S any] func(S, S) bool
type CurrentAgentFunc[S any, A comparable] func(S) A

type Logic[S any, M, A comparable] struct {
	LegalMovesFunc   LegalMovesFunc[S, M]
	MoveFunc         MoveFunc[S, M]
	EqualFunc        EqualFunc[S]
	CurrentAgentFunc CurrentAgentFunc[S, A]
}

func (l Logic[S, M, A]) Validate() error {
	if l.LegalMovesFunc == nil {
		return fmt.Errorf("%w: LegalMovesFunc", ErrNilLogicFunc)
	}
	if l.MoveFunc == nil {
		return fmt.Errorf("%w: MoveFunc", ErrNilLogicFunc)
	}
	if l.EqualFunc == nil {
		return fmt.Errorf("%w: EqualFunc", ErrNilLogicFunc)
	}
	if l.CurrentAgentFunc == nil {
		return fmt.Errorf("%w: CurrentAgentFunc", ErrNilLogicFunc)
	}
	return nil
}

// RankByAgent is empty (or nil) while the game is still running.
//
// ゲームが終了していない場合は、空あるいはnilにする。
type RankByAgent[A comparable] map[A]int

func NewRankByAgent[A comparable](agentsPerRank [][]A) (RankByAgent[A], error) {
	ranks := RankByAgent[A]{}
	rank := 1
	for _, agents := range agentsPerRank {
		if len(agents) == 0 {
			return nil, fmt.Errorf("%w: no agents for rank %d", ErrEmptySlice, rank)
		}

		for _, agent := range agents {
			if _, ok := ranks[agent]; ok {
				return nil, fmt.Errorf("%w: %v", ErrDuplicateAgent, agent)
			}
			ranks[agent] = rank
		}
		rank += len(agents)
	}
	return ranks, nil
}

func (r RankByAgent[A]) Validate() error {
	n := len(r)
	if n == 0 {
		return nil
	}

	ranks := make([]int, 0, n)
	for _, rank := range r {
		if rank < 1 {
			return fmt.Errorf("%w: got %d", ErrInvalidRankValue, rank)
		}
		ranks = append(ranks, rank)
	}
	sort.Ints(ranks)

	current := ranks[0]
	if current != 1 {
		return fmt.Errorf("%w: got %d", ErrMinRankNotOne, current)
	}
	expected := current + 1

	for _, rank := range ranks[1:] {
		// 同順の場合
		if rank == current {
			expected += 1
			// 順位が切り替わった場合
		} else if rank == expected {
			current = rank
			expected = rank + 1
		} else {
			return fmt.Errorf("%w: expected %d, got %d", ErrRankNotContiguous, expected, rank)
		}
	}
	return nil
}

type RankByAgentFunc[S any, A comparable] func(S) (RankByAgent[A], error)
type ResultScoreByAgent[A comparable] map[A]float32
type ResultScoreByAgentFunc[A comparable] func(RankByAgent[A]) (ResultScoreByAgent[A], error)

type Engine[S any, M, A comparable] struct {
	Logic                  Logic[S, M, A]
	RankByAgentFunc        RankByAgentFunc[S, A]
	ResultScoreByAgentFunc ResultScoreByAgentFunc[A]
	Agents                 []A
}

func (e Engine[S, M, A]) Validate() error {
	if err := e.Logic.Validate(); err != nil {
		return err
	}

	if e.RankByAgentFunc == nil {
		return fmt.Errorf("%w: RankByAgentFunc", ErrNilEngineFunc)
	}

	if e.ResultScoreByAgentFunc == nil {
		return fmt.Errorf("%w: ResultScoreByAgentFunc", ErrNilEngineFunc)
	}

	if len(e.Agents) == 0 {
		return fmt.Errorf("%w: Engine.Agents", ErrEmptySlice)
	}
	return nil
}

func (e Engine[S, M, A]) IsEnd(state S) (bool, error) {
	rankByAgent, err := e.RankByAgentFunc(state)
	return len(rankByAgent) != 0, err
}

// SetStandardResultScoreByAgentFunc maps ranks onto [0, 1]: first place gets 1, last place 0,
// and tied agents share the average of the places they occupy.
func (e *Engine[S, M, A]) SetStandardResultScoreByAgentFunc() {
	e.ResultScoreByAgentFunc = func(ranks RankByAgent[A]) (ResultScoreByAgent[A], error) {
		if err := ranks.Validate(); err != nil {
			return nil, err
		}

		n := len(ranks)
		scores := ResultScoreByAgent[A]{}

		// エージェントが1人だけなら 1.0 固定
		if n == 1 {
			for agent := range ranks {
				scores[agent] = 1.0
			}
			return scores, nil
		}

		counts := map[int]int{}
		for _, rank := range ranks {
			counts[rank]++
		}

		den := float32(n - 1)

		tieScore := func(r, k int) float32 {
			return 1.0 - float32(2*r+k-3)/(2.0*den)
		}

		for agent, r := range ranks {
			k := counts[r]
			scores[agent] = tieScore(r, k)
		}
		return scores, nil
	}
}

func (e Engine[S, M, A]) EvaluateResultScoreByAgent(state S) (ResultScoreByAgent[A], error) {
	rankByAgent, err := e.RankByAgentFunc(state)
	if err != nil {
		return nil, err
	}
	return e.ResultScoreByAgentFunc(rankByAgent)
}
