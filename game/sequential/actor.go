package sequential

import (
	"errors"
	"fmt"

	"github.com/pdruck/simacogo/game"
)

var ErrNilActorFunc = errors.New("actor func is nil")

type PolicyFunc[S any, M comparable] func(S, []M) (game.Policy[M], error)

func UniformPolicyFunc[S any, M comparable](state S, legalMoves []M) (game.Policy[M], error) {
	n := len(legalMoves)
	if n == 0 {
		return nil, fmt.Errorf("%w: legalMoves", ErrEmptySlice)
	}

	p := 1.0 / float32(n)
	policy := game.Policy[M]{}
	for _, m := range legalMoves {
		policy[m] = p
	}
	return policy, nil
}

type Actor[S any, M, A comparable] struct {
	Name       game.ActorName
	PolicyFunc PolicyFunc[S, M]
	SelectFunc game.SelectFunc[M, A]
}

func NewRandomActor[S any, M, A comparable](name game.ActorName) Actor[S, M, A] {
	return Actor[S, M, A]{
		Name:       name,
		PolicyFunc: UniformPolicyFunc[S, M],
		SelectFunc: game.WeightedRandomSelectFunc[M, A],
	}
}

func (a Actor[S, M, A]) Validate() error {
	if a.PolicyFunc == nil {
		return fmt.Errorf("%w: PolicyFunc", ErrNilActorFunc)
	}
	if a.SelectFunc == nil {
		return fmt.Errorf("%w: SelectFunc", ErrNilActorFunc)
	}
	return nil
}
