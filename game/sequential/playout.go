package sequential

import (
	"fmt"
	"math/rand/v2"
	"slices"

	"github.com/pdruck/simacogo/game"
	"github.com/sw965/omw/parallel"
	"github.com/sw965/omw/slicesx"
)

// Playouts plays every init state to the end with actor and returns the final states in the
// same order. One rng is used per worker, so len(rngs) is the degree of parallelism.
func (e *Engine[S, M, A]) Playouts(inits []S, actor Actor[S, M, A], rngs []*rand.Rand) ([]S, error) {
	if err := e.Validate(); err != nil {
		return nil, err
	}

	if err := actor.Validate(); err != nil {
		return nil, err
	}

	if len(rngs) == 0 {
		return nil, fmt.Errorf("%w: rngs", ErrEmptySlice)
	}

	n := len(inits)
	p := len(rngs)
	finals := make([]S, n)

	err := parallel.For(n, p, func(workerId, idx int) error {
		rng := rngs[workerId]
		state := inits[idx]
		for {
			isEnd, err := e.IsEnd(state)
			if err != nil {
				return err
			}

			if isEnd {
				break
			}

			legalMoves := e.Logic.LegalMovesFunc(state)
			if len(legalMoves) == 0 {
				return ErrNoLegalMoves
			}

			policy, err := actor.PolicyFunc(state, legalMoves)
			if err != nil {
				return err
			}

			// 一手毎に legalMoves のユニーク性をチェックするのは、計算コストの観点から見送る
			err = policy.ValidateForLegalMoves(legalMoves, false)
			if err != nil {
				return err
			}

			agent := e.Logic.CurrentAgentFunc(state)
			move, err := actor.SelectFunc(policy, agent, rng)
			if err != nil {
				return err
			}

			state, err = e.Logic.MoveFunc(state, move)
			if err != nil {
				return err
			}
		}
		finals[idx] = state
		return nil
	})
	return finals, err
}

// CrossPlayouter seats the actors in every permutation of the engine's agents and
// plays the init states once per permutation.
type CrossPlayouter[S any, M, A comparable] struct {
	engine     *Engine[S, M, A]
	inits      []S
	actors     []Actor[S, M, A]
	actorPerms [][]Actor[S, M, A]

	currentIdx       int
	ScoreByActorName map[game.ActorName]float32
	rngs             []*rand.Rand
}

func (e *Engine[S, M, A]) NewCrossPlayouter(inits []S, actors []Actor[S, M, A], rngs []*rand.Rand) (*CrossPlayouter[S, M, A], error) {
	agentsN := len(e.Agents)
	if len(actors) < agentsN {
		return nil, fmt.Errorf("insufficient actors: expected at least %d, got %d", agentsN, len(actors))
	}

	perms := slices.Collect(slicesx.Permutations(actors, agentsN))
	return &CrossPlayouter[S, M, A]{
		engine:           e,
		inits:            inits,
		actors:           actors,
		actorPerms:       perms,
		ScoreByActorName: make(map[game.ActorName]float32),
		rngs:             rngs,
	}, nil
}

// Len returns the number of seat permutations.
func (cp *CrossPlayouter[S, M, A]) Len() int {
	return len(cp.actorPerms)
}

// Next plays the next seat permutation. The third return value is false once every
// permutation has been played.
func (cp *CrossPlayouter[S, M, A]) Next() ([]S, map[A]game.ActorName, bool, error) {
	if cp.currentIdx >= len(cp.actorPerms) {
		return nil, nil, false, nil
	}

	actorPerm := cp.actorPerms[cp.currentIdx]
	cp.currentIdx++

	actorNameByAgent := map[A]game.ActorName{}
	policyFuncByAgent := map[A]PolicyFunc[S, M]{}
	selectFuncByAgent := map[A]game.SelectFunc[M, A]{}

	for i, agent := range cp.engine.Agents {
		actor := actorPerm[i]
		actorNameByAgent[agent] = actor.Name
		policyFuncByAgent[agent] = actor.PolicyFunc
		selectFuncByAgent[agent] = actor.SelectFunc
	}

	policyFunc := func(state S, legalMoves []M) (game.Policy[M], error) {
		agent := cp.engine.Logic.CurrentAgentFunc(state)
		return policyFuncByAgent[agent](state, legalMoves)
	}

	selectFunc := func(p game.Policy[M], agent A, rng *rand.Rand) (M, error) {
		return selectFuncByAgent[agent](p, agent, rng)
	}

	newActor := Actor[S, M, A]{
		PolicyFunc: policyFunc,
		SelectFunc: selectFunc,
	}

	finals, err := cp.engine.Playouts(cp.inits, newActor, cp.rngs)
	if err != nil {
		return nil, nil, false, err
	}

	for _, final := range finals {
		scores, err := cp.engine.EvaluateResultScoreByAgent(final)
		if err != nil {
			return nil, nil, false, err
		}
		for agent, score := range scores {
			actorName := actorNameByAgent[agent]
			cp.ScoreByActorName[actorName] += score
		}
	}
	return finals, actorNameByAgent, true, nil
}
