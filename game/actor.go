package game

import (
	"fmt"
	"maps"
	"math/rand/v2"
	"slices"

	"github.com/chewxy/math32"
	"github.com/sw965/omw/mathx/randx"
	"github.com/sw965/omw/slicesx"
)

// Policy maps each legal move to a non-negative weight.
//
// Policyは合法手それぞれに非負の重みを割り当てます。
type Policy[M comparable] map[M]float32

func (p Policy[M]) ValidateForLegalMoves(legalMoves []M, checkUnique bool) error {
	if checkUnique {
		if !slicesx.IsUnique(legalMoves) {
			return fmt.Errorf("legalMoves contains duplicates")
		}
	}

	if len(legalMoves) == 0 {
		return fmt.Errorf("legalMoves must not be empty")
	}

	if len(p) != len(legalMoves) {
		return fmt.Errorf("policy size (%d) does not match legal moves count (%d)", len(p), len(legalMoves))
	}

	var sum float32
	for _, m := range legalMoves {
		v, ok := p[m]
		if !ok {
			return fmt.Errorf("policy is missing weight for move: %v", m)
		}

		if v < 0 || math32.IsNaN(v) || math32.IsInf(v, 0) {
			return fmt.Errorf("invalid weight %f for move: %v", v, m)
		}
		sum += v
	}

	if sum == 0 {
		return fmt.Errorf("sum of policy weights is zero")
	}
	return nil
}

type SelectFunc[M, A comparable] func(Policy[M], A, *rand.Rand) (M, error)

// MaxSelectFunc picks one of the highest weighted moves. Ties are broken at random.
func MaxSelectFunc[M, A comparable](policy Policy[M], agent A, rng *rand.Rand) (M, error) {
	if len(policy) == 0 {
		var zero M
		return zero, fmt.Errorf("policy must not be empty")
	}

	keys := slices.Collect(maps.Keys(policy))
	max := policy[keys[0]]
	moves := []M{keys[0]}

	for _, k := range keys[1:] {
		v := policy[k]
		switch {
		case v > max:
			max = v
			moves = []M{k}
		case v == max:
			moves = append(moves, k)
		}
	}

	move, err := randx.Choice(moves, rng)
	if err != nil {
		var zero M
		return zero, err
	}
	return move, nil
}

func WeightedRandomSelectFunc[M, A comparable](policy Policy[M], agent A, rng *rand.Rand) (M, error) {
	n := len(policy)
	moves := make([]M, 0, n)
	ws := make([]float32, 0, n)
	for m, p := range policy {
		moves = append(moves, m)
		ws = append(ws, p)
	}

	idx, err := randx.IntByWeights(ws, rng)
	if err != nil {
		var zero M
		return zero, err
	}
	return moves[idx], nil
}

type ActorName string
