// Package arena measures engines against each other by playing full Simacogo games in
// every seating order.
package arena

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"sort"

	uuid "github.com/nu7hatch/gouuid"
	"github.com/pdruck/simacogo/game"
	"github.com/pdruck/simacogo/game/sequential"
	"github.com/pdruck/simacogo/game/sequential/minimax"
	"github.com/pdruck/simacogo/simacogo"
	"github.com/sw965/omw/mathx/randx"
	"gonum.org/v1/gonum/stat"
)

var (
	ErrNonPositiveGames   = errors.New("games must be positive")
	ErrNonPositiveWorkers = errors.New("workers must be positive")
)

type Actor = sequential.Actor[simacogo.State, int, simacogo.Piece]

type Config struct {
	// Games played per seating order.
	Games   int
	Workers int
	First   simacogo.Piece
}

func (c Config) Validate() error {
	if c.Games < 1 {
		return fmt.Errorf("%w: got %d", ErrNonPositiveGames, c.Games)
	}
	if c.Workers < 1 {
		return fmt.Errorf("%w: got %d", ErrNonPositiveWorkers, c.Workers)
	}
	if !c.First.IsValid() {
		return fmt.Errorf("%w: first mover %d", simacogo.ErrInvalidPiece, c.First)
	}
	return nil
}

// Standing is the summary for one actor across all of its games.
type Standing struct {
	Name game.ActorName
	// Sum of the standard result scores: 1 for a win, 0.5 for a draw, 0 for a loss.
	ResultScore float32
	Games       int
	// Own final score minus the opponent's, averaged over the actor's games.
	MarginMean   float64
	MarginStdDev float64
}

type Report struct {
	MatchID   string
	Standings []Standing
}

func MinimaxActor(plies int) Actor {
	name := game.ActorName(fmt.Sprintf("minimax-%d", plies))
	return minimax.NewActor(name, simacogo.NewSearcher(1), plies)
}

func RandomActor() Actor {
	return sequential.NewRandomActor[simacogo.State, int, simacogo.Piece]("random")
}

// Run plays cfg.Games games for every seating order of actors. Standings are sorted by
// result score, best first.
func Run(cfg Config, actors []Actor) (Report, error) {
	if err := cfg.Validate(); err != nil {
		return Report{}, err
	}

	id, err := uuid.NewV4()
	if err != nil {
		return Report{}, err
	}

	inits := make([]simacogo.State, cfg.Games)
	for i := range inits {
		inits[i] = simacogo.NewGame(cfg.First)
	}

	rngs := make([]*rand.Rand, cfg.Workers)
	for i := range rngs {
		rngs[i] = randx.NewPCGFromGlobalSeed()
	}

	engine := simacogo.NewEngine()
	cp, err := engine.NewCrossPlayouter(inits, actors, rngs)
	if err != nil {
		return Report{}, err
	}

	margins := map[game.ActorName][]float64{}
	for {
		finals, nameByPiece, ok, err := cp.Next()
		if err != nil {
			return Report{}, err
		}
		if !ok {
			break
		}

		for _, final := range finals {
			for piece, name := range nameByPiece {
				margin := simacogo.Evaluate(piece, final)
				margins[name] = append(margins[name], float64(margin))
			}
		}
	}

	standings := make([]Standing, 0, len(margins))
	for name, ms := range margins {
		mean, std := stat.MeanStdDev(ms, nil)
		standings = append(standings, Standing{
			Name:         name,
			ResultScore:  cp.ScoreByActorName[name],
			Games:        len(ms),
			MarginMean:   mean,
			MarginStdDev: std,
		})
	}
	sort.Slice(standings, func(i, j int) bool {
		if standings[i].ResultScore != standings[j].ResultScore {
			return standings[i].ResultScore > standings[j].ResultScore
		}
		return standings[i].Name < standings[j].Name
	})

	return Report{MatchID: id.String(), Standings: standings}, nil
}
