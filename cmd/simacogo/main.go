// Command simacogo plays Simacogo between a person at the console and the minimax engine.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"runtime"

	uuid "github.com/nu7hatch/gouuid"
	"github.com/pdruck/simacogo/arena"
	"github.com/pdruck/simacogo/simacogo"
	"github.com/pkg/profile"
)

type Flags struct {
	Plies      int
	First      string
	Workers    int
	CPUProfile string
	Arena      int
}

func parseFlags() Flags {
	var f Flags
	flag.IntVar(&f.Plies, "plies", 0, "The search depth of the computer, 1-10. 0 to be asked at start")
	flag.StringVar(&f.First, "first", "human", "Who moves first: human | computer")
	flag.IntVar(&f.Workers, "workers", runtime.NumCPU(), "Number of workers used by the search")
	flag.StringVar(&f.CPUProfile, "cpuprofile", "", "Write a CPU profile into this directory")
	flag.IntVar(&f.Arena, "arena", 0, "Play this many engine games per seating instead of an interactive game")
	flag.Parse()

	if f.First != "human" && f.First != "computer" {
		flag.PrintDefaults()
		log.Fatalf("simacogo: invalid -first %q", f.First)
	}
	if f.Plies < 0 || f.Plies > maxPlies {
		flag.PrintDefaults()
		log.Fatalf("simacogo: -plies must be between 0 and %d, got %d", maxPlies, f.Plies)
	}
	if f.Workers < 1 {
		f.Workers = 1
	}
	return f
}

func main() {
	f := parseFlags()

	if f.CPUProfile != "" {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(f.CPUProfile)).Stop()
	}

	if f.Arena > 0 {
		if err := runArena(f, os.Stdout); err != nil {
			log.Fatalf("simacogo: arena: %v", err)
		}
		return
	}

	console := NewConsole(os.Stdin, os.Stdout)
	if err := play(f, console); err != nil {
		log.Fatalf("simacogo: %v", err)
	}
}

func play(f Flags, console *Console) error {
	id, err := uuid.NewV4()
	if err != nil {
		return err
	}

	plies := f.Plies
	if plies == 0 {
		plies, err = console.ReadPlies()
		if err != nil {
			return err
		}
	}

	// The human always plays O, the computer X.
	human, computer := simacogo.O, simacogo.X
	cfg := simacogo.Config{FirstMover: human, Plies: plies, Parallelism: f.Workers}
	if f.First == "computer" {
		cfg.FirstMover = computer
	}

	computerPlayer, err := simacogo.NewComputerPlayer(computer, cfg)
	if err != nil {
		return err
	}
	players := map[simacogo.Piece]simacogo.Player{
		human:    simacogo.NewHumanPlayer(human),
		computer: computerPlayer,
	}

	log.Printf("game %s: started, %d-ply, %v moves first", id, plies, cfg.FirstMover)
	fmt.Fprintln(console.out, "S I M A C O G O")
	fmt.Fprintln(console.out)

	state := simacogo.NewGame(cfg.FirstMover)
	console.PrintState(state, human, computer)

	for !simacogo.IsGameOver(state) {
		player := players[state.Next()]

		column := -1
		if player.Piece() == human {
			column, err = console.ReadColumn(state)
			if errors.Is(err, errQuit) || errors.Is(err, io.EOF) {
				fmt.Fprintln(console.out)
				log.Printf("game %s: quit at turn %d", id, state.Turn())
				break
			}
			if err != nil {
				return err
			}
		}

		state, err = player.Play(state, column)
		if err != nil {
			return err
		}
		if player.Piece() == computer {
			log.Printf("game %s: computer dropped into column %d", id, state.LastColumn()+1)
		}
		console.PrintState(state, human, computer)
	}

	console.PrintResult(state, plies, human, computer)
	return nil
}

func runArena(f Flags, out io.Writer) error {
	plies := f.Plies
	if plies == 0 {
		plies = simacogo.DefaultPlies
	}

	cfg := arena.Config{Games: f.Arena, Workers: f.Workers, First: simacogo.O}
	actors := []arena.Actor{arena.MinimaxActor(plies), arena.RandomActor()}
	report, err := arena.Run(cfg, actors)
	if err != nil {
		return err
	}

	log.Printf("match %s: finished", report.MatchID)
	for _, s := range report.Standings {
		fmt.Fprintf(out, "%-12s games=%-4d result=%-6.1f margin=%.2f±%.2f\n",
			s.Name, s.Games, s.ResultScore, s.MarginMean, s.MarginStdDev)
	}
	return nil
}
