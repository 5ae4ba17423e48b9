package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pdruck/simacogo/simacogo"
)

const (
	minPlies = 1
	maxPlies = 10
)

// errQuit is returned by ReadColumn when the player types QUIT.
var errQuit = errors.New("quit")

type Console struct {
	in  *bufio.Scanner
	out io.Writer
}

func NewConsole(in io.Reader, out io.Writer) *Console {
	return &Console{in: bufio.NewScanner(in), out: out}
}

func (c *Console) readLine(prompt string) (string, error) {
	fmt.Fprint(c.out, prompt)
	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(c.in.Text()), nil
}

// ReadPlies asks until it gets a search depth between 1 and 10.
func (c *Console) ReadPlies() (int, error) {
	for {
		line, err := c.readLine(fmt.Sprintf("Please enter the number of plies the computer should search (%d-%d): ", minPlies, maxPlies))
		if err != nil {
			return 0, err
		}
		if line == "" {
			continue
		}

		plies, err := strconv.Atoi(line)
		if err != nil {
			fmt.Fprintln(c.out, "Please enter a digit as the number of plies.")
			continue
		}
		if plies < minPlies || plies > maxPlies {
			fmt.Fprintf(c.out, "Please enter a number between %d and %d as the number of plies.\n", minPlies, maxPlies)
			continue
		}
		fmt.Fprintln(c.out)
		return plies, nil
	}
}

// ReadColumn asks until it gets an open column and returns it 0-indexed.
// The player types columns 1-9 as printed above the board.
func (c *Console) ReadColumn(state simacogo.State) (int, error) {
	for {
		line, err := c.readLine("Enter a column # (QUIT to exit game): ")
		if err != nil {
			return 0, err
		}
		if line == "" {
			continue
		}
		if strings.EqualFold(line, "QUIT") {
			return 0, errQuit
		}

		col, err := strconv.Atoi(line)
		if err != nil || col < 1 || col > simacogo.Cols {
			fmt.Fprintf(c.out, "Please enter a digit (1-%d) as the column #.\n", simacogo.Cols)
			continue
		}
		if !state.ColumnIsOpen(col - 1) {
			fmt.Fprintln(c.out, "Column is full.")
			continue
		}
		fmt.Fprintln(c.out)
		return col - 1, nil
	}
}

func (c *Console) PrintState(state simacogo.State, human, computer simacogo.Piece) {
	c.PrintScores(state, human, computer)
	header := make([]string, simacogo.Cols)
	for i := range header {
		header[i] = strconv.Itoa(i + 1)
	}
	fmt.Fprintln(c.out, strings.Join(header, " "))
	fmt.Fprintln(c.out, state)
}

func (c *Console) PrintScores(state simacogo.State, human, computer simacogo.Piece) {
	fmt.Fprintf(c.out, "Human Score:\t%d\n", int(simacogo.FinalScore(state, human)))
	fmt.Fprintf(c.out, "Computer Score:\t%d\n", int(simacogo.FinalScore(state, computer)))
}

func (c *Console) PrintResult(state simacogo.State, plies int, human, computer simacogo.Piece) {
	fmt.Fprintln(c.out, "-----------------Game Over-----------------")
	fmt.Fprintf(c.out, "                  (%d-ply)\n", plies)
	c.PrintScores(state, human, computer)

	label := "DRAW"
	if winner, ok := simacogo.Winner(state); ok {
		label = "WINNER: Computer"
		if winner == human {
			label = "WINNER: Human"
		}
	}
	line := "+" + strings.Repeat("-", len(label)+12) + "+"
	fmt.Fprintln(c.out, line)
	fmt.Fprintf(c.out, "|      %s      |\n", label)
	fmt.Fprintln(c.out, line)
}
