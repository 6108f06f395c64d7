package player

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"gobblet/game"
)

// Prompter asks a human for moves on in and writes the prompts to out.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewPrompter creates a new Prompter instance.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// NextMove reads one move for acting and checks it against state, which it never modifies.
// io.EOF is returned as is when the input is exhausted.
func (p *Prompter) NextMove(state game.GameState, acting game.PlayerID) (game.Move, error) {
	fmt.Fprintln(p.out, "Which gobblet do you want to move:")
	originLine, err := p.ask("Give the stack number (p) or the board position (x,y): ")
	if err != nil {
		return game.Move{}, err
	}
	destinationLine, err := p.ask("Where do you want to place your gobblet (x,y): ")
	if err != nil {
		return game.Move{}, err
	}

	move, err := ParseMove(originLine, destinationLine)
	if err != nil {
		return game.Move{}, err
	}
	if _, err := game.Validate(state, acting, move); err != nil {
		return game.Move{}, err
	}
	return move, nil
}

func (p *Prompter) ask(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	line, err := p.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// ParseMove reads "p" or "x,y" as the origin and "x,y" as the destination.
func ParseMove(origin, destination string) (game.Move, error) {
	o, err := parseInts(origin)
	if err != nil || len(o) < 1 || len(o) > 2 {
		return game.Move{}, &game.RuleError{Kind: game.InvalidOrigin, Field: "origin", Reason: "origin must be an integer or 2 integers separated by a comma"}
	}
	d, err := parseInts(destination)
	if err != nil || len(d) != 2 {
		return game.Move{}, &game.RuleError{Kind: game.InvalidDestination, Field: "destination", Reason: "destination must be 2 integers separated by a comma"}
	}
	return game.DecodeMove(game.MoveSnapshot{Origin: o, Destination: d})
}

func parseInts(s string) ([]int, error) {
	fields := strings.Split(s, ",")
	values := make([]int, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, err
		}
		values[i] = v
	}
	return values, nil
}
