// Package engine runs the interactive turn loop: it renders the match, asks the human for a
// move and sends it to the match server until the input ends or the server names a winner.
package engine

import (
	"context"
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"gobblet/communication"
	"gobblet/display"
	"gobblet/game"
)

// MoveSource supplies the next move for acting. It must not modify state.
type MoveSource interface {
	NextMove(state game.GameState, acting game.PlayerID) (game.Move, error)
}

type Engine struct {
	comm  communication.Communicator
	moves MoveSource
	out   io.Writer
}

func NewEngine(comm communication.Communicator, moves MoveSource, out io.Writer) *Engine {
	return &Engine{comm: comm, moves: moves, out: out}
}

// Run starts a new match and plays it. It returns nil once the input is exhausted or the
// match is over.
func (e *Engine) Run(ctx context.Context) error {
	snap, err := e.comm.StartGame(ctx)
	if err != nil {
		return errors.Wrap(err, "could not start a match")
	}
	log.Info().Str("id", snap.ID).Msg("match started")
	return e.Play(ctx, snap)
}

// Play continues the match described by snap.
func (e *Engine) Play(ctx context.Context, snap communication.GameSnapshot) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		state, err := snap.State()
		if err != nil {
			return errors.Wrapf(err, "match %s", snap.ID)
		}
		fmt.Fprintln(e.out, display.FormatGame(state))

		acting := snap.ActingPlayer()
		move, err := e.moves.NextMove(state, acting)
		if errors.Is(err, io.EOF) {
			log.Info().Str("id", snap.ID).Msg("input closed, leaving the match")
			return nil
		}
		if _, ok := game.KindOf(err); ok {
			log.Debug().Err(err).Int("player", int(acting)).Msg("move refused locally")
			fmt.Fprintln(e.out, err)
			continue
		}
		if err != nil {
			return err
		}

		next, err := e.comm.PlayMove(ctx, snap.ID, move)
		var over *communication.GameOverError
		switch {
		case errors.As(err, &over):
			if final, err := next.State(); err == nil {
				fmt.Fprintln(e.out, display.FormatGame(final))
			}
			fmt.Fprintf(e.out, "The winner is %s\n", over.Winner)
			log.Info().Str("id", snap.ID).Str("winner", over.Winner).Msg("match over")
			return nil
		case errors.Is(err, communication.ErrRejected):
			log.Debug().Err(err).Str("move", move.String()).Msg("move refused by server")
			fmt.Fprintln(e.out, err)
			continue
		case err != nil:
			return err
		}
		snap = next
	}
}
