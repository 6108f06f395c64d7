package player

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"gobblet/game"
)

func startState(t *testing.T) game.GameState {
	t.Helper()
	gs := game.NewGameState("alice", "bob")
	require.NoError(t, gs.Player(game.Player1).Stack.Place(0, game.MustPiece(2, game.Player1)))
	require.NoError(t, gs.Player(game.Player2).Stack.Place(0, game.MustPiece(3, game.Player2)))
	require.NoError(t, gs.Board.Place(game.Coord{Col: 1, Row: 1}, game.MustPiece(1, game.Player2)))
	return gs
}

func TestParseMove(t *testing.T) {
	t.Run("stack origin", func(t *testing.T) {
		m, err := ParseMove("0", "0,1")
		require.NoError(t, err)
		require.Equal(t, game.Move{Origin: game.StackOrigin{Index: 0}, Destination: game.Coord{Col: 0, Row: 1}}, m)
	})

	t.Run("board origin with spaces", func(t *testing.T) {
		m, err := ParseMove(" 2, 3", "0 ,1")
		require.NoError(t, err)
		require.Equal(t, game.Move{Origin: game.BoardOrigin{Cell: game.Coord{Col: 2, Row: 3}}, Destination: game.Coord{Col: 0, Row: 1}}, m)
	})

	t.Run("bad origins", func(t *testing.T) {
		for _, origin := range []string{"", "a", "1,2,3", "1,b"} {
			_, err := ParseMove(origin, "0,0")
			require.ErrorIs(t, err, game.InvalidOrigin, "origin %q", origin)
		}
	})

	t.Run("bad destinations", func(t *testing.T) {
		for _, destination := range []string{"", "1", "1,2,3", "x,y"} {
			_, err := ParseMove("0", destination)
			require.ErrorIs(t, err, game.InvalidDestination, "destination %q", destination)
		}
	})
}

func TestPrompterNextMove(t *testing.T) {
	t.Run("reads a legal move", func(t *testing.T) {
		var out bytes.Buffer
		p := NewPrompter(strings.NewReader("0\n2,2\n"), &out)
		state := startState(t)
		before := state

		m, err := p.NextMove(state, game.Player1)
		require.NoError(t, err)
		require.Equal(t, game.Move{Origin: game.StackOrigin{Index: 0}, Destination: game.Coord{Col: 2, Row: 2}}, m)
		require.Equal(t, before, state, "Prompting should not modify the state")
		require.Contains(t, out.String(), "stack number")
		require.Contains(t, out.String(), "place your gobblet")
	})

	t.Run("rejects an opponent's piece", func(t *testing.T) {
		p := NewPrompter(strings.NewReader("1,1\n0,0\n"), io.Discard)
		_, err := p.NextMove(startState(t), game.Player1)
		require.ErrorIs(t, err, game.NotYourGobblet)
	})

	t.Run("rejects an illegal cover", func(t *testing.T) {
		p := NewPrompter(strings.NewReader("0\n1,1\n"), io.Discard)
		m, err := p.NextMove(startState(t), game.Player2)
		require.NoError(t, err, "Player 2's size 3 covers the size 1 piece")
		require.Equal(t, game.Coord{Col: 1, Row: 1}, m.Destination)

		p = NewPrompter(strings.NewReader("1,1\n1,1\n"), io.Discard)
		_, err = p.NextMove(startState(t), game.Player2)
		require.ErrorIs(t, err, game.IllegalCover)
	})

	t.Run("last line without newline", func(t *testing.T) {
		p := NewPrompter(strings.NewReader("0\n3,3"), io.Discard)
		_, err := p.NextMove(startState(t), game.Player1)
		require.NoError(t, err)
	})

	t.Run("end of input", func(t *testing.T) {
		p := NewPrompter(strings.NewReader("0\n"), io.Discard)
		_, err := p.NextMove(startState(t), game.Player1)
		require.ErrorIs(t, err, io.EOF)
	})
}
