package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// newTestState builds a state from snapshots, failing the test on error.
func newTestState(t *testing.T, bs BoardSnapshot, stack1, stack2 []PieceSnapshot) GameState {
	t.Helper()
	gs, err := DecodeGameState(bs, []PlayerSnapshot{
		{Name: "alice", Stack: stack1},
		{Name: "bob", Stack: stack2},
	})
	require.NoError(t, err)
	return gs
}

func emptyBoard() BoardSnapshot {
	bs := make(BoardSnapshot, 4)
	for i := range bs {
		bs[i] = []PieceSnapshot{{}, {}, {}, {}}
	}
	return bs
}

// boardWith sets public cell (col,row) on an empty board snapshot.
func boardWith(cells map[Coord]PieceSnapshot) BoardSnapshot {
	bs := emptyBoard()
	for c, p := range cells {
		bs[3-c.Row][c.Col] = p
	}
	return bs
}

func fullStack(owner int) []PieceSnapshot {
	return []PieceSnapshot{{owner, 3}, {owner, 3}, {owner, 3}}
}

func TestApplyScenarios(t *testing.T) {
	t.Run("stack origin onto an empty cell", func(t *testing.T) {
		gs := newTestState(t, emptyBoard(), []PieceSnapshot{{1, 2}, {1, 3}, {}}, fullStack(2))

		next, err := Apply(gs, Player1, Move{Origin: StackOrigin{Index: 0}, Destination: Coord{0, 0}})
		require.NoError(t, err)

		got, ok := next.PieceAt(Coord{0, 0})
		require.True(t, ok)
		require.Equal(t, Player1, got.Owner())
		require.Equal(t, 2, got.Size())
		_, ok = next.StackPieceAt(Player1, 0)
		require.False(t, ok, "Stack slot should be empty after the move")

		_, ok = gs.PieceAt(Coord{0, 0})
		require.False(t, ok, "Input state should not change")
	})

	t.Run("board origin owned by the opponent", func(t *testing.T) {
		gs := newTestState(t, boardWith(map[Coord]PieceSnapshot{{1, 1}: {2, 1}}), fullStack(1), fullStack(2))

		_, err := Apply(gs, Player1, Move{Origin: BoardOrigin{Cell: Coord{1, 1}}, Destination: Coord{2, 2}})
		require.ErrorIs(t, err, NotYourGobblet)
	})

	t.Run("cannot cover a larger piece", func(t *testing.T) {
		gs := newTestState(t, boardWith(map[Coord]PieceSnapshot{
			{0, 0}: {1, 2},
			{2, 2}: {2, 3},
		}), fullStack(1), fullStack(2))

		_, err := Apply(gs, Player1, Move{Origin: BoardOrigin{Cell: Coord{0, 0}}, Destination: Coord{2, 2}})
		require.ErrorIs(t, err, IllegalCover)
	})

	t.Run("stack index out of range", func(t *testing.T) {
		gs := newTestState(t, emptyBoard(), fullStack(1), fullStack(2))

		_, err := Apply(gs, Player1, Move{Origin: StackOrigin{Index: 5}, Destination: Coord{0, 0}})
		require.ErrorIs(t, err, InvalidStackIndex)
	})

	t.Run("destination column out of range", func(t *testing.T) {
		gs := newTestState(t, emptyBoard(), fullStack(1), fullStack(2))

		_, err := Apply(gs, Player1, Move{Origin: StackOrigin{Index: 0}, Destination: Coord{4, 0}})
		require.ErrorIs(t, err, InvalidDestination)
	})
}

func TestApplyOriginErrors(t *testing.T) {
	gs := newTestState(t, boardWith(map[Coord]PieceSnapshot{{3, 0}: {1, 1}}), []PieceSnapshot{{1, 3}, {}, {1, 1}}, fullStack(2))

	cases := []struct {
		name string
		move Move
		kind ErrorKind
	}{
		{"nil origin", Move{Destination: Coord{0, 0}}, InvalidOrigin},
		{"empty stack slot", Move{Origin: StackOrigin{Index: 1}, Destination: Coord{0, 0}}, NoGobbletInSlot},
		{"negative stack index", Move{Origin: StackOrigin{Index: -1}, Destination: Coord{0, 0}}, InvalidStackIndex},
		{"origin cell outside board", Move{Origin: BoardOrigin{Cell: Coord{0, 9}}, Destination: Coord{0, 0}}, InvalidOriginCell},
		{"empty origin cell", Move{Origin: BoardOrigin{Cell: Coord{2, 2}}, Destination: Coord{0, 0}}, EmptyOriginCell},
		{"move onto its own cell", Move{Origin: BoardOrigin{Cell: Coord{3, 0}}, Destination: Coord{3, 0}}, IllegalCover},
		{"negative destination", Move{Origin: StackOrigin{Index: 0}, Destination: Coord{0, -1}}, InvalidDestination},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Apply(gs, Player1, tc.move)
			require.ErrorIs(t, err, tc.kind)
			kind, ok := KindOf(err)
			require.True(t, ok)
			require.Equal(t, tc.kind, kind)
		})
	}
}

func TestApplyOriginErrorsKeepLookupCause(t *testing.T) {
	gs := newTestState(t, boardWith(map[Coord]PieceSnapshot{{3, 0}: {1, 1}}), []PieceSnapshot{{1, 3}, {}, {1, 1}}, fullStack(2))

	_, err := Apply(gs, Player1, Move{Origin: StackOrigin{Index: 1}, Destination: Coord{0, 0}})
	require.ErrorIs(t, err, NoGobbletInSlot)
	require.ErrorIs(t, err, EmptySlot, "The stack lookup should stay visible")

	_, err = Apply(gs, Player1, Move{Origin: StackOrigin{Index: 3}, Destination: Coord{0, 0}})
	require.ErrorIs(t, err, InvalidSlotIndex)

	_, err = Apply(gs, Player1, Move{Origin: BoardOrigin{Cell: Coord{2, 2}}, Destination: Coord{0, 0}})
	require.ErrorIs(t, err, EmptyOriginCell)
	require.ErrorIs(t, err, EmptyCell, "The board lookup should stay visible")

	_, err = Apply(gs, Player1, Move{Origin: BoardOrigin{Cell: Coord{-1, 0}}, Destination: Coord{0, 0}})
	require.ErrorIs(t, err, InvalidOriginCell)
	require.ErrorIs(t, err, InvalidCoordinate)
}

func TestApplyBoardToBoard(t *testing.T) {
	gs := newTestState(t, boardWith(map[Coord]PieceSnapshot{
		{0, 0}: {1, 3},
		{1, 0}: {2, 2},
	}), fullStack(1), fullStack(2))

	next, err := Apply(gs, Player1, Move{Origin: BoardOrigin{Cell: Coord{0, 0}}, Destination: Coord{1, 0}})
	require.NoError(t, err)

	_, ok := next.PieceAt(Coord{0, 0})
	require.False(t, ok, "Origin cell should be empty after the move")
	got, _ := next.PieceAt(Coord{1, 0})
	require.Equal(t, MustPiece(3, Player1), got, "Destination should show the moved piece")
}

func TestApplyEqualSizeIsIllegal(t *testing.T) {
	gs := newTestState(t, boardWith(map[Coord]PieceSnapshot{{2, 3}: {1, 3}}), fullStack(1), fullStack(2))

	_, err := Apply(gs, Player1, Move{Origin: StackOrigin{Index: 0}, Destination: Coord{2, 3}})
	require.ErrorIs(t, err, IllegalCover, "A player cannot cover their own piece of equal size")
}

func TestPlayRejectionIsIdempotent(t *testing.T) {
	gs := newTestState(t, boardWith(map[Coord]PieceSnapshot{{2, 2}: {2, 3}}), fullStack(1), fullStack(2))
	before := gs
	illegal := Move{Origin: StackOrigin{Index: 0}, Destination: Coord{2, 2}}

	err1 := gs.Play(Player1, illegal)
	require.Equal(t, before, gs, "State should be unchanged after the first rejection")
	err2 := gs.Play(Player1, illegal)
	require.Equal(t, before, gs, "State should be unchanged after the second rejection")

	k1, _ := KindOf(err1)
	k2, _ := KindOf(err2)
	require.Equal(t, IllegalCover, k1)
	require.Equal(t, k1, k2)
}

func TestPlayAppliesInPlace(t *testing.T) {
	gs := newTestState(t, emptyBoard(), fullStack(1), fullStack(2))

	require.NoError(t, gs.Play(Player2, Move{Origin: StackOrigin{Index: 2}, Destination: Coord{3, 3}}))

	got, ok := gs.PieceAt(Coord{3, 3})
	require.True(t, ok)
	require.Equal(t, Player2, got.Owner())
	_, ok = gs.StackPieceAt(Player2, 2)
	require.False(t, ok)
	_, ok = gs.StackPieceAt(Player1, 2)
	require.True(t, ok, "The other player's stack should be untouched")
}

func TestValidateDoesNotMutate(t *testing.T) {
	gs := newTestState(t, emptyBoard(), fullStack(1), fullStack(2))
	before := gs

	p, err := Validate(gs, Player1, Move{Origin: StackOrigin{Index: 1}, Destination: Coord{1, 1}})
	require.NoError(t, err)
	require.Equal(t, MustPiece(3, Player1), p)
	require.Equal(t, before, gs)
}
