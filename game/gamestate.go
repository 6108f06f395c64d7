package game

// Player is one participant: display name, number and reserve stack.
type Player struct {
	Name  string
	ID    PlayerID
	Stack Stack
}

// GameState is the board plus both players. It is a plain value: copying a GameState copies
// the whole game, so separate matches never share anything.
type GameState struct {
	Board   Board
	Players [2]Player
}

// NewGameState returns an empty board and two players with empty stacks.
func NewGameState(name1, name2 string) GameState {
	return GameState{
		Players: [2]Player{
			{Name: name1, ID: Player1, Stack: NewStack(Player1)},
			{Name: name2, ID: Player2, Stack: NewStack(Player2)},
		},
	}
}

// Player returns the player numbered id. It panics if id is not 1 or 2.
func (gs *GameState) Player(id PlayerID) *Player {
	if !id.Valid() {
		panic("unknown player")
	}
	return &gs.Players[id.index()]
}

// PieceAt is the display query for a board cell.
func (gs GameState) PieceAt(c Coord) (Piece, bool) {
	return gs.Board.At(c)
}

// StackPieceAt is the display query for a reserve slot.
func (gs GameState) StackPieceAt(id PlayerID, slot int) (Piece, bool) {
	if !id.Valid() {
		return Piece{}, false
	}
	return gs.Players[id.index()].Stack.At(slot)
}

// Play validates m for the acting player and applies it in place. On error gs is left untouched.
func (gs *GameState) Play(acting PlayerID, m Move) error {
	next, err := Apply(*gs, acting, m)
	if err != nil {
		return err
	}
	*gs = next
	return nil
}
