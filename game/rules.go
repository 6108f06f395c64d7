package game

// Validate checks m for the acting player against gs and returns the piece that would move.
// gs is not modified.
func Validate(gs GameState, acting PlayerID, m Move) (Piece, error) {
	candidate, err := resolveOrigin(gs, acting, m.Origin)
	if err != nil {
		return Piece{}, err
	}
	if !m.Destination.Valid() {
		return Piece{}, newError(InvalidDestination, "destination", "%s is outside the board", m.Destination)
	}
	// Moving a piece onto its own cell compares it with itself and fails here.
	occupant, _ := gs.Board.At(m.Destination)
	if !CanCover(candidate, occupant) {
		return Piece{}, newError(IllegalCover, "destination", "size %d cannot cover size %d at %s", candidate.Size(), occupant.Size(), m.Destination)
	}
	return candidate, nil
}

// Apply validates m and returns the state after it. The input state is never modified, so a
// rejected move leaves nothing half done.
func Apply(gs GameState, acting PlayerID, m Move) (GameState, error) {
	candidate, err := Validate(gs, acting, m)
	if err != nil {
		return gs, err
	}

	next := gs
	switch o := m.Origin.(type) {
	case StackOrigin:
		next.Player(acting).Stack.clear(o.Index)
	case BoardOrigin:
		next.Board.clear(o.Cell)
	}
	// Validate already guaranteed the cover, but never return a state with the piece in flight.
	if err := next.Board.Place(m.Destination, candidate); err != nil {
		return gs, err
	}
	return next, nil
}

// originKinds restates a Stack or Board lookup failure in terms of the move's origin.
var originKinds = map[ErrorKind]ErrorKind{
	InvalidSlotIndex:  InvalidStackIndex,
	EmptySlot:         NoGobbletInSlot,
	InvalidCoordinate: InvalidOriginCell,
	EmptyCell:         EmptyOriginCell,
}

func originError(err error) error {
	kind, _ := KindOf(err)
	if mapped, ok := originKinds[kind]; ok {
		return &RuleError{Kind: mapped, Field: "origin", Err: err}
	}
	return err
}

func resolveOrigin(gs GameState, acting PlayerID, origin Origin) (Piece, error) {
	if !acting.Valid() {
		return Piece{}, newError(InvalidOrigin, "player", "acting player must be 1 or 2, got %d", acting)
	}
	switch o := origin.(type) {
	case StackOrigin:
		p, err := gs.Players[acting.index()].Stack.Remove(o.Index)
		if err != nil {
			return Piece{}, originError(err)
		}
		return p, nil
	case BoardOrigin:
		p, err := gs.Board.Remove(o.Cell)
		if err != nil {
			return Piece{}, originError(err)
		}
		if p.Owner() != acting {
			return Piece{}, newError(NotYourGobblet, "origin", "piece at %s belongs to player %d", o.Cell, p.Owner())
		}
		return p, nil
	default:
		return Piece{}, newError(InvalidOrigin, "origin", "origin must be a stack index or a board cell")
	}
}
