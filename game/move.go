package game

import "fmt"

// Origin is where a moved piece comes from: a StackOrigin or a BoardOrigin.
type Origin interface {
	fmt.Stringer
	origin()
}

// StackOrigin draws the piece from one of the acting player's reserve slots.
type StackOrigin struct {
	Index int
}

// BoardOrigin lifts the acting player's visible piece off a board cell.
type BoardOrigin struct {
	Cell Coord
}

func (StackOrigin) origin() {}
func (BoardOrigin) origin() {}

func (o StackOrigin) String() string { return fmt.Sprintf("stack %d", o.Index) }
func (o BoardOrigin) String() string { return "cell " + o.Cell.String() }

// Move is a single proposed turn. It is never stored; it is validated then folded into a GameState.
type Move struct {
	Origin      Origin
	Destination Coord
}

func (m Move) String() string {
	if m.Origin == nil {
		return "<no origin> -> " + m.Destination.String()
	}
	return m.Origin.String() + " -> " + m.Destination.String()
}
