package game

import (
	"fmt"

	"gobblet/meta"
	"gobblet/utils"
)

// PlayerID identifies one of the two players.
type PlayerID int

const (
	Player1 PlayerID = 1
	Player2 PlayerID = 2
)

// Valid reports whether id is 1 or 2.
func (id PlayerID) Valid() bool {
	return id == Player1 || id == Player2
}

// Opponent returns the other player.
func (id PlayerID) Opponent() PlayerID {
	if id == Player1 {
		return Player2
	}
	return Player1
}

// index maps a player to its position in GameState.Players.
func (id PlayerID) index() int {
	return int(id) - 1
}

// Piece is a gobblet: a size class owned by a player. The zero Piece stands for "no piece".
// Pieces are compared by size only; the owner never takes part in ordering.
type Piece struct {
	size  int
	owner PlayerID
}

// NewPiece fails with InvalidPiece unless size is in [0,3] and owner is 1 or 2.
func NewPiece(size int, owner PlayerID) (Piece, error) {
	if !utils.InRange(size, meta.MIN_SIZE, meta.MAX_SIZE+1) {
		return Piece{}, newError(InvalidPiece, "size", "size must be between %d and %d, got %d", meta.MIN_SIZE, meta.MAX_SIZE, size)
	}
	if !owner.Valid() {
		return Piece{}, newError(InvalidPiece, "owner", "owner must be 1 or 2, got %d", owner)
	}
	return Piece{size: size, owner: owner}, nil
}

// MustPiece is NewPiece for known-good literals; it panics on invalid input.
func MustPiece(size int, owner PlayerID) Piece {
	p, err := NewPiece(size, owner)
	if err != nil {
		panic(err)
	}
	return p
}

func (p Piece) Size() int { return p.size }
func (p Piece) Owner() PlayerID { return p.owner }
func (p Piece) IsZero() bool { return p.owner == 0 }
func (p Piece) String() string { return fmt.Sprintf("[%d,%d]", p.owner, p.size) }

// Comparisons look at size only. Comparing with an empty Piece is undefined: the empty marker
// has size 0 like the smallest piece, so check IsZero first or use CanCover.
func (p Piece) Equal(o Piece) bool { return p.size == o.size }
func (p Piece) NotEqual(o Piece) bool { return !p.Equal(o) }
func (p Piece) Less(o Piece) bool { return p.size < o.size }
func (p Piece) Greater(o Piece) bool { return p.size > o.size }
func (p Piece) LessOrEqual(o Piece) bool { return !p.Greater(o) }
func (p Piece) GreaterOrEqual(o Piece) bool { return !p.Less(o) }

// CanCover reports whether candidate may be placed on a cell whose visible piece is occupant.
// An absent occupant accepts anything; otherwise candidate must be strictly larger.
func CanCover(candidate, occupant Piece) bool {
	if occupant.IsZero() {
		return true
	}
	return candidate.Greater(occupant)
}
