package game

import (
	"gobblet/meta"
	"gobblet/utils"
)

// Stack is a player's reserve: three slots, each showing at most one piece.
type Stack struct {
	owner PlayerID
	slots [meta.STACK_SLOTS]Piece
}

// NewStack returns an empty stack for owner.
func NewStack(owner PlayerID) Stack {
	return Stack{owner: owner}
}

func (s Stack) Owner() PlayerID { return s.owner }

// At returns the piece shown in slot i, for display. ok is false for an empty or out of range slot.
func (s Stack) At(i int) (piece Piece, ok bool) {
	if !utils.InRange(i, 0, meta.STACK_SLOTS) {
		return Piece{}, false
	}
	return s.slots[i], !s.slots[i].IsZero()
}

// Remove returns the piece in slot i. The slot is only cleared once the rules engine
// commits the move.
func (s Stack) Remove(i int) (Piece, error) {
	if !utils.InRange(i, 0, meta.STACK_SLOTS) {
		return Piece{}, newError(InvalidSlotIndex, "slot", "slot must be 0, 1 or 2, got %d", i)
	}
	if s.slots[i].IsZero() {
		return Piece{}, newError(EmptySlot, "slot", "slot %d holds no piece", i)
	}
	return s.slots[i], nil
}

// CanPlace checks that p may go into slot i. Stacks are only filled while building a state.
func (s Stack) CanPlace(i int, p Piece) error {
	if !utils.InRange(i, 0, meta.STACK_SLOTS) {
		return newError(InvalidSlotIndex, "slot", "slot must be 0, 1 or 2, got %d", i)
	}
	if p.Owner() != s.owner {
		return newError(WrongOwner, "slot", "piece belongs to player %d, stack to player %d", p.Owner(), s.owner)
	}
	if !s.slots[i].IsZero() {
		return newError(SlotOccupied, "slot", "slot %d already holds %s", i, s.slots[i])
	}
	return nil
}

// Place puts p into slot i after CanPlace accepts it.
func (s *Stack) Place(i int, p Piece) error {
	if err := s.CanPlace(i, p); err != nil {
		return err
	}
	s.slots[i] = p
	return nil
}

func (s *Stack) clear(i int) {
	s.slots[i] = Piece{}
}
