package game

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrorKind names one of the ways a piece, a placement, a move or a snapshot can be rejected.
// An ErrorKind is itself an error so callers can write errors.Is(err, game.IllegalCover).
type ErrorKind int

const (
	InvalidPiece ErrorKind = iota + 1
	InvalidSlotIndex
	EmptySlot
	WrongOwner
	SlotOccupied
	InvalidCoordinate
	EmptyCell
	IllegalCover
	InvalidOrigin
	InvalidStackIndex
	NoGobbletInSlot
	InvalidOriginCell
	EmptyOriginCell
	NotYourGobblet
	InvalidDestination
	MalformedSnapshot
)

var kindNames = map[ErrorKind]string{
	InvalidPiece:       "invalid piece",
	InvalidSlotIndex:   "invalid slot index",
	EmptySlot:          "empty slot",
	WrongOwner:         "wrong owner",
	SlotOccupied:       "slot occupied",
	InvalidCoordinate:  "invalid coordinate",
	EmptyCell:          "empty cell",
	IllegalCover:       "illegal cover",
	InvalidOrigin:      "invalid origin",
	InvalidStackIndex:  "invalid stack index",
	NoGobbletInSlot:    "no gobblet in slot",
	InvalidOriginCell:  "invalid origin cell",
	EmptyOriginCell:    "empty origin cell",
	NotYourGobblet:     "not your gobblet",
	InvalidDestination: "invalid destination",
	MalformedSnapshot:  "malformed snapshot",
}

func (k ErrorKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

func (k ErrorKind) Error() string {
	return k.String()
}

// RuleError reports which field broke which constraint.
type RuleError struct {
	Kind   ErrorKind
	Field  string // e.g. "origin", "destination", "size", "joueurs[1].piles[2]"
	Reason string
	Err    error // underlying causes: snapshot problems, or the Stack/Board lookup behind an origin error
}

func newError(kind ErrorKind, field, format string, args ...any) *RuleError {
	return &RuleError{Kind: kind, Field: field, Reason: fmt.Sprintf(format, args...)}
}

func (e *RuleError) Error() string {
	msg := e.Kind.String()
	if e.Field != "" {
		msg += " (" + e.Field + ")"
	}
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap exposes the kind, and the causes when present, to errors.Is and errors.As.
func (e *RuleError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// KindOf returns the kind carried by err, if any.
func KindOf(err error) (ErrorKind, bool) {
	var re *RuleError
	if errors.As(err, &re) {
		return re.Kind, true
	}
	var kind ErrorKind
	if errors.As(err, &kind) {
		return kind, true
	}
	return 0, false
}
