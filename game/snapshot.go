package game

import (
	"encoding/json"
	"fmt"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"

	"gobblet/meta"
)

// PieceSnapshot is a wire cell: [] when empty, [owner, size] otherwise. A nil PieceSnapshot
// (JSON null) is missing, not empty, and never decodes.
type PieceSnapshot []int

func (ps *PieceSnapshot) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*ps = nil
		return nil
	}
	var values []int
	if err := json.Unmarshal(data, &values); err != nil {
		return &RuleError{Kind: MalformedSnapshot, Field: "piece", Reason: "a piece is [] or [owner, size] with integers", Err: err}
	}
	*ps = values
	return nil
}

// BoardSnapshot is 4 rows of 4 cells, top row first.
type BoardSnapshot [][]PieceSnapshot

// PlayerSnapshot is a player's name and the three reserve slots.
type PlayerSnapshot struct {
	Name  string          `json:"nom"`
	Stack []PieceSnapshot `json:"piles"`
}

func malformed(field, format string, args ...any) *RuleError {
	return newError(MalformedSnapshot, field, format, args...)
}

func snapshotOf(p Piece) PieceSnapshot {
	if p.IsZero() {
		return PieceSnapshot{}
	}
	return PieceSnapshot{int(p.Owner()), p.Size()}
}

// decodePiece returns the zero Piece for an empty marker.
func decodePiece(field string, ps PieceSnapshot) (Piece, error) {
	if ps == nil {
		return Piece{}, malformed(field, "a piece is [] or [owner, size], got null")
	}
	switch len(ps) {
	case 0:
		return Piece{}, nil
	case pairLen:
		p, err := NewPiece(ps[pairSize], PlayerID(ps[pairOwner]))
		if err != nil {
			return Piece{}, &RuleError{Kind: MalformedSnapshot, Field: field, Err: err}
		}
		return p, nil
	default:
		return Piece{}, malformed(field, "a piece is [] or [owner, size], got %v", []int(ps))
	}
}

// DecodeBoard rebuilds a Board from its snapshot. Any bad row or cell rejects the whole board.
func DecodeBoard(bs BoardSnapshot) (Board, error) {
	var b Board
	if len(bs) != meta.BOARD_SIZE {
		return Board{}, malformed("plateau", "expected %d rows, got %d", meta.BOARD_SIZE, len(bs))
	}
	for i, row := range bs {
		if len(row) != meta.BOARD_SIZE {
			return Board{}, malformed(fmt.Sprintf("plateau[%d]", i), "expected %d cells, got %d", meta.BOARD_SIZE, len(row))
		}
		for col, cell := range row {
			p, err := decodePiece(fmt.Sprintf("plateau[%d][%d]", i, col), cell)
			if err != nil {
				return Board{}, err
			}
			// Snapshot rows are stored as-is; storageRow maps public rows onto them.
			b.cells[i][col] = p
		}
	}
	return b, nil
}

// Snapshot encodes the board, top row first.
func (b Board) Snapshot() BoardSnapshot {
	bs := make(BoardSnapshot, meta.BOARD_SIZE)
	for i := range b.cells {
		bs[i] = make([]PieceSnapshot, meta.BOARD_SIZE)
		for col, p := range b.cells[i] {
			bs[i][col] = snapshotOf(p)
		}
	}
	return bs
}

// DecodePlayer rebuilds player id from its snapshot.
func DecodePlayer(id PlayerID, ps PlayerSnapshot) (Player, error) {
	field := fmt.Sprintf("joueurs[%d]", id.index())
	if !id.Valid() {
		return Player{}, malformed(field, "player number must be 1 or 2, got %d", id)
	}
	if ps.Name == "" {
		return Player{}, malformed(field+".nom", "name must not be empty")
	}
	if len(ps.Stack) != meta.STACK_SLOTS {
		return Player{}, malformed(field+".piles", "expected %d slots, got %d", meta.STACK_SLOTS, len(ps.Stack))
	}
	stack := NewStack(id)
	for i, slot := range ps.Stack {
		slotField := fmt.Sprintf("%s.piles[%d]", field, i)
		p, err := decodePiece(slotField, slot)
		if err != nil {
			return Player{}, err
		}
		if p.IsZero() {
			continue
		}
		if err := stack.Place(i, p); err != nil {
			return Player{}, &RuleError{Kind: MalformedSnapshot, Field: slotField, Err: err}
		}
	}
	return Player{Name: ps.Name, ID: id, Stack: stack}, nil
}

// Snapshot encodes the player's name and slots.
func (p Player) Snapshot() PlayerSnapshot {
	ps := PlayerSnapshot{Name: p.Name, Stack: make([]PieceSnapshot, meta.STACK_SLOTS)}
	for i, piece := range p.Stack.slots {
		ps.Stack[i] = snapshotOf(piece)
	}
	return ps
}

// DecodeGameState builds a GameState from a board and the two players (player 1 first).
// Every problem found is reported, and any problem rejects the whole snapshot.
func DecodeGameState(bs BoardSnapshot, players []PlayerSnapshot) (GameState, error) {
	var (
		gs   GameState
		errs *multierror.Error
		err  error
	)
	if gs.Board, err = DecodeBoard(bs); err != nil {
		errs = multierror.Append(errs, err)
	}
	if len(players) != len(gs.Players) {
		errs = multierror.Append(errs, malformed("joueurs", "expected %d players, got %d", len(gs.Players), len(players)))
	} else {
		for i, ps := range players {
			if gs.Players[i], err = DecodePlayer(PlayerID(i+1), ps); err != nil {
				errs = multierror.Append(errs, err)
			}
		}
	}
	if errs.ErrorOrNil() != nil {
		return GameState{}, &RuleError{Kind: MalformedSnapshot, Err: errs}
	}
	return gs, nil
}

// Snapshot encodes the board and both players.
func (gs GameState) Snapshot() (BoardSnapshot, []PlayerSnapshot) {
	return gs.Board.Snapshot(), []PlayerSnapshot{gs.Players[0].Snapshot(), gs.Players[1].Snapshot()}
}

// OriginSnapshot is the wire origin: a bare integer for a stack slot, [col, row] for a cell.
type OriginSnapshot []int

func (o OriginSnapshot) MarshalJSON() ([]byte, error) {
	if len(o) == 1 {
		return json.Marshal(o[0])
	}
	return json.Marshal([]int(o))
}

func (o *OriginSnapshot) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*o = nil
		return nil
	}
	var index int
	if err := json.Unmarshal(data, &index); err == nil {
		*o = OriginSnapshot{index}
		return nil
	}
	var pair []int
	if err := json.Unmarshal(data, &pair); err != nil {
		return &RuleError{Kind: InvalidOrigin, Field: "origine", Reason: "origin must be an integer or a list of integers", Err: err}
	}
	*o = pair
	return nil
}

// MoveSnapshot is a move as exchanged with the match server.
type MoveSnapshot struct {
	Origin      OriginSnapshot `json:"origine"`
	Destination []int          `json:"destination"`
}

// DecodeMove turns the wire shapes into a Move. Ranges are left to Validate.
func DecodeMove(ms MoveSnapshot) (Move, error) {
	var m Move
	switch len(ms.Origin) {
	case 1:
		m.Origin = StackOrigin{Index: ms.Origin[0]}
	case 2:
		m.Origin = BoardOrigin{Cell: Coord{Col: ms.Origin[0], Row: ms.Origin[1]}}
	default:
		return Move{}, newError(InvalidOrigin, "origine", "origin must be 1 or 2 integers, got %d", len(ms.Origin))
	}
	if len(ms.Destination) != 2 {
		return Move{}, newError(InvalidDestination, "destination", "destination must be 2 integers, got %d", len(ms.Destination))
	}
	m.Destination = Coord{Col: ms.Destination[0], Row: ms.Destination[1]}
	return m, nil
}

// EncodeMove is the inverse of DecodeMove.
func EncodeMove(m Move) (MoveSnapshot, error) {
	ms := MoveSnapshot{Destination: []int{m.Destination.Col, m.Destination.Row}}
	switch o := m.Origin.(type) {
	case StackOrigin:
		ms.Origin = OriginSnapshot{o.Index}
	case BoardOrigin:
		ms.Origin = OriginSnapshot{o.Cell.Col, o.Cell.Row}
	default:
		return MoveSnapshot{}, errors.Wrapf(InvalidOrigin, "cannot encode origin %T", m.Origin)
	}
	return ms, nil
}
