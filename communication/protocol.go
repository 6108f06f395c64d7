package communication

import "gobblet/game"

// GameSnapshot is the state of a match as exchanged with the server.
type GameSnapshot struct {
	ID      string                `json:"id"`
	Board   game.BoardSnapshot    `json:"plateau"`
	Players []game.PlayerSnapshot `json:"joueurs"`
	Winner  *string               `json:"gagnant"`
	Turn    game.PlayerID         `json:"tour,omitempty"` // absent means player 1
}

// State decodes the board and players.
func (s GameSnapshot) State() (game.GameState, error) {
	return game.DecodeGameState(s.Board, s.Players)
}

// ActingPlayer is the player expected to move next.
func (s GameSnapshot) ActingPlayer() game.PlayerID {
	if s.Turn.Valid() {
		return s.Turn
	}
	return game.Player1
}

// GameSummary is one line of the match list.
type GameSummary struct {
	ID      string   `json:"id"`
	Date    string   `json:"date"`
	Players []string `json:"joueurs"`
	Winner  *string  `json:"gagnant"`
}

// GameList is the body of GET parties.
type GameList struct {
	Games []GameSummary `json:"parties"`
}

// MoveRequest is the body of PUT jouer.
type MoveRequest struct {
	ID string `json:"id"`
	game.MoveSnapshot
}

// ErrorResponse is the body of any non-200 answer.
type ErrorResponse struct {
	Message string `json:"message"`
}

// API paths, relative to the server base URL.
const (
	PathGames = "parties"
	PathGame  = "partie"
	PathPlay  = "jouer"
)
