package communication

import (
	"context"
	"fmt"

	"github.com/pkg/errors"

	"gobblet/game"
)

// Communicator is an interface that abstracts the match server.
type Communicator interface {
	ListGames(ctx context.Context) ([]GameSummary, error)
	StartGame(ctx context.Context) (GameSnapshot, error)
	FetchGame(ctx context.Context, id string) (GameSnapshot, error)
	PlayMove(ctx context.Context, id string, move game.Move) (GameSnapshot, error)
}

var (
	// ErrUnauthorized is returned for HTTP 401: bad idul or secret.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrRejected is returned for HTTP 406: the server refused the request.
	ErrRejected = errors.New("rejected by server")
	// ErrConnection covers network failures and unexpected status codes.
	ErrConnection = errors.New("connection error")
)

// GameOverError reports that the server named a winner. The final snapshot is still returned
// alongside it.
type GameOverError struct {
	Winner string
}

func (e *GameOverError) Error() string {
	return fmt.Sprintf("game over, winner: %s", e.Winner)
}
