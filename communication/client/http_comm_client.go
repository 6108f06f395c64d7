package client

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"gobblet/communication"
	"gobblet/game"
)

const defaultTimeout = 10 * time.Second

type ClientCommunicator struct {
	serverURL string
	idul      string
	secret    string
	http      *http.Client
}

type Option func(cc *ClientCommunicator)

// WithHTTPClient replaces the default client (10s timeout).
func WithHTTPClient(hc *http.Client) Option {
	return func(cc *ClientCommunicator) {
		if hc != nil {
			cc.http = hc
		}
	}
}

// NewClientCommunicator initializes and returns a new ClientCommunicator that authenticates
// every request with idul and secret.
func NewClientCommunicator(serverURL, idul, secret string, options ...Option) *ClientCommunicator {
	if !strings.HasSuffix(serverURL, "/") {
		serverURL += "/"
	}
	cc := &ClientCommunicator{
		serverURL: serverURL,
		idul:      idul,
		secret:    secret,
		http:      &http.Client{Timeout: defaultTimeout},
	}
	for _, option := range options {
		option(cc)
	}
	return cc
}

func (cc *ClientCommunicator) ListGames(ctx context.Context) ([]communication.GameSummary, error) {
	var list communication.GameList
	if err := cc.do(ctx, http.MethodGet, communication.PathGames, nil, &list); err != nil {
		return nil, errors.Wrap(err, "list games")
	}
	return list.Games, nil
}

func (cc *ClientCommunicator) StartGame(ctx context.Context) (communication.GameSnapshot, error) {
	var snap communication.GameSnapshot
	if err := cc.do(ctx, http.MethodPost, communication.PathGame, nil, &snap); err != nil {
		return communication.GameSnapshot{}, errors.Wrap(err, "start game")
	}
	return snap, nil
}

func (cc *ClientCommunicator) FetchGame(ctx context.Context, id string) (communication.GameSnapshot, error) {
	var snap communication.GameSnapshot
	if err := cc.do(ctx, http.MethodGet, communication.PathGame+"/"+id, nil, &snap); err != nil {
		return communication.GameSnapshot{}, errors.Wrapf(err, "fetch game %s", id)
	}
	return snap, gameOver(snap)
}

func (cc *ClientCommunicator) PlayMove(ctx context.Context, id string, move game.Move) (communication.GameSnapshot, error) {
	ms, err := game.EncodeMove(move)
	if err != nil {
		return communication.GameSnapshot{}, err
	}
	req := communication.MoveRequest{ID: id, MoveSnapshot: ms}

	var snap communication.GameSnapshot
	if err := cc.do(ctx, http.MethodPut, communication.PathPlay, req, &snap); err != nil {
		return communication.GameSnapshot{}, errors.Wrapf(err, "play %s", move)
	}
	return snap, gameOver(snap)
}

func gameOver(snap communication.GameSnapshot) error {
	if snap.Winner != nil {
		return &communication.GameOverError{Winner: *snap.Winner}
	}
	return nil
}

// do sends one authenticated request and decodes a 200 body into out.
func (cc *ClientCommunicator) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return errors.Wrap(err, "encode request")
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, cc.serverURL+path, reader)
	if err != nil {
		return errors.Wrap(err, "build request")
	}
	req.SetBasicAuth(cc.idul, cc.secret)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := cc.http.Do(req)
	if err != nil {
		return errors.Wrapf(communication.ErrConnection, "%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()

	log.Debug().Str("method", method).Str("path", path).Int("status", resp.StatusCode).Msg("match server replied")

	switch resp.StatusCode {
	case http.StatusOK:
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			// A bad piece keeps its rule kind; anything else is a transport problem.
			if _, ok := game.KindOf(err); ok {
				return errors.Wrap(err, "decode response")
			}
			return errors.Wrapf(communication.ErrConnection, "decode response: %v", err)
		}
		return nil
	case http.StatusUnauthorized:
		return errors.Wrap(communication.ErrUnauthorized, readMessage(resp.Body))
	case http.StatusNotAcceptable:
		return errors.Wrap(communication.ErrRejected, readMessage(resp.Body))
	default:
		return errors.Wrapf(communication.ErrConnection, "unexpected status %d: %s", resp.StatusCode, readMessage(resp.Body))
	}
}

func readMessage(body io.Reader) string {
	var er communication.ErrorResponse
	if err := json.NewDecoder(body).Decode(&er); err != nil || er.Message == "" {
		return "no message"
	}
	return er.Message
}
