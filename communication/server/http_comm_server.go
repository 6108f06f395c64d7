package server

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"gobblet/communication"
	"gobblet/game"
	"gobblet/gamemaster"
)

// BasePath is where the API is mounted, matching the public match server.
const (
	apiPrefix = "/gobblet/api"
	BasePath  = apiPrefix + "/"
)

type contextKey struct{}

// ServerCommunicator serves the match API on top of a gamemaster.Master.
type ServerCommunicator struct {
	master *gamemaster.Master
	secret string
	router *mux.Router
}

// NewServerCommunicator initializes and returns a new ServerCommunicator. Any idul is accepted
// as long as it comes with secret.
func NewServerCommunicator(master *gamemaster.Master, secret string) *ServerCommunicator {
	sc := &ServerCommunicator{
		master: master,
		secret: secret,
		router: mux.NewRouter(),
	}

	api := sc.router.PathPrefix(apiPrefix).Subrouter()
	api.Use(sc.authenticate)
	api.HandleFunc("/"+communication.PathGames, sc.handleListGames).Methods(http.MethodGet)
	api.HandleFunc("/"+communication.PathGame, sc.handleStartGame).Methods(http.MethodPost)
	api.HandleFunc("/"+communication.PathGame+"/{id}", sc.handleGetGame).Methods(http.MethodGet)
	api.HandleFunc("/"+communication.PathPlay, sc.handlePlay).Methods(http.MethodPut)
	return sc
}

func (sc *ServerCommunicator) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	sc.router.ServeHTTP(w, r)
}

// Start listens on addr until ctx is cancelled.
func (sc *ServerCommunicator) Start(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           sc,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", addr).Str("base", BasePath).Msg("match server listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return errors.Wrap(err, "listen")
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		log.Info().Msg("match server shutting down")
		return srv.Shutdown(shutdownCtx)
	}
}

func (sc *ServerCommunicator) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		idul, secret, ok := r.BasicAuth()
		if !ok || idul == "" || subtle.ConstantTimeCompare([]byte(secret), []byte(sc.secret)) != 1 {
			respondError(w, http.StatusUnauthorized, "invalid idul or secret")
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), contextKey{}, idul)))
	})
}

func idulFrom(r *http.Request) string {
	idul, _ := r.Context().Value(contextKey{}).(string)
	return idul
}

func (sc *ServerCommunicator) handleListGames(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, communication.GameList{Games: sc.master.List(idulFrom(r))})
}

func (sc *ServerCommunicator) handleStartGame(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, sc.master.Create(idulFrom(r)))
}

func (sc *ServerCommunicator) handleGetGame(w http.ResponseWriter, r *http.Request) {
	snap, err := sc.master.Get(idulFrom(r), mux.Vars(r)["id"])
	if err != nil {
		respondFailure(w, err)
		return
	}
	respondJSON(w, http.StatusOK, snap)
}

func (sc *ServerCommunicator) handlePlay(w http.ResponseWriter, r *http.Request) {
	var req communication.MoveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusNotAcceptable, "bad move request: "+err.Error())
		return
	}
	snap, err := sc.master.Play(idulFrom(r), req.ID, req.MoveSnapshot)
	if err != nil {
		respondFailure(w, err)
		return
	}
	respondJSON(w, http.StatusOK, snap)
}

// respondFailure maps gamemaster and rule errors onto status codes.
func respondFailure(w http.ResponseWriter, err error) {
	if errors.Is(err, gamemaster.ErrNotFound) {
		respondError(w, http.StatusNotFound, err.Error())
		return
	}
	if _, ok := game.KindOf(err); ok {
		respondError(w, http.StatusNotAcceptable, err.Error())
		return
	}
	log.Error().Err(err).Msg("unexpected failure")
	respondError(w, http.StatusInternalServerError, err.Error())
}

func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Warn().Err(err).Msg("failed to encode response")
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, communication.ErrorResponse{Message: message})
}
