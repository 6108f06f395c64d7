package gamemaster

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/slices"

	"gobblet/communication"
	"gobblet/game"
	"gobblet/meta"
)

// GuestName is the name given to the second player of a local match.
const GuestName = "guest"

// DateLayout formats match creation dates in listings.
const DateLayout = "2006-01-02 15:04:05"

// ErrNotFound is returned for unknown matches and for matches owned by someone else.
var ErrNotFound = errors.New("match not found")

// match is one game in progress. reserves counts the pieces still hidden under each
// reserve slot; the next one revealed is one size smaller than the last.
type match struct {
	id       string
	owner    string
	created  time.Time
	state    game.GameState
	turn     game.PlayerID
	reserves [2][meta.STACK_SLOTS]int
}

func (m *match) snapshot() communication.GameSnapshot {
	board, players := m.state.Snapshot()
	return communication.GameSnapshot{
		ID:      m.id,
		Board:   board,
		Players: players,
		Turn:    m.turn,
	}
}

func (m *match) summary() communication.GameSummary {
	return communication.GameSummary{
		ID:      m.id,
		Date:    m.created.Format(DateLayout),
		Players: []string{m.state.Players[0].Name, m.state.Players[1].Name},
	}
}

// refill reveals the next piece of a reserve slot that was just played from.
func (m *match) refill(player game.PlayerID, slot int) {
	hidden := &m.reserves[player-1][slot]
	if *hidden == 0 {
		return
	}
	*hidden--
	piece := game.MustPiece(*hidden, player)
	if err := m.state.Player(player).Stack.Place(slot, piece); err != nil {
		// The slot was emptied by the move we just applied.
		panic(err)
	}
}

// Master keeps every match in memory. Each match is owned by the idul that created it.
// Winner detection is left out: matches never report a winner.
type Master struct {
	mutex   sync.Mutex
	matches map[string]*match
	now     func() time.Time
}

func NewMaster() *Master {
	return &Master{
		matches: make(map[string]*match),
		now:     time.Now,
	}
}

// Create starts a match for idul: empty board, every reserve slot showing a size 3 piece
// with the three smaller ones beneath it.
func (gm *Master) Create(idul string) communication.GameSnapshot {
	state := game.NewGameState(idul, GuestName)
	m := &match{
		id:      uuid.NewString(),
		owner:   idul,
		created: gm.now(),
		turn:    game.Player1,
	}
	for _, id := range []game.PlayerID{game.Player1, game.Player2} {
		for slot := 0; slot < meta.STACK_SLOTS; slot++ {
			if err := state.Player(id).Stack.Place(slot, game.MustPiece(meta.MAX_SIZE, id)); err != nil {
				panic(err)
			}
			m.reserves[id-1][slot] = meta.MAX_SIZE
		}
	}
	m.state = state

	gm.mutex.Lock()
	defer gm.mutex.Unlock()
	gm.matches[m.id] = m

	log.Info().Str("match", m.id).Str("idul", idul).Msg("match created")
	return m.snapshot()
}

// Get returns the current snapshot of a match owned by idul.
func (gm *Master) Get(idul, id string) (communication.GameSnapshot, error) {
	gm.mutex.Lock()
	defer gm.mutex.Unlock()

	m, err := gm.lookup(idul, id)
	if err != nil {
		return communication.GameSnapshot{}, err
	}
	return m.snapshot(), nil
}

// List returns idul's matches, most recent first.
func (gm *Master) List(idul string) []communication.GameSummary {
	gm.mutex.Lock()
	defer gm.mutex.Unlock()

	owned := []*match{}
	for _, m := range gm.matches {
		if m.owner == idul {
			owned = append(owned, m)
		}
	}
	slices.SortFunc(owned, func(a, b *match) int {
		if c := b.created.Compare(a.created); c != 0 {
			return c
		}
		return strings.Compare(a.id, b.id)
	})

	summaries := make([]communication.GameSummary, len(owned))
	for i, m := range owned {
		summaries[i] = m.summary()
	}
	return summaries
}

// Play applies ms for the player whose turn it is, then hands the turn over.
// A rejected move leaves the match unchanged.
func (gm *Master) Play(idul, id string, ms game.MoveSnapshot) (communication.GameSnapshot, error) {
	gm.mutex.Lock()
	defer gm.mutex.Unlock()

	m, err := gm.lookup(idul, id)
	if err != nil {
		return communication.GameSnapshot{}, err
	}
	move, err := game.DecodeMove(ms)
	if err != nil {
		return communication.GameSnapshot{}, err
	}
	next, err := game.Apply(m.state, m.turn, move)
	if err != nil {
		log.Debug().Str("match", id).Int("player", int(m.turn)).Str("move", move.String()).Err(err).Msg("move rejected")
		return communication.GameSnapshot{}, err
	}

	m.state = next
	if o, ok := move.Origin.(game.StackOrigin); ok {
		m.refill(m.turn, o.Index)
	}
	log.Info().Str("match", id).Int("player", int(m.turn)).Str("move", move.String()).Msg("move played")
	m.turn = m.turn.Opponent()

	return m.snapshot(), nil
}

func (gm *Master) lookup(idul, id string) (*match, error) {
	m, ok := gm.matches[id]
	if !ok || m.owner != idul {
		return nil, errors.Wrapf(ErrNotFound, "match %s", id)
	}
	return m, nil
}
