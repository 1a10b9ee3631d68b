// Package storage keeps saved games in a BadgerDB database. A game is
// stored as its starting FEN plus the UCI actions played from it, so loading
// replays the game and rebuilds every piece of bookkeeping exactly.
package storage

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"

	"github.com/abarnes1/chess-sub000/internal/config"
	"github.com/abarnes1/chess-sub000/internal/engine"
	"github.com/abarnes1/chess-sub000/internal/errors"
)

const keyPrefix = "game/"

// SavedGame is the stored form of a game.
type SavedGame struct {
	ID              string    `json:"id"`
	StartFEN        string    `json:"start_fen"`
	Moves           []string  `json:"moves"`
	FEN             string    `json:"fen"`
	Result          string    `json:"result"`
	Ending          string    `json:"ending,omitempty"`
	DrawHalfMoves   int       `json:"draw_half_moves"`
	RepetitionLimit int       `json:"repetition_limit"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// Snapshot builds the stored form of s. The ID is left empty.
func Snapshot(s *engine.GameState) *SavedGame {
	history := s.History()
	moves := make([]string, len(history))
	for i, a := range history {
		moves[i] = a.UCI()
	}
	g := &SavedGame{
		StartFEN:        s.StartFEN(),
		Moves:           moves,
		FEN:             s.FEN(),
		Result:          s.Result(),
		DrawHalfMoves:   s.Rules().DrawHalfMoves,
		RepetitionLimit: s.Rules().RepetitionLimit,
	}
	if e := s.Ending(); e != nil {
		g.Ending = e.Message
	}
	return g
}

// Restore replays the saved game and returns the resulting state.
func (g *SavedGame) Restore() (*engine.GameState, error) {
	rules := engine.Rules{DrawHalfMoves: g.DrawHalfMoves, RepetitionLimit: g.RepetitionLimit}
	if rules.DrawHalfMoves == 0 || rules.RepetitionLimit == 0 {
		rules = engine.DefaultRules()
	}
	s, err := engine.FromFEN(g.StartFEN, engine.WithRules(rules))
	if err != nil {
		return nil, errors.Wrapf(err, "game %s", g.ID)
	}
	for i, m := range g.Moves {
		a, err := s.FindAction(m)
		if err != nil {
			return nil, &errors.ActionError{Err: err, Ply: i + 1, Action: m}
		}
		if err := s.ApplyAction(a); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Store wraps BadgerDB for saved games.
type Store struct {
	db *badger.DB
}

// Open opens (or creates) the database in dir.
func Open(dir string) (*Store, error) {
	return open(badger.DefaultOptions(dir))
}

// OpenInMemory opens a database that is discarded on Close.
func OpenInMemory() (*Store, error) {
	return open(badger.DefaultOptions("").WithInMemory(true))
}

// OpenConfig opens the database described by cfg.
func OpenConfig(cfg config.StorageConfig) (*Store, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.InMemory {
		return OpenInMemory()
	}
	return Open(cfg.Dir)
}

func open(opts badger.Options) (*Store, error) {
	opts.Logger = nil
	db, err := badger.Open(opts)
	if err != nil {
		return nil, errors.Wrap(err, "opening game store")
	}
	return &Store{db: db}, nil
}

// Close closes the database.
func (st *Store) Close() error {
	if st.db != nil {
		return st.db.Close()
	}
	return nil
}

func gameKey(id string) []byte {
	return []byte(keyPrefix + id)
}

// Save writes g, assigning a new ID when it has none.
func (st *Store) Save(g *SavedGame) error {
	now := time.Now().UTC()
	if g.ID == "" {
		g.ID = uuid.NewString()
	}
	if g.CreatedAt.IsZero() {
		g.CreatedAt = now
	}
	g.UpdatedAt = now

	data, err := json.Marshal(g)
	if err != nil {
		return err
	}
	return st.db.Update(func(txn *badger.Txn) error {
		return txn.Set(gameKey(g.ID), data)
	})
}

// SaveState saves s under id, or under a new ID when id is empty, and
// returns the stored record.
func (st *Store) SaveState(id string, s *engine.GameState) (*SavedGame, error) {
	g := Snapshot(s)
	if id != "" {
		prev, err := st.Load(id)
		if err != nil {
			return nil, err
		}
		g.ID = prev.ID
		g.CreatedAt = prev.CreatedAt
	}
	if err := st.Save(g); err != nil {
		return nil, err
	}
	return g, nil
}

// Load reads the game with the given ID.
func (st *Store) Load(id string) (*SavedGame, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("game %q: %w", id, errors.ErrGameNotFound)
	}
	g := &SavedGame{}
	err := st.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(gameKey(id))
		if err == badger.ErrKeyNotFound {
			return fmt.Errorf("game %s: %w", id, errors.ErrGameNotFound)
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, g)
		})
	})
	if err != nil {
		return nil, err
	}
	return g, nil
}

// LoadState reads a game and replays it.
func (st *Store) LoadState(id string) (*engine.GameState, error) {
	g, err := st.Load(id)
	if err != nil {
		return nil, err
	}
	return g.Restore()
}

// List returns every saved game, oldest first.
func (st *Store) List() ([]*SavedGame, error) {
	var games []*SavedGame
	err := st.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefix := []byte(keyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			g := &SavedGame{}
			if err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, g)
			}); err != nil {
				return err
			}
			games = append(games, g)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.SliceStable(games, func(i, j int) bool {
		return games[i].CreatedAt.Before(games[j].CreatedAt)
	})
	return games, nil
}

// Delete removes the game with the given ID.
func (st *Store) Delete(id string) error {
	return st.db.Update(func(txn *badger.Txn) error {
		if _, err := txn.Get(gameKey(id)); err == badger.ErrKeyNotFound {
			return fmt.Errorf("game %s: %w", id, errors.ErrGameNotFound)
		} else if err != nil {
			return err
		}
		return txn.Delete(gameKey(id))
	})
}
