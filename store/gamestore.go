package store

import (
	"fmt"
	"sync"

	uuid "github.com/satori/go.uuid"

	"github.com/bluffgame/bluff/game"
)

// NewGameID constructs a game ID
func NewGameID() string {
	return uuid.NewV4().String()
}

// GameStore holds running game instances by ID
type GameStore interface {
	FindGame(gameID string) *game.Game
	AddGame(gameID string, g *game.Game) error
	RemoveGame(gameID string)
}

// InMemoryGameStore maps game id to game engine. The engine itself is a
// sequential state machine; the store's mutex serialises access to the
// map, not to individual games.
type InMemoryGameStore struct {
	mu    sync.Mutex
	games map[string]*game.Game
}

// NewInMemoryGameStore constructs an InMemoryGameStore
func NewInMemoryGameStore() *InMemoryGameStore {
	return &InMemoryGameStore{
		games: map[string]*game.Game{},
	}
}

func (s *InMemoryGameStore) FindGame(gameID string) *game.Game {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.games[gameID]
}

func (s *InMemoryGameStore) AddGame(gameID string, g *game.Game) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.games[gameID]; exists {
		return fmt.Errorf("game with id %s already exists", gameID)
	}

	s.games[gameID] = g
	return nil
}

func (s *InMemoryGameStore) RemoveGame(gameID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.games, gameID)
}
