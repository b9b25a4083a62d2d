package cart

import (
	"sync"

	"github.com/laundrypro/go-laundry-service/internal/app/entity"
)

// Store holds one cart per user session. Each cart is owned exclusively by
// its session; the lock only guards the map across sessions. Actions are
// applied in dispatch order.
type Store struct {
	mu    sync.RWMutex
	carts map[entity.UserID]entity.CartState
}

func NewStore() *Store {
	return &Store{
		carts: make(map[entity.UserID]entity.CartState),
	}
}

func (s *Store) Dispatch(userID entity.UserID, action Action) entity.CartState {
	s.mu.Lock()
	defer s.mu.Unlock()

	state := Apply(s.carts[userID], action)
	s.carts[userID] = state

	return state
}

func (s *Store) Get(userID entity.UserID) entity.CartState {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.carts[userID]
}

// Reset drops the whole session state, delivery metadata included.
// Used after a successful order submission.
func (s *Store) Reset(userID entity.UserID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.carts, userID)
}
