package session_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/munteanooo/telegram-restaurant-bot/pkg/domain"
	"github.com/munteanooo/telegram-restaurant-bot/pkg/session"
)

// SlowStore simulates IO latency to provoke races if locking is missing.
type SlowStore struct {
	data map[string]*domain.Session
	mu   sync.Mutex
}

func (s *SlowStore) Save(ctx context.Context, userID string, sess *domain.Session) error {
	time.Sleep(10 * time.Millisecond) // Simulate IO
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.data == nil {
		s.data = make(map[string]*domain.Session)
	}
	s.data[userID] = sess.Clone()
	return nil
}

func (s *SlowStore) Load(ctx context.Context, userID string) (*domain.Session, error) {
	time.Sleep(10 * time.Millisecond) // Simulate IO
	s.mu.Lock()
	defer s.mu.Unlock()

	if sess, ok := s.data[userID]; ok {
		return sess.Clone(), nil
	}
	return nil, domain.ErrSessionNotFound
}

func (s *SlowStore) Delete(ctx context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, userID)
	return nil
}

func (s *SlowStore) List(ctx context.Context) ([]string, error) {
	return nil, nil
}

func TestManager_SerializesReadModifyWrite(t *testing.T) {
	// A rapid double-tap delivers two actions for the same user at once.
	// Without the per-user lock, both goroutines would load the same cart
	// and one increment would be lost (last write wins).
	store := &SlowStore{}
	manager := session.NewManager(store)
	ctx := context.Background()
	id := "double-tap"

	require.NoError(t, manager.Save(ctx, id, domain.NewSession()))

	var wg sync.WaitGroup
	writes := 10
	for i := 0; i < writes; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := manager.WithLock(ctx, id, func(ctx context.Context) error {
				s, err := store.Load(ctx, id)
				if err != nil {
					return err
				}
				s.Cart["pizza_margherita"]++
				return store.Save(ctx, id, s)
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	final, err := manager.Load(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, writes, final.Cart["pizza_margherita"], "no update may be dropped")
}

func TestManager_LoadOrStart(t *testing.T) {
	// Verify atomic creation under contention.
	store := &SlowStore{}
	manager := session.NewManager(store)
	ctx := context.Background()
	id := "atomic-init"

	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s, err := manager.LoadOrStart(ctx, id)
			assert.NoError(t, err)
			assert.NotNil(t, s)
		}()
	}
	wg.Wait()

	// Should exist, at the main screen, with an empty cart.
	s, err := manager.Load(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, domain.ScreenMain, s.Screen)
	assert.Empty(t, s.Cart)
}

func TestManager_LoadOrStart_PersistsBeforeReturning(t *testing.T) {
	store := &SlowStore{}
	manager := session.NewManager(store)
	ctx := context.Background()

	_, err := manager.LoadOrStart(ctx, "first-contact")
	require.NoError(t, err)

	// The fresh default session must already be in the store.
	_, err = store.Load(ctx, "first-contact")
	assert.NoError(t, err)
}
