package ports

import (
	"context"

	"github.com/munteanooo/telegram-restaurant-bot/pkg/domain"
)

// SessionStore defines the interface for persisting per-user sessions.
type SessionStore interface {
	// Save durably overwrites the session for the given user id.
	Save(ctx context.Context, userID string, session *domain.Session) error

	// Load retrieves the session for the given user id.
	// Returns domain.ErrSessionNotFound if the user has no session.
	Load(ctx context.Context, userID string) (*domain.Session, error)

	// Delete removes the session for the given user id.
	Delete(ctx context.Context, userID string) error

	// List returns the user ids with a stored session.
	List(ctx context.Context) ([]string, error)
}
