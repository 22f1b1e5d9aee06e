package repository

import (
	"context"
	"errors"

	"github.com/nestandloomco/intentra/domain"
)

var ErrSessionNotFound = errors.New("session not found")

// SessionRepository keeps sessions for the length of one visit. Get returns
// a copy: changes are only kept after Save.
type SessionRepository interface {
	Save(ctx context.Context, session *domain.Session) error
	Get(ctx context.Context, id string) (*domain.Session, error)
	Delete(ctx context.Context, id string) error
}
