package services

import (
	"context"

	"github.com/simhub/apiserver/internal/store"
	"github.com/simhub/apiserver/types"
)

// SessionRepository defines the auth/session operations backed by the user
// directory and the persisted current-user pointer.
type SessionRepository interface {
	Register(ctx context.Context, input store.RegisterInput) (types.User, error)
	Login(ctx context.Context, email, password string) (types.User, error)
	Logout(ctx context.Context) error
	Current() (types.User, bool)
}

// UserDirectory defines the read side of the user directory.
type UserDirectory interface {
	GetByID(id string) (types.User, error)
	GetByEmail(email string) (types.User, error)
}

// SessionService encapsulates authentication use-cases.
type SessionService struct {
	sessions SessionRepository
	users    UserDirectory
}

func NewSessionService(sessions SessionRepository, users UserDirectory) *SessionService {
	return &SessionService{sessions: sessions, users: users}
}

func (s *SessionService) Register(ctx context.Context, input store.RegisterInput) (types.User, error) {
	return s.sessions.Register(ctx, input)
}

func (s *SessionService) Login(ctx context.Context, email, password string) (types.User, error) {
	return s.sessions.Login(ctx, email, password)
}

func (s *SessionService) Logout(ctx context.Context) error {
	return s.sessions.Logout(ctx)
}

func (s *SessionService) Current() (types.User, bool) {
	return s.sessions.Current()
}

func (s *SessionService) GetUser(id string) (types.User, error) {
	return s.users.GetByID(id)
}
