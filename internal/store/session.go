package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/simhub/apiserver/internal/kvstore"
	"github.com/simhub/apiserver/types"
	"golang.org/x/crypto/bcrypt"
)

const defaultUserTitle = "Simulation Enthusiast"

// RegisterInput is the data needed to create an account.
type RegisterInput struct {
	Email    string
	Name     string
	Password string
}

// SessionStore maintains the identity of the currently authenticated user,
// backed by the user directory and a persisted current-user pointer. The
// session has two states: anonymous and authenticated; successful Register
// or Login transitions to authenticated, Logout back to anonymous.
type SessionStore struct {
	kv    *kvstore.KV
	users *UserStore

	mu      sync.RWMutex
	current *types.User
	loaded  bool
}

func NewSessionStore(kv *kvstore.KV, users *UserStore) *SessionStore {
	return &SessionStore{kv: kv, users: users}
}

// Initialize restores the session from the persisted current-user pointer.
// Absent or undecodable pointers leave the session anonymous.
func (s *SessionStore) Initialize(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.loaded {
		return nil
	}

	raw, ok, err := s.kv.Get(ctx, KeyCurrentUser)
	if err != nil {
		return fmt.Errorf("load %s: %w", KeyCurrentUser, err)
	}
	if ok {
		var user types.User
		if err := json.Unmarshal(raw, &user); err == nil && user.ID != "" {
			s.current = &user
		}
	}
	s.loaded = true
	return nil
}

// Register creates an account. It fails with ErrEmailTaken when the email
// already exists in the directory (exact match), leaving the directory
// untouched. On success the new user becomes the active session.
func (s *SessionStore) Register(ctx context.Context, input RegisterInput) (types.User, error) {
	if _, err := s.users.GetByEmail(input.Email); err == nil {
		return types.User{}, ErrEmailTaken
	} else if !errors.Is(err, ErrNotFound) {
		return types.User{}, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return types.User{}, fmt.Errorf("hash password: %w", err)
	}

	user, err := s.users.Create(ctx, types.User{
		Email:        input.Email,
		Name:         input.Name,
		PasswordHash: string(hashed),
		Avatar:       defaultAvatar(input.Email),
		Title:        defaultUserTitle,
	})
	if err != nil {
		return types.User{}, err
	}

	if err := s.setCurrent(ctx, user); err != nil {
		return types.User{}, err
	}
	return user, nil
}

// Login verifies credentials against the directory. A missing email and a
// wrong password both yield ErrInvalidCredentials; the session is only set
// on success.
func (s *SessionStore) Login(ctx context.Context, email, password string) (types.User, error) {
	user, err := s.users.GetByEmail(email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return types.User{}, ErrInvalidCredentials
		}
		return types.User{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return types.User{}, ErrInvalidCredentials
	}

	if err := s.setCurrent(ctx, user); err != nil {
		return types.User{}, err
	}
	return user, nil
}

// Logout clears the active session and removes the persisted pointer.
// Idempotent.
func (s *SessionStore) Logout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = nil
	s.loaded = true
	if err := s.kv.Delete(ctx, KeyCurrentUser); err != nil {
		return fmt.Errorf("clear %s: %w", KeyCurrentUser, err)
	}
	return nil
}

// Current returns the active user, if any.
func (s *SessionStore) Current() (types.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return types.User{}, false
	}
	return *s.current, true
}

func (s *SessionStore) setCurrent(ctx context.Context, user types.User) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encode %s: %w", KeyCurrentUser, err)
	}
	if err := s.kv.Put(ctx, KeyCurrentUser, raw); err != nil {
		return fmt.Errorf("persist %s: %w", KeyCurrentUser, err)
	}
	s.mu.Lock()
	s.current = &user
	s.loaded = true
	s.mu.Unlock()
	return nil
}

// defaultAvatar derives a stable placeholder portrait from the email, in
// the same style as the bundled sample data.
func defaultAvatar(email string) string {
	sum := 0
	for _, r := range email {
		sum += int(r)
	}
	kind := "men"
	if sum%2 == 1 {
		kind = "women"
	}
	return fmt.Sprintf("https://randomuser.me/api/portraits/%s/%d.jpg", kind, sum%99)
}
