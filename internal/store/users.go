package store

import (
	"context"
	"time"

	"github.com/simhub/apiserver/internal/kvstore"
	"github.com/simhub/apiserver/types"
)

// UserStore handles persistence for the user directory. There is no
// bundled seed: the directory starts empty.
type UserStore struct {
	col *collection[types.User]
}

func NewUserStore(kv *kvstore.KV) *UserStore {
	return &UserStore{
		col: newCollection(kv, KeyUsers, func() []types.User { return []types.User{} }, func(u types.User) string { return u.ID }),
	}
}

func (s *UserStore) Initialize(ctx context.Context) error {
	return s.col.Initialize(ctx)
}

// All returns the directory in registration order.
func (s *UserStore) All() []types.User {
	return s.col.All()
}

func (s *UserStore) GetByID(id string) (types.User, error) {
	return s.col.Get(id)
}

// GetByEmail returns the user with the given email, or ErrNotFound. The
// match is case-sensitive and exact.
func (s *UserStore) GetByEmail(email string) (types.User, error) {
	for _, user := range s.col.All() {
		if user.Email == email {
			return user, nil
		}
	}
	return types.User{}, ErrNotFound
}

// Create assigns identity and a creation timestamp, appends the user to the
// directory, and persists it.
func (s *UserStore) Create(ctx context.Context, user types.User) (types.User, error) {
	now := time.Now().UTC()
	user.ID = newID(now)
	user.CreatedAt = now

	if err := s.col.Insert(ctx, user); err != nil {
		return types.User{}, err
	}
	return user, nil
}
