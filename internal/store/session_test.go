package store

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/simhub/apiserver/internal/kvstore"
	"github.com/simhub/apiserver/types"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newSessionStore(t *testing.T) (*SessionStore, *UserStore, *kvstore.KV) {
	t.Helper()
	ctx := context.Background()
	kv := newTestKV()

	users := NewUserStore(kv)
	require.NoError(t, users.Initialize(ctx))

	sessions := NewSessionStore(kv, users)
	require.NoError(t, sessions.Initialize(ctx))
	return sessions, users, kv
}

func TestRegisterCreatesAccountAndSession(t *testing.T) {
	ctx := context.Background()
	sessions, users, kv := newSessionStore(t)

	user, err := sessions.Register(ctx, RegisterInput{
		Email:    "ada@example.com",
		Name:     "Ada",
		Password: "hunter22",
	})
	require.NoError(t, err)
	require.NotEmpty(t, user.ID)
	require.Equal(t, "ada@example.com", user.Email)
	require.Equal(t, "Simulation Enthusiast", user.Title)
	require.NotEmpty(t, user.Avatar)
	require.False(t, user.CreatedAt.IsZero())

	// the password is stored hashed, never verbatim
	require.NotEqual(t, "hunter22", user.PasswordHash)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("hunter22")))

	current, ok := sessions.Current()
	require.True(t, ok)
	require.Equal(t, user.ID, current.ID)

	require.Len(t, users.All(), 1)

	// the session pointer is persisted
	raw, ok, err := kv.Get(ctx, KeyCurrentUser)
	require.NoError(t, err)
	require.True(t, ok)
	var persisted types.User
	require.NoError(t, json.Unmarshal(raw, &persisted))
	require.Equal(t, user.ID, persisted.ID)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	sessions, users, _ := newSessionStore(t)

	_, err := sessions.Register(ctx, RegisterInput{Email: "ada@example.com", Name: "Ada", Password: "pw1"})
	require.NoError(t, err)

	_, err = sessions.Register(ctx, RegisterInput{Email: "ada@example.com", Name: "Impostor", Password: "pw2"})
	require.ErrorIs(t, err, ErrEmailTaken)
	require.Len(t, users.All(), 1)
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	sessions, _, _ := newSessionStore(t)

	registered, err := sessions.Register(ctx, RegisterInput{Email: "ada@example.com", Name: "Ada", Password: "hunter22"})
	require.NoError(t, err)
	require.NoError(t, sessions.Logout(ctx))

	user, err := sessions.Login(ctx, "ada@example.com", "hunter22")
	require.NoError(t, err)
	require.Equal(t, registered.ID, user.ID)

	current, ok := sessions.Current()
	require.True(t, ok)
	require.Equal(t, registered.ID, current.ID)
}

func TestLoginWrongPassword(t *testing.T) {
	ctx := context.Background()
	sessions, _, _ := newSessionStore(t)

	_, err := sessions.Register(ctx, RegisterInput{Email: "ada@example.com", Name: "Ada", Password: "hunter22"})
	require.NoError(t, err)
	require.NoError(t, sessions.Logout(ctx))

	_, err = sessions.Login(ctx, "ada@example.com", "wrong")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	_, ok := sessions.Current()
	require.False(t, ok)
}

func TestLoginUnknownEmail(t *testing.T) {
	ctx := context.Background()
	sessions, _, _ := newSessionStore(t)

	_, err := sessions.Login(ctx, "ghost@example.com", "whatever")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogoutIsIdempotent(t *testing.T) {
	ctx := context.Background()
	sessions, _, kv := newSessionStore(t)

	_, err := sessions.Register(ctx, RegisterInput{Email: "ada@example.com", Name: "Ada", Password: "pw"})
	require.NoError(t, err)

	require.NoError(t, sessions.Logout(ctx))
	require.NoError(t, sessions.Logout(ctx))

	_, ok := sessions.Current()
	require.False(t, ok)

	_, ok, err = kv.Get(ctx, KeyCurrentUser)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestInitializeRestoresSession(t *testing.T) {
	ctx := context.Background()
	sessions, users, kv := newSessionStore(t)

	registered, err := sessions.Register(ctx, RegisterInput{Email: "ada@example.com", Name: "Ada", Password: "pw"})
	require.NoError(t, err)

	// a fresh store over the same kv picks the session back up
	restored := NewSessionStore(kv, users)
	require.NoError(t, restored.Initialize(ctx))

	current, ok := restored.Current()
	require.True(t, ok)
	require.Equal(t, registered.ID, current.ID)
}

func TestInitializeAnonymousWhenNoPointer(t *testing.T) {
	sessions, _, _ := newSessionStore(t)
	_, ok := sessions.Current()
	require.False(t, ok)
}
