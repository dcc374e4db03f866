package identity_test

import (
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/aussiebroadwan/creatorhub/internal/creatorhub/identity"
	"github.com/aussiebroadwan/creatorhub/internal/creatorhub/store/drivers/sqlite"
	"github.com/aussiebroadwan/creatorhub/pkg/cryptox"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "identity")
	if err != nil {
		panic(err)
	}
	cryptox.SetPepperPath(filepath.Join(dir, "pepper"))

	code := m.Run()
	_ = os.RemoveAll(dir)
	os.Exit(code)
}

func newLocal(t *testing.T) (*identity.Local, *time.Time) {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	require.NoError(t, st.ApplyMigrations())
	t.Cleanup(func() { _ = st.Close() })

	_, key, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)

	l, err := identity.NewLocal(st, key, "creatorhub", time.Hour)
	require.NoError(t, err)

	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	l.Clock = func() time.Time { return now }
	return l, &now
}

func TestLocal_CreateLoginResolve(t *testing.T) {
	ctx := context.Background()
	l, _ := newLocal(t)

	id, err := l.CreateUser(ctx, " Alice@Example.com", "secret1", "Alice", true)
	require.NoError(t, err)
	require.NotEmpty(t, id)

	_, err = l.CreateUser(ctx, "alice@example.com", "other12", "Alice 2", false)
	require.ErrorIs(t, err, identity.ErrEmailTaken)

	tok, err := l.Login(ctx, "ALICE@example.com", "secret1")
	require.NoError(t, err)
	require.Equal(t, "Bearer", tok.TokenType)
	require.EqualValues(t, 3600, tok.ExpiresIn)

	who, err := l.Resolve(ctx, tok.AccessToken)
	require.NoError(t, err)
	require.Equal(t, id, who.UserID)
	require.Equal(t, "alice@example.com", who.Email)
}

func TestLocal_LoginFailures(t *testing.T) {
	ctx := context.Background()
	l, _ := newLocal(t)

	_, err := l.CreateUser(ctx, "bob@example.com", "secret1", "Bob", false)
	require.NoError(t, err)

	_, err = l.Login(ctx, "bob@example.com", "wrong")
	require.ErrorIs(t, err, identity.ErrInvalidCredentials)

	_, err = l.Login(ctx, "nobody@example.com", "secret1")
	require.ErrorIs(t, err, identity.ErrInvalidCredentials)
}

func TestLocal_ResolveRejects(t *testing.T) {
	ctx := context.Background()
	l, now := newLocal(t)

	id, err := l.CreateUser(ctx, "carol@example.com", "secret1", "Carol", false)
	require.NoError(t, err)
	tok, err := l.Login(ctx, "carol@example.com", "secret1")
	require.NoError(t, err)

	_, err = l.Resolve(ctx, "garbage")
	require.ErrorIs(t, err, identity.ErrInvalidToken)

	*now = now.Add(2 * time.Hour)
	_, err = l.Resolve(ctx, tok.AccessToken)
	require.ErrorIs(t, err, identity.ErrInvalidToken, "expired")

	*now = now.Add(-2 * time.Hour)
	require.NoError(t, l.DeleteUser(ctx, id))
	_, err = l.Resolve(ctx, tok.AccessToken)
	require.ErrorIs(t, err, identity.ErrInvalidToken, "deleted account")
}
