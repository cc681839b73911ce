package session

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ynot/models"
	"ynot/storage"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

var testUser = models.User{ID: 42, Email: "fan@ynot.fr", FirstName: "Ana", LastName: "B", Role: "user", EmailVerified: true}

func TestStore_StartsAnonymous(t *testing.T) {
	t.Parallel()

	s := New()
	assert.False(t, s.IsAuthenticated())
	assert.Empty(t, s.Token())
	_, ok := s.User()
	assert.False(t, ok)
	assert.False(t, s.CheckAuth(context.Background()))
}

func TestStore_LoginThenExpire(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	clock := &fakeClock{now: testNow}
	s := New(WithClock(clock.Now))

	tok := mintToken(t, testNow.Add(time.Hour))
	require.NoError(t, s.Login(ctx, tok, testUser))
	assert.True(t, s.IsAuthenticated())
	assert.True(t, s.CheckAuth(ctx))
	assert.Equal(t, tok, s.Token())

	clock.now = testNow.Add(time.Hour + time.Second)
	assert.False(t, s.CheckAuth(ctx))
	assert.False(t, s.IsAuthenticated())
	assert.Empty(t, s.Token())
	_, ok := s.User()
	assert.False(t, ok)
}

func TestStore_LoginDoesNotInspectToken(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	s := New(WithClock(func() time.Time { return testNow }))
	require.NoError(t, s.Login(ctx, "opaque", testUser))
	assert.True(t, s.IsAuthenticated())

	// malformed tokens fail closed on the next check
	assert.False(t, s.CheckAuth(ctx))
	assert.False(t, s.IsAuthenticated())
	assert.Empty(t, s.Token())
}

func TestStore_CheckAuthExpiredToken(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	kv := storage.NewMemory()
	s := New(WithClock(func() time.Time { return testNow }), WithPersistence(kv))
	require.NoError(t, s.Login(ctx, mintToken(t, testNow.Add(-time.Minute)), testUser))

	assert.False(t, s.CheckAuth(ctx))
	assert.False(t, s.IsAuthenticated())
	_, ok := s.User()
	assert.False(t, ok)

	_, err := kv.Get(ctx, StorageKey)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestStore_LogoutIdempotent(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	s := New(WithPersistence(storage.NewMemory()))
	require.NoError(t, s.Logout(ctx))
	require.NoError(t, s.Login(ctx, "tok", testUser))
	require.NoError(t, s.Logout(ctx))
	require.NoError(t, s.Logout(ctx))
	assert.False(t, s.IsAuthenticated())
	assert.Empty(t, s.Token())
}

func TestStore_PersistAndRestore(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	kv := storage.NewMemory()
	clock := func() time.Time { return testNow }
	tok := mintToken(t, testNow.Add(time.Hour))

	first := New(WithPersistence(kv), WithClock(clock))
	require.NoError(t, first.Login(ctx, tok, testUser))

	raw, err := kv.Get(ctx, StorageKey)
	require.NoError(t, err)
	var p persisted
	require.NoError(t, json.Unmarshal(raw, &p))
	assert.Equal(t, tok, p.Token)

	second := New(WithPersistence(kv), WithClock(clock))
	require.NoError(t, second.Restore(ctx))
	assert.True(t, second.IsAuthenticated())
	user, ok := second.User()
	require.True(t, ok)
	assert.Equal(t, testUser, user)
}

func TestStore_RestoreExpired(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	kv := storage.NewMemory()
	first := New(WithPersistence(kv))
	require.NoError(t, first.Login(ctx, mintToken(t, testNow.Add(-time.Hour)), testUser))

	second := New(WithPersistence(kv), WithClock(func() time.Time { return testNow }))
	require.NoError(t, second.Restore(ctx))
	assert.False(t, second.IsAuthenticated())
	assert.Empty(t, second.Token())

	_, err := kv.Get(ctx, StorageKey)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestStore_RestoreCorrupt(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	kv := storage.NewMemory()
	require.NoError(t, kv.Set(ctx, StorageKey, []byte("{not json")))

	s := New(WithPersistence(kv))
	require.NoError(t, s.Restore(ctx))
	assert.False(t, s.IsAuthenticated())
}

func TestStore_RestoreNothing(t *testing.T) {
	t.Parallel()

	s := New(WithPersistence(storage.NewMemory()))
	require.NoError(t, s.Restore(context.Background()))
	assert.False(t, s.IsAuthenticated())
}
