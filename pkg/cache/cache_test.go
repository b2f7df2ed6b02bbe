package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/newsnet/pkg/cache/mocks"
	"github.com/umputun/newsnet/pkg/domain"
)

type fakeClock struct{ t time.Time }

func (f *fakeClock) now() time.Time { return f.t }

func TestCache_SaveLoad(t *testing.T) {
	clock := &fakeClock{t: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)}
	c := New(NewMemoryStore(), 30*time.Minute, clock.now)
	ctx := context.Background()

	_, ok := c.Load(ctx)
	assert.False(t, ok, "empty store is a miss")

	articles := []domain.Article{
		{ID: 1, Title: "first", Link: "https://example.com/1", Published: clock.t, Keywords: []string{"AI"}},
		{ID: 2, Title: "second", Link: "https://example.com/2", Published: clock.t, IsFavorite: true, Keywords: []string{}},
	}
	require.NoError(t, c.Save(ctx, articles))

	entry, ok := c.Load(ctx)
	require.True(t, ok)
	assert.Equal(t, clock.t.UnixMilli(), entry.LastUpdate)
	require.Len(t, entry.Articles, 2)
	assert.Equal(t, "first", entry.Articles[0].Title)
	assert.True(t, entry.Articles[1].IsFavorite)
	assert.True(t, entry.Articles[0].Published.Equal(clock.t))
}

func TestCache_IsValid(t *testing.T) {
	start := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	clock := &fakeClock{t: start}
	c := New(NewMemoryStore(), 30*time.Minute, clock.now)
	ctx := context.Background()

	assert.False(t, c.IsValid(ctx), "no entry")
	require.NoError(t, c.Save(ctx, nil))

	tbl := []struct {
		age  time.Duration
		want bool
	}{
		{0, true},
		{29*time.Minute + 59*time.Second, true},
		{30*time.Minute - time.Millisecond, true},
		{30 * time.Minute, false},
		{31 * time.Minute, false},
	}
	for _, tt := range tbl {
		clock.t = start.Add(tt.age)
		assert.Equal(t, tt.want, c.IsValid(ctx), "age %v", tt.age)
		_, ok := c.Load(ctx)
		assert.Equal(t, tt.want, ok, "load at age %v", tt.age)
		_, ok = c.Last(ctx)
		assert.True(t, ok, "last ignores age")
	}
}

func TestCache_Rewrite(t *testing.T) {
	start := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	clock := &fakeClock{t: start}
	c := New(NewMemoryStore(), time.Hour, clock.now)
	ctx := context.Background()

	// without previous entry rewrite stamps current time
	require.NoError(t, c.Rewrite(ctx, []domain.Article{{ID: 1}}))
	entry, ok := c.Load(ctx)
	require.True(t, ok)
	assert.Equal(t, start.UnixMilli(), entry.LastUpdate)

	clock.t = start.Add(2 * time.Hour)
	require.NoError(t, c.Rewrite(ctx, []domain.Article{{ID: 1, IsFavorite: true}}))
	_, ok = c.Load(ctx)
	assert.False(t, ok, "rewrite does not refresh a stale entry")
	entry, ok = c.Last(ctx)
	require.True(t, ok)
	assert.Equal(t, start.UnixMilli(), entry.LastUpdate, "timestamp kept")
	assert.True(t, entry.Articles[0].IsFavorite)

	require.NoError(t, c.Save(ctx, []domain.Article{{ID: 2}}))
	entry, ok = c.Load(ctx)
	require.True(t, ok)
	assert.Equal(t, clock.t.UnixMilli(), entry.LastUpdate, "save moves timestamp")
}

func TestCache_FailSoft(t *testing.T) {
	ctx := context.Background()

	t.Run("read error", func(t *testing.T) {
		store := &mocks.StoreMock{
			GetFunc: func(ctx context.Context, key string) (string, error) { return "", errors.New("disk error") },
		}
		c := New(store, time.Minute, nil)
		_, ok := c.Load(ctx)
		assert.False(t, ok)
		assert.False(t, c.IsValid(ctx))
		require.Len(t, store.GetCalls(), 2)
		assert.Equal(t, Key, store.GetCalls()[0].Key)
	})

	t.Run("garbage value", func(t *testing.T) {
		store := NewMemoryStore()
		require.NoError(t, store.Set(ctx, Key, "{not json"))
		c := New(store, time.Minute, nil)
		_, ok := c.Load(ctx)
		assert.False(t, ok)
		assert.False(t, c.IsValid(ctx))
	})

	t.Run("schema mismatch", func(t *testing.T) {
		store := NewMemoryStore()
		require.NoError(t, store.Set(ctx, Key, `{"articles":"nope","last_update":"x"}`))
		c := New(store, time.Minute, nil)
		_, ok := c.Load(ctx)
		assert.False(t, ok)
	})

	t.Run("write error", func(t *testing.T) {
		store := &mocks.StoreMock{
			GetFunc: func(ctx context.Context, key string) (string, error) { return "", nil },
			SetFunc: func(ctx context.Context, key, value string) error { return errors.New("read-only") },
		}
		c := New(store, time.Minute, nil)
		err := c.Save(ctx, []domain.Article{{ID: 1}})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "write cache entry")
		require.Len(t, store.SetCalls(), 1)
		assert.Contains(t, store.SetCalls()[0].Value, `"last_update":`)
	})
}

func TestCache_Defaults(t *testing.T) {
	c := New(NewMemoryStore(), 0, nil)
	assert.Equal(t, DefaultTTL, c.TTL())
	assert.NotNil(t, c.now)
}

func TestCache_Format(t *testing.T) {
	store := NewMemoryStore()
	clock := &fakeClock{t: time.UnixMilli(1700000000123).UTC()}
	c := New(store, time.Minute, clock.now)
	require.NoError(t, c.Save(context.Background(), nil))

	val, err := store.Get(context.Background(), Key)
	require.NoError(t, err)
	assert.JSONEq(t, `{"articles":[],"last_update":1700000000123}`, val)
}
