package history

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/f3rmion/katsuyou/internal/verb"
)

// openTestStore opens a store in a temp dir with a clock that ticks one
// second per call, so ordering never depends on timer resolution.
func openTestStore(t *testing.T, limit int) *Store {
	t.Helper()

	s, err := Open(filepath.Join(t.TempDir(), "sub", "history.db"), limit)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	clock := time.Date(2024, 4, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time {
		clock = clock.Add(time.Second)
		return clock
	}
	return s
}

func info(word string, typ verb.VerbType) verb.VerbInfo {
	return verb.VerbInfo{DictionaryForm: word, Type: typ}
}

func verbs(entries []verb.HistoryEntry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Verb
	}
	return out
}

func TestStore_AddList(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := openTestStore(t, 0)
	assert.Equal(t, DefaultLimit, s.Limit())

	e, err := s.Add(ctx, info("書く", verb.Godan))
	require.NoError(t, err)
	assert.Len(t, e.ID, 26)
	assert.Equal(t, "godan", e.VerbType)

	_, err = s.Add(ctx, verb.VerbInfo{DictionaryForm: "来る", Type: verb.Irregular, Irregular: verb.Kuru})
	require.NoError(t, err)

	entries, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, []string{"来る", "書く"}, verbs(entries))
	assert.Equal(t, "irregular (kuru)", entries[0].VerbType)
	assert.Equal(t, e.ID, entries[1].ID)
	assert.True(t, entries[0].Timestamp.After(entries[1].Timestamp))
}

func TestStore_Dedupe(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := openTestStore(t, 10)

	for _, w := range []string{"書く", "見る", "書く"} {
		_, err := s.Add(ctx, info(w, verb.Godan))
		require.NoError(t, err)
	}

	entries, err := s.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"書く", "見る"}, verbs(entries))
}

func TestStore_Limit(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := openTestStore(t, 3)

	for _, w := range []string{"書く", "読む", "話す", "待つ", "飲む"} {
		_, err := s.Add(ctx, info(w, verb.Godan))
		require.NoError(t, err)
	}

	entries, err := s.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"飲む", "待つ", "話す"}, verbs(entries))
}

func TestStore_Delete(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := openTestStore(t, 0)

	a, err := s.Add(ctx, info("書く", verb.Godan))
	require.NoError(t, err)
	_, err = s.Add(ctx, info("読む", verb.Godan))
	require.NoError(t, err)

	require.NoError(t, s.Delete(ctx, a.ID))

	entries, err := s.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"読む"}, verbs(entries))

	err = s.Delete(ctx, a.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStore_Clear(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := openTestStore(t, 0)

	for _, w := range []string{"書く", "読む"} {
		_, err := s.Add(ctx, info(w, verb.Godan))
		require.NoError(t, err)
	}
	require.NoError(t, s.Clear(ctx))

	entries, err := s.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestStore_Reopen(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "history.db")

	s, err := Open(path, 5)
	require.NoError(t, err)
	_, err = s.Add(ctx, info("書く", verb.Godan))
	require.NoError(t, err)
	require.NoError(t, s.Close())

	s, err = Open(path, 5)
	require.NoError(t, err)
	defer s.Close()

	entries, err := s.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"書く"}, verbs(entries))
}
