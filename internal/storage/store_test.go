package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testRecord struct {
	ID    string   `json:"id"`
	Name  string   `json:"name"`
	Tags  []string `json:"tags"`
	Count int      `json:"count"`
}

func newTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := NewStore(filepath.Join(t.TempDir(), "platform.db"))
	require.NoError(t, err)
	require.NoError(t, store.Migrate())
	t.Cleanup(func() {
		_ = store.Close()
	})
	return store
}

func Test_Collection_WhenAbsent_ShouldBeEmpty(t *testing.T) {
	store := newTestStore(t)

	items, err := GetCollection[testRecord](context.Background(), store, "dp_missing")
	assert.NoError(t, err)
	assert.Empty(t, items)
}

func Test_Collection_RoundTrip_ShouldBeDeepEqual(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	written := []testRecord{
		{ID: "a", Name: "first", Tags: []string{"x", "y"}, Count: 2},
		{ID: "b", Name: "second", Tags: []string{}, Count: 0},
	}
	require.NoError(t, SetCollection(ctx, store, KeyUsers, written))

	read, err := GetCollection[testRecord](ctx, store, KeyUsers)
	assert.NoError(t, err)
	assert.Equal(t, written, read)
}

func Test_Collection_WhenOverwritten_ShouldKeepOnlyLastWrite(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, SetCollection(ctx, store, KeyGigs, []testRecord{{ID: "a"}, {ID: "b"}}))
	require.NoError(t, SetCollection(ctx, store, KeyGigs, []testRecord{{ID: "c"}}))

	read, err := GetCollection[testRecord](ctx, store, KeyGigs)
	assert.NoError(t, err)
	require.Len(t, read, 1)
	assert.Equal(t, "c", read[0].ID)
}

func Test_Collection_WhenUnparsable_ShouldBeEmpty(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, KeyPromos, []byte("{not json")))

	items, err := GetCollection[testRecord](ctx, store, KeyPromos)
	assert.NoError(t, err)
	assert.Empty(t, items)
}

func Test_Record_RoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	rec := testRecord{ID: "session", Name: "current"}
	require.NoError(t, SetRecord(ctx, store, KeyCurrentUser, &rec))

	read, err := GetRecord[testRecord](ctx, store, KeyCurrentUser)
	assert.NoError(t, err)
	require.NotNil(t, read)
	assert.Equal(t, rec, *read)
}

func Test_Record_WhenSetToNil_ShouldBeRemoved(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	rec := testRecord{ID: "session"}
	require.NoError(t, SetRecord(ctx, store, KeyCurrentUser, &rec))
	require.NoError(t, SetRecord[testRecord](ctx, store, KeyCurrentUser, nil))

	read, err := GetRecord[testRecord](ctx, store, KeyCurrentUser)
	assert.NoError(t, err)
	assert.Nil(t, read)
}

func Test_Record_WhenAbsent_ShouldBeNil(t *testing.T) {
	store := newTestStore(t)

	read, err := GetRecord[testRecord](context.Background(), store, KeyInitialized)
	assert.NoError(t, err)
	assert.Nil(t, read)
}
