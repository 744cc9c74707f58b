package session

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func TestSQLiteStore_SetGetRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewSQLiteStore(setupDB(t))

	require.NoError(t, store.Set(ctx, KeyAccessToken, []byte("tok-1")))

	got, err := store.Get(ctx, KeyAccessToken)
	require.NoError(t, err)
	require.Equal(t, []byte("tok-1"), got)

	// Set overwrites in place.
	require.NoError(t, store.Set(ctx, KeyAccessToken, []byte("tok-2")))
	got, err = store.Get(ctx, KeyAccessToken)
	require.NoError(t, err)
	require.Equal(t, []byte("tok-2"), got)
}

func TestSQLiteStore_GetAbsentKey(t *testing.T) {
	store := NewSQLiteStore(setupDB(t))

	got, err := store.Get(context.Background(), "missing")
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestSQLiteStore_DeleteIsIdempotent(t *testing.T) {
	ctx := context.Background()
	store := NewSQLiteStore(setupDB(t))

	require.NoError(t, store.Set(ctx, KeyUser, []byte(`{"email":"a@b.com"}`)))
	require.NoError(t, store.Delete(ctx, KeyUser))
	require.NoError(t, store.Delete(ctx, KeyUser))

	got, err := store.Get(ctx, KeyUser)
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestSQLiteStore_ClearRemovesAllKeys(t *testing.T) {
	ctx := context.Background()
	store := NewSQLiteStore(setupDB(t))

	require.NoError(t, store.Set(ctx, KeyAccessToken, []byte("tok")))
	require.NoError(t, store.Set(ctx, KeyUser, []byte("{}")))
	require.NoError(t, store.Clear(ctx))

	for _, key := range []string{KeyAccessToken, KeyUser} {
		got, err := store.Get(ctx, key)
		require.NoError(t, err)
		require.Nil(t, got)
	}
}

func TestSQLiteStore_GetDBError(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT\s+value\s+FROM\s+session`).
		WithArgs(KeyAccessToken).
		WillReturnError(errors.New("db down"))

	store := NewSQLiteStore(db)
	_, err = store.Get(context.Background(), KeyAccessToken)
	require.ErrorContains(t, err, "db down")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteStore_SetDBError(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(`INSERT\s+INTO\s+session`).
		WithArgs(KeyUser, []byte("{}")).
		WillReturnError(errors.New("db down"))

	store := NewSQLiteStore(db)
	err = store.Set(context.Background(), KeyUser, []byte("{}"))
	require.ErrorContains(t, err, "failed to set session[user]")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestInitDatabase_AppliesMigrations(t *testing.T) {
	ctx := context.Background()
	db, err := InitDatabase(ctx, "file:initdb?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	store := NewSQLiteStore(db)
	require.NoError(t, store.Set(ctx, KeyAccessToken, []byte("tok")))

	got, err := store.Get(ctx, KeyAccessToken)
	require.NoError(t, err)
	require.Equal(t, []byte("tok"), got)
}
