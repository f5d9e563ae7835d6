package db_test

import (
	"context"
	"errors"
	"testing"

	"github.com/alexanderramin/devterm/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUoW(t *testing.T) *db.SQLiteUnitOfWork {
	t.Helper()
	database, err := db.OpenDB(db.MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	return db.NewSQLiteUnitOfWork(database)
}

func contactCount(t *testing.T, uow *db.SQLiteUnitOfWork) int {
	t.Helper()
	var n int
	require.NoError(t, uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		return tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM contacts`).Scan(&n)
	}))
	return n
}

func insertContact(ctx context.Context, tx db.DBTX, pos int) error {
	_, err := tx.ExecContext(ctx, `INSERT INTO contacts (position, name, value) VALUES (?, 'Email', 'a@b.c')`, pos)
	return err
}

func TestWithinTx_CommitOnSuccess(t *testing.T) {
	uow := newUoW(t)

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		return insertContact(ctx, tx, 0)
	})
	require.NoError(t, err)
	assert.Equal(t, 1, contactCount(t, uow))
}

func TestWithinTx_RollbackOnError(t *testing.T) {
	uow := newUoW(t)
	boom := errors.New("deliberate failure")

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		if err := insertContact(ctx, tx, 0); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 0, contactCount(t, uow))
}

func TestWithinTx_RollbackOnPanic(t *testing.T) {
	uow := newUoW(t)

	assert.Panics(t, func() {
		_ = uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
			_ = insertContact(ctx, tx, 0)
			panic("boom")
		})
	})
	assert.Equal(t, 0, contactCount(t, uow))
}
