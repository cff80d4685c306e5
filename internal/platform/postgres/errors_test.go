package postgres_test

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cramdeck/cramdeck-api/internal/platform/postgres"
	"github.com/cramdeck/cramdeck-api/internal/store"
)

// fakeResult implements sql.Result for testing rows-affected handling.
type fakeResult struct {
	rows    int64
	rowsErr error
}

func (f fakeResult) LastInsertId() (int64, error) { return 0, nil }
func (f fakeResult) RowsAffected() (int64, error) { return f.rows, f.rowsErr }

func TestIsUniqueViolation(t *testing.T) {
	t.Parallel()

	assert.True(t, postgres.IsUniqueViolation(&pgconn.PgError{Code: "23505"}))
	assert.True(t, postgres.IsUniqueViolation(
		fmt.Errorf("creating user: %w", &pgconn.PgError{Code: "23505"})))
	assert.False(t, postgres.IsUniqueViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, postgres.IsUniqueViolation(errors.New("plain error")))
	assert.False(t, postgres.IsUniqueViolation(nil))
}

func TestIsForeignKeyViolation(t *testing.T) {
	t.Parallel()

	assert.True(t, postgres.IsForeignKeyViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, postgres.IsForeignKeyViolation(&pgconn.PgError{Code: "23505"}))
	assert.False(t, postgres.IsForeignKeyViolation(errors.New("plain error")))
}

func TestMapError(t *testing.T) {
	t.Parallel()

	t.Run("nil", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, postgres.MapError(nil))
	})

	t.Run("no rows", func(t *testing.T) {
		t.Parallel()
		err := postgres.MapError(sql.ErrNoRows)
		assert.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("unique violation", func(t *testing.T) {
		t.Parallel()
		err := postgres.MapError(&pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"})
		assert.ErrorIs(t, err, store.ErrDuplicate)
	})

	t.Run("foreign key violation", func(t *testing.T) {
		t.Parallel()
		err := postgres.MapError(&pgconn.PgError{
			Code:           "23503",
			ConstraintName: "flashcard_sets_user_id_fkey",
		})
		assert.ErrorIs(t, err, store.ErrInvalidEntity)
		assert.Contains(t, err.Error(), "flashcard_sets_user_id_fkey")
	})

	t.Run("unrecognized error passes through", func(t *testing.T) {
		t.Parallel()
		original := errors.New("connection reset")
		assert.Equal(t, original, postgres.MapError(original))
	})
}

func TestCheckRowsAffected(t *testing.T) {
	t.Parallel()

	t.Run("rows affected", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, postgres.CheckRowsAffected(fakeResult{rows: 1}, store.ErrSetNotFound))
	})

	t.Run("zero rows returns not found", func(t *testing.T) {
		t.Parallel()
		err := postgres.CheckRowsAffected(fakeResult{rows: 0}, store.ErrSetNotFound)
		assert.ErrorIs(t, err, store.ErrSetNotFound)
	})

	t.Run("driver error surfaces", func(t *testing.T) {
		t.Parallel()
		driverErr := errors.New("rows affected unsupported")
		err := postgres.CheckRowsAffected(fakeResult{rowsErr: driverErr}, store.ErrSetNotFound)
		require.Error(t, err)
		assert.ErrorIs(t, err, driverErr)
	})
}
