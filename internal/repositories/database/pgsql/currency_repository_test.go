package pgsql

import (
	"context"
	"testing"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopbooks/shopbooks_backend/internal/apperrors"
)

func newCurrencyRepoWithMock(t *testing.T) (*PgxCurrencyRepository, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return &PgxCurrencyRepository{BaseRepository: BaseRepository{Pool: mock}}, mock
}

// The partial unique index on is_base is checked statement by statement, so
// the switch must clear the previous base before claiming the new one. The
// expectations here are ordered and fail if the updates run the other way
// around.
func TestSetBaseCurrency_ClearsPreviousBaseFirst(t *testing.T) {
	repo, mock := newCurrencyRepoWithMock(t)

	mock.ExpectBegin()
	mock.ExpectExec(`SET is_base = FALSE`).
		WithArgs(int64(2)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectExec(`SET is_base = TRUE`).
		WithArgs(int64(2)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectCommit()
	mock.ExpectRollback()

	err := repo.SetBaseCurrency(context.Background(), 2)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSetBaseCurrency_UnknownCurrencyRollsBack(t *testing.T) {
	repo, mock := newCurrencyRepoWithMock(t)

	mock.ExpectBegin()
	mock.ExpectExec(`SET is_base = FALSE`).
		WithArgs(int64(99)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectExec(`SET is_base = TRUE`).
		WithArgs(int64(99)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	mock.ExpectRollback()

	err := repo.SetBaseCurrency(context.Background(), 99)

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteCurrency_InUseCheckedInsideTransaction(t *testing.T) {
	repo, mock := newCurrencyRepoWithMock(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT EXISTS`).
		WithArgs(int64(7)).
		WillReturnRows(pgxmock.NewRows([]string{"in_use"}).AddRow(true))
	mock.ExpectRollback()

	err := repo.DeleteCurrency(context.Background(), 7)

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrCurrencyInUse)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteCurrency_UnreferencedCurrencyDeleted(t *testing.T) {
	repo, mock := newCurrencyRepoWithMock(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT EXISTS`).
		WithArgs(int64(7)).
		WillReturnRows(pgxmock.NewRows([]string{"in_use"}).AddRow(false))
	mock.ExpectExec(`DELETE FROM currencies`).
		WithArgs(int64(7)).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	mock.ExpectCommit()
	mock.ExpectRollback()

	err := repo.DeleteCurrency(context.Background(), 7)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
