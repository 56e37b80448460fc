package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"github.com/propline/property-sales-backend/internal/model"
)

var floorCols = []string{"id", "name", "floor_number", "created_at", "updated_at"}

func TestFloorRepoCreateReadsRowBack(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	now := time.Now().UTC()
	mock.ExpectExec("INSERT INTO floors").
		WithArgs("Ground", 1).
		WillReturnResult(sqlmock.NewResult(7, 1))
	mock.ExpectQuery("SELECT (.+) FROM floors WHERE id").
		WithArgs(uint64(7)).
		WillReturnRows(sqlmock.NewRows(floorCols).AddRow(7, "Ground", 1, now, now))

	repo := NewFloorRepo(db)
	f := &model.Floor{Name: "Ground", FloorNumber: 1}
	require.NoError(t, repo.Create(context.Background(), f))
	require.Equal(t, uint64(7), f.ID)
	require.Equal(t, 1, f.FloorNumber)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFloorRepoDeleteCascadeIsTransactional(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	now := time.Now().UTC()
	mock.ExpectBegin()
	mock.ExpectQuery("SELECT (.+) FROM floors WHERE id (.+) FOR UPDATE").
		WithArgs(uint64(3)).
		WillReturnRows(sqlmock.NewRows(floorCols).AddRow(3, "Mezzanine", 2, now, now))
	mock.ExpectExec("DELETE FROM shops WHERE floor_id").
		WithArgs(uint64(3)).
		WillReturnResult(sqlmock.NewResult(0, 4))
	mock.ExpectExec("DELETE FROM floors WHERE id").
		WithArgs(uint64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	repo := NewFloorRepo(db)
	f, err := repo.DeleteCascade(context.Background(), 3)
	require.NoError(t, err)
	require.Equal(t, "Mezzanine", f.Name)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFloorRepoDeleteCascadeMissingFloorRollsBack(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT (.+) FROM floors WHERE id (.+) FOR UPDATE").
		WithArgs(uint64(99)).
		WillReturnRows(sqlmock.NewRows(floorCols)) // no rows
	mock.ExpectRollback()

	repo := NewFloorRepo(db)
	_, err = repo.DeleteCascade(context.Background(), 99)
	require.ErrorIs(t, err, ErrFloorNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFloorRepoDeleteCascadeShopFailureAbortsFloorDelete(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	now := time.Now().UTC()
	mock.ExpectBegin()
	mock.ExpectQuery("SELECT (.+) FROM floors WHERE id (.+) FOR UPDATE").
		WithArgs(uint64(3)).
		WillReturnRows(sqlmock.NewRows(floorCols).AddRow(3, "Mezzanine", 2, now, now))
	mock.ExpectExec("DELETE FROM shops WHERE floor_id").
		WithArgs(uint64(3)).
		WillReturnError(errors.New("lock wait timeout"))
	mock.ExpectRollback()

	repo := NewFloorRepo(db)
	_, err = repo.DeleteCascade(context.Background(), 3)
	require.Error(t, err)
	// The floor delete was never attempted, so nothing half-completed.
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFloorRepoCount(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT COUNT(.+) FROM floors").
		WillReturnRows(sqlmock.NewRows([]string{"n"}).AddRow(5))

	repo := NewFloorRepo(db)
	n, err := repo.Count(context.Background())
	require.NoError(t, err)
	require.Equal(t, int64(5), n)
}
