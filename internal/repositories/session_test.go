package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"

	"github.com/winetasting-app/backend/internal/models"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return sqlx.NewDb(db, "sqlmock"), mock
}

func TestSessionWriteRepository_SetStatus_ActivateDemotesOthers(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSessionWriteRepository(db)
	id := uuid.New()

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE tasting_sessions").
		WithArgs(models.SessionStatusSetup, models.SessionStatusActive, id).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec("UPDATE tasting_sessions SET status").
		WithArgs(id, models.SessionStatusActive).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	ok, err := repo.SetStatus(context.Background(), id, models.SessionStatusActive)
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionWriteRepository_SetStatus_NonActivateSkipsDemotion(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSessionWriteRepository(db)
	id := uuid.New()

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE tasting_sessions SET status").
		WithArgs(id, models.SessionStatusCompleted).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	ok, err := repo.SetStatus(context.Background(), id, models.SessionStatusCompleted)
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionWriteRepository_SetStatus_MissingSessionRollsBack(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSessionWriteRepository(db)
	id := uuid.New()

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE tasting_sessions").
		WithArgs(models.SessionStatusSetup, models.SessionStatusActive, id).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE tasting_sessions SET status").
		WithArgs(id, models.SessionStatusActive).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	ok, err := repo.SetStatus(context.Background(), id, models.SessionStatusActive)
	assert.NoError(t, err)
	assert.False(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionWriteRepository_Delete_CascadesInOrder(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSessionWriteRepository(db)
	id := uuid.New()

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM bottles").
		WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec("DELETE FROM user_sessions").
		WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec("DELETE FROM tasting_sessions").
		WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	ok, err := repo.Delete(context.Background(), id)
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionWriteRepository_Delete_AbsentSession(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSessionWriteRepository(db)
	id := uuid.New()

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM bottles").
		WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("DELETE FROM user_sessions").
		WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("DELETE FROM tasting_sessions").
		WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	ok, err := repo.Delete(context.Background(), id)
	assert.NoError(t, err)
	assert.False(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionReadRepository_GetByID_Absent(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSessionReadRepository(db)
	id := uuid.New()

	mock.ExpectQuery("SELECT id, name, type, status").
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	session, err := repo.GetByID(context.Background(), id)
	assert.NoError(t, err)
	assert.Nil(t, session)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionWriteRepository_Save(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSessionWriteRepository(db)
	createdBy := uuid.New()
	id := uuid.New()
	now := time.Now()

	rows := sqlmock.NewRows([]string{"id", "name", "type", "status", "created_by", "created_at", "updated_at"}).
		AddRow(id, "Bordeaux evening", models.SessionTypeBlind, models.SessionStatusSetup, createdBy, now, now)
	mock.ExpectQuery("INSERT INTO tasting_sessions").
		WithArgs("Bordeaux evening", models.SessionTypeBlind, createdBy).
		WillReturnRows(rows)

	session, err := repo.Save(context.Background(), "Bordeaux evening", models.SessionTypeBlind, createdBy)
	assert.NoError(t, err)
	assert.Equal(t, id, session.ID)
	assert.Equal(t, models.SessionStatusSetup, session.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}
