package repository

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"open-instruct/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestDB creates a new sqlx.DB instance and sqlmock for repository testing.
func setupTestDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("Failed to create sqlmock: %v", err)
	}
	sqlxDB := sqlx.NewDb(mockDB, "sqlmock")
	return sqlxDB, mock
}

func sampleObjectives() []*domain.LearningObjective {
	return []*domain.LearningObjective{
		{ID: "LO-001", Verb: "define", Content: "the goroutine model", Level: domain.LevelRemember, Topic: "Go Concurrency"},
		{ID: "LO-002", Verb: "explain", Content: "channel synchronization", Level: domain.LevelUnderstand, Explanation: "Understanding precedes use", Topic: "Go Concurrency"},
	}
}

func TestSaveObjectives(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewObjectiveDatabaseAdapter(db)

	objectives := sampleObjectives()

	mock.ExpectBegin()
	for range objectives {
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO objectives")).
			WillReturnResult(sqlmock.NewResult(0, 1))
	}
	mock.ExpectCommit()

	err := repo.SaveObjectives(context.Background(), "Go Concurrency", objectives)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveObjectives_RollbackOnError(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewObjectiveDatabaseAdapter(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO objectives")).
		WillReturnError(errors.New("constraint violation"))
	mock.ExpectRollback()

	err := repo.SaveObjectives(context.Background(), "Go Concurrency", sampleObjectives())

	assert.ErrorContains(t, err, "failed to upsert objective LO-001")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetObjectiveByID(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewObjectiveDatabaseAdapter(db)

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "verb", "content", "level", "explanation", "topic", "created_at", "updated_at"}).
		AddRow("LO-001", "define", "the goroutine model", "Remember",
			sql.NullString{String: "", Valid: false}, "Go Concurrency", now, now)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, verb, content, level, explanation, topic, created_at, updated_at")).
		WithArgs("LO-001").
		WillReturnRows(rows)

	obj, err := repo.GetObjectiveByID(context.Background(), "LO-001")

	require.NoError(t, err)
	require.NotNil(t, obj)
	assert.Equal(t, "LO-001", obj.ID)
	assert.Equal(t, domain.LevelRemember, obj.Level)
	assert.Empty(t, obj.Explanation)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetObjectiveByID_NotFound(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewObjectiveDatabaseAdapter(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, verb, content, level, explanation, topic, created_at, updated_at")).
		WithArgs("LO-099").
		WillReturnError(sql.ErrNoRows)

	obj, err := repo.GetObjectiveByID(context.Background(), "LO-099")

	assert.NoError(t, err)
	assert.Nil(t, obj)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListObjectives(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewObjectiveDatabaseAdapter(db)

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "verb", "content", "level", "explanation", "topic", "created_at", "updated_at"}).
		AddRow("LO-001", "define", "the goroutine model", "Remember", nil, "Go Concurrency", now, now).
		AddRow("LO-002", "explain", "channel synchronization", "Understand",
			sql.NullString{String: "Understanding precedes use", Valid: true}, "Go Concurrency", now, now)

	mock.ExpectQuery(regexp.QuoteMeta("FROM objectives ORDER BY id")).WillReturnRows(rows)

	objectives, err := repo.ListObjectives(context.Background())

	require.NoError(t, err)
	require.Len(t, objectives, 2)
	assert.Equal(t, "LO-001", objectives[0].ID)
	assert.Equal(t, "Understanding precedes use", objectives[1].Explanation)
	assert.NoError(t, mock.ExpectationsWereMet())
}
