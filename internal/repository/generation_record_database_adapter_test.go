package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"open-instruct/internal/domain"
	"open-instruct/internal/util"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveRecord(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewGenerationRecordDatabaseAdapter(db)

	record := &domain.GenerationRecord{
		ID:               util.NewULID(),
		Kind:             domain.GenerationObjectives,
		Topic:            "Go Concurrency",
		CacheStatus:      domain.CacheMiss,
		Success:          true,
		ProcessingTimeMs: 1250,
		CreatedAt:        time.Now().UTC(),
	}

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO generation_records")).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.SaveRecord(context.Background(), record)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveRecord_InvalidRecord(t *testing.T) {
	db, _ := setupTestDB(t)
	repo := NewGenerationRecordDatabaseAdapter(db)

	err := repo.SaveRecord(context.Background(), &domain.GenerationRecord{
		ID:   util.NewULID(),
		Kind: domain.GenerationKind("bogus"),
	})

	assert.Error(t, err)
}

func TestGetUsageStats(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewGenerationRecordDatabaseAdapter(db)

	lastAt := time.Now().UTC()
	rows := sqlmock.NewRows([]string{"total", "objectives", "quizzes", "cache_hit_rate", "avg_ms", "last_at"}).
		AddRow(42, 30, 12, 0.4, 1830.5, lastAt)

	mock.ExpectQuery(regexp.QuoteMeta("FROM generation_records")).WillReturnRows(rows)

	stats, err := repo.GetUsageStats(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(42), stats.TotalGenerations)
	assert.Equal(t, int64(30), stats.ObjectivesGenerated)
	assert.Equal(t, int64(12), stats.QuizzesGenerated)
	assert.InDelta(t, 0.4, stats.CacheHitRate, 0.0001)
	assert.InDelta(t, 1830.5, stats.AvgProcessingTimeMs, 0.0001)
	require.NotNil(t, stats.LastGenerationAt)
	assert.Equal(t, lastAt, *stats.LastGenerationAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetUsageStats_EmptyTable(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewGenerationRecordDatabaseAdapter(db)

	rows := sqlmock.NewRows([]string{"total", "objectives", "quizzes", "cache_hit_rate", "avg_ms", "last_at"}).
		AddRow(0, 0, 0, nil, nil, nil)

	mock.ExpectQuery(regexp.QuoteMeta("FROM generation_records")).WillReturnRows(rows)

	stats, err := repo.GetUsageStats(context.Background())

	require.NoError(t, err)
	assert.Zero(t, stats.TotalGenerations)
	assert.Zero(t, stats.CacheHitRate)
	assert.Nil(t, stats.LastGenerationAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetPerformanceStats(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewGenerationRecordDatabaseAdapter(db)

	rows := sqlmock.NewRows([]string{"kind", "count", "success_count", "error_count", "avg_ms", "max_ms"}).
		AddRow("objectives", 30, 28, 2, 2200.0, 8400).
		AddRow("quiz", 12, 12, 0, 950.0, 2100)

	mock.ExpectQuery(regexp.QuoteMeta("GROUP BY kind")).WillReturnRows(rows)

	stats, err := repo.GetPerformanceStats(context.Background())

	require.NoError(t, err)
	require.Len(t, stats, 2)
	assert.Equal(t, domain.GenerationObjectives, stats[0].Kind)
	assert.Equal(t, int64(2), stats[0].ErrorCount)
	assert.Equal(t, int64(2100), stats[1].MaxProcessingTimeMs)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetPopularTopics(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewGenerationRecordDatabaseAdapter(db)

	rows := sqlmock.NewRows([]string{"topic", "count"}).
		AddRow("Go Concurrency", 12).
		AddRow("SQL Basics", 7)

	mock.ExpectQuery(regexp.QuoteMeta("GROUP BY topic")).
		WithArgs(10).
		WillReturnRows(rows)

	topics, err := repo.GetPopularTopics(context.Background(), 10)

	require.NoError(t, err)
	require.Len(t, topics, 2)
	assert.Equal(t, "Go Concurrency", topics[0].Topic)
	assert.Equal(t, int64(12), topics[0].Count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetBloomLevelDistribution(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewGenerationRecordDatabaseAdapter(db)

	rows := sqlmock.NewRows([]string{"level", "count"}).
		AddRow("Remember", 4).
		AddRow("Understand", 5)

	mock.ExpectQuery(regexp.QuoteMeta("GROUP BY level")).WillReturnRows(rows)

	distribution, err := repo.GetBloomLevelDistribution(context.Background())

	require.NoError(t, err)
	require.Len(t, distribution, 2)
	assert.Equal(t, domain.LevelRemember, distribution[0].Level)
	assert.Equal(t, int64(5), distribution[1].Count)
	assert.NoError(t, mock.ExpectationsWereMet())
}
