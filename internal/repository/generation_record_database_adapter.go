package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"open-instruct/internal/domain"

	"github.com/jmoiron/sqlx"
)

// GenerationRecordDatabaseAdapter implements domain.GenerationRecordRepository using sqlx.DB
type GenerationRecordDatabaseAdapter struct {
	db *sqlx.DB
}

// NewGenerationRecordDatabaseAdapter creates a new instance of GenerationRecordDatabaseAdapter
func NewGenerationRecordDatabaseAdapter(db *sqlx.DB) domain.GenerationRecordRepository {
	return &GenerationRecordDatabaseAdapter{db: db}
}

// SaveRecord persists one generation record.
func (a *GenerationRecordDatabaseAdapter) SaveRecord(ctx context.Context, record *domain.GenerationRecord) error {
	if err := record.Validate(); err != nil {
		return err
	}

	query := `INSERT INTO generation_records (
		id, kind, topic, objective_id, difficulty, cache_status, success, processing_time_ms, created_at
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	createdAt := record.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	_, err := a.db.ExecContext(ctx, query,
		record.ID,
		string(record.Kind),
		nullString(record.Topic),
		nullString(record.ObjectiveID),
		nullString(record.Difficulty),
		nullString(string(record.CacheStatus)),
		record.Success,
		record.ProcessingTimeMs,
		createdAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save generation record: %w", err)
	}
	return nil
}

// GetUsageStats aggregates overall generation usage.
func (a *GenerationRecordDatabaseAdapter) GetUsageStats(ctx context.Context) (*domain.UsageStats, error) {
	var row struct {
		Total        int64           `db:"total"`
		Objectives   int64           `db:"objectives"`
		Quizzes      int64           `db:"quizzes"`
		CacheHitRate sql.NullFloat64 `db:"cache_hit_rate"`
		AvgMs        sql.NullFloat64 `db:"avg_ms"`
		LastAt       sql.NullTime    `db:"last_at"`
	}

	query := `SELECT
		COUNT(*) AS total,
		COUNT(*) FILTER (WHERE kind = 'objectives') AS objectives,
		COUNT(*) FILTER (WHERE kind = 'quiz') AS quizzes,
		AVG(CASE WHEN cache_status = 'hit' THEN 1.0 WHEN cache_status = 'miss' THEN 0.0 END) AS cache_hit_rate,
		AVG(processing_time_ms) AS avg_ms,
		MAX(created_at) AS last_at
	FROM generation_records`

	if err := a.db.GetContext(ctx, &row, query); err != nil {
		return nil, fmt.Errorf("failed to get usage stats: %w", err)
	}

	stats := &domain.UsageStats{
		TotalGenerations:    row.Total,
		ObjectivesGenerated: row.Objectives,
		QuizzesGenerated:    row.Quizzes,
		CacheHitRate:        row.CacheHitRate.Float64,
		AvgProcessingTimeMs: row.AvgMs.Float64,
	}
	if row.LastAt.Valid {
		stats.LastGenerationAt = &row.LastAt.Time
	}
	return stats, nil
}

// GetPerformanceStats aggregates latency and reliability per kind.
func (a *GenerationRecordDatabaseAdapter) GetPerformanceStats(ctx context.Context) ([]*domain.PerformanceStats, error) {
	var rows []struct {
		Kind         string          `db:"kind"`
		Count        int64           `db:"count"`
		SuccessCount int64           `db:"success_count"`
		ErrorCount   int64           `db:"error_count"`
		AvgMs        sql.NullFloat64 `db:"avg_ms"`
		MaxMs        sql.NullInt64   `db:"max_ms"`
	}

	query := `SELECT
		kind,
		COUNT(*) AS count,
		COUNT(*) FILTER (WHERE success) AS success_count,
		COUNT(*) FILTER (WHERE NOT success) AS error_count,
		AVG(processing_time_ms) AS avg_ms,
		MAX(processing_time_ms) AS max_ms
	FROM generation_records
	GROUP BY kind
	ORDER BY kind`

	if err := a.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("failed to get performance stats: %w", err)
	}

	stats := make([]*domain.PerformanceStats, 0, len(rows))
	for _, row := range rows {
		stats = append(stats, &domain.PerformanceStats{
			Kind:                domain.GenerationKind(row.Kind),
			Count:               row.Count,
			SuccessCount:        row.SuccessCount,
			ErrorCount:          row.ErrorCount,
			AvgProcessingTimeMs: row.AvgMs.Float64,
			MaxProcessingTimeMs: row.MaxMs.Int64,
		})
	}
	return stats, nil
}

// GetPopularTopics returns the most requested topics.
func (a *GenerationRecordDatabaseAdapter) GetPopularTopics(ctx context.Context, limit int) ([]*domain.PopularTopic, error) {
	var rows []struct {
		Topic string `db:"topic"`
		Count int64  `db:"count"`
	}

	query := `SELECT topic, COUNT(*) AS count
	FROM generation_records
	WHERE kind = 'objectives' AND topic IS NOT NULL AND topic <> ''
	GROUP BY topic
	ORDER BY count DESC, topic
	LIMIT $1`

	if err := a.db.SelectContext(ctx, &rows, query, limit); err != nil {
		return nil, fmt.Errorf("failed to get popular topics: %w", err)
	}

	topics := make([]*domain.PopularTopic, 0, len(rows))
	for _, row := range rows {
		topics = append(topics, &domain.PopularTopic{Topic: row.Topic, Count: row.Count})
	}
	return topics, nil
}

// GetBloomLevelDistribution counts stored objectives per Bloom level.
func (a *GenerationRecordDatabaseAdapter) GetBloomLevelDistribution(ctx context.Context) ([]*domain.BloomLevelDistribution, error) {
	var rows []struct {
		Level string `db:"level"`
		Count int64  `db:"count"`
	}

	query := `SELECT level, COUNT(*) AS count
	FROM objectives
	GROUP BY level
	ORDER BY level`

	if err := a.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("failed to get bloom level distribution: %w", err)
	}

	distribution := make([]*domain.BloomLevelDistribution, 0, len(rows))
	for _, row := range rows {
		distribution = append(distribution, &domain.BloomLevelDistribution{
			Level: domain.BloomLevel(row.Level),
			Count: row.Count,
		})
	}
	return distribution, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
