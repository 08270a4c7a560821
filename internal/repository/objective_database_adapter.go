package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"open-instruct/internal/domain"
	"open-instruct/internal/repository/models"

	"github.com/jmoiron/sqlx"
)

// ObjectiveDatabaseAdapter implements domain.ObjectiveRepository using sqlx.DB
type ObjectiveDatabaseAdapter struct {
	db *sqlx.DB
}

// NewObjectiveDatabaseAdapter creates a new instance of ObjectiveDatabaseAdapter
func NewObjectiveDatabaseAdapter(db *sqlx.DB) domain.ObjectiveRepository {
	return &ObjectiveDatabaseAdapter{db: db}
}

const upsertObjectiveQuery = `INSERT INTO objectives (
		id, verb, content, level, explanation, topic, created_at, updated_at
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $7)
	ON CONFLICT (id) DO UPDATE SET
		verb = EXCLUDED.verb,
		content = EXCLUDED.content,
		level = EXCLUDED.level,
		explanation = EXCLUDED.explanation,
		topic = EXCLUDED.topic,
		updated_at = EXCLUDED.updated_at`

// SaveObjectives upserts the objectives of one generated course.
// Objective ids are positional, so a new course replaces the previous
// course's objectives at the same positions.
func (a *ObjectiveDatabaseAdapter) SaveObjectives(ctx context.Context, topic string, objectives []*domain.LearningObjective) error {
	tx, err := a.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	now := time.Now().UTC()
	for _, obj := range objectives {
		explanation := sql.NullString{String: obj.Explanation, Valid: obj.Explanation != ""}
		if _, err := tx.ExecContext(ctx, upsertObjectiveQuery,
			obj.ID, obj.Verb, obj.Content, string(obj.Level), explanation, topic, now,
		); err != nil {
			return fmt.Errorf("failed to upsert objective %s: %w", obj.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit objectives: %w", err)
	}
	return nil
}

// GetObjectiveByID returns the stored objective or nil when absent.
func (a *ObjectiveDatabaseAdapter) GetObjectiveByID(ctx context.Context, id string) (*domain.LearningObjective, error) {
	var model models.Objective
	query := `SELECT id, verb, content, level, explanation, topic, created_at, updated_at
		FROM objectives WHERE id = $1`

	err := a.db.GetContext(ctx, &model, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get objective %s: %w", id, err)
	}
	return model.ToDomain(), nil
}

// ListObjectives returns all stored objectives ordered by id.
func (a *ObjectiveDatabaseAdapter) ListObjectives(ctx context.Context) ([]*domain.LearningObjective, error) {
	var rows []models.Objective
	query := `SELECT id, verb, content, level, explanation, topic, created_at, updated_at
		FROM objectives ORDER BY id`

	if err := a.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("failed to list objectives: %w", err)
	}

	objectives := make([]*domain.LearningObjective, 0, len(rows))
	for i := range rows {
		objectives = append(objectives, rows[i].ToDomain())
	}
	return objectives, nil
}
