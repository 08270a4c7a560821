package models

import (
	"database/sql"
	"time"

	"open-instruct/internal/domain"
)

// Objective is the database model for a learning objective.
type Objective struct {
	ID          string         `db:"id"`
	Verb        string         `db:"verb"`
	Content     string         `db:"content"`
	Level       string         `db:"level"`
	Explanation sql.NullString `db:"explanation"`
	Topic       string         `db:"topic"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
}

// ToDomain converts the model to a domain objective.
func (o *Objective) ToDomain() *domain.LearningObjective {
	return &domain.LearningObjective{
		ID:          o.ID,
		Verb:        o.Verb,
		Content:     o.Content,
		Level:       domain.BloomLevel(o.Level),
		Explanation: o.Explanation.String,
		Topic:       o.Topic,
		CreatedAt:   o.CreatedAt,
		UpdatedAt:   o.UpdatedAt,
	}
}
