package adapters

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/moura95/passmeter/internal/domain/strength"
)

const uniqueViolation = "23505"

type evaluationRepository struct {
	db *sqlx.DB
}

type evaluationRow struct {
	Uuid         uuid.UUID `db:"uuid"`
	Score        int       `db:"score"`
	Label        string    `db:"label"`
	Color        string    `db:"color"`
	Length       int       `db:"length"`
	NameProvided bool      `db:"name_provided"`
	CreatedAt    time.Time `db:"created_at"`
}

type labelCountRow struct {
	Label string `db:"label"`
	Count int    `db:"count"`
}

func NewEvaluationRepository(db *sqlx.DB) strength.Repository {
	return &evaluationRepository{
		db: db,
	}
}

func (r *evaluationRepository) Create(ctx context.Context, evaluation *strength.Evaluation) error {
	query := `
		INSERT INTO strength_evaluations (uuid, score, label, color, length, name_provided, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, COALESCE($7, NOW()))
		RETURNING created_at`

	var createdAt *time.Time
	if !evaluation.CreatedAt.IsZero() {
		createdAt = &evaluation.CreatedAt
	}

	err := r.db.QueryRowxContext(ctx, query,
		evaluation.ID,
		evaluation.Score,
		evaluation.Label,
		string(evaluation.Color),
		evaluation.Length,
		evaluation.NameProvided,
		createdAt,
	).Scan(&evaluation.CreatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return fmt.Errorf("repository: create evaluation failed: evaluation already exists")
		}
		return fmt.Errorf("repository: create evaluation failed: %w", err)
	}

	return nil
}

func (r *evaluationRepository) GetByID(ctx context.Context, id uuid.UUID) (*strength.Evaluation, error) {
	query := `
		SELECT uuid, score, label, color, length, name_provided, created_at
		FROM strength_evaluations
		WHERE uuid = $1`

	var row evaluationRow
	err := r.db.GetContext(ctx, &row, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("repository: get evaluation by id failed: %w", strength.ErrEvaluationNotFound)
		}
		return nil, fmt.Errorf("repository: get evaluation by id failed: %w", err)
	}

	return rowToDomain(row), nil
}

func (r *evaluationRepository) CountByLabel(ctx context.Context) (map[string]int, error) {
	query := `
		SELECT label, COUNT(*) AS count
		FROM strength_evaluations
		GROUP BY label`

	var rows []labelCountRow
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("repository: count evaluations by label failed: %w", err)
	}

	counts := make(map[string]int, len(rows))
	for _, row := range rows {
		counts[row.Label] = row.Count
	}

	return counts, nil
}

func rowToDomain(row evaluationRow) *strength.Evaluation {
	return &strength.Evaluation{
		ID:           row.Uuid,
		Score:        row.Score,
		Label:        row.Label,
		Color:        strength.Color(row.Color),
		Length:       row.Length,
		NameProvided: row.NameProvided,
		CreatedAt:    row.CreatedAt,
	}
}
