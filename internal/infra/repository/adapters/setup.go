package adapters

import (
	"github.com/jmoiron/sqlx"
	"github.com/moura95/passmeter/internal/domain/strength"
)

type Repositories struct {
	Evaluation strength.Repository
}

func NewRepositories(db *sqlx.DB) *Repositories {
	return &Repositories{
		Evaluation: NewEvaluationRepository(db),
	}
}
