package strength

import (
	"context"
	"errors"
	"fmt"

	"github.com/moura95/passmeter/internal/domain/strength"
)

var ErrStoreNotConfigured = errors.New("evaluation store not configured")

type GetStatsUseCase struct {
	evaluationRepo strength.Repository
}

func NewGetStatsUseCase(evaluationRepo strength.Repository) *GetStatsUseCase {
	return &GetStatsUseCase{
		evaluationRepo: evaluationRepo,
	}
}

func (uc *GetStatsUseCase) Execute(ctx context.Context) (*strength.Stats, error) {
	if uc.evaluationRepo == nil {
		return nil, fmt.Errorf("usecase: get stats failed: %w", ErrStoreNotConfigured)
	}

	counts, err := uc.evaluationRepo.CountByLabel(ctx)
	if err != nil {
		return nil, fmt.Errorf("usecase: get stats failed: %w", err)
	}

	stats := strength.NewStats(counts)
	return &stats, nil
}
