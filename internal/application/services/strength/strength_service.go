package strength

import (
	"context"
	"fmt"

	strengthUC "github.com/moura95/passmeter/internal/application/usecases/strength"
	"github.com/moura95/passmeter/internal/domain/strength"
)

type StrengthService struct {
	evaluatePasswordUseCase *strengthUC.EvaluatePasswordUseCase
	recordEvaluationUseCase *strengthUC.RecordEvaluationUseCase
	getStatsUseCase         *strengthUC.GetStatsUseCase
}

func NewStrengthService(
	evaluatePasswordUC *strengthUC.EvaluatePasswordUseCase,
	recordEvaluationUC *strengthUC.RecordEvaluationUseCase,
	getStatsUC *strengthUC.GetStatsUseCase,
) *StrengthService {
	return &StrengthService{
		evaluatePasswordUseCase: evaluatePasswordUC,
		recordEvaluationUseCase: recordEvaluationUC,
		getStatsUseCase:         getStatsUC,
	}
}

func (s *StrengthService) EvaluatePassword(ctx context.Context, req strengthUC.EvaluatePasswordRequest) (*strengthUC.EvaluatePasswordResponse, error) {
	result, err := s.evaluatePasswordUseCase.Execute(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("service: evaluate password failed: %w", err)
	}

	return result, nil
}

func (s *StrengthService) RecordEvaluation(ctx context.Context, message strength.QueueMessage) error {
	if s.recordEvaluationUseCase == nil {
		return fmt.Errorf("service: record evaluation failed: %w", strengthUC.ErrStoreNotConfigured)
	}

	err := s.recordEvaluationUseCase.Execute(ctx, message)
	if err != nil {
		return fmt.Errorf("service: record evaluation failed: %w", err)
	}

	return nil
}

func (s *StrengthService) GetStats(ctx context.Context) (*strength.Stats, error) {
	stats, err := s.getStatsUseCase.Execute(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: get stats failed: %w", err)
	}

	return stats, nil
}
