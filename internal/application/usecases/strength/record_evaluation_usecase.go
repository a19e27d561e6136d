package strength

import (
	"context"
	"errors"
	"fmt"

	"github.com/moura95/passmeter/internal/domain/strength"
)

type RecordEvaluationUseCase struct {
	evaluationRepo strength.Repository
	validator      *strength.EvaluationValidator
}

func NewRecordEvaluationUseCase(evaluationRepo strength.Repository) *RecordEvaluationUseCase {
	return &RecordEvaluationUseCase{
		evaluationRepo: evaluationRepo,
		validator:      strength.NewEvaluationValidator(),
	}
}

// Execute stores the evaluation carried by message. Redelivered messages are
// acknowledged without a second insert.
func (uc *RecordEvaluationUseCase) Execute(ctx context.Context, message strength.QueueMessage) error {
	if err := uc.validator.ValidateQueueMessage(message); err != nil {
		return fmt.Errorf("usecase: record evaluation failed: %w", err)
	}

	_, err := uc.evaluationRepo.GetByID(ctx, message.EvaluationID)
	if err == nil {
		return nil
	}
	if !errors.Is(err, strength.ErrEvaluationNotFound) {
		return fmt.Errorf("usecase: record evaluation failed: %w", err)
	}

	evaluation := message.Data
	if err := uc.evaluationRepo.Create(ctx, &evaluation); err != nil {
		return fmt.Errorf("usecase: record evaluation failed: %w", err)
	}

	return nil
}
