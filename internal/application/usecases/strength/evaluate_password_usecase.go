package strength

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/moura95/passmeter/internal/domain/strength"
	"go.uber.org/zap"
)

type EvaluatePasswordRequest struct {
	Password  string `json:"password"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type EvaluatePasswordResponse struct {
	EvaluationID uuid.UUID      `json:"evaluation_id"`
	Score        int            `json:"score"`
	Label        string         `json:"label"`
	Color        strength.Color `json:"color"`
	BarWidth     float64        `json:"bar_width"`
	ShowTips     bool           `json:"show_tips"`
}

type EvaluatePasswordUseCase struct {
	evaluationRepo    strength.Repository
	publisher         strength.Publisher
	recorder          strength.Recorder
	logger            *zap.SugaredLogger
	maxPasswordLength int
}

// NewEvaluatePasswordUseCase builds the use case. Every collaborator is
// optional: without a publisher evaluations go straight to the repository,
// without either they are not recorded at all.
func NewEvaluatePasswordUseCase(
	evaluationRepo strength.Repository,
	publisher strength.Publisher,
	recorder strength.Recorder,
	logger *zap.SugaredLogger,
) *EvaluatePasswordUseCase {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}

	return &EvaluatePasswordUseCase{
		evaluationRepo: evaluationRepo,
		publisher:      publisher,
		recorder:       recorder,
		logger:         logger,
	}
}

// WithMaxPasswordLength rejects passwords longer than limit characters. Zero disables the limit.
func (uc *EvaluatePasswordUseCase) WithMaxPasswordLength(limit int) *EvaluatePasswordUseCase {
	uc.maxPasswordLength = limit
	return uc
}

func (uc *EvaluatePasswordUseCase) Execute(ctx context.Context, req EvaluatePasswordRequest) (*EvaluatePasswordResponse, error) {
	password := strings.TrimSpace(req.Password)
	firstName := strings.TrimSpace(req.FirstName)
	lastName := strings.TrimSpace(req.LastName)

	length := utf8.RuneCountInString(password)
	if uc.maxPasswordLength > 0 && length > uc.maxPasswordLength {
		return nil, fmt.Errorf("usecase: evaluate password failed: password exceeds maximum length of %d", uc.maxPasswordLength)
	}

	result := strength.Evaluate(password, firstName, lastName)

	if uc.recorder != nil {
		uc.recorder.ObserveEvaluation(result)
	}

	evaluation, err := strength.NewEvaluation(result, length, firstName != "" || lastName != "")
	if err != nil {
		return nil, fmt.Errorf("usecase: evaluate password failed: %w", err)
	}

	uc.record(ctx, evaluation)

	return &EvaluatePasswordResponse{
		EvaluationID: evaluation.ID,
		Score:        result.Score,
		Label:        result.Label,
		Color:        result.Color,
		BarWidth:     result.BarWidth(),
		ShowTips:     result.NeedsTips(),
	}, nil
}

func (uc *EvaluatePasswordUseCase) record(ctx context.Context, evaluation *strength.Evaluation) {
	if uc.publisher != nil {
		err := uc.publisher.PublishEvaluation(ctx, evaluation)
		if err == nil {
			return
		}
		uc.logger.Warnw("failed to publish evaluation", "evaluation_id", evaluation.ID, "error", err)
	}

	if uc.evaluationRepo == nil {
		return
	}

	if err := uc.evaluationRepo.Create(ctx, evaluation); err != nil {
		uc.logger.Warnw("failed to save evaluation", "evaluation_id", evaluation.ID, "error", err)
	}
}
