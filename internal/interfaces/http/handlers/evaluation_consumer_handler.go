package handlers

import (
	"context"
	"fmt"

	"github.com/moura95/passmeter/internal/application/services/strength"
	strengthDomain "github.com/moura95/passmeter/internal/domain/strength"
	"go.uber.org/zap"
)

type EvaluationConsumerHandler struct {
	strengthService *strength.StrengthService
	logger          *zap.SugaredLogger
}

func NewEvaluationConsumerHandler(strengthService *strength.StrengthService, logger *zap.SugaredLogger) *EvaluationConsumerHandler {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}

	return &EvaluationConsumerHandler{
		strengthService: strengthService,
		logger:          logger,
	}
}

// HandleEvaluationMessage matches strength.MessageHandler.
func (h *EvaluationConsumerHandler) HandleEvaluationMessage(ctx context.Context, message strengthDomain.QueueMessage) error {
	h.logger.Debugw("processing evaluation message", "type", message.Type, "evaluation_id", message.EvaluationID)

	if err := h.strengthService.RecordEvaluation(ctx, message); err != nil {
		return fmt.Errorf("handler: process evaluation message failed: %w", err)
	}

	h.logger.Debugw("evaluation recorded", "evaluation_id", message.EvaluationID, "label", message.Data.Label)
	return nil
}
