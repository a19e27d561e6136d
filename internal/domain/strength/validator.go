package strength

import (
	"fmt"

	"github.com/google/uuid"
)

type EvaluationValidator struct{}

func NewEvaluationValidator() *EvaluationValidator {
	return &EvaluationValidator{}
}

func (v *EvaluationValidator) ValidateScore(score int) error {
	if score < 0 {
		return fmt.Errorf("score must not be negative")
	}
	return nil
}

func (v *EvaluationValidator) ValidateLabel(label string) error {
	if label == "" {
		return fmt.Errorf("label is required")
	}
	if !IsKnownLabel(label) {
		return fmt.Errorf("invalid label: %s", label)
	}
	return nil
}

func (v *EvaluationValidator) ValidateColor(color Color) error {
	if !color.IsValid() {
		return fmt.Errorf("invalid color: %s", color)
	}
	return nil
}

func (v *EvaluationValidator) ValidateLength(length int) error {
	if length < 0 {
		return fmt.Errorf("length must not be negative")
	}
	return nil
}

func (v *EvaluationValidator) ValidateEvaluation(evaluation *Evaluation) error {
	if evaluation == nil {
		return fmt.Errorf("evaluation is required")
	}

	if err := v.ValidateScore(evaluation.Score); err != nil {
		return err
	}

	if err := v.ValidateLabel(evaluation.Label); err != nil {
		return err
	}

	if err := v.ValidateColor(evaluation.Color); err != nil {
		return err
	}

	return v.ValidateLength(evaluation.Length)
}

func (v *EvaluationValidator) ValidateQueueMessage(message QueueMessage) error {
	if message.EvaluationID == uuid.Nil {
		return fmt.Errorf("invalid evaluation ID")
	}

	switch message.Type {
	case MessageTypeEvaluated:
	case "":
		return fmt.Errorf("message type is required")
	default:
		return fmt.Errorf("unsupported message type: %s", message.Type)
	}

	if message.Data.ID != message.EvaluationID {
		return fmt.Errorf("evaluation ID mismatch")
	}

	if err := v.ValidateEvaluation(&message.Data); err != nil {
		return fmt.Errorf("evaluation validation failed: %w", err)
	}

	return nil
}
