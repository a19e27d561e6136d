package strength

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var ErrEvaluationNotFound = errors.New("evaluation not found")

type MessageType string

const (
	MessageTypeEvaluated MessageType = "strength.evaluated"
)

type Repository interface {
	Create(ctx context.Context, evaluation *Evaluation) error
	GetByID(ctx context.Context, id uuid.UUID) (*Evaluation, error)
	CountByLabel(ctx context.Context) (map[string]int, error)
}

type QueueMessage struct {
	EvaluationID uuid.UUID   `json:"evaluation_id"`
	Type         MessageType `json:"type"`
	Data         Evaluation  `json:"data"`
}

type Publisher interface {
	PublishEvaluation(ctx context.Context, evaluation *Evaluation) error
	Close() error
}

type Consumer interface {
	StartConsuming(ctx context.Context, handler MessageHandler) error
	Close() error
}

type MessageHandler func(ctx context.Context, message QueueMessage) error

// Recorder receives one observation per evaluation, typically for metrics.
type Recorder interface {
	ObserveEvaluation(result Result)
}
