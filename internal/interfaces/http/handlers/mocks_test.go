package handlers

import (
	"context"

	"github.com/google/uuid"
	"github.com/moura95/passmeter/internal/domain/strength"
	"github.com/stretchr/testify/mock"
)

type MockEvaluationRepository struct {
	mock.Mock
}

func (m *MockEvaluationRepository) Create(ctx context.Context, evaluation *strength.Evaluation) error {
	args := m.Called(ctx, evaluation)
	return args.Error(0)
}

func (m *MockEvaluationRepository) GetByID(ctx context.Context, id uuid.UUID) (*strength.Evaluation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*strength.Evaluation), args.Error(1)
}

func (m *MockEvaluationRepository) CountByLabel(ctx context.Context) (map[string]int, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]int), args.Error(1)
}
