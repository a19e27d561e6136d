package strength

import (
	"context"
	"errors"
	"testing"

	"github.com/moura95/passmeter/internal/domain/strength"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetStatsUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("should aggregate counts by label", func(t *testing.T) {
		repo := new(MockEvaluationRepository)
		repo.On("CountByLabel", ctx).Return(map[string]int{
			strength.LabelTooShort: 4,
			strength.LabelStrong:   1,
		}, nil)

		stats, err := NewGetStatsUseCase(repo).Execute(ctx)

		require.NoError(t, err)
		assert.Equal(t, 5, stats.Total)
		assert.Equal(t, 4, stats.ByLabel[strength.LabelTooShort])
		assert.Equal(t, 0, stats.ByLabel[strength.LabelModerate])
		repo.AssertExpectations(t)
	})

	t.Run("should fail without a store", func(t *testing.T) {
		stats, err := NewGetStatsUseCase(nil).Execute(ctx)

		assert.Nil(t, stats)
		assert.ErrorIs(t, err, ErrStoreNotConfigured)
	})

	t.Run("should wrap repository errors", func(t *testing.T) {
		repo := new(MockEvaluationRepository)
		repo.On("CountByLabel", ctx).Return(nil, errors.New("timeout"))

		stats, err := NewGetStatsUseCase(repo).Execute(ctx)

		assert.Nil(t, stats)
		assert.EqualError(t, err, "usecase: get stats failed: timeout")
	})
}
