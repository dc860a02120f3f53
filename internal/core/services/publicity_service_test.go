package services_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ticketera/queue-admin-backend/internal/core/domain"
	"github.com/ticketera/queue-admin-backend/internal/core/mocks"
	"github.com/ticketera/queue-admin-backend/internal/core/services"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestPublicityService_RunLifecycle(t *testing.T) {
	ctx := context.Background()
	today := time.Date(2025, time.April, 12, 0, 0, 0, 0, time.UTC)

	t.Run("deactivation runs before activation", func(t *testing.T) {
		repo := mocks.NewMockPublicityRepository()
		svc := services.NewPublicityService(repo, discardLogger())

		repo.On("DeactivateExpired", ctx, today).Return(int64(2), nil)
		repo.On("ActivateDue", ctx, today).Return(int64(3), nil)

		result, err := svc.RunLifecycle(ctx, today)

		require.NoError(t, err)
		assert.Equal(t, int64(2), result.Deactivated)
		assert.Equal(t, int64(3), result.Activated)
		repo.AssertExpectations(t)
	})

	t.Run("deactivation failure aborts the run", func(t *testing.T) {
		repo := mocks.NewMockPublicityRepository()
		svc := services.NewPublicityService(repo, discardLogger())

		repo.On("DeactivateExpired", ctx, today).Return(int64(0), errors.New("deadlock detected"))

		_, err := svc.RunLifecycle(ctx, today)

		assert.Error(t, err)
		repo.AssertNotCalled(t, "ActivateDue")
	})
}

func TestPublicityService_ListActive(t *testing.T) {
	ctx := context.Background()
	today := time.Date(2025, time.April, 12, 0, 0, 0, 0, time.UTC)

	repo := mocks.NewMockPublicityRepository()
	svc := services.NewPublicityService(repo, discardLogger())

	repo.On("ListActive", ctx, today).Return([]*domain.Publicity{
		{IDPublicity: 1, Title: "Spring promo", IsActive: true},
	}, nil)

	banners, err := svc.ListActive(ctx, today)

	require.NoError(t, err)
	require.Len(t, banners, 1)
	assert.Equal(t, "Spring promo", banners[0].Title)
}
