package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"karsamrit/internal/domain"
	apperrors "karsamrit/internal/errors"
)

type stubStatusWriter struct {
	order     *domain.Order
	lastID    string
	lastState string
}

func (s *stubStatusWriter) UpdateStatus(_ context.Context, id string, status string) (*domain.Order, error) {
	if s.order == nil {
		return nil, apperrors.NewNotFoundError("Order not found")
	}
	s.lastID = id
	s.lastState = status
	updated := *s.order
	updated.Status = status
	return &updated, nil
}

func TestUpdateStatus_Overwrites(t *testing.T) {
	repo := &stubStatusWriter{order: &domain.Order{Status: domain.StatusPlaced}}
	uc := NewUpdateStatusUseCase(repo, zap.NewNop())

	order, err := uc.UpdateStatus(context.Background(), "abc123", domain.StatusPacked)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPacked, order.Status)
	assert.Equal(t, "abc123", repo.lastID)
}

func TestUpdateStatus_NoSequenceCheck(t *testing.T) {
	// the transition service accepts any known literal, including jumps
	// and regressions; it does not verify current -> next
	repo := &stubStatusWriter{order: &domain.Order{Status: domain.StatusPlaced}}
	uc := NewUpdateStatusUseCase(repo, zap.NewNop())

	order, err := uc.UpdateStatus(context.Background(), "abc123", domain.StatusShipped)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusShipped, order.Status)

	repo.order.Status = domain.StatusDelivered
	order, err = uc.UpdateStatus(context.Background(), "abc123", domain.StatusPlaced)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPlaced, order.Status)
}

func TestUpdateStatus_RejectsUnknownLiteral(t *testing.T) {
	repo := &stubStatusWriter{order: &domain.Order{Status: domain.StatusPlaced}}
	uc := NewUpdateStatusUseCase(repo, zap.NewNop())

	for _, target := range []string{"", "cancelled", "PLACED", "returned"} {
		_, err := uc.UpdateStatus(context.Background(), "abc123", target)
		_, ok := apperrors.IsValidationError(err)
		assert.True(t, ok, target)
	}

	// the store was never touched
	assert.Empty(t, repo.lastState)
}

func TestUpdateStatus_UnknownOrder(t *testing.T) {
	repo := &stubStatusWriter{}
	uc := NewUpdateStatusUseCase(repo, zap.NewNop())

	_, err := uc.UpdateStatus(context.Background(), "missing", domain.StatusPacked)
	_, ok := apperrors.IsNotFoundError(err)
	assert.True(t, ok)
}
