package usecase

import (
	"context"

	"go.uber.org/zap"

	"karsamrit/internal/domain"
	apperrors "karsamrit/internal/errors"
)

type StatusWriter interface {
	UpdateStatus(ctx context.Context, id string, status string) (*domain.Order, error)
}

type UpdateStatusUseCase struct {
	orderRepo StatusWriter
	logger    *zap.Logger
}

func NewUpdateStatusUseCase(orderRepo StatusWriter, logger *zap.Logger) *UpdateStatusUseCase {
	return &UpdateStatusUseCase{
		orderRepo: orderRepo,
		logger:    logger,
	}
}

// UpdateStatus overwrites the order's fulfilment status. Any of the four
// known literals is accepted as a target regardless of the current state;
// concurrent updates to the same order are last-write-wins.
func (uc *UpdateStatusUseCase) UpdateStatus(ctx context.Context, id string, status string) (*domain.Order, error) {
	if !domain.ValidStatus(status) {
		return nil, apperrors.NewValidationError("Invalid status value")
	}

	order, err := uc.orderRepo.UpdateStatus(ctx, id, status)
	if err != nil {
		if _, ok := apperrors.IsNotFoundError(err); ok {
			return nil, err
		}
		uc.logger.Error("failed to update order status", zap.String("orderId", id), zap.Error(err))
		return nil, err
	}

	uc.logger.Info("order status updated",
		zap.String("orderId", id),
		zap.String("status", status),
	)

	return order, nil
}
