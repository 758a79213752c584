package usecase

import (
	"context"

	"go.uber.org/zap"

	"karsamrit/internal/domain"
)

type OrderFinder interface {
	FindAll(ctx context.Context) ([]domain.Order, error)
}

type ListOrdersUseCase struct {
	orderRepo OrderFinder
	logger    *zap.Logger
}

func NewListOrdersUseCase(orderRepo OrderFinder, logger *zap.Logger) *ListOrdersUseCase {
	return &ListOrdersUseCase{
		orderRepo: orderRepo,
		logger:    logger,
	}
}

// ListOrders returns the full collection, newest first. Filtering, sorting
// and search happen in the consuming dashboard.
func (uc *ListOrdersUseCase) ListOrders(ctx context.Context) ([]domain.Order, error) {
	orders, err := uc.orderRepo.FindAll(ctx)
	if err != nil {
		uc.logger.Error("failed to fetch orders", zap.Error(err))
		return nil, err
	}

	return orders, nil
}
