package usecase

import (
	"context"
	"math/rand"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"karsamrit/internal/domain"
	"karsamrit/internal/dto"
	apperrors "karsamrit/internal/errors"
)

const (
	minDeliveryDays = 2
	maxDeliveryDays = 5
)

type OrderInserter interface {
	Insert(ctx context.Context, order *domain.Order) (primitive.ObjectID, error)
}

type CreateOrderUseCase struct {
	orderRepo OrderInserter
	logger    *zap.Logger
}

func NewCreateOrderUseCase(orderRepo OrderInserter, logger *zap.Logger) *CreateOrderUseCase {
	return &CreateOrderUseCase{
		orderRepo: orderRepo,
		logger:    logger,
	}
}

// CreateOrder validates the submitted cart, computes the delivery estimate
// and persists a new order. Totals are caller-computed and stored as
// received. Duplicate submissions create duplicate orders.
func (uc *CreateOrderUseCase) CreateOrder(ctx context.Context, req dto.CreateOrderRequest) (*domain.Order, error) {
	if strings.TrimSpace(req.Name) == "" ||
		strings.TrimSpace(req.Phone) == "" ||
		req.Address == nil ||
		len(req.Items) == 0 {
		return nil, apperrors.NewValidationError("Missing required fields or empty cart")
	}

	paymentMethod := req.PaymentMethod
	if paymentMethod == "" {
		paymentMethod = domain.DefaultPaymentMethod
	}

	now := time.Now().UTC()
	daysToAdd := rand.Intn(maxDeliveryDays-minDeliveryDays+1) + minDeliveryDays

	order := &domain.Order{
		Name:              req.Name,
		Phone:             req.Phone,
		Email:             req.Email,
		Address:           *req.Address,
		Items:             req.Items,
		ItemsTotal:        req.ItemsTotal,
		Shipping:          req.Shipping,
		GrandTotal:        req.GrandTotal,
		PaymentMethod:     paymentMethod,
		PaymentStatus:     domain.DefaultPaymentStatus,
		Status:            domain.StatusPlaced,
		EstimatedDelivery: now.AddDate(0, 0, daysToAdd),
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	id, err := uc.orderRepo.Insert(ctx, order)
	if err != nil {
		uc.logger.Error("failed to persist order", zap.Error(err))
		return nil, err
	}

	uc.logger.Info("order created",
		zap.String("orderId", id.Hex()),
		zap.Int("itemCount", len(order.Items)),
		zap.Float64("grandTotal", order.GrandTotal),
		zap.Time("estimatedDelivery", order.EstimatedDelivery),
	)

	return order, nil
}
