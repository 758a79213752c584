package controller

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"karsamrit/internal/domain"
	"karsamrit/internal/dto"
	apperrors "karsamrit/internal/errors"
)

type OrderCreator interface {
	CreateOrder(ctx context.Context, req dto.CreateOrderRequest) (*domain.Order, error)
}

type OrderLister interface {
	ListOrders(ctx context.Context) ([]domain.Order, error)
}

type StatusUpdater interface {
	UpdateStatus(ctx context.Context, id string, status string) (*domain.Order, error)
}

type OrderController struct {
	creator OrderCreator
	lister  OrderLister
	updater StatusUpdater
	logger  *zap.Logger
}

func NewOrderController(creator OrderCreator, lister OrderLister, updater StatusUpdater, logger *zap.Logger) *OrderController {
	return &OrderController{
		creator: creator,
		lister:  lister,
		updater: updater,
		logger:  logger,
	}
}

// Create handles POST /api/orders.
func (c *OrderController) Create(w http.ResponseWriter, r *http.Request) {
	logger := c.logger.With(zap.String("traceId", uuid.New().String()))

	var req dto.CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid JSON body", zap.Error(err))
		c.writeError(w, http.StatusBadRequest, "Missing required fields or empty cart")
		return
	}

	order, err := c.creator.CreateOrder(r.Context(), req)
	if err != nil {
		if ve, ok := apperrors.IsValidationError(err); ok {
			c.writeError(w, http.StatusBadRequest, ve.Message)
			return
		}
		logger.Error("error creating order", zap.Error(err))
		c.writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	c.writeJSON(w, http.StatusCreated, dto.CreateOrderResponse{
		Success:           true,
		OrderID:           order.ID.Hex(),
		EstimatedDelivery: order.EstimatedDelivery,
		Order: dto.OrderEcho{
			Items:      order.Items,
			ItemsTotal: order.ItemsTotal,
			Shipping:   order.Shipping,
			GrandTotal: order.GrandTotal,
			Address:    order.Address,
		},
		Message: "Order created successfully",
	})
}

// List handles GET /api/admin/orders. Admin auth is enforced by middleware.
func (c *OrderController) List(w http.ResponseWriter, r *http.Request) {
	logger := c.logger.With(zap.String("traceId", uuid.New().String()))

	orders, err := c.lister.ListOrders(r.Context())
	if err != nil {
		logger.Error("error fetching orders", zap.Error(err))
		c.writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	if orders == nil {
		orders = []domain.Order{}
	}

	c.writeJSON(w, http.StatusOK, orders)
}

// UpdateStatus handles PATCH /api/admin/orders/{id}/status.
func (c *OrderController) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	logger := c.logger.With(zap.String("traceId", uuid.New().String()))

	id := chi.URLParam(r, "id")

	var req dto.UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid JSON body", zap.Error(err))
		c.writeError(w, http.StatusBadRequest, "Invalid status value")
		return
	}

	order, err := c.updater.UpdateStatus(r.Context(), id, req.Status)
	if err != nil {
		if ve, ok := apperrors.IsValidationError(err); ok {
			c.writeError(w, http.StatusBadRequest, ve.Message)
			return
		}
		if nf, ok := apperrors.IsNotFoundError(err); ok {
			c.writeError(w, http.StatusNotFound, nf.Message)
			return
		}
		logger.Error("error updating order status", zap.String("orderId", id), zap.Error(err))
		c.writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	c.writeJSON(w, http.StatusOK, dto.UpdateStatusResponse{
		Success: true,
		Order:   *order,
	})
}

func (c *OrderController) writeError(w http.ResponseWriter, status int, message string) {
	c.writeJSON(w, status, dto.ErrorResponse{Error: message})
}

func (c *OrderController) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}
