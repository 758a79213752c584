package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"go.uber.org/zap"

	"karsamrit/internal/admin/dashboard"
	"karsamrit/internal/domain"
	"karsamrit/internal/dto"
)

type OrderLister interface {
	ListOrders(ctx context.Context) ([]domain.Order, error)
}

// DashboardController serves the admin header cards server-side; the rest
// of the view (filters, sorting, search) runs client-side over the full
// collection from GET /api/admin/orders.
type DashboardController struct {
	orders OrderLister
	logger *zap.Logger
}

func NewDashboardController(orders OrderLister, logger *zap.Logger) *DashboardController {
	return &DashboardController{
		orders: orders,
		logger: logger,
	}
}

// Stats handles GET /api/admin/orders/stats.
func (c *DashboardController) Stats(w http.ResponseWriter, r *http.Request) {
	orders, err := c.orders.ListOrders(r.Context())
	if err != nil {
		c.logger.Error("error fetching orders for stats", zap.Error(err))
		c.writeJSON(w, http.StatusInternalServerError, dto.ErrorResponse{Error: "Internal server error"})
		return
	}

	c.writeJSON(w, http.StatusOK, dashboard.ComputeStats(orders, time.Now()))
}

func (c *DashboardController) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}
