package catalog

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

type Controller struct {
	logger *zap.Logger
}

func NewController(logger *zap.Logger) *Controller {
	return &Controller{logger: logger}
}

// List handles GET /api/products.
func (c *Controller) List(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(Products()); err != nil {
		c.logger.Error("failed to encode products", zap.Error(err))
	}
}
