package pincode

import (
	"encoding/json"
	"net/http"
	"regexp"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"karsamrit/internal/dto"
	apperrors "karsamrit/internal/errors"
)

var pinPattern = regexp.MustCompile(`^\d{6}$`)

type Controller struct {
	client *Client
	logger *zap.Logger
}

func NewController(client *Client, logger *zap.Logger) *Controller {
	return &Controller{
		client: client,
		logger: logger,
	}
}

// Lookup handles GET /api/pincode/{pin}.
func (c *Controller) Lookup(w http.ResponseWriter, r *http.Request) {
	pin := chi.URLParam(r, "pin")

	if !pinPattern.MatchString(pin) {
		c.writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid pincode"})
		return
	}

	result, err := c.client.Lookup(r.Context(), pin)
	if err != nil {
		if nf, ok := apperrors.IsNotFoundError(err); ok {
			c.writeJSON(w, http.StatusNotFound, dto.ErrorResponse{Error: nf.Message})
			return
		}
		c.logger.Error("pincode lookup failed", zap.String("pin", pin), zap.Error(err))
		c.writeJSON(w, http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to lookup pincode"})
		return
	}

	c.writeJSON(w, http.StatusOK, result)
}

func (c *Controller) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}
