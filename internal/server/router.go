package server

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	admincontroller "karsamrit/internal/admin/controller"
	"karsamrit/internal/catalog"
	"karsamrit/internal/dto"
	ordercontroller "karsamrit/internal/order/controller"
	"karsamrit/internal/pincode"
)

func NewRouter(
	orderCtrl *ordercontroller.OrderController,
	authCtrl *admincontroller.AuthController,
	dashCtrl *admincontroller.DashboardController,
	catalogCtrl *catalog.Controller,
	pincodeCtrl *pincode.Controller,
	logger *zap.Logger,
) http.Handler {
	r := chi.NewRouter()

	// the storefront pages are served from a separate origin
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PATCH", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", admincontroller.TokenHeader},
	}))

	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		if err := json.NewEncoder(w).Encode(dto.HealthResponse{OK: true, Message: "Karsamrit backend running"}); err != nil {
			logger.Error("failed to encode health response", zap.Error(err))
		}
	})

	r.Route("/api", func(r chi.Router) {
		r.Post("/orders", orderCtrl.Create)
		r.Get("/products", catalogCtrl.List)
		r.Get("/pincode/{pin}", pincodeCtrl.Lookup)

		r.Route("/admin", func(r chi.Router) {
			r.Post("/login", authCtrl.Login)
			r.Post("/logout", authCtrl.Logout)
			r.Get("/session", authCtrl.SessionInfo)

			r.Group(func(r chi.Router) {
				r.Use(authCtrl.RequireAdmin)
				r.Get("/orders", orderCtrl.List)
				r.Get("/orders/stats", dashCtrl.Stats)
				r.Patch("/orders/{id}/status", orderCtrl.UpdateStatus)
			})
		})
	})

	return r
}
