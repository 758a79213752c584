package admin

import (
	"go.uber.org/zap"

	"karsamrit/internal/admin/controller"
	"karsamrit/internal/admin/session"
	"karsamrit/internal/config"
)

func NewModule(cfg config.AdminConfig, orders controller.OrderLister, logger *zap.Logger) (*controller.AuthController, *controller.DashboardController) {
	sessions := session.NewManager(cfg)

	return controller.NewAuthController(sessions, logger),
		controller.NewDashboardController(orders, logger)
}
