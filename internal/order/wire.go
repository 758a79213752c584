package order

import (
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"karsamrit/internal/order/controller"
	"karsamrit/internal/order/repository"
	"karsamrit/internal/order/usecase"
)

// NewModule wires the order repository and use cases. The list use case is
// returned separately because the admin dashboard consumes it too.
func NewModule(db *mongo.Database, logger *zap.Logger) (*controller.OrderController, *usecase.ListOrdersUseCase) {
	orderRepo := repository.NewMongoOrderRepository(db)

	createUC := usecase.NewCreateOrderUseCase(orderRepo, logger)
	listUC := usecase.NewListOrdersUseCase(orderRepo, logger)
	updateUC := usecase.NewUpdateStatusUseCase(orderRepo, logger)

	return controller.NewOrderController(createUC, listUC, updateUC, logger), listUC
}
