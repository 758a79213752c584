package dto

import (
	"time"

	"karsamrit/internal/domain"
)

type CreateOrderRequest struct {
	Name          string          `json:"name"`
	Phone         string          `json:"phone"`
	Email         string          `json:"email"`
	Address       *domain.Address `json:"address"`
	Items         []domain.Item   `json:"items"`
	ItemsTotal    float64         `json:"itemsTotal"`
	Shipping      float64         `json:"shipping"`
	GrandTotal    float64         `json:"grandTotal"`
	PaymentMethod string          `json:"paymentMethod"`
}

// OrderEcho is the subset of the created order returned to the checkout page.
type OrderEcho struct {
	Items      []domain.Item  `json:"items"`
	ItemsTotal float64        `json:"itemsTotal"`
	Shipping   float64        `json:"shipping"`
	GrandTotal float64        `json:"grandTotal"`
	Address    domain.Address `json:"address"`
}

type CreateOrderResponse struct {
	Success           bool      `json:"success"`
	OrderID           string    `json:"orderId"`
	EstimatedDelivery time.Time `json:"estimatedDelivery"`
	Order             OrderEcho `json:"order"`
	Message           string    `json:"message"`
}
