package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Fulfilment states, in forward order.
const (
	StatusPlaced    = "placed"
	StatusPacked    = "packed"
	StatusShipped   = "shipped"
	StatusDelivered = "delivered"
)

const (
	DefaultPaymentMethod = "COD"
	DefaultPaymentStatus = "pending"
)

type Address struct {
	House   string `bson:"house,omitempty" json:"house,omitempty"`
	Street  string `bson:"street,omitempty" json:"street,omitempty"`
	Area    string `bson:"area,omitempty" json:"area,omitempty"`
	City    string `bson:"city,omitempty" json:"city,omitempty"`
	State   string `bson:"state,omitempty" json:"state,omitempty"`
	Pincode string `bson:"pincode,omitempty" json:"pincode,omitempty"`
}

type Item struct {
	ProductID int     `bson:"productId,omitempty" json:"productId,omitempty"`
	Title     string  `bson:"title" json:"title"`
	Qty       int     `bson:"qty" json:"qty"`
	UnitPrice float64 `bson:"unitPrice" json:"unitPrice"`
	LineTotal float64 `bson:"lineTotal" json:"lineTotal"`
}

type Order struct {
	ID                primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name              string             `bson:"name" json:"name"`
	Phone             string             `bson:"phone" json:"phone"`
	Email             string             `bson:"email,omitempty" json:"email,omitempty"`
	Address           Address            `bson:"address" json:"address"`
	Items             []Item             `bson:"items" json:"items"`
	ItemsTotal        float64            `bson:"itemsTotal" json:"itemsTotal"`
	Shipping          float64            `bson:"shipping" json:"shipping"`
	GrandTotal        float64            `bson:"grandTotal" json:"grandTotal"`
	PaymentMethod     string             `bson:"paymentMethod" json:"paymentMethod"`
	PaymentStatus     string             `bson:"paymentStatus" json:"paymentStatus"`
	Status            string             `bson:"status" json:"status"`
	EstimatedDelivery time.Time          `bson:"estimatedDelivery" json:"estimatedDelivery"`
	CreatedAt         time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt         time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// ValidStatus reports whether s is one of the four known fulfilment states.
func ValidStatus(s string) bool {
	switch s {
	case StatusPlaced, StatusPacked, StatusShipped, StatusDelivered:
		return true
	}
	return false
}

// NextStatus returns the state that follows s in the fulfilment sequence.
// ok is false for the terminal state and for unknown values.
func NextStatus(s string) (next string, ok bool) {
	switch s {
	case StatusPlaced:
		return StatusPacked, true
	case StatusPacked:
		return StatusShipped, true
	case StatusShipped:
		return StatusDelivered, true
	}
	return "", false
}

// Total returns the amount due: the stored grand total, or
// itemsTotal+shipping when no grand total was recorded.
func (o Order) Total() float64 {
	if o.GrandTotal != 0 {
		return o.GrandTotal
	}
	return o.ItemsTotal + o.Shipping
}
