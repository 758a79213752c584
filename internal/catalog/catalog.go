// Package catalog serves the storefront's fixed product list. There is no
// inventory behind it; the checkout computes line totals from these prices
// client-side and the backend stores them as submitted.
package catalog

import "karsamrit/internal/domain"

type Product struct {
	ID       int     `json:"id"`
	Title    string  `json:"title"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`
	Weight   string  `json:"weight"`
	Benefit  string  `json:"benefit"`
	Image    string  `json:"image"`
	Tag      string  `json:"tag"`
}

var products = []Product{
	{
		ID:       1,
		Title:    "Organic Handpicked Cashews",
		Category: "dry-fruits",
		Price:    450,
		Weight:   "250g",
		Benefit:  "Premium grade • Handpicked",
		Image:    "productsimg/cashews.jpg",
		Tag:      "Bestseller",
	},
	{
		ID:       2,
		Title:    "Organic Handpicked Dates",
		Category: "dry-fruits",
		Price:    300,
		Weight:   "500g",
		Benefit:  "Naturally sweet • No added sugar",
		Image:    "productsimg/dates.jpg",
		Tag:      "Organic",
	},
	{
		ID:       3,
		Title:    "Sundried Beetroot Chips",
		Category: "snacks",
		Price:    150,
		Weight:   "100g",
		Benefit:  "Sun-dried • Not fried",
		Image:    "productsimg/beetrootchips.jpg",
		Tag:      "New",
	},
	{
		ID:       4,
		Title:    "Sundried Carrot Chips",
		Category: "snacks",
		Price:    140,
		Weight:   "100g",
		Benefit:  "Baked • No palm oil",
		Image:    "productsimg/carrotchips.jpg",
		Tag:      "Healthy",
	},
}

// Products returns a copy of the catalog.
func Products() []Product {
	out := make([]Product, len(products))
	copy(out, products)
	return out
}

// LineItem builds the order line for qty units of the product.
func (p Product) LineItem(qty int) domain.Item {
	return domain.Item{
		ProductID: p.ID,
		Title:     p.Title,
		Qty:       qty,
		UnitPrice: p.Price,
		LineTotal: p.Price * float64(qty),
	}
}
