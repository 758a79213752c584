// Package dashboard implements the admin order view as pure functions over
// the fetched collection, so filtering, sorting, search and the header
// statistics can be exercised without any UI.
package dashboard

import (
	"sort"
	"strings"
	"time"

	"karsamrit/internal/domain"
)

// Sort keys accepted by Params.Sort.
const (
	SortCreatedAsc   = "created_asc"
	SortCreatedDesc  = "created_desc"
	SortDeliveryAsc  = "delivery_asc"
	SortDeliveryDesc = "delivery_desc"
)

// FilterAll disables the product or status filter it is assigned to.
const FilterAll = "all"

// Params are the four independent view parameters.
type Params struct {
	Sort    string
	Product string
	Status  string
	Search  string
}

func DefaultParams() Params {
	return Params{
		Sort:    SortCreatedDesc,
		Product: FilterAll,
		Status:  FilterAll,
	}
}

type Stats struct {
	TodayOrders       int     `json:"todayOrders"`
	TodayRevenue      float64 `json:"todayRevenue"`
	PendingDeliveries int     `json:"pendingDeliveries"`
}

// Apply filters the collection as a conjunction (product AND status AND
// search) and then sorts. The input slice is never mutated.
func Apply(orders []domain.Order, p Params) []domain.Order {
	filtered := make([]domain.Order, 0, len(orders))
	for _, o := range orders {
		if matchProduct(o, p.Product) && matchStatus(o, p.Status) && matchSearch(o, p.Search) {
			filtered = append(filtered, o)
		}
	}

	sortOrders(filtered, p.Sort)
	return filtered
}

func matchProduct(o domain.Order, product string) bool {
	if product == "" || product == FilterAll {
		return true
	}
	for _, it := range o.Items {
		if it.Title == product {
			return true
		}
	}
	return false
}

func matchStatus(o domain.Order, status string) bool {
	if status == "" || status == FilterAll {
		return true
	}
	return effectiveStatus(o) == status
}

func matchSearch(o domain.Order, search string) bool {
	q := strings.ToLower(strings.TrimSpace(search))
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(o.Name), q) || strings.Contains(o.Phone, q)
}

// sortOrders is stable, and a record missing the date relevant to the
// chosen key compares as a draw rather than as epoch.
func sortOrders(orders []domain.Order, key string) {
	sort.SliceStable(orders, func(i, j int) bool {
		a, b := orders[i], orders[j]
		switch key {
		case SortCreatedAsc:
			if a.CreatedAt.IsZero() || b.CreatedAt.IsZero() {
				return false
			}
			return a.CreatedAt.Before(b.CreatedAt)
		case SortCreatedDesc:
			if a.CreatedAt.IsZero() || b.CreatedAt.IsZero() {
				return false
			}
			return b.CreatedAt.Before(a.CreatedAt)
		case SortDeliveryAsc:
			if a.EstimatedDelivery.IsZero() || b.EstimatedDelivery.IsZero() {
				return false
			}
			return a.EstimatedDelivery.Before(b.EstimatedDelivery)
		case SortDeliveryDesc:
			if a.EstimatedDelivery.IsZero() || b.EstimatedDelivery.IsZero() {
				return false
			}
			return b.EstimatedDelivery.Before(a.EstimatedDelivery)
		}
		return false
	})
}

// ProductOptions returns the sorted distinct line-item titles across all
// orders, feeding the product filter dropdown (plus its "all" option).
func ProductOptions(orders []domain.Order) []string {
	seen := map[string]bool{}
	titles := []string{}
	for _, o := range orders {
		for _, it := range o.Items {
			if it.Title != "" && !seen[it.Title] {
				seen[it.Title] = true
				titles = append(titles, it.Title)
			}
		}
	}
	sort.Strings(titles)
	return titles
}

// NextAction returns the target of the single per-row advance button, and
// false when the status is terminal.
func NextAction(status string) (string, bool) {
	if status == "" {
		status = domain.StatusPlaced
	}
	return domain.NextStatus(status)
}

// ComputeStats recomputes the header cards from the full unfiltered
// collection. "Today" is the calendar day of now in now's location.
func ComputeStats(orders []domain.Order, now time.Time) Stats {
	var s Stats

	todayY, todayM, todayD := now.Date()

	for _, o := range orders {
		if effectiveStatus(o) != domain.StatusDelivered {
			s.PendingDeliveries++
		}

		if o.CreatedAt.IsZero() {
			continue
		}
		y, m, d := o.CreatedAt.In(now.Location()).Date()
		if y == todayY && m == todayM && d == todayD {
			s.TodayOrders++
			s.TodayRevenue += o.Total()
		}
	}

	return s
}

// Orders created before the status field existed default to placed.
func effectiveStatus(o domain.Order) string {
	if o.Status == "" {
		return domain.StatusPlaced
	}
	return o.Status
}
