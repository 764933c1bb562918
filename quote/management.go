package quote

import (
	"sort"
	"strings"
	"time"

	"quickquote.io/quickquote/models"
	"quickquote.io/quickquote/models/enum"
)

// Pure transformations over in-memory quote lists. Inputs are never
// mutated; every function allocates its result.

// SortByDate returns the quotes ordered newest first. The sort is
// stable, so quotes sharing a CreatedAt keep their incoming order.
func SortByDate(quotes []*models.Quote) []*models.Quote {
	sorted := make([]*models.Quote, len(quotes))
	copy(sorted, quotes)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})
	return sorted
}

// FilterByStatus returns the subsequence of quotes with exactly the
// given status, preserving relative order.
func FilterByStatus(quotes []*models.Quote, status enum.QuoteStatus) []*models.Quote {
	filtered := make([]*models.Quote, 0, len(quotes))
	for _, q := range quotes {
		if q.Status == status {
			filtered = append(filtered, q)
		}
	}
	return filtered
}

// Search matches the query case-insensitively against the quote number
// or the attached customer's name. A blank query returns the input
// unchanged.
func Search(quotes []*models.Quote, query string) []*models.Quote {
	query = strings.TrimSpace(query)
	if query == "" {
		return quotes
	}

	lowered := strings.ToLower(query)
	matched := make([]*models.Quote, 0, len(quotes))
	for _, q := range quotes {
		if strings.Contains(strings.ToLower(q.QuoteNumber), lowered) {
			matched = append(matched, q)
			continue
		}
		if q.Customer != nil && strings.Contains(strings.ToLower(q.Customer.Name), lowered) {
			matched = append(matched, q)
		}
	}
	return matched
}

// DuplicateData carries everything needed to create a copy of a quote.
// It deliberately excludes the id, quote number, status, timestamps and
// validity window: the copy gets a fresh identity, a pending status and
// a recomputed validity window on creation.
type DuplicateData struct {
	CustomerID    *string
	Items         []DuplicateItem
	Subtotal      float64
	DiscountType  *enum.DiscountType
	DiscountValue float64
	Total         float64
	Notes         *string
	Terms         *string
}

type DuplicateItem struct {
	ServiceID   *string
	ServiceName string
	Quantity    int
	UnitPrice   float64
	TotalPrice  float64
}

// NewDuplicateData copies the financial fields and line items of an
// existing quote.
func NewDuplicateData(q *models.Quote) DuplicateData {
	items := make([]DuplicateItem, 0, len(q.Items))
	for _, item := range q.Items {
		items = append(items, DuplicateItem{
			ServiceID:   item.ServiceID,
			ServiceName: item.ServiceName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			TotalPrice:  item.TotalPrice,
		})
	}

	return DuplicateData{
		CustomerID:    q.CustomerID,
		Items:         items,
		Subtotal:      q.Subtotal,
		DiscountType:  q.DiscountType,
		DiscountValue: q.DiscountValue,
		Total:         q.Total,
		Notes:         q.Notes,
		Terms:         q.Terms,
	}
}

// IsExpired reports whether the quote's validity deadline has passed.
// A quote without a deadline never expires. The comparison is strict:
// a quote is still valid at the exact deadline instant.
func IsExpired(q *models.Quote, now time.Time) bool {
	if q.ValidUntil == nil {
		return false
	}
	return q.ValidUntil.Before(now)
}

// ExpiredCandidates returns the pending quotes whose deadline has
// passed. It only identifies them; persisting the status flip is the
// caller's job.
func ExpiredCandidates(quotes []*models.Quote, now time.Time) []*models.Quote {
	candidates := make([]*models.Quote, 0, len(quotes))
	for _, q := range quotes {
		if q.Status == enum.QuoteStatusPending && IsExpired(q, now) {
			candidates = append(candidates, q)
		}
	}
	return candidates
}
