package dashboard

import (
	"sort"
	"time"

	"quickquote.io/quickquote/models"
	"quickquote.io/quickquote/models/enum"
)

// Stats is the point-in-time dashboard summary for a business.
type Stats struct {
	TotalQuotesThisMonth        int     `json:"total_quotes_this_month"`
	TotalAcceptedValueThisMonth float64 `json:"total_accepted_value_this_month"`
	TotalPendingAmount          float64 `json:"total_pending_amount"`
}

// IsQuoteInMonth reports whether the quote was created in the given
// calendar year and month.
func IsQuoteInMonth(q *models.Quote, year int, month time.Month) bool {
	return q.CreatedAt.Year() == year && q.CreatedAt.Month() == month
}

// QuotesInMonth filters quotes created in the given calendar month.
func QuotesInMonth(quotes []*models.Quote, year int, month time.Month) []*models.Quote {
	filtered := make([]*models.Quote, 0, len(quotes))
	for _, q := range quotes {
		if IsQuoteInMonth(q, year, month) {
			filtered = append(filtered, q)
		}
	}
	return filtered
}

// TotalQuotesThisMonth counts quotes created in now's calendar month.
func TotalQuotesThisMonth(quotes []*models.Quote, now time.Time) int {
	return len(QuotesInMonth(quotes, now.Year(), now.Month()))
}

// TotalAcceptedValueThisMonth sums the totals of accepted quotes
// created in now's calendar month.
func TotalAcceptedValueThisMonth(quotes []*models.Quote, now time.Time) float64 {
	var sum float64
	for _, q := range QuotesInMonth(quotes, now.Year(), now.Month()) {
		if q.Status == enum.QuoteStatusAccepted {
			sum += q.Total
		}
	}
	return sum
}

// TotalPendingAmount sums the totals of every pending quote regardless
// of month. Pending money is at risk whenever it was quoted, so this
// one is deliberately not month-scoped.
func TotalPendingAmount(quotes []*models.Quote) float64 {
	var sum float64
	for _, q := range quotes {
		if q.Status == enum.QuoteStatusPending {
			sum += q.Total
		}
	}
	return sum
}

// CalculateStats aggregates the three dashboard metrics. It is purely a
// convenience over the single-purpose functions.
func CalculateStats(quotes []*models.Quote, now time.Time) Stats {
	return Stats{
		TotalQuotesThisMonth:        TotalQuotesThisMonth(quotes, now),
		TotalAcceptedValueThisMonth: TotalAcceptedValueThisMonth(quotes, now),
		TotalPendingAmount:          TotalPendingAmount(quotes),
	}
}

// RecentQuotes returns the newest count quotes by creation date. Ties
// keep their incoming relative order. Fewer quotes than count yields
// the whole input, sorted; a negative count yields an empty slice.
func RecentQuotes(quotes []*models.Quote, count int) []*models.Quote {
	if count < 0 {
		count = 0
	}
	sorted := make([]*models.Quote, len(quotes))
	copy(sorted, quotes)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})
	if count < len(sorted) {
		sorted = sorted[:count]
	}
	return sorted
}
