// Package calculation computes quote totals. All functions are pure and
// treat their inputs as already validated. Results carry ordinary
// float64 rounding; callers apply currency rounding for display.
package calculation

import "quickquote.io/quickquote/models/enum"

// Item is a line entry fed into the engine.
type Item struct {
	ServiceID   *string `json:"service_id,omitempty"`
	ServiceName string  `json:"service_name"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
}

// Discount applies either a percentage of the subtotal or a fixed amount.
type Discount struct {
	Type  enum.DiscountType `json:"type"`
	Value float64           `json:"value"`
}

// LineItem is an Item annotated with its computed line total.
type LineItem struct {
	Item
	LineTotal float64 `json:"line_total"`
}

// Result is the full output of CalculateQuote.
type Result struct {
	LineItems      []LineItem `json:"line_items"`
	Subtotal       float64    `json:"subtotal"`
	DiscountAmount float64    `json:"discount_amount"`
	Total          float64    `json:"total"`
}

// CalculateLineTotal returns quantity × unit price.
func CalculateLineTotal(quantity int, unitPrice float64) float64 {
	return float64(quantity) * unitPrice
}

// CalculateSubtotal returns the sum of all line totals.
func CalculateSubtotal(items []Item) float64 {
	var sum float64
	for _, item := range items {
		sum += CalculateLineTotal(item.Quantity, item.UnitPrice)
	}
	return sum
}

// CalculateDiscount returns the discount amount for the given subtotal.
// A fixed discount is returned as-is, even when it exceeds the subtotal;
// CalculateTotal floors the final result at zero.
func CalculateDiscount(subtotal float64, discount Discount) float64 {
	if discount.Type == enum.DiscountTypePercentage {
		return subtotal * discount.Value / 100
	}
	return discount.Value
}

// CalculateTotal returns the final total, never negative.
func CalculateTotal(subtotal, discountAmount float64) float64 {
	total := subtotal - discountAmount
	if total < 0 {
		return 0
	}
	return total
}

// CalculateQuote annotates each item with its line total and computes
// subtotal, discount amount and total. A nil discount means no discount.
func CalculateQuote(items []Item, discount *Discount) Result {
	lineItems := make([]LineItem, 0, len(items))
	for _, item := range items {
		lineItems = append(lineItems, LineItem{
			Item:      item,
			LineTotal: CalculateLineTotal(item.Quantity, item.UnitPrice),
		})
	}

	subtotal := CalculateSubtotal(items)

	var discountAmount float64
	if discount != nil {
		discountAmount = CalculateDiscount(subtotal, *discount)
	}

	return Result{
		LineItems:      lineItems,
		Subtotal:       subtotal,
		DiscountAmount: discountAmount,
		Total:          CalculateTotal(subtotal, discountAmount),
	}
}
