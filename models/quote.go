package models

import (
	"time"

	"quickquote.io/quickquote/models/enum"
)

// Quote 代表寄給客戶的報價單
// Quote represents a priced proposal sent from a business to a customer.
type Quote struct {
	ID            string             `json:"id"`
	BusinessID    string             `json:"business_id"`
	CustomerID    *string            `json:"customer_id,omitempty"`
	QuoteNumber   string             `json:"quote_number"`
	Status        enum.QuoteStatus   `json:"status"`
	Subtotal      float64            `json:"subtotal"`
	DiscountType  *enum.DiscountType `json:"discount_type,omitempty"`
	DiscountValue float64            `json:"discount_value"`
	Total         float64            `json:"total"`
	Notes         *string            `json:"notes,omitempty"`
	Terms         *string            `json:"terms,omitempty"`
	ValidUntil    *time.Time         `json:"valid_until,omitempty"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`

	Customer *Customer    `json:"customer,omitempty"`
	Items    []*QuoteItem `json:"items,omitempty"`
}

// QuoteItem is one priced line on a quote.
type QuoteItem struct {
	ID          string    `json:"id"`
	QuoteID     string    `json:"quote_id"`
	ServiceID   *string   `json:"service_id,omitempty"`
	ServiceName string    `json:"service_name"`
	Quantity    int       `json:"quantity"`
	UnitPrice   float64   `json:"unit_price"`
	TotalPrice  float64   `json:"total_price"`
	CreatedAt   time.Time `json:"created_at"`
}

type PartialQuote struct {
	ID            string             `json:"id"`
	CustomerID    *string            `json:"customer_id,omitempty"`
	Status        *enum.QuoteStatus  `json:"status,omitempty"`
	Subtotal      *float64           `json:"subtotal,omitempty"`
	DiscountType  *enum.DiscountType `json:"discount_type,omitempty"`
	DiscountValue *float64           `json:"discount_value,omitempty"`
	Total         *float64           `json:"total,omitempty"`
	Notes         *string            `json:"notes,omitempty"`
	Terms         *string            `json:"terms,omitempty"`
	ValidUntil    *time.Time         `json:"valid_until,omitempty"`
}

func NewQuote() *Quote {
	return &Quote{}
}

func NewQuoteItem() *QuoteItem {
	return &QuoteItem{}
}
