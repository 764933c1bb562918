package calculation

import (
	"math"
	"math/rand"
	"testing"

	"quickquote.io/quickquote/models/enum"
)

func closeEnough(got, want float64) bool {
	return math.Abs(got-want) < 0.0001*math.Abs(want)+0.0001
}

func randomItems(r *rand.Rand, n int) []Item {
	items := make([]Item, 0, n)
	for i := 0; i < n; i++ {
		items = append(items, Item{
			ServiceName: "service",
			Quantity:    1 + r.Intn(1000),
			UnitPrice:   0.01 + r.Float64()*100000,
		})
	}
	return items
}

func TestCalculateLineTotal(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 100; i++ {
		quantity := 1 + r.Intn(1000)
		unitPrice := 0.01 + r.Float64()*100000
		got := CalculateLineTotal(quantity, unitPrice)
		want := float64(quantity) * unitPrice
		if !closeEnough(got, want) {
			t.Fatalf("CalculateLineTotal(%d, %f) = %f, want %f", quantity, unitPrice, got, want)
		}
	}
}

func TestCalculateSubtotal(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	for i := 0; i < 100; i++ {
		items := randomItems(r, r.Intn(20))
		var want float64
		for _, item := range items {
			want += float64(item.Quantity) * item.UnitPrice
		}
		if got := CalculateSubtotal(items); !closeEnough(got, want) {
			t.Fatalf("CalculateSubtotal = %f, want %f", got, want)
		}
	}
}

func TestCalculateSubtotalEmpty(t *testing.T) {
	if got := CalculateSubtotal(nil); got != 0 {
		t.Fatalf("CalculateSubtotal(nil) = %f, want 0", got)
	}
}

func TestCalculatePercentageDiscount(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	for i := 0; i < 100; i++ {
		subtotal := r.Float64() * 100000
		percentage := r.Float64() * 100
		got := CalculateDiscount(subtotal, Discount{Type: enum.DiscountTypePercentage, Value: percentage})
		want := subtotal * percentage / 100
		if !closeEnough(got, want) {
			t.Fatalf("percentage discount = %f, want %f", got, want)
		}
	}
}

func TestFixedDiscountIsNotClamped(t *testing.T) {
	got := CalculateDiscount(100, Discount{Type: enum.DiscountTypeFixed, Value: 250})
	if got != 250 {
		t.Fatalf("fixed discount = %f, want 250 (unclamped)", got)
	}
}

func TestFixedDiscountFloor(t *testing.T) {
	r := rand.New(rand.NewSource(4))
	for i := 0; i < 100; i++ {
		subtotal := r.Float64() * 100000
		fixed := r.Float64() * 200000
		discount := CalculateDiscount(subtotal, Discount{Type: enum.DiscountTypeFixed, Value: fixed})
		got := CalculateTotal(subtotal, discount)
		want := math.Max(0, subtotal-fixed)
		if !closeEnough(got, want) {
			t.Fatalf("total = %f, want %f", got, want)
		}
	}
}

func TestCalculateQuoteTotalNeverNegative(t *testing.T) {
	r := rand.New(rand.NewSource(5))
	for i := 0; i < 200; i++ {
		items := randomItems(r, r.Intn(10))
		var discount *Discount
		switch r.Intn(3) {
		case 0:
			discount = &Discount{Type: enum.DiscountTypePercentage, Value: r.Float64() * 100}
		case 1:
			discount = &Discount{Type: enum.DiscountTypeFixed, Value: r.Float64() * 1e7}
		}
		if result := CalculateQuote(items, discount); result.Total < 0 {
			t.Fatalf("total %f is negative", result.Total)
		}
	}
}

func TestCalculateQuote(t *testing.T) {
	items := []Item{
		{ServiceName: "Photo session", Quantity: 2, UnitPrice: 100},
		{ServiceName: "Album", Quantity: 1, UnitPrice: 50},
	}
	result := CalculateQuote(items, &Discount{Type: enum.DiscountTypePercentage, Value: 10})

	if !closeEnough(result.Subtotal, 250) {
		t.Fatalf("subtotal = %f, want 250", result.Subtotal)
	}
	if !closeEnough(result.DiscountAmount, 25) {
		t.Fatalf("discount = %f, want 25", result.DiscountAmount)
	}
	if !closeEnough(result.Total, 225) {
		t.Fatalf("total = %f, want 225", result.Total)
	}
	if len(result.LineItems) != 2 {
		t.Fatalf("expected 2 line items, got %d", len(result.LineItems))
	}
	if !closeEnough(result.LineItems[0].LineTotal, 200) {
		t.Fatalf("first line total = %f, want 200", result.LineItems[0].LineTotal)
	}
}

func TestCalculateQuoteWithoutDiscount(t *testing.T) {
	result := CalculateQuote([]Item{{ServiceName: "Design", Quantity: 3, UnitPrice: 40}}, nil)
	if result.DiscountAmount != 0 {
		t.Fatalf("discount = %f, want 0", result.DiscountAmount)
	}
	if !closeEnough(result.Total, 120) {
		t.Fatalf("total = %f, want 120", result.Total)
	}
}
