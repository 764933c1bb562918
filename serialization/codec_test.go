package serialization

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"math/rand"
	"strings"
	"testing"
	"time"

	"quickquote.io/quickquote/models"
	"quickquote.io/quickquote/models/enum"
)

func ptr[T any](v T) *T { return &v }

func fullQuote() *models.Quote {
	created := time.Date(2025, time.June, 1, 9, 30, 0, 123000000, time.UTC)
	updated := created.Add(48 * time.Hour)
	validUntil := created.AddDate(0, 0, 30)

	return &models.Quote{
		ID:            "q-1",
		BusinessID:    "b-1",
		CustomerID:    ptr("cust-1"),
		QuoteNumber:   "QQ-2025-007",
		Status:        enum.QuoteStatusPending,
		Subtotal:      250,
		DiscountType:  ptr(enum.DiscountTypePercentage),
		DiscountValue: 10,
		Total:         225,
		Notes:         ptr("call before delivery"),
		Terms:         ptr("net 30"),
		ValidUntil:    &validUntil,
		CreatedAt:     created,
		UpdatedAt:     updated,
		Customer: &models.Customer{
			ID:         "cust-1",
			BusinessID: "b-1",
			Name:       "Alice Johnson",
			Phone:      "+15551234567",
			Email:      ptr("alice@example.com"),
			CreatedAt:  created.AddDate(0, -2, 0),
			UpdatedAt:  created.AddDate(0, -1, 0),
		},
		Items: []*models.QuoteItem{
			{ID: "i-1", QuoteID: "q-1", ServiceID: ptr("svc-1"), ServiceName: "Photo session", Quantity: 2, UnitPrice: 100, TotalPrice: 200, CreatedAt: created},
			{ID: "i-2", QuoteID: "q-1", ServiceName: "Album", Quantity: 1, UnitPrice: 50, TotalPrice: 50, CreatedAt: created},
		},
	}
}

func sameTime(a, b time.Time) bool {
	return a.Sub(b).Abs() < time.Millisecond
}

func TestRoundTripFullQuote(t *testing.T) {
	original := fullQuote()

	text, err := SerializeQuote(original)
	if err != nil {
		t.Fatalf("serialize failed: %v", err)
	}
	restored, err := DeserializeQuote(text)
	if err != nil {
		t.Fatalf("deserialize failed: %v", err)
	}

	if restored.ID != original.ID || restored.BusinessID != original.BusinessID ||
		restored.QuoteNumber != original.QuoteNumber || restored.Status != original.Status {
		t.Fatalf("identity fields differ: %+v", restored)
	}
	if math.Abs(restored.Subtotal-original.Subtotal) > 0.001 ||
		math.Abs(restored.Total-original.Total) > 0.001 ||
		math.Abs(restored.DiscountValue-original.DiscountValue) > 0.001 {
		t.Fatalf("financial fields differ: %+v", restored)
	}
	if restored.DiscountType == nil || *restored.DiscountType != *original.DiscountType {
		t.Fatalf("discount type lost")
	}
	if !sameTime(restored.CreatedAt, original.CreatedAt) || !sameTime(restored.UpdatedAt, original.UpdatedAt) {
		t.Fatalf("timestamps differ: %v / %v", restored.CreatedAt, restored.UpdatedAt)
	}
	if restored.ValidUntil == nil || !sameTime(*restored.ValidUntil, *original.ValidUntil) {
		t.Fatalf("valid_until lost or shifted")
	}
	if restored.Customer == nil || restored.Customer.Name != original.Customer.Name {
		t.Fatalf("customer lost: %+v", restored.Customer)
	}
	if restored.Customer.Email == nil || *restored.Customer.Email != *original.Customer.Email {
		t.Fatalf("customer email lost")
	}
	if restored.Customer.Address != nil {
		t.Fatalf("absent customer address materialized")
	}
	if len(restored.Items) != 2 {
		t.Fatalf("items lost: %d", len(restored.Items))
	}
	if restored.Items[0].ServiceID == nil || *restored.Items[0].ServiceID != "svc-1" {
		t.Fatalf("item service id lost")
	}
	if restored.Items[1].ServiceID != nil {
		t.Fatalf("absent item service id materialized")
	}
}

func TestRoundTripMinimalQuote(t *testing.T) {
	// Only required fields set: optional ones must stay absent.
	original := &models.Quote{
		ID:          "q-2",
		BusinessID:  "b-1",
		QuoteNumber: "QQ-2025-001",
		Status:      enum.QuoteStatusPending,
		Subtotal:    0,
		Total:       0,
		CreatedAt:   time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC),
		UpdatedAt:   time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC),
	}

	text, err := SerializeQuote(original)
	if err != nil {
		t.Fatalf("serialize failed: %v", err)
	}
	restored, err := DeserializeQuote(text)
	if err != nil {
		t.Fatalf("deserialize failed: %v", err)
	}

	if restored.CustomerID != nil || restored.DiscountType != nil || restored.Notes != nil ||
		restored.Terms != nil || restored.ValidUntil != nil || restored.Customer != nil || restored.Items != nil {
		t.Fatalf("absent optional fields materialized: %+v", restored)
	}
	for _, key := range []string{"customer_id", "discount_type", "notes", "terms", "valid_until", "customer", "items"} {
		if strings.Contains(text, `"`+key+`"`) {
			t.Fatalf("absent field %q present in payload %s", key, text)
		}
	}
}

func TestSerializedFormIsParseableJSONWithISOTimestamps(t *testing.T) {
	text, err := SerializeQuote(fullQuote())
	if err != nil {
		t.Fatalf("serialize failed: %v", err)
	}

	var generic map[string]any
	if err := json.Unmarshal([]byte(text), &generic); err != nil {
		t.Fatalf("payload is not generic JSON: %v", err)
	}
	created, ok := generic["created_at"].(string)
	if !ok {
		t.Fatalf("created_at is not a string")
	}
	if _, err := time.Parse(time.RFC3339, created); err != nil {
		t.Fatalf("created_at %q is not ISO-8601: %v", created, err)
	}
}

func TestRoundTripRandomQuotes(t *testing.T) {
	r := rand.New(rand.NewSource(30))
	base := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 100; i++ {
		original := &models.Quote{
			ID:            fmt.Sprintf("q-%d", i),
			BusinessID:    "b-1",
			QuoteNumber:   fmt.Sprintf("QQ-2025-%03d", i+1),
			Status:        enum.QuoteStatusPending,
			Subtotal:      r.Float64() * 10000,
			DiscountValue: r.Float64() * 100,
			Total:         r.Float64() * 10000,
			CreatedAt:     base.Add(time.Duration(r.Int63n(int64(24 * time.Hour * 365)))),
			UpdatedAt:     base.Add(time.Duration(r.Int63n(int64(24 * time.Hour * 365)))),
		}
		if r.Intn(2) == 0 {
			validUntil := base.AddDate(0, 0, r.Intn(90))
			original.ValidUntil = &validUntil
		}

		text, err := SerializeQuote(original)
		if err != nil {
			t.Fatalf("serialize failed: %v", err)
		}
		restored, err := DeserializeQuote(text)
		if err != nil {
			t.Fatalf("deserialize failed: %v", err)
		}
		if math.Abs(restored.Subtotal-original.Subtotal) > 0.001 ||
			math.Abs(restored.Total-original.Total) > 0.001 {
			t.Fatalf("financial drift on round trip")
		}
		if !sameTime(restored.CreatedAt, original.CreatedAt) {
			t.Fatalf("created_at drift on round trip")
		}
		if (restored.ValidUntil == nil) != (original.ValidUntil == nil) {
			t.Fatalf("valid_until presence changed")
		}
	}
}

func TestDeserializeMalformedInput(t *testing.T) {
	for _, text := range []string{"", "not json", `{"id": 42`, `[]`} {
		if _, err := DeserializeQuote(text); !errors.Is(err, ErrMalformedQuote) {
			t.Fatalf("DeserializeQuote(%q) err = %v, want ErrMalformedQuote", text, err)
		}
	}
}
