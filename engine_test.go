package quickquote

import (
	"context"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	"quickquote.io/quickquote/business"
	"quickquote.io/quickquote/config"
	"quickquote.io/quickquote/models"
	"quickquote.io/quickquote/models/enum"
	"quickquote.io/quickquote/quote"
	"quickquote.io/quickquote/serialization"
)

type fakeQuoteService struct {
	quote.Service
	quotes map[string]*models.Quote
}

func (f *fakeQuoteService) GetByID(_ context.Context, id string) (*models.Quote, error) {
	return f.quotes[id], nil
}

type fakeBusinessService struct {
	business.Service
	businesses map[string]*models.Business
}

func (f *fakeBusinessService) GetByID(_ context.Context, id string) (*models.Business, error) {
	return f.businesses[id], nil
}

func testEngine(t *testing.T) *Engine {
	t.Helper()

	phone := "+1 (555) 123-4567"
	quotes := &fakeQuoteService{quotes: map[string]*models.Quote{
		"q-1": {
			ID:          "q-1",
			BusinessID:  "biz-1",
			QuoteNumber: "QQ-2026-007",
			Status:      enum.QuoteStatusPending,
			Subtotal:    300,
			Total:       300,
			CreatedAt:   time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
			Customer:    &models.Customer{ID: "c-1", Name: "Acme Corp", Phone: phone},
		},
	}}
	businesses := &fakeBusinessService{businesses: map[string]*models.Business{
		"biz-1": {ID: "biz-1", Name: "Bright Gardens"},
	}}

	cfg := &config.Config{}
	cfg.Server.BaseURL = "https://quickquote.example.com/"

	return NewEngine(businesses, nil, nil, quotes, nil, cfg, zap.NewNop())
}

func TestShareQuote(t *testing.T) {
	e := testEngine(t)

	info, err := e.ShareQuote(context.Background(), "q-1")
	if err != nil {
		t.Fatalf("ShareQuote() error = %v", err)
	}

	if info.QuoteLink != "https://quickquote.example.com/quotes/q-1" {
		t.Errorf("quote link = %q", info.QuoteLink)
	}
	if !strings.Contains(info.Message, "Bright Gardens") {
		t.Errorf("message missing business name: %q", info.Message)
	}
	if !strings.Contains(info.Message, "Acme Corp") {
		t.Errorf("message missing customer name: %q", info.Message)
	}
	if !strings.Contains(info.WhatsAppLink, "wa.me/+15551234567") {
		t.Errorf("whatsapp link should target the stripped phone number: %q", info.WhatsAppLink)
	}
}

func TestExportQuoteRoundTripsThroughCodec(t *testing.T) {
	e := testEngine(t)

	payload, err := e.ExportQuote(context.Background(), "q-1")
	if err != nil {
		t.Fatalf("ExportQuote() error = %v", err)
	}

	decoded, err := serialization.DeserializeQuote(payload)
	if err != nil {
		t.Fatalf("exported payload does not decode: %v", err)
	}
	if decoded.QuoteNumber != "QQ-2026-007" || decoded.Total != 300 {
		t.Errorf("decoded = %+v", decoded)
	}
}

func TestPreviewQuoteDoesNotTouchStorage(t *testing.T) {
	e := NewEngine(nil, nil, nil, nil, nil, &config.Config{}, zap.NewNop())

	result := e.PreviewQuote(nil, nil)
	if result.Subtotal != 0 || result.Total != 0 {
		t.Errorf("empty preview = %+v, want zero totals", result)
	}
}
