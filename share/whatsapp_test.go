package share

import (
	"strings"
	"testing"
	"time"

	"quickquote.io/quickquote/models"
)

func testQuote() *models.Quote {
	validUntil := time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC)
	return &models.Quote{
		ID:          "q-1",
		QuoteNumber: "QQ-2025-007",
		Total:       225,
		CreatedAt:   time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC),
		ValidUntil:  &validUntil,
	}
}

func TestWhatsAppMessage(t *testing.T) {
	message := WhatsAppMessage(MessageInput{
		Quote:     testQuote(),
		Business:  &models.Business{Name: "Moonlight Photography"},
		Customer:  &models.Customer{Name: "Alice Johnson"},
		QuoteLink: "https://quickquote.io/quotes/q-1",
	})

	for _, want := range []string{
		"Moonlight Photography",
		"Alice Johnson",
		"QQ-2025-007",
		"June 1, 2025",
		"July 1, 2025",
		"$225.00",
		"https://quickquote.io/quotes/q-1",
	} {
		if !strings.Contains(message, want) {
			t.Fatalf("message missing %q:\n%s", want, message)
		}
	}
}

func TestWhatsAppMessageFallsBackToQuoteCustomer(t *testing.T) {
	q := testQuote()
	q.Customer = &models.Customer{Name: "Bob Smith"}
	message := WhatsAppMessage(MessageInput{
		Quote:     q,
		Business:  &models.Business{Name: "Studio"},
		QuoteLink: "https://example.com/quotes/q-1",
	})
	if !strings.Contains(message, "Bob Smith") {
		t.Fatalf("expected fallback to quote customer:\n%s", message)
	}
}

func TestWhatsAppMessageWithoutCustomerOrDeadline(t *testing.T) {
	q := testQuote()
	q.ValidUntil = nil
	message := WhatsAppMessage(MessageInput{
		Quote:     q,
		Business:  &models.Business{Name: "Studio"},
		QuoteLink: "https://example.com/quotes/q-1",
	})
	if !strings.Contains(message, "Valued Customer") {
		t.Fatalf("expected generic greeting:\n%s", message)
	}
	if !strings.Contains(message, "*Valid Until:* N/A") {
		t.Fatalf("expected N/A validity:\n%s", message)
	}
}

func TestWhatsAppLinkWithPhone(t *testing.T) {
	link := WhatsAppLink("hello there", "+1 (555) 123-4567")
	if !strings.HasPrefix(link, "https://wa.me/+15551234567?text=") {
		t.Fatalf("unexpected link: %s", link)
	}
	if !strings.Contains(link, "hello+there") {
		t.Fatalf("message not encoded: %s", link)
	}
}

func TestWhatsAppLinkWithoutPhone(t *testing.T) {
	link := WhatsAppLink("hi", "")
	if link != "https://wa.me/?text=hi" {
		t.Fatalf("unexpected link: %s", link)
	}
}

func TestQuoteLink(t *testing.T) {
	if got := QuoteLink("q-1", "https://quickquote.io/"); got != "https://quickquote.io/quotes/q-1" {
		t.Fatalf("trailing slash not handled: %s", got)
	}
	if got := QuoteLink("q-1", "https://quickquote.io"); got != "https://quickquote.io/quotes/q-1" {
		t.Fatalf("unexpected link: %s", got)
	}
}
