// Package share builds the customer-facing artifacts for sending a
// quote over WhatsApp: the message text, the wa.me deep link and the
// public quote URL.
package share

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"quickquote.io/quickquote/models"
)

// MessageInput carries everything the WhatsApp message needs. Customer
// may be nil; the quote's own relation is used as a fallback.
type MessageInput struct {
	Quote     *models.Quote
	Business  *models.Business
	Customer  *models.Customer
	QuoteLink string
}

func formatPrice(price float64) string {
	return fmt.Sprintf("$%.2f", price)
}

func formatDate(t *time.Time) string {
	if t == nil {
		return "N/A"
	}
	return t.Format("January 2, 2006")
}

// WhatsAppMessage renders the share message: business name, customer
// name, quote number, dates, total and link.
func WhatsAppMessage(input MessageInput) string {
	customer := input.Customer
	if customer == nil {
		customer = input.Quote.Customer
	}
	customerName := "Valued Customer"
	if customer != nil && customer.Name != "" {
		customerName = customer.Name
	}

	var b strings.Builder
	fmt.Fprintf(&b, "*Quote from %s*\n\n", input.Business.Name)
	fmt.Fprintf(&b, "Hi %s!\n\n", customerName)
	b.WriteString("Here's your quote details:\n\n")
	fmt.Fprintf(&b, "*Quote Number:* %s\n", input.Quote.QuoteNumber)
	fmt.Fprintf(&b, "*Date:* %s\n", formatDate(&input.Quote.CreatedAt))
	fmt.Fprintf(&b, "*Valid Until:* %s\n\n", formatDate(input.Quote.ValidUntil))
	fmt.Fprintf(&b, "*Total Amount:* %s\n\n", formatPrice(input.Quote.Total))
	fmt.Fprintf(&b, "*View Full Quote:*\n%s\n\n", input.QuoteLink)
	b.WriteString("Thank you for your interest! Feel free to reach out if you have any questions.\n\n")
	b.WriteString("_Sent via QuickQuote_")

	return b.String()
}

var phoneStripper = strings.NewReplacer(" ", "", "-", "", "(", "", ")", "")

// WhatsAppLink builds the wa.me deep link for the message. Without a
// phone number the link opens WhatsApp's contact picker.
func WhatsAppLink(message, phoneNumber string) string {
	encoded := url.QueryEscape(message)
	if phoneNumber != "" {
		return fmt.Sprintf("https://wa.me/%s?text=%s", phoneStripper.Replace(phoneNumber), encoded)
	}
	return fmt.Sprintf("https://wa.me/?text=%s", encoded)
}

// QuoteLink builds the public URL for a quote.
func QuoteLink(quoteID, baseURL string) string {
	return fmt.Sprintf("%s/quotes/%s", strings.TrimSuffix(baseURL, "/"), quoteID)
}
