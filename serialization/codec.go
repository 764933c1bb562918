// Package serialization round-trips quotes to and from their JSON text
// form. Timestamps are rendered as ISO-8601 strings (RFC 3339); absent
// optional fields are omitted, not encoded as null, so presence
// survives a round trip.
package serialization

import (
	"encoding/json"
	"errors"
	"fmt"

	"quickquote.io/quickquote/models"
)

// ErrMalformedQuote wraps any parse failure in DeserializeQuote.
var ErrMalformedQuote = errors.New("serialization: malformed quote payload")

// SerializeQuote encodes a quote, including any nested customer and
// items, as a JSON string.
func SerializeQuote(q *models.Quote) (string, error) {
	data, err := json.Marshal(q)
	if err != nil {
		return "", fmt.Errorf("failed to serialize quote: %w", err)
	}
	return string(data), nil
}

// DeserializeQuote is the exact inverse of SerializeQuote. Any
// low-level parse failure is reported as ErrMalformedQuote; there is no
// fallback representation.
func DeserializeQuote(text string) (*models.Quote, error) {
	var q models.Quote
	if err := json.Unmarshal([]byte(text), &q); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedQuote, err)
	}
	return &q, nil
}
