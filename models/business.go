package models

import "time"

// Business represents a tenant: the service business issuing quotes.
type Business struct {
	ID                  string    `json:"id"`
	UserID              string    `json:"user_id"`
	Name                string    `json:"name"`
	LogoURL             *string   `json:"logo_url,omitempty"`
	Phone               *string   `json:"phone,omitempty"`
	Email               *string   `json:"email,omitempty"`
	Address             *string   `json:"address,omitempty"`
	DefaultTerms        *string   `json:"default_terms,omitempty"`
	DefaultValidityDays int       `json:"default_validity_days"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

type PartialBusiness struct {
	ID                  string  `json:"id"`
	Name                *string `json:"name,omitempty"`
	LogoURL             *string `json:"logo_url,omitempty"`
	Phone               *string `json:"phone,omitempty"`
	Email               *string `json:"email,omitempty"`
	Address             *string `json:"address,omitempty"`
	DefaultTerms        *string `json:"default_terms,omitempty"`
	DefaultValidityDays *int    `json:"default_validity_days,omitempty"`
}

func NewBusiness() *Business {
	return &Business{}
}
