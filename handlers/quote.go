package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"quickquote.io/quickquote"
	"quickquote.io/quickquote/calculation"
	"quickquote.io/quickquote/models"
	"quickquote.io/quickquote/models/enum"
	"quickquote.io/quickquote/quote"
	"quickquote.io/quickquote/serialization"
)

type QuoteHandler interface {
	CreateQuote(c echo.Context) error
	GetQuote(c echo.Context) error
	ListQuotes(c echo.Context) error
	UpdateQuote(c echo.Context) error
	UpdateQuoteStatus(c echo.Context) error
	DuplicateQuote(c echo.Context) error
	DeleteQuote(c echo.Context) error
	PreviewQuote(c echo.Context) error
	ShareQuote(c echo.Context) error
	QuotePDF(c echo.Context) error
	ExportQuote(c echo.Context) error
	ImportQuote(c echo.Context) error
}

type quoteHandler struct {
	app quickquote.QuickQuote
}

func NewQuoteHandler(app quickquote.QuickQuote) QuoteHandler {
	return &quoteHandler{app: app}
}

type createQuoteRequest struct {
	BusinessID string                `json:"business_id"`
	CustomerID *string               `json:"customer_id,omitempty"`
	Items      []calculation.Item    `json:"items"`
	Discount   *calculation.Discount `json:"discount,omitempty"`
	Notes      *string               `json:"notes,omitempty"`
	Terms      *string               `json:"terms,omitempty"`
	ValidUntil *time.Time            `json:"valid_until,omitempty"`
}

// CreateQuote handles POST /quotes
func (qh *quoteHandler) CreateQuote(c echo.Context) error {
	var req createQuoteRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request payload"})
	}
	if req.BusinessID == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "business_id is required"})
	}

	created, err := qh.app.CreateQuote(c.Request().Context(), quote.CreateInput{
		BusinessID: req.BusinessID,
		CustomerID: req.CustomerID,
		Items:      req.Items,
		Discount:   req.Discount,
		Notes:      req.Notes,
		Terms:      req.Terms,
		ValidUntil: req.ValidUntil,
	}, time.Now())
	if err != nil {
		switch {
		case errors.Is(err, quote.ErrNoItems), errors.Is(err, quote.ErrInvalidDiscount):
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		case errors.Is(err, quote.ErrNumberExhausted):
			return c.JSON(http.StatusConflict, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to create quote"})
	}

	return c.JSON(http.StatusCreated, created)
}

// GetQuote handles GET /quotes/:id
func (qh *quoteHandler) GetQuote(c echo.Context) error {
	q, err := qh.app.GetQuote(c.Request().Context(), c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Quote not found"})
	}

	return c.JSON(http.StatusOK, q)
}

// ListQuotes handles GET /quotes?business_id=&status=&q=
func (qh *quoteHandler) ListQuotes(c echo.Context) error {
	businessID := c.QueryParam("business_id")
	if businessID == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "business_id is required"})
	}

	var status *enum.QuoteStatus
	if raw := c.QueryParam("status"); raw != "" {
		s := enum.QuoteStatus(raw)
		if !s.Valid() {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "Unknown status"})
		}
		status = &s
	}

	quotes, err := qh.app.ListQuotes(c.Request().Context(), businessID, status, c.QueryParam("q"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to list quotes"})
	}

	return c.JSON(http.StatusOK, quotes)
}

// UpdateQuote handles PUT /quotes/:id
func (qh *quoteHandler) UpdateQuote(c echo.Context) error {
	var patch models.PartialQuote
	if err := c.Bind(&patch); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request payload"})
	}
	patch.ID = c.Param("id")

	if err := qh.app.UpdateQuote(c.Request().Context(), &patch); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to update quote"})
	}

	return c.NoContent(http.StatusOK)
}

type updateStatusRequest struct {
	Status enum.QuoteStatus `json:"status"`
}

// UpdateQuoteStatus handles PATCH /quotes/:id/status
func (qh *quoteHandler) UpdateQuoteStatus(c echo.Context) error {
	var req updateStatusRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request payload"})
	}
	if !req.Status.Valid() {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Unknown status"})
	}

	updated, err := qh.app.UpdateQuoteStatus(c.Request().Context(), c.Param("id"), req.Status)
	if err != nil {
		if errors.Is(err, quote.ErrInvalidTransition) {
			return c.JSON(http.StatusConflict, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to update quote status"})
	}

	return c.JSON(http.StatusOK, updated)
}

// DuplicateQuote handles POST /quotes/:id/duplicate
func (qh *quoteHandler) DuplicateQuote(c echo.Context) error {
	dup, err := qh.app.DuplicateQuote(c.Request().Context(), c.Param("id"), time.Now())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to duplicate quote"})
	}

	return c.JSON(http.StatusCreated, dup)
}

// DeleteQuote handles DELETE /quotes/:id
func (qh *quoteHandler) DeleteQuote(c echo.Context) error {
	if err := qh.app.DeleteQuote(c.Request().Context(), c.Param("id")); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to delete quote"})
	}

	return c.NoContent(http.StatusNoContent)
}

type previewQuoteRequest struct {
	Items    []calculation.Item    `json:"items"`
	Discount *calculation.Discount `json:"discount,omitempty"`
}

// PreviewQuote handles POST /quotes/preview
func (qh *quoteHandler) PreviewQuote(c echo.Context) error {
	var req previewQuoteRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request payload"})
	}
	if req.Discount != nil && !req.Discount.Type.Valid() {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Unknown discount type"})
	}

	return c.JSON(http.StatusOK, qh.app.PreviewQuote(req.Items, req.Discount))
}

// ShareQuote handles GET /quotes/:id/share
func (qh *quoteHandler) ShareQuote(c echo.Context) error {
	info, err := qh.app.ShareQuote(c.Request().Context(), c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Quote not found"})
	}

	return c.JSON(http.StatusOK, info)
}

// QuotePDF handles GET /quotes/:id/pdf
func (qh *quoteHandler) QuotePDF(c echo.Context) error {
	data, err := qh.app.QuotePDF(c.Request().Context(), c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Quote not found"})
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="quote.pdf"`)
	return c.Blob(http.StatusOK, "application/pdf", data)
}

// ExportQuote handles GET /quotes/:id/export
func (qh *quoteHandler) ExportQuote(c echo.Context) error {
	payload, err := qh.app.ExportQuote(c.Request().Context(), c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Quote not found"})
	}

	return c.Blob(http.StatusOK, echo.MIMEApplicationJSON, []byte(payload))
}

type importQuoteRequest struct {
	Payload string `json:"payload"`
}

// ImportQuote handles POST /quotes/import
func (qh *quoteHandler) ImportQuote(c echo.Context) error {
	var req importQuoteRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request payload"})
	}

	imported, err := qh.app.ImportQuote(c.Request().Context(), req.Payload, time.Now())
	if err != nil {
		if errors.Is(err, serialization.ErrMalformedQuote) {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to import quote"})
	}

	return c.JSON(http.StatusCreated, imported)
}
