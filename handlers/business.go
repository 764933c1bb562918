package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"quickquote.io/quickquote"
	"quickquote.io/quickquote/models"
)

type BusinessHandler interface {
	CreateBusiness(c echo.Context) error
	GetBusiness(c echo.Context) error
	GetBusinessByUser(c echo.Context) error
	UpdateBusiness(c echo.Context) error
}

type businessHandler struct {
	app quickquote.QuickQuote
}

func NewBusinessHandler(app quickquote.QuickQuote) BusinessHandler {
	return &businessHandler{app: app}
}

// CreateBusiness handles POST /business
func (bh *businessHandler) CreateBusiness(c echo.Context) error {
	var business models.Business
	if err := c.Bind(&business); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request payload"})
	}
	if business.UserID == "" || business.Name == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "user_id and name are required"})
	}

	if err := bh.app.CreateBusiness(c.Request().Context(), &business); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to create business"})
	}

	return c.JSON(http.StatusCreated, business)
}

// GetBusiness handles GET /business/:id
func (bh *businessHandler) GetBusiness(c echo.Context) error {
	business, err := bh.app.GetBusiness(c.Request().Context(), c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Business not found"})
	}

	return c.JSON(http.StatusOK, business)
}

// GetBusinessByUser handles GET /users/:user_id/business
func (bh *businessHandler) GetBusinessByUser(c echo.Context) error {
	business, err := bh.app.GetBusinessByUser(c.Request().Context(), c.Param("user_id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Business not found"})
	}

	return c.JSON(http.StatusOK, business)
}

// UpdateBusiness handles PUT /business/:id
func (bh *businessHandler) UpdateBusiness(c echo.Context) error {
	var patch models.PartialBusiness
	if err := c.Bind(&patch); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request payload"})
	}
	patch.ID = c.Param("id")

	if err := bh.app.UpdateBusiness(c.Request().Context(), &patch); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to update business"})
	}

	return c.NoContent(http.StatusOK)
}
