package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"quickquote.io/quickquote"
	"quickquote.io/quickquote/models"
)

type CustomerHandler interface {
	CreateCustomer(c echo.Context) error
	GetCustomer(c echo.Context) error
	UpdateCustomer(c echo.Context) error
	DeleteCustomer(c echo.Context) error
	ListCustomers(c echo.Context) error
}

type customerHandler struct {
	app quickquote.QuickQuote
}

func NewCustomerHandler(app quickquote.QuickQuote) CustomerHandler {
	return &customerHandler{app: app}
}

// CreateCustomer handles POST /customers
func (ch *customerHandler) CreateCustomer(c echo.Context) error {
	var customer models.Customer
	if err := c.Bind(&customer); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request payload"})
	}
	if customer.BusinessID == "" || customer.Name == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "business_id and name are required"})
	}

	if err := ch.app.CreateCustomer(c.Request().Context(), &customer); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to create customer"})
	}

	return c.JSON(http.StatusCreated, customer)
}

// GetCustomer handles GET /customers/:id
func (ch *customerHandler) GetCustomer(c echo.Context) error {
	customer, err := ch.app.GetCustomer(c.Request().Context(), c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Customer not found"})
	}

	return c.JSON(http.StatusOK, customer)
}

// UpdateCustomer handles PUT /customers/:id
func (ch *customerHandler) UpdateCustomer(c echo.Context) error {
	var patch models.PartialCustomer
	if err := c.Bind(&patch); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request payload"})
	}
	patch.ID = c.Param("id")

	if err := ch.app.UpdateCustomer(c.Request().Context(), &patch); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to update customer"})
	}

	return c.NoContent(http.StatusOK)
}

// DeleteCustomer handles DELETE /customers/:id
func (ch *customerHandler) DeleteCustomer(c echo.Context) error {
	if err := ch.app.DeleteCustomer(c.Request().Context(), c.Param("id")); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to delete customer"})
	}

	return c.NoContent(http.StatusNoContent)
}

// ListCustomers handles GET /customers?business_id=
func (ch *customerHandler) ListCustomers(c echo.Context) error {
	businessID := c.QueryParam("business_id")
	if businessID == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "business_id is required"})
	}

	customers, err := ch.app.ListCustomers(c.Request().Context(), businessID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to list customers"})
	}

	return c.JSON(http.StatusOK, customers)
}
