package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"quickquote.io/quickquote"
	"quickquote.io/quickquote/models"
)

type ServiceHandler interface {
	CreateService(c echo.Context) error
	GetService(c echo.Context) error
	UpdateService(c echo.Context) error
	DeleteService(c echo.Context) error
	ListServices(c echo.Context) error
}

type serviceHandler struct {
	app quickquote.QuickQuote
}

func NewServiceHandler(app quickquote.QuickQuote) ServiceHandler {
	return &serviceHandler{app: app}
}

// CreateService handles POST /services
func (sh *serviceHandler) CreateService(c echo.Context) error {
	var svc models.Service
	if err := c.Bind(&svc); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request payload"})
	}
	if svc.BusinessID == "" || svc.Name == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "business_id and name are required"})
	}

	if err := sh.app.CreateService(c.Request().Context(), &svc); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to create service"})
	}

	return c.JSON(http.StatusCreated, svc)
}

// GetService handles GET /services/:id
func (sh *serviceHandler) GetService(c echo.Context) error {
	svc, err := sh.app.GetService(c.Request().Context(), c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Service not found"})
	}

	return c.JSON(http.StatusOK, svc)
}

// UpdateService handles PUT /services/:id
func (sh *serviceHandler) UpdateService(c echo.Context) error {
	var patch models.PartialService
	if err := c.Bind(&patch); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request payload"})
	}
	patch.ID = c.Param("id")

	if err := sh.app.UpdateService(c.Request().Context(), &patch); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to update service"})
	}

	return c.NoContent(http.StatusOK)
}

// DeleteService handles DELETE /services/:id
func (sh *serviceHandler) DeleteService(c echo.Context) error {
	if err := sh.app.DeleteService(c.Request().Context(), c.Param("id")); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to delete service"})
	}

	return c.NoContent(http.StatusNoContent)
}

// ListServices handles GET /services?business_id=&active=true
func (sh *serviceHandler) ListServices(c echo.Context) error {
	businessID := c.QueryParam("business_id")
	if businessID == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "business_id is required"})
	}
	activeOnly := c.QueryParam("active") == "true"

	services, err := sh.app.ListServices(c.Request().Context(), businessID, activeOnly)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to list services"})
	}

	return c.JSON(http.StatusOK, services)
}
