package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/siriart/billing-admin/internal/core/domain"
	"github.com/siriart/billing-admin/internal/core/ports"
)

// StoreHandler handles HTTP requests for store operations. Route params
// accept both standard "STR-<millis>" and legacy "store_<n>" ids.
type StoreHandler struct {
	service ports.StoreService
}

func NewStoreHandler(service ports.StoreService) *StoreHandler {
	return &StoreHandler{service: service}
}

type createStoreRequest struct {
	Name    string `json:"name"    validate:"required"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	GSTIN   string `json:"gstin"`
}

type updateStoreRequest struct {
	Name    *string `json:"name"`
	Address *string `json:"address"`
	Phone   *string `json:"phone"`
	GSTIN   *string `json:"gstin"`
}

// List returns the whole stores collection.
func (h *StoreHandler) List(c echo.Context) error {
	stores, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stores)
}

// Get returns one store by id.
func (h *StoreHandler) Get(c echo.Context) error {
	store, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, store)
}

// Create adds a store; the assigned id carries the "STR-" prefix.
//
// @Summary      Create a store
// @Tags         stores
// @Accept       json
// @Produce      json
// @Param        body  body      createStoreRequest  true  "Store fields"
// @Success      201   {object}  domain.Store
// @Failure      400   {object}  map[string]string
// @Router       /api/stores [post]
func (h *StoreHandler) Create(c echo.Context) error {
	var req createStoreRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	created, err := h.service.Create(c.Request().Context(), domain.Store{
		Name:    req.Name,
		Address: req.Address,
		Phone:   req.Phone,
		GSTIN:   req.GSTIN,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, created)
}

// Update merges the posted fields into an existing store.
func (h *StoreHandler) Update(c echo.Context) error {
	var req updateStoreRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	updated, err := h.service.Update(c.Request().Context(), c.Param("id"), func(s *domain.Store) {
		if req.Name != nil {
			s.Name = *req.Name
		}
		if req.Address != nil {
			s.Address = *req.Address
		}
		if req.Phone != nil {
			s.Phone = *req.Phone
		}
		if req.GSTIN != nil {
			s.GSTIN = *req.GSTIN
		}
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, updated)
}

// Delete removes a store.
func (h *StoreHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
