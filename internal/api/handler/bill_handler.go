package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/siriart/billing-admin/internal/core/domain"
	"github.com/siriart/billing-admin/internal/core/ports"
)

// BillHandler handles the bills collection: receipts posted at point of
// sale plus bulk imports from the MySQL snapshot.
type BillHandler struct {
	service ports.BillService
}

func NewBillHandler(service ports.BillService) *BillHandler {
	return &BillHandler{service: service}
}

type importBillsResponse struct {
	Imported int `json:"imported"`
	Skipped  int `json:"skipped"`
}

// List returns the whole bills collection.
func (h *BillHandler) List(c echo.Context) error {
	bills, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, bills)
}

// Create appends one bill. Bills arrive fully formed; CreatedBy defaults to
// the session user when the client left it empty.
//
// @Summary      Create a bill
// @Tags         bills
// @Accept       json
// @Produce      json
// @Param        body  body      domain.Bill  true  "Bill"
// @Success      201   {object}  domain.Bill
// @Router       /api/bills [post]
func (h *BillHandler) Create(c echo.Context) error {
	var bill domain.Bill
	if err := c.Bind(&bill); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	if bill.CreatedBy == "" {
		if user, ok := ctxUser(c); ok {
			bill.CreatedBy = user.Name
		}
	}

	created, err := h.service.Create(c.Request().Context(), bill)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, created)
}

// Import appends the posted bills whose ids are not present yet and reports
// how many were imported and how many skipped.
func (h *BillHandler) Import(c echo.Context) error {
	var bills []domain.Bill
	if err := c.Bind(&bills); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	imported, skipped, err := h.service.Import(c.Request().Context(), bills)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, importBillsResponse{Imported: imported, Skipped: skipped})
}

// Delete removes a bill from the collection; 404 when the id is unknown.
func (h *BillHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
