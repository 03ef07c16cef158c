package handler

import (
	"heritageflavors/internal/usecase"
	"heritageflavors/pkg/errors"
	"heritageflavors/pkg/response"

	"github.com/labstack/echo/v4"
)

type CompareHandler struct {
	compareUseCase *usecase.CompareUseCase
}

func NewCompareHandler(compareUseCase *usecase.CompareUseCase) *CompareHandler {
	return &CompareHandler{
		compareUseCase: compareUseCase,
	}
}

// ToggleCompare flips a product in or out of the comparison set. A toggle
// against a full set comes back unchanged rather than failing.
func (h *CompareHandler) ToggleCompare(c echo.Context) error {
	productID := c.Param("productId")
	if productID == "" {
		return response.Error(c, errors.BadRequest("Product ID is required", nil))
	}

	sid := c.Get("sid").(string)
	ids := h.compareUseCase.Toggle(sid, productID)

	return response.Success(c, map[string]interface{}{
		"ids": ids,
	})
}

func (h *CompareHandler) GetComparison(c echo.Context) error {
	sid := c.Get("sid").(string)

	products, err := h.compareUseCase.List(c.Request().Context(), sid)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]interface{}{
		"ids":      h.compareUseCase.IDs(sid),
		"products": products,
	})
}

func (h *CompareHandler) ClearComparison(c echo.Context) error {
	sid := c.Get("sid").(string)
	h.compareUseCase.Clear(sid)

	return response.Success(c, map[string]string{
		"message": "Comparison cleared",
	})
}
