package handler

import (
	"heritageflavors/internal/usecase"
	"heritageflavors/pkg/response"

	"github.com/labstack/echo/v4"
)

type RecentHandler struct {
	recentUseCase *usecase.RecentUseCase
}

func NewRecentHandler(recentUseCase *usecase.RecentUseCase) *RecentHandler {
	return &RecentHandler{
		recentUseCase: recentUseCase,
	}
}

func (h *RecentHandler) GetRecentlyViewed(c echo.Context) error {
	sid := c.Get("sid").(string)

	products, err := h.recentUseCase.List(c.Request().Context(), sid)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, products)
}
