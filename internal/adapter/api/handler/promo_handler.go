package handler

import (
	"heritageflavors/internal/usecase"
	"heritageflavors/pkg/response"

	"github.com/labstack/echo/v4"
)

type PromoHandler struct {
	promoUseCase *usecase.PromoUseCase
}

func NewPromoHandler(promoUseCase *usecase.PromoUseCase) *PromoHandler {
	return &PromoHandler{
		promoUseCase: promoUseCase,
	}
}

func (h *PromoHandler) GetCountdown(c echo.Context) error {
	return response.Success(c, h.promoUseCase.Countdown())
}

func (h *PromoHandler) ListOffers(c echo.Context) error {
	offers, err := h.promoUseCase.Offers(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, offers)
}
