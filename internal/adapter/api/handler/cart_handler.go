package handler

import (
	"heritageflavors/internal/domain/entity"
	"heritageflavors/internal/usecase"
	"heritageflavors/pkg/errors"
	"heritageflavors/pkg/response"

	"github.com/labstack/echo/v4"
)

type CartHandler struct {
	cartUseCase *usecase.CartUseCase
}

func NewCartHandler(cartUseCase *usecase.CartUseCase) *CartHandler {
	return &CartHandler{
		cartUseCase: cartUseCase,
	}
}

type giftRequest struct {
	IsGift bool   `json:"is_gift"`
	Note   string `json:"note"`
}

type addCartItemRequest struct {
	ProductID string       `json:"product_id" validate:"required"`
	Quantity  int          `json:"quantity"`
	Gift      *giftRequest `json:"gift,omitempty"`
}

type updateQuantityRequest struct {
	Delta int `json:"delta" validate:"required"`
}

func (h *CartHandler) GetCart(c echo.Context) error {
	sid := c.Get("sid").(string)

	cart, err := h.cartUseCase.Get(c.Request().Context(), sid)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, cart)
}

func (h *CartHandler) AddItem(c echo.Context) error {
	var req addCartItemRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	var gift *entity.GiftData
	if req.Gift != nil {
		gift = &entity.GiftData{IsGift: req.Gift.IsGift, Note: req.Gift.Note}
	}

	sid := c.Get("sid").(string)

	cart, err := h.cartUseCase.Add(c.Request().Context(), sid, req.ProductID, req.Quantity, gift)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, cart)
}

func (h *CartHandler) UpdateQuantity(c echo.Context) error {
	productID := c.Param("productId")
	if productID == "" {
		return response.Error(c, errors.BadRequest("Product ID is required", nil))
	}

	var req updateQuantityRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	sid := c.Get("sid").(string)

	cart, err := h.cartUseCase.UpdateQuantity(c.Request().Context(), sid, productID, req.Delta)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, cart)
}

func (h *CartHandler) RemoveItem(c echo.Context) error {
	productID := c.Param("productId")
	if productID == "" {
		return response.Error(c, errors.BadRequest("Product ID is required", nil))
	}

	sid := c.Get("sid").(string)

	cart, err := h.cartUseCase.Remove(c.Request().Context(), sid, productID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, cart)
}
