package handler

import (
	"strconv"

	"heritageflavors/internal/domain/service"
	"heritageflavors/internal/usecase"
	"heritageflavors/pkg/errors"
	"heritageflavors/pkg/response"
	"heritageflavors/pkg/utils"

	"github.com/labstack/echo/v4"
)

type CatalogHandler struct {
	catalogUseCase *usecase.CatalogUseCase
	recentUseCase  *usecase.RecentUseCase
}

func NewCatalogHandler(catalogUseCase *usecase.CatalogUseCase, recentUseCase *usecase.RecentUseCase) *CatalogHandler {
	return &CatalogHandler{
		catalogUseCase: catalogUseCase,
		recentUseCase:  recentUseCase,
	}
}

// ListProducts serves the shop grid. Query params mirror the storefront
// URL state: category, search, filter (bestsellers|offers), maxPrice, sort.
func (h *CatalogHandler) ListProducts(c echo.Context) error {
	maxPrice, _ := strconv.ParseFloat(c.QueryParam("maxPrice"), 64)

	query := service.ViewQuery{
		Category:     c.QueryParam("category"),
		Search:       c.QueryParam("search"),
		PriceCeiling: maxPrice,
		Preset:       c.QueryParam("filter"),
		Sort:         c.QueryParam("sort"),
	}

	pagination := utils.GetPaginationParams(c)

	products, total, err := h.catalogUseCase.ListProducts(
		c.Request().Context(),
		query,
		pagination.PageSize,
		pagination.Offset,
	)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, products, total, pagination.Page, pagination.PageSize)
}

// GetProduct returns one product and records the view on the session's
// recently-viewed list.
func (h *CatalogHandler) GetProduct(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return response.Error(c, errors.BadRequest("Product ID is required", nil))
	}

	product, err := h.catalogUseCase.GetProduct(c.Request().Context(), id)
	if err != nil {
		return response.Error(c, err)
	}

	sid := c.Get("sid").(string)
	h.recentUseCase.Record(c.Request().Context(), sid, id)

	return response.Success(c, product)
}

func (h *CatalogHandler) GetRelatedProducts(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return response.Error(c, errors.BadRequest("Product ID is required", nil))
	}

	products, err := h.catalogUseCase.RelatedProducts(c.Request().Context(), id)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, products)
}

func (h *CatalogHandler) GetOrderLink(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return response.Error(c, errors.BadRequest("Product ID is required", nil))
	}

	quantity, _ := strconv.Atoi(c.QueryParam("quantity"))

	link, err := h.catalogUseCase.OrderInquiryLink(c.Request().Context(), id, quantity)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{"url": link})
}

func (h *CatalogHandler) ListCategories(c echo.Context) error {
	return response.Success(c, h.catalogUseCase.Categories())
}
