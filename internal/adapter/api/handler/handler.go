package handler

import (
	"heritageflavors/internal/usecase"
)

var (
	catalogHandler *CatalogHandler
	cartHandler    *CartHandler
	compareHandler *CompareHandler
	recentHandler  *RecentHandler
	promoHandler   *PromoHandler
	healthHandler  *HealthHandler
)

func Setup(
	catalogUseCase *usecase.CatalogUseCase,
	cartUseCase *usecase.CartUseCase,
	compareUseCase *usecase.CompareUseCase,
	recentUseCase *usecase.RecentUseCase,
	promoUseCase *usecase.PromoUseCase,
) {
	catalogHandler = NewCatalogHandler(catalogUseCase, recentUseCase)
	cartHandler = NewCartHandler(cartUseCase)
	compareHandler = NewCompareHandler(compareUseCase)
	recentHandler = NewRecentHandler(recentUseCase)
	promoHandler = NewPromoHandler(promoUseCase)
	healthHandler = NewHealthHandler()
}

func GetCatalogHandler() *CatalogHandler {
	return catalogHandler
}

func GetCartHandler() *CartHandler {
	return cartHandler
}

func GetCompareHandler() *CompareHandler {
	return compareHandler
}

func GetRecentHandler() *RecentHandler {
	return recentHandler
}

func GetPromoHandler() *PromoHandler {
	return promoHandler
}

func GetHealthHandler() *HealthHandler {
	return healthHandler
}
