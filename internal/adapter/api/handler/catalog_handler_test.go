package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"heritageflavors/internal/adapter/repository"
	"heritageflavors/internal/usecase"
)

func newCatalogTestFixture(t *testing.T) (*echo.Echo, *CatalogHandler, *RecentHandler) {
	t.Helper()

	e := echo.New()

	sessionRepo, err := repository.NewSqliteSessionRepository(t.TempDir())
	assert.NoError(t, err)
	t.Cleanup(func() { sessionRepo.Close() })

	catalogRepo := repository.NewMemoryCatalogRepository()
	catalogUseCase := usecase.NewCatalogUseCase(catalogRepo, "Heritage Flavors", "919000000000")
	recentUseCase := usecase.NewRecentUseCase(catalogRepo, sessionRepo)

	return e, NewCatalogHandler(catalogUseCase, recentUseCase), NewRecentHandler(recentUseCase)
}

func TestListProductsAppliesQueryParams(t *testing.T) {
	e, h, _ := newCatalogTestFixture(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/products?filter=bestsellers&sort=priceLow", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("sid", "s1")

	assert.NoError(t, h.ListProducts(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var env struct {
		Data struct {
			Items []struct {
				ID           string  `json:"id"`
				Price        float64 `json:"price"`
				IsBestSeller bool    `json:"is_best_seller"`
			} `json:"items"`
			Total int64 `json:"total"`
		} `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	assert.NotEmpty(t, env.Data.Items)
	for i, item := range env.Data.Items {
		assert.True(t, item.IsBestSeller)
		if i > 0 {
			assert.LessOrEqual(t, env.Data.Items[i-1].Price, item.Price)
		}
	}
}

func TestGetProductRecordsRecentlyViewed(t *testing.T) {
	e, h, recentHandler := newCatalogTestFixture(t)

	view := func(id string) {
		req := httptest.NewRequest(http.MethodGet, "/v1/products/"+id, nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.SetPath("/v1/products/:id")
		c.SetParamNames("id")
		c.SetParamValues(id)
		c.Set("sid", "s1")
		assert.NoError(t, h.GetProduct(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	}

	view("ariselu")
	view("avakaya")
	view("ariselu") // re-view moves to front, no duplicate

	req := httptest.NewRequest(http.MethodGet, "/v1/recently-viewed", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("sid", "s1")
	assert.NoError(t, recentHandler.GetRecentlyViewed(c))

	var env struct {
		Data []struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	assert.Len(t, env.Data, 2)
	assert.Equal(t, "ariselu", env.Data[0].ID)
	assert.Equal(t, "avakaya", env.Data[1].ID)
}

func TestGetProductUnknownIDIsNotFound(t *testing.T) {
	e, h, _ := newCatalogTestFixture(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/products/ghost", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/v1/products/:id")
	c.SetParamNames("id")
	c.SetParamValues("ghost")
	c.Set("sid", "s1")

	assert.NoError(t, h.GetProduct(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetOrderLink(t *testing.T) {
	e, h, _ := newCatalogTestFixture(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/products/ariselu/order-link?quantity=2", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/v1/products/:id/order-link")
	c.SetParamNames("id")
	c.SetParamValues("ariselu")
	c.Set("sid", "s1")

	assert.NoError(t, h.GetOrderLink(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var env struct {
		Data struct {
			URL string `json:"url"`
		} `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	assert.Contains(t, env.Data.URL, "https://wa.me/919000000000?text=")
}
