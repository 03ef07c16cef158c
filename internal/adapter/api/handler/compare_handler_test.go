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

func newCompareTestFixture() (*echo.Echo, *CompareHandler) {
	e := echo.New()
	compareUseCase := usecase.NewCompareUseCase(repository.NewMemoryCatalogRepository())
	return e, NewCompareHandler(compareUseCase)
}

func toggleCompare(t *testing.T, e *echo.Echo, h *CompareHandler, sid, productID string) []string {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/v1/compare/"+productID, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/v1/compare/:productId")
	c.SetParamNames("productId")
	c.SetParamValues(productID)
	c.Set("sid", sid)

	assert.NoError(t, h.ToggleCompare(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var env struct {
		Data struct {
			IDs []string `json:"ids"`
		} `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env.Data.IDs
}

func TestToggleCompareFourthProductIsDropped(t *testing.T) {
	e, h := newCompareTestFixture()

	toggleCompare(t, e, h, "s1", "ariselu")
	toggleCompare(t, e, h, "s1", "avakaya")
	toggleCompare(t, e, h, "s1", "gongura")
	ids := toggleCompare(t, e, h, "s1", "chekkalu")

	assert.Equal(t, []string{"ariselu", "avakaya", "gongura"}, ids)
}

func TestGetComparisonResolvesProducts(t *testing.T) {
	e, h := newCompareTestFixture()

	toggleCompare(t, e, h, "s1", "gongura")
	toggleCompare(t, e, h, "s1", "ariselu")

	req := httptest.NewRequest(http.MethodGet, "/v1/compare", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("sid", "s1")

	assert.NoError(t, h.GetComparison(c))

	var env struct {
		Data struct {
			IDs      []string `json:"ids"`
			Products []struct {
				ID string `json:"id"`
			} `json:"products"`
		} `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	assert.Equal(t, []string{"gongura", "ariselu"}, env.Data.IDs)
	assert.Len(t, env.Data.Products, 2)
	assert.Equal(t, "gongura", env.Data.Products[0].ID)
}

func TestClearComparison(t *testing.T) {
	e, h := newCompareTestFixture()

	toggleCompare(t, e, h, "s1", "ariselu")

	req := httptest.NewRequest(http.MethodDelete, "/v1/compare", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("sid", "s1")

	assert.NoError(t, h.ClearComparison(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	ids := toggleCompare(t, e, h, "s1", "avakaya")
	assert.Equal(t, []string{"avakaya"}, ids)
}
