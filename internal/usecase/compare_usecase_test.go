package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompareToggleCapsAtThree(t *testing.T) {
	uc := NewCompareUseCase(&fakeCatalogRepo{products: testProducts()})

	uc.Toggle("s1", "a")
	uc.Toggle("s1", "b")
	uc.Toggle("s1", "c")
	ids := uc.Toggle("s1", "d") // fourth toggle is silently dropped

	assert.Equal(t, []string{"a", "b", "c"}, ids, "insertion order is preserved")
}

func TestCompareToggleRemovesMemberEvenWhenFull(t *testing.T) {
	uc := NewCompareUseCase(&fakeCatalogRepo{products: testProducts()})

	uc.Toggle("s1", "a")
	uc.Toggle("s1", "b")
	uc.Toggle("s1", "c")

	ids := uc.Toggle("s1", "b")
	assert.Equal(t, []string{"a", "c"}, ids)

	// Freed slot accepts a new member again
	ids = uc.Toggle("s1", "d")
	assert.Equal(t, []string{"a", "c", "d"}, ids)
}

func TestCompareSizeNeverExceedsThree(t *testing.T) {
	uc := NewCompareUseCase(&fakeCatalogRepo{products: testProducts()})

	toggles := []string{"a", "b", "a", "c", "d", "e", "b", "f", "a"}
	for _, id := range toggles {
		ids := uc.Toggle("s1", id)
		assert.LessOrEqual(t, len(ids), 3)
	}
}

func TestCompareClear(t *testing.T) {
	uc := NewCompareUseCase(&fakeCatalogRepo{products: testProducts()})

	uc.Toggle("s1", "a")
	uc.Toggle("s1", "b")
	uc.Clear("s1")

	assert.Empty(t, uc.IDs("s1"))
}

func TestCompareListResolvesProductsInInsertionOrder(t *testing.T) {
	uc := NewCompareUseCase(&fakeCatalogRepo{products: testProducts()})

	uc.Toggle("s1", "c")
	uc.Toggle("s1", "a")
	uc.Toggle("s1", "ghost") // unresolvable ids are skipped on render

	products, err := uc.List(context.Background(), "s1")
	assert.NoError(t, err)
	assert.Len(t, products, 2)
	assert.Equal(t, "c", products[0].ID)
	assert.Equal(t, "a", products[1].ID)
}

func TestCompareSessionsAreIsolated(t *testing.T) {
	uc := NewCompareUseCase(&fakeCatalogRepo{products: testProducts()})

	uc.Toggle("s1", "a")

	assert.Empty(t, uc.IDs("s2"))
}
