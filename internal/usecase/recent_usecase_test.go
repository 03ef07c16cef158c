package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newRecentFixture() (*RecentUseCase, *fakeStateRepo) {
	state := newFakeStateRepo()
	uc := NewRecentUseCase(&fakeCatalogRepo{products: testProducts()}, state)
	return uc, state
}

func TestRecentRecordDeduplicatesToFront(t *testing.T) {
	uc, state := newRecentFixture()
	ctx := context.Background()

	uc.Record(ctx, "s1", "a")
	uc.Record(ctx, "s1", "b")
	ids := uc.Record(ctx, "s1", "a")

	assert.Equal(t, []string{"a", "b"}, ids, "re-viewing moves the id to the front, no duplicate")
	assert.Equal(t, 3, state.recentSaves, "every view persists the list")
}

func TestRecentRecordSameIDTwiceInARow(t *testing.T) {
	uc, _ := newRecentFixture()
	ctx := context.Background()

	uc.Record(ctx, "s1", "a")
	ids := uc.Record(ctx, "s1", "a")

	assert.Equal(t, []string{"a"}, ids)
}

func TestRecentListNeverExceedsFour(t *testing.T) {
	uc, _ := newRecentFixture()
	ctx := context.Background()

	var ids []string
	for _, id := range []string{"p1", "p2", "p3", "p4", "p5", "p6"} {
		ids = uc.Record(ctx, "s1", id)
		assert.LessOrEqual(t, len(ids), 4)
	}

	// Newest first, oldest evicted
	assert.Equal(t, []string{"p6", "p5", "p4", "p3"}, ids)
}

func TestRecentListResolvesAgainstCatalog(t *testing.T) {
	uc, _ := newRecentFixture()
	ctx := context.Background()

	uc.Record(ctx, "s1", "b")
	uc.Record(ctx, "s1", "ghost")
	uc.Record(ctx, "s1", "a")

	products, err := uc.List(ctx, "s1")
	assert.NoError(t, err)
	assert.Len(t, products, 2, "ids missing from the catalog are skipped")
	assert.Equal(t, "a", products[0].ID)
	assert.Equal(t, "b", products[1].ID)
}

func TestRecentLoadFailureYieldsEmptyList(t *testing.T) {
	uc, state := newRecentFixture()
	ctx := context.Background()

	uc.Record(ctx, "s1", "a")
	state.failLoad = true

	products, err := uc.List(ctx, "s1")
	assert.NoError(t, err)
	assert.Empty(t, products)
}
