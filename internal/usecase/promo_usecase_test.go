package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"heritageflavors/internal/domain/entity"
)

func TestCountdownBreaksRemainingTimeIntoUnits(t *testing.T) {
	uc := NewPromoUseCase(&fakeCatalogRepo{}, 72*time.Hour)

	base := time.Date(2025, time.November, 1, 10, 0, 0, 0, time.UTC)
	uc.target = base.Add(2*24*time.Hour + 5*time.Hour + 30*time.Minute + 45*time.Second)
	uc.now = func() time.Time { return base }

	snapshot := uc.Countdown()

	assert.Equal(t, 2, snapshot.Days)
	assert.Equal(t, 5, snapshot.Hours)
	assert.Equal(t, 30, snapshot.Minutes)
	assert.Equal(t, 45, snapshot.Seconds)
	assert.False(t, snapshot.Expired)
}

func TestCountdownFreezesAtZeroAfterTarget(t *testing.T) {
	uc := NewPromoUseCase(&fakeCatalogRepo{}, 72*time.Hour)

	base := time.Date(2025, time.November, 1, 10, 0, 0, 0, time.UTC)
	uc.target = base
	uc.now = func() time.Time { return base.Add(90 * time.Minute) }

	snapshot := uc.Countdown()

	assert.Equal(t, entity.CountdownSnapshot{Expired: true}, snapshot, "past the target everything floors to zero")
}

func TestCountdownExactTargetIsExpired(t *testing.T) {
	uc := NewPromoUseCase(&fakeCatalogRepo{}, time.Hour)

	base := time.Now()
	uc.target = base
	uc.now = func() time.Time { return base }

	assert.True(t, uc.Countdown().Expired)
}

func TestPromoOffers(t *testing.T) {
	offers := []entity.Offer{{ID: "festive10", Title: "Festive Season Special", Code: "FESTIVE10"}}
	uc := NewPromoUseCase(&fakeCatalogRepo{offers: offers}, time.Hour)

	got, err := uc.Offers(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, offers, got)
}
