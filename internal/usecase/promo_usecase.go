package usecase

import (
	"context"
	"encoding/json"
	"time"

	"heritageflavors/internal/domain/entity"
	"heritageflavors/internal/domain/repository"
	wsinfra "heritageflavors/internal/infrastructure/websocket"
	"heritageflavors/pkg/logger"
)

// PromoUseCase serves the decorative sale countdown and the static offer
// list. The countdown target is fixed at construction time and resets on
// every restart; it is a banner device, not a real deadline.
type PromoUseCase struct {
	catalogRepo repository.CatalogRepository
	target      time.Time
	now         func() time.Time
}

func NewPromoUseCase(catalogRepo repository.CatalogRepository, window time.Duration) *PromoUseCase {
	return &PromoUseCase{
		catalogRepo: catalogRepo,
		target:      time.Now().Add(window),
		now:         time.Now,
	}
}

// Countdown computes whole days/hours/minutes/seconds until the target.
// Past the target it stays frozen at zero with the expired flag set.
func (uc *PromoUseCase) Countdown() entity.CountdownSnapshot {
	distance := uc.target.Sub(uc.now())
	if distance <= 0 {
		return entity.CountdownSnapshot{Expired: true}
	}

	return entity.CountdownSnapshot{
		Days:    int(distance / (24 * time.Hour)),
		Hours:   int((distance % (24 * time.Hour)) / time.Hour),
		Minutes: int((distance % time.Hour) / time.Minute),
		Seconds: int((distance % time.Minute) / time.Second),
	}
}

func (uc *PromoUseCase) Offers(ctx context.Context) ([]entity.Offer, error) {
	return uc.catalogRepo.Offers(ctx)
}

// StartCountdownBroadcast ticks once per second, pushing a snapshot to all
// connected clients. Once the target passes it sends the final frozen
// snapshot and stops ticking.
func (uc *PromoUseCase) StartCountdownBroadcast(ctx context.Context, manager *wsinfra.Manager) {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			snapshot := uc.Countdown()
			payload, err := json.Marshal(snapshot)
			if err != nil {
				logger.Error("Countdown snapshot marshal failed: %v", err)
				continue
			}
			manager.Broadcast(payload)
			if snapshot.Expired {
				logger.Info("Countdown reached zero, broadcast stopped")
				return
			}
		case <-ctx.Done():
			return
		}
	}
}
