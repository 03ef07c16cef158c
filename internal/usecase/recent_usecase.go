package usecase

import (
	"context"
	"sync"

	"heritageflavors/internal/domain/entity"
	"heritageflavors/internal/domain/repository"
	"heritageflavors/pkg/logger"
)

const maxRecentlyViewed = 4

// RecentUseCase tracks the most-recently-viewed products of a session:
// up to four distinct ids, newest first, persisted after every view.
type RecentUseCase struct {
	catalogRepo repository.CatalogRepository
	stateRepo   repository.SessionStateRepository
	mu          sync.Mutex
}

func NewRecentUseCase(
	catalogRepo repository.CatalogRepository,
	stateRepo repository.SessionStateRepository,
) *RecentUseCase {
	return &RecentUseCase{
		catalogRepo: catalogRepo,
		stateRepo:   stateRepo,
	}
}

// Record moves the product id to the front of the session's list,
// evicting the oldest entry beyond four. Re-viewing a product never
// creates a second entry.
func (uc *RecentUseCase) Record(ctx context.Context, sessionID, productID string) []string {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	ids := uc.load(ctx, sessionID)
	ids = pushRecent(ids, productID)

	if err := uc.stateRepo.SaveRecentlyViewed(ctx, sessionID, ids); err != nil {
		logger.LogPersistError("recentlyViewed:"+sessionID, err)
	}
	return ids
}

// List resolves the recently-viewed ids against the catalog, newest first.
func (uc *RecentUseCase) List(ctx context.Context, sessionID string) ([]entity.Product, error) {
	uc.mu.Lock()
	ids := uc.load(ctx, sessionID)
	uc.mu.Unlock()

	products := make([]entity.Product, 0, len(ids))
	for _, id := range ids {
		product, err := uc.catalogRepo.GetByID(ctx, id)
		if err != nil {
			continue
		}
		products = append(products, *product)
	}
	return products, nil
}

func (uc *RecentUseCase) load(ctx context.Context, sessionID string) []string {
	ids, err := uc.stateRepo.LoadRecentlyViewed(ctx, sessionID)
	if err != nil {
		logger.Warn("Recently-viewed load failed for session %s: %v", sessionID, err)
		return []string{}
	}
	return ids
}

// pushRecent is the pure MRU transition: dedupe, prepend, truncate.
func pushRecent(ids []string, productID string) []string {
	next := make([]string, 0, len(ids)+1)
	next = append(next, productID)
	for _, id := range ids {
		if id != productID {
			next = append(next, id)
		}
	}
	if len(next) > maxRecentlyViewed {
		next = next[:maxRecentlyViewed]
	}
	return next
}
