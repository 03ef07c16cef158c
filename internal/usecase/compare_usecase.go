package usecase

import (
	"context"
	"sync"

	"heritageflavors/internal/domain/entity"
	"heritageflavors/internal/domain/repository"
)

const maxCompareProducts = 3

// CompareUseCase owns the per-session comparison set: up to three distinct
// product ids in insertion order. The set lives for the session only and
// is never persisted.
type CompareUseCase struct {
	catalogRepo repository.CatalogRepository

	mu   sync.Mutex
	sets map[string][]string
}

func NewCompareUseCase(catalogRepo repository.CatalogRepository) *CompareUseCase {
	return &CompareUseCase{
		catalogRepo: catalogRepo,
		sets:        make(map[string][]string),
	}
}

// Toggle removes the id if present; otherwise appends it while the set
// holds fewer than three entries. A toggle against a full set is silently
// dropped, not an error.
func (uc *CompareUseCase) Toggle(sessionID, productID string) []string {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	current := uc.sets[sessionID]
	for i, id := range current {
		if id == productID {
			next := append(append([]string{}, current[:i]...), current[i+1:]...)
			uc.sets[sessionID] = next
			return next
		}
	}

	if len(current) >= maxCompareProducts {
		return current
	}

	next := append(append([]string{}, current...), productID)
	uc.sets[sessionID] = next
	return next
}

func (uc *CompareUseCase) Clear(sessionID string) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	delete(uc.sets, sessionID)
}

// IDs returns the comparison set in insertion order.
func (uc *CompareUseCase) IDs(sessionID string) []string {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return append([]string{}, uc.sets[sessionID]...)
}

// List resolves the comparison set against the catalog, preserving
// insertion order. Ids that no longer resolve are skipped.
func (uc *CompareUseCase) List(ctx context.Context, sessionID string) ([]entity.Product, error) {
	ids := uc.IDs(sessionID)

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
