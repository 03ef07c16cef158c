package usecase

import (
	"context"
	"sync"

	"heritageflavors/internal/domain/entity"
	"heritageflavors/internal/domain/repository"
	"heritageflavors/pkg/logger"
)

// CartUseCase owns the cart ledger of each session: one CartItem per
// product id, quantity never below 1, persisted after every mutation.
type CartUseCase struct {
	catalogRepo repository.CatalogRepository
	stateRepo   repository.SessionStateRepository
	mu          sync.Mutex
}

func NewCartUseCase(
	catalogRepo repository.CatalogRepository,
	stateRepo repository.SessionStateRepository,
) *CartUseCase {
	return &CartUseCase{
		catalogRepo: catalogRepo,
		stateRepo:   stateRepo,
	}
}

type CartView struct {
	Items     []entity.CartItem `json:"items"`
	Subtotal  float64           `json:"subtotal"`
	ItemCount int               `json:"item_count"`
}

func cartView(items []entity.CartItem) *CartView {
	return &CartView{
		Items:     items,
		Subtotal:  entity.CartSubtotal(items),
		ItemCount: entity.CartItemCount(items),
	}
}

// Add puts quantity units of the product into the session's cart. An
// existing row accumulates quantity and, when gift data is supplied, has
// its gift fields overwritten; otherwise a snapshot row is appended.
func (uc *CartUseCase) Add(ctx context.Context, sessionID, productID string, quantity int, gift *entity.GiftData) (*CartView, error) {
	product, err := uc.catalogRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if quantity <= 0 {
		quantity = 1
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	items := uc.load(ctx, sessionID)
	items = mergeCartItem(items, *product, quantity, gift)
	uc.persist(ctx, sessionID, items)

	return cartView(items), nil
}

// UpdateQuantity adjusts the matching row by delta, clamped to a minimum
// of 1. An absent product id is a no-op.
func (uc *CartUseCase) UpdateQuantity(ctx context.Context, sessionID, productID string, delta int) (*CartView, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	items := uc.load(ctx, sessionID)
	items = adjustCartQuantity(items, productID, delta)
	uc.persist(ctx, sessionID, items)

	return cartView(items), nil
}

// Remove deletes the matching row entirely. An absent product id is a no-op.
func (uc *CartUseCase) Remove(ctx context.Context, sessionID, productID string) (*CartView, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	items := uc.load(ctx, sessionID)
	items = dropCartItem(items, productID)
	uc.persist(ctx, sessionID, items)

	return cartView(items), nil
}

func (uc *CartUseCase) Get(ctx context.Context, sessionID string) (*CartView, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	return cartView(uc.load(ctx, sessionID)), nil
}

func (uc *CartUseCase) load(ctx context.Context, sessionID string) []entity.CartItem {
	items, err := uc.stateRepo.LoadCart(ctx, sessionID)
	if err != nil {
		// A failed read starts the session from an empty ledger.
		logger.Warn("Cart load failed for session %s: %v", sessionID, err)
		return []entity.CartItem{}
	}
	return items
}

func (uc *CartUseCase) persist(ctx context.Context, sessionID string, items []entity.CartItem) {
	if err := uc.stateRepo.SaveCart(ctx, sessionID, items); err != nil {
		logger.LogPersistError("cart:"+sessionID, err)
	}
}

// Pure ledger transitions, kept free of persistence so they are testable
// on their own.

func mergeCartItem(items []entity.CartItem, product entity.Product, quantity int, gift *entity.GiftData) []entity.CartItem {
	for i := range items {
		if items[i].ID == product.ID {
			items[i].Quantity += quantity
			if gift != nil {
				items[i].IsGift = gift.IsGift
				items[i].GiftNote = gift.Note
			}
			return items
		}
	}

	item := entity.CartItem{Product: product, Quantity: quantity}
	if gift != nil {
		item.IsGift = gift.IsGift
		item.GiftNote = gift.Note
	}
	return append(items, item)
}

func adjustCartQuantity(items []entity.CartItem, productID string, delta int) []entity.CartItem {
	for i := range items {
		if items[i].ID == productID {
			items[i].Quantity += delta
			if items[i].Quantity < 1 {
				items[i].Quantity = 1
			}
			return items
		}
	}
	return items
}

func dropCartItem(items []entity.CartItem, productID string) []entity.CartItem {
	out := items[:0]
	for _, item := range items {
		if item.ID != productID {
			out = append(out, item)
		}
	}
	return out
}
