package repository

import (
	"context"

	"heritageflavors/internal/domain/entity"
)

// SessionStateRepository is the on-device key-value store holding the
// durable slice of a browsing session: the cart ledger and the
// recently-viewed list. Reads of absent or malformed values yield empty
// state; writes are best-effort from the caller's point of view.
type SessionStateRepository interface {
	LoadCart(ctx context.Context, sessionID string) ([]entity.CartItem, error)
	SaveCart(ctx context.Context, sessionID string, items []entity.CartItem) error

	LoadRecentlyViewed(ctx context.Context, sessionID string) ([]string, error)
	SaveRecentlyViewed(ctx context.Context, sessionID string, productIDs []string) error
}
