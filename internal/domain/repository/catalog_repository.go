package repository

import (
	"context"

	"heritageflavors/internal/domain/entity"
)

type CatalogRepository interface {
	// List returns the full catalog in its fixed order
	List(ctx context.Context) ([]entity.Product, error)

	// GetByID returns the product or a NOT_FOUND error
	GetByID(ctx context.Context, id string) (*entity.Product, error)

	// ListByCategory returns catalog-ordered products of one category
	ListByCategory(ctx context.Context, category entity.Category) ([]entity.Product, error)

	// Offers returns the current promotional offers
	Offers(ctx context.Context) ([]entity.Offer, error)
}
