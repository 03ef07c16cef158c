package usecase

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"heritageflavors/internal/domain/entity"
	"heritageflavors/internal/domain/repository"
	"heritageflavors/internal/domain/service"
)

const (
	defaultPriceCeiling = 2000 // shop page slider maximum
	relatedProductLimit = 4
)

// CatalogUseCase serves derived catalog views: the filtered/sorted shop
// listing, product detail lookups, related products and the outbound
// order-inquiry link.
type CatalogUseCase struct {
	catalogRepo    repository.CatalogRepository
	storeName      string
	whatsAppNumber string
}

func NewCatalogUseCase(catalogRepo repository.CatalogRepository, storeName, whatsAppNumber string) *CatalogUseCase {
	return &CatalogUseCase{
		catalogRepo:    catalogRepo,
		storeName:      storeName,
		whatsAppNumber: whatsAppNumber,
	}
}

// ListProducts recomputes the full filter/sort pipeline from the
// unfiltered catalog on every call, then pages the result. A non-positive
// price ceiling from the caller falls back to the slider maximum.
func (uc *CatalogUseCase) ListProducts(ctx context.Context, query service.ViewQuery, limit, offset int) ([]entity.Product, int64, error) {
	catalog, err := uc.catalogRepo.List(ctx)
	if err != nil {
		return nil, 0, err
	}

	if query.PriceCeiling <= 0 {
		query.PriceCeiling = defaultPriceCeiling
	}

	result := service.FilterAndSort(catalog, query)
	total := int64(len(result))

	if offset >= len(result) {
		return []entity.Product{}, total, nil
	}
	end := offset + limit
	if limit <= 0 || end > len(result) {
		end = len(result)
	}
	return result[offset:end], total, nil
}

func (uc *CatalogUseCase) GetProduct(ctx context.Context, id string) (*entity.Product, error) {
	return uc.catalogRepo.GetByID(ctx, id)
}

func (uc *CatalogUseCase) Categories() []entity.Category {
	return entity.AllCategories()
}

// RelatedProducts returns up to four other products of the same category.
func (uc *CatalogUseCase) RelatedProducts(ctx context.Context, id string) ([]entity.Product, error) {
	product, err := uc.catalogRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	sameCategory, err := uc.catalogRepo.ListByCategory(ctx, product.Category)
	if err != nil {
		return nil, err
	}

	related := make([]entity.Product, 0, relatedProductLimit)
	for _, p := range sameCategory {
		if p.ID == id {
			continue
		}
		related = append(related, p)
		if len(related) == relatedProductLimit {
			break
		}
	}
	return related, nil
}

// OrderInquiryLink builds the fire-and-forget chat deep link handing an
// order inquiry off to WhatsApp. No request is made; the caller opens it.
func (uc *CatalogUseCase) OrderInquiryLink(ctx context.Context, id string, quantity int) (string, error) {
	product, err := uc.catalogRepo.GetByID(ctx, id)
	if err != nil {
		return "", err
	}
	if quantity <= 0 {
		quantity = 1
	}

	total := product.Price * float64(quantity)
	message := fmt.Sprintf(
		"Hi %s, I'm interested in ordering:\n\n*Product:* %s\n*Quantity:* %d\n*Price:* ₹%s\n\nPlease share payment details.",
		uc.storeName,
		product.Name,
		quantity,
		strconv.FormatFloat(total, 'f', -1, 64),
	)

	return "https://wa.me/" + uc.whatsAppNumber + "?text=" + url.QueryEscape(message), nil
}
