package service

import (
	"sort"
	"strings"

	"heritageflavors/internal/domain/entity"
)

const (
	SortPopularity = "popularity"
	SortPriceLow   = "priceLow"
	SortPriceHigh  = "priceHigh"
	SortRating     = "rating"
)

const (
	PresetNone        = ""
	PresetBestSellers = "bestsellers"
	PresetOffers      = "offers"
)

// CategoryAll disables category filtering.
const CategoryAll = "All"

// ViewQuery is the full browsing state of the shop page: category pick,
// free-text search, price ceiling, named preset filter and sort mode.
// It is rebuilt from the request on every call, never cached.
type ViewQuery struct {
	Category     string
	Search       string
	PriceCeiling float64
	Preset       string
	Sort         string
}

// FilterAndSort derives the exact ordered product list to render from the
// unfiltered catalog. The pipeline runs strictly in this order: category,
// name substring, price ceiling, preset, sort. The input slice is never
// mutated; ties keep catalog order.
func FilterAndSort(catalog []entity.Product, q ViewQuery) []entity.Product {
	result := make([]entity.Product, 0, len(catalog))

	search := strings.ToLower(strings.TrimSpace(q.Search))
	for _, p := range catalog {
		if q.Category != "" && q.Category != CategoryAll && string(p.Category) != q.Category {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(p.Name), search) {
			continue
		}
		if p.Price > q.PriceCeiling {
			continue
		}
		switch q.Preset {
		case PresetBestSellers:
			if !p.IsBestSeller {
				continue
			}
		case PresetOffers:
			if !p.Discounted() {
				continue
			}
		}
		result = append(result, p)
	}

	switch q.Sort {
	case SortPriceLow:
		sort.SliceStable(result, func(i, j int) bool { return result[i].Price < result[j].Price })
	case SortPriceHigh:
		sort.SliceStable(result, func(i, j int) bool { return result[i].Price > result[j].Price })
	case SortRating:
		sort.SliceStable(result, func(i, j int) bool { return result[i].Rating > result[j].Rating })
	default: // popularity
		sort.SliceStable(result, func(i, j int) bool { return result[i].Reviews > result[j].Reviews })
	}

	return result
}
