package repository

import (
	"context"

	"heritageflavors/internal/domain/entity"
	"heritageflavors/pkg/errors"
)

// MemoryCatalogRepository serves the static product catalog. The catalog
// is fixed at build time: products are never mutated or deleted.
type MemoryCatalogRepository struct {
	products []entity.Product
	byID     map[string]*entity.Product
	offers   []entity.Offer
}

func NewMemoryCatalogRepository() *MemoryCatalogRepository {
	repo := &MemoryCatalogRepository{
		products: seedProducts(),
		offers:   seedOffers(),
	}
	repo.byID = make(map[string]*entity.Product, len(repo.products))
	for i := range repo.products {
		repo.byID[repo.products[i].ID] = &repo.products[i]
	}
	return repo
}

func (r *MemoryCatalogRepository) List(ctx context.Context) ([]entity.Product, error) {
	out := make([]entity.Product, len(r.products))
	copy(out, r.products)
	return out, nil
}

func (r *MemoryCatalogRepository) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	product, ok := r.byID[id]
	if !ok {
		return nil, errors.NotFound("Product", nil)
	}
	copied := *product
	return &copied, nil
}

func (r *MemoryCatalogRepository) ListByCategory(ctx context.Context, category entity.Category) ([]entity.Product, error) {
	var out []entity.Product
	for _, p := range r.products {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *MemoryCatalogRepository) Offers(ctx context.Context) ([]entity.Offer, error) {
	out := make([]entity.Offer, len(r.offers))
	copy(out, r.offers)
	return out, nil
}

func seedProducts() []entity.Product {
	return []entity.Product{
		{
			ID:            "ariselu",
			Name:          "Ariselu (Jaggery Rice Cakes)",
			Category:      entity.CategorySweets,
			Price:         349,
			OriginalPrice: 399,
			Image:         "https://picsum.photos/seed/ariselu/600/600",
			Rating:        4.8,
			Reviews:       128,
			Description:   "Traditional rice flour sweets slow-fried in pure cow ghee and sweetened with unrefined jaggery.",
			Ingredients:   []string{"Rice flour", "Jaggery", "Cow ghee", "Sesame seeds", "Cardamom"},
			ShelfLife:     "21 days",
			Storage:       "Store in an airtight container away from direct sunlight. Do not refrigerate.",
			IsBestSeller:  true,
			BestFor:       "Festive occasions",
			PrepMethod:    "Stone-ground, ghee-fried in small batches",
			UsageTips:     []string{"Warm slightly before serving for a softer bite"},
		},
		{
			ID:           "pootharekulu",
			Name:         "Pootharekulu (Paper Sweets)",
			Category:     entity.CategorySweets,
			Price:        449,
			Image:        "https://picsum.photos/seed/pootharekulu/600/600",
			Rating:       4.9,
			Reviews:      96,
			Description:  "Wafer-thin rice starch sheets layered with powdered sugar and roasted dry fruits, folded by hand.",
			Ingredients:  []string{"Rice starch", "Powdered sugar", "Ghee", "Cashews", "Almonds"},
			ShelfLife:    "30 days",
			Storage:      "Keep flat in the original box. Handle gently; the sheets are fragile.",
			IsBestSeller: true,
			BestFor:      "Gifting",
		},
		{
			ID:            "bellam-gavvalu",
			Name:          "Bellam Gavvalu (Jaggery Shells)",
			Category:      entity.CategorySweets,
			Price:         249,
			OriginalPrice: 289,
			Image:         "https://picsum.photos/seed/bellamgavvalu/600/600",
			Rating:        4.6,
			Reviews:       54,
			Description:   "Crisp shell-shaped bites glazed in thick jaggery syrup, made the way grandmothers do.",
			Ingredients:   []string{"Wheat flour", "Jaggery", "Ghee", "Cardamom"},
			ShelfLife:     "25 days",
			Storage:       "Airtight container at room temperature.",
			OnOffer:       true,
			BestFor:       "Daily use",
		},
		{
			ID:          "sunnundalu",
			Name:        "Sunnundalu (Urad Dal Laddu)",
			Category:    entity.CategorySweets,
			Price:       329,
			Image:       "https://picsum.photos/seed/sunnundalu/600/600",
			Rating:      4.7,
			Reviews:     75,
			Description: "Protein-rich laddus of slow-roasted urad dal, stone-ground and bound with ghee and jaggery.",
			Ingredients: []string{"Urad dal", "Jaggery", "Cow ghee"},
			ShelfLife:   "20 days",
			Storage:     "Cool, dry place. Use a dry spoon.",
			BestFor:     "Daily use",
			PrepMethod:  "Stone-ground",
		},
		{
			ID:           "avakaya",
			Name:         "Avakaya (Raw Mango Pickle)",
			Category:     entity.CategoryPickles,
			Price:        299,
			Image:        "https://picsum.photos/seed/avakaya/600/600",
			Rating:       4.9,
			Reviews:      142,
			Description:  "The iconic Andhra mango pickle: sun-cured raw mango in cold-pressed sesame oil and red chilli.",
			Ingredients:  []string{"Raw mango", "Mustard powder", "Red chilli powder", "Sesame oil", "Fenugreek", "Salt"},
			ShelfLife:    "12 months",
			Storage:      "Keep the oil layer above the pickle. Always use a dry spoon.",
			IsBestSeller: true,
			BestFor:      "Daily use",
			UsageTips:    []string{"Mix with hot rice and a spoon of ghee", "Pairs well with curd rice"},
		},
		{
			ID:            "allam-pickle",
			Name:          "Allam Pachadi (Ginger Pickle)",
			Category:      entity.CategoryPickles,
			Price:         259,
			OriginalPrice: 299,
			Image:         "https://picsum.photos/seed/allam/600/600",
			Rating:        4.7,
			Reviews:       88,
			Description:   "Sweet, sour and fiery ginger relish balanced with jaggery and tamarind.",
			Ingredients:   []string{"Ginger", "Tamarind", "Jaggery", "Red chilli", "Sesame oil", "Salt"},
			ShelfLife:     "6 months",
			Storage:       "Refrigerate after opening.",
			OnOffer:       true,
			BestFor:       "Daily use",
			UsageTips:     []string{"Classic side for pesarattu"},
		},
		{
			ID:          "gongura",
			Name:        "Gongura Pickle (Sorrel Leaf)",
			Category:    entity.CategoryPickles,
			Price:       279,
			Image:       "https://picsum.photos/seed/gongura/600/600",
			Rating:      4.8,
			Reviews:     115,
			Description: "Tangy sorrel leaves slow-cooked with guntur chillies and cold-pressed oil.",
			Ingredients: []string{"Gongura leaves", "Guntur chilli", "Garlic", "Sesame oil", "Salt"},
			ShelfLife:   "9 months",
			Storage:     "Airtight jar, dry spoon only.",
			BestFor:     "Daily use",
		},
		{
			ID:          "kandi-podi",
			Name:        "Kandi Podi (Lentil Powder)",
			Category:    entity.CategorySpicyPowders,
			Price:       199,
			Image:       "https://picsum.photos/seed/kandipodi/600/600",
			Rating:      4.6,
			Reviews:     67,
			Description: "Roasted toor, chana and urad dals ground coarse with dried chillies and cumin.",
			Ingredients: []string{"Toor dal", "Chana dal", "Urad dal", "Dried red chilli", "Cumin", "Salt"},
			ShelfLife:   "4 months",
			Storage:     "Cool, dry place in an airtight container.",
			BestFor:     "Daily use",
			UsageTips:   []string{"Mix with hot rice and ghee"},
		},
		{
			ID:           "karam-podi",
			Name:         "Karam Podi (Idli Chilli Powder)",
			Category:     entity.CategorySpicyPowders,
			Price:        189,
			Image:        "https://picsum.photos/seed/karampodi/600/600",
			Rating:       4.7,
			Reviews:      73,
			Description:  "The fiery breakfast companion: chillies, garlic and dals roasted and ground fresh.",
			Ingredients:  []string{"Dried red chilli", "Garlic", "Urad dal", "Tamarind", "Salt"},
			ShelfLife:    "4 months",
			Storage:      "Airtight container away from moisture.",
			IsBestSeller: true,
			BestFor:      "Daily use",
			UsageTips:    []string{"Sprinkle over idli or dosa with sesame oil"},
		},
		{
			ID:          "nalla-karam",
			Name:        "Nalla Karam (Black Gram Spice Mix)",
			Category:    entity.CategorySpicyPowders,
			Price:       209,
			Image:       "https://picsum.photos/seed/nallakaram/600/600",
			Rating:      4.5,
			Reviews:     41,
			Description: "A darker, smokier podi built on roasted urad dal and curry leaves.",
			Ingredients: []string{"Urad dal", "Curry leaves", "Dried red chilli", "Tamarind", "Salt"},
			ShelfLife:   "4 months",
			Storage:     "Cool, dry place.",
			BestFor:     "Daily use",
		},
		{
			ID:          "murukulu",
			Name:        "Murukulu (Rice Spirals)",
			Category:    entity.CategorySnacks,
			Price:       179,
			Image:       "https://picsum.photos/seed/murukulu/600/600",
			Rating:      4.5,
			Reviews:     59,
			Description: "Hand-pressed crunchy rice spirals seasoned with ajwain and sesame.",
			Ingredients: []string{"Rice flour", "Urad flour", "Sesame seeds", "Ajwain", "Salt", "Oil"},
			ShelfLife:   "30 days",
			Storage:     "Airtight container at room temperature.",
			BestFor:     "Daily use",
		},
		{
			ID:            "chekkalu",
			Name:          "Chekkalu (Rice Crackers)",
			Category:      entity.CategorySnacks,
			Price:         169,
			OriginalPrice: 199,
			Image:         "https://picsum.photos/seed/chekkalu/600/600",
			Rating:        4.4,
			Reviews:       48,
			Description:   "Thin savoury rice crackers studded with chana dal, peanuts and curry leaves.",
			Ingredients:   []string{"Rice flour", "Chana dal", "Peanuts", "Curry leaves", "Green chilli", "Salt"},
			ShelfLife:     "30 days",
			Storage:       "Airtight container, away from moisture.",
			OnOffer:       true,
			BestFor:       "Daily use",
		},
		{
			ID:            "festive-combo",
			Name:          "Festive Gift Hamper",
			Category:      entity.CategoryCombos,
			Price:         999,
			OriginalPrice: 1299,
			Image:         "https://picsum.photos/seed/festivecombo/600/600",
			Rating:        4.8,
			Reviews:       36,
			Description:   "A curated hamper of ariselu, pootharekulu, avakaya and karam podi in festive packing.",
			Ingredients:   []string{"Ariselu", "Pootharekulu", "Avakaya", "Karam podi"},
			ShelfLife:     "21 days",
			Storage:       "See individual item notes.",
			OnOffer:       true,
			BestFor:       "Gifting",
		},
		{
			ID:          "pickle-trio",
			Name:        "Pickle Trio Combo",
			Category:    entity.CategoryCombos,
			Price:       749,
			Image:       "https://picsum.photos/seed/pickletrio/600/600",
			Rating:      4.6,
			Reviews:     29,
			Description: "Avakaya, gongura and allam pachadi together in 250g jars.",
			Ingredients: []string{"Avakaya", "Gongura pickle", "Allam pachadi"},
			ShelfLife:   "6 months",
			Storage:     "Dry spoon only; refrigerate ginger pickle after opening.",
			BestFor:     "Gifting",
		},
	}
}

func seedOffers() []entity.Offer {
	return []entity.Offer{
		{
			ID:          "festive10",
			Title:       "Festive Season Special",
			Description: "10% off on all gift hampers during the festive window.",
			Code:        "FESTIVE10",
		},
		{
			ID:          "freeship",
			Title:       "Free Pan-India Shipping",
			Description: "Free shipping on all orders above Rs. 2000.",
		},
		{
			ID:          "firstorder",
			Title:       "First Order Treat",
			Description: "A complimentary karam podi sample with your first order.",
			Code:        "NAMASTE",
		},
	}
}
