package entity

type Category string

const (
	CategorySweets       Category = "Sweets"
	CategoryPickles      Category = "Pickles"
	CategorySpicyPowders Category = "Spicy Powders"
	CategorySnacks       Category = "Snacks"
	CategoryCombos       Category = "Combos"
)

// AllCategories lists the fixed category enumeration in display order.
func AllCategories() []Category {
	return []Category{
		CategorySweets,
		CategoryPickles,
		CategorySpicyPowders,
		CategorySnacks,
		CategoryCombos,
	}
}

func (c Category) Valid() bool {
	for _, known := range AllCategories() {
		if c == known {
			return true
		}
	}
	return false
}

type Product struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Category      Category `json:"category"`
	Price         float64  `json:"price"`
	OriginalPrice float64  `json:"original_price,omitempty"`
	Image         string   `json:"image"`
	Rating        float64  `json:"rating"`
	Reviews       int      `json:"reviews"`
	Description   string   `json:"description"`
	Ingredients   []string `json:"ingredients"`
	ShelfLife     string   `json:"shelf_life"`
	Storage       string   `json:"storage"`
	IsBestSeller  bool     `json:"is_best_seller,omitempty"`
	OnOffer       bool     `json:"on_offer,omitempty"`
	BestFor       string   `json:"best_for"`
	PrepMethod    string   `json:"prep_method,omitempty"`
	UsageTips     []string `json:"usage_tips,omitempty"`
}

// Discounted reports whether the product carries a visible price cut,
// either via the offer flag or a struck-through original price.
func (p Product) Discounted() bool {
	return p.OnOffer || p.OriginalPrice > 0
}
