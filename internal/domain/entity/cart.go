package entity

// CartItem is a snapshot of a product at the time it was added to the
// basket. Pricing uses the snapshotted values, never a live catalog lookup.
type CartItem struct {
	Product
	Quantity int    `json:"quantity"`
	IsGift   bool   `json:"is_gift,omitempty"`
	GiftNote string `json:"gift_note,omitempty"`
}

// GiftData carries optional gift wrapping info supplied on add-to-cart.
type GiftData struct {
	IsGift bool
	Note   string
}

// CartSubtotal sums snapshot price x quantity over all items.
func CartSubtotal(items []CartItem) float64 {
	var total float64
	for _, item := range items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}

// CartItemCount sums all quantities, used for the basket badge.
func CartItemCount(items []CartItem) int {
	var count int
	for _, item := range items {
		count += item.Quantity
	}
	return count
}
