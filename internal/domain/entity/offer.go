package entity

type Offer struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Code        string `json:"code,omitempty"`
}
