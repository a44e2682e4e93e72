package domain

import "time"

// ComboItem names one product inside a bundle. Items are descriptive;
// the bundle is priced as a whole, never per item.
type ComboItem struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// Combo is a fixed-price bundle of catalog products sold as one unit.
type Combo struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description,omitempty"`
	Image       string      `json:"image,omitempty"`
	Items       []ComboItem `json:"items"`
	Price       float64     `json:"price"`
	IsActive    bool        `json:"isActive"`
	CreatedAt   time.Time   `json:"createdAt"`
}
