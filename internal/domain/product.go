package domain

// Product is a catalog entry. The catalog is managed by the admin side;
// the pricing and checkout code treats products as read-only snapshots.
type Product struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Description   string  `json:"description,omitempty"`
	Price         float64 `json:"price"`
	OriginalPrice float64 `json:"originalPrice,omitempty"`
	Category      string  `json:"category"`
	Image         string  `json:"image,omitempty"`
	Rating        float64 `json:"rating,omitempty"`
	ReviewCount   int     `json:"reviewCount,omitempty"`
	IsAvailable   bool    `json:"isAvailable"`
	IsBestSeller  bool    `json:"isBestSeller,omitempty"`
	IsFeatured    bool    `json:"isFeatured,omitempty"`
}

// Topping is an additive extra selected per cart line, set semantics by id.
type Topping struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

type Category struct {
	ID   string `json:"id"`
	Key  string `json:"key"`
	Name string `json:"name"`
}
