package domain

import "time"

type DiscountType string

const (
	DiscountPercent DiscountType = "percent"
	DiscountFixed   DiscountType = "fixed"
)

// DiscountCode is a promotional code. Codes match case-insensitively.
// ApplicableProductIDs is required to be non-empty: a code that applies
// to nothing is a configuration error, not a store-wide discount.
type DiscountCode struct {
	ID                   string       `json:"id"`
	Code                 string       `json:"code"`
	Type                 DiscountType `json:"type"`
	Value                float64      `json:"value"`
	StartDate            time.Time    `json:"startDate"`
	EndDate              time.Time    `json:"endDate"`
	ApplicableProductIDs []string     `json:"applicableProductIds"`
	IsActive             bool         `json:"isActive"`
}
