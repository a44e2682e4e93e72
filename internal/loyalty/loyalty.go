package loyalty

import "math"

// Thresholds are the minimum point counts per tier, admin-editable.
// They must be ordered bronze <= silver <= gold <= diamond.
type Thresholds struct {
	BronzeMin  int
	SilverMin  int
	GoldMin    int
	DiamondMin int
}

// DefaultThresholds mirrors the documented fallback configuration.
func DefaultThresholds() Thresholds {
	return Thresholds{BronzeMin: 0, SilverMin: 500, GoldMin: 850, DiamondMin: 1350}
}

// Percents are the discount percentages granted per tier.
type Percents struct {
	Bronze  float64
	Silver  float64
	Gold    float64
	Diamond float64
}

func DefaultPercents() Percents {
	return Percents{Bronze: 0, Silver: 5, Gold: 10, Diamond: 15}
}

// Tier is a resolved loyalty rank.
type Tier struct {
	Key             string  `json:"key"`
	Name            string  `json:"name"`
	DiscountPercent float64 `json:"discountPercent"`
}

// TierOf walks the thresholds from highest to lowest and returns the
// first tier the point count reaches. Below the bronze minimum the
// member is unranked with no discount.
func TierOf(points int, th Thresholds, pc Percents) Tier {
	switch {
	case points >= th.DiamondMin:
		return Tier{Key: "diamond", Name: "Diamond", DiscountPercent: pc.Diamond}
	case points >= th.GoldMin:
		return Tier{Key: "gold", Name: "Gold", DiscountPercent: pc.Gold}
	case points >= th.SilverMin:
		return Tier{Key: "silver", Name: "Silver", DiscountPercent: pc.Silver}
	case points >= th.BronzeMin:
		return Tier{Key: "bronze", Name: "Bronze", DiscountPercent: pc.Bronze}
	}
	return Tier{Key: "none", Name: "Unranked", DiscountPercent: 0}
}

// EarnedPoints converts the final payable total into loyalty points:
// the total is converted to the secondary currency and divided by the
// value of one point, floored, never negative. Points accrue on what
// the customer actually paid, not on the pre-discount subtotal.
func EarnedPoints(finalTotal, exchangeRate, pointValue float64) int {
	if pointValue <= 0 {
		return 0
	}
	points := int(math.Floor(finalTotal * exchangeRate / pointValue))
	if points < 0 {
		return 0
	}
	return points
}
