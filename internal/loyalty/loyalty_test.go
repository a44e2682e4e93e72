package loyalty

import "testing"

func TestTierOfWalksHighestFirst(t *testing.T) {
	th := DefaultThresholds()
	pc := DefaultPercents()

	cases := []struct {
		points      int
		wantKey     string
		wantPercent float64
	}{
		{points: -10, wantKey: "none", wantPercent: 0},
		{points: 0, wantKey: "bronze", wantPercent: 0},
		{points: 499, wantKey: "bronze", wantPercent: 0},
		{points: 500, wantKey: "silver", wantPercent: 5},
		{points: 600, wantKey: "silver", wantPercent: 5},
		{points: 850, wantKey: "gold", wantPercent: 10},
		{points: 1349, wantKey: "gold", wantPercent: 10},
		{points: 1350, wantKey: "diamond", wantPercent: 15},
		{points: 99999, wantKey: "diamond", wantPercent: 15},
	}

	for _, tc := range cases {
		tier := TierOf(tc.points, th, pc)
		if tier.Key != tc.wantKey || tier.DiscountPercent != tc.wantPercent {
			t.Fatalf("TierOf(%d) = %+v, want %s/%v", tc.points, tier, tc.wantKey, tc.wantPercent)
		}
	}
}

func TestTierOfRespectsConfiguredThresholds(t *testing.T) {
	th := Thresholds{BronzeMin: 100, SilverMin: 200, GoldMin: 300, DiamondMin: 400}
	if tier := TierOf(50, th, DefaultPercents()); tier.Key != "none" {
		t.Fatalf("below configured bronze should be unranked, got %s", tier.Key)
	}
	if tier := TierOf(250, th, DefaultPercents()); tier.Key != "silver" {
		t.Fatalf("expected silver under custom thresholds, got %s", tier.Key)
	}
}

func TestEarnedPoints(t *testing.T) {
	const rate = 25000
	const pointValue = 10000

	cases := []struct {
		total float64
		want  int
	}{
		{total: 0, want: 0},
		{total: 0.39, want: 0},   // 9750 VND, below one point
		{total: 0.40, want: 1},   // exactly one point
		{total: 9.405, want: 23}, // 235125 VND -> floor
		{total: -1, want: 0},
	}

	for _, tc := range cases {
		if got := EarnedPoints(tc.total, rate, pointValue); got != tc.want {
			t.Fatalf("EarnedPoints(%v) = %d, want %d", tc.total, got, tc.want)
		}
	}
}

func TestEarnedPointsZeroPointValue(t *testing.T) {
	if got := EarnedPoints(10, 25000, 0); got != 0 {
		t.Fatalf("zero point value must not divide, got %d", got)
	}
}
