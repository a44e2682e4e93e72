package pricing

import (
	"math"
	"testing"

	"gerry-coffee/internal/domain"
)

const upcharge = 0.50

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestUnitPriceComposition(t *testing.T) {
	calc := New(upcharge)

	cases := []struct {
		name string
		line domain.CartLine
		want float64
	}{
		{
			name: "base only",
			line: domain.CartLine{Price: 4.50},
			want: 4.50,
		},
		{
			name: "size M adds nothing",
			line: domain.CartLine{Price: 4.50, Size: domain.SizeM},
			want: 4.50,
		},
		{
			name: "size L adds upcharge",
			line: domain.CartLine{Price: 4.50, Size: domain.SizeL},
			want: 5.00,
		},
		{
			name: "toppings are additive",
			line: domain.CartLine{
				Price: 4.50,
				Size:  domain.SizeL,
				Toppings: []domain.Topping{
					{ID: "t1", Price: 0.50},
					{ID: "t2", Price: 0.75},
				},
			},
			want: 6.25,
		},
		{
			name: "bundle line is priced flat",
			line: domain.CartLine{Kind: domain.LineBundle, Price: 9.99},
			want: 9.99,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := calc.UnitPrice(tc.line)
			if !almostEqual(got, tc.want) {
				t.Fatalf("UnitPrice = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestQuoteMatchesUnitPrice(t *testing.T) {
	calc := New(upcharge)
	p := domain.Product{ID: "p1", Price: 3.75}
	toppings := []domain.Topping{{ID: "t1", Price: 0.50}}

	quote := calc.Quote(p, domain.SizeL, toppings)
	line := domain.CartLine{OriginalID: p.ID, Price: p.Price, Size: domain.SizeL, Toppings: toppings}
	if !almostEqual(quote, calc.UnitPrice(line)) {
		t.Fatalf("quote %v diverges from cart price %v", quote, calc.UnitPrice(line))
	}
}

func TestLineTotalMultipliesQuantity(t *testing.T) {
	calc := New(upcharge)
	line := domain.CartLine{
		Price:    4.50,
		Size:     domain.SizeL,
		Quantity: 2,
		Toppings: []domain.Topping{{ID: "t1", Price: 0.50}},
	}
	if got := calc.LineTotal(line); !almostEqual(got, 11.00) {
		t.Fatalf("LineTotal = %v, want 11.00", got)
	}
}
