package cart

import (
	"errors"
	"math"
	"testing"

	"gerry-coffee/internal/domain"
	"gerry-coffee/internal/pricing"
)

var latte = domain.Product{
	ID:          "p1",
	Name:        "Latte",
	Price:       4.50,
	Category:    "Hot Coffee",
	IsAvailable: true,
}

var pearls = domain.Topping{ID: "t1", Name: "Black Pearl", Price: 0.50}
var pudding = domain.Topping{ID: "t4", Name: "Egg Pudding", Price: 0.50}

func TestAddProductMergesIdenticalConfiguration(t *testing.T) {
	lines, err := AddProduct(nil, latte, domain.SizeL, "less ice", []domain.Topping{pearls, pudding})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	lines, err = AddProduct(lines, latte, domain.SizeL, "less ice", []domain.Topping{pudding, pearls})
	if err != nil {
		t.Fatalf("add again: %v", err)
	}

	if len(lines) != 1 {
		t.Fatalf("expected one merged line, got %d", len(lines))
	}
	if lines[0].Quantity != 2 {
		t.Fatalf("expected quantity 2, got %d", lines[0].Quantity)
	}
	if lines[0].ID == latte.ID {
		t.Fatalf("line identity must be distinct from the product id")
	}
	if lines[0].OriginalID != latte.ID {
		t.Fatalf("originalId must reference the product, got %q", lines[0].OriginalID)
	}
}

func TestAddProductSplitsOnAnyConfigurationChange(t *testing.T) {
	base, err := AddProduct(nil, latte, domain.SizeM, "", []domain.Topping{pearls})
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	cases := []struct {
		name     string
		size     domain.Size
		note     string
		toppings []domain.Topping
	}{
		{name: "different size", size: domain.SizeL, note: "", toppings: []domain.Topping{pearls}},
		{name: "different note", size: domain.SizeM, note: "hot", toppings: []domain.Topping{pearls}},
		{name: "different toppings", size: domain.SizeM, note: "", toppings: []domain.Topping{pudding}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			lines, err := AddProduct(base, latte, tc.size, tc.note, tc.toppings)
			if err != nil {
				t.Fatalf("add: %v", err)
			}
			if len(lines) != 2 {
				t.Fatalf("expected a second line, got %d", len(lines))
			}
			if lines[0].ID == lines[1].ID {
				t.Fatalf("new line must get a fresh identity")
			}
		})
	}
}

func TestAddProductRefusesUnavailable(t *testing.T) {
	soldOut := latte
	soldOut.IsAvailable = false
	if _, err := AddProduct(nil, soldOut, "", "", nil); !errors.Is(err, domain.ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}

func TestAddProductDoesNotMutateInput(t *testing.T) {
	lines, _ := AddProduct(nil, latte, domain.SizeM, "", nil)
	before := lines[0].Quantity
	if _, err := AddProduct(lines, latte, domain.SizeM, "", nil); err != nil {
		t.Fatalf("add: %v", err)
	}
	if lines[0].Quantity != before {
		t.Fatalf("input cart was mutated")
	}
}

func comboFixture() (domain.Combo, []domain.Product) {
	espresso := domain.Product{ID: "p2", Name: "Espresso", Price: 3.00, IsAvailable: true}
	croissant := domain.Product{ID: "p3", Name: "Croissant", Price: 2.50, IsAvailable: true}
	combo := domain.Combo{
		ID:       "c1",
		Name:     "Morning Duo",
		Price:    4.75,
		IsActive: true,
		Items: []domain.ComboItem{
			{ProductID: espresso.ID, Quantity: 2},
			{ProductID: croissant.ID, Quantity: 1},
		},
	}
	return combo, []domain.Product{espresso, croissant}
}

func TestAddComboAlwaysAppends(t *testing.T) {
	combo, products := comboFixture()

	lines, err := AddCombo(nil, combo, products, Options{})
	if err != nil {
		t.Fatalf("add combo: %v", err)
	}
	lines, err = AddCombo(lines, combo, products, Options{})
	if err != nil {
		t.Fatalf("add combo again: %v", err)
	}

	if len(lines) != 2 {
		t.Fatalf("combo additions must not merge by default, got %d lines", len(lines))
	}
	if lines[0].Bundle == nil || lines[0].Bundle.ComboID != combo.ID {
		t.Fatalf("bundle descriptor missing: %+v", lines[0])
	}
	if lines[0].Note != "Combo: 2x Espresso, 1x Croissant" {
		t.Fatalf("unexpected combo note %q", lines[0].Note)
	}
}

func TestAddComboMergeOption(t *testing.T) {
	combo, products := comboFixture()
	opts := Options{MergeCombos: true}

	lines, _ := AddCombo(nil, combo, products, opts)
	lines, _ = AddCombo(lines, combo, products, opts)

	if len(lines) != 1 || lines[0].Quantity != 2 {
		t.Fatalf("with MergeCombos expected one line qty 2, got %+v", lines)
	}
}

func TestAddComboRefusesInactive(t *testing.T) {
	combo, products := comboFixture()
	combo.IsActive = false
	if _, err := AddCombo(nil, combo, products, Options{}); !errors.Is(err, domain.ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}

func TestUpdateQuantityClampsAtOne(t *testing.T) {
	lines, _ := AddProduct(nil, latte, "", "", nil)
	id := lines[0].ID

	lines, err := UpdateQuantity(lines, id, 3)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if lines[0].Quantity != 4 {
		t.Fatalf("expected quantity 4, got %d", lines[0].Quantity)
	}

	lines, err = UpdateQuantity(lines, id, -10)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if lines[0].Quantity != 1 {
		t.Fatalf("quantity must clamp to 1, got %d", lines[0].Quantity)
	}
}

func TestUpdateQuantityUnknownLine(t *testing.T) {
	if _, err := UpdateQuantity(nil, "missing", 1); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestRemove(t *testing.T) {
	lines, _ := AddProduct(nil, latte, "", "", nil)
	id := lines[0].ID

	lines, err := Remove(lines, id)
	if err != nil {
		t.Fatalf("remove: %v", err)
	}
	if len(lines) != 0 {
		t.Fatalf("expected empty cart, got %d lines", len(lines))
	}

	if _, err := Remove(lines, id); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second remove, got %v", err)
	}
}

func TestSubtotalAndItemCount(t *testing.T) {
	calc := pricing.New(0.50)
	lines, _ := AddProduct(nil, latte, domain.SizeL, "", []domain.Topping{pearls})
	lines, _ = AddProduct(lines, latte, domain.SizeL, "", []domain.Topping{pearls})

	if got := Subtotal(lines, calc); math.Abs(got-11.00) > 1e-9 {
		t.Fatalf("Subtotal = %v, want 11.00", got)
	}
	if got := ItemCount(lines); got != 2 {
		t.Fatalf("ItemCount = %d, want 2", got)
	}
}
