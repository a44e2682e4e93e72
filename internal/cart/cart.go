package cart

import (
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"

	"gerry-coffee/internal/domain"
	"gerry-coffee/internal/pricing"
)

// Options tunes aggregation behavior. MergeCombos is off by default:
// the storefront treats every combo addition as a distinct bundle
// instance, and that behavior is kept until confirmed otherwise.
type Options struct {
	MergeCombos bool
}

// AddProduct returns a new cart with one more unit of the given
// configuration. An addition merges into an existing line only when
// original product, size, note and topping set all match; any other
// configuration gets its own line with a fresh identity, so several
// configurations of the same product can coexist.
func AddProduct(lines []domain.CartLine, p domain.Product, size domain.Size, note string, toppings []domain.Topping) ([]domain.CartLine, error) {
	if !p.IsAvailable {
		return nil, domain.ErrUnavailable
	}

	key := mergeKey(p.ID, size, note, toppings)
	out := domain.CloneLines(lines)
	for i, line := range out {
		if line.Kind == domain.LineSimple && mergeKey(line.OriginalID, line.Size, line.Note, line.Toppings) == key {
			out[i].Quantity++
			return out, nil
		}
	}

	line := domain.CartLine{
		ID:         uuid.NewString(),
		Kind:       domain.LineSimple,
		OriginalID: p.ID,
		Name:       p.Name,
		Price:      p.Price,
		Category:   p.Category,
		Image:      p.Image,
		Quantity:   1,
		Size:       size,
		Note:       note,
	}
	if len(toppings) > 0 {
		line.Toppings = make([]domain.Topping, len(toppings))
		copy(line.Toppings, toppings)
	}
	return append(out, line), nil
}

// AddCombo appends the combo as one opaque bundle line. The line note
// summarizes the first few bundled items for display.
func AddCombo(lines []domain.CartLine, combo domain.Combo, products []domain.Product, opts Options) ([]domain.CartLine, error) {
	if !combo.IsActive {
		return nil, domain.ErrUnavailable
	}

	out := domain.CloneLines(lines)
	if opts.MergeCombos {
		for i, line := range out {
			if line.Kind == domain.LineBundle && line.OriginalID == combo.ID {
				out[i].Quantity++
				return out, nil
			}
		}
	}

	line := domain.CartLine{
		ID:         uuid.NewString(),
		Kind:       domain.LineBundle,
		OriginalID: combo.ID,
		Name:       combo.Name,
		Price:      combo.Price,
		Category:   "Combo",
		Image:      combo.Image,
		Quantity:   1,
		Note:       comboNote(combo, products),
		Bundle: &domain.Bundle{
			ComboID:   combo.ID,
			ComboName: combo.Name,
			Items:     append([]domain.ComboItem(nil), combo.Items...),
		},
	}
	return append(out, line), nil
}

// UpdateQuantity adjusts a line's quantity by delta, clamped to a
// minimum of 1. Removing a line is a separate, explicit operation.
func UpdateQuantity(lines []domain.CartLine, lineID string, delta int) ([]domain.CartLine, error) {
	out := domain.CloneLines(lines)
	for i, line := range out {
		if line.ID == lineID {
			q := line.Quantity + delta
			if q < 1 {
				q = 1
			}
			out[i].Quantity = q
			return out, nil
		}
	}
	return nil, domain.ErrNotFound
}

// Remove drops the line with the given id.
func Remove(lines []domain.CartLine, lineID string) ([]domain.CartLine, error) {
	out := make([]domain.CartLine, 0, len(lines))
	found := false
	for _, line := range lines {
		if line.ID == lineID {
			found = true
			continue
		}
		out = append(out, line.Clone())
	}
	if !found {
		return nil, domain.ErrNotFound
	}
	return out, nil
}

// Subtotal prices the whole cart with the shared calculator.
func Subtotal(lines []domain.CartLine, calc pricing.Calculator) float64 {
	var sum float64
	for _, line := range lines {
		sum += calc.LineTotal(line)
	}
	return sum
}

// ItemCount is the total unit count across lines.
func ItemCount(lines []domain.CartLine) int {
	count := 0
	for _, line := range lines {
		count += line.Quantity
	}
	return count
}

// mergeKey is the identity a new addition is matched against:
// source product, size, note, and the topping id set independent of
// selection order.
func mergeKey(originalID string, size domain.Size, note string, toppings []domain.Topping) string {
	ids := make([]string, 0, len(toppings))
	for _, t := range toppings {
		ids = append(ids, t.ID)
	}
	sort.Strings(ids)
	return fmt.Sprintf("%s|%s|%s|%s", originalID, size, note, strings.Join(ids, ","))
}

// comboNote renders "Combo: 2x Espresso, 1x Croissant", capped at four
// entries, resolving product names where the catalog knows them.
func comboNote(combo domain.Combo, products []domain.Product) string {
	byID := make(map[string]string, len(products))
	for _, p := range products {
		byID[p.ID] = p.Name
	}
	parts := make([]string, 0, len(combo.Items))
	for _, item := range combo.Items {
		name, ok := byID[item.ProductID]
		if !ok {
			name = item.ProductID
		}
		parts = append(parts, fmt.Sprintf("%dx %s", item.Quantity, name))
	}
	if len(parts) > 4 {
		parts = parts[:4]
	}
	if len(parts) == 0 {
		return ""
	}
	return "Combo: " + strings.Join(parts, ", ")
}
