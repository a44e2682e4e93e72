package pricing

import "gerry-coffee/internal/domain"

// Calculator computes per-unit prices. The same calculator instance is
// used for cart display, code previews and checkout so the shown and
// charged amounts cannot diverge.
type Calculator struct {
	SizeLUpcharge float64
}

func New(sizeLUpcharge float64) Calculator {
	return Calculator{SizeLUpcharge: sizeLUpcharge}
}

// UnitPrice returns the price of one unit of a cart line:
// base price, plus the L upcharge when the line is sized L, plus the
// sum of its topping prices. Missing fields have zero effect.
// Callers multiply by quantity themselves.
func (c Calculator) UnitPrice(line domain.CartLine) float64 {
	return c.price(line.Price, line.Size, line.Toppings)
}

// Quote prices a would-be line before it is in the cart, as the product
// configuration modal does.
func (c Calculator) Quote(p domain.Product, size domain.Size, toppings []domain.Topping) float64 {
	return c.price(p.Price, size, toppings)
}

func (c Calculator) price(base float64, size domain.Size, toppings []domain.Topping) float64 {
	price := base
	if size == domain.SizeL {
		price += c.SizeLUpcharge
	}
	for _, t := range toppings {
		price += t.Price
	}
	return price
}

// LineTotal is UnitPrice times the line quantity.
func (c Calculator) LineTotal(line domain.CartLine) float64 {
	return c.UnitPrice(line) * float64(line.Quantity)
}
