package domain

// Size of a drink. M carries no upcharge, L adds the configured amount.
type Size string

const (
	SizeM Size = "M"
	SizeL Size = "L"
)

// LineKind tags the two cart line variants so handling can switch
// exhaustively instead of sniffing optional fields.
type LineKind string

const (
	LineSimple LineKind = "simple"
	LineBundle LineKind = "bundle"
)

// Bundle describes the combo behind a bundle line.
type Bundle struct {
	ComboID   string      `json:"comboId"`
	ComboName string      `json:"comboName"`
	Items     []ComboItem `json:"items"`
}

// CartLine is one entry in the cart: a configured product or an opaque
// combo bundle. ID is the line identity, generated per configuration;
// OriginalID points back at the source product or combo and is what
// discount applicability matches against.
type CartLine struct {
	ID         string    `json:"id"`
	Kind       LineKind  `json:"kind"`
	OriginalID string    `json:"originalId"`
	Name       string    `json:"name"`
	Price      float64   `json:"price"`
	Category   string    `json:"category,omitempty"`
	Image      string    `json:"image,omitempty"`
	Quantity   int       `json:"quantity"`
	Size       Size      `json:"size,omitempty"`
	Note       string    `json:"note,omitempty"`
	Toppings   []Topping `json:"toppings,omitempty"`
	Bundle     *Bundle   `json:"bundle,omitempty"`
}

// Clone returns a deep copy so held snapshots never alias the live cart.
func (l CartLine) Clone() CartLine {
	out := l
	if l.Toppings != nil {
		out.Toppings = make([]Topping, len(l.Toppings))
		copy(out.Toppings, l.Toppings)
	}
	if l.Bundle != nil {
		b := *l.Bundle
		if l.Bundle.Items != nil {
			b.Items = make([]ComboItem, len(l.Bundle.Items))
			copy(b.Items, l.Bundle.Items)
		}
		out.Bundle = &b
	}
	return out
}

// CloneLines deep-copies a whole cart.
func CloneLines(lines []CartLine) []CartLine {
	out := make([]CartLine, len(lines))
	for i, l := range lines {
		out[i] = l.Clone()
	}
	return out
}
