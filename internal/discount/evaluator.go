package discount

import (
	"strings"
	"time"

	"gerry-coffee/internal/domain"
	"gerry-coffee/internal/pricing"
)

// Reason explains why a code was rejected. The reasons are stable
// strings so the HTTP layer can map them to user-facing messages.
type Reason string

const (
	// ReasonNotFound covers both unknown codes and codes with an empty
	// applicability list. Collapsing them keeps misconfigured codes
	// indistinguishable from absent ones at the boundary.
	ReasonNotFound Reason = "not_found"
	// ReasonNotActive means the code exists but is switched off or
	// outside its validity window.
	ReasonNotActive Reason = "not_active"
	// ReasonNotApplicable means no line in the cart is eligible.
	ReasonNotApplicable Reason = "not_applicable"
)

// Result is the outcome of evaluating one code against a cart.
type Result struct {
	Valid  bool
	Code   domain.DiscountCode
	Amount float64
	Reason Reason
}

// Evaluator validates promotional codes and computes their discount
// against the eligible portion of a cart.
type Evaluator struct {
	calc pricing.Calculator
}

func New(calc pricing.Calculator) Evaluator {
	return Evaluator{calc: calc}
}

// Evaluate runs the validation chain in order, first failure wins:
// lookup, applicability configured, active within window, matches the
// cart. A valid result carries the discount amount, which for fixed
// codes never exceeds the eligible subtotal.
func (e Evaluator) Evaluate(codes []domain.DiscountCode, code string, lines []domain.CartLine, now time.Time) Result {
	entered := strings.TrimSpace(code)

	found, ok := lookup(codes, entered)
	if !ok {
		return Result{Reason: ReasonNotFound}
	}
	if len(found.ApplicableProductIDs) == 0 {
		return Result{Reason: ReasonNotFound}
	}
	if !found.IsActive || now.Before(found.StartDate) || now.After(found.EndDate) {
		return Result{Code: found, Reason: ReasonNotActive}
	}

	if !anyEligible(found, lines) {
		return Result{Code: found, Reason: ReasonNotApplicable}
	}

	eligible := e.eligibleSubtotal(found, lines)
	return Result{Valid: true, Code: found, Amount: amount(found, eligible)}
}

func lookup(codes []domain.DiscountCode, code string) (domain.DiscountCode, bool) {
	if code == "" {
		return domain.DiscountCode{}, false
	}
	for _, c := range codes {
		if strings.EqualFold(c.Code, code) {
			return c, true
		}
	}
	return domain.DiscountCode{}, false
}

func amount(code domain.DiscountCode, eligible float64) float64 {
	switch code.Type {
	case domain.DiscountPercent:
		return eligible * code.Value / 100
	case domain.DiscountFixed:
		if code.Value > eligible {
			return eligible
		}
		return code.Value
	}
	return 0
}

func (e Evaluator) eligibleSubtotal(code domain.DiscountCode, lines []domain.CartLine) float64 {
	var sum float64
	for _, line := range lines {
		if lineEligible(code, line) {
			sum += e.calc.LineTotal(line)
		}
	}
	return sum
}

func anyEligible(code domain.DiscountCode, lines []domain.CartLine) bool {
	for _, line := range lines {
		if lineEligible(code, line) {
			return true
		}
	}
	return false
}

func lineEligible(code domain.DiscountCode, line domain.CartLine) bool {
	id := line.OriginalID
	if id == "" {
		id = line.ID
	}
	for _, pid := range code.ApplicableProductIDs {
		if pid == id {
			return true
		}
	}
	return false
}
