package checkout

import (
	"errors"
	"math"
	"testing"
	"time"

	"gerry-coffee/internal/discount"
	"gerry-coffee/internal/domain"
	"gerry-coffee/internal/loyalty"
	"gerry-coffee/internal/pricing"
)

const (
	exchangeRate = 25000
	pointValue   = 10000
)

var now = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

func newSettler() Settler {
	calc := pricing.New(0.50)
	return New(calc, discount.New(calc), loyalty.DefaultPercents(), exchangeRate, pointValue)
}

func save10(productIDs ...string) domain.DiscountCode {
	return domain.DiscountCode{
		ID:                   "d1",
		Code:                 "SAVE10",
		Type:                 domain.DiscountPercent,
		Value:                10,
		StartDate:            now.AddDate(0, -1, 0),
		EndDate:              now.AddDate(0, 1, 0),
		ApplicableProductIDs: productIDs,
		IsActive:             true,
	}
}

func sampleCart() []domain.CartLine {
	return []domain.CartLine{{
		ID:         "l1",
		Kind:       domain.LineSimple,
		OriginalID: "p1",
		Name:       "Latte",
		Price:      4.50,
		Size:       domain.SizeL,
		Quantity:   2,
		Toppings:   []domain.Topping{{ID: "t1", Price: 0.50}},
	}}
}

func silverUser() *domain.User {
	return &domain.User{ID: "u1", Name: "An", Role: domain.RoleCustomer, LoyaltyPoints: 600}
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestSettleEndToEnd(t *testing.T) {
	// subtotal (4.50+0.50+0.50)*2 = 11.00, promo 10% of eligible = 1.10,
	// afterPromo 9.90, silver 5% = 0.495, final 9.405.
	receipt, err := newSettler().Settle(Input{
		Lines:      sampleCart(),
		Codes:      []domain.DiscountCode{save10("p1")},
		CodeText:   "SAVE10",
		User:       silverUser(),
		Details:    Details{Name: "An", PaymentMethod: "cash"},
		Thresholds: loyalty.DefaultThresholds(),
		Now:        now,
	})
	if err != nil {
		t.Fatalf("settle: %v", err)
	}

	bd := receipt.Breakdown
	if !almostEqual(bd.Subtotal, 11.00) {
		t.Fatalf("Subtotal = %v, want 11.00", bd.Subtotal)
	}
	if !almostEqual(bd.DiscountAmount, 1.10) {
		t.Fatalf("DiscountAmount = %v, want 1.10", bd.DiscountAmount)
	}
	if !almostEqual(bd.LoyaltyAmount, 0.495) {
		t.Fatalf("LoyaltyAmount = %v, want 0.495", bd.LoyaltyAmount)
	}
	if !almostEqual(bd.FinalTotal, 9.405) {
		t.Fatalf("FinalTotal = %v, want 9.405", bd.FinalTotal)
	}
	if !almostEqual(receipt.Order.Total, 9.405) {
		t.Fatalf("order total = %v, want 9.405", receipt.Order.Total)
	}

	// 9.405 * 25000 / 10000 = 23.5125 -> 23 points
	if bd.PointsEarned != 23 {
		t.Fatalf("PointsEarned = %d, want 23", bd.PointsEarned)
	}
	if receipt.User.LoyaltyPoints != 623 {
		t.Fatalf("user points = %d, want 623", receipt.User.LoyaltyPoints)
	}

	if receipt.Order.Status != domain.OrderPending {
		t.Fatalf("new orders start Pending, got %s", receipt.Order.Status)
	}
	if receipt.Order.ItemsCount != 2 {
		t.Fatalf("ItemsCount = %d, want 2", receipt.Order.ItemsCount)
	}
	if receipt.Order.UserID != "u1" {
		t.Fatalf("order not linked to user: %+v", receipt.Order)
	}
}

func TestSettleRefusesWithoutUser(t *testing.T) {
	_, err := newSettler().Settle(Input{
		Lines:      sampleCart(),
		Details:    Details{Name: "An"},
		Thresholds: loyalty.DefaultThresholds(),
		Now:        now,
	})
	if !errors.Is(err, domain.ErrNoUser) {
		t.Fatalf("expected ErrNoUser, got %v", err)
	}
}

func TestSettleRefusesEmptyCart(t *testing.T) {
	_, err := newSettler().Settle(Input{
		User:       silverUser(),
		Details:    Details{Name: "An"},
		Thresholds: loyalty.DefaultThresholds(),
		Now:        now,
	})
	if !errors.Is(err, ErrEmptyCart) {
		t.Fatalf("expected ErrEmptyCart, got %v", err)
	}
}

func TestSettleRefusesMissingName(t *testing.T) {
	_, err := newSettler().Settle(Input{
		Lines:      sampleCart(),
		User:       silverUser(),
		Thresholds: loyalty.DefaultThresholds(),
		Now:        now,
	})
	if !errors.Is(err, ErrMissingName) {
		t.Fatalf("expected ErrMissingName, got %v", err)
	}
}

func TestSettleFailsClosedOnUnresolvedCode(t *testing.T) {
	// Typed text that never became an applied discount blocks checkout
	// instead of being ignored.
	_, err := newSettler().Settle(Input{
		Lines:      sampleCart(),
		Codes:      []domain.DiscountCode{save10("p1")},
		CodeText:   "TYPO",
		User:       silverUser(),
		Details:    Details{Name: "An"},
		Thresholds: loyalty.DefaultThresholds(),
		Now:        now,
	})
	var codeErr *CodeError
	if !errors.As(err, &codeErr) {
		t.Fatalf("expected CodeError, got %v", err)
	}
	if codeErr.Reason != discount.ReasonNotFound {
		t.Fatalf("reason = %s, want not_found", codeErr.Reason)
	}
}

func TestSettleWithoutCodeSkipsEvaluation(t *testing.T) {
	receipt, err := newSettler().Settle(Input{
		Lines:      sampleCart(),
		Codes:      []domain.DiscountCode{save10("p1")},
		User:       silverUser(),
		Details:    Details{Name: "An"},
		Thresholds: loyalty.DefaultThresholds(),
		Now:        now,
	})
	if err != nil {
		t.Fatalf("settle: %v", err)
	}
	if receipt.Breakdown.DiscountAmount != 0 || receipt.Breakdown.DiscountCode != "" {
		t.Fatalf("no code entered, no promo discount: %+v", receipt.Breakdown)
	}
}

func TestSettleTotalNeverNegative(t *testing.T) {
	// Fixed discount above the subtotal plus a diamond loyalty cut must
	// still floor at zero, and zero total earns zero points.
	big := domain.DiscountCode{
		ID:                   "d2",
		Code:                 "BIGFIX",
		Type:                 domain.DiscountFixed,
		Value:                500,
		StartDate:            now.AddDate(0, -1, 0),
		EndDate:              now.AddDate(0, 1, 0),
		ApplicableProductIDs: []string{"p1"},
		IsActive:             true,
	}
	user := &domain.User{ID: "u2", Name: "Binh", LoyaltyPoints: 2000}

	receipt, err := newSettler().Settle(Input{
		Lines:      sampleCart(),
		Codes:      []domain.DiscountCode{big},
		CodeText:   "bigfix",
		User:       user,
		Details:    Details{Name: "Binh"},
		Thresholds: loyalty.DefaultThresholds(),
		Now:        now,
	})
	if err != nil {
		t.Fatalf("settle: %v", err)
	}
	if receipt.Breakdown.FinalTotal != 0 {
		t.Fatalf("FinalTotal = %v, want 0", receipt.Breakdown.FinalTotal)
	}
	if receipt.Breakdown.PointsEarned != 0 {
		t.Fatalf("zero total earns zero points, got %d", receipt.Breakdown.PointsEarned)
	}
	if receipt.User.LoyaltyPoints != 2000 {
		t.Fatalf("points must not move on a zero-total order, got %d", receipt.User.LoyaltyPoints)
	}
}

func TestSettleOrderSnapshotsCart(t *testing.T) {
	lines := sampleCart()
	receipt, err := newSettler().Settle(Input{
		Lines:      lines,
		User:       silverUser(),
		Details:    Details{Name: "An"},
		Thresholds: loyalty.DefaultThresholds(),
		Now:        now,
	})
	if err != nil {
		t.Fatalf("settle: %v", err)
	}

	lines[0].Quantity = 99
	lines[0].Toppings[0].Price = 42

	if receipt.Order.Items[0].Quantity != 2 {
		t.Fatalf("order items alias the live cart: qty %d", receipt.Order.Items[0].Quantity)
	}
	if receipt.Order.Items[0].Toppings[0].Price != 0.50 {
		t.Fatalf("order toppings alias the live cart")
	}
}

func TestSettleDoesNotMutateInputUser(t *testing.T) {
	user := silverUser()
	_, err := newSettler().Settle(Input{
		Lines:      sampleCart(),
		User:       user,
		Details:    Details{Name: "An"},
		Thresholds: loyalty.DefaultThresholds(),
		Now:        now,
	})
	if err != nil {
		t.Fatalf("settle: %v", err)
	}
	if user.LoyaltyPoints != 600 {
		t.Fatalf("input user mutated: %d", user.LoyaltyPoints)
	}
}
