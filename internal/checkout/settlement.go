package checkout

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"gerry-coffee/internal/cart"
	"gerry-coffee/internal/discount"
	"gerry-coffee/internal/domain"
	"gerry-coffee/internal/loyalty"
	"gerry-coffee/internal/pricing"
)

var (
	// ErrEmptyCart refuses settlement of a cart with no lines.
	ErrEmptyCart = errors.New("cart is empty")
	// ErrMissingName refuses settlement without a customer name.
	ErrMissingName = errors.New("customer name required")
)

// CodeError reports an entered discount code that did not resolve to an
// applied discount. An entered-but-invalid code blocks checkout rather
// than being silently dropped.
type CodeError struct {
	Reason discount.Reason
}

func (e *CodeError) Error() string {
	return fmt.Sprintf("discount code rejected: %s", e.Reason)
}

// Details are the checkout form fields recorded onto the order.
type Details struct {
	Name          string
	Address       string
	PaymentMethod string
	Note          string
}

// Breakdown itemizes how the final total was reached.
type Breakdown struct {
	Subtotal       float64 `json:"subtotal"`
	DiscountCode   string  `json:"discountCode,omitempty"`
	DiscountAmount float64 `json:"discountAmount"`
	LoyaltyPercent float64 `json:"loyaltyPercent"`
	LoyaltyAmount  float64 `json:"loyaltyAmount"`
	FinalTotal     float64 `json:"finalTotal"`
	PointsEarned   int     `json:"pointsEarned"`
}

// Receipt is the settlement result: the new order, the user with points
// accrued, and the arithmetic behind the total. The caller owns the
// commit: order append, user update and cart clear happen together or
// not at all.
type Receipt struct {
	Order     domain.Order
	User      domain.User
	Breakdown Breakdown
}

// Input carries everything one settlement needs. Thresholds come in per
// call because tier minimums are admin-editable at runtime.
type Input struct {
	Lines      []domain.CartLine
	Codes      []domain.DiscountCode
	CodeText   string
	User       *domain.User
	Details    Details
	Thresholds loyalty.Thresholds
	Now        time.Time
}

// Settler turns a cart into a final payable total and an order record.
type Settler struct {
	calc         pricing.Calculator
	eval         discount.Evaluator
	percents     loyalty.Percents
	exchangeRate float64
	pointValue   float64
}

func New(calc pricing.Calculator, eval discount.Evaluator, percents loyalty.Percents, exchangeRate, pointValue float64) Settler {
	return Settler{
		calc:         calc,
		eval:         eval,
		percents:     percents,
		exchangeRate: exchangeRate,
		pointValue:   pointValue,
	}
}

// Settle computes subtotal, promo discount, loyalty discount and the
// final total (never negative), then materializes the order and the
// updated user. It touches no shared state itself.
func (s Settler) Settle(in Input) (Receipt, error) {
	if in.User == nil {
		return Receipt{}, domain.ErrNoUser
	}
	if len(in.Lines) == 0 {
		return Receipt{}, ErrEmptyCart
	}
	if in.Details.Name == "" {
		return Receipt{}, ErrMissingName
	}

	var bd Breakdown
	bd.Subtotal = cart.Subtotal(in.Lines, s.calc)

	if in.CodeText != "" {
		res := s.eval.Evaluate(in.Codes, in.CodeText, in.Lines, in.Now)
		if !res.Valid {
			return Receipt{}, &CodeError{Reason: res.Reason}
		}
		bd.DiscountCode = res.Code.Code
		bd.DiscountAmount = res.Amount
	}

	afterPromo := bd.Subtotal - bd.DiscountAmount
	if afterPromo < 0 {
		afterPromo = 0
	}

	tier := loyalty.TierOf(in.User.LoyaltyPoints, in.Thresholds, s.percents)
	bd.LoyaltyPercent = tier.DiscountPercent
	bd.LoyaltyAmount = afterPromo * tier.DiscountPercent / 100

	bd.FinalTotal = afterPromo - bd.LoyaltyAmount
	if bd.FinalTotal < 0 {
		bd.FinalTotal = 0
	}

	bd.PointsEarned = loyalty.EarnedPoints(bd.FinalTotal, s.exchangeRate, s.pointValue)

	order := domain.Order{
		ID:            uuid.NewString(),
		UserID:        in.User.ID,
		CustomerName:  in.Details.Name,
		Total:         bd.FinalTotal,
		Status:        domain.OrderPending,
		Date:          in.Now,
		ItemsCount:    cart.ItemCount(in.Lines),
		Items:         domain.CloneLines(in.Lines),
		Address:       in.Details.Address,
		PaymentMethod: in.Details.PaymentMethod,
		Note:          in.Details.Note,
	}

	user := *in.User
	user.LoyaltyPoints += bd.PointsEarned

	return Receipt{Order: order, User: user, Breakdown: bd}, nil
}
