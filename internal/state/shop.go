package state

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"gerry-coffee/internal/cart"
	"gerry-coffee/internal/checkout"
	"gerry-coffee/internal/discount"
	"gerry-coffee/internal/domain"
	"gerry-coffee/internal/loyalty"
	"gerry-coffee/internal/reservation"
	"gerry-coffee/internal/store"
)

// ErrInvalidBooking rejects a submission missing its required fields.
var ErrInvalidBooking = errors.New("name, phone and party size are required")

// BookingError reports which booking rule failed so the caller can
// surface the right field to correct.
type BookingError struct {
	Reason reservation.Reason
}

func (e *BookingError) Error() string {
	return fmt.Sprintf("booking rejected: %s", e.Reason)
}

// CartView is the cart plus its priced summary, all computed with the
// same calculator checkout uses.
type CartView struct {
	Lines     []domain.CartLine `json:"lines"`
	Subtotal  float64           `json:"subtotal"`
	ItemCount int               `json:"itemCount"`
}

func (a *App) Cart() CartView {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.cartView()
}

func (a *App) cartView() CartView {
	return CartView{
		Lines:     domain.CloneLines(a.cart),
		Subtotal:  cart.Subtotal(a.cart, a.calc),
		ItemCount: cart.ItemCount(a.cart),
	}
}

// AddProductToCart resolves the product and topping ids, then merges or
// appends per the cart identity rule.
func (a *App) AddProductToCart(ctx context.Context, productID string, size domain.Size, note string, toppingIDs []string) (CartView, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	p, ok := a.findProduct(productID)
	if !ok {
		return CartView{}, domain.ErrNotFound
	}
	toppings, err := a.resolveToppings(toppingIDs)
	if err != nil {
		return CartView{}, err
	}

	lines, err := cart.AddProduct(a.cart, p, size, note, toppings)
	if err != nil {
		return CartView{}, err
	}
	a.cart = lines
	a.save(ctx, store.KeyCart, a.cart)
	return a.cartView(), nil
}

// AddComboToCart appends the combo as one bundle line.
func (a *App) AddComboToCart(ctx context.Context, comboID string) (CartView, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	combo, ok := a.findCombo(comboID)
	if !ok {
		return CartView{}, domain.ErrNotFound
	}
	lines, err := cart.AddCombo(a.cart, combo, a.products, cart.Options{MergeCombos: a.merge})
	if err != nil {
		return CartView{}, err
	}
	a.cart = lines
	a.save(ctx, store.KeyCart, a.cart)
	return a.cartView(), nil
}

func (a *App) UpdateCartQuantity(ctx context.Context, lineID string, delta int) (CartView, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	lines, err := cart.UpdateQuantity(a.cart, lineID, delta)
	if err != nil {
		return CartView{}, err
	}
	a.cart = lines
	a.save(ctx, store.KeyCart, a.cart)
	return a.cartView(), nil
}

func (a *App) RemoveCartLine(ctx context.Context, lineID string) (CartView, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	lines, err := cart.Remove(a.cart, lineID)
	if err != nil {
		return CartView{}, err
	}
	a.cart = lines
	a.save(ctx, store.KeyCart, a.cart)
	return a.cartView(), nil
}

// PreviewDiscount evaluates a code against the current cart without
// committing anything, for the checkout form's "apply" button.
func (a *App) PreviewDiscount(codeText string, now time.Time) discount.Result {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.eval.Evaluate(a.promotions, codeText, a.cart, now)
}

// Checkout settles the current cart for the given user and commits the
// result: order prepended, points accrued, cart cleared. The three
// changes happen together under the session lock; a failed settlement
// changes nothing.
func (a *App) Checkout(ctx context.Context, userID, codeText string, details checkout.Details, now time.Time) (checkout.Receipt, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	var user *domain.User
	if u, ok := a.findUser(userID); ok {
		user = &u
	}

	receipt, err := a.settler.Settle(checkout.Input{
		Lines:      a.cart,
		Codes:      a.promotions,
		CodeText:   codeText,
		User:       user,
		Details:    details,
		Thresholds: a.thresholds(),
		Now:        now,
	})
	if err != nil {
		return checkout.Receipt{}, err
	}

	a.orders = append([]domain.Order{receipt.Order}, a.orders...)
	for i, u := range a.users {
		if u.ID == receipt.User.ID {
			a.users[i] = receipt.User
		}
	}
	a.cart = nil

	a.save(ctx, store.KeyOrders, a.orders)
	a.save(ctx, store.KeyUsers, a.users)
	a.save(ctx, store.KeyCart, []domain.CartLine{})

	return receipt, nil
}

// BookingRequest is a table booking submission.
type BookingRequest struct {
	UserID    string
	Name      string
	Phone     string
	Email     string
	Note      string
	PartySize int
	TableID   string
	Datetime  time.Time
}

// Book runs the slot guard and records the reservation as Pending.
func (a *App) Book(ctx context.Context, req BookingRequest, now time.Time) (domain.Reservation, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if req.Name == "" || req.Phone == "" || req.PartySize < 1 {
		return domain.Reservation{}, ErrInvalidBooking
	}
	if d := a.guard.CanBook(a.reservations, req.TableID, req.Datetime, req.PartySize); !d.OK {
		return domain.Reservation{}, &BookingError{Reason: d.Reason}
	}

	r := domain.Reservation{
		ID:        uuid.NewString(),
		UserID:    req.UserID,
		Name:      req.Name,
		Phone:     req.Phone,
		Email:     req.Email,
		Note:      req.Note,
		PartySize: req.PartySize,
		TableID:   req.TableID,
		Datetime:  req.Datetime,
		Status:    domain.ReservationPending,
		CreatedAt: now,
	}
	a.reservations = append(a.reservations, r)
	a.save(ctx, store.KeyReservations, a.reservations)
	return r, nil
}

// Availability lists the table plan and which tables are taken at the
// requested instant.
type Availability struct {
	Tables   []domain.Table `json:"tables"`
	Reserved []string       `json:"reserved"`
}

func (a *App) Availability(at time.Time) Availability {
	a.mu.Lock()
	defer a.mu.Unlock()
	return Availability{
		Tables:   a.guard.Tables(),
		Reserved: reservation.ReservedAt(a.reservations, at),
	}
}

// LoyaltyView resolves a user's current tier under the live thresholds.
type LoyaltyView struct {
	Points int          `json:"points"`
	Tier   loyalty.Tier `json:"tier"`
}

func (a *App) Loyalty(userID string) (LoyaltyView, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	u, ok := a.findUser(userID)
	if !ok {
		return LoyaltyView{}, domain.ErrNotFound
	}
	return LoyaltyView{
		Points: u.LoyaltyPoints,
		Tier:   loyalty.TierOf(u.LoyaltyPoints, a.thresholds(), a.percents),
	}, nil
}
