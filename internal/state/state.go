// Package state owns the application session: every entity collection
// lives here behind one lock, hydrated from the store at startup and
// mirrored back on each mutation. The core packages (pricing, discount,
// loyalty, cart, checkout, reservation) stay pure; this layer is the
// only place that commits their results.
package state

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"

	"gerry-coffee/internal/checkout"
	"gerry-coffee/internal/config"
	"gerry-coffee/internal/discount"
	"gerry-coffee/internal/domain"
	"gerry-coffee/internal/loyalty"
	"gerry-coffee/internal/pricing"
	"gerry-coffee/internal/reservation"
	"gerry-coffee/internal/seed"
	"gerry-coffee/internal/store"
)

// App is the single-session application state plus the wired core.
type App struct {
	mu     sync.Mutex
	store  store.Store
	logger *log.Logger

	calc     pricing.Calculator
	eval     discount.Evaluator
	settler  checkout.Settler
	guard    reservation.Guard
	percents loyalty.Percents
	defaults loyalty.Thresholds
	rate     float64
	merge    bool

	products     []domain.Product
	toppings     []domain.Topping
	categories   []domain.Category
	combos       []domain.Combo
	promotions   []domain.DiscountCode
	banners      []domain.Banner
	orders       []domain.Order
	reservations []domain.Reservation
	users        []domain.User
	settings     domain.BrandSettings
	cart         []domain.CartLine
}

func New(s store.Store, logger *log.Logger, cfg config.Config) *App {
	calc := pricing.New(cfg.SizeLUpcharge)
	eval := discount.New(calc)
	percents := loyalty.DefaultPercents()
	return &App{
		store:    s,
		logger:   logger,
		calc:     calc,
		eval:     eval,
		settler:  checkout.New(calc, eval, percents, cfg.ExchangeRate, cfg.LoyaltyPointValue),
		guard:    reservation.NewGuard(reservation.DefaultTables()),
		percents: percents,
		defaults: loyalty.Thresholds{
			BronzeMin:  cfg.LoyaltyBronzeMin,
			SilverMin:  cfg.LoyaltySilverMin,
			GoldMin:    cfg.LoyaltyGoldMin,
			DiamondMin: cfg.LoyaltyDiamondMin,
		},
		rate:  cfg.ExchangeRate,
		merge: cfg.MergeCombos,
	}
}

// Load hydrates every collection. A key that is absent or does not
// parse falls back to the default dataset, the same way the original
// storefront fell back when its local storage was empty or corrupt.
func (a *App) Load(ctx context.Context) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	ds := seed.Defaults()
	loadInto(ctx, a, store.KeyProducts, &a.products, ds.Products)
	loadInto(ctx, a, store.KeyToppings, &a.toppings, ds.Toppings)
	loadInto(ctx, a, store.KeyCategories, &a.categories, ds.Categories)
	loadInto(ctx, a, store.KeyCombos, &a.combos, ds.Combos)
	loadInto(ctx, a, store.KeyPromotions, &a.promotions, ds.Promotions)
	loadInto(ctx, a, store.KeyBanners, &a.banners, ds.Banners)
	loadInto(ctx, a, store.KeyOrders, &a.orders, []domain.Order{})
	loadInto(ctx, a, store.KeyReservations, &a.reservations, []domain.Reservation{})
	loadInto(ctx, a, store.KeyUsers, &a.users, ds.Users)
	loadInto(ctx, a, store.KeySettings, &a.settings, ds.Settings)
	loadInto(ctx, a, store.KeyCart, &a.cart, []domain.CartLine{})
	return nil
}

func loadInto[T any](ctx context.Context, a *App, key string, dst *T, fallback T) {
	value, err := a.store.Load(ctx, key)
	if err != nil {
		*dst = fallback
		return
	}
	var parsed T
	if err := json.Unmarshal(value, &parsed); err != nil {
		if a.logger != nil {
			a.logger.Printf("stored %s unparsable, using defaults: %v", key, err)
		}
		*dst = fallback
		return
	}
	*dst = parsed
}

// save mirrors one collection back to the store. Persistence is a
// mirror of the in-memory session, so a write failure is logged and
// the session carries on, as the original did with local storage.
func (a *App) save(ctx context.Context, key string, doc interface{}) {
	value, err := json.Marshal(doc)
	if err != nil {
		if a.logger != nil {
			a.logger.Printf("marshal %s: %v", key, err)
		}
		return
	}
	if err := a.store.Save(ctx, key, value); err != nil && a.logger != nil {
		a.logger.Printf("persist %s: %v", key, err)
	}
}

// thresholds resolves the tier minimums: admin settings override the
// configured defaults.
func (a *App) thresholds() loyalty.Thresholds {
	th := a.defaults
	if v := a.settings.LoyaltyBronzeMin; v != nil {
		th.BronzeMin = *v
	}
	if v := a.settings.LoyaltySilverMin; v != nil {
		th.SilverMin = *v
	}
	if v := a.settings.LoyaltyGoldMin; v != nil {
		th.GoldMin = *v
	}
	if v := a.settings.LoyaltyDiamondMin; v != nil {
		th.DiamondMin = *v
	}
	return th
}

func (a *App) findProduct(id string) (domain.Product, bool) {
	for _, p := range a.products {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Product{}, false
}

func (a *App) findCombo(id string) (domain.Combo, bool) {
	for _, c := range a.combos {
		if c.ID == id {
			return c, true
		}
	}
	return domain.Combo{}, false
}

// Quote prices a product configuration without touching the cart, as
// the product modal does while the customer picks size and toppings.
func (a *App) Quote(productID string, size domain.Size, toppingIDs []string) (float64, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	p, ok := a.findProduct(productID)
	if !ok {
		return 0, domain.ErrNotFound
	}
	tops, err := a.resolveToppings(toppingIDs)
	if err != nil {
		return 0, err
	}
	return a.calc.Quote(p, size, tops), nil
}

// SizeUpcharge reports the flat L-size upcharge for menu display.
func (a *App) SizeUpcharge() float64 {
	return a.calc.SizeLUpcharge
}

// ExchangeRate reports the base-to-VND display rate.
func (a *App) ExchangeRate() float64 {
	return a.rate
}

func (a *App) resolveToppings(ids []string) ([]domain.Topping, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	out := make([]domain.Topping, 0, len(ids))
	for _, id := range ids {
		found := false
		for _, t := range a.toppings {
			if t.ID == id {
				out = append(out, t)
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("topping %s: %w", id, domain.ErrNotFound)
		}
	}
	return out, nil
}

func (a *App) findUser(id string) (domain.User, bool) {
	for _, u := range a.users {
		if u.ID == id {
			return u, true
		}
	}
	return domain.User{}, false
}
