package state

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"gerry-coffee/internal/domain"
	"gerry-coffee/internal/store"
)

// ErrInvalidRole rejects an unknown user role.
var ErrInvalidRole = errors.New("invalid role")

// The admin commands mutate one catalog collection each and mirror it
// back to the store. Catalog entries are replaced wholesale by id, the
// way the dashboard edits them.

func (a *App) Products() []domain.Product {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]domain.Product(nil), a.products...)
}

func (a *App) UpsertProduct(ctx context.Context, p domain.Product) domain.Product {
	a.mu.Lock()
	defer a.mu.Unlock()

	if p.ID == "" {
		p.ID = uuid.NewString()
		a.products = append(a.products, p)
	} else if !replaceByID(a.products, p, func(x domain.Product) string { return x.ID }) {
		a.products = append(a.products, p)
	}
	a.save(ctx, store.KeyProducts, a.products)
	return p
}

func (a *App) DeleteProduct(ctx context.Context, id string) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	kept, removed := deleteByID(a.products, id, func(x domain.Product) string { return x.ID })
	if !removed {
		return domain.ErrNotFound
	}
	a.products = kept
	a.save(ctx, store.KeyProducts, a.products)
	return nil
}

func (a *App) Toppings() []domain.Topping {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]domain.Topping(nil), a.toppings...)
}

func (a *App) UpsertTopping(ctx context.Context, t domain.Topping) domain.Topping {
	a.mu.Lock()
	defer a.mu.Unlock()

	if t.ID == "" {
		t.ID = uuid.NewString()
		a.toppings = append(a.toppings, t)
	} else if !replaceByID(a.toppings, t, func(x domain.Topping) string { return x.ID }) {
		a.toppings = append(a.toppings, t)
	}
	a.save(ctx, store.KeyToppings, a.toppings)
	return t
}

func (a *App) DeleteTopping(ctx context.Context, id string) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	kept, removed := deleteByID(a.toppings, id, func(x domain.Topping) string { return x.ID })
	if !removed {
		return domain.ErrNotFound
	}
	a.toppings = kept
	a.save(ctx, store.KeyToppings, a.toppings)
	return nil
}

func (a *App) Categories() []domain.Category {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]domain.Category(nil), a.categories...)
}

func (a *App) UpsertCategory(ctx context.Context, c domain.Category) domain.Category {
	a.mu.Lock()
	defer a.mu.Unlock()

	if c.ID == "" {
		c.ID = uuid.NewString()
		a.categories = append(a.categories, c)
	} else if !replaceByID(a.categories, c, func(x domain.Category) string { return x.ID }) {
		a.categories = append(a.categories, c)
	}
	a.save(ctx, store.KeyCategories, a.categories)
	return c
}

func (a *App) DeleteCategory(ctx context.Context, id string) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	kept, removed := deleteByID(a.categories, id, func(x domain.Category) string { return x.ID })
	if !removed {
		return domain.ErrNotFound
	}
	a.categories = kept
	a.save(ctx, store.KeyCategories, a.categories)
	return nil
}

func (a *App) Combos() []domain.Combo {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]domain.Combo(nil), a.combos...)
}

func (a *App) UpsertCombo(ctx context.Context, c domain.Combo) domain.Combo {
	a.mu.Lock()
	defer a.mu.Unlock()

	if c.ID == "" {
		c.ID = uuid.NewString()
		a.combos = append(a.combos, c)
	} else if !replaceByID(a.combos, c, func(x domain.Combo) string { return x.ID }) {
		a.combos = append(a.combos, c)
	}
	a.save(ctx, store.KeyCombos, a.combos)
	return c
}

func (a *App) DeleteCombo(ctx context.Context, id string) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	kept, removed := deleteByID(a.combos, id, func(x domain.Combo) string { return x.ID })
	if !removed {
		return domain.ErrNotFound
	}
	a.combos = kept
	a.save(ctx, store.KeyCombos, a.combos)
	return nil
}

func (a *App) Promotions() []domain.DiscountCode {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]domain.DiscountCode(nil), a.promotions...)
}

func (a *App) AddPromotion(ctx context.Context, p domain.DiscountCode) domain.DiscountCode {
	a.mu.Lock()
	defer a.mu.Unlock()

	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	a.promotions = append(a.promotions, p)
	a.save(ctx, store.KeyPromotions, a.promotions)
	return p
}

func (a *App) DeletePromotion(ctx context.Context, id string) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	kept, removed := deleteByID(a.promotions, id, func(x domain.DiscountCode) string { return x.ID })
	if !removed {
		return domain.ErrNotFound
	}
	a.promotions = kept
	a.save(ctx, store.KeyPromotions, a.promotions)
	return nil
}

func (a *App) Banners() []domain.Banner {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]domain.Banner(nil), a.banners...)
}

func (a *App) UpsertBanner(ctx context.Context, b domain.Banner) domain.Banner {
	a.mu.Lock()
	defer a.mu.Unlock()

	if b.ID == "" {
		b.ID = uuid.NewString()
		a.banners = append(a.banners, b)
	} else if !replaceByID(a.banners, b, func(x domain.Banner) string { return x.ID }) {
		a.banners = append(a.banners, b)
	}
	a.save(ctx, store.KeyBanners, a.banners)
	return b
}

func (a *App) DeleteBanner(ctx context.Context, id string) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	kept, removed := deleteByID(a.banners, id, func(x domain.Banner) string { return x.ID })
	if !removed {
		return domain.ErrNotFound
	}
	a.banners = kept
	a.save(ctx, store.KeyBanners, a.banners)
	return nil
}

func (a *App) Orders() []domain.Order {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]domain.Order, len(a.orders))
	for i, o := range a.orders {
		out[i] = o
		out[i].Items = domain.CloneLines(o.Items)
	}
	return out
}

// UpdateOrderStatus applies a status transition; terminal orders and
// unknown statuses are refused.
func (a *App) UpdateOrderStatus(ctx context.Context, id string, status domain.OrderStatus) (domain.Order, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	for i, o := range a.orders {
		if o.ID != id {
			continue
		}
		if !o.Status.CanTransition(status) {
			return domain.Order{}, domain.ErrBadTransition
		}
		a.orders[i].Status = status
		a.save(ctx, store.KeyOrders, a.orders)
		return a.orders[i], nil
	}
	return domain.Order{}, domain.ErrNotFound
}

func (a *App) Reservations() []domain.Reservation {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]domain.Reservation(nil), a.reservations...)
}

// UpdateReservationStatus allows Pending->Confirmed and
// Pending/Confirmed->Cancelled only.
func (a *App) UpdateReservationStatus(ctx context.Context, id string, status domain.ReservationStatus) (domain.Reservation, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	for i, r := range a.reservations {
		if r.ID != id {
			continue
		}
		if !r.Status.CanTransition(status) {
			return domain.Reservation{}, domain.ErrBadTransition
		}
		a.reservations[i].Status = status
		a.save(ctx, store.KeyReservations, a.reservations)
		return a.reservations[i], nil
	}
	return domain.Reservation{}, domain.ErrNotFound
}

func (a *App) Users() []domain.User {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]domain.User(nil), a.users...)
}

func (a *App) UpdateUserRole(ctx context.Context, id string, role domain.Role) (domain.User, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if role != domain.RoleCustomer && role != domain.RoleAdmin {
		return domain.User{}, ErrInvalidRole
	}
	for i, u := range a.users {
		if u.ID == id {
			a.users[i].Role = role
			a.save(ctx, store.KeyUsers, a.users)
			return a.users[i], nil
		}
	}
	return domain.User{}, domain.ErrNotFound
}

func (a *App) Settings() domain.BrandSettings {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.settings
}

func (a *App) UpdateSettings(ctx context.Context, s domain.BrandSettings) domain.BrandSettings {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.settings = s
	a.save(ctx, store.KeySettings, a.settings)
	return a.settings
}

func replaceByID[T any](items []T, item T, id func(T) string) bool {
	want := id(item)
	for i := range items {
		if id(items[i]) == want {
			items[i] = item
			return true
		}
	}
	return false
}

func deleteByID[T any](items []T, want string, id func(T) string) ([]T, bool) {
	out := make([]T, 0, len(items))
	removed := false
	for _, it := range items {
		if id(it) == want {
			removed = true
			continue
		}
		out = append(out, it)
	}
	return out, removed
}
