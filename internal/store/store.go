// Package store persists entity collections as JSON documents in a
// key-value table, keyed by entity name. The application loads each
// collection once at startup and writes the whole collection back on
// every change; a missing key means "use the default dataset".
package store

import "context"

// Store is the key-value persistence boundary.
type Store interface {
	// Load returns the JSON document stored under key, or
	// domain.ErrNotFound when the key has never been written.
	Load(ctx context.Context, key string) ([]byte, error)
	// Save upserts the JSON document under key.
	Save(ctx context.Context, key string, value []byte) error
	// Keys lists all stored keys.
	Keys(ctx context.Context) ([]string, error)
}

// Collection keys.
const (
	KeyProducts     = "products"
	KeyToppings     = "toppings"
	KeyCategories   = "categories"
	KeyCombos       = "combos"
	KeyPromotions   = "promotions"
	KeyBanners      = "banners"
	KeyOrders       = "orders"
	KeyReservations = "reservations"
	KeyUsers        = "users"
	KeySettings     = "settings"
	KeyCart         = "cart"
)
