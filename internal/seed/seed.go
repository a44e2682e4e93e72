// Package seed carries the documented fallback dataset. The state layer
// falls back to it per collection when the store has no document for a
// key, and cmd/seed writes it into the store up front.
package seed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gerry-coffee/internal/domain"
	"gerry-coffee/internal/store"
)

// Dataset is the full default content of the shop.
type Dataset struct {
	Products   []domain.Product
	Toppings   []domain.Topping
	Categories []domain.Category
	Combos     []domain.Combo
	Promotions []domain.DiscountCode
	Banners    []domain.Banner
	Users      []domain.User
	Settings   domain.BrandSettings
}

// Defaults returns the fallback dataset.
func Defaults() Dataset {
	return Dataset{
		Products:   defaultProducts(),
		Toppings:   defaultToppings(),
		Categories: defaultCategories(),
		Combos:     defaultCombos(),
		Promotions: defaultPromotions(),
		Banners:    defaultBanners(),
		Users:      defaultUsers(),
		Settings:   defaultSettings(),
	}
}

// Apply writes every default collection whose key is not yet present.
// It is idempotent: existing documents are never overwritten.
func Apply(ctx context.Context, s store.Store) error {
	ds := Defaults()
	docs := map[string]interface{}{
		store.KeyProducts:     ds.Products,
		store.KeyToppings:     ds.Toppings,
		store.KeyCategories:   ds.Categories,
		store.KeyCombos:       ds.Combos,
		store.KeyPromotions:   ds.Promotions,
		store.KeyBanners:      ds.Banners,
		store.KeyUsers:        ds.Users,
		store.KeySettings:     ds.Settings,
		store.KeyOrders:       []domain.Order{},
		store.KeyReservations: []domain.Reservation{},
		store.KeyCart:         []domain.CartLine{},
	}
	for key, doc := range docs {
		_, err := s.Load(ctx, key)
		if err == nil {
			continue
		}
		if !errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("load %s: %w", key, err)
		}
		value, err := json.Marshal(doc)
		if err != nil {
			return fmt.Errorf("marshal %s: %w", key, err)
		}
		if err := s.Save(ctx, key, value); err != nil {
			return fmt.Errorf("save %s: %w", key, err)
		}
	}
	return nil
}

func defaultCategories() []domain.Category {
	return []domain.Category{
		{ID: "1", Key: "Signature", Name: "Signature"},
		{ID: "2", Key: "Hot Coffee", Name: "Hot Coffee"},
		{ID: "3", Key: "Iced Coffee", Name: "Iced Coffee"},
		{ID: "4", Key: "Fruit Tea", Name: "Fruit Tea"},
		{ID: "5", Key: "Milk Tea", Name: "Milk Tea"},
		{ID: "6", Key: "Macchiato", Name: "Macchiato"},
		{ID: "7", Key: "Ice Blended", Name: "Ice Blended"},
		{ID: "8", Key: "Matcha", Name: "Matcha"},
		{ID: "9", Key: "Beans", Name: "Beans"},
		{ID: "10", Key: "Pastry", Name: "Pastry"},
	}
}

func defaultToppings() []domain.Topping {
	return []domain.Topping{
		{ID: "t1", Name: "Black Pearl", Price: 0.50},
		{ID: "t2", Name: "White Pearl", Price: 0.50},
		{ID: "t3", Name: "Milk Foam", Price: 0.75},
		{ID: "t4", Name: "Egg Pudding", Price: 0.50},
		{ID: "t5", Name: "Aloe Vera", Price: 0.50},
		{ID: "t6", Name: "Fruit Jelly", Price: 0.50},
		{ID: "t7", Name: "Extra Espresso Shot", Price: 0.75},
	}
}

func defaultProducts() []domain.Product {
	return []domain.Product{
		{
			ID:           "1",
			Name:         "Gerry Signature Salted Coffee",
			Description:  "Vietnamese Robusta topped with rich, salty cream foam.",
			Price:        4.50,
			Category:     "Signature",
			Rating:       5.0,
			ReviewCount:  12,
			IsAvailable:  true,
			IsBestSeller: true,
		},
		{
			ID:          "1a",
			Name:        "Gerry Special Egg Coffee",
			Description: "Traditional Hanoi style egg coffee, rich custard flavor over bold espresso.",
			Price:       5.00,
			Category:    "Signature",
			Rating:      4.9,
			ReviewCount: 8,
			IsAvailable: true,
		},
		{
			ID:          "2",
			Name:        "Velvet Cappuccino",
			Description: "Equal parts espresso, steamed milk, and foam.",
			Price:       4.50,
			Category:    "Hot Coffee",
			Rating:      4.7,
			IsAvailable: true,
		},
		{
			ID:          "3",
			Name:        "Caramel Macchiato",
			Description: "Steamed milk with vanilla syrup, marked with espresso and caramel drizzle.",
			Price:       5.25,
			Category:    "Hot Coffee",
			Rating:      4.9,
			IsAvailable: true,
		},
		{
			ID:          "4",
			Name:        "Nitro Cold Brew",
			Description: "Cold brew infused with nitrogen for a creamy texture.",
			Price:       5.50,
			Category:    "Iced Coffee",
			Rating:      5.0,
			IsAvailable: true,
		},
		{
			ID:          "5",
			Name:        "Iced Oat Latte",
			Description: "Espresso with oat milk over ice. Vegan friendly.",
			Price:       5.00,
			Category:    "Iced Coffee",
			Rating:      4.6,
			IsAvailable: true,
		},
		{
			ID:          "11",
			Name:        "Peach Lemongrass Tea",
			Description: "Black tea shaken with peach syrup and fresh lemongrass.",
			Price:       4.75,
			Category:    "Fruit Tea",
			Rating:      4.8,
			IsAvailable: true,
		},
		{
			ID:            "12",
			Name:          "Brown Sugar Milk Tea",
			Description:   "Creamy milk tea with house brown sugar syrup.",
			Price:         4.25,
			OriginalPrice: 4.95,
			Category:      "Milk Tea",
			Rating:        4.8,
			IsAvailable:   true,
			IsFeatured:    true,
		},
		{
			ID:          "20",
			Name:        "Butter Croissant",
			Description: "Flaky, baked fresh every morning.",
			Price:       2.50,
			Category:    "Pastry",
			Rating:      4.5,
			IsAvailable: true,
		},
	}
}

func defaultCombos() []domain.Combo {
	return []domain.Combo{
		{
			ID:          "c1",
			Name:        "Morning Duo",
			Description: "A signature coffee and a croissant to start the day.",
			Price:       6.25,
			IsActive:    true,
			CreatedAt:   time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			Items: []domain.ComboItem{
				{ProductID: "1", Quantity: 1},
				{ProductID: "20", Quantity: 1},
			},
		},
	}
}

func defaultPromotions() []domain.DiscountCode {
	return []domain.DiscountCode{
		{
			ID:                   "promo-1",
			Code:                 "SAVE10",
			Type:                 domain.DiscountPercent,
			Value:                10,
			StartDate:            time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			EndDate:              time.Date(2026, 12, 31, 23, 59, 59, 0, time.UTC),
			ApplicableProductIDs: []string{"1", "1a"},
			IsActive:             true,
		},
	}
}

func defaultBanners() []domain.Banner {
	return []domain.Banner{
		{
			ID:          "b1",
			Title:       "Premium Roasts & Teas",
			Subtitle:    "Signature salted coffee, now in size L.",
			CTAText:     "Order Now",
			LinkSection: "menu",
			IsActive:    true,
		},
	}
}

func defaultUsers() []domain.User {
	return []domain.User{
		{ID: "u-admin", Name: "Shop Admin", Email: "admin@gerry.coffee", Role: domain.RoleAdmin},
		{ID: "u-demo", Name: "Demo Customer", Email: "demo@gerry.coffee", Role: domain.RoleCustomer, LoyaltyPoints: 600},
	}
}

func defaultSettings() domain.BrandSettings {
	bronze, silver, gold, diamond := 0, 500, 850, 1350
	return domain.BrandSettings{
		BrandName:         "Gerry Coffee",
		StoreAddress:      "12 Nguyen Hue, District 1",
		ContactEmail:      "hello@gerry.coffee",
		LoyaltyBronzeMin:  &bronze,
		LoyaltySilverMin:  &silver,
		LoyaltyGoldMin:    &gold,
		LoyaltyDiamondMin: &diamond,
	}
}
