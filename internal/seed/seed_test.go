package seed

import (
	"context"
	"encoding/json"
	"testing"

	"gerry-coffee/internal/domain"
	"gerry-coffee/internal/store"
)

func TestApplyPopulatesEveryKey(t *testing.T) {
	mem := store.NewMemory()
	ctx := context.Background()

	if err := Apply(ctx, mem); err != nil {
		t.Fatalf("apply: %v", err)
	}

	keys, err := mem.Keys(ctx)
	if err != nil {
		t.Fatalf("keys: %v", err)
	}
	if len(keys) != 11 {
		t.Fatalf("expected 11 seeded keys, got %d: %v", len(keys), keys)
	}

	raw, err := mem.Load(ctx, store.KeyProducts)
	if err != nil {
		t.Fatalf("load products: %v", err)
	}
	var products []domain.Product
	if err := json.Unmarshal(raw, &products); err != nil {
		t.Fatalf("decode products: %v", err)
	}
	if len(products) == 0 {
		t.Fatalf("seeded products must not be empty")
	}
}

func TestApplyIsIdempotent(t *testing.T) {
	mem := store.NewMemory()
	ctx := context.Background()

	custom := []byte(`[{"id":"mine","name":"Kept","price":1.5,"isAvailable":true}]`)
	if err := mem.Save(ctx, store.KeyProducts, custom); err != nil {
		t.Fatalf("save: %v", err)
	}

	if err := Apply(ctx, mem); err != nil {
		t.Fatalf("apply: %v", err)
	}

	raw, err := mem.Load(ctx, store.KeyProducts)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if string(raw) != string(custom) {
		t.Fatalf("apply overwrote an existing document")
	}
}

func TestDefaultsAreConsistent(t *testing.T) {
	ds := Defaults()

	toppings := make(map[string]bool, len(ds.Toppings))
	for _, tp := range ds.Toppings {
		toppings[tp.ID] = true
	}
	products := make(map[string]bool, len(ds.Products))
	for _, p := range ds.Products {
		products[p.ID] = true
	}

	for _, c := range ds.Combos {
		for _, item := range c.Items {
			if !products[item.ProductID] {
				t.Fatalf("combo %s references unknown product %s", c.ID, item.ProductID)
			}
		}
	}
	for _, promo := range ds.Promotions {
		if len(promo.ApplicableProductIDs) == 0 {
			t.Fatalf("promotion %s has no applicable products", promo.Code)
		}
		for _, id := range promo.ApplicableProductIDs {
			if !products[id] {
				t.Fatalf("promotion %s references unknown product %s", promo.Code, id)
			}
		}
	}
}
