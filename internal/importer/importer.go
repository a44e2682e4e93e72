package importer

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"gerry-coffee/internal/domain"
	"gerry-coffee/internal/store"
)

// Kind is the detected CSV payload type.
type Kind string

const (
	KindProducts Kind = "products"
	KindToppings Kind = "toppings"
)

// DetectKind sniffs the header row. Product files carry a category
// column, topping files are just id/name/price.
func DetectKind(r io.Reader) (Kind, error) {
	headers, err := csv.NewReader(r).Read()
	if err != nil {
		return "", fmt.Errorf("read headers: %w", err)
	}
	for _, h := range headers {
		if strings.TrimSpace(h) == "category" {
			return KindProducts, nil
		}
	}
	return KindToppings, nil
}

// CSVImporter merges menu rows from a CSV export into the catalog
// documents kept in the store. Rows with a known id replace the stored
// entry, rows without one are appended with a fresh id.
type CSVImporter struct {
	reader *csv.Reader
	store  store.Store
}

func NewCSVImporter(r io.Reader, s store.Store) *CSVImporter {
	csvr := csv.NewReader(r)
	csvr.FieldsPerRecord = -1 // rows may have trailing commas
	return &CSVImporter{reader: csvr, store: s}
}

// Run parses the CSV and writes the merged catalog document back.
// It returns the number of rows imported.
func (i *CSVImporter) Run(ctx context.Context, kind Kind) (int, error) {
	headers, err := i.reader.Read()
	if err != nil {
		return 0, fmt.Errorf("read headers: %w", err)
	}
	index := headerIndex(headers)

	switch kind {
	case KindProducts:
		return i.runProducts(ctx, index)
	case KindToppings:
		return i.runToppings(ctx, index)
	default:
		return 0, fmt.Errorf("unknown import kind %q", kind)
	}
}

func (i *CSVImporter) runProducts(ctx context.Context, index map[string]int) (int, error) {
	existing, err := loadDoc[domain.Product](ctx, i.store, store.KeyProducts)
	if err != nil {
		return 0, err
	}

	imported := 0
	for {
		record, err := i.reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return imported, fmt.Errorf("read row: %w", err)
		}

		name := pick(record, index, "name")
		if name == "" {
			continue
		}
		price, err := strconv.ParseFloat(pick(record, index, "price"), 64)
		if err != nil {
			return imported, fmt.Errorf("invalid price for %q: %w", name, err)
		}

		p := domain.Product{
			ID:           pick(record, index, "id"),
			Name:         name,
			Description:  pick(record, index, "description"),
			Category:     pick(record, index, "category"),
			Price:        price,
			Image:        pick(record, index, "image"),
			IsAvailable:  pickBool(record, index, "available", true),
			IsBestSeller: pickBool(record, index, "bestseller", false),
		}
		if raw := pick(record, index, "originalPrice"); raw != "" {
			if v, err := strconv.ParseFloat(raw, 64); err == nil {
				p.OriginalPrice = v
			}
		}
		if p.ID == "" {
			p.ID = uuid.NewString()
		}

		existing = mergeByID(existing, p, func(x domain.Product) string { return x.ID })
		imported++
	}

	if err := saveDoc(ctx, i.store, store.KeyProducts, existing); err != nil {
		return imported, err
	}
	return imported, nil
}

func (i *CSVImporter) runToppings(ctx context.Context, index map[string]int) (int, error) {
	existing, err := loadDoc[domain.Topping](ctx, i.store, store.KeyToppings)
	if err != nil {
		return 0, err
	}

	imported := 0
	for {
		record, err := i.reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return imported, fmt.Errorf("read row: %w", err)
		}

		name := pick(record, index, "name")
		if name == "" {
			continue
		}
		price, err := strconv.ParseFloat(pick(record, index, "price"), 64)
		if err != nil {
			return imported, fmt.Errorf("invalid price for %q: %w", name, err)
		}

		t := domain.Topping{
			ID:    pick(record, index, "id"),
			Name:  name,
			Price: price,
		}
		if t.ID == "" {
			t.ID = uuid.NewString()
		}

		existing = mergeByID(existing, t, func(x domain.Topping) string { return x.ID })
		imported++
	}

	if err := saveDoc(ctx, i.store, store.KeyToppings, existing); err != nil {
		return imported, err
	}
	return imported, nil
}

func loadDoc[T any](ctx context.Context, s store.Store, key string) ([]T, error) {
	raw, err := s.Load(ctx, key)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", key, err)
	}
	var out []T
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("decode %s: %w", key, err)
	}
	return out, nil
}

func saveDoc[T any](ctx context.Context, s store.Store, key string, doc []T) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := s.Save(ctx, key, raw); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

func mergeByID[T any](items []T, item T, id func(T) string) []T {
	for n, existing := range items {
		if id(existing) == id(item) {
			items[n] = item
			return items
		}
	}
	return append(items, item)
}

func headerIndex(headers []string) map[string]int {
	idx := make(map[string]int, len(headers))
	for i, h := range headers {
		idx[strings.TrimSpace(h)] = i
	}
	return idx
}

func pick(record []string, index map[string]int, key string) string {
	pos, ok := index[key]
	if !ok || pos >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[pos])
}

func pickBool(record []string, index map[string]int, key string, fallback bool) bool {
	raw := pick(record, index, key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return fallback
	}
	return v
}
