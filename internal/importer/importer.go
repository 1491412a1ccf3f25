package importer

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"pizzaria-storefront/internal/domain"
)

type PizzaWriter interface {
	Upsert(ctx context.Context, p domain.Pizza) (*domain.Pizza, error)
}

// CSVImporter reads a menu export and inserts/updates pizzas. One row per
// pizza/variant pair.
type CSVImporter struct {
	reader    *csv.Reader
	pizzaRepo PizzaWriter
}

func NewCSVImporter(r io.Reader, repo PizzaWriter) *CSVImporter {
	csvr := csv.NewReader(r)
	csvr.FieldsPerRecord = -1 // rows may have trailing commas
	return &CSVImporter{
		reader:    csvr,
		pizzaRepo: repo,
	}
}

// Run parses CSV rows and upserts pizzas. It returns the number of rows
// imported.
func (i *CSVImporter) Run(ctx context.Context) (int, error) {
	headers, err := i.reader.Read()
	if err != nil {
		return 0, fmt.Errorf("read headers: %w", err)
	}
	index := headerIndex(headers)

	imported := 0
	for {
		record, err := i.reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return imported, fmt.Errorf("read row: %w", err)
		}

		pizza, ok := parseRow(record, index)
		if !ok {
			continue
		}
		if pizza.Name == "" || pizza.Variant == "" {
			return imported, fmt.Errorf("invalid menu row (missing name or variant): %v", record)
		}
		if _, err := i.pizzaRepo.Upsert(ctx, pizza); err != nil {
			return imported, fmt.Errorf("upsert pizza %q/%q: %w", pizza.Name, pizza.Variant, err)
		}
		imported++
	}

	return imported, nil
}

func headerIndex(headers []string) map[string]int {
	idx := make(map[string]int, len(headers))
	for i, h := range headers {
		idx[strings.TrimSpace(h)] = i
	}
	return idx
}

func parseRow(record []string, index map[string]int) (domain.Pizza, bool) {
	name := pick(record, index, "name")
	variant := pick(record, index, "variant")
	if name == "" && variant == "" {
		return domain.Pizza{}, false
	}

	var price float64
	if raw := pick(record, index, "price"); raw != "" {
		price, _ = strconv.ParseFloat(raw, 64)
	}
	if price < 0 {
		price = 0
	}

	return domain.Pizza{
		Name:        name,
		Description: pick(record, index, "description"),
		Variant:     variant,
		Price:       price,
		ImageURL:    pick(record, index, "image_url"),
	}, true
}

func pick(record []string, index map[string]int, key string) string {
	pos, ok := index[key]
	if !ok || pos >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[pos])
}
