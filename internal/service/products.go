package service

import (
	"encoding/json"
	"strings"

	"github.com/shoplocal/backend-go/internal/models"
)

// ProductsField is the decoded form of a scraped row's products column. The
// dataset carries two shapes for the same field: a comma-joined
// "name:price" string and a JSON list of objects. Each shape has its own
// decoder and both yield the same entry slice.
type ProductsField interface {
	Entries() []models.ProductEntry
}

// StringForm is the "Rice:50,Tea:20" shape.
type StringForm string

// ListForm is the JSON list-of-objects shape.
type ListForm []models.ProductEntry

// DecodeProductsField picks the decoder for a raw products value: a JSON
// array is the list form, anything else the delimited string form.
func DecodeProductsField(raw string) ProductsField {
	trimmed := strings.TrimSpace(raw)
	if strings.HasPrefix(trimmed, "[") {
		if entries, ok := decodeProductList(trimmed); ok {
			return ListForm(entries)
		}
	}
	return StringForm(trimmed)
}

// Entries splits the delimited form on commas, with an optional ":price"
// suffix per product.
func (f StringForm) Entries() []models.ProductEntry {
	var entries []models.ProductEntry
	for _, part := range strings.Split(string(f), ",") {
		name, priceText, _ := strings.Cut(part, ":")
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		entries = append(entries, models.ProductEntry{
			Name:  name,
			Price: parsePriceText(priceText),
		})
	}
	return entries
}

func (f ListForm) Entries() []models.ProductEntry {
	return f
}

// productItem tolerates the key aliases seen in list-shaped data:
// name/product and price/price_rupee.
type productItem struct {
	Name       string          `json:"name"`
	Product    string          `json:"product"`
	Price      json.RawMessage `json:"price"`
	PriceRupee json.RawMessage `json:"price_rupee"`
}

func decodeProductList(raw string) ([]models.ProductEntry, bool) {
	var items []productItem
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, false
	}

	entries := make([]models.ProductEntry, 0, len(items))
	for _, item := range items {
		name := strings.TrimSpace(item.Name)
		if name == "" {
			name = strings.TrimSpace(item.Product)
		}
		if name == "" {
			continue
		}
		price := item.Price
		if len(price) == 0 {
			price = item.PriceRupee
		}
		entries = append(entries, models.ProductEntry{
			Name:  name,
			Price: rawToPrice(price),
		})
	}
	return entries, true
}

// rawToPrice accepts a JSON number or a quoted string with currency noise.
func rawToPrice(raw json.RawMessage) *float64 {
	if len(raw) == 0 {
		return nil
	}
	var n float64
	if err := json.Unmarshal(raw, &n); err == nil {
		return &n
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return parsePriceText(s)
	}
	return nil
}

// parsePriceText strips everything but digits and the decimal point before
// parsing, so "₹50", "Rs. 50" and " 50 " all read as 50.
func parsePriceText(s string) *float64 {
	var b strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}
	return parseFloat(b.String())
}

// ParseStoredProducts decodes a registry products column (serialized JSON
// list). Malformed values yield an empty list, never an error.
func ParseStoredProducts(raw string) []models.ProductEntry {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return []models.ProductEntry{}
	}
	entries, ok := decodeProductList(trimmed)
	if !ok {
		return []models.ProductEntry{}
	}
	return entries
}

// ParseSubmittedProducts decodes the products payload of a seller
// registration: either a JSON array of entries or a newline-separated
// "name - price" listing.
func ParseSubmittedProducts(raw []byte) []models.ProductEntry {
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" || trimmed == "null" {
		return []models.ProductEntry{}
	}

	if strings.HasPrefix(trimmed, "[") {
		if entries, ok := decodeProductList(trimmed); ok {
			return entries
		}
	}

	text := trimmed
	var unquoted string
	if err := json.Unmarshal([]byte(trimmed), &unquoted); err == nil {
		text = unquoted
	}

	entries := []models.ProductEntry{}
	for _, line := range strings.Split(text, "\n") {
		name, priceText, _ := strings.Cut(line, "-")
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		entries = append(entries, models.ProductEntry{
			Name:  name,
			Price: parsePriceText(priceText),
		})
	}
	return entries
}
