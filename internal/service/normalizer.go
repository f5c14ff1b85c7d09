package service

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/shoplocal/backend-go/internal/models"
	"github.com/shoplocal/backend-go/internal/scrape"
)

// NormalizeRegistered maps a registry row onto the canonical shop record.
// The native key is prefixed so ids stay unique once merged with scraped
// shops.
func NormalizeRegistered(row models.RegistryShop) models.ShopRecord {
	name := strings.TrimSpace(row.ShopName)
	if name == "" {
		name = "Unnamed"
	}

	return models.ShopRecord{
		ID:        fmt.Sprintf("reg_%d", row.ID),
		Name:      name,
		Source:    models.SourceRegistered,
		Lat:       row.Latitude,
		Lng:       row.Longitude,
		Photo:     row.PhotoURL,
		Address:   row.Address,
		Rating:    row.Rating,
		Contact:   row.Contact,
		OpenTime:  row.OpenTime,
		CloseTime: row.CloseTime,
		ShopType:  row.ShopType,
		Products:  ParseStoredProducts(row.Products),
	}
}

// NormalizeScraped maps one row of the external dataset onto the canonical
// record. The id is the row's position in the batch, which means it is not
// stable across dataset refreshes.
func NormalizeScraped(row scrape.Row, ordinal int) models.ShopRecord {
	fields := canonicalizeKeys(row)

	name := firstNonEmpty(fields, "shopname", "storename", "name")
	if name == "" {
		name = "Unnamed"
	}

	products := []models.ProductEntry{}
	for _, n := range []string{"1", "2"} {
		product := strings.TrimSpace(fields["product"+n])
		if product == "" {
			continue
		}
		products = append(products, models.ProductEntry{
			Name:  product,
			Price: parseFloat(fields["price"+n]),
		})
	}

	return models.ShopRecord{
		ID:        fmt.Sprintf("scr_%d", ordinal),
		Name:      name,
		Source:    models.SourceScraped,
		Lat:       parseFloat(fields["latitude"]),
		Lng:       parseFloat(fields["longitude"]),
		Photo:     strPtr(firstNonEmpty(fields, "imageurl", "image", "photo")),
		Address:   strPtr(firstNonEmpty(fields, "address")),
		Rating:    parseFloat(fields["rating"]),
		Contact:   strPtr(firstNonEmpty(fields, "phone")),
		OpenTime:  strPtr(firstNonEmpty(fields, "opens")),
		CloseTime: strPtr(firstNonEmpty(fields, "closes")),
		ShopType:  strPtr(firstNonEmpty(fields, "status")),
		Products:  products,
	}
}

// canonicalizeKeys lowercases raw column names and strips whitespace and
// underscores, so "Shop_Name", "shop name" and "shopname" all resolve to
// the same field.
func canonicalizeKeys(row scrape.Row) map[string]string {
	fields := make(map[string]string, len(row))
	for key, value := range row {
		canonical := strings.Map(func(r rune) rune {
			if unicode.IsSpace(r) || r == '_' {
				return -1
			}
			return unicode.ToLower(r)
		}, key)
		fields[canonical] = value
	}
	return fields
}

// firstNonEmpty resolves a field through its alias set, in order.
func firstNonEmpty(fields map[string]string, keys ...string) string {
	for _, key := range keys {
		if v := strings.TrimSpace(fields[key]); v != "" {
			return v
		}
	}
	return ""
}

// parseFloat converts best-effort numeric text into a float pointer.
// Missing or unparseable values become nil, never zero: zero is a valid
// rating, price or coordinate.
func parseFloat(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}

func strPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
