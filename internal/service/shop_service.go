package service

import (
	"log"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/shoplocal/backend-go/internal/models"
	"github.com/shoplocal/backend-go/internal/scrape"
	"github.com/shoplocal/backend-go/internal/spatial"
)

// DefaultMaxDistanceKM bounds the coordinate filter when the caller does
// not supply a radius.
const DefaultMaxDistanceKM = 5.0

// RegistryStore is the slice of the shop repository the services depend on.
type RegistryStore interface {
	ListShops() ([]models.RegistryShop, error)
	GetShop(id int64) (*models.RegistryShop, error)
}

// RowSource supplies the current snapshot of the external bulk dataset.
type RowSource interface {
	Rows() []scrape.Row
}

// ShopService merges registered and scraped shops into one filterable,
// geo-rankable directory.
type ShopService struct {
	registry RegistryStore
	rows     RowSource
	maxKM    float64
}

// NewShopService creates a shop aggregation service. maxDistanceKM is the
// default radius for the coordinate filter; non-positive values fall back
// to DefaultMaxDistanceKM.
func NewShopService(registry RegistryStore, rows RowSource, maxDistanceKM float64) *ShopService {
	if maxDistanceKM <= 0 {
		maxDistanceKM = DefaultMaxDistanceKM
	}
	return &ShopService{
		registry: registry,
		rows:     rows,
		maxKM:    maxDistanceKM,
	}
}

// GetShops normalizes both sources, merges them registered-first, applies
// the type/text and location filters, and reports how many raw scraped rows
// lacked coordinates. A single source being unavailable degrades to the
// other source instead of failing the request.
func (s *ShopService) GetShops(filter models.ShopFilter) models.AggregateResult {
	registryRows, err := s.registry.ListShops()
	if err != nil {
		log.Printf("shops: registry unavailable, serving scraped shops only: %v", err)
		registryRows = nil
	}
	scrapedRows := s.rows.Rows()

	shops := make([]models.ShopRecord, 0, len(registryRows)+len(scrapedRows))
	for _, row := range registryRows {
		shops = append(shops, NormalizeRegistered(row))
	}
	for i, row := range scrapedRows {
		shops = append(shops, NormalizeScraped(row, i))
	}

	// Counted on the raw rows, before normalization: the number describes
	// the data quality of the external source, not the response size.
	missing := countMissingCoords(scrapedRows)

	if q := strings.TrimSpace(filter.ShopType); q != "" {
		shops = filterByType(shops, q)
	}

	if location := strings.TrimSpace(filter.Location); location != "" {
		maxKM := filter.MaxDistanceKM
		if maxKM <= 0 {
			maxKM = s.maxKM
		}
		shops = filterByLocation(shops, location, maxKM)
	}

	return models.AggregateResult{Shops: shops, MissingCoordsCount: missing}
}

// countMissingCoords reports how many raw scraped rows have a blank or
// missing latitude or longitude.
func countMissingCoords(rows []scrape.Row) int {
	missing := 0
	for _, row := range rows {
		fields := canonicalizeKeys(row)
		if strings.TrimSpace(fields["latitude"]) == "" || strings.TrimSpace(fields["longitude"]) == "" {
			missing++
		}
	}
	return missing
}

// filterByType keeps shops whose type or name contains the query,
// case-insensitively.
func filterByType(shops []models.ShopRecord, query string) []models.ShopRecord {
	q := strings.ToLower(query)
	filtered := []models.ShopRecord{}
	for _, shop := range shops {
		if containsFold(strDeref(shop.ShopType), q) || containsFold(shop.Name, q) {
			filtered = append(filtered, shop)
		}
	}
	return filtered
}

// filterByLocation dispatches on the location shape: a comma means a
// coordinate pair, anything else is free text matched against address, name
// and shop type.
func filterByLocation(shops []models.ShopRecord, location string, maxKM float64) []models.ShopRecord {
	if strings.Contains(location, ",") {
		lat, lng, ok := ParseLatLng(location)
		if !ok {
			// A coordinate pair that does not parse matches nothing.
			return []models.ShopRecord{}
		}
		return rankByDistance(shops, lat, lng, maxKM)
	}

	q := strings.ToLower(location)
	filtered := []models.ShopRecord{}
	for _, shop := range shops {
		if containsFold(strDeref(shop.Address), q) ||
			containsFold(shop.Name, q) ||
			containsFold(strDeref(shop.ShopType), q) {
			filtered = append(filtered, shop)
		}
	}
	return filtered
}

// rankByDistance keeps shops with both coordinates within maxKM of the
// query point, sorted ascending by distance.
func rankByDistance(shops []models.ShopRecord, lat, lng, maxKM float64) []models.ShopRecord {
	ranked := []models.ShopRecord{}
	for _, shop := range shops {
		if shop.Lat == nil || shop.Lng == nil {
			continue
		}
		dist := round2(spatial.Haversine(lat, lng, *shop.Lat, *shop.Lng))
		if dist > maxKM {
			continue
		}
		shop.DistanceKM = &dist
		ranked = append(ranked, shop)
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return *ranked[i].DistanceKM < *ranked[j].DistanceKM
	})
	return ranked
}

// ParseLatLng splits a "lat,lng" string, trimming each side. ok is false
// unless both parts parse as numbers.
func ParseLatLng(location string) (float64, float64, bool) {
	parts := strings.Split(location, ",")
	if len(parts) < 2 {
		return 0, 0, false
	}
	lat, errLat := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	lng, errLng := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if errLat != nil || errLng != nil {
		return 0, 0, false
	}
	return lat, lng, true
}

func containsFold(s, lowerQuery string) bool {
	if s == "" {
		return false
	}
	return strings.Contains(strings.ToLower(s), lowerQuery)
}

func strDeref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
