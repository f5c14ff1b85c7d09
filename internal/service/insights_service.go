package service

import (
	"fmt"
	"log"
	"sort"
	"strings"

	"github.com/shoplocal/backend-go/internal/models"
	"github.com/shoplocal/backend-go/internal/scrape"
	"github.com/shoplocal/backend-go/internal/spatial"
)

// Result caps per audience.
const (
	customerTrendingLimit = 20
	sellerTrendingLimit   = 30
	restockDepth          = 10
	priceSampleLimit      = 30
	nearbyLimit           = 20
)

// InsightsService computes market analytics over the scraped dataset:
// trending products, price averages, and per-seller recommendations.
type InsightsService struct {
	registry RegistryStore
	rows     RowSource
}

// NewInsightsService creates an insights service.
func NewInsightsService(registry RegistryStore, rows RowSource) *InsightsService {
	return &InsightsService{
		registry: registry,
		rows:     rows,
	}
}

// Trending ranks product names by how often they appear across scraped
// listings. Names are lowercased; ties keep first-encountered order.
func (s *InsightsService) Trending(rows []scrape.Row, limit int) []models.TrendingEntry {
	counts := make(map[string]int)
	var order []string

	for _, row := range rows {
		for _, entry := range rowProducts(row) {
			name := strings.ToLower(strings.TrimSpace(entry.Name))
			if name == "" {
				continue
			}
			if _, seen := counts[name]; !seen {
				order = append(order, name)
			}
			counts[name]++
		}
	}

	trending := make([]models.TrendingEntry, 0, len(order))
	for _, name := range order {
		trending = append(trending, models.TrendingEntry{Product: name, Count: counts[name]})
	}
	sort.SliceStable(trending, func(i, j int) bool {
		return trending[i].Count > trending[j].Count
	})

	if limit > 0 && len(trending) > limit {
		trending = trending[:limit]
	}
	return trending
}

// PriceStats accumulates the mean advertised price per product name,
// skipping entries without a positive parseable price.
func (s *InsightsService) PriceStats(rows []scrape.Row) []models.PriceStat {
	type acc struct {
		count int
		sum   float64
	}
	stats := make(map[string]*acc)
	var order []string

	for _, row := range rows {
		for _, entry := range rowProducts(row) {
			name := strings.ToLower(strings.TrimSpace(entry.Name))
			if name == "" || entry.Price == nil || *entry.Price <= 0 {
				continue
			}
			a := stats[name]
			if a == nil {
				a = &acc{}
				stats[name] = a
				order = append(order, name)
			}
			a.count++
			a.sum += *entry.Price
		}
	}

	averages := make([]models.PriceStat, 0, len(order))
	for _, name := range order {
		a := stats[name]
		averages = append(averages, models.PriceStat{
			Product:  name,
			AvgPrice: round2(a.sum / float64(a.count)),
			Samples:  a.count,
		})
	}
	return averages
}

// RestockRecommendations suggests top-trending products the seller does not
// stock, with the market average as the suggested price when one exists.
func (s *InsightsService) RestockRecommendations(trending []models.TrendingEntry, shopProductNames []string, stats []models.PriceStat) []models.RestockEntry {
	owned := make(map[string]bool, len(shopProductNames))
	for _, name := range shopProductNames {
		owned[strings.ToLower(strings.TrimSpace(name))] = true
	}
	averages := priceIndex(stats)

	if len(trending) > restockDepth {
		trending = trending[:restockDepth]
	}

	recommendations := []models.RestockEntry{}
	for _, t := range trending {
		if owned[t.Product] {
			continue
		}
		entry := models.RestockEntry{Product: t.Product, TrendingScore: t.Count}
		if avg, ok := averages[t.Product]; ok {
			entry.SuggestedPrice = &avg
		}
		recommendations = append(recommendations, entry)
	}
	return recommendations
}

// PriceSuggestions compares each seller product carrying a positive price
// against the market average. Products without a market match are omitted.
func (s *InsightsService) PriceSuggestions(shopProducts []models.ProductEntry, stats []models.PriceStat) []models.PriceSuggestion {
	averages := priceIndex(stats)

	suggestions := []models.PriceSuggestion{}
	for _, p := range shopProducts {
		name := strings.ToLower(strings.TrimSpace(p.Name))
		if name == "" || p.Price == nil || *p.Price <= 0 {
			continue
		}
		avg, ok := averages[name]
		if !ok {
			continue
		}
		diff := round2(*p.Price - avg)
		suggestions = append(suggestions, models.PriceSuggestion{
			Product:     name,
			SellerPrice: *p.Price,
			MarketAvg:   avg,
			Diff:        diff,
			Pct:         round1(diff / avg * 100),
		})
	}
	return suggestions
}

// NearbyShops ranks the merged registered+scraped set by distance from a
// "lat,lng" location, capped to the closest twenty. There is no text-search
// fallback in this path; an unparseable location yields an empty list.
func (s *InsightsService) NearbyShops(location string) []models.NearbyShop {
	lat, lng, ok := ParseLatLng(location)
	if !ok {
		return []models.NearbyShop{}
	}

	registryRows, err := s.registry.ListShops()
	if err != nil {
		log.Printf("insights: registry unavailable for nearby ranking: %v", err)
		registryRows = nil
	}

	nearby := []models.NearbyShop{}
	appendShop := func(shop models.ShopRecord) {
		if shop.Lat == nil || shop.Lng == nil {
			return
		}
		nearby = append(nearby, models.NearbyShop{
			Name:       shop.Name,
			DistanceKM: round2(spatial.Haversine(lat, lng, *shop.Lat, *shop.Lng)),
			Rating:     shop.Rating,
			Source:     shop.Source,
		})
	}

	for _, row := range registryRows {
		appendShop(NormalizeRegistered(row))
	}
	for i, row := range s.rows.Rows() {
		appendShop(NormalizeScraped(row, i))
	}

	sort.SliceStable(nearby, func(i, j int) bool {
		return nearby[i].DistanceKM < nearby[j].DistanceKM
	})
	if len(nearby) > nearbyLimit {
		nearby = nearby[:nearbyLimit]
	}
	return nearby
}

// CustomerInsights returns trending products and, when a valid coordinate
// location is supplied, the nearest shops.
func (s *InsightsService) CustomerInsights(location string) models.CustomerInsights {
	rows := s.rows.Rows()

	insights := models.CustomerInsights{
		NearbyShops:      []models.NearbyShop{},
		TrendingProducts: s.Trending(rows, customerTrendingLimit),
	}
	if strings.TrimSpace(location) != "" {
		insights.NearbyShops = s.NearbyShops(location)
	}
	return insights
}

// SellerInsights cross-references the market picture with one seller's
// inventory. A nil result with nil error means the shop does not exist.
func (s *InsightsService) SellerInsights(shopID int64) (*models.SellerInsights, error) {
	shop, err := s.registry.GetShop(shopID)
	if err != nil {
		return nil, fmt.Errorf("failed to load shop %d: %w", shopID, err)
	}
	if shop == nil {
		return nil, nil
	}

	shopProducts := ParseStoredProducts(shop.Products)
	names := make([]string, 0, len(shopProducts))
	for _, p := range shopProducts {
		names = append(names, p.Name)
	}

	rows := s.rows.Rows()
	trending := s.Trending(rows, sellerTrendingLimit)
	stats := s.PriceStats(rows)

	topTrending := trending
	if len(topTrending) > restockDepth {
		topTrending = topTrending[:restockDepth]
	}
	samples := stats
	if len(samples) > priceSampleLimit {
		samples = samples[:priceSampleLimit]
	}

	return &models.SellerInsights{
		DemandInsights: models.DemandInsights{
			TopTrending:        topTrending,
			MarketPriceSamples: samples,
		},
		RestockRecommendations: s.RestockRecommendations(trending, names, stats),
		PriceSuggestions:       s.PriceSuggestions(shopProducts, stats),
	}, nil
}

// priceIndex maps product name to its market average for quick lookup.
func priceIndex(stats []models.PriceStat) map[string]float64 {
	index := make(map[string]float64, len(stats))
	for _, st := range stats {
		index[st.Product] = st.AvgPrice
	}
	return index
}

// rowProducts resolves the products column through its alias set and
// decodes whichever of the two supported shapes it carries.
func rowProducts(row scrape.Row) []models.ProductEntry {
	fields := canonicalizeKeys(row)
	raw := firstNonEmpty(fields, "products", "productsjson")
	if raw == "" {
		return nil
	}
	return DecodeProductsField(raw).Entries()
}
