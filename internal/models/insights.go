package models

// TrendingEntry is a product name ranked by how often it appears across
// scraped listings within the current cache window.
type TrendingEntry struct {
	Product string `json:"product"`
	Count   int    `json:"count"`
}

// PriceStat is the mean advertised price for a product name across all
// scraped listings carrying a parseable price.
type PriceStat struct {
	Product  string  `json:"product"`
	AvgPrice float64 `json:"avgPrice"`
	Samples  int     `json:"samples"`
}

// RestockEntry suggests a trending product the seller does not stock yet.
// SuggestedPrice is nil when no market average exists for the product.
type RestockEntry struct {
	Product        string   `json:"product"`
	TrendingScore  int      `json:"trendingScore"`
	SuggestedPrice *float64 `json:"suggestedPrice"`
}

// PriceSuggestion compares a seller's own price against the market average.
type PriceSuggestion struct {
	Product     string  `json:"product"`
	SellerPrice float64 `json:"sellerPrice"`
	MarketAvg   float64 `json:"marketAvg"`
	Diff        float64 `json:"diff"`
	Pct         float64 `json:"pct"`
}

// NearbyShop is the trimmed-down record returned by the distance ranking of
// the customer assistant.
type NearbyShop struct {
	Name       string   `json:"name"`
	DistanceKM float64  `json:"distance_km"`
	Rating     *float64 `json:"rating"`
	Source     string   `json:"source"`
}

// CustomerInsights is the customer assistant response.
type CustomerInsights struct {
	NearbyShops      []NearbyShop    `json:"nearby_shops"`
	TrendingProducts []TrendingEntry `json:"trending_products"`
}

// DemandInsights summarizes market demand for the seller assistant.
type DemandInsights struct {
	TopTrending        []TrendingEntry `json:"top_trending"`
	MarketPriceSamples []PriceStat     `json:"market_price_samples"`
}

// SellerInsights is the seller assistant response.
type SellerInsights struct {
	DemandInsights         DemandInsights    `json:"demand_insights"`
	RestockRecommendations []RestockEntry    `json:"restock_recommendations"`
	PriceSuggestions       []PriceSuggestion `json:"price_suggestions"`
}
