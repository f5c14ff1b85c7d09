package models

// Shop record sources
const (
	SourceRegistered = "registered"
	SourceScraped    = "scraped"
)

// ProductEntry is a single product carried by a shop. Price is nil when the
// source had no parseable price; zero is a valid price and is preserved.
type ProductEntry struct {
	Name  string   `json:"name"`
	Price *float64 `json:"price"`
}

// RegistryShop is a seller-submitted shop as stored in the registered_shops
// table. Nullable columns are carried as pointers so SQL NULL never turns
// into a zero value.
type RegistryShop struct {
	ID        int64    `db:"id"`
	ShopName  string   `db:"shop_name"`
	ShopType  *string  `db:"shop_type"`
	Latitude  *float64 `db:"latitude"`
	Longitude *float64 `db:"longitude"`
	PhotoURL  *string  `db:"photo_url"`
	Address   *string  `db:"address"`
	Rating    *float64 `db:"rating"`
	Contact   *string  `db:"contact"`
	OpenTime  *string  `db:"open_time"`
	CloseTime *string  `db:"close_time"`
	Products  string   `db:"products"` // serialized JSON list, parsed defensively
	CreatedAt string   `db:"created_at"`
}

// ShopRecord is the canonical shop shape both sources normalize into.
// IDs are prefixed per source ("reg_", "scr_") so uniqueness holds across
// the merged set. DistanceKM is populated only when a query location was
// supplied.
type ShopRecord struct {
	ID         string         `json:"id"`
	Name       string         `json:"name"`
	Source     string         `json:"source"`
	Lat        *float64       `json:"lat"`
	Lng        *float64       `json:"lng"`
	Photo      *string        `json:"photo"`
	Address    *string        `json:"address"`
	Rating     *float64       `json:"rating"`
	Contact    *string        `json:"contact"`
	OpenTime   *string        `json:"open_time"`
	CloseTime  *string        `json:"close_time"`
	ShopType   *string        `json:"shop_type"`
	Products   []ProductEntry `json:"products"`
	DistanceKM *float64       `json:"distance_km"`
}

// ShopFilter represents the query parameters of the shop directory endpoint.
// Location is either a "lat,lng" pair or free text.
type ShopFilter struct {
	Location      string  `form:"location"`
	ShopType      string  `form:"shop_type"`
	MaxDistanceKM float64 `form:"maxDistanceKM"`
}

// AggregateResult is the shop directory response. MissingCoordsCount
// reflects the data quality of the raw scraped source and is independent of
// any filtering applied to Shops.
type AggregateResult struct {
	Shops              []ShopRecord `json:"shops"`
	MissingCoordsCount int          `json:"missingCoordsCount"`
}
