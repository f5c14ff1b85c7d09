package service

import (
	"testing"

	"github.com/shoplocal/backend-go/internal/models"
	"github.com/shoplocal/backend-go/internal/scrape"
)

func f64(v float64) *float64 { return &v }

func str(s string) *string { return &s }

func TestNormalizeRegistered(t *testing.T) {
	row := models.RegistryShop{
		ID:       7,
		ShopName: "Sharma General Store",
		ShopType: str("grocery"),
		Latitude: f64(26.45),
		Rating:   f64(0),
		Products: `[{"name":"Rice","price":50}]`,
	}

	shop := NormalizeRegistered(row)
	if shop.ID != "reg_7" {
		t.Errorf("ID: got %q, want reg_7", shop.ID)
	}
	if shop.Source != models.SourceRegistered {
		t.Errorf("Source: got %q", shop.Source)
	}
	if shop.Lng != nil {
		t.Errorf("Lng: got %v, want nil", *shop.Lng)
	}
	if shop.Rating == nil || *shop.Rating != 0 {
		t.Errorf("Rating: zero must survive as zero, got %v", shop.Rating)
	}
	if len(shop.Products) != 1 || shop.Products[0].Name != "Rice" {
		t.Errorf("Products: got %v", shop.Products)
	}
}

func TestNormalizeRegisteredDefaults(t *testing.T) {
	shop := NormalizeRegistered(models.RegistryShop{ID: 1})
	if shop.Name != "Unnamed" {
		t.Errorf("Name: got %q, want Unnamed", shop.Name)
	}
	if len(shop.Products) != 0 {
		t.Errorf("Products: got %v, want empty", shop.Products)
	}
}

func TestNormalizeRegisteredMalformedProducts(t *testing.T) {
	shop := NormalizeRegistered(models.RegistryShop{ID: 2, ShopName: "X", Products: "{not json"})
	if shop.Products == nil || len(shop.Products) != 0 {
		t.Errorf("malformed products must yield empty list, got %v", shop.Products)
	}
}

func TestNormalizeScraped(t *testing.T) {
	row := scrape.Row{
		"Shop_Name": "Gupta Kirana",
		"Image URL": "http://example.com/p.jpg",
		"Latitude":  "26.46",
		"Longitude": "80.34",
		"Phone":     "12345",
		"Opens":     "9am",
		"Closes":    "9pm",
		"Status":    "grocery",
		"Product_1": "Rice",
		"Price_1":   "50",
		"Product_2": "Tea",
		"Price_2":   "not a number",
	}

	shop := NormalizeScraped(row, 3)
	if shop.ID != "scr_3" {
		t.Errorf("ID: got %q, want scr_3", shop.ID)
	}
	if shop.Name != "Gupta Kirana" {
		t.Errorf("Name: got %q", shop.Name)
	}
	if shop.Source != models.SourceScraped {
		t.Errorf("Source: got %q", shop.Source)
	}
	if shop.Photo == nil || *shop.Photo != "http://example.com/p.jpg" {
		t.Errorf("Photo alias not resolved: got %v", shop.Photo)
	}
	if shop.Lat == nil || *shop.Lat != 26.46 {
		t.Errorf("Lat: got %v", shop.Lat)
	}
	if shop.Contact == nil || *shop.Contact != "12345" {
		t.Errorf("Contact: got %v", shop.Contact)
	}
	if shop.ShopType == nil || *shop.ShopType != "grocery" {
		t.Errorf("ShopType: got %v", shop.ShopType)
	}
	if len(shop.Products) != 2 {
		t.Fatalf("Products: got %d, want 2", len(shop.Products))
	}
	if shop.Products[0].Price == nil || *shop.Products[0].Price != 50 {
		t.Errorf("Price_1: got %v", shop.Products[0].Price)
	}
	if shop.Products[1].Price != nil {
		t.Errorf("unparseable Price_2 must be nil, got %v", *shop.Products[1].Price)
	}
}

func TestNormalizeScrapedNameAliases(t *testing.T) {
	tests := []struct {
		row  scrape.Row
		want string
	}{
		{scrape.Row{"storename": "Store A"}, "Store A"},
		{scrape.Row{"name": "Store B"}, "Store B"},
		{scrape.Row{"SHOP NAME": "Store C"}, "Store C"},
		{scrape.Row{}, "Unnamed"},
	}
	for _, tt := range tests {
		if got := NormalizeScraped(tt.row, 0).Name; got != tt.want {
			t.Errorf("row %v: got %q, want %q", tt.row, got, tt.want)
		}
	}
}

func TestNormalizeScrapedSkipsEmptyProductNames(t *testing.T) {
	shop := NormalizeScraped(scrape.Row{"Product_1": "  ", "Price_1": "10", "Product_2": "Tea"}, 0)
	if len(shop.Products) != 1 || shop.Products[0].Name != "Tea" {
		t.Errorf("Products: got %v, want only Tea", shop.Products)
	}
}

func TestCanonicalizeKeys(t *testing.T) {
	fields := canonicalizeKeys(scrape.Row{"Shop_Name": "a", "image url": "b", "LATITUDE": "c"})
	for _, key := range []string{"shopname", "imageurl", "latitude"} {
		if _, ok := fields[key]; !ok {
			t.Errorf("missing canonical key %q in %v", key, fields)
		}
	}
}

func TestParseFloat(t *testing.T) {
	if v := parseFloat(" 42.5 "); v == nil || *v != 42.5 {
		t.Errorf("parseFloat(42.5): got %v", v)
	}
	if v := parseFloat("0"); v == nil || *v != 0 {
		t.Errorf("parseFloat(0): zero must parse, got %v", v)
	}
	if v := parseFloat(""); v != nil {
		t.Errorf("parseFloat(empty): got %v, want nil", *v)
	}
	if v := parseFloat("abc"); v != nil {
		t.Errorf("parseFloat(abc): got %v, want nil", *v)
	}
}
