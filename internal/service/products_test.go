package service

import (
	"testing"
)

func TestDecodeProductsFieldStringForm(t *testing.T) {
	entries := DecodeProductsField("Rice:50, Tea:20, Sugar").Entries()
	if len(entries) != 3 {
		t.Fatalf("entries: got %d, want 3", len(entries))
	}
	if entries[0].Name != "Rice" || entries[0].Price == nil || *entries[0].Price != 50 {
		t.Errorf("Rice: got %+v", entries[0])
	}
	if entries[1].Name != "Tea" || *entries[1].Price != 20 {
		t.Errorf("Tea: got %+v", entries[1])
	}
	if entries[2].Name != "Sugar" || entries[2].Price != nil {
		t.Errorf("Sugar without price: got %+v", entries[2])
	}
}

func TestDecodeProductsFieldCurrencyNoise(t *testing.T) {
	entries := DecodeProductsField("Rice:₹50").Entries()
	if len(entries) != 1 || entries[0].Price == nil || *entries[0].Price != 50 {
		t.Errorf("currency noise should be stripped: got %+v", entries)
	}
}

func TestDecodeProductsFieldListForm(t *testing.T) {
	raw := `[{"name":"Rice","price":50},{"product":"Tea","price_rupee":"20"},{"name":"Sugar"}]`
	field := DecodeProductsField(raw)
	if _, ok := field.(ListForm); !ok {
		t.Fatalf("expected ListForm, got %T", field)
	}

	entries := field.Entries()
	if len(entries) != 3 {
		t.Fatalf("entries: got %d, want 3", len(entries))
	}
	if entries[0].Name != "Rice" || *entries[0].Price != 50 {
		t.Errorf("Rice: got %+v", entries[0])
	}
	if entries[1].Name != "Tea" || entries[1].Price == nil || *entries[1].Price != 20 {
		t.Errorf("Tea via aliases: got %+v", entries[1])
	}
	if entries[2].Price != nil {
		t.Errorf("Sugar without price: got %+v", entries[2])
	}
}

func TestDecodeProductsFieldMalformedListFallsBack(t *testing.T) {
	field := DecodeProductsField("[broken")
	if _, ok := field.(StringForm); !ok {
		t.Errorf("malformed JSON array should fall back to string form, got %T", field)
	}
}

func TestParseStoredProducts(t *testing.T) {
	entries := ParseStoredProducts(`[{"name":"Rice","price":"55"}]`)
	if len(entries) != 1 || entries[0].Price == nil || *entries[0].Price != 55 {
		t.Errorf("stored products: got %+v", entries)
	}

	if got := ParseStoredProducts("garbage"); len(got) != 0 {
		t.Errorf("malformed stored products: got %v, want empty", got)
	}
	if got := ParseStoredProducts(""); got == nil || len(got) != 0 {
		t.Errorf("empty stored products: got %v, want empty list", got)
	}
}

func TestParseSubmittedProductsArray(t *testing.T) {
	entries := ParseSubmittedProducts([]byte(`[{"name":"Rice","price":50}]`))
	if len(entries) != 1 || entries[0].Name != "Rice" {
		t.Errorf("array form: got %+v", entries)
	}
}

func TestParseSubmittedProductsLines(t *testing.T) {
	entries := ParseSubmittedProducts([]byte(`"Rice - 50\nTea - ₹20\nNoPriceLine"`))
	if len(entries) != 3 {
		t.Fatalf("entries: got %d, want 3", len(entries))
	}
	if entries[0].Name != "Rice" || *entries[0].Price != 50 {
		t.Errorf("Rice: got %+v", entries[0])
	}
	if entries[1].Price == nil || *entries[1].Price != 20 {
		t.Errorf("Tea: got %+v", entries[1])
	}
	if entries[2].Name != "NoPriceLine" || entries[2].Price != nil {
		t.Errorf("line without dash: got %+v", entries[2])
	}
}

func TestParseSubmittedProductsEmpty(t *testing.T) {
	if got := ParseSubmittedProducts(nil); got == nil || len(got) != 0 {
		t.Errorf("nil payload: got %v, want empty list", got)
	}
	if got := ParseSubmittedProducts([]byte("null")); len(got) != 0 {
		t.Errorf("null payload: got %v, want empty list", got)
	}
}
