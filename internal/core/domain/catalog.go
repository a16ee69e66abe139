package domain

import "time"

// Product is one entry in the products.json collection. JSON field names are
// camelCase to stay byte-compatible with the documents the admin UI and the
// MySQL snapshot already produce.
type Product struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Price     float64   `json:"price"`
	Category  string    `json:"category,omitempty"`
	Stock     int       `json:"stock"`
	Barcode   string    `json:"barcode,omitempty"`
	HSNCode   string    `json:"hsnCode,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Store is one entry in stores.json. Ids are "STR-<epoch millis>"; legacy
// "store_<n>" ids may still arrive from old clients and are translated by
// the storeid package before lookup.
type Store struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	GSTIN     string    `json:"gstin,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Settings is the single object document in settings.json. It is
// intentionally schemaless: the admin UI owns the shape and the server
// contract is "persist what was posted, echo it back".
type Settings map[string]any
