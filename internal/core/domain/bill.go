package domain

import "time"

// BillItem is a line item nested under a bill. In MySQL these live in the
// BillItems table keyed by billId; the snapshot tool joins them back in.
type BillItem struct {
	ID        string  `json:"id,omitempty"`
	BillID    string  `json:"billId,omitempty"`
	ProductID string  `json:"productId,omitempty"`
	Name      string  `json:"name"`
	Quantity  float64 `json:"quantity"`
	Price     float64 `json:"price"`
	Total     float64 `json:"total"`
}

// Bill is one entry in bills.json, the denormalised receipt record written
// at point of sale.
type Bill struct {
	ID                 string     `json:"id"`
	StoreID            string     `json:"storeId,omitempty"`
	StoreName          string     `json:"storeName,omitempty"`
	CustomerName       string     `json:"customerName,omitempty"`
	CustomerPhone      string     `json:"customerPhone,omitempty"`
	CustomerEmail      string     `json:"customerEmail,omitempty"`
	Subtotal           float64    `json:"subtotal"`
	TaxPercentage      float64    `json:"taxPercentage,omitempty"`
	TaxAmount          float64    `json:"taxAmount,omitempty"`
	DiscountPercentage float64    `json:"discountPercentage,omitempty"`
	DiscountAmount     float64    `json:"discountAmount,omitempty"`
	Total              float64    `json:"total"`
	PaymentMethod      string     `json:"paymentMethod,omitempty"`
	Timestamp          string     `json:"timestamp,omitempty"`
	Notes              string     `json:"notes,omitempty"`
	CreatedBy          string     `json:"createdBy,omitempty"`
	Items              []BillItem `json:"items,omitempty"`
	CreatedAt          time.Time  `json:"createdAt,omitzero"`
}

// Notification is one entry in notifications.json, surfaced as the bell
// feed in the admin UI.
type Notification struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	UserID    string    `json:"userId,omitempty"`
	UserName  string    `json:"userName,omitempty"`
	UserEmail string    `json:"userEmail,omitempty"`
	IsRead    bool      `json:"isRead"`
	CreatedAt time.Time `json:"createdAt"`
	SyncLogID int64     `json:"syncLogId,omitempty"`
}
