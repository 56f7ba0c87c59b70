package dto

// ProductRequest is the full create payload for a product. OwnerID is never
// bound from the request body; the controller stamps it from the
// authenticated identity before the service sees the payload.
type ProductRequest struct {
	Type          string            `json:"type"`
	OwnerID       string            `json:"-"`
	Name          string            `json:"name"`
	Brand         string            `json:"brand"`
	Website       string            `json:"website"`
	OriginalPrice float64           `json:"original_price"`
	Date          string            `json:"date"`
	Description   string            `json:"description"`
	Category      string            `json:"category"`
	Model         string            `json:"model"`
	SKU           string            `json:"sku"`
	Color         string            `json:"color"`
	Size          string            `json:"size"`
	Condition     string            `json:"condition"`
	Notes         string            `json:"notes"`
	Images        []string          `json:"images"`
	Specs         map[string]string `json:"specs"`

	CurrentPrice *float64 `json:"current_price"`
	TargetPrice  *float64 `json:"target_price"`

	PriceBought      *float64 `json:"price_bought"`
	PurchaseLocation string   `json:"purchase_location"`
	WarrantyUntil    string   `json:"warranty_until"`
	ReceiptID        string   `json:"receipt_id"`
	CurrentlySelling bool     `json:"currently_selling"`
	SellingAt        string   `json:"selling_at"`
}

// ProductUpdateRequest is a partial update payload: nil means "leave the
// stored value alone", a non-nil pointer means "set this field". Type, owner
// and timestamps are not part of the update surface.
type ProductUpdateRequest struct {
	Name          *string            `json:"name"`
	Brand         *string            `json:"brand"`
	Website       *string            `json:"website"`
	OriginalPrice *float64           `json:"original_price"`
	Date          *string            `json:"date"`
	Description   *string            `json:"description"`
	Category      *string            `json:"category"`
	Model         *string            `json:"model"`
	SKU           *string            `json:"sku"`
	Color         *string            `json:"color"`
	Size          *string            `json:"size"`
	Condition     *string            `json:"condition"`
	Notes         *string            `json:"notes"`
	Images        *[]string          `json:"images"`
	Specs         *map[string]string `json:"specs"`

	CurrentPrice *float64 `json:"current_price"`
	TargetPrice  *float64 `json:"target_price"`

	PriceBought      *float64 `json:"price_bought"`
	PurchaseLocation *string  `json:"purchase_location"`
	WarrantyUntil    *string  `json:"warranty_until"`
	ReceiptID        *string  `json:"receipt_id"`
	CurrentlySelling *bool    `json:"currently_selling"`
	SellingAt        *string  `json:"selling_at"`
}

// PriceObservationRequest records one observed price for a product.
type PriceObservationRequest struct {
	Price  float64 `json:"price"`
	Source string  `json:"source"`
	Note   string  `json:"note"`
}
