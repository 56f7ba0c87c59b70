package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

type ProductType string

const (
	ProductTypeWant ProductType = "want"
	ProductTypeHave ProductType = "have"
)

// Product is a tagged union discriminated by Type. Want-only fields
// (CurrentPrice, TargetPrice) and have-only fields (PriceBought,
// PurchaseLocation, WarrantyUntil, ReceiptID, CurrentlySelling, SellingAt)
// must only be set for the matching variant; the discriminator never changes
// after creation.
type Product struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Type          ProductType        `bson:"type" json:"type"`
	OwnerID       string             `bson:"owner_id" json:"owner_id"`
	Name          string             `bson:"name" json:"name"`
	Brand         string             `bson:"brand" json:"brand"`
	Website       string             `bson:"website" json:"website"`
	OriginalPrice float64            `bson:"original_price" json:"original_price"`
	Date          string             `bson:"date" json:"date"`
	Description   string             `bson:"description,omitempty" json:"description,omitempty"`
	Category      string             `bson:"category,omitempty" json:"category,omitempty"`
	Model         string             `bson:"model,omitempty" json:"model,omitempty"`
	SKU           string             `bson:"sku,omitempty" json:"sku,omitempty"`
	Color         string             `bson:"color,omitempty" json:"color,omitempty"`
	Size          string             `bson:"size,omitempty" json:"size,omitempty"`
	Condition     string             `bson:"condition,omitempty" json:"condition,omitempty"`
	Notes         string             `bson:"notes,omitempty" json:"notes,omitempty"`
	Images        []string           `bson:"images,omitempty" json:"images,omitempty"`
	Specs         map[string]string  `bson:"specs,omitempty" json:"specs,omitempty"`

	// want variant
	CurrentPrice float64 `bson:"current_price,omitempty" json:"current_price,omitempty"`
	TargetPrice  float64 `bson:"target_price,omitempty" json:"target_price,omitempty"`

	// have variant
	PriceBought      float64 `bson:"price_bought,omitempty" json:"price_bought,omitempty"`
	PurchaseLocation string  `bson:"purchase_location,omitempty" json:"purchase_location,omitempty"`
	WarrantyUntil    string  `bson:"warranty_until,omitempty" json:"warranty_until,omitempty"`
	ReceiptID        string  `bson:"receipt_id,omitempty" json:"receipt_id,omitempty"`
	CurrentlySelling bool    `bson:"currently_selling,omitempty" json:"currently_selling,omitempty"`
	SellingAt        string  `bson:"selling_at,omitempty" json:"selling_at,omitempty"`

	PriceHistory []PriceHistoryEntry `bson:"price_history,omitempty" json:"price_history,omitempty"`

	CreatedAt int64 `bson:"created_at" json:"created_at"`
	UpdatedAt int64 `bson:"updated_at" json:"updated_at"`
}

// PriceHistoryEntry is one observation in a product's append-only price log.
type PriceHistoryEntry struct {
	Price      float64 `bson:"price" json:"price"`
	ObservedAt int64   `bson:"observed_at" json:"observed_at"`
	Source     string  `bson:"source" json:"source"`
	Note       string  `bson:"note,omitempty" json:"note,omitempty"`
}
