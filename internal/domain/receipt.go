package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

type Receipt struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	OwnerID       string             `bson:"owner_id" json:"owner_id"`
	ReceiptNumber string             `bson:"receipt_number" json:"receipt_number"`
	StoreName     string             `bson:"store_name" json:"store_name"`
	ReceiptDate   string             `bson:"receipt_date" json:"receipt_date"`
	Items         []ReceiptItem      `bson:"items" json:"items"`
	TotalAmount   float64            `bson:"total_amount" json:"total_amount"`
	ImageURL      string             `bson:"image_url,omitempty" json:"image_url,omitempty"`
	Notes         string             `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt     int64              `bson:"created_at" json:"created_at"`
	UpdatedAt     int64              `bson:"updated_at" json:"updated_at"`
}

// ReceiptItem references a Product by id. The reference is weak: the product
// may have been deleted since, and readers treat a lookup miss as "unlinked".
type ReceiptItem struct {
	ID              string  `bson:"id" json:"id"`
	ProductID       string  `bson:"product_id" json:"product_id"`
	Quantity        int64   `bson:"quantity" json:"quantity"`
	DiscountedPrice float64 `bson:"discounted_price" json:"discounted_price"`
}
