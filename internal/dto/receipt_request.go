package dto

type ReceiptRequest struct {
	OwnerID       string               `json:"-"`
	ReceiptNumber string               `json:"receipt_number"`
	StoreName     string               `json:"store_name"`
	ReceiptDate   string               `json:"receipt_date"`
	Items         []ReceiptItemRequest `json:"items"`
	TotalAmount   float64              `json:"total_amount"`
	ImageURL      string               `json:"image_url"`
	Notes         string               `json:"notes"`
}

type ReceiptItemRequest struct {
	ProductID       string  `json:"product_id"`
	Quantity        int64   `json:"quantity"`
	DiscountedPrice float64 `json:"discounted_price"`
}

type ReceiptUpdateRequest struct {
	ReceiptNumber *string               `json:"receipt_number"`
	StoreName     *string               `json:"store_name"`
	ReceiptDate   *string               `json:"receipt_date"`
	Items         *[]ReceiptItemRequest `json:"items"`
	TotalAmount   *float64              `json:"total_amount"`
	ImageURL      *string               `json:"image_url"`
	Notes         *string               `json:"notes"`
}
