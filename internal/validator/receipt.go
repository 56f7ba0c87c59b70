package validator

import (
	"fmt"

	"github.com/iwootapp/iwoot/internal/dto"
)

// ValidateReceipt checks a full receipt create payload. Unit prices may be
// zero (a free or fully discounted item is legal), unlike product prices.
func ValidateReceipt(req dto.ReceiptRequest) Result {
	var errors []string

	if req.ReceiptNumber == "" {
		errors = append(errors, "receipt number is required")
	}
	if req.StoreName == "" {
		errors = append(errors, "store name is required")
	}
	if !isValidDate(req.ReceiptDate) {
		errors = append(errors, "receipt date must be a valid date in YYYY-MM-DD format")
	}
	if len(req.Items) == 0 {
		errors = append(errors, "at least one item is required")
	}
	errors = append(errors, validateReceiptItems(req.Items)...)
	if req.TotalAmount < 0 {
		errors = append(errors, "total amount must not be negative")
	}
	if req.OwnerID == "" {
		errors = append(errors, "owner id is required")
	}
	if req.ImageURL != "" && !isValidURL(req.ImageURL) {
		errors = append(errors, "image URL must be a valid URL")
	}

	return newResult(errors)
}

// ValidateReceiptUpdate applies the create rules to the fields present in a
// partial payload.
func ValidateReceiptUpdate(req dto.ReceiptUpdateRequest) Result {
	var errors []string

	if req.ReceiptNumber != nil && *req.ReceiptNumber == "" {
		errors = append(errors, "receipt number is required")
	}
	if req.StoreName != nil && *req.StoreName == "" {
		errors = append(errors, "store name is required")
	}
	if req.ReceiptDate != nil && !isValidDate(*req.ReceiptDate) {
		errors = append(errors, "receipt date must be a valid date in YYYY-MM-DD format")
	}
	if req.Items != nil {
		if len(*req.Items) == 0 {
			errors = append(errors, "at least one item is required")
		}
		errors = append(errors, validateReceiptItems(*req.Items)...)
	}
	if req.TotalAmount != nil && *req.TotalAmount < 0 {
		errors = append(errors, "total amount must not be negative")
	}
	if req.ImageURL != nil && *req.ImageURL != "" && !isValidURL(*req.ImageURL) {
		errors = append(errors, "image URL must be a valid URL")
	}

	return newResult(errors)
}

func validateReceiptItems(items []dto.ReceiptItemRequest) []string {
	var errors []string

	for i, item := range items {
		if item.ProductID == "" {
			errors = append(errors, fmt.Sprintf("items[%d]: product id is required", i))
		}
		if item.Quantity <= 0 {
			errors = append(errors, fmt.Sprintf("items[%d]: quantity must be greater than 0", i))
		}
		if item.DiscountedPrice < 0 {
			errors = append(errors, fmt.Sprintf("items[%d]: discounted price must not be negative", i))
		}
	}

	return errors
}
