package validator

import (
	"fmt"

	"github.com/iwootapp/iwoot/internal/domain"
	"github.com/iwootapp/iwoot/internal/dto"
)

// ValidateProduct checks a full create payload. Every violated rule
// contributes one message; callers only persist when Valid is true.
func ValidateProduct(req dto.ProductRequest) Result {
	var errors []string

	switch domain.ProductType(req.Type) {
	case domain.ProductTypeWant:
		if req.CurrentPrice != nil && *req.CurrentPrice <= 0 {
			errors = append(errors, "current price must be greater than 0")
		}
		if req.TargetPrice != nil && *req.TargetPrice <= 0 {
			errors = append(errors, "target price must be greater than 0")
		}
		if req.PriceBought != nil {
			errors = append(errors, "price bought only applies to owned products")
		}
	case domain.ProductTypeHave:
		if req.PriceBought == nil {
			errors = append(errors, "price bought is required for owned products")
		} else if *req.PriceBought <= 0 {
			errors = append(errors, "price bought must be greater than 0")
		}
		if req.CurrentPrice != nil {
			errors = append(errors, "current price only applies to wanted products")
		}
		if req.TargetPrice != nil {
			errors = append(errors, "target price only applies to wanted products")
		}
	default:
		errors = append(errors, "type must be either want or have")
	}

	if req.Name == "" {
		errors = append(errors, "name is required")
	}
	if req.Brand == "" {
		errors = append(errors, "brand is required")
	}
	if !isValidURL(req.Website) {
		errors = append(errors, "website must be a valid URL")
	}
	if req.OriginalPrice <= 0 {
		errors = append(errors, "original price must be greater than 0")
	}
	if !isValidDate(req.Date) {
		errors = append(errors, "date must be a valid date in YYYY-MM-DD format")
	}
	if req.OwnerID == "" {
		errors = append(errors, "owner id is required")
	}
	if req.WarrantyUntil != "" && !isValidDate(req.WarrantyUntil) {
		errors = append(errors, "warranty until must be a valid date in YYYY-MM-DD format")
	}
	for i, img := range req.Images {
		if !isValidURL(img) {
			errors = append(errors, fmt.Sprintf("images[%d] must be a valid URL", i))
		}
	}

	return newResult(errors)
}

// ValidateProductUpdate applies the create rules to a partial payload: a
// field that is absent is never an error, a field that is present but
// empty or invalid is.
func ValidateProductUpdate(req dto.ProductUpdateRequest) Result {
	var errors []string

	if req.Name != nil && *req.Name == "" {
		errors = append(errors, "name is required")
	}
	if req.Brand != nil && *req.Brand == "" {
		errors = append(errors, "brand is required")
	}
	if req.Website != nil && !isValidURL(*req.Website) {
		errors = append(errors, "website must be a valid URL")
	}
	if req.OriginalPrice != nil && *req.OriginalPrice <= 0 {
		errors = append(errors, "original price must be greater than 0")
	}
	if req.Date != nil && !isValidDate(*req.Date) {
		errors = append(errors, "date must be a valid date in YYYY-MM-DD format")
	}
	if req.CurrentPrice != nil && *req.CurrentPrice <= 0 {
		errors = append(errors, "current price must be greater than 0")
	}
	if req.TargetPrice != nil && *req.TargetPrice <= 0 {
		errors = append(errors, "target price must be greater than 0")
	}
	if req.PriceBought != nil && *req.PriceBought <= 0 {
		errors = append(errors, "price bought must be greater than 0")
	}
	if req.WarrantyUntil != nil && *req.WarrantyUntil != "" && !isValidDate(*req.WarrantyUntil) {
		errors = append(errors, "warranty until must be a valid date in YYYY-MM-DD format")
	}
	if req.Images != nil {
		for i, img := range *req.Images {
			if !isValidURL(img) {
				errors = append(errors, fmt.Sprintf("images[%d] must be a valid URL", i))
			}
		}
	}

	return newResult(errors)
}
