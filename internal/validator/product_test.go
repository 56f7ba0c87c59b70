package validator

import (
	"testing"

	"github.com/iwootapp/iwoot/internal/dto"
	"github.com/stretchr/testify/assert"
)

func floatPtr(v float64) *float64 { return &v }

func stringPtr(v string) *string { return &v }

func validWantProduct() dto.ProductRequest {
	return dto.ProductRequest{
		Type:          "want",
		OwnerID:       "user-1",
		Name:          "iPad Pro",
		Brand:         "Apple",
		Website:       "https://www.apple.com/ipad-pro",
		OriginalPrice: 999.99,
		Date:          "2025-03-14",
	}
}

func validHaveProduct() dto.ProductRequest {
	req := validWantProduct()
	req.Type = "have"
	req.PriceBought = floatPtr(899.99)
	return req
}

func TestValidateProduct(t *testing.T) {
	type TestCase struct {
		Name           string
		Request        func() dto.ProductRequest
		ExpectedValid  bool
		ExpectedErrors []string
	}

	testCases := []TestCase{
		{
			Name:          "valid want product",
			Request:       validWantProduct,
			ExpectedValid: true,
		},
		{
			Name:          "valid have product",
			Request:       validHaveProduct,
			ExpectedValid: true,
		},
		{
			Name: "original price of zero",
			Request: func() dto.ProductRequest {
				req := validWantProduct()
				req.OriginalPrice = 0
				return req
			},
			ExpectedErrors: []string{"original price must be greater than 0"},
		},
		{
			Name: "negative original price",
			Request: func() dto.ProductRequest {
				req := validWantProduct()
				req.OriginalPrice = -10
				return req
			},
			ExpectedErrors: []string{"original price must be greater than 0"},
		},
		{
			Name: "accumulates every violation",
			Request: func() dto.ProductRequest {
				req := validWantProduct()
				req.Name = ""
				req.Website = "not-a-url"
				req.OriginalPrice = 0
				return req
			},
			ExpectedErrors: []string{
				"name is required",
				"website must be a valid URL",
				"original price must be greater than 0",
			},
		},
		{
			Name: "have product without price bought",
			Request: func() dto.ProductRequest {
				req := validHaveProduct()
				req.PriceBought = nil
				return req
			},
			ExpectedErrors: []string{"price bought is required for owned products"},
		},
		{
			Name: "have product with zero price bought",
			Request: func() dto.ProductRequest {
				req := validHaveProduct()
				req.PriceBought = floatPtr(0)
				return req
			},
			ExpectedErrors: []string{"price bought must be greater than 0"},
		},
		{
			Name: "want product with price bought",
			Request: func() dto.ProductRequest {
				req := validWantProduct()
				req.PriceBought = floatPtr(899.99)
				return req
			},
			ExpectedErrors: []string{"price bought only applies to owned products"},
		},
		{
			Name: "have product with target price",
			Request: func() dto.ProductRequest {
				req := validHaveProduct()
				req.TargetPrice = floatPtr(500)
				return req
			},
			ExpectedErrors: []string{"target price only applies to wanted products"},
		},
		{
			Name: "unknown type",
			Request: func() dto.ProductRequest {
				req := validWantProduct()
				req.Type = "wish"
				return req
			},
			ExpectedErrors: []string{"type must be either want or have"},
		},
		{
			Name: "zero target price",
			Request: func() dto.ProductRequest {
				req := validWantProduct()
				req.TargetPrice = floatPtr(0)
				return req
			},
			ExpectedErrors: []string{"target price must be greater than 0"},
		},
		{
			Name: "malformed date",
			Request: func() dto.ProductRequest {
				req := validWantProduct()
				req.Date = "14/03/2025"
				return req
			},
			ExpectedErrors: []string{"date must be a valid date in YYYY-MM-DD format"},
		},
		{
			Name: "missing owner id",
			Request: func() dto.ProductRequest {
				req := validWantProduct()
				req.OwnerID = ""
				return req
			},
			ExpectedErrors: []string{"owner id is required"},
		},
		{
			Name: "invalid image URL",
			Request: func() dto.ProductRequest {
				req := validWantProduct()
				req.Images = []string{"https://cdn.example.com/a.jpg", "nope"}
				return req
			},
			ExpectedErrors: []string{"images[1] must be a valid URL"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			result := ValidateProduct(tc.Request())

			assert.Equal(t, tc.ExpectedValid, result.Valid)
			if tc.ExpectedValid {
				assert.Empty(t, result.Errors)
			}
			for _, expected := range tc.ExpectedErrors {
				assert.Contains(t, result.Errors, expected)
			}
		})
	}
}

func TestValidateProductIdempotent(t *testing.T) {
	req := validWantProduct()
	req.Name = ""
	req.OriginalPrice = -1

	first := ValidateProduct(req)
	second := ValidateProduct(req)

	assert.Equal(t, first, second)
}

func TestValidateProductUpdate(t *testing.T) {
	type TestCase struct {
		Name           string
		Request        dto.ProductUpdateRequest
		ExpectedValid  bool
		ExpectedErrors []string
	}

	testCases := []TestCase{
		{
			Name:          "empty update",
			Request:       dto.ProductUpdateRequest{},
			ExpectedValid: true,
		},
		{
			Name:          "notes only",
			Request:       dto.ProductUpdateRequest{Notes: stringPtr("ok")},
			ExpectedValid: true,
		},
		{
			Name:           "malformed website",
			Request:        dto.ProductUpdateRequest{Website: stringPtr("not-a-url")},
			ExpectedErrors: []string{"website must be a valid URL"},
		},
		{
			Name:           "name set to empty",
			Request:        dto.ProductUpdateRequest{Name: stringPtr("")},
			ExpectedErrors: []string{"name is required"},
		},
		{
			Name:           "zero price on update",
			Request:        dto.ProductUpdateRequest{OriginalPrice: floatPtr(0)},
			ExpectedErrors: []string{"original price must be greater than 0"},
		},
		{
			Name:           "negative current price on update",
			Request:        dto.ProductUpdateRequest{CurrentPrice: floatPtr(-5)},
			ExpectedErrors: []string{"current price must be greater than 0"},
		},
		{
			Name:          "valid partial update",
			Request:       dto.ProductUpdateRequest{Website: stringPtr("https://example.com/x"), Date: stringPtr("2025-01-02")},
			ExpectedValid: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			result := ValidateProductUpdate(tc.Request)

			assert.Equal(t, tc.ExpectedValid, result.Valid)
			for _, expected := range tc.ExpectedErrors {
				assert.Contains(t, result.Errors, expected)
			}
		})
	}
}
