package service

import (
	"context"
	"io"

	"github.com/iwootapp/iwoot/internal/domain"
	"github.com/iwootapp/iwoot/internal/dto"
)

type ProductService interface {
	GetProducts(ctx context.Context, ownerID string, productType string) (data []domain.Product, err error)
	GetProduct(ctx context.Context, ownerID string, id string) (product *domain.Product, err error)
	AddProduct(ctx context.Context, ownerID string, req dto.ProductRequest) (id string, err error)
	UpdateProduct(ctx context.Context, ownerID string, id string, req dto.ProductUpdateRequest) (err error)
	DeleteProduct(ctx context.Context, ownerID string, id string) (err error)
	AddPriceObservation(ctx context.Context, ownerID string, id string, req dto.PriceObservationRequest) (err error)
}

type ReceiptService interface {
	GetReceipts(ctx context.Context, ownerID string) (data []domain.Receipt, err error)
	GetReceipt(ctx context.Context, ownerID string, id string) (receipt *domain.Receipt, err error)
	GetReceiptsByProduct(ctx context.Context, ownerID string, productID string) (data []domain.Receipt, err error)
	AddReceipt(ctx context.Context, ownerID string, req dto.ReceiptRequest) (id string, err error)
	UpdateReceipt(ctx context.Context, ownerID string, id string, req dto.ReceiptUpdateRequest) (err error)
	DeleteReceipt(ctx context.Context, ownerID string, id string) (err error)
}

type LookupService interface {
	Lookup(ctx context.Context, query string) (result *dto.LookupResult, err error)
	LookupByURL(rawURL string) (result *dto.LookupResult, err error)
}

type UploadService interface {
	Upload(ctx context.Context, ownerID string, filename string, contentType string, size int64, source io.Reader) (ref string, err error)
	Download(ctx context.Context, ownerID string, ref string, target io.Writer) (contentType string, err error)
	Delete(ctx context.Context, ownerID string, ref string) (err error)
}
