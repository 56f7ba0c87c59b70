package repository

import (
	"context"

	"github.com/iwootapp/iwoot/internal/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Every operation is owner scoped: the store's access contract rejects reads
// and writes against records the caller does not own, and deliberately does
// not distinguish "not found" from "not mine".
type ProductRepository interface {
	AddProduct(ctx context.Context, data domain.Product) (id primitive.ObjectID, err error)
	GetProducts(ctx context.Context, ownerID string, productType domain.ProductType) (data []domain.Product, err error)
	GetProductByID(ctx context.Context, ownerID string, id string) (product domain.Product, err error)
	UpdateProduct(ctx context.Context, ownerID string, id string, fields map[string]interface{}) (err error)
	DeleteProduct(ctx context.Context, ownerID string, id string) (err error)
	AppendPriceHistory(ctx context.Context, ownerID string, id string, entry domain.PriceHistoryEntry, setCurrentPrice bool) (err error)
}

type ReceiptRepository interface {
	AddReceipt(ctx context.Context, data domain.Receipt) (id primitive.ObjectID, err error)
	GetReceipts(ctx context.Context, ownerID string) (data []domain.Receipt, err error)
	GetReceiptByID(ctx context.Context, ownerID string, id string) (receipt domain.Receipt, err error)
	GetReceiptsByProductID(ctx context.Context, ownerID string, productID string) (data []domain.Receipt, err error)
	UpdateReceipt(ctx context.Context, ownerID string, id string, fields map[string]interface{}) (err error)
	DeleteReceipt(ctx context.Context, ownerID string, id string) (err error)
}
