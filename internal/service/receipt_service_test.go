package service

import (
	"context"
	"errors"
	"sort"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/iwootapp/iwoot/config"
	"github.com/iwootapp/iwoot/internal/domain"
	"github.com/iwootapp/iwoot/internal/dto"
	"github.com/iwootapp/iwoot/pkg/errs"
)

type fakeReceiptRepo struct {
	receipts map[string]domain.Receipt
	updates  []map[string]interface{}
	listErr  error
}

func newFakeReceiptRepo() *fakeReceiptRepo {
	return &fakeReceiptRepo{receipts: map[string]domain.Receipt{}}
}

func (r *fakeReceiptRepo) AddReceipt(ctx context.Context, data domain.Receipt) (primitive.ObjectID, error) {
	id := primitive.NewObjectID()
	data.ID = id
	r.receipts[id.Hex()] = data
	return id, nil
}

func (r *fakeReceiptRepo) GetReceipts(ctx context.Context, ownerID string) ([]domain.Receipt, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}

	var data []domain.Receipt
	for _, rec := range r.receipts {
		if rec.OwnerID == ownerID {
			data = append(data, rec)
		}
	}

	sort.Slice(data, func(i, j int) bool { return data[i].CreatedAt > data[j].CreatedAt })

	return data, nil
}

func (r *fakeReceiptRepo) GetReceiptByID(ctx context.Context, ownerID string, id string) (domain.Receipt, error) {
	rec, ok := r.receipts[id]
	if !ok || rec.OwnerID != ownerID {
		return domain.Receipt{}, errs.ErrNotFound
	}

	return rec, nil
}

func (r *fakeReceiptRepo) GetReceiptsByProductID(ctx context.Context, ownerID string, productID string) ([]domain.Receipt, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}

	var data []domain.Receipt
	for _, rec := range r.receipts {
		if rec.OwnerID != ownerID {
			continue
		}
		for _, item := range rec.Items {
			if item.ProductID == productID {
				data = append(data, rec)
				break
			}
		}
	}

	return data, nil
}

func (r *fakeReceiptRepo) UpdateReceipt(ctx context.Context, ownerID string, id string, fields map[string]interface{}) error {
	rec, ok := r.receipts[id]
	if !ok || rec.OwnerID != ownerID {
		return errs.ErrNotFound
	}

	r.updates = append(r.updates, fields)

	return nil
}

func (r *fakeReceiptRepo) DeleteReceipt(ctx context.Context, ownerID string, id string) error {
	rec, ok := r.receipts[id]
	if !ok || rec.OwnerID != ownerID {
		return errs.ErrNotFound
	}

	delete(r.receipts, id)

	return nil
}

type ReceiptServiceTestSuite struct {
	suite.Suite
	repo *fakeReceiptRepo
	svc  ReceiptService
}

func (s *ReceiptServiceTestSuite) SetupTest() {
	s.repo = newFakeReceiptRepo()
	s.svc = CreateReceiptService(s.repo, config.Config{}, nil)
}

func TestReceiptServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReceiptServiceTestSuite))
}

func receiptRequest(productIDs ...string) dto.ReceiptRequest {
	req := dto.ReceiptRequest{
		ReceiptNumber: "R-2025-017",
		StoreName:     "Currys",
		ReceiptDate:   "2025-02-01",
		TotalAmount:   899.99,
	}
	for _, pid := range productIDs {
		req.Items = append(req.Items, dto.ReceiptItemRequest{
			ProductID:       pid,
			Quantity:        1,
			DiscountedPrice: 899.99,
		})
	}

	return req
}

func (s *ReceiptServiceTestSuite) Test_AddReceipt() {
	id, err := s.svc.AddReceipt(context.Background(), "user-1", receiptRequest("p-1", "p-2"))

	s.Require().NoError(err)
	s.Require().NotEmpty(id)

	stored := s.repo.receipts[id]
	s.Equal("user-1", stored.OwnerID)
	s.Require().Len(stored.Items, 2)
	s.NotEmpty(stored.Items[0].ID)
	s.NotEqual(stored.Items[0].ID, stored.Items[1].ID)
	s.Equal(stored.CreatedAt, stored.UpdatedAt)
}

func (s *ReceiptServiceTestSuite) Test_AddReceipt_RejectsEmptyItems() {
	_, err := s.svc.AddReceipt(context.Background(), "user-1", receiptRequest())

	s.Require().Error(err)
	s.True(errors.Is(err, errs.ErrValidation))
	s.Contains(err.Error(), "at least one item is required")
	s.Empty(s.repo.receipts)
}

func (s *ReceiptServiceTestSuite) Test_AddReceipt_AcceptsFreeItem() {
	req := receiptRequest("p-1")
	req.Items[0].DiscountedPrice = 0

	_, err := s.svc.AddReceipt(context.Background(), "user-1", req)

	s.NoError(err)
}

func (s *ReceiptServiceTestSuite) Test_GetReceiptsByProduct() {
	_, err := s.svc.AddReceipt(context.Background(), "user-1", receiptRequest("p-1", "p-2"))
	s.Require().NoError(err)
	_, err = s.svc.AddReceipt(context.Background(), "user-1", receiptRequest("p-2", "p-3"))
	s.Require().NoError(err)
	_, err = s.svc.AddReceipt(context.Background(), "user-1", receiptRequest("p-4"))
	s.Require().NoError(err)
	_, err = s.svc.AddReceipt(context.Background(), "user-2", receiptRequest("p-2"))
	s.Require().NoError(err)

	data, err := s.svc.GetReceiptsByProduct(context.Background(), "user-1", "p-2")
	s.Require().NoError(err)
	s.Len(data, 2)

	data, err = s.svc.GetReceiptsByProduct(context.Background(), "user-1", "p-4")
	s.Require().NoError(err)
	s.Len(data, 1)

	data, err = s.svc.GetReceiptsByProduct(context.Background(), "user-1", "p-9")
	s.Require().NoError(err)
	s.Empty(data)
}

func (s *ReceiptServiceTestSuite) Test_GetReceiptsByProduct_DegradesBackendFailure() {
	s.repo.listErr = errors.New("backend unavailable")

	data, err := s.svc.GetReceiptsByProduct(context.Background(), "user-1", "p-1")

	s.NoError(err)
	s.NotNil(data)
	s.Empty(data)
}

func (s *ReceiptServiceTestSuite) Test_GetReceipts_FailClosed() {
	s.repo.listErr = errors.New("backend unavailable")
	svc := CreateReceiptService(s.repo, config.Config{ListFailClosed: true}, nil)

	_, err := svc.GetReceipts(context.Background(), "user-1")

	s.Error(err)
}

func (s *ReceiptServiceTestSuite) Test_UpdateReceipt() {
	id, err := s.svc.AddReceipt(context.Background(), "user-1", receiptRequest("p-1"))
	s.Require().NoError(err)

	err = s.svc.UpdateReceipt(context.Background(), "user-1", id, dto.ReceiptUpdateRequest{
		Notes: stringPtr("warranty kept in drawer"),
	})
	s.Require().NoError(err)

	s.Require().Len(s.repo.updates, 1)
	fields := s.repo.updates[0]
	s.Equal("warranty kept in drawer", fields["notes"])
	s.Contains(fields, "updated_at")
	s.NotContains(fields, "owner_id")
	s.NotContains(fields, "created_at")
}

func (s *ReceiptServiceTestSuite) Test_UpdateReceipt_RejectsMalformedImageURL() {
	id, err := s.svc.AddReceipt(context.Background(), "user-1", receiptRequest("p-1"))
	s.Require().NoError(err)

	err = s.svc.UpdateReceipt(context.Background(), "user-1", id, dto.ReceiptUpdateRequest{
		ImageURL: stringPtr("not-a-url"),
	})

	s.True(errors.Is(err, errs.ErrValidation))
	s.Empty(s.repo.updates)
}

func (s *ReceiptServiceTestSuite) Test_GetReceipt_AbsentIsNotAnError() {
	receipt, err := s.svc.GetReceipt(context.Background(), "user-1", primitive.NewObjectID().Hex())

	s.NoError(err)
	s.Nil(receipt)
}

func (s *ReceiptServiceTestSuite) Test_DeleteReceipt_NotFound() {
	err := s.svc.DeleteReceipt(context.Background(), "user-1", primitive.NewObjectID().Hex())

	s.True(errors.Is(err, errs.ErrNotFound))
}
