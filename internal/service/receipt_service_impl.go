package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog/log"

	"github.com/iwootapp/iwoot/config"
	"github.com/iwootapp/iwoot/internal/domain"
	"github.com/iwootapp/iwoot/internal/dto"
	"github.com/iwootapp/iwoot/internal/repository"
	"github.com/iwootapp/iwoot/internal/validator"
	"github.com/iwootapp/iwoot/pkg/errs"
	"github.com/segmentio/kafka-go"
)

type ReceiptServiceImpl struct {
	repo          repository.ReceiptRepository
	config        config.Config
	kafkaProducer *kafka.Conn
}

func CreateReceiptService(repo repository.ReceiptRepository, config config.Config, kafkaProducer *kafka.Conn) ReceiptService {
	return &ReceiptServiceImpl{repo: repo, config: config, kafkaProducer: kafkaProducer}
}

func (s *ReceiptServiceImpl) GetReceipts(ctx context.Context, ownerID string) (data []domain.Receipt, err error) {
	data, err = s.repo.GetReceipts(ctx, ownerID)
	if err != nil {
		if s.config.ListFailClosed {
			return nil, err
		}

		log.Ctx(ctx).Warn().Err(err).Str("component", "GetReceipts").Msg("degrading backend failure to empty list")
		return []domain.Receipt{}, nil
	}

	if data == nil {
		data = []domain.Receipt{}
	}

	return data, nil
}

func (s *ReceiptServiceImpl) GetReceipt(ctx context.Context, ownerID string, id string) (receipt *domain.Receipt, err error) {
	record, err := s.repo.GetReceiptByID(ctx, ownerID, id)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return nil, nil
		}

		return nil, err
	}

	return &record, nil
}

func (s *ReceiptServiceImpl) GetReceiptsByProduct(ctx context.Context, ownerID string, productID string) (data []domain.Receipt, err error) {
	data, err = s.repo.GetReceiptsByProductID(ctx, ownerID, productID)
	if err != nil {
		if s.config.ListFailClosed {
			return nil, err
		}

		log.Ctx(ctx).Warn().Err(err).Str("component", "GetReceiptsByProduct").Msg("degrading backend failure to empty list")
		return []domain.Receipt{}, nil
	}

	if data == nil {
		data = []domain.Receipt{}
	}

	return data, nil
}

func (s *ReceiptServiceImpl) AddReceipt(ctx context.Context, ownerID string, req dto.ReceiptRequest) (id string, err error) {
	req.OwnerID = ownerID

	result := validator.ValidateReceipt(req)
	if !result.Valid {
		return "", fmt.Errorf("%w: %s", errs.ErrValidation, strings.Join(result.Errors, "; "))
	}

	now := time.Now().Unix()
	receipt := domain.Receipt{
		OwnerID:       ownerID,
		ReceiptNumber: req.ReceiptNumber,
		StoreName:     req.StoreName,
		ReceiptDate:   req.ReceiptDate,
		Items:         buildReceiptItems(req.Items),
		TotalAmount:   req.TotalAmount,
		ImageURL:      req.ImageURL,
		Notes:         req.Notes,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	receiptID, err := s.repo.AddReceipt(ctx, receipt)
	if err != nil {
		return "", err
	}

	receipt.ID = receiptID
	s.publishEvent(ctx, "receipt_created", receipt)

	return receiptID.Hex(), nil
}

func (s *ReceiptServiceImpl) UpdateReceipt(ctx context.Context, ownerID string, id string, req dto.ReceiptUpdateRequest) (err error) {
	result := validator.ValidateReceiptUpdate(req)
	if !result.Valid {
		return fmt.Errorf("%w: %s", errs.ErrValidation, strings.Join(result.Errors, "; "))
	}

	fields := map[string]interface{}{}

	if req.ReceiptNumber != nil {
		fields["receipt_number"] = *req.ReceiptNumber
	}
	if req.StoreName != nil {
		fields["store_name"] = *req.StoreName
	}
	if req.ReceiptDate != nil {
		fields["receipt_date"] = *req.ReceiptDate
	}
	if req.Items != nil {
		fields["items"] = buildReceiptItems(*req.Items)
	}
	if req.TotalAmount != nil {
		fields["total_amount"] = *req.TotalAmount
	}
	if req.ImageURL != nil {
		fields["image_url"] = *req.ImageURL
	}
	if req.Notes != nil {
		fields["notes"] = *req.Notes
	}

	fields["updated_at"] = time.Now().Unix()

	if err = s.repo.UpdateReceipt(ctx, ownerID, id, fields); err != nil {
		return err
	}

	s.publishEvent(ctx, "receipt_updated", map[string]interface{}{"id": id, "fields": fields})

	return nil
}

func (s *ReceiptServiceImpl) DeleteReceipt(ctx context.Context, ownerID string, id string) (err error) {
	if err = s.repo.DeleteReceipt(ctx, ownerID, id); err != nil {
		return err
	}

	s.publishEvent(ctx, "receipt_deleted", map[string]interface{}{"id": id})

	return nil
}

// buildReceiptItems assigns each line item an id unique within the receipt.
// The stored total is whatever the caller supplied; it is not recomputed from
// the items here.
func buildReceiptItems(items []dto.ReceiptItemRequest) []domain.ReceiptItem {
	result := make([]domain.ReceiptItem, 0, len(items))
	for _, item := range items {
		result = append(result, domain.ReceiptItem{
			ID:              ulid.Make().String(),
			ProductID:       item.ProductID,
			Quantity:        item.Quantity,
			DiscountedPrice: item.DiscountedPrice,
		})
	}

	return result
}

func (s *ReceiptServiceImpl) publishEvent(ctx context.Context, eventType string, data interface{}) {
	if s.kafkaProducer == nil {
		return
	}

	kafkaMsg := dto.KafkaMessage{
		EventType: eventType,
		Data:      data,
	}

	jsonMsg, err := json.Marshal(kafkaMsg)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "publishEvent").Msg("")
		return
	}

	maxRetries := 3
	for i := 0; i < maxRetries; i++ {
		_, err = s.kafkaProducer.WriteMessages(kafka.Message{Value: jsonMsg})
		if err == nil {
			return
		}
		log.Ctx(ctx).Error().Err(err).Str("component", "publishEvent").Msg("")
		time.Sleep(time.Second * time.Duration(i+1)) // Exponential backoff
	}

	log.Ctx(ctx).Error().Err(err).Str("component", "publishEvent").Msgf("dropping %s event after %d attempts", eventType, maxRetries)
}
