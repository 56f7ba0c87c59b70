package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"gopkg.in/gomail.v2"

	"github.com/iwootapp/iwoot/config"
	"github.com/iwootapp/iwoot/internal/domain"
	"github.com/iwootapp/iwoot/internal/dto"
	"github.com/iwootapp/iwoot/internal/repository"
	"github.com/iwootapp/iwoot/internal/validator"
	"github.com/iwootapp/iwoot/pkg/errs"
	"github.com/iwootapp/iwoot/pkg/utils"
	"github.com/segmentio/kafka-go"
)

type ProductServiceImpl struct {
	repo          repository.ProductRepository
	config        config.Config
	kafkaProducer *kafka.Conn
}

func CreateProductService(repo repository.ProductRepository, config config.Config, kafkaProducer *kafka.Conn) ProductService {
	return &ProductServiceImpl{repo: repo, config: config, kafkaProducer: kafkaProducer}
}

func (s *ProductServiceImpl) GetProducts(ctx context.Context, ownerID string, productType string) (data []domain.Product, err error) {
	if productType != "" && productType != string(domain.ProductTypeWant) && productType != string(domain.ProductTypeHave) {
		return nil, errs.ErrClient
	}

	data, err = s.repo.GetProducts(ctx, ownerID, domain.ProductType(productType))
	if err != nil {
		if s.config.ListFailClosed {
			return nil, err
		}

		// A transient backend hiccup must not be fatal to the caller; trade
		// the error signal for an empty list.
		log.Ctx(ctx).Warn().Err(err).Str("component", "GetProducts").Msg("degrading backend failure to empty list")
		return []domain.Product{}, nil
	}

	if data == nil {
		data = []domain.Product{}
	}

	return data, nil
}

func (s *ProductServiceImpl) GetProduct(ctx context.Context, ownerID string, id string) (product *domain.Product, err error) {
	record, err := s.repo.GetProductByID(ctx, ownerID, id)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return nil, nil
		}

		return nil, err
	}

	return &record, nil
}

func (s *ProductServiceImpl) AddProduct(ctx context.Context, ownerID string, req dto.ProductRequest) (id string, err error) {
	req.OwnerID = ownerID

	result := validator.ValidateProduct(req)
	if !result.Valid {
		return "", fmt.Errorf("%w: %s", errs.ErrValidation, strings.Join(result.Errors, "; "))
	}

	now := time.Now().Unix()
	product := domain.Product{
		Type:          domain.ProductType(req.Type),
		OwnerID:       ownerID,
		Name:          req.Name,
		Brand:         req.Brand,
		Website:       req.Website,
		OriginalPrice: req.OriginalPrice,
		Date:          req.Date,
		Description:   req.Description,
		Category:      req.Category,
		Model:         req.Model,
		SKU:           req.SKU,
		Color:         req.Color,
		Size:          req.Size,
		Condition:     req.Condition,
		Notes:         req.Notes,
		Images:        req.Images,
		Specs:         req.Specs,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	switch product.Type {
	case domain.ProductTypeWant:
		if req.CurrentPrice != nil {
			product.CurrentPrice = *req.CurrentPrice
		}
		if req.TargetPrice != nil {
			product.TargetPrice = *req.TargetPrice
		}
	case domain.ProductTypeHave:
		product.PriceBought = *req.PriceBought
		product.PurchaseLocation = req.PurchaseLocation
		product.WarrantyUntil = req.WarrantyUntil
		product.ReceiptID = req.ReceiptID
		product.CurrentlySelling = req.CurrentlySelling
		product.SellingAt = req.SellingAt
	}

	productID, err := s.repo.AddProduct(ctx, product)
	if err != nil {
		return "", err
	}

	product.ID = productID
	s.publishEvent(ctx, "product_created", product)

	return productID.Hex(), nil
}

func (s *ProductServiceImpl) UpdateProduct(ctx context.Context, ownerID string, id string, req dto.ProductUpdateRequest) (err error) {
	result := validator.ValidateProductUpdate(req)
	if !result.Valid {
		return fmt.Errorf("%w: %s", errs.ErrValidation, strings.Join(result.Errors, "; "))
	}

	product, err := s.repo.GetProductByID(ctx, ownerID, id)
	if err != nil {
		return err
	}

	fields, err := buildProductUpdate(product.Type, req)
	if err != nil {
		return err
	}

	fields["updated_at"] = time.Now().Unix()

	if err = s.repo.UpdateProduct(ctx, ownerID, id, fields); err != nil {
		return err
	}

	s.publishEvent(ctx, "product_updated", map[string]interface{}{"id": id, "fields": fields})

	return nil
}

// buildProductUpdate collects the supplied fields into a partial update,
// rejecting fields that belong to the other variant. The discriminator, the
// owner id and the creation timestamp are not part of the update surface at
// all.
func buildProductUpdate(productType domain.ProductType, req dto.ProductUpdateRequest) (map[string]interface{}, error) {
	fields := map[string]interface{}{}

	setString := func(key string, value *string) {
		if value != nil {
			fields[key] = *value
		}
	}

	setString("name", req.Name)
	setString("brand", req.Brand)
	setString("website", req.Website)
	setString("date", req.Date)
	setString("description", req.Description)
	setString("category", req.Category)
	setString("model", req.Model)
	setString("sku", req.SKU)
	setString("color", req.Color)
	setString("size", req.Size)
	setString("condition", req.Condition)
	setString("notes", req.Notes)

	if req.OriginalPrice != nil {
		fields["original_price"] = *req.OriginalPrice
	}
	if req.Images != nil {
		fields["images"] = *req.Images
	}
	if req.Specs != nil {
		fields["specs"] = *req.Specs
	}

	switch productType {
	case domain.ProductTypeWant:
		if req.PriceBought != nil || req.PurchaseLocation != nil || req.WarrantyUntil != nil ||
			req.ReceiptID != nil || req.CurrentlySelling != nil || req.SellingAt != nil {
			return nil, fmt.Errorf("%w: %s", errs.ErrValidation, "ownership fields only apply to owned products")
		}

		if req.CurrentPrice != nil {
			fields["current_price"] = *req.CurrentPrice
		}
		if req.TargetPrice != nil {
			fields["target_price"] = *req.TargetPrice
		}
	case domain.ProductTypeHave:
		if req.CurrentPrice != nil || req.TargetPrice != nil {
			return nil, fmt.Errorf("%w: %s", errs.ErrValidation, "tracking prices only apply to wanted products")
		}

		if req.PriceBought != nil {
			fields["price_bought"] = *req.PriceBought
		}
		setString("purchase_location", req.PurchaseLocation)
		setString("warranty_until", req.WarrantyUntil)
		setString("receipt_id", req.ReceiptID)
		setString("selling_at", req.SellingAt)
		if req.CurrentlySelling != nil {
			fields["currently_selling"] = *req.CurrentlySelling
		}
	}

	return fields, nil
}

func (s *ProductServiceImpl) DeleteProduct(ctx context.Context, ownerID string, id string) (err error) {
	if err = s.repo.DeleteProduct(ctx, ownerID, id); err != nil {
		return err
	}

	s.publishEvent(ctx, "product_deleted", map[string]interface{}{"id": id})

	return nil
}

func (s *ProductServiceImpl) AddPriceObservation(ctx context.Context, ownerID string, id string, req dto.PriceObservationRequest) (err error) {
	if req.Price <= 0 {
		return fmt.Errorf("%w: %s", errs.ErrValidation, "price must be greater than 0")
	}

	product, err := s.repo.GetProductByID(ctx, ownerID, id)
	if err != nil {
		return err
	}

	entry := domain.PriceHistoryEntry{
		Price:      req.Price,
		ObservedAt: time.Now().Unix(),
		Source:     req.Source,
		Note:       req.Note,
	}

	// The observed price and the mutable current price of a wanted product
	// move together in a single write; an owned product's purchase price is
	// never touched by an observation.
	setCurrentPrice := product.Type == domain.ProductTypeWant

	if err = s.repo.AppendPriceHistory(ctx, ownerID, id, entry, setCurrentPrice); err != nil {
		return err
	}

	s.publishEvent(ctx, "price_observed", map[string]interface{}{"id": id, "entry": entry})

	if setCurrentPrice && product.TargetPrice > 0 && req.Price <= product.TargetPrice {
		s.sendTargetPriceAlert(ctx, product, req.Price)
	}

	return nil
}

// sendTargetPriceAlert is best-effort: a mail failure is logged and dropped,
// never surfaced to the caller of a price observation.
func (s *ProductServiceImpl) sendTargetPriceAlert(ctx context.Context, product domain.Product, price float64) {
	conf := s.config.SMTPConfig
	if conf.Host == "" || conf.AlertRecipient == "" {
		return
	}

	message := gomail.NewMessage()
	message.SetHeader("From", conf.Sender)
	message.SetHeader("To", conf.AlertRecipient)
	message.SetHeader("Subject", fmt.Sprintf("Price alert: %s hit your target", product.Name))
	message.SetBody("text/plain", fmt.Sprintf(
		"%s %s is now %.2f, at or under your target of %.2f.\n%s\n",
		product.Brand, product.Name, price, product.TargetPrice, product.Website,
	))

	if err := utils.SendEmail(message, conf.Sender, conf.Password, conf.Host, conf.Port); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "sendTargetPriceAlert").Msg("")
	}
}

func (s *ProductServiceImpl) publishEvent(ctx context.Context, eventType string, data interface{}) {
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
