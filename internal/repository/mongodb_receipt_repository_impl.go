package repository

import (
	"context"

	"github.com/iwootapp/iwoot/internal/domain"
	"github.com/iwootapp/iwoot/pkg/errs"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoDBReceiptRepositoryImpl struct {
	db *mongo.Database
}

func CreateNewReceiptRepository(db *mongo.Database) ReceiptRepository {
	return &MongoDBReceiptRepositoryImpl{db: db}
}

func (r *MongoDBReceiptRepositoryImpl) AddReceipt(ctx context.Context, data domain.Receipt) (id primitive.ObjectID, err error) {
	result, err := r.db.Collection("receipts").InsertOne(ctx, data)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "AddReceipt").Msg("")
		return
	}

	return result.InsertedID.(primitive.ObjectID), err
}

func (r *MongoDBReceiptRepositoryImpl) GetReceipts(ctx context.Context, ownerID string) (data []domain.Receipt, err error) {
	filter := bson.D{{Key: "owner_id", Value: ownerID}}
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := r.db.Collection("receipts").Find(ctx, filter, opts)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetReceipts").Msg("")
		return
	}

	if err = cursor.All(ctx, &data); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetReceipts").Msg("")
		return
	}

	return data, nil
}

func (r *MongoDBReceiptRepositoryImpl) GetReceiptByID(ctx context.Context, ownerID string, id string) (receipt domain.Receipt, err error) {
	receiptID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetReceiptByID").Msg("")
		return receipt, errs.ErrNotFound
	}

	filter := bson.D{{Key: "_id", Value: receiptID}, {Key: "owner_id", Value: ownerID}}

	err = r.db.Collection("receipts").FindOne(ctx, filter).Decode(&receipt)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return receipt, errs.ErrNotFound
		}

		log.Ctx(ctx).Error().Err(err).Str("component", "GetReceiptByID").Msg("")
		return receipt, err
	}

	return receipt, nil
}

func (r *MongoDBReceiptRepositoryImpl) GetReceiptsByProductID(ctx context.Context, ownerID string, productID string) (data []domain.Receipt, err error) {
	filter := bson.D{
		{Key: "owner_id", Value: ownerID},
		{Key: "items.product_id", Value: productID},
	}
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := r.db.Collection("receipts").Find(ctx, filter, opts)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetReceiptsByProductID").Msg("")
		return
	}

	if err = cursor.All(ctx, &data); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetReceiptsByProductID").Msg("")
		return
	}

	return data, nil
}

func (r *MongoDBReceiptRepositoryImpl) UpdateReceipt(ctx context.Context, ownerID string, id string, fields map[string]interface{}) (err error) {
	receiptID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "UpdateReceipt").Msg("")
		return errs.ErrNotFound
	}

	filter := bson.D{{Key: "_id", Value: receiptID}, {Key: "owner_id", Value: ownerID}}
	update := bson.M{"$set": fields}

	result, err := r.db.Collection("receipts").UpdateOne(ctx, filter, update)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "UpdateReceipt").Msg("Failed to update receipt")
		return
	}

	if result.MatchedCount == 0 {
		return errs.ErrNotFound
	}

	return nil
}

func (r *MongoDBReceiptRepositoryImpl) DeleteReceipt(ctx context.Context, ownerID string, id string) (err error) {
	receiptID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "DeleteReceipt").Msg("")
		return errs.ErrNotFound
	}

	filter := bson.D{{Key: "_id", Value: receiptID}, {Key: "owner_id", Value: ownerID}}

	result, err := r.db.Collection("receipts").DeleteOne(ctx, filter)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "DeleteReceipt").Msg("")
		return
	}

	if result.DeletedCount == 0 {
		return errs.ErrNotFound
	}

	return
}
