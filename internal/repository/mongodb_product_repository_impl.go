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

type MongoDBProductRepositoryImpl struct {
	db *mongo.Database
}

func CreateNewProductRepository(db *mongo.Database) ProductRepository {
	return &MongoDBProductRepositoryImpl{db: db}
}

func (r *MongoDBProductRepositoryImpl) AddProduct(ctx context.Context, data domain.Product) (id primitive.ObjectID, err error) {
	result, err := r.db.Collection("products").InsertOne(ctx, data)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "AddProduct").Msg("")
		return
	}

	return result.InsertedID.(primitive.ObjectID), err
}

func (r *MongoDBProductRepositoryImpl) GetProducts(ctx context.Context, ownerID string, productType domain.ProductType) (data []domain.Product, err error) {
	filter := bson.D{{Key: "owner_id", Value: ownerID}}
	if productType != "" {
		filter = append(filter, bson.E{Key: "type", Value: productType})
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := r.db.Collection("products").Find(ctx, filter, opts)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetProducts").Msg("")
		return
	}

	if err = cursor.All(ctx, &data); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetProducts").Msg("")
		return
	}

	return data, nil
}

func (r *MongoDBProductRepositoryImpl) GetProductByID(ctx context.Context, ownerID string, id string) (product domain.Product, err error) {
	productID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetProductByID").Msg("")
		return product, errs.ErrNotFound
	}

	filter := bson.D{{Key: "_id", Value: productID}, {Key: "owner_id", Value: ownerID}}

	err = r.db.Collection("products").FindOne(ctx, filter).Decode(&product)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return product, errs.ErrNotFound
		}

		log.Ctx(ctx).Error().Err(err).Str("component", "GetProductByID").Msg("")
		return product, err
	}

	return product, nil
}

func (r *MongoDBProductRepositoryImpl) UpdateProduct(ctx context.Context, ownerID string, id string, fields map[string]interface{}) (err error) {
	productID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "UpdateProduct").Msg("")
		return errs.ErrNotFound
	}

	filter := bson.D{{Key: "_id", Value: productID}, {Key: "owner_id", Value: ownerID}}
	update := bson.M{"$set": fields}

	result, err := r.db.Collection("products").UpdateOne(ctx, filter, update)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "UpdateProduct").Msg("Failed to update product")
		return
	}

	if result.MatchedCount == 0 {
		return errs.ErrNotFound
	}

	return nil
}

func (r *MongoDBProductRepositoryImpl) DeleteProduct(ctx context.Context, ownerID string, id string) (err error) {
	productID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "DeleteProduct").Msg("")
		return errs.ErrNotFound
	}

	filter := bson.D{{Key: "_id", Value: productID}, {Key: "owner_id", Value: ownerID}}

	result, err := r.db.Collection("products").DeleteOne(ctx, filter)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "DeleteProduct").Msg("")
		return
	}

	if result.DeletedCount == 0 {
		return errs.ErrNotFound
	}

	return
}

func (r *MongoDBProductRepositoryImpl) AppendPriceHistory(ctx context.Context, ownerID string, id string, entry domain.PriceHistoryEntry, setCurrentPrice bool) (err error) {
	productID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "AppendPriceHistory").Msg("")
		return errs.ErrNotFound
	}

	filter := bson.D{{Key: "_id", Value: productID}, {Key: "owner_id", Value: ownerID}}

	set := bson.D{{Key: "updated_at", Value: entry.ObservedAt}}
	if setCurrentPrice {
		set = append(set, bson.E{Key: "current_price", Value: entry.Price})
	}

	update := bson.D{
		{Key: "$push", Value: bson.D{{Key: "price_history", Value: entry}}},
		{Key: "$set", Value: set},
	}

	result, err := r.db.Collection("products").UpdateOne(ctx, filter, update)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "AppendPriceHistory").Msg("Failed to append price history")
		return
	}

	if result.MatchedCount == 0 {
		return errs.ErrNotFound
	}

	return
}
