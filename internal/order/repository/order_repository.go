package repository

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"karsamrit/internal/domain"
	"karsamrit/internal/errors"
)

const collectionName = "orders"

type MongoOrderRepository struct {
	collection *mongo.Collection
}

func NewMongoOrderRepository(db *mongo.Database) *MongoOrderRepository {
	return &MongoOrderRepository{collection: db.Collection(collectionName)}
}

// Insert persists a new order as a single document and returns the
// assigned id.
func (r *MongoOrderRepository) Insert(ctx context.Context, order *domain.Order) (primitive.ObjectID, error) {
	if order.ID.IsZero() {
		order.ID = primitive.NewObjectID()
	}

	if _, err := r.collection.InsertOne(ctx, order); err != nil {
		return primitive.NilObjectID, fmt.Errorf("inserting order: %w", err)
	}

	return order.ID, nil
}

// FindAll returns the full collection sorted by createdAt descending.
func (r *MongoOrderRepository) FindAll(ctx context.Context) ([]domain.Order, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := r.collection.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("querying orders: %w", err)
	}
	defer cursor.Close(ctx)

	orders := []domain.Order{}
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, fmt.Errorf("decoding orders: %w", err)
	}

	return orders, nil
}

// UpdateStatus atomically overwrites the status of the order with the
// given id and returns the post-update document.
func (r *MongoOrderRepository) UpdateStatus(ctx context.Context, id string, status string) (*domain.Order, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, errors.NewNotFoundError("Order not found")
	}

	update := bson.M{"$set": bson.M{
		"status":    status,
		"updatedAt": time.Now().UTC(),
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var order domain.Order
	err = r.collection.FindOneAndUpdate(ctx, bson.M{"_id": objectID}, update, opts).Decode(&order)
	if err == mongo.ErrNoDocuments {
		return nil, errors.NewNotFoundError("Order not found")
	}
	if err != nil {
		return nil, fmt.Errorf("updating order status: %w", err)
	}

	return &order, nil
}
