package mongo

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/shoestackclub/shoestack/internal/store"
)

type OrderDetailRepo struct {
	collection *mongo.Collection
}

func NewOrderDetailRepo(db *mongo.Database) *OrderDetailRepo {
	return &OrderDetailRepo{
		collection: db.Collection("order_details"),
	}
}

func (r *OrderDetailRepo) Create(ctx context.Context, d *store.OrderDetail) error {
	if d == nil {
		return fmt.Errorf("order detail is nil")
	}

	if _, err := r.collection.InsertOne(ctx, d); err != nil {
		return fmt.Errorf("cannot create order detail: %w", err)
	}

	return nil
}

func (r *OrderDetailRepo) List(ctx context.Context) ([]*store.OrderDetail, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("cannot list order details: %w", err)
	}
	defer cursor.Close(ctx)

	var result []*store.OrderDetail
	if err := cursor.All(ctx, &result); err != nil {
		return nil, fmt.Errorf("cannot decode order details: %w", err)
	}

	return result, nil
}

func (r *OrderDetailRepo) ListByOrder(ctx context.Context, orderID uuid.UUID) ([]*store.OrderDetail, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"order_id": orderID})
	if err != nil {
		return nil, fmt.Errorf("cannot list order details by order: %w", err)
	}
	defer cursor.Close(ctx)

	var result []*store.OrderDetail
	if err := cursor.All(ctx, &result); err != nil {
		return nil, fmt.Errorf("cannot decode order details: %w", err)
	}

	return result, nil
}

// ReplaceForOrder swaps the full line set of an order in one pass.
func (r *OrderDetailRepo) ReplaceForOrder(ctx context.Context, orderID uuid.UUID, details []*store.OrderDetail) error {
	if _, err := r.collection.DeleteMany(ctx, bson.M{"order_id": orderID}); err != nil {
		return fmt.Errorf("cannot clear order details: %w", err)
	}

	if len(details) == 0 {
		return nil
	}

	docs := make([]any, 0, len(details))
	for _, d := range details {
		docs = append(docs, d)
	}
	if _, err := r.collection.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("cannot insert order details: %w", err)
	}

	return nil
}

func (r *OrderDetailRepo) Delete(ctx context.Context, orderID, productID uuid.UUID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"order_id": orderID, "product_id": productID})
	if err != nil {
		return fmt.Errorf("cannot delete order detail: %w", err)
	}

	if result.DeletedCount == 0 {
		return fmt.Errorf("order detail not found")
	}

	return nil
}

func (r *OrderDetailRepo) DeleteByOrder(ctx context.Context, orderID uuid.UUID) error {
	if _, err := r.collection.DeleteMany(ctx, bson.M{"order_id": orderID}); err != nil {
		return fmt.Errorf("cannot delete order details: %w", err)
	}
	return nil
}
