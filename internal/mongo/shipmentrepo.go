package mongo

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/shoestackclub/shoestack/internal/store"
)

type ShipmentRepo struct {
	collection *mongo.Collection
}

func NewShipmentRepo(db *mongo.Database) *ShipmentRepo {
	return &ShipmentRepo{
		collection: db.Collection("shipments"),
	}
}

func (r *ShipmentRepo) Create(ctx context.Context, s *store.Shipment) error {
	if s == nil {
		return fmt.Errorf("shipment is nil")
	}

	if _, err := r.collection.InsertOne(ctx, s); err != nil {
		return fmt.Errorf("cannot create shipment: %w", err)
	}

	return nil
}

func (r *ShipmentRepo) Get(ctx context.Context, id uuid.UUID) (*store.Shipment, error) {
	var s store.Shipment
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&s)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("cannot get shipment: %w", err)
	}
	return &s, nil
}

func (r *ShipmentRepo) GetByOrder(ctx context.Context, orderID uuid.UUID) (*store.Shipment, error) {
	var s store.Shipment
	err := r.collection.FindOne(ctx, bson.M{"order_id": orderID}).Decode(&s)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("cannot get shipment by order: %w", err)
	}
	return &s, nil
}

func (r *ShipmentRepo) List(ctx context.Context) ([]*store.Shipment, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("cannot list shipments: %w", err)
	}
	defer cursor.Close(ctx)

	var result []*store.Shipment
	if err := cursor.All(ctx, &result); err != nil {
		return nil, fmt.Errorf("cannot decode shipments: %w", err)
	}

	return result, nil
}

func (r *ShipmentRepo) Save(ctx context.Context, s *store.Shipment) error {
	if s == nil {
		return fmt.Errorf("shipment is nil")
	}

	filter := bson.M{"_id": s.ID}
	update := bson.M{"$set": s}

	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("cannot update shipment: %w", err)
	}

	if result.MatchedCount == 0 {
		return fmt.Errorf("shipment not found")
	}

	return nil
}

func (r *ShipmentRepo) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("cannot delete shipment: %w", err)
	}

	if result.DeletedCount == 0 {
		return fmt.Errorf("shipment not found")
	}

	return nil
}

func (r *ShipmentRepo) DeleteByOrder(ctx context.Context, orderID uuid.UUID) error {
	if _, err := r.collection.DeleteMany(ctx, bson.M{"order_id": orderID}); err != nil {
		return fmt.Errorf("cannot delete shipments by order: %w", err)
	}
	return nil
}
