package mongo

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/shoestackclub/shoestack/internal/store"
)

type SupplierRepo struct {
	collection *mongo.Collection
}

func NewSupplierRepo(db *mongo.Database) *SupplierRepo {
	return &SupplierRepo{
		collection: db.Collection("suppliers"),
	}
}

func (r *SupplierRepo) Create(ctx context.Context, s *store.Supplier) error {
	if s == nil {
		return fmt.Errorf("supplier is nil")
	}

	if _, err := r.collection.InsertOne(ctx, s); err != nil {
		return fmt.Errorf("cannot create supplier: %w", err)
	}

	return nil
}

func (r *SupplierRepo) Get(ctx context.Context, id uuid.UUID) (*store.Supplier, error) {
	var s store.Supplier
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&s)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("cannot get supplier: %w", err)
	}
	return &s, nil
}

func (r *SupplierRepo) List(ctx context.Context) ([]*store.Supplier, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("cannot list suppliers: %w", err)
	}
	defer cursor.Close(ctx)

	var result []*store.Supplier
	if err := cursor.All(ctx, &result); err != nil {
		return nil, fmt.Errorf("cannot decode suppliers: %w", err)
	}

	return result, nil
}

func (r *SupplierRepo) Save(ctx context.Context, s *store.Supplier) error {
	if s == nil {
		return fmt.Errorf("supplier is nil")
	}

	filter := bson.M{"_id": s.ID}
	update := bson.M{"$set": s}

	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("cannot update supplier: %w", err)
	}

	if result.MatchedCount == 0 {
		return fmt.Errorf("supplier not found")
	}

	return nil
}

func (r *SupplierRepo) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("cannot delete supplier: %w", err)
	}

	if result.DeletedCount == 0 {
		return fmt.Errorf("supplier not found")
	}

	return nil
}
