package mongo

import (
	"context"
	"fmt"
	"regexp"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/shoestackclub/shoestack/internal/store"
)

type CustomerRepo struct {
	collection *mongo.Collection
}

func NewCustomerRepo(db *mongo.Database) *CustomerRepo {
	return &CustomerRepo{
		collection: db.Collection("customers"),
	}
}

func (r *CustomerRepo) Create(ctx context.Context, c *store.Customer) error {
	if c == nil {
		return fmt.Errorf("customer is nil")
	}

	if _, err := r.collection.InsertOne(ctx, c); err != nil {
		return fmt.Errorf("cannot create customer: %w", err)
	}

	return nil
}

func (r *CustomerRepo) Get(ctx context.Context, id uuid.UUID) (*store.Customer, error) {
	var c store.Customer
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&c)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("cannot get customer: %w", err)
	}
	return &c, nil
}

// FindByName matches the whole name, case-insensitively. Returns nil
// without error when no customer matches.
func (r *CustomerRepo) FindByName(ctx context.Context, name string) (*store.Customer, error) {
	pattern := "^" + regexp.QuoteMeta(name) + "$"
	filter := bson.M{"name": primitive.Regex{Pattern: pattern, Options: "i"}}

	var c store.Customer
	err := r.collection.FindOne(ctx, filter).Decode(&c)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("cannot find customer by name: %w", err)
	}
	return &c, nil
}

func (r *CustomerRepo) List(ctx context.Context) ([]*store.Customer, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("cannot list customers: %w", err)
	}
	defer cursor.Close(ctx)

	var result []*store.Customer
	if err := cursor.All(ctx, &result); err != nil {
		return nil, fmt.Errorf("cannot decode customers: %w", err)
	}

	return result, nil
}

func (r *CustomerRepo) Save(ctx context.Context, c *store.Customer) error {
	if c == nil {
		return fmt.Errorf("customer is nil")
	}

	filter := bson.M{"_id": c.ID}
	update := bson.M{"$set": c}

	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("cannot update customer: %w", err)
	}

	if result.MatchedCount == 0 {
		return fmt.Errorf("customer not found")
	}

	return nil
}

func (r *CustomerRepo) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("cannot delete customer: %w", err)
	}

	if result.DeletedCount == 0 {
		return fmt.Errorf("customer not found")
	}

	return nil
}
