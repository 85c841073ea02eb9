package commands

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/shoestackclub/shoestack/internal/config"
	"github.com/shoestackclub/shoestack/internal/logging"
)

// ResetDB drops the whole database - USE WITH CAUTION.
func ResetDB(ctx context.Context, cfg *config.Config, logger logging.Logger) error {
	logger.Info("DANGER: this will drop the database and cannot be undone")

	mongoURL := cfg.GetStringOrDef("db.mongo.url", "mongodb://localhost:27017")
	dbName := cfg.GetStringOrDef("db.mongo.name", "shoestack")

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(mongoURL))
	if err != nil {
		return fmt.Errorf("connect to mongodb: %w", err)
	}
	defer client.Disconnect(ctx)

	if err := client.Ping(ctx, nil); err != nil {
		return fmt.Errorf("ping mongodb: %w", err)
	}

	logger.Info("Connected to MongoDB")

	db := client.Database(dbName)
	result := db.RunCommand(ctx, bson.D{{Key: "dropDatabase", Value: 1}})
	if result.Err() != nil {
		return fmt.Errorf("drop database %s: %w", dbName, result.Err())
	}

	logger.Info("Database dropped", "database", dbName)
	return nil
}
