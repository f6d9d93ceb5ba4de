package db

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	GoalsCollection = "goals"
	UsersCollection = "users"
)

// InitMongo connects to MongoDB and returns the named database with its
// indexes in place. The caller owns the returned client.
func InitMongo(ctx context.Context, uri, database string) (*mongo.Client, *mongo.Database, error) {
	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().
		ApplyURI(uri).
		SetMaxPoolSize(25))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect: %w", err)
	}

	err = client.Ping(connectCtx, readpref.Primary())
	if err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, fmt.Errorf("failed to ping mongo: %w", err)
	}

	mdb := client.Database(database)

	err = EnsureMongoIndexes(connectCtx, mdb)
	if err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, err
	}

	slog.Info("database connected", "driver", "mongo", "database", database)
	return client, mdb, nil
}

// EnsureMongoIndexes creates the indexes the repositories rely on: goals are
// listed by owner and user emails are unique.
func EnsureMongoIndexes(ctx context.Context, mdb *mongo.Database) error {
	_, err := mdb.Collection(GoalsCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: 1}},
	})
	if err != nil {
		return fmt.Errorf("failed to create goals index: %w", err)
	}

	_, err = mdb.Collection(UsersCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("failed to create users index: %w", err)
	}

	return nil
}
