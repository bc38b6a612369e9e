// Package db owns the MongoDB connection lifecycle.
package db

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const connectTimeout = 10 * time.Second

// Open connects to MongoDB and verifies the connection with a ping.
// It reads MONGODB_URI and MONGODB_DATABASE from the environment and exits
// the process when either is missing or the server is unreachable.
func Open() (*mongo.Client, *mongo.Database) {
	uri := os.Getenv("MONGODB_URI")
	if uri == "" {
		log.Fatal("MONGODB_URI not set")
	}
	name := os.Getenv("MONGODB_DATABASE")
	if name == "" {
		log.Fatal("MONGODB_DATABASE not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		log.Fatalf("failed to connect to MongoDB: %v", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		log.Fatalf("failed to ping MongoDB: %v", err)
	}

	slog.Info("database connection established successfully",
		slog.String("database", name))
	return client, client.Database(name)
}

// Close disconnects the client, logging instead of failing on error.
func Close(client *mongo.Client) {
	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()
	if err := client.Disconnect(ctx); err != nil {
		slog.Error("failed to disconnect from MongoDB", slog.Any("error", err))
	}
}
