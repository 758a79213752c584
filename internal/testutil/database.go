package testutil

import (
	"context"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// SetupTestDB connects to a local MongoDB instance and returns the
// karsamrit_test database. Tests are skipped when no instance is reachable.
func SetupTestDB(t *testing.T) *mongo.Database {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI("mongodb://localhost:27017"))
	if err != nil {
		t.Skipf("test database not available: %v", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		t.Skipf("test database not available: %v", err)
	}

	return client.Database("karsamrit_test")
}

// CleanupTestDB drops the orders collection and closes the connection.
func CleanupTestDB(t *testing.T, db *mongo.Database) {
	t.Helper()

	if db == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.Collection("orders").Drop(ctx); err != nil {
		t.Logf("failed to drop orders collection: %v", err)
	}

	if err := db.Client().Disconnect(ctx); err != nil {
		t.Logf("failed to disconnect: %v", err)
	}
}
