package tradeRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoTradeRepo implements TradeRepository using MongoDB.
type MongoTradeRepo struct {
	client      *mongo.Client
	requestColl *mongo.Collection
	ledgerColl  *mongo.Collection
	edgeColl    *mongo.Collection
}

// NewMongoTradeRepo creates a new instance of TradeRepository using MongoDB.
func NewMongoTradeRepo(client *mongo.Client, dbName string) TradeRepository {
	db := client.Database(dbName)
	repo := &MongoTradeRepo{
		client:      client,
		requestColl: db.Collection("invoice_requests"),
		ledgerColl:  db.Collection("ledgers"),
		edgeColl:    db.Collection("network_edges"),
	}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// ensureIndexes creates indexes for fields frequently used in queries.
func (r *MongoTradeRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	requestIndexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "owner_id", Value: 1}, {Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "owner_id", Value: 1}, {Key: "to_org", Value: 1}}},
	}
	if _, err := r.requestColl.Indexes().CreateMany(ctx, requestIndexes); err != nil {
		return fmt.Errorf("failed to create invoice_requests indexes: %w", err)
	}

	ledgerIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "owner_id", Value: 1}, {Key: "counterparty", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}
	if _, err := r.ledgerColl.Indexes().CreateMany(ctx, ledgerIndexes); err != nil {
		return fmt.Errorf("failed to create ledgers indexes: %w", err)
	}

	edgeIndexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "a", Value: 1}}},
		{Keys: bson.D{{Key: "b", Value: 1}}},
	}
	if _, err := r.edgeColl.Indexes().CreateMany(ctx, edgeIndexes); err != nil {
		return fmt.Errorf("failed to create network_edges indexes: %w", err)
	}
	return nil
}
