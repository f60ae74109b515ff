package tradeRepo

import (
	"fmt"
	"time"

	"tradenet/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetLedger returns the (owner, counterparty) entry list. A pair that has
// never transacted yields an empty ledger.
func (r *MongoTradeRepo) GetLedger(ownerID, counterparty string) (*models.Ledger, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var ledger models.Ledger
	filter := bson.M{"owner_id": ownerID, "counterparty": counterparty}
	if err := r.ledgerColl.FindOne(ctx, filter).Decode(&ledger); err != nil {
		if err == mongo.ErrNoDocuments {
			return &models.Ledger{OwnerID: ownerID, Counterparty: counterparty, Entries: []models.LedgerEntry{}}, nil
		}
		return nil, fmt.Errorf("failed to fetch ledger %s/%s: %w", ownerID, counterparty, err)
	}
	if ledger.Entries == nil {
		ledger.Entries = []models.LedgerEntry{}
	}
	return &ledger, nil
}

// SeedLedger creates an empty (owner, counterparty) ledger document if none
// exists.
func (r *MongoTradeRepo) SeedLedger(ownerID, counterparty string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"owner_id": ownerID, "counterparty": counterparty}
	update := bson.M{"$setOnInsert": bson.M{
		"owner_id":     ownerID,
		"counterparty": counterparty,
		"entries":      []models.LedgerEntry{},
	}}
	opts := options.Update().SetUpsert(true)
	if _, err := r.ledgerColl.UpdateOne(ctx, filter, update, opts); err != nil {
		return fmt.Errorf("failed to seed ledger %s/%s: %w", ownerID, counterparty, err)
	}
	return nil
}

// ListRequests returns the owner's invoice-request copies, newest first.
func (r *MongoTradeRepo) ListRequests(ownerID string, limit, offset int64) ([]models.InvoiceRequest, error) {
	return r.listRequests(bson.M{"owner_id": ownerID}, limit, offset)
}

// ListIncoming returns the owner's copies where it is the declared
// destination, newest first.
func (r *MongoTradeRepo) ListIncoming(ownerID string, limit, offset int64) ([]models.InvoiceRequest, error) {
	return r.listRequests(bson.M{"owner_id": ownerID, "to_org": ownerID}, limit, offset)
}

func (r *MongoTradeRepo) listRequests(filter bson.M, limit, offset int64) ([]models.InvoiceRequest, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	if offset > 0 {
		opts.SetSkip(offset)
	}
	if limit > 0 {
		opts.SetLimit(limit)
	}

	cursor, err := r.requestColl.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve invoice requests: %w", err)
	}
	defer cursor.Close(ctx)

	requests := []models.InvoiceRequest{}
	for cursor.Next(ctx) {
		var req models.InvoiceRequest
		if err := cursor.Decode(&req); err != nil {
			return nil, fmt.Errorf("failed to decode invoice request: %w", err)
		}
		requests = append(requests, req)
	}
	return requests, nil
}

// ListEdges returns every network edge touching the organization, most
// recently active first.
func (r *MongoTradeRepo) ListEdges(orgID string) ([]models.NetworkEdge, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	filter := bson.M{"$or": bson.A{bson.M{"a": orgID}, bson.M{"b": orgID}}}
	opts := options.Find().SetSort(bson.D{{Key: "last_txn", Value: -1}})

	cursor, err := r.edgeColl.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve network edges: %w", err)
	}
	defer cursor.Close(ctx)

	edges := []models.NetworkEdge{}
	for cursor.Next(ctx) {
		var edge models.NetworkEdge
		if err := cursor.Decode(&edge); err != nil {
			return nil, fmt.Errorf("failed to decode network edge: %w", err)
		}
		edges = append(edges, edge)
	}
	return edges, nil
}
