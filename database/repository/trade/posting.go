package tradeRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CreatePosting applies the effects of one invoice request inside a Mongo
// session transaction. Two request copies, the debit entry, and for a
// registered destination the credit entry and the network-edge update commit
// together or not at all. The edge volume uses $inc, so concurrent postings
// between the same pair never lose updates.
func (r *MongoTradeRepo) CreatePosting(p Posting) error {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	sess, err := r.client.StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	txnFn := func(sc mongo.SessionContext) error {
		senderCopy := p.Request
		senderCopy.OwnerID = p.Request.FromOrg
		if _, err := r.requestColl.InsertOne(sc, senderCopy); err != nil {
			return fmt.Errorf("insert request record failed: %w", err)
		}

		destCopy := p.Request
		destCopy.OwnerID = p.Request.ToOrg
		if _, err := r.requestColl.InsertOne(sc, destCopy); err != nil {
			return fmt.Errorf("insert mirrored request record failed: %w", err)
		}

		if err := r.appendEntry(sc, p.Request.FromOrg, p.Request.ToOrg, p.Debit); err != nil {
			return fmt.Errorf("append debit entry failed: %w", err)
		}

		if p.DestRegistered {
			if err := r.appendEntry(sc, p.Request.ToOrg, p.Request.FromOrg, p.Credit); err != nil {
				return fmt.Errorf("append credit entry failed: %w", err)
			}

			filter := bson.M{"_id": p.Edge.ID}
			update := bson.M{
				"$setOnInsert": bson.M{"a": p.Edge.A, "b": p.Edge.B},
				"$set":         bson.M{"last_txn": p.Edge.LastTxn},
				"$inc":         bson.M{"total_volume": p.Request.Amount},
			}
			opts := options.Update().SetUpsert(true)
			if _, err := r.edgeColl.UpdateOne(sc, filter, update, opts); err != nil {
				return fmt.Errorf("update network edge failed: %w", err)
			}
		}
		return nil
	}

	if err := mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			return err
		}
		if err := txnFn(sc); err != nil {
			_ = sc.AbortTransaction(sc)
			return err
		}
		return sc.CommitTransaction(sc)
	}); err != nil {
		return fmt.Errorf("posting transaction failed: %w", err)
	}

	return nil
}

// appendEntry pushes one ledger entry onto the (owner, counterparty) document,
// creating it on first contact.
func (r *MongoTradeRepo) appendEntry(sc mongo.SessionContext, ownerID, counterparty string, entry interface{}) error {
	filter := bson.M{"owner_id": ownerID, "counterparty": counterparty}
	update := bson.M{
		"$setOnInsert": bson.M{"owner_id": ownerID, "counterparty": counterparty},
		"$push":        bson.M{"entries": entry},
	}
	opts := options.Update().SetUpsert(true)
	_, err := r.ledgerColl.UpdateOne(sc, filter, update, opts)
	return err
}
