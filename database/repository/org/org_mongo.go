package orgRepo

import (
	"context"
	"fmt"
	"time"

	"tradenet/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoOrgRepo implements OrgRepository using MongoDB.
type MongoOrgRepo struct {
	coll *mongo.Collection
}

// NewMongoOrgRepo creates a new instance of OrgRepository using MongoDB.
func NewMongoOrgRepo(client *mongo.Client, dbName string) OrgRepository {
	coll := client.Database(dbName).Collection("orgs")
	return &MongoOrgRepo{coll: coll}
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// GetByID retrieves an organization by its canonical identifier.
func (r *MongoOrgRepo) GetByID(id string) (*models.Organization, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var org models.Organization
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&org); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch org %s: %w", id, err)
	}
	return &org, nil
}

// Exists reports whether an organization document is present.
func (r *MongoOrgRepo) Exists(id string) (bool, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	n, err := r.coll.CountDocuments(ctx, bson.M{"_id": id}, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("failed to check org %s: %w", id, err)
	}
	return n > 0, nil
}

// EnsureRegistered inserts the organization if absent. $setOnInsert keyed on
// _id makes concurrent first contacts collapse to a single document.
func (r *MongoOrgRepo) EnsureRegistered(org *models.Organization) (*models.Organization, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	org.Registered = true
	org.CreatedAt = now
	org.UpdatedAt = now

	filter := bson.M{"_id": org.ID}
	update := bson.M{"$setOnInsert": org}
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var stored models.Organization
	if err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&stored); err != nil {
		return nil, fmt.Errorf("failed to register org %s: %w", org.ID, err)
	}
	return &stored, nil
}

// UpdateProfile applies the non-zero profile fields.
func (r *MongoOrgRepo) UpdateProfile(id string, update models.OrganizationProfileUpdate) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	set := bson.M{"updated_at": time.Now()}
	if update.LegalName != "" {
		set["legal_name"] = update.LegalName
	}
	if update.Email != "" {
		set["email"] = update.Email
	}
	if update.Address != "" {
		set["address"] = update.Address
	}
	if update.WebhookURL != "" {
		set["webhook_url"] = update.WebhookURL
	}
	if update.FCMToken != "" {
		set["fcm_token"] = update.FCMToken
	}

	result, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("failed to update org %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("org %s not found", id)
	}
	return nil
}
