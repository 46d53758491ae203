package leadRepo

import (
	"context"
	"fmt"
	"time"

	"framelight/database"
	"framelight/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoLeadRepo implements LeadRepository using MongoDB. The unique index on
// session_id plus a single upsert per merge is what serializes concurrent
// writers for one session: two overlapping turns can never insert two lead
// documents, the slower one lands on the document the faster one created.
type MongoLeadRepo struct {
	coll *mongo.Collection
}

// NewMongoLeadRepo creates a new instance of LeadRepository using MongoDB.
func NewMongoLeadRepo(db *database.Handle) LeadRepository {
	repo := &MongoLeadRepo{coll: db.Collection("leads")}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create lead indexes: %v\n", err)
	}
	return repo
}

func (r *MongoLeadRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "session_id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// FindBySession retrieves the lead for a session, or nil when none exists.
func (r *MongoLeadRepo) FindBySession(ctx context.Context, sessionID string) (*models.Lead, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var lead models.Lead
	if err := r.coll.FindOne(ctx, bson.M{"session_id": sessionID}).Decode(&lead); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch lead for session %s: %w", sessionID, err)
	}
	return &lead, nil
}

// Upsert merges the supplied fields into the session's lead.
func (r *MongoLeadRepo) Upsert(ctx context.Context, sessionID string, fields models.LeadFields) (*models.Lead, models.LeadEvent, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	existing, err := r.FindBySession(ctx, sessionID)
	if err != nil {
		return nil, models.LeadUnchanged, err
	}

	changes := FieldChanges(existing, fields)
	if len(changes) == 0 {
		return existing, models.LeadUnchanged, nil
	}

	now := time.Now().UTC()
	set := bson.M{"updated_at": now}
	for key, value := range changes {
		set[key] = value
	}
	if existing != nil {
		set["status"] = models.LeadStatusUpdated
	}

	update := bson.M{
		"$set": set,
		"$setOnInsert": bson.M{
			"session_id": sessionID,
			"status":     models.LeadStatusNew,
			"created_at": now,
		},
	}

	res, err := r.coll.UpdateOne(ctx, bson.M{"session_id": sessionID}, update, options.Update().SetUpsert(true))
	if err != nil && mongo.IsDuplicateKeyError(err) {
		// Two turns raced to create the lead and the other one won the
		// insert. Replay the merge against the now-existing document.
		res, err = r.coll.UpdateOne(ctx, bson.M{"session_id": sessionID}, update)
	}
	if err != nil {
		return nil, models.LeadUnchanged, fmt.Errorf("failed to upsert lead for session %s: %w", sessionID, err)
	}

	lead, err := r.FindBySession(ctx, sessionID)
	if err != nil {
		return nil, models.LeadUnchanged, err
	}
	if res.UpsertedCount > 0 {
		return lead, models.LeadCreated, nil
	}
	return lead, models.LeadUpdated, nil
}

// List returns all captured leads, newest first.
func (r *MongoLeadRepo) List(ctx context.Context) ([]models.Lead, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve leads: %w", err)
	}
	defer cursor.Close(ctx)

	leads := []models.Lead{}
	for cursor.Next(ctx) {
		var l models.Lead
		if err := cursor.Decode(&l); err != nil {
			return nil, fmt.Errorf("failed to decode lead: %w", err)
		}
		leads = append(leads, l)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("failed to read leads: %w", err)
	}
	return leads, nil
}
