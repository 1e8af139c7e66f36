package repositories

import (
	"context"
	"errors"
	"time"

	"shophub/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type NewsletterRepository struct {
	collection *mongo.Collection
}

func NewNewsletterRepository(db *mongo.Database) *NewsletterRepository {
	return &NewsletterRepository{collection: db.Collection("newsletter_subscribers")}
}

func (r *NewsletterRepository) GetByEmail(ctx context.Context, email string) (*models.Subscriber, error) {
	var sub models.Subscriber
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&sub)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

// Subscribe upserts by email. Subscribing an address that previously
// unsubscribed reactivates it and clears the unsubscribe timestamp.
func (r *NewsletterRepository) Subscribe(ctx context.Context, email, name string, prefs models.SubscriberPreferences) (*models.Subscriber, error) {
	update := bson.M{
		"$set": bson.M{
			"status":      models.SubscriberActive,
			"preferences": prefs,
		},
		"$unset":       bson.M{"unsubscribedAt": ""},
		"$setOnInsert": bson.M{"subscribedAt": time.Now()},
	}
	if name != "" {
		update["$set"].(bson.M)["name"] = name
	}

	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var sub models.Subscriber
	if err := r.collection.FindOneAndUpdate(ctx, bson.M{"email": email}, update, opts).Decode(&sub); err != nil {
		return nil, err
	}
	return &sub, nil
}

func (r *NewsletterRepository) Unsubscribe(ctx context.Context, email string) (bool, error) {
	now := time.Now()
	result, err := r.collection.UpdateOne(ctx, bson.M{"email": email}, bson.M{
		"$set": bson.M{"status": models.SubscriberUnsubscribed, "unsubscribedAt": now},
	})
	if err != nil {
		return false, err
	}
	return result.MatchedCount > 0, nil
}
