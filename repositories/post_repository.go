package repositories

import (
	"context"
	"errors"
	"time"

	"shophub/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type PostListOptions struct {
	Category  string
	Featured  *bool
	Limit     int64
	Skip      int64
	SortBy    string
	SortOrder string
}

type PostRepository struct {
	collection *mongo.Collection
}

func NewPostRepository(db *mongo.Database) *PostRepository {
	return &PostRepository{collection: db.Collection("posts")}
}

func (r *PostRepository) List(ctx context.Context, opts PostListOptions) ([]models.Post, error) {
	filter := bson.M{}
	if opts.Category != "" {
		filter["category"] = opts.Category
	}
	if opts.Featured != nil {
		filter["featured"] = *opts.Featured
	}

	sortBy := opts.SortBy
	if sortBy == "" {
		sortBy = "createdAt"
	}
	order := -1
	if opts.SortOrder == "asc" {
		order = 1
	}

	findOpts := options.Find().SetSort(bson.D{{Key: sortBy, Value: order}})
	if opts.Limit > 0 {
		findOpts.SetLimit(opts.Limit)
	}
	if opts.Skip > 0 {
		findOpts.SetSkip(opts.Skip)
	}

	cursor, err := r.collection.Find(ctx, filter, findOpts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	posts := []models.Post{}
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *PostRepository) GetByID(ctx context.Context, id string) (*models.Post, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	var post models.Post
	err = r.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&post)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *PostRepository) GetBySlug(ctx context.Context, slug string) (*models.Post, error) {
	var post models.Post
	err := r.collection.FindOne(ctx, bson.M{"slug": slug}).Decode(&post)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// Create persists a new post, stamping creation and update times. Slug
// uniqueness is not pre-checked here; the unique index on slug is the
// enforcement point and a duplicate surfaces as a write error.
func (r *PostRepository) Create(ctx context.Context, post *models.Post) (*models.Post, error) {
	now := time.Now()
	post.ID = primitive.NilObjectID
	post.CreatedAt = now
	post.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, post)
	if err != nil {
		return nil, err
	}

	post.ID = result.InsertedID.(primitive.ObjectID)
	return post, nil
}

// Update applies a partial patch, refreshing updatedAt. The _id field is
// stripped from the patch before applying: the identifier is immutable.
func (r *PostRepository) Update(ctx context.Context, id string, patch bson.M) (*models.Post, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	delete(patch, "_id")
	delete(patch, "id")
	patch["updatedAt"] = time.Now()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated models.Post
	err = r.collection.FindOneAndUpdate(ctx, bson.M{"_id": objectID}, bson.M{"$set": patch}, opts).Decode(&updated)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (r *PostRepository) Delete(ctx context.Context, id string) (bool, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, nil
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return false, err
	}
	return result.DeletedCount > 0, nil
}

func (r *PostRepository) CountByCategory(ctx context.Context, category string) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{"category": category})
}

// Stats aggregates counts for the admin dashboard: total, published
// (publishedAt present and non-null), featured, and per-category totals.
func (r *PostRepository) Stats(ctx context.Context) (*models.PostStats, error) {
	total, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, err
	}

	published, err := r.collection.CountDocuments(ctx, bson.M{"publishedAt": bson.M{"$ne": nil}})
	if err != nil {
		return nil, err
	}

	featured, err := r.collection.CountDocuments(ctx, bson.M{"featured": true})
	if err != nil {
		return nil, err
	}

	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{"_id": "$category", "count": bson.M{"$sum": 1}}}},
	}
	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	byCategory := map[string]int64{}
	for cursor.Next(ctx) {
		var row struct {
			Category string `bson:"_id"`
			Count    int64  `bson:"count"`
		}
		if err := cursor.Decode(&row); err != nil {
			return nil, err
		}
		byCategory[row.Category] = row.Count
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}

	return &models.PostStats{
		Total:      total,
		Published:  published,
		Featured:   featured,
		ByCategory: byCategory,
	}, nil
}
