package repositories

import (
	"context"
	"errors"
	"time"

	"shophub/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type UserRepository struct {
	collection *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{collection: db.Collection("admin_users")}
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.AdminUser, error) {
	var user models.AdminUser
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Seed inserts the admin account from the environment if it does not exist
// yet. Called once at startup.
func (r *UserRepository) Seed(ctx context.Context, email, passwordHash string) error {
	if _, err := r.FindByEmail(ctx, email); err == nil {
		return nil
	} else if !errors.Is(err, ErrNotFound) {
		return err
	}

	now := time.Now()
	_, err := r.collection.InsertOne(ctx, models.AdminUser{
		Email:     email,
		Password:  passwordHash,
		Role:      "admin",
		CreatedAt: now,
		UpdatedAt: now,
	})
	return err
}
