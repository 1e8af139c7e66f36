package storefront

import (
	"context"

	"shophub/models"
)

// ContentProvider feeds the storefront pages. Two implementations exist: a
// static demo catalog and the database-backed catalog. Pages are written
// against this interface only; CONTENT_SOURCE picks the implementation at
// startup.
type ContentProvider interface {
	FeaturedPosts(ctx context.Context, limit int64) ([]models.Post, error)
	Posts(ctx context.Context, category string) ([]models.Post, error)
	PostBySlug(ctx context.Context, slug string) (*models.Post, error)
	Guides(ctx context.Context) ([]models.Post, error)

	FeaturedProducts(ctx context.Context, limit int64) ([]models.Product, error)
	Products(ctx context.Context, category string) ([]models.Product, error)
	ProductBySlug(ctx context.Context, slug string) (*models.Product, error)
	Deals(ctx context.Context) ([]models.Product, error)

	Categories(ctx context.Context) ([]models.Category, error)
	CategoryBySlug(ctx context.Context, slug string) (*models.Category, error)
	ReviewsForProduct(ctx context.Context, slug string) ([]models.Review, error)
}
