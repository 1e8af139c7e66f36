package storefront

import (
	"context"

	"shophub/models"
	"shophub/repositories"
)

// StoreProvider serves storefront content straight from the database.
type StoreProvider struct {
	postRepo     *repositories.PostRepository
	productRepo  *repositories.ProductRepository
	reviewRepo   *repositories.ReviewRepository
	categoryRepo *repositories.CategoryRepository
}

func NewStoreProvider(
	postRepo *repositories.PostRepository,
	productRepo *repositories.ProductRepository,
	reviewRepo *repositories.ReviewRepository,
	categoryRepo *repositories.CategoryRepository,
) *StoreProvider {
	return &StoreProvider{
		postRepo:     postRepo,
		productRepo:  productRepo,
		reviewRepo:   reviewRepo,
		categoryRepo: categoryRepo,
	}
}

func (p *StoreProvider) FeaturedPosts(ctx context.Context, limit int64) ([]models.Post, error) {
	featured := true
	return p.postRepo.List(ctx, repositories.PostListOptions{Featured: &featured, Limit: limit})
}

func (p *StoreProvider) Posts(ctx context.Context, category string) ([]models.Post, error) {
	return p.postRepo.List(ctx, repositories.PostListOptions{Category: category})
}

func (p *StoreProvider) PostBySlug(ctx context.Context, slug string) (*models.Post, error) {
	return p.postRepo.GetBySlug(ctx, slug)
}

func (p *StoreProvider) Guides(ctx context.Context) ([]models.Post, error) {
	return p.postRepo.List(ctx, repositories.PostListOptions{Category: "Buying Guides"})
}

func (p *StoreProvider) FeaturedProducts(ctx context.Context, limit int64) ([]models.Product, error) {
	return p.productRepo.List(ctx, repositories.ProductListOptions{SortBy: "rating", Limit: limit})
}

func (p *StoreProvider) Products(ctx context.Context, category string) ([]models.Product, error) {
	return p.productRepo.List(ctx, repositories.ProductListOptions{Category: category})
}

func (p *StoreProvider) ProductBySlug(ctx context.Context, slug string) (*models.Product, error) {
	return p.productRepo.GetBySlug(ctx, slug)
}

func (p *StoreProvider) Deals(ctx context.Context) ([]models.Product, error) {
	return p.productRepo.Deals(ctx, 0)
}

func (p *StoreProvider) Categories(ctx context.Context) ([]models.Category, error) {
	return p.categoryRepo.ListActive(ctx)
}

func (p *StoreProvider) CategoryBySlug(ctx context.Context, slug string) (*models.Category, error) {
	return p.categoryRepo.GetBySlug(ctx, slug)
}

func (p *StoreProvider) ReviewsForProduct(ctx context.Context, slug string) ([]models.Review, error) {
	product, err := p.productRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	return p.reviewRepo.ListByProduct(ctx, product.ID)
}
