package services

import (
	"context"

	"shophub/repositories"
	"shophub/utils"
)

// CategoryCounter refreshes a category's denormalized counters after a post
// or product mutation. Services hold it nilable; a nil counter disables the
// refresh.
type CategoryCounter interface {
	RefreshCounts(ctx context.Context, categoryName string) error
}

type CategoryService struct {
	categoryRepo *repositories.CategoryRepository
	postRepo     *repositories.PostRepository
	productRepo  *repositories.ProductRepository
}

func NewCategoryService(
	categoryRepo *repositories.CategoryRepository,
	postRepo *repositories.PostRepository,
	productRepo *repositories.ProductRepository,
) *CategoryService {
	return &CategoryService{
		categoryRepo: categoryRepo,
		postRepo:     postRepo,
		productRepo:  productRepo,
	}
}

// RefreshCounts recounts posts and products carrying the category name and
// stores the totals on the category document, keyed by the slug of the name.
func (s *CategoryService) RefreshCounts(ctx context.Context, categoryName string) error {
	if categoryName == "" {
		return nil
	}

	postCount, err := s.postRepo.CountByCategory(ctx, categoryName)
	if err != nil {
		return err
	}
	productCount, err := s.productRepo.CountByCategory(ctx, categoryName)
	if err != nil {
		return err
	}

	return s.categoryRepo.SetCounts(ctx, utils.Slugify(categoryName), int(productCount), int(postCount))
}
