package services

import (
	"context"
	"log"

	"shophub/models"
	"shophub/repositories"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ReviewService struct {
	reviewRepo  *repositories.ReviewRepository
	productRepo *repositories.ProductRepository
}

func NewReviewService(reviewRepo *repositories.ReviewRepository, productRepo *repositories.ProductRepository) *ReviewService {
	return &ReviewService{reviewRepo: reviewRepo, productRepo: productRepo}
}

func (s *ReviewService) ListForProduct(ctx context.Context, productSlug string) ([]models.Review, error) {
	product, err := s.productRepo.GetBySlug(ctx, productSlug)
	if err != nil {
		return nil, err
	}
	return s.reviewRepo.ListByProduct(ctx, product.ID)
}

// Create stores the review and refreshes the product's denormalized rating
// and review count. A failure on the refresh is logged, not surfaced: the
// review itself was saved.
func (s *ReviewService) Create(ctx context.Context, productSlug string, req *models.CreateReviewRequest) (*models.Review, error) {
	product, err := s.productRepo.GetBySlug(ctx, productSlug)
	if err != nil {
		return nil, err
	}

	review := &models.Review{
		ProductID: product.ID,
		UserName:  req.UserName,
		Rating:    req.Rating,
		Title:     req.Title,
		Comment:   req.Comment,
		Images:    req.Images,
	}

	created, err := s.reviewRepo.Create(ctx, review)
	if err != nil {
		return nil, err
	}

	if err := s.refreshProductRating(ctx, product.ID); err != nil {
		log.Printf("Failed to refresh rating for product %s: %v", product.ID.Hex(), err)
	}
	return created, nil
}

func (s *ReviewService) MarkHelpful(ctx context.Context, reviewID string, helpful bool) (bool, error) {
	return s.reviewRepo.MarkHelpful(ctx, reviewID, helpful)
}

func (s *ReviewService) refreshProductRating(ctx context.Context, productID primitive.ObjectID) error {
	rating, count, err := s.reviewRepo.AverageRating(ctx, productID)
	if err != nil {
		return err
	}
	return s.productRepo.UpdateRating(ctx, productID, rating, count)
}
