package services

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"shophub/models"
	"shophub/repositories"
	"shophub/utils"

	"go.mongodb.org/mongo-driver/bson"
)

// PostStore is the slice of the post repository the service depends on.
// Satisfied by *repositories.PostRepository; tests swap in a fake.
type PostStore interface {
	List(ctx context.Context, opts repositories.PostListOptions) ([]models.Post, error)
	GetByID(ctx context.Context, id string) (*models.Post, error)
	GetBySlug(ctx context.Context, slug string) (*models.Post, error)
	Create(ctx context.Context, post *models.Post) (*models.Post, error)
	Update(ctx context.Context, id string, patch bson.M) (*models.Post, error)
	Delete(ctx context.Context, id string) (bool, error)
	Stats(ctx context.Context) (*models.PostStats, error)
}

type PostService struct {
	postRepo PostStore
	counts   CategoryCounter
}

func NewPostService(postRepo PostStore, counts CategoryCounter) *PostService {
	return &PostService{postRepo: postRepo, counts: counts}
}

// Count refresh failures never fail the mutation that triggered them.
func (s *PostService) refreshCategoryCounts(ctx context.Context, category string) {
	if s.counts == nil || category == "" {
		return
	}
	if err := s.counts.RefreshCounts(ctx, category); err != nil {
		log.Printf("Failed to refresh counts for category %s: %v", category, err)
	}
}

func (s *PostService) List(ctx context.Context, opts repositories.PostListOptions) ([]models.Post, error) {
	return s.postRepo.List(ctx, opts)
}

func (s *PostService) Get(ctx context.Context, id string) (*models.Post, error) {
	return s.postRepo.GetByID(ctx, id)
}

func (s *PostService) GetBySlug(ctx context.Context, slug string) (*models.Post, error) {
	return s.postRepo.GetBySlug(ctx, slug)
}

// requiredPostFields in the order they are reported back on validation
// failure.
var requiredPostFields = []string{"title", "slug", "excerpt", "content", "category", "image", "author"}

// Validate returns the list of required fields missing from the payload. The
// slug is derived from the title first, so a payload with a title but no slug
// is valid.
func (s *PostService) Validate(req *models.CreatePostRequest) []string {
	if req.Slug == "" && req.Title != "" {
		req.Slug = utils.Slugify(req.Title)
	}

	present := map[string]bool{
		"title":    req.Title != "",
		"slug":     req.Slug != "",
		"excerpt":  req.Excerpt != "",
		"content":  req.Content != "",
		"category": req.Category != "",
		"image":    req.Image != "",
		"author":   req.Author.Name != "",
	}

	missing := []string{}
	for _, field := range requiredPostFields {
		if !present[field] {
			missing = append(missing, field)
		}
	}
	return missing
}

func (s *PostService) Create(ctx context.Context, req *models.CreatePostRequest) (*models.Post, error) {
	post := &models.Post{
		Title:          req.Title,
		Slug:           req.Slug,
		Excerpt:        req.Excerpt,
		Content:        req.Content,
		Category:       req.Category,
		Image:          req.Image,
		Author:         req.Author,
		Products:       req.Products,
		Featured:       req.Featured,
		Tags:           req.Tags,
		SEOTitle:       req.SEOTitle,
		SEODescription: req.SEODescription,
		PublishedAt:    req.PublishedAt,
	}
	if post.Products == nil {
		post.Products = []models.RelatedProduct{}
	}
	if post.Tags == nil {
		post.Tags = []string{}
	}

	created, err := s.postRepo.Create(ctx, post)
	if err != nil {
		return nil, err
	}
	s.refreshCategoryCounts(ctx, created.Category)
	return created, nil
}

func (s *PostService) Update(ctx context.Context, id string, req *models.UpdatePostRequest) (*models.Post, error) {
	patch := bson.M{}
	if req.Title != nil {
		patch["title"] = *req.Title
	}
	if req.Slug != nil {
		patch["slug"] = *req.Slug
	}
	if req.Excerpt != nil {
		patch["excerpt"] = *req.Excerpt
	}
	if req.Content != nil {
		patch["content"] = *req.Content
	}
	if req.Category != nil {
		patch["category"] = *req.Category
	}
	if req.Image != nil {
		patch["image"] = *req.Image
	}
	if req.Author != nil {
		patch["author"] = *req.Author
	}
	if req.Products != nil {
		patch["products"] = *req.Products
	}
	if req.Featured != nil {
		patch["featured"] = *req.Featured
	}
	if req.Tags != nil {
		patch["tags"] = *req.Tags
	}
	if req.SEOTitle != nil {
		patch["seoTitle"] = *req.SEOTitle
	}
	if req.SEODescription != nil {
		patch["seoDescription"] = *req.SEODescription
	}
	if len(req.PublishedAt) > 0 {
		if string(req.PublishedAt) == "null" {
			patch["publishedAt"] = nil
		} else {
			var publishedAt time.Time
			if err := json.Unmarshal(req.PublishedAt, &publishedAt); err != nil {
				return nil, err
			}
			patch["publishedAt"] = publishedAt
		}
	}

	return s.postRepo.Update(ctx, id, patch)
}

func (s *PostService) Delete(ctx context.Context, id string) (bool, error) {
	var category string
	if post, err := s.postRepo.GetByID(ctx, id); err == nil && post != nil {
		category = post.Category
	}

	deleted, err := s.postRepo.Delete(ctx, id)
	if err != nil {
		return false, err
	}
	if deleted {
		s.refreshCategoryCounts(ctx, category)
	}
	return deleted, nil
}

func (s *PostService) Stats(ctx context.Context) (*models.PostStats, error) {
	return s.postRepo.Stats(ctx)
}
