package services

import (
	"context"
	"log"

	"shophub/models"
	"shophub/repositories"
	"shophub/utils"

	"go.mongodb.org/mongo-driver/bson"
)

type ProductService struct {
	productRepo *repositories.ProductRepository
	counts      CategoryCounter
}

func NewProductService(productRepo *repositories.ProductRepository, counts CategoryCounter) *ProductService {
	return &ProductService{productRepo: productRepo, counts: counts}
}

func (s *ProductService) refreshCategoryCounts(ctx context.Context, category string) {
	if s.counts == nil || category == "" {
		return
	}
	if err := s.counts.RefreshCounts(ctx, category); err != nil {
		log.Printf("Failed to refresh counts for category %s: %v", category, err)
	}
}

func (s *ProductService) List(ctx context.Context, opts repositories.ProductListOptions) ([]models.Product, error) {
	return s.productRepo.List(ctx, opts)
}

func (s *ProductService) Deals(ctx context.Context, limit int64) ([]models.Product, error) {
	return s.productRepo.Deals(ctx, limit)
}

func (s *ProductService) GetBySlug(ctx context.Context, slug string) (*models.Product, error) {
	return s.productRepo.GetBySlug(ctx, slug)
}

func (s *ProductService) Create(ctx context.Context, req *models.CreateProductRequest) (*models.Product, error) {
	slug := req.Slug
	if slug == "" {
		slug = utils.Slugify(req.Name)
	}

	product := &models.Product{
		Name:             req.Name,
		Slug:             slug,
		Description:      req.Description,
		ShortDescription: req.ShortDescription,
		Price:            req.Price,
		OriginalPrice:    req.OriginalPrice,
		Category:         req.Category,
		Subcategory:      req.Subcategory,
		Brand:            req.Brand,
		SKU:              req.SKU,
		Images:           req.Images,
		Features:         req.Features,
		Specifications:   req.Specifications,
		InStock:          req.InStock,
		StockQuantity:    req.StockQuantity,
		Badge:            req.Badge,
		AffiliateLink:    req.AffiliateLink,
	}
	if product.Images == nil {
		product.Images = []string{}
	}
	if product.Features == nil {
		product.Features = []string{}
	}
	if product.Specifications == nil {
		product.Specifications = map[string]interface{}{}
	}

	created, err := s.productRepo.Create(ctx, product)
	if err != nil {
		return nil, err
	}
	s.refreshCategoryCounts(ctx, created.Category)
	return created, nil
}

func (s *ProductService) Update(ctx context.Context, id string, req *models.UpdateProductRequest) (*models.Product, error) {
	patch := bson.M{}
	if req.Name != nil {
		patch["name"] = *req.Name
	}
	if req.Slug != nil {
		patch["slug"] = *req.Slug
	}
	if req.Description != nil {
		patch["description"] = *req.Description
	}
	if req.ShortDescription != nil {
		patch["shortDescription"] = *req.ShortDescription
	}
	if req.Price != nil {
		patch["price"] = *req.Price
	}
	if req.OriginalPrice != nil {
		patch["originalPrice"] = *req.OriginalPrice
	}
	if req.Category != nil {
		patch["category"] = *req.Category
	}
	if req.Subcategory != nil {
		patch["subcategory"] = *req.Subcategory
	}
	if req.Brand != nil {
		patch["brand"] = *req.Brand
	}
	if req.Images != nil {
		patch["images"] = *req.Images
	}
	if req.Features != nil {
		patch["features"] = *req.Features
	}
	if req.Specifications != nil {
		patch["specifications"] = *req.Specifications
	}
	if req.InStock != nil {
		patch["inStock"] = *req.InStock
	}
	if req.StockQuantity != nil {
		patch["stockQuantity"] = *req.StockQuantity
	}
	if req.Badge != nil {
		patch["badge"] = *req.Badge
	}
	if req.AffiliateLink != nil {
		patch["affiliateLink"] = *req.AffiliateLink
	}

	return s.productRepo.Update(ctx, id, patch)
}

func (s *ProductService) Delete(ctx context.Context, id string) (bool, error) {
	var category string
	if product, err := s.productRepo.GetByID(ctx, id); err == nil && product != nil {
		category = product.Category
	}

	deleted, err := s.productRepo.Delete(ctx, id)
	if err != nil {
		return false, err
	}
	if deleted {
		s.refreshCategoryCounts(ctx, category)
	}
	return deleted, nil
}
