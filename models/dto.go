package models

import (
	"encoding/json"
	"time"
)

type CreatePostRequest struct {
	Title          string           `json:"title"`
	Slug           string           `json:"slug"`
	Excerpt        string           `json:"excerpt"`
	Content        string           `json:"content"`
	Category       string           `json:"category"`
	Image          string           `json:"image"`
	Author         Author           `json:"author"`
	Products       []RelatedProduct `json:"products"`
	Featured       bool             `json:"featured"`
	Tags           []string         `json:"tags"`
	SEOTitle       string           `json:"seoTitle"`
	SEODescription string           `json:"seoDescription"`
	PublishedAt    *time.Time       `json:"publishedAt"`
}

// UpdatePostRequest carries a partial patch; nil means "leave unchanged".
// PublishedAt is raw JSON so that an explicit null (unpublish) can be told
// apart from an absent field.
type UpdatePostRequest struct {
	Title          *string           `json:"title"`
	Slug           *string           `json:"slug"`
	Excerpt        *string           `json:"excerpt"`
	Content        *string           `json:"content"`
	Category       *string           `json:"category"`
	Image          *string           `json:"image"`
	Author         *Author           `json:"author"`
	Products       *[]RelatedProduct `json:"products"`
	Featured       *bool             `json:"featured"`
	Tags           *[]string         `json:"tags"`
	SEOTitle       *string           `json:"seoTitle"`
	SEODescription *string           `json:"seoDescription"`
	PublishedAt    json.RawMessage   `json:"publishedAt"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token string    `json:"token"`
	User  AdminUser `json:"user"`
}

type SubscribeRequest struct {
	Email       string                 `json:"email" binding:"required,email"`
	Name        string                 `json:"name"`
	Preferences *SubscriberPreferences `json:"preferences"`
}

type UnsubscribeRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type CreateReviewRequest struct {
	UserName string   `json:"userName" binding:"required"`
	Rating   int      `json:"rating" binding:"required,min=1,max=5"`
	Title    string   `json:"title" binding:"required"`
	Comment  string   `json:"comment" binding:"required"`
	Images   []string `json:"images"`
}

type CreateProductRequest struct {
	Name             string                 `json:"name" binding:"required"`
	Slug             string                 `json:"slug"`
	Description      string                 `json:"description" binding:"required"`
	ShortDescription string                 `json:"shortDescription"`
	Price            float64                `json:"price" binding:"required"`
	OriginalPrice    *float64               `json:"originalPrice"`
	Category         string                 `json:"category" binding:"required"`
	Subcategory      string                 `json:"subcategory"`
	Brand            string                 `json:"brand" binding:"required"`
	SKU              string                 `json:"sku" binding:"required"`
	Images           []string               `json:"images"`
	Features         []string               `json:"features"`
	Specifications   map[string]interface{} `json:"specifications"`
	InStock          bool                   `json:"inStock"`
	StockQuantity    int                    `json:"stockQuantity"`
	Badge            string                 `json:"badge"`
	AffiliateLink    string                 `json:"affiliateLink"`
}

type UpdateProductRequest struct {
	Name             *string                 `json:"name"`
	Slug             *string                 `json:"slug"`
	Description      *string                 `json:"description"`
	ShortDescription *string                 `json:"shortDescription"`
	Price            *float64                `json:"price"`
	OriginalPrice    *float64                `json:"originalPrice"`
	Category         *string                 `json:"category"`
	Subcategory      *string                 `json:"subcategory"`
	Brand            *string                 `json:"brand"`
	Images           *[]string               `json:"images"`
	Features         *[]string               `json:"features"`
	Specifications   *map[string]interface{} `json:"specifications"`
	InStock          *bool                   `json:"inStock"`
	StockQuantity    *int                    `json:"stockQuantity"`
	Badge            *string                 `json:"badge"`
	AffiliateLink    *string                 `json:"affiliateLink"`
}

type DescriptionRequest struct {
	ProductName string   `json:"productName" binding:"required"`
	Features    []string `json:"features"`
	Category    string   `json:"category"`
}

type OutlineRequest struct {
	Topic    string   `json:"topic" binding:"required"`
	Products []string `json:"products"`
	Keywords []string `json:"keywords"`
}

type MetaDescriptionRequest struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content" binding:"required"`
}

type ComparisonProduct struct {
	Name     string   `json:"name"`
	Features []string `json:"features"`
	Price    float64  `json:"price"`
}

type ComparisonRequest struct {
	Products []ComparisonProduct `json:"products" binding:"required,min=2"`
}

type BuyingGuideRequest struct {
	Category   string   `json:"category" binding:"required"`
	PriceRange string   `json:"priceRange"`
	KeyFactors []string `json:"keyFactors"`
}

type ReviewSummaryRequest struct {
	Reviews []ReviewInput `json:"reviews" binding:"required,min=1"`
}

type ReviewInput struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

type ReviewSummary struct {
	Summary string   `json:"summary"`
	Pros    []string `json:"pros"`
	Cons    []string `json:"cons"`
}
