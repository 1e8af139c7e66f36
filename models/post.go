package models

import (
	"html/template"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Post category labels shown in the admin form.
var PostCategories = []string{
	"Product Reviews",
	"Buying Guides",
	"How-To",
	"Deals & Offers",
	"Comparisons",
	"Industry News",
	"Tips & Tricks",
	"Unboxing",
}

type Author struct {
	Name   string `json:"name" bson:"name"`
	Avatar string `json:"avatar,omitempty" bson:"avatar,omitempty"`
}

// RelatedProduct is a denormalized copy of the product at the time of
// linking, not a live foreign key.
type RelatedProduct struct {
	ID    string  `json:"id" bson:"id"`
	Name  string  `json:"name" bson:"name"`
	Price float64 `json:"price" bson:"price"`
	Image string  `json:"image" bson:"image"`
	Link  string  `json:"link" bson:"link"`
}

type Post struct {
	ID             primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Title          string             `json:"title" bson:"title"`
	Slug           string             `json:"slug" bson:"slug"`
	Excerpt        string             `json:"excerpt" bson:"excerpt"`
	Content        string             `json:"content" bson:"content"`
	Category       string             `json:"category" bson:"category"`
	Image          string             `json:"image" bson:"image"`
	Author         Author             `json:"author" bson:"author"`
	Products       []RelatedProduct   `json:"products" bson:"products"`
	Featured       bool               `json:"featured" bson:"featured"`
	Tags           []string           `json:"tags" bson:"tags"`
	SEOTitle       string             `json:"seoTitle,omitempty" bson:"seoTitle,omitempty"`
	SEODescription string             `json:"seoDescription,omitempty" bson:"seoDescription,omitempty"`
	PublishedAt    *time.Time         `json:"publishedAt,omitempty" bson:"publishedAt,omitempty"`
	CreatedAt      time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt      time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// IsPublished reports whether the post carries a publish timestamp. There is
// no status enum; a draft is simply a post without publishedAt.
func (p *Post) IsPublished() bool {
	return p.PublishedAt != nil
}

// HTMLContent marks the stored body as pre-rendered HTML for templates.
// Post bodies are authored by admins only, never by visitors.
func (p Post) HTMLContent() template.HTML {
	return template.HTML(p.Content)
}

type PostStats struct {
	Total      int64            `json:"total"`
	Published  int64            `json:"published"`
	Featured   int64            `json:"featured"`
	ByCategory map[string]int64 `json:"byCategory"`
}
