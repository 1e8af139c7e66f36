package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Product struct {
	ID               primitive.ObjectID     `json:"id" bson:"_id,omitempty"`
	Name             string                 `json:"name" bson:"name"`
	Slug             string                 `json:"slug" bson:"slug"`
	Description      string                 `json:"description" bson:"description"`
	ShortDescription string                 `json:"shortDescription,omitempty" bson:"shortDescription,omitempty"`
	Price            float64                `json:"price" bson:"price"`
	OriginalPrice    *float64               `json:"originalPrice,omitempty" bson:"originalPrice,omitempty"`
	Category         string                 `json:"category" bson:"category"`
	Subcategory      string                 `json:"subcategory,omitempty" bson:"subcategory,omitempty"`
	Brand            string                 `json:"brand" bson:"brand"`
	SKU              string                 `json:"sku" bson:"sku"`
	Images           []string               `json:"images" bson:"images"`
	Features         []string               `json:"features" bson:"features"`
	Specifications   map[string]interface{} `json:"specifications" bson:"specifications"`
	Rating           float64                `json:"rating" bson:"rating"`
	ReviewCount      int                    `json:"reviewCount" bson:"reviewCount"`
	InStock          bool                   `json:"inStock" bson:"inStock"`
	StockQuantity    int                    `json:"stockQuantity" bson:"stockQuantity"`
	Badge            string                 `json:"badge,omitempty" bson:"badge,omitempty"`
	AffiliateLink    string                 `json:"affiliateLink,omitempty" bson:"affiliateLink,omitempty"`
	CreatedAt        time.Time              `json:"createdAt" bson:"createdAt"`
	UpdatedAt        time.Time              `json:"updatedAt" bson:"updatedAt"`
}

// Discount returns the percentage saved against the original price, zero when
// the product is not discounted.
func (p Product) Discount() int {
	if p.OriginalPrice == nil || *p.OriginalPrice <= p.Price {
		return 0
	}
	return int((*p.OriginalPrice - p.Price) / *p.OriginalPrice * 100)
}
