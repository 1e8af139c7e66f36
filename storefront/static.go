package storefront

import (
	"context"
	"time"

	"shophub/models"
	"shophub/repositories"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// StaticProvider serves the built-in demo catalog. It lets the storefront run
// without a database, for local development and demos.
type StaticProvider struct {
	posts      []models.Post
	products   []models.Product
	reviews    []models.Review
	categories []models.Category
}

func NewStaticProvider() *StaticProvider {
	return &StaticProvider{
		posts:      demoPosts,
		products:   demoProducts,
		reviews:    demoReviews,
		categories: demoCategories,
	}
}

func (p *StaticProvider) FeaturedPosts(ctx context.Context, limit int64) ([]models.Post, error) {
	featured := []models.Post{}
	for _, post := range p.posts {
		if post.Featured {
			featured = append(featured, post)
		}
		if limit > 0 && int64(len(featured)) == limit {
			break
		}
	}
	return featured, nil
}

func (p *StaticProvider) Posts(ctx context.Context, category string) ([]models.Post, error) {
	if category == "" {
		return p.posts, nil
	}
	matched := []models.Post{}
	for _, post := range p.posts {
		if post.Category == category {
			matched = append(matched, post)
		}
	}
	return matched, nil
}

func (p *StaticProvider) PostBySlug(ctx context.Context, slug string) (*models.Post, error) {
	for i := range p.posts {
		if p.posts[i].Slug == slug {
			return &p.posts[i], nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (p *StaticProvider) Guides(ctx context.Context) ([]models.Post, error) {
	return p.Posts(ctx, "Buying Guides")
}

func (p *StaticProvider) FeaturedProducts(ctx context.Context, limit int64) ([]models.Product, error) {
	if limit > 0 && int64(len(p.products)) > limit {
		return p.products[:limit], nil
	}
	return p.products, nil
}

func (p *StaticProvider) Products(ctx context.Context, category string) ([]models.Product, error) {
	if category == "" {
		return p.products, nil
	}
	matched := []models.Product{}
	for _, product := range p.products {
		if product.Category == category {
			matched = append(matched, product)
		}
	}
	return matched, nil
}

func (p *StaticProvider) ProductBySlug(ctx context.Context, slug string) (*models.Product, error) {
	for i := range p.products {
		if p.products[i].Slug == slug {
			return &p.products[i], nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (p *StaticProvider) Deals(ctx context.Context) ([]models.Product, error) {
	deals := []models.Product{}
	for _, product := range p.products {
		if product.OriginalPrice != nil && *product.OriginalPrice > product.Price {
			deals = append(deals, product)
		}
	}
	return deals, nil
}

func (p *StaticProvider) Categories(ctx context.Context) ([]models.Category, error) {
	return p.categories, nil
}

func (p *StaticProvider) CategoryBySlug(ctx context.Context, slug string) (*models.Category, error) {
	for i := range p.categories {
		if p.categories[i].Slug == slug {
			return &p.categories[i], nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (p *StaticProvider) ReviewsForProduct(ctx context.Context, slug string) ([]models.Review, error) {
	product, err := p.ProductBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	matched := []models.Review{}
	for _, review := range p.reviews {
		if review.ProductID == product.ID {
			matched = append(matched, review)
		}
	}
	return matched, nil
}

func mustID(hex string) primitive.ObjectID {
	id, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		panic(err)
	}
	return id
}

func price(v float64) *float64 { return &v }

func at(value string) *time.Time {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return &t
}

var demoPosts = []models.Post{
	{
		ID:          mustID("665000000000000000000001"),
		Title:       "10 Must-Have Kitchen Gadgets That Will Change Your Cooking",
		Slug:        "10-must-have-kitchen-gadgets-that-will-change-your-cooking",
		Excerpt:     "Discover the innovative kitchen tools that professional chefs swear by. From smart scales to precision thermometers, these gadgets will elevate your culinary game.",
		Content:     "<p>Professional kitchens run on precision, and the right tools bring that precision home...</p>",
		Category:    "Product Reviews",
		Image:       "https://images.unsplash.com/photo-1556911220-bff31c812dba?w=800&h=500&fit=crop",
		Author:      models.Author{Name: "Sarah Johnson"},
		Products:    []models.RelatedProduct{},
		Featured:    true,
		Tags:        []string{"kitchen", "gadgets", "cooking"},
		PublishedAt: at("2024-12-10"),
		CreatedAt:   *at("2024-12-10"),
		UpdatedAt:   *at("2024-12-10"),
	},
	{
		ID:          mustID("665000000000000000000002"),
		Title:       "The Ultimate Guide to Sustainable Fashion in 2024",
		Slug:        "the-ultimate-guide-to-sustainable-fashion-in-2024",
		Excerpt:     "Learn how to build a sustainable wardrobe without breaking the bank. We review eco-friendly brands and share tips for conscious shopping.",
		Content:     "<p>Fast fashion has a cost the price tag never shows...</p>",
		Category:    "Buying Guides",
		Image:       "https://images.unsplash.com/photo-1445205170230-053b83016050?w=800&h=500&fit=crop",
		Author:      models.Author{Name: "Michael Chen"},
		Products:    []models.RelatedProduct{},
		Featured:    true,
		Tags:        []string{"fashion", "sustainability"},
		PublishedAt: at("2024-12-08"),
		CreatedAt:   *at("2024-12-08"),
		UpdatedAt:   *at("2024-12-08"),
	},
	{
		ID:          mustID("665000000000000000000003"),
		Title:       "Best Smart Home Devices for Beginners: A Complete Setup Guide",
		Slug:        "best-smart-home-devices-for-beginners-a-complete-setup-guide",
		Excerpt:     "Starting your smart home journey? This comprehensive guide covers the essential devices, setup tips, and automation ideas for your first smart home.",
		Content:     "<p>A smart home does not need to start with a full rewiring project...</p>",
		Category:    "How-To",
		Image:       "https://images.unsplash.com/photo-1558002038-1055907df827?w=800&h=500&fit=crop",
		Author:      models.Author{Name: "David Park"},
		Products:    []models.RelatedProduct{},
		Featured:    true,
		Tags:        []string{"smart home", "automation"},
		PublishedAt: at("2024-12-05"),
		CreatedAt:   *at("2024-12-05"),
		UpdatedAt:   *at("2024-12-05"),
	},
	{
		ID:          mustID("665000000000000000000004"),
		Title:       "Skincare Routine Essentials: Dermatologist-Approved Products",
		Slug:        "skincare-routine-essentials-dermatologist-approved-products",
		Excerpt:     "Build an effective skincare routine with these expert-recommended products. We break down each step and review the best options for every skin type.",
		Content:     "<p>A routine only works if you stick to it, so start simple...</p>",
		Category:    "Product Reviews",
		Image:       "https://images.unsplash.com/photo-1556228578-0d85b1a4d571?w=800&h=500&fit=crop",
		Author:      models.Author{Name: "Emma Williams"},
		Products:    []models.RelatedProduct{},
		Tags:        []string{"skincare", "beauty"},
		PublishedAt: at("2024-12-03"),
		CreatedAt:   *at("2024-12-03"),
		UpdatedAt:   *at("2024-12-03"),
	},
	{
		ID:          mustID("665000000000000000000005"),
		Title:       "Work From Home Setup: Ergonomic Essentials Under $500",
		Slug:        "work-from-home-setup-ergonomic-essentials-under-500",
		Excerpt:     "Create a productive and comfortable home office without overspending. Our budget-friendly guide features ergonomic chairs, desks, and accessories.",
		Content:     "<p>Your back will thank you long before your wallet notices...</p>",
		Category:    "Buying Guides",
		Image:       "https://images.unsplash.com/photo-1593062096033-9a26b09da705?w=800&h=500&fit=crop",
		Author:      models.Author{Name: "James Taylor"},
		Products:    []models.RelatedProduct{},
		Tags:        []string{"office", "ergonomics"},
		PublishedAt: at("2024-12-01"),
		CreatedAt:   *at("2024-12-01"),
		UpdatedAt:   *at("2024-12-01"),
	},
	{
		ID:          mustID("665000000000000000000006"),
		Title:       "Fitness Gear Review: Top Equipment for Home Workouts",
		Slug:        "fitness-gear-review-top-equipment-for-home-workouts",
		Excerpt:     "Stay fit at home with these highly-rated fitness products. From resistance bands to smart yoga mats, we tested them all so you don't have to.",
		Content:     "<p>No gym membership required: the right gear turns any corner into a workout space...</p>",
		Category:    "Product Reviews",
		Image:       "https://images.unsplash.com/photo-1517836357463-d25dfeac3438?w=800&h=500&fit=crop",
		Author:      models.Author{Name: "Lisa Anderson"},
		Products:    []models.RelatedProduct{},
		Tags:        []string{"fitness", "home workout"},
		PublishedAt: at("2024-11-28"),
		CreatedAt:   *at("2024-11-28"),
		UpdatedAt:   *at("2024-11-28"),
	},
}

var demoProducts = []models.Product{
	{
		ID:            mustID("665100000000000000000001"),
		Name:          "Wireless Noise-Cancelling Headphones",
		Slug:          "wireless-noise-cancelling-headphones",
		Description:   "Premium over-ear headphones with adaptive noise cancellation and 30-hour battery life.",
		Price:         299.99,
		OriginalPrice: price(399.99),
		Category:      "Electronics",
		Brand:         "SoundCore",
		SKU:           "SH-ELEC-0001",
		Images:        []string{"https://images.unsplash.com/photo-1505740420928-5e560c06d30e?w=600&h=600&fit=crop"},
		Features:      []string{"Adaptive noise cancellation", "30-hour battery", "Multipoint Bluetooth"},
		Rating:        4.7,
		ReviewCount:   3,
		InStock:       true,
		StockQuantity: 42,
		Badge:         "Best Seller",
	},
	{
		ID:            mustID("665100000000000000000002"),
		Name:          "Smart Fitness Watch",
		Slug:          "smart-fitness-watch",
		Description:   "Fitness tracking watch with heart-rate monitoring, GPS and a week of battery.",
		Price:         199.99,
		OriginalPrice: price(249.99),
		Category:      "Electronics",
		Brand:         "PulseFit",
		SKU:           "SH-ELEC-0002",
		Images:        []string{"https://images.unsplash.com/photo-1523275335684-37898b6baf30?w=600&h=600&fit=crop"},
		Features:      []string{"Heart-rate monitoring", "Built-in GPS", "7-day battery"},
		Rating:        4.5,
		ReviewCount:   0,
		InStock:       true,
		StockQuantity: 18,
	},
	{
		ID:            mustID("665100000000000000000003"),
		Name:          "Ceramic Dinnerware Set",
		Slug:          "ceramic-dinnerware-set",
		Description:   "16-piece stoneware dinnerware set, dishwasher and microwave safe.",
		Price:         89.99,
		OriginalPrice: price(119.99),
		Category:      "Home & Kitchen",
		Brand:         "Hearth & Home",
		SKU:           "SH-HOME-0003",
		Images:        []string{"https://images.unsplash.com/photo-1578500494198-246f612d3b3d?w=600&h=600&fit=crop"},
		Features:      []string{"16 pieces", "Dishwasher safe", "Microwave safe"},
		Rating:        4.3,
		ReviewCount:   0,
		InStock:       true,
		StockQuantity: 65,
	},
	{
		ID:            mustID("665100000000000000000004"),
		Name:          "Luxury Linen Bedding Set",
		Slug:          "linen-bedding-set",
		Description:   "Stonewashed 100% linen duvet cover and pillowcases, breathable year-round.",
		Price:         149.99,
		OriginalPrice: price(199.99),
		Category:      "Home & Kitchen",
		Brand:         "Northwind",
		SKU:           "SH-HOME-0004",
		Images:        []string{"https://images.unsplash.com/photo-1631049307264-da0ec9d70304?w=600&h=600&fit=crop"},
		Features:      []string{"100% European flax", "Stonewashed finish", "OEKO-TEX certified"},
		Rating:        4.8,
		ReviewCount:   0,
		InStock:       true,
		StockQuantity: 23,
		Badge:         "Editor's Choice",
	},
	{
		ID:            mustID("665100000000000000000005"),
		Name:          "Pro Running Shoes",
		Slug:          "running-shoes-pro",
		Description:   "Lightweight trainers with responsive foam cushioning for daily miles.",
		Price:         129.99,
		OriginalPrice: price(179.99),
		Category:      "Sports & Fitness",
		Brand:         "Stride",
		SKU:           "SH-SPRT-0005",
		Images:        []string{"https://images.unsplash.com/photo-1542291026-7eec264c27ff?w=600&h=600&fit=crop"},
		Features:      []string{"Responsive foam midsole", "Breathable knit upper", "255g per shoe"},
		Rating:        4.4,
		ReviewCount:   0,
		InStock:       true,
		StockQuantity: 37,
	},
	{
		ID:            mustID("665100000000000000000006"),
		Name:          "Designer Sunglasses",
		Slug:          "designer-sunglasses",
		Description:   "Polarized acetate-frame sunglasses with full UV protection.",
		Price:         79.99,
		OriginalPrice: price(129.99),
		Category:      "Accessories",
		Brand:         "Meridian",
		SKU:           "SH-ACCS-0006",
		Images:        []string{"https://images.unsplash.com/photo-1572635196237-14b3f281503f?w=600&h=600&fit=crop"},
		Features:      []string{"Polarized lenses", "UV400 protection", "Acetate frame"},
		Rating:        4.2,
		ReviewCount:   0,
		InStock:       false,
		StockQuantity: 0,
	},
}

var demoReviews = []models.Review{
	{
		ID:        mustID("665200000000000000000001"),
		ProductID: mustID("665100000000000000000001"),
		UserName:  "Alex R.",
		Rating:    5,
		Title:     "Best headphones I've owned",
		Comment:   "The noise cancellation is outstanding on flights, and the battery genuinely lasts the full 30 hours.",
		Verified:  true,
		Helpful:   12,
		CreatedAt: *at("2024-11-20"),
		UpdatedAt: *at("2024-11-20"),
	},
	{
		ID:        mustID("665200000000000000000002"),
		ProductID: mustID("665100000000000000000001"),
		UserName:  "Priya S.",
		Rating:    4,
		Title:     "Great sound, slightly tight fit",
		Comment:   "Sound quality is excellent for the price. The clamping force took a week to break in.",
		Verified:  true,
		Helpful:   5,
		CreatedAt: *at("2024-11-15"),
		UpdatedAt: *at("2024-11-15"),
	},
	{
		ID:        mustID("665200000000000000000003"),
		ProductID: mustID("665100000000000000000001"),
		UserName:  "Marcus T.",
		Rating:    5,
		Title:     "Worth every penny",
		Comment:   "Paired instantly with both my laptop and phone. Calls are clear even on a busy street.",
		Helpful:   3,
		CreatedAt: *at("2024-11-10"),
		UpdatedAt: *at("2024-11-10"),
	},
}

var demoCategories = []models.Category{
	{ID: mustID("665300000000000000000001"), Name: "Electronics", Slug: "electronics", Description: "Audio, wearables and smart devices", ProductCount: 2, PostCount: 1, Order: 1, Active: true},
	{ID: mustID("665300000000000000000002"), Name: "Home & Kitchen", Slug: "home-kitchen", Description: "Everything for the home", ProductCount: 2, PostCount: 1, Order: 2, Active: true},
	{ID: mustID("665300000000000000000003"), Name: "Sports & Fitness", Slug: "sports-fitness", Description: "Gear for training and recovery", ProductCount: 1, PostCount: 1, Order: 3, Active: true},
	{ID: mustID("665300000000000000000004"), Name: "Accessories", Slug: "accessories", Description: "Finishing touches", ProductCount: 1, PostCount: 0, Order: 4, Active: true},
}
