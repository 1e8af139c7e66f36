package storefront

import (
	"context"
	"testing"

	"shophub/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticProviderFeaturedPosts(t *testing.T) {
	p := NewStaticProvider()

	posts, err := p.FeaturedPosts(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, posts, 3)
	for _, post := range posts {
		assert.True(t, post.Featured)
	}
}

func TestStaticProviderPostBySlug(t *testing.T) {
	p := NewStaticProvider()

	post, err := p.PostBySlug(context.Background(), "the-ultimate-guide-to-sustainable-fashion-in-2024")
	require.NoError(t, err)
	assert.Equal(t, "Buying Guides", post.Category)

	_, err = p.PostBySlug(context.Background(), "no-such-post")
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestStaticProviderGuides(t *testing.T) {
	p := NewStaticProvider()

	guides, err := p.Guides(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, guides)
	for _, guide := range guides {
		assert.Equal(t, "Buying Guides", guide.Category)
	}
}

func TestStaticProviderDealsAreDiscounted(t *testing.T) {
	p := NewStaticProvider()

	deals, err := p.Deals(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, deals)
	for _, deal := range deals {
		require.NotNil(t, deal.OriginalPrice)
		assert.Greater(t, *deal.OriginalPrice, deal.Price)
		assert.Greater(t, deal.Discount(), 0)
	}
}

func TestStaticProviderProductBySlug(t *testing.T) {
	p := NewStaticProvider()

	product, err := p.ProductBySlug(context.Background(), "wireless-noise-cancelling-headphones")
	require.NoError(t, err)
	assert.Equal(t, 299.99, product.Price)

	_, err = p.ProductBySlug(context.Background(), "no-such-product")
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestStaticProviderReviewsForProduct(t *testing.T) {
	p := NewStaticProvider()

	reviews, err := p.ReviewsForProduct(context.Background(), "wireless-noise-cancelling-headphones")
	require.NoError(t, err)
	assert.Len(t, reviews, 3)

	_, err = p.ReviewsForProduct(context.Background(), "no-such-product")
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestStaticProviderCategoryBySlug(t *testing.T) {
	p := NewStaticProvider()

	category, err := p.CategoryBySlug(context.Background(), "home-kitchen")
	require.NoError(t, err)
	assert.Equal(t, "Home & Kitchen", category.Name)

	_, err = p.CategoryBySlug(context.Background(), "no-such-category")
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestStaticProviderProductsByCategory(t *testing.T) {
	p := NewStaticProvider()

	products, err := p.Products(context.Background(), "Electronics")
	require.NoError(t, err)
	assert.Len(t, products, 2)

	all, err := p.Products(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, all, 6)
}
