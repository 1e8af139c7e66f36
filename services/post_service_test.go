package services

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"shophub/models"
	"shophub/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

// fakePostStore records the arguments of the last call and returns canned
// values.
type fakePostStore struct {
	lastOpts  repositories.PostListOptions
	lastID    string
	lastPatch bson.M
	lastPost  *models.Post

	posts   []models.Post
	post    *models.Post
	deleted bool
	err     error
}

func (f *fakePostStore) List(ctx context.Context, opts repositories.PostListOptions) ([]models.Post, error) {
	f.lastOpts = opts
	return f.posts, f.err
}

func (f *fakePostStore) GetByID(ctx context.Context, id string) (*models.Post, error) {
	f.lastID = id
	return f.post, f.err
}

func (f *fakePostStore) GetBySlug(ctx context.Context, slug string) (*models.Post, error) {
	return f.post, f.err
}

func (f *fakePostStore) Create(ctx context.Context, post *models.Post) (*models.Post, error) {
	f.lastPost = post
	return post, f.err
}

func (f *fakePostStore) Update(ctx context.Context, id string, patch bson.M) (*models.Post, error) {
	f.lastID = id
	f.lastPatch = patch
	return f.post, f.err
}

func (f *fakePostStore) Delete(ctx context.Context, id string) (bool, error) {
	f.lastID = id
	return f.deleted, f.err
}

func (f *fakePostStore) Stats(ctx context.Context) (*models.PostStats, error) {
	return &models.PostStats{}, f.err
}

func validCreateRequest() *models.CreatePostRequest {
	return &models.CreatePostRequest{
		Title:    "Top 10 Gadgets!",
		Excerpt:  "The gadgets worth your money.",
		Content:  "<p>Full review.</p>",
		Category: "Product Reviews",
		Image:    "https://example.com/cover.jpg",
		Author:   models.Author{Name: "Sarah Johnson"},
	}
}

func TestValidateDerivesSlugFromTitle(t *testing.T) {
	svc := NewPostService(&fakePostStore{}, nil)

	req := validCreateRequest()
	missing := svc.Validate(req)

	assert.Empty(t, missing)
	assert.Equal(t, "top-10-gadgets", req.Slug)
}

func TestValidateKeepsExplicitSlug(t *testing.T) {
	svc := NewPostService(&fakePostStore{}, nil)

	req := validCreateRequest()
	req.Slug = "my-own-slug"
	missing := svc.Validate(req)

	assert.Empty(t, missing)
	assert.Equal(t, "my-own-slug", req.Slug)
}

func TestValidateReportsMissingFieldsInOrder(t *testing.T) {
	svc := NewPostService(&fakePostStore{}, nil)

	missing := svc.Validate(&models.CreatePostRequest{})
	assert.Equal(t, []string{"title", "slug", "excerpt", "content", "category", "image", "author"}, missing)

	req := validCreateRequest()
	req.Excerpt = ""
	req.Author = models.Author{}
	missing = svc.Validate(req)
	assert.Equal(t, []string{"excerpt", "author"}, missing)
}

func TestValidateAuthorNeedsName(t *testing.T) {
	svc := NewPostService(&fakePostStore{}, nil)

	req := validCreateRequest()
	req.Author = models.Author{Avatar: "https://example.com/a.png"}
	missing := svc.Validate(req)

	assert.Equal(t, []string{"author"}, missing)
}

func TestCreateDefaultsCollections(t *testing.T) {
	store := &fakePostStore{}
	svc := NewPostService(store, nil)

	req := validCreateRequest()
	req.Slug = "top-10-gadgets"
	_, err := svc.Create(context.Background(), req)
	require.NoError(t, err)

	require.NotNil(t, store.lastPost)
	assert.NotNil(t, store.lastPost.Products)
	assert.NotNil(t, store.lastPost.Tags)
	assert.Empty(t, store.lastPost.Products)
	assert.Empty(t, store.lastPost.Tags)
	assert.Nil(t, store.lastPost.PublishedAt)
}

func TestUpdatePatchesOnlyProvidedFields(t *testing.T) {
	store := &fakePostStore{post: &models.Post{}}
	svc := NewPostService(store, nil)

	title := "New Title"
	featured := true
	_, err := svc.Update(context.Background(), "abc", &models.UpdatePostRequest{
		Title:    &title,
		Featured: &featured,
	})
	require.NoError(t, err)

	assert.Equal(t, "abc", store.lastID)
	assert.Equal(t, bson.M{"title": "New Title", "featured": true}, store.lastPatch)
}

func TestUpdatePublishedAtExplicitNullUnpublishes(t *testing.T) {
	store := &fakePostStore{post: &models.Post{}}
	svc := NewPostService(store, nil)

	_, err := svc.Update(context.Background(), "abc", &models.UpdatePostRequest{
		PublishedAt: json.RawMessage("null"),
	})
	require.NoError(t, err)

	require.Contains(t, store.lastPatch, "publishedAt")
	assert.Nil(t, store.lastPatch["publishedAt"])
}

func TestUpdatePublishedAtTimestamp(t *testing.T) {
	store := &fakePostStore{post: &models.Post{}}
	svc := NewPostService(store, nil)

	_, err := svc.Update(context.Background(), "abc", &models.UpdatePostRequest{
		PublishedAt: json.RawMessage(`"2024-12-10T00:00:00Z"`),
	})
	require.NoError(t, err)

	want := time.Date(2024, 12, 10, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, want, store.lastPatch["publishedAt"])
}

func TestUpdatePublishedAtAbsentLeavesUnchanged(t *testing.T) {
	store := &fakePostStore{post: &models.Post{}}
	svc := NewPostService(store, nil)

	_, err := svc.Update(context.Background(), "abc", &models.UpdatePostRequest{})
	require.NoError(t, err)

	assert.NotContains(t, store.lastPatch, "publishedAt")
}

type fakeCounter struct {
	refreshed []string
	err       error
}

func (f *fakeCounter) RefreshCounts(ctx context.Context, categoryName string) error {
	f.refreshed = append(f.refreshed, categoryName)
	return f.err
}

func TestCreateRefreshesCategoryCounts(t *testing.T) {
	counter := &fakeCounter{}
	svc := NewPostService(&fakePostStore{}, counter)

	req := validCreateRequest()
	req.Slug = "top-10-gadgets"
	_, err := svc.Create(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, []string{"Product Reviews"}, counter.refreshed)
}

func TestDeleteRefreshesCategoryCounts(t *testing.T) {
	counter := &fakeCounter{}
	store := &fakePostStore{post: &models.Post{Category: "How-To"}, deleted: true}
	svc := NewPostService(store, counter)

	deleted, err := svc.Delete(context.Background(), "65a000000000000000000001")
	require.NoError(t, err)
	assert.True(t, deleted)
	assert.Equal(t, []string{"How-To"}, counter.refreshed)
}

func TestDeleteMissingPostSkipsRefresh(t *testing.T) {
	counter := &fakeCounter{}
	svc := NewPostService(&fakePostStore{}, counter)

	deleted, err := svc.Delete(context.Background(), "65a000000000000000000001")
	require.NoError(t, err)
	assert.False(t, deleted)
	assert.Empty(t, counter.refreshed)
}

func TestRefreshFailureDoesNotFailCreate(t *testing.T) {
	counter := &fakeCounter{err: errors.New("count store down")}
	svc := NewPostService(&fakePostStore{}, counter)

	req := validCreateRequest()
	req.Slug = "top-10-gadgets"
	_, err := svc.Create(context.Background(), req)
	assert.NoError(t, err)
}

func TestUpdateRejectsMalformedPublishedAt(t *testing.T) {
	svc := NewPostService(&fakePostStore{}, nil)

	_, err := svc.Update(context.Background(), "abc", &models.UpdatePostRequest{
		PublishedAt: json.RawMessage(`"not-a-date"`),
	})
	assert.Error(t, err)
}
