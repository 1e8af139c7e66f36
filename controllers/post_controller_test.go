package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"shophub/models"
	"shophub/repositories"
	"shophub/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

type stubPostStore struct {
	lastOpts repositories.PostListOptions

	posts   []models.Post
	post    *models.Post
	deleted bool
	err     error
}

func (s *stubPostStore) List(ctx context.Context, opts repositories.PostListOptions) ([]models.Post, error) {
	s.lastOpts = opts
	return s.posts, s.err
}

func (s *stubPostStore) GetByID(ctx context.Context, id string) (*models.Post, error) {
	if s.post == nil {
		return nil, repositories.ErrNotFound
	}
	return s.post, s.err
}

func (s *stubPostStore) GetBySlug(ctx context.Context, slug string) (*models.Post, error) {
	if s.post == nil {
		return nil, repositories.ErrNotFound
	}
	return s.post, s.err
}

func (s *stubPostStore) Create(ctx context.Context, post *models.Post) (*models.Post, error) {
	return post, s.err
}

func (s *stubPostStore) Update(ctx context.Context, id string, patch bson.M) (*models.Post, error) {
	if s.post == nil {
		return nil, repositories.ErrNotFound
	}
	return s.post, s.err
}

func (s *stubPostStore) Delete(ctx context.Context, id string) (bool, error) {
	return s.deleted, s.err
}

func (s *stubPostStore) Stats(ctx context.Context) (*models.PostStats, error) {
	return &models.PostStats{Total: 3, Published: 2, Featured: 1}, s.err
}

func newPostRouter(store *stubPostStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	ctrl := NewPostController(services.NewPostService(store, nil))

	router := gin.New()
	router.GET("/api/posts", ctrl.ListPosts)
	router.POST("/api/posts", ctrl.CreatePost)
	router.GET("/api/posts/stats", ctrl.GetStats)
	router.GET("/api/posts/:id", ctrl.GetPost)
	router.PUT("/api/posts/:id", ctrl.UpdatePost)
	router.DELETE("/api/posts/:id", ctrl.DeletePost)
	return router
}

func doRequest(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestListPostsParsesFeaturedFilter(t *testing.T) {
	store := &stubPostStore{posts: []models.Post{}}
	router := newPostRouter(store)

	doRequest(router, http.MethodGet, "/api/posts?featured=true", "")
	require.NotNil(t, store.lastOpts.Featured)
	assert.True(t, *store.lastOpts.Featured)

	doRequest(router, http.MethodGet, "/api/posts?featured=false", "")
	require.NotNil(t, store.lastOpts.Featured)
	assert.False(t, *store.lastOpts.Featured)

	doRequest(router, http.MethodGet, "/api/posts", "")
	assert.Nil(t, store.lastOpts.Featured)
}

func TestListPostsEnvelope(t *testing.T) {
	store := &stubPostStore{posts: []models.Post{{Title: "A"}, {Title: "B"}}}
	router := newPostRouter(store)

	w := doRequest(router, http.MethodGet, "/api/posts?category=How-To&limit=5&skip=10", "")
	assert.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, "How-To", store.lastOpts.Category)
	assert.Equal(t, int64(5), store.lastOpts.Limit)
	assert.Equal(t, int64(10), store.lastOpts.Skip)

	var body struct {
		Success bool            `json:"success"`
		Count   int             `json:"count"`
		Data    json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, 2, body.Count)
}

func TestCreatePostMissingFields(t *testing.T) {
	router := newPostRouter(&stubPostStore{})

	w := doRequest(router, http.MethodPost, "/api/posts", `{"title":"Only a Title"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var body struct {
		Success       bool     `json:"success"`
		Error         string   `json:"error"`
		MissingFields []string `json:"missingFields"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.False(t, body.Success)
	assert.Equal(t, "Missing required fields", body.Error)
	// slug is derived from the title, so it is not reported missing
	assert.Equal(t, []string{"excerpt", "content", "category", "image", "author"}, body.MissingFields)
}

func TestCreatePostSuccess(t *testing.T) {
	router := newPostRouter(&stubPostStore{})

	payload := `{
		"title": "Top 10 Gadgets!",
		"excerpt": "Worth your money.",
		"content": "<p>Review.</p>",
		"category": "Product Reviews",
		"image": "https://example.com/cover.jpg",
		"author": {"name": "Sarah Johnson"}
	}`
	w := doRequest(router, http.MethodPost, "/api/posts", payload)
	assert.Equal(t, http.StatusCreated, w.Code)

	var body struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
		Data    struct {
			Slug string `json:"slug"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, "Post created successfully", body.Message)
	assert.Equal(t, "top-10-gadgets", body.Data.Slug)
}

func TestCreatePostInvalidBody(t *testing.T) {
	router := newPostRouter(&stubPostStore{})

	w := doRequest(router, http.MethodPost, "/api/posts", `{not json`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetPostNotFound(t *testing.T) {
	router := newPostRouter(&stubPostStore{})

	// malformed ids are reported as not found, never as a server error
	w := doRequest(router, http.MethodGet, "/api/posts/not-an-object-id", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	var body struct {
		Success bool   `json:"success"`
		Error   string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.False(t, body.Success)
	assert.Equal(t, "Post not found", body.Error)
}

func TestUpdatePostNotFound(t *testing.T) {
	router := newPostRouter(&stubPostStore{})

	w := doRequest(router, http.MethodPut, "/api/posts/65a000000000000000000009", `{"title":"X"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeletePostIdempotent(t *testing.T) {
	store := &stubPostStore{deleted: true}
	router := newPostRouter(store)

	w := doRequest(router, http.MethodDelete, "/api/posts/65a000000000000000000001", "")
	assert.Equal(t, http.StatusOK, w.Code)

	store.deleted = false
	w = doRequest(router, http.MethodDelete, "/api/posts/65a000000000000000000001", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetStats(t *testing.T) {
	router := newPostRouter(&stubPostStore{})

	w := doRequest(router, http.MethodGet, "/api/posts/stats", "")
	assert.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Success bool `json:"success"`
		Data    struct {
			Total     int64 `json:"total"`
			Published int64 `json:"published"`
			Featured  int64 `json:"featured"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, int64(3), body.Data.Total)
	assert.Equal(t, int64(2), body.Data.Published)
	assert.Equal(t, int64(1), body.Data.Featured)
}
