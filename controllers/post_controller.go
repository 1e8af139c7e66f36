package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"shophub/models"
	"shophub/repositories"
	"shophub/services"

	"github.com/gin-gonic/gin"
)

type PostController struct {
	postService *services.PostService
}

func NewPostController(postService *services.PostService) *PostController {
	return &PostController{postService: postService}
}

// @Summary List posts
// @Description Get posts with optional filtering, pagination and sorting
// @Tags posts
// @Produce json
// @Param category query string false "Filter by category"
// @Param featured query bool false "Filter by featured flag"
// @Param limit query int false "Maximum number of posts"
// @Param skip query int false "Number of posts to skip"
// @Param sortBy query string false "Sort field" default(createdAt)
// @Param sortOrder query string false "Sort direction" Enums(asc, desc)
// @Success 200 {object} models.ListResponse
// @Router /api/posts [get]
func (ctrl *PostController) ListPosts(c *gin.Context) {
	opts := repositories.PostListOptions{
		Category:  c.Query("category"),
		SortBy:    c.DefaultQuery("sortBy", "createdAt"),
		SortOrder: c.DefaultQuery("sortOrder", "desc"),
	}

	switch c.Query("featured") {
	case "true":
		featured := true
		opts.Featured = &featured
	case "false":
		featured := false
		opts.Featured = &featured
	}

	opts.Limit, _ = strconv.ParseInt(c.Query("limit"), 10, 64)
	opts.Skip, _ = strconv.ParseInt(c.Query("skip"), 10, 64)

	posts, err := ctrl.postService.List(c.Request.Context(), opts)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Error:   "Failed to fetch posts",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.ListResponse{
		Success: true,
		Data:    posts,
		Count:   len(posts),
	})
}

// @Summary Create a post
// @Description Create a new blog post; slug is derived from the title when omitted
// @Tags posts
// @Accept json
// @Produce json
// @Param post body models.CreatePostRequest true "Post payload"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ValidationErrorResponse
// @Router /api/posts [post]
func (ctrl *PostController) CreatePost(c *gin.Context) {
	var req models.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Error:   "Invalid request body",
			Message: err.Error(),
		})
		return
	}

	if missing := ctrl.postService.Validate(&req); len(missing) > 0 {
		c.JSON(http.StatusBadRequest, models.ValidationErrorResponse{
			Success:       false,
			Error:         "Missing required fields",
			MissingFields: missing,
		})
		return
	}

	post, err := ctrl.postService.Create(c.Request.Context(), &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Error:   "Failed to create post",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, models.Response{
		Success: true,
		Message: "Post created successfully",
		Data:    post,
	})
}

// @Summary Get a post
// @Tags posts
// @Produce json
// @Param id path string true "Post ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /api/posts/{id} [get]
func (ctrl *PostController) GetPost(c *gin.Context) {
	post, err := ctrl.postService.Get(c.Request.Context(), c.Param("id"))
	if errors.Is(err, repositories.ErrNotFound) {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Success: false,
			Error:   "Post not found",
		})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Error:   "Failed to fetch post",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{Success: true, Data: post})
}

// @Summary Get a post by slug
// @Tags posts
// @Produce json
// @Param slug path string true "Post slug"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /api/posts/slug/{slug} [get]
func (ctrl *PostController) GetPostBySlug(c *gin.Context) {
	post, err := ctrl.postService.GetBySlug(c.Request.Context(), c.Param("slug"))
	if errors.Is(err, repositories.ErrNotFound) {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Success: false,
			Error:   "Post not found",
		})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Error:   "Failed to fetch post",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{Success: true, Data: post})
}

// @Summary Update a post
// @Description Apply a partial update; the identifier field is immutable
// @Tags posts
// @Accept json
// @Produce json
// @Param id path string true "Post ID"
// @Param post body models.UpdatePostRequest true "Partial post payload"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /api/posts/{id} [put]
func (ctrl *PostController) UpdatePost(c *gin.Context) {
	var req models.UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Error:   "Invalid request body",
			Message: err.Error(),
		})
		return
	}

	post, err := ctrl.postService.Update(c.Request.Context(), c.Param("id"), &req)
	if errors.Is(err, repositories.ErrNotFound) {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Success: false,
			Error:   "Post not found",
		})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Error:   "Failed to update post",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Post updated successfully",
		Data:    post,
	})
}

// @Summary Delete a post
// @Tags posts
// @Produce json
// @Param id path string true "Post ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /api/posts/{id} [delete]
func (ctrl *PostController) DeletePost(c *gin.Context) {
	deleted, err := ctrl.postService.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Error:   "Failed to delete post",
			Message: err.Error(),
		})
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Success: false,
			Error:   "Post not found or already deleted",
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Post deleted successfully",
	})
}

// @Summary Post statistics
// @Description Total, published, featured and per-category counts
// @Tags posts
// @Produce json
// @Success 200 {object} models.Response
// @Router /api/posts/stats [get]
func (ctrl *PostController) GetStats(c *gin.Context) {
	stats, err := ctrl.postService.Stats(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Error:   "Failed to fetch stats",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{Success: true, Data: stats})
}
