package controllers

import (
	"errors"
	"net/http"

	"shophub/models"
	"shophub/repositories"
	"shophub/services"

	"github.com/gin-gonic/gin"
)

type ReviewController struct {
	reviewService *services.ReviewService
}

func NewReviewController(reviewService *services.ReviewService) *ReviewController {
	return &ReviewController{reviewService: reviewService}
}

// @Summary List reviews for a product
// @Tags reviews
// @Produce json
// @Param slug path string true "Product slug"
// @Success 200 {object} models.ListResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /api/products/{slug}/reviews [get]
func (ctrl *ReviewController) ListReviews(c *gin.Context) {
	reviews, err := ctrl.reviewService.ListForProduct(c.Request.Context(), c.Param("slug"))
	if errors.Is(err, repositories.ErrNotFound) {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Success: false,
			Error:   "Product not found",
		})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Error:   "Failed to fetch reviews",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.ListResponse{
		Success: true,
		Data:    reviews,
		Count:   len(reviews),
	})
}

// @Summary Create a review
// @Tags reviews
// @Accept json
// @Produce json
// @Param slug path string true "Product slug"
// @Param review body models.CreateReviewRequest true "Review payload"
// @Success 201 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /api/products/{slug}/reviews [post]
func (ctrl *ReviewController) CreateReview(c *gin.Context) {
	var req models.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Error:   "Invalid request body",
			Message: err.Error(),
		})
		return
	}

	review, err := ctrl.reviewService.Create(c.Request.Context(), c.Param("slug"), &req)
	if errors.Is(err, repositories.ErrNotFound) {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Success: false,
			Error:   "Product not found",
		})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Error:   "Failed to create review",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, models.Response{
		Success: true,
		Message: "Review created successfully",
		Data:    review,
	})
}

// @Summary Mark a review as helpful
// @Tags reviews
// @Produce json
// @Param id path string true "Review ID"
// @Param helpful query bool false "true for helpful, false for not helpful" default(true)
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /api/reviews/{id}/helpful [post]
func (ctrl *ReviewController) MarkHelpful(c *gin.Context) {
	helpful := c.DefaultQuery("helpful", "true") == "true"

	found, err := ctrl.reviewService.MarkHelpful(c.Request.Context(), c.Param("id"), helpful)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Error:   "Failed to update review",
			Message: err.Error(),
		})
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Success: false,
			Error:   "Review not found",
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Review updated",
	})
}
