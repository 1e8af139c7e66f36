package controllers

import (
	"errors"
	"net/http"

	"shophub/models"
	"shophub/services"

	"github.com/gin-gonic/gin"
)

type AIController struct {
	aiService *services.AIService
}

func NewAIController(aiService *services.AIService) *AIController {
	return &AIController{aiService: aiService}
}

func (ctrl *AIController) respond(c *gin.Context, content string, err error) {
	if errors.Is(err, services.ErrAIUnavailable) {
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse{
			Success: false,
			Error:   "AI content generation is not configured",
		})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Error:   "Failed to generate content",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Data:    gin.H{"content": content},
	})
}

// @Summary Generate a product description
// @Tags ai
// @Accept json
// @Produce json
// @Param request body models.DescriptionRequest true "Description request"
// @Success 200 {object} models.Response
// @Security BearerAuth
// @Router /api/ai/description [post]
func (ctrl *AIController) GenerateDescription(c *gin.Context) {
	var req models.DescriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Error:   "Invalid request body",
			Message: err.Error(),
		})
		return
	}

	content, err := ctrl.aiService.GenerateProductDescription(c.Request.Context(), req.ProductName, req.Features, req.Category)
	ctrl.respond(c, content, err)
}

// @Summary Generate a blog post outline
// @Tags ai
// @Accept json
// @Produce json
// @Param request body models.OutlineRequest true "Outline request"
// @Success 200 {object} models.Response
// @Security BearerAuth
// @Router /api/ai/outline [post]
func (ctrl *AIController) GenerateOutline(c *gin.Context) {
	var req models.OutlineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Error:   "Invalid request body",
			Message: err.Error(),
		})
		return
	}

	content, err := ctrl.aiService.GenerateBlogOutline(c.Request.Context(), req.Topic, req.Products, req.Keywords)
	ctrl.respond(c, content, err)
}

// @Summary Generate an SEO meta description
// @Tags ai
// @Accept json
// @Produce json
// @Param request body models.MetaDescriptionRequest true "Meta description request"
// @Success 200 {object} models.Response
// @Security BearerAuth
// @Router /api/ai/meta-description [post]
func (ctrl *AIController) GenerateMetaDescription(c *gin.Context) {
	var req models.MetaDescriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Error:   "Invalid request body",
			Message: err.Error(),
		})
		return
	}

	content, err := ctrl.aiService.GenerateMetaDescription(c.Request.Context(), req.Title, req.Content)
	ctrl.respond(c, content, err)
}

// @Summary Generate a product comparison article
// @Tags ai
// @Accept json
// @Produce json
// @Param request body models.ComparisonRequest true "Comparison request"
// @Success 200 {object} models.Response
// @Security BearerAuth
// @Router /api/ai/comparison [post]
func (ctrl *AIController) GenerateComparison(c *gin.Context) {
	var req models.ComparisonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Error:   "Invalid request body",
			Message: err.Error(),
		})
		return
	}

	content, err := ctrl.aiService.GenerateProductComparison(c.Request.Context(), req.Products)
	ctrl.respond(c, content, err)
}

// @Summary Generate a buying guide
// @Tags ai
// @Accept json
// @Produce json
// @Param request body models.BuyingGuideRequest true "Buying guide request"
// @Success 200 {object} models.Response
// @Security BearerAuth
// @Router /api/ai/buying-guide [post]
func (ctrl *AIController) GenerateBuyingGuide(c *gin.Context) {
	var req models.BuyingGuideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Error:   "Invalid request body",
			Message: err.Error(),
		})
		return
	}

	content, err := ctrl.aiService.GenerateBuyingGuide(c.Request.Context(), req.Category, req.PriceRange, req.KeyFactors)
	ctrl.respond(c, content, err)
}

// @Summary Summarize customer reviews
// @Tags ai
// @Accept json
// @Produce json
// @Param request body models.ReviewSummaryRequest true "Review summary request"
// @Success 200 {object} models.Response
// @Security BearerAuth
// @Router /api/ai/review-summary [post]
func (ctrl *AIController) SummarizeReviews(c *gin.Context) {
	var req models.ReviewSummaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Error:   "Invalid request body",
			Message: err.Error(),
		})
		return
	}

	summary, err := ctrl.aiService.SummarizeReviews(c.Request.Context(), req.Reviews)
	if errors.Is(err, services.ErrAIUnavailable) {
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse{
			Success: false,
			Error:   "AI content generation is not configured",
		})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Error:   "Failed to generate content",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{Success: true, Data: summary})
}
