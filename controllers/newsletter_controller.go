package controllers

import (
	"errors"
	"net/http"

	"shophub/models"
	"shophub/services"

	"github.com/gin-gonic/gin"
)

type NewsletterController struct {
	newsletterService *services.NewsletterService
}

func NewNewsletterController(newsletterService *services.NewsletterService) *NewsletterController {
	return &NewsletterController{newsletterService: newsletterService}
}

// @Summary Subscribe to the newsletter
// @Tags newsletter
// @Accept json
// @Produce json
// @Param subscription body models.SubscribeRequest true "Subscription payload"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /api/newsletter/subscribe [post]
func (ctrl *NewsletterController) Subscribe(c *gin.Context) {
	var req models.SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Error:   "Invalid request body",
			Message: err.Error(),
		})
		return
	}

	sub, err := ctrl.newsletterService.Subscribe(c.Request.Context(), &req)
	if errors.Is(err, services.ErrInvalidEmail) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Error:   "Invalid email address",
		})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Error:   "Failed to subscribe",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, models.Response{
		Success: true,
		Message: "Subscribed successfully",
		Data:    sub,
	})
}

// @Summary Unsubscribe from the newsletter
// @Tags newsletter
// @Accept json
// @Produce json
// @Param subscription body models.UnsubscribeRequest true "Unsubscribe payload"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /api/newsletter/unsubscribe [post]
func (ctrl *NewsletterController) Unsubscribe(c *gin.Context) {
	var req models.UnsubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Error:   "Invalid request body",
			Message: err.Error(),
		})
		return
	}

	found, err := ctrl.newsletterService.Unsubscribe(c.Request.Context(), req.Email)
	if errors.Is(err, services.ErrInvalidEmail) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Error:   "Invalid email address",
		})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Error:   "Failed to unsubscribe",
			Message: err.Error(),
		})
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Success: false,
			Error:   "Subscriber not found",
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Unsubscribed successfully",
	})
}
