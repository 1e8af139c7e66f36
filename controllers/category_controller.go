package controllers

import (
	"net/http"

	"shophub/models"
	"shophub/repositories"

	"github.com/gin-gonic/gin"
)

type CategoryController struct {
	categoryRepo *repositories.CategoryRepository
}

func NewCategoryController(categoryRepo *repositories.CategoryRepository) *CategoryController {
	return &CategoryController{categoryRepo: categoryRepo}
}

// @Summary List categories
// @Description Get active categories in display order
// @Tags categories
// @Produce json
// @Success 200 {object} models.ListResponse
// @Router /api/categories [get]
func (ctrl *CategoryController) ListCategories(c *gin.Context) {
	categories, err := ctrl.categoryRepo.ListActive(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Error:   "Failed to fetch categories",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.ListResponse{
		Success: true,
		Data:    categories,
		Count:   len(categories),
	})
}
