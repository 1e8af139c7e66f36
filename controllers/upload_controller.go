package controllers

import (
	"net/http"

	"shophub/libs"
	"shophub/models"
	"shophub/utils"

	"github.com/gin-gonic/gin"
)

type UploadController struct {
	cloudinary *libs.CloudinaryService
}

// NewUploadController takes the Cloudinary client when configured; with a nil
// client uploads land on local disk under the upload directory.
func NewUploadController(cloudinary *libs.CloudinaryService) *UploadController {
	return &UploadController{cloudinary: cloudinary}
}

// @Summary Upload an image
// @Description Upload a featured image for a post or product
// @Tags upload
// @Accept mpfd
// @Produce json
// @Param image formData file true "Image file"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /api/upload [post]
func (ctrl *UploadController) UploadImage(c *gin.Context) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Error:   "Image file required",
			Message: err.Error(),
		})
		return
	}

	if err := utils.ValidateImageFile(fileHeader); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	if ctrl.cloudinary != nil {
		file, err := fileHeader.Open()
		if err != nil {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse{
				Success: false,
				Error:   "Failed to read uploaded file",
				Message: err.Error(),
			})
			return
		}
		defer file.Close()

		url, publicID, err := ctrl.cloudinary.UploadImage(c.Request.Context(), file, fileHeader.Filename, "posts")
		if err != nil {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse{
				Success: false,
				Error:   "Failed to upload image",
				Message: err.Error(),
			})
			return
		}

		c.JSON(http.StatusCreated, models.Response{
			Success: true,
			Message: "Image uploaded successfully",
			Data:    gin.H{"url": url, "publicId": publicID},
		})
		return
	}

	path, err := utils.SaveUploadedFile(c, fileHeader, "posts")
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Error:   "Failed to save image",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, models.Response{
		Success: true,
		Message: "Image uploaded successfully",
		Data:    gin.H{"url": path},
	})
}
