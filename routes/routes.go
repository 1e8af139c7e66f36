package routes

import (
	"net/http"

	"shophub/config"
	"shophub/controllers"
	"shophub/middleware"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Controllers bundles everything SetupRoutes needs. All handlers are
// constructed in main and passed down; nothing here reaches for globals.
type Controllers struct {
	Post       *controllers.PostController
	Product    *controllers.ProductController
	Review     *controllers.ReviewController
	Category   *controllers.CategoryController
	Newsletter *controllers.NewsletterController
	Auth       *controllers.AuthController
	AI         *controllers.AIController
	Upload     *controllers.UploadController
	Page       *controllers.PageController
}

func SetupRoutes(router *gin.Engine, ctrl Controllers) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "OK"})
	})

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.POST("/auth/login", ctrl.Auth.Login)

	api := router.Group("/api")
	{
		api.GET("/posts", ctrl.Post.ListPosts)
		api.POST("/posts", ctrl.Post.CreatePost)
		api.GET("/posts/stats", ctrl.Post.GetStats)
		api.GET("/posts/slug/:slug", ctrl.Post.GetPostBySlug)
		api.GET("/posts/:id", ctrl.Post.GetPost)
		api.PUT("/posts/:id", ctrl.Post.UpdatePost)
		api.DELETE("/posts/:id", ctrl.Post.DeletePost)

		api.GET("/deals", ctrl.Product.ListDeals)
		api.GET("/products", ctrl.Product.ListProducts)
		api.GET("/products/:slug", ctrl.Product.GetProduct)
		api.GET("/products/:slug/reviews", ctrl.Review.ListReviews)
		api.POST("/products/:slug/reviews", ctrl.Review.CreateReview)
		api.POST("/reviews/:id/helpful", ctrl.Review.MarkHelpful)

		api.GET("/categories", ctrl.Category.ListCategories)

		api.POST("/newsletter/subscribe", ctrl.Newsletter.Subscribe)
		api.POST("/newsletter/unsubscribe", ctrl.Newsletter.Unsubscribe)
	}

	admin := router.Group("/api")
	admin.Use(middleware.AuthMiddleware(), middleware.AdminMiddleware())
	{
		admin.POST("/products", ctrl.Product.CreateProduct)
		admin.PUT("/products/:id", ctrl.Product.UpdateProduct)
		admin.DELETE("/products/:id", ctrl.Product.DeleteProduct)

		admin.POST("/upload", ctrl.Upload.UploadImage)

		admin.POST("/ai/description", ctrl.AI.GenerateDescription)
		admin.POST("/ai/outline", ctrl.AI.GenerateOutline)
		admin.POST("/ai/meta-description", ctrl.AI.GenerateMetaDescription)
		admin.POST("/ai/comparison", ctrl.AI.GenerateComparison)
		admin.POST("/ai/buying-guide", ctrl.AI.GenerateBuyingGuide)
		admin.POST("/ai/review-summary", ctrl.AI.SummarizeReviews)
	}

	router.GET("/", ctrl.Page.Home)
	router.GET("/products", ctrl.Page.Products)
	router.GET("/products/:slug", ctrl.Page.Product)
	router.GET("/deals", ctrl.Page.Deals)
	router.GET("/categories", ctrl.Page.Categories)
	router.GET("/category/:slug", ctrl.Page.Category)
	router.GET("/about", ctrl.Page.About)
	router.GET("/guides", ctrl.Page.Guides)
	router.GET("/blog", ctrl.Page.Blog)
	router.GET("/blog/:slug", ctrl.Page.BlogPost)
	router.GET("/reviews", ctrl.Page.Reviews)

	router.GET("/admin", ctrl.Page.AdminDashboard)
	router.GET("/admin/posts/new", ctrl.Page.AdminPostForm)
	router.GET("/admin/posts/:id", ctrl.Page.AdminPostEdit)
	router.GET("/admin/login", ctrl.Page.AdminLogin)

	router.Static("/static", "./web/static")
	router.Static("/uploads", config.AppConfig.UploadDir)
}
