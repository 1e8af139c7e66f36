package app

import (
	"context"
	"log"
	"os"

	"shophub/config"
	"shophub/controllers"
	"shophub/libs"
	"shophub/middleware"
	"shophub/repositories"
	"shophub/routes"
	"shophub/services"
	"shophub/storefront"
	"shophub/utils"

	"github.com/gin-gonic/gin"
)

// New wires the whole application: configuration, database, repositories,
// services, controllers and routes. It returns the router and a cleanup
// function that releases the database connection.
func New(ctx context.Context) (*gin.Engine, func(), error) {
	config.LoadConfig()

	if config.AppConfig.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	client, db, err := config.ConnectDB(ctx)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() { config.CloseDB(client) }

	if err := config.EnsureIndexes(ctx, db); err != nil {
		log.Printf("Warning: failed to ensure indexes: %v", err)
	}

	postRepo := repositories.NewPostRepository(db)
	productRepo := repositories.NewProductRepository(db)
	reviewRepo := repositories.NewReviewRepository(db)
	categoryRepo := repositories.NewCategoryRepository(db)
	newsletterRepo := repositories.NewNewsletterRepository(db)
	userRepo := repositories.NewUserRepository(db)

	seedAdmin(ctx, userRepo)

	emailService, err := services.NewEmailService()
	if err != nil {
		log.Printf("Warning: email disabled: %v", err)
		emailService = nil
	}

	cloudinaryService, err := libs.NewCloudinaryService()
	if err != nil {
		log.Printf("Warning: Cloudinary disabled, uploads go to local disk: %v", err)
		cloudinaryService = nil
	}

	categoryService := services.NewCategoryService(categoryRepo, postRepo, productRepo)
	postService := services.NewPostService(postRepo, categoryService)
	productService := services.NewProductService(productRepo, categoryService)
	reviewService := services.NewReviewService(reviewRepo, productRepo)
	newsletterService := services.NewNewsletterService(newsletterRepo, emailService)
	authService := services.NewAuthService(userRepo)

	aiService, err := services.NewAIService(config.AppConfig.OpenAIKey, config.AppConfig.OpenAIModel)
	if err != nil {
		log.Printf("Warning: AI content generation disabled: %v", err)
		aiService = &services.AIService{}
	}
	if !aiService.Available() {
		log.Println("AI endpoints will answer 503 until an API key is configured")
	}

	var content storefront.ContentProvider
	if config.AppConfig.ContentSource == "static" {
		content = storefront.NewStaticProvider()
	} else {
		content = storefront.NewStoreProvider(postRepo, productRepo, reviewRepo, categoryRepo)
	}

	if err := os.MkdirAll(config.AppConfig.UploadDir, 0o755); err != nil {
		log.Printf("Warning: cannot create upload directory: %v", err)
	}

	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())
	router.Use(middleware.CORSMiddleware())
	router.LoadHTMLGlob("web/templates/*.tmpl")

	routes.SetupRoutes(router, routes.Controllers{
		Post:       controllers.NewPostController(postService),
		Product:    controllers.NewProductController(productService),
		Review:     controllers.NewReviewController(reviewService),
		Category:   controllers.NewCategoryController(categoryRepo),
		Newsletter: controllers.NewNewsletterController(newsletterService),
		Auth:       controllers.NewAuthController(authService),
		AI:         controllers.NewAIController(aiService),
		Upload:     controllers.NewUploadController(cloudinaryService),
		Page:       controllers.NewPageController(content),
	})

	return router, cleanup, nil
}

func seedAdmin(ctx context.Context, userRepo *repositories.UserRepository) {
	email := config.AppConfig.AdminEmail
	password := config.AppConfig.AdminPassword
	if email == "" || password == "" {
		return
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		log.Printf("Warning: failed to hash admin password: %v", err)
		return
	}
	if err := userRepo.Seed(ctx, email, hash); err != nil {
		log.Printf("Warning: failed to seed admin user: %v", err)
	}
}
