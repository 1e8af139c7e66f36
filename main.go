package main

import (
	"context"
	"log"

	"shophub/app"
	"shophub/config"

	_ "shophub/docs"
)

// @title ShopHub API
// @version 1.0
// @description Content-driven e-commerce storefront: blog posts, products, reviews and newsletter.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	ctx := context.Background()

	router, cleanup, err := app.New(ctx)
	if err != nil {
		log.Fatalf("Failed to start: %v", err)
	}
	defer cleanup()

	addr := ":" + config.AppConfig.Port
	log.Printf("ShopHub listening on %s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}
