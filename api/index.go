// Package api adapts the application to serverless platforms that route every
// request through a single exported Handler.
package api

import (
	"context"
	"log"
	"net/http"
	"sync"

	"shophub/app"

	"github.com/gin-gonic/gin"
)

var (
	router  *gin.Engine
	initErr error
	once    sync.Once
)

func initApp() {
	once.Do(func() {
		gin.SetMode(gin.ReleaseMode)
		router, _, initErr = app.New(context.Background())
		if initErr != nil {
			log.Printf("Failed to initialize application: %v", initErr)
		}
	})
}

func Handler(w http.ResponseWriter, r *http.Request) {
	initApp()
	if initErr != nil {
		http.Error(w, "service unavailable", http.StatusServiceUnavailable)
		return
	}
	router.ServeHTTP(w, r)
}
