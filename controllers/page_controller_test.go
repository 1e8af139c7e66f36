package controllers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"shophub/storefront"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newPageRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	ctrl := NewPageController(storefront.NewStaticProvider())

	router := gin.New()
	router.LoadHTMLGlob("../web/templates/*.tmpl")
	router.GET("/", ctrl.Home)
	router.GET("/category/:slug", ctrl.Category)
	router.GET("/about", ctrl.About)
	router.GET("/admin/posts/new", ctrl.AdminPostForm)
	router.GET("/admin/posts/:id", ctrl.AdminPostEdit)
	return router
}

func getPage(router *gin.Engine, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHomePageRenders(t *testing.T) {
	w := getPage(newPageRouter(), "/")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ShopHub")
}

func TestCategoryPageRenders(t *testing.T) {
	w := getPage(newPageRouter(), "/category/electronics")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Electronics")
}

func TestCategoryPageUnknownSlugIs404(t *testing.T) {
	w := getPage(newPageRouter(), "/category/no-such-category")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Not Found")
}

func TestAboutPageRenders(t *testing.T) {
	w := getPage(newPageRouter(), "/about")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "About")
}

func TestAdminPostEditCarriesPathID(t *testing.T) {
	router := newPageRouter()

	w := getPage(router, "/admin/posts/65a000000000000000000001")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `data-post-id="65a000000000000000000001"`)

	// the static /new sibling still serves a blank form
	w = getPage(router, "/admin/posts/new")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `data-post-id=""`)
}
