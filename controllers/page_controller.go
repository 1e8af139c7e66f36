package controllers

import (
	"errors"
	"net/http"

	"shophub/repositories"
	"shophub/storefront"

	"github.com/gin-gonic/gin"
)

// PageController renders the server-side storefront and admin pages. All
// content comes through the ContentProvider so pages behave identically on
// the demo catalog and the live database.
type PageController struct {
	content storefront.ContentProvider
}

func NewPageController(content storefront.ContentProvider) *PageController {
	return &PageController{content: content}
}

func (ctrl *PageController) renderError(c *gin.Context, err error) {
	if errors.Is(err, repositories.ErrNotFound) {
		c.HTML(http.StatusNotFound, "error.tmpl", gin.H{
			"Title":   "Not Found",
			"Message": "The page you are looking for does not exist.",
		})
		return
	}
	c.HTML(http.StatusInternalServerError, "error.tmpl", gin.H{
		"Title":   "Something went wrong",
		"Message": "Please try again later.",
	})
}

func (ctrl *PageController) Home(c *gin.Context) {
	ctx := c.Request.Context()

	posts, err := ctrl.content.FeaturedPosts(ctx, 3)
	if err != nil {
		ctrl.renderError(c, err)
		return
	}
	products, err := ctrl.content.FeaturedProducts(ctx, 4)
	if err != nil {
		ctrl.renderError(c, err)
		return
	}
	categories, err := ctrl.content.Categories(ctx)
	if err != nil {
		ctrl.renderError(c, err)
		return
	}

	c.HTML(http.StatusOK, "home.tmpl", gin.H{
		"Title":      "ShopHub",
		"Posts":      posts,
		"Products":   products,
		"Categories": categories,
	})
}

func (ctrl *PageController) Products(c *gin.Context) {
	products, err := ctrl.content.Products(c.Request.Context(), c.Query("category"))
	if err != nil {
		ctrl.renderError(c, err)
		return
	}

	c.HTML(http.StatusOK, "products.tmpl", gin.H{
		"Title":    "Products",
		"Category": c.Query("category"),
		"Products": products,
	})
}

func (ctrl *PageController) Product(c *gin.Context) {
	ctx := c.Request.Context()
	slug := c.Param("slug")

	product, err := ctrl.content.ProductBySlug(ctx, slug)
	if err != nil {
		ctrl.renderError(c, err)
		return
	}
	reviews, err := ctrl.content.ReviewsForProduct(ctx, slug)
	if err != nil {
		ctrl.renderError(c, err)
		return
	}

	c.HTML(http.StatusOK, "product.tmpl", gin.H{
		"Title":   product.Name,
		"Product": product,
		"Reviews": reviews,
	})
}

func (ctrl *PageController) Deals(c *gin.Context) {
	deals, err := ctrl.content.Deals(c.Request.Context())
	if err != nil {
		ctrl.renderError(c, err)
		return
	}

	c.HTML(http.StatusOK, "deals.tmpl", gin.H{
		"Title": "Today's Deals",
		"Deals": deals,
	})
}

func (ctrl *PageController) Categories(c *gin.Context) {
	categories, err := ctrl.content.Categories(c.Request.Context())
	if err != nil {
		ctrl.renderError(c, err)
		return
	}

	c.HTML(http.StatusOK, "categories.tmpl", gin.H{
		"Title":      "Shop by Category",
		"Categories": categories,
	})
}

// Category shows one category's product listing, addressed by slug.
func (ctrl *PageController) Category(c *gin.Context) {
	ctx := c.Request.Context()

	category, err := ctrl.content.CategoryBySlug(ctx, c.Param("slug"))
	if err != nil {
		ctrl.renderError(c, err)
		return
	}
	products, err := ctrl.content.Products(ctx, category.Name)
	if err != nil {
		ctrl.renderError(c, err)
		return
	}

	c.HTML(http.StatusOK, "products.tmpl", gin.H{
		"Title":       category.Name,
		"Category":    category.Name,
		"Description": category.Description,
		"Products":    products,
	})
}

func (ctrl *PageController) Guides(c *gin.Context) {
	guides, err := ctrl.content.Guides(c.Request.Context())
	if err != nil {
		ctrl.renderError(c, err)
		return
	}

	c.HTML(http.StatusOK, "guides.tmpl", gin.H{
		"Title":  "Buying Guides",
		"Guides": guides,
	})
}

func (ctrl *PageController) Blog(c *gin.Context) {
	posts, err := ctrl.content.Posts(c.Request.Context(), c.Query("category"))
	if err != nil {
		ctrl.renderError(c, err)
		return
	}

	c.HTML(http.StatusOK, "blog.tmpl", gin.H{
		"Title":    "Blog",
		"Category": c.Query("category"),
		"Posts":    posts,
	})
}

func (ctrl *PageController) BlogPost(c *gin.Context) {
	post, err := ctrl.content.PostBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		ctrl.renderError(c, err)
		return
	}

	c.HTML(http.StatusOK, "blog_post.tmpl", gin.H{
		"Title": post.Title,
		"Post":  post,
	})
}

func (ctrl *PageController) Reviews(c *gin.Context) {
	ctx := c.Request.Context()

	products, err := ctrl.content.Products(ctx, "")
	if err != nil {
		ctrl.renderError(c, err)
		return
	}

	c.HTML(http.StatusOK, "reviews.tmpl", gin.H{
		"Title":    "Customer Reviews",
		"Products": products,
	})
}

// AdminDashboard serves the dashboard shell; the table and stats load from
// the JSON API via static/admin.js.
func (ctrl *PageController) AdminDashboard(c *gin.Context) {
	c.HTML(http.StatusOK, "admin_dashboard.tmpl", gin.H{
		"Title": "Admin Dashboard",
	})
}

func (ctrl *PageController) AdminPostForm(c *gin.Context) {
	c.HTML(http.StatusOK, "admin_post_form.tmpl", gin.H{
		"Title":  "New Post",
		"PostID": c.Query("id"),
	})
}

// AdminPostEdit serves the same form with the post id taken from the path.
func (ctrl *PageController) AdminPostEdit(c *gin.Context) {
	c.HTML(http.StatusOK, "admin_post_form.tmpl", gin.H{
		"Title":  "Edit Post",
		"PostID": c.Param("id"),
	})
}

func (ctrl *PageController) About(c *gin.Context) {
	c.HTML(http.StatusOK, "about.tmpl", gin.H{
		"Title": "About",
	})
}

func (ctrl *PageController) AdminLogin(c *gin.Context) {
	c.HTML(http.StatusOK, "admin_login.tmpl", gin.H{
		"Title": "Admin Login",
	})
}
