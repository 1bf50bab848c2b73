package router

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/FDead21/afc-web/internal/handler"
	"github.com/FDead21/afc-web/internal/service"
	"github.com/FDead21/afc-web/pkg/logger"
)

// Handlers bundles every resource handler the router mounts.
type Handlers struct {
	Product *handler.ProductHandler
	Catalog *handler.CatalogHandler
	Blog    *handler.BlogHandler
	Review  *handler.ReviewHandler
	Message *handler.MessageHandler
	Quiz    *handler.QuizHandler
	Content *handler.ContentHandler
	Hero    *handler.HeroHandler
	Search  *handler.SearchHandler
	Upload  *handler.UploadHandler
	Auth    *handler.AuthHandler
}

// Router mounts the API under /api/v1 and gates the admin surface.
type Router struct {
	handlers    Handlers
	authService service.AuthServiceInterface
	logger      *logger.Logger
}

func New(handlers Handlers, authService service.AuthServiceInterface, log *logger.Logger) *Router {
	return &Router{
		handlers:    handlers,
		authService: authService,
		logger:      log.WithComponent("router"),
	}
}

// Setup registers all routes and returns the root handler with the
// access gate applied.
func (rt *Router) Setup() http.Handler {
	mux := http.NewServeMux()

	// Public storefront reads
	mux.HandleFunc("GET /api/v1/homepage", rt.handlers.Content.GetHomepage)
	mux.HandleFunc("GET /api/v1/products", rt.handlers.Product.ListProducts)
	mux.HandleFunc("GET /api/v1/products/{id}", rt.handlers.Product.GetProduct)
	mux.HandleFunc("GET /api/v1/categories", rt.handlers.Catalog.ListCategories)
	mux.HandleFunc("GET /api/v1/ingredients", rt.handlers.Catalog.ListIngredients)
	mux.HandleFunc("GET /api/v1/posts", rt.handlers.Blog.ListPosts)
	mux.HandleFunc("GET /api/v1/posts/{id}", rt.handlers.Blog.GetPost)
	mux.HandleFunc("GET /api/v1/hero-slides", rt.handlers.Hero.ListActiveSlides)
	mux.HandleFunc("GET /api/v1/quiz/questions", rt.handlers.Quiz.GetQuestions)
	mux.HandleFunc("GET /api/v1/content", rt.handlers.Content.GetSiteCopy)
	mux.HandleFunc("GET /api/v1/search", rt.handlers.Search.Search)

	// Public storefront writes
	mux.HandleFunc("POST /api/v1/contact", rt.handlers.Message.SubmitContactForm)
	mux.HandleFunc("POST /api/v1/reviews", rt.handlers.Review.SubmitReview)
	mux.HandleFunc("POST /api/v1/quiz/recommend", rt.handlers.Quiz.Recommend)

	// Session
	mux.HandleFunc("GET /api/v1/auth/session", rt.handlers.Auth.GetSession)
	mux.HandleFunc("POST /api/v1/auth/signout", rt.handlers.Auth.SignOut)

	// Admin: products
	mux.HandleFunc("POST /api/v1/admin/products", rt.handlers.Product.CreateProduct)
	mux.HandleFunc("PUT /api/v1/admin/products/{id}", rt.handlers.Product.UpdateProduct)
	mux.HandleFunc("DELETE /api/v1/admin/products/{id}", rt.handlers.Product.DeleteProduct)
	mux.HandleFunc("GET /api/v1/admin/products/{id}/edit-form", rt.handlers.Product.GetProductEditForm)
	mux.HandleFunc("POST /api/v1/admin/products/{id}/images", rt.handlers.Upload.UploadProductImages)
	mux.HandleFunc("DELETE /api/v1/admin/product-images/{id}", rt.handlers.Product.DeleteProductImage)

	// Admin: taxonomy
	mux.HandleFunc("POST /api/v1/admin/categories", rt.handlers.Catalog.CreateCategory)
	mux.HandleFunc("DELETE /api/v1/admin/categories/{id}", rt.handlers.Catalog.DeleteCategory)
	mux.HandleFunc("POST /api/v1/admin/ingredients", rt.handlers.Catalog.CreateIngredient)
	mux.HandleFunc("DELETE /api/v1/admin/ingredients/{id}", rt.handlers.Catalog.DeleteIngredient)

	// Admin: blog
	mux.HandleFunc("POST /api/v1/admin/posts", rt.handlers.Blog.CreatePost)
	mux.HandleFunc("PUT /api/v1/admin/posts/{id}", rt.handlers.Blog.UpdatePost)
	mux.HandleFunc("DELETE /api/v1/admin/posts/{id}", rt.handlers.Blog.DeletePost)

	// Admin: moderation and inbox
	mux.HandleFunc("GET /api/v1/admin/reviews", rt.handlers.Review.ListReviews)
	mux.HandleFunc("POST /api/v1/admin/reviews/{id}/approve", rt.handlers.Review.ApproveReview)
	mux.HandleFunc("DELETE /api/v1/admin/reviews/{id}", rt.handlers.Review.DeleteReview)
	mux.HandleFunc("GET /api/v1/admin/messages", rt.handlers.Message.ListMessages)

	// Admin: quiz content
	mux.HandleFunc("POST /api/v1/admin/quiz/questions", rt.handlers.Quiz.CreateQuestion)
	mux.HandleFunc("DELETE /api/v1/admin/quiz/questions/{id}", rt.handlers.Quiz.DeleteQuestion)
	mux.HandleFunc("POST /api/v1/admin/quiz/questions/{id}/answers", rt.handlers.Quiz.CreateAnswer)
	mux.HandleFunc("DELETE /api/v1/admin/quiz/answers/{id}", rt.handlers.Quiz.DeleteAnswer)

	// Admin: site copy, layout, hero carousel, uploads
	mux.HandleFunc("PUT /api/v1/admin/content", rt.handlers.Content.UpdateSiteContent)
	mux.HandleFunc("GET /api/v1/admin/sections", rt.handlers.Content.GetSections)
	mux.HandleFunc("PUT /api/v1/admin/sections", rt.handlers.Content.SaveSections)
	mux.HandleFunc("GET /api/v1/admin/hero-slides", rt.handlers.Hero.ListAllSlides)
	mux.HandleFunc("POST /api/v1/admin/hero-slides", rt.handlers.Hero.CreateSlide)
	mux.HandleFunc("POST /api/v1/admin/hero-slides/{id}/toggle", rt.handlers.Hero.ToggleSlide)
	mux.HandleFunc("DELETE /api/v1/admin/hero-slides/{id}", rt.handlers.Hero.DeleteSlide)
	mux.HandleFunc("POST /api/v1/admin/uploads/image", rt.handlers.Upload.UploadImage)
	mux.HandleFunc("POST /api/v1/admin/uploads/hero-image", rt.handlers.Upload.UpdateHeroImage)

	return rt.gate(mux)
}

// gate enforces the access rules in front of the mux: the admin API
// answers 401 without a session, admin pages bounce to /login, and a
// signed-in visit to /login bounces back to /admin. Handlers still
// check the session themselves, so a route missed here fails closed.
func (rt *Router) gate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path := r.URL.Path

		if strings.HasPrefix(path, "/api/v1/admin/") {
			if rt.authService.SessionFromRequest(r) == nil {
				rt.logger.Debug("Blocked unauthenticated admin request", "path", path)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(map[string]string{"error": service.ErrUnauthorized})
				return
			}
			next.ServeHTTP(w, r)
			return
		}

		if path == "/admin" || strings.HasPrefix(path, "/admin/") {
			if rt.authService.SessionFromRequest(r) == nil {
				http.Redirect(w, r, "/login", http.StatusSeeOther)
				return
			}
		}
		if path == "/login" {
			if rt.authService.SessionFromRequest(r) != nil {
				http.Redirect(w, r, "/admin", http.StatusSeeOther)
				return
			}
		}

		next.ServeHTTP(w, r)
	})
}
