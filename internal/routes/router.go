package routes

import (
	"crypto/ecdsa"
	"net/http"

	"github.com/haguru/bloglist/internal/interfaces"
	"github.com/haguru/bloglist/internal/middleware"

	"github.com/go-chi/chi/v5"
	"golang.org/x/time/rate"
)

// NewRouter constructs the HTTP handler serving the bloglist API.
//
// Routes:
//
//	GET    /blogs        → Route.ListBlogs
//	GET    /blogs/stats  → Route.BlogStats
//	GET    /blogs/{id}   → Route.GetBlog
//	POST   /blogs        → Route.CreateBlog   (bearer token)
//	PUT    /blogs/{id}   → Route.UpdateBlog   (bearer token)
//	DELETE /blogs/{id}   → Route.DeleteBlog   (bearer token)
//	POST   /users        → Route.Signup
//	GET    /users        → Route.ListUsers
//	POST   /login        → Route.Login        (rate limited)
//
// The metrics handler is mounted separately by the app so it can be wrapped
// with tracing.
func NewRouter(route *Route, publicKey *ecdsa.PublicKey, userRepo interfaces.UserRepository,
	loginLimiter *rate.Limiter, logger interfaces.Logger,
) http.Handler {
	r := chi.NewRouter()

	// Public endpoints
	r.Get(BlogsRouteAPI, route.ListBlogs)
	r.Get(BlogStatsRouteAPI, route.BlogStats)
	r.Get(BlogsByIDRouteAPI, route.GetBlog)
	r.Post(UsersRouteAPI, route.Signup)
	r.Get(UsersRouteAPI, route.ListUsers)

	r.Group(func(r chi.Router) {
		r.Use(middleware.RateLimitMiddleware(loginLimiter))
		r.Post(LoginRouteAPI, route.Login)
	})

	// Protected group: requires a valid bearer token
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth(publicKey, userRepo, logger))
		r.Post(BlogsRouteAPI, route.CreateBlog)
		r.Put(BlogsByIDRouteAPI, route.UpdateBlog)
		r.Delete(BlogsByIDRouteAPI, route.DeleteBlog)
	})

	return r
}
