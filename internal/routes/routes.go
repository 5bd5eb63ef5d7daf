package routes

import (
	"crypto/ecdsa"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/haguru/bloglist/internal/apperrors"
	"github.com/haguru/bloglist/internal/auth"
	"github.com/haguru/bloglist/internal/interfaces"
	"github.com/haguru/bloglist/internal/middleware"
	"github.com/haguru/bloglist/internal/models"
	"github.com/haguru/bloglist/internal/models/dto"

	"github.com/go-chi/chi/v5"
	structValidator "github.com/go-playground/validator/v10"
)

type Route struct {
	Metrics     interfaces.Metrics
	UserService interfaces.UserService
	BlogService interfaces.BlogService
	PrivateKey  *ecdsa.PrivateKey
	Logger      interfaces.Logger
	validator   *structValidator.Validate
}

// NewRoute creates a new Route instance.
func NewRoute(metrics interfaces.Metrics, userService interfaces.UserService,
	blogService interfaces.BlogService, privateKey *ecdsa.PrivateKey,
	validator *structValidator.Validate, logger interfaces.Logger,
) *Route {
	return &Route{
		Metrics:     metrics,
		UserService: userService,
		BlogService: blogService,
		PrivateKey:  privateKey,
		Logger:      logger,
		validator:   validator,
	}
}

// ListBlogs handles GET /blogs. No authentication required.
func (r *Route) ListBlogs(w http.ResponseWriter, req *http.Request) {
	blogs, err := r.BlogService.ListBlogs(req.Context())
	if err != nil {
		r.errorResponse(w, statusForError(err), err, "Failed to list blogs")
		return
	}

	response := make([]dto.BlogResponseDTO, 0, len(blogs))
	for _, blog := range blogs {
		response = append(response, toBlogResponse(blog))
	}
	r.jsonResponse(w, http.StatusOK, response)
}

// GetBlog handles GET /blogs/{id}. No authentication required.
func (r *Route) GetBlog(w http.ResponseWriter, req *http.Request) {
	id := chi.URLParam(req, "id")

	blog, err := r.BlogService.GetBlog(req.Context(), id)
	if err != nil {
		r.errorResponse(w, statusForError(err), err, "Failed to get blog")
		return
	}
	r.jsonResponse(w, http.StatusOK, toBlogResponse(*blog))
}

// BlogStats handles GET /blogs/stats. No authentication required.
func (r *Route) BlogStats(w http.ResponseWriter, req *http.Request) {
	summary, err := r.BlogService.Stats(req.Context())
	if err != nil {
		r.errorResponse(w, statusForError(err), err, "Failed to compute blog stats")
		return
	}

	response := dto.BlogStatsDTO{TotalLikes: summary.TotalLikes}
	if summary.Favorite != nil {
		response.Favorite = &dto.FavoriteBlogDTO{
			Title:  summary.Favorite.Title,
			Author: summary.Favorite.Author,
			Likes:  summary.Favorite.Likes,
		}
	}
	if summary.MostBlogs != nil {
		response.MostBlogs = &dto.AuthorBlogCountDTO{
			Author: summary.MostBlogs.Author,
			Blogs:  summary.MostBlogs.Blogs,
		}
	}
	if summary.MostLikes != nil {
		response.MostLikes = &dto.AuthorLikeCountDTO{
			Author: summary.MostLikes.Author,
			Likes:  summary.MostLikes.Likes,
		}
	}
	r.jsonResponse(w, http.StatusOK, response)
}

// CreateBlog handles POST /blogs. Requires a bearer token; the authenticated
// identity becomes the blog's owner.
func (r *Route) CreateBlog(w http.ResponseWriter, req *http.Request) {
	if r.Metrics != nil {
		r.Metrics.IncCounter(BlogCreateRequestsTotal)
	}

	identity, ok := middleware.IdentityFromContext(req.Context())
	if !ok {
		r.countError(BlogCreateErrorsTotal)
		r.errorResponse(w, http.StatusUnauthorized, apperrors.ErrMissingToken, "Authentication required")
		return
	}

	createRequest := &dto.BlogCreateRequestDTO{}
	if !r.decodeBody(w, req, createRequest, BlogCreateErrorsTotal) {
		return
	}

	// Omitted likes default to zero.
	likes := 0
	if createRequest.Likes != nil {
		likes = *createRequest.Likes
	}

	var startTime time.Time
	if r.Metrics != nil {
		startTime = time.Now()
	}

	blog := models.Blog{
		Title:  createRequest.Title,
		Author: createRequest.Author,
		URL:    createRequest.URL,
		Likes:  likes,
	}

	created, err := r.BlogService.CreateBlog(req.Context(), blog, identity.ID)
	if err != nil {
		r.countError(BlogCreateErrorsTotal)
		r.errorResponse(w, statusForError(err), err, "Failed to create blog")
		return
	}

	if r.Metrics != nil {
		r.Metrics.IncCounter(BlogCreateSuccessTotal)
		r.Metrics.ObserveHistogram(BlogCreateDurationSeconds, time.Since(startTime).Seconds())
	}

	r.jsonResponse(w, http.StatusCreated, toBlogResponse(*created))
}

// UpdateBlog handles PUT /blogs/{id}. Requires a bearer token; only the
// owning user may update.
func (r *Route) UpdateBlog(w http.ResponseWriter, req *http.Request) {
	if r.Metrics != nil {
		r.Metrics.IncCounter(BlogUpdateRequestsTotal)
	}

	identity, ok := middleware.IdentityFromContext(req.Context())
	if !ok {
		r.countError(BlogUpdateErrorsTotal)
		r.errorResponse(w, http.StatusUnauthorized, apperrors.ErrMissingToken, "Authentication required")
		return
	}

	updateRequest := &dto.BlogUpdateRequestDTO{}
	if !r.decodeBody(w, req, updateRequest, BlogUpdateErrorsTotal) {
		return
	}

	id := chi.URLParam(req, "id")
	update := models.Blog{
		Title:  updateRequest.Title,
		Author: updateRequest.Author,
		URL:    updateRequest.URL,
		Likes:  updateRequest.Likes,
	}

	updated, err := r.BlogService.UpdateBlog(req.Context(), id, update, identity.ID)
	if err != nil {
		r.countError(BlogUpdateErrorsTotal)
		r.errorResponse(w, statusForError(err), err, "Failed to update blog")
		return
	}

	r.jsonResponse(w, http.StatusOK, toBlogResponse(*updated))
}

// DeleteBlog handles DELETE /blogs/{id}. Requires a bearer token; only the
// owning user may delete.
func (r *Route) DeleteBlog(w http.ResponseWriter, req *http.Request) {
	if r.Metrics != nil {
		r.Metrics.IncCounter(BlogDeleteRequestsTotal)
	}

	identity, ok := middleware.IdentityFromContext(req.Context())
	if !ok {
		r.countError(BlogDeleteErrorsTotal)
		r.errorResponse(w, http.StatusUnauthorized, apperrors.ErrMissingToken, "Authentication required")
		return
	}

	id := chi.URLParam(req, "id")
	if err := r.BlogService.DeleteBlog(req.Context(), id, identity.ID); err != nil {
		r.countError(BlogDeleteErrorsTotal)
		r.errorResponse(w, statusForError(err), err, "Failed to delete blog")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Signup handles POST /users.
func (r *Route) Signup(w http.ResponseWriter, req *http.Request) {
	if r.Metrics != nil {
		r.Metrics.IncCounter(SignupRequestsTotal)
	}

	signupRequest := &dto.UserSignupRequestDTO{}
	if !r.decodeBody(w, req, signupRequest, SignupErrorsTotal) {
		return
	}

	var startTime time.Time
	if r.Metrics != nil {
		startTime = time.Now()
	}

	userID, err := r.UserService.RegisterUser(req.Context(),
		signupRequest.Username, signupRequest.Name, signupRequest.Password)
	if err != nil {
		r.countError(SignupErrorsTotal)
		r.errorResponse(w, statusForError(err), err, "Failed to register user")
		return
	}

	if r.Metrics != nil {
		r.Metrics.IncCounter(SignupSuccessTotal)
		r.Metrics.ObserveHistogram(SignupDurationSeconds, time.Since(startTime).Seconds())
	}

	response := dto.UserResponseDTO{
		ID:       userID,
		Username: signupRequest.Username,
		Name:     signupRequest.Name,
		Blogs:    []dto.BlogResponseDTO{},
	}
	r.jsonResponse(w, http.StatusCreated, response)
}

// ListUsers handles GET /users, returning users with their owned blogs.
func (r *Route) ListUsers(w http.ResponseWriter, req *http.Request) {
	users, err := r.UserService.ListUsers(req.Context())
	if err != nil {
		r.errorResponse(w, statusForError(err), err, "Failed to list users")
		return
	}

	response := make([]dto.UserResponseDTO, 0, len(users))
	for _, user := range users {
		response = append(response, toUserResponse(user))
	}
	r.jsonResponse(w, http.StatusOK, response)
}

// Login handles POST /login, exchanging credentials for a bearer token.
func (r *Route) Login(w http.ResponseWriter, req *http.Request) {
	if r.Metrics != nil {
		r.Metrics.IncCounter(LoginRequestsTotal)
	}

	loginRequest := &dto.LoginRequestDTO{}
	if !r.decodeBody(w, req, loginRequest, LoginFailedTotal) {
		return
	}

	var startTime time.Time
	if r.Metrics != nil {
		startTime = time.Now()
	}

	user, err := r.UserService.AuthenticateUser(req.Context(), loginRequest.Username, loginRequest.Password)
	if err != nil {
		r.countError(LoginFailedTotal)
		if r.Metrics != nil {
			r.Metrics.ObserveHistogram(LoginDurationSeconds, time.Since(startTime).Seconds())
		}
		// Only a credential failure gets the generic 401 message; anything
		// else (a store fault, for instance) keeps its own status.
		if errors.Is(err, apperrors.ErrUnauthorized) {
			r.errorResponse(w, http.StatusUnauthorized, errors.New(ErrInvalidCredentials), "Invalid username or password")
			return
		}
		r.errorResponse(w, statusForError(err), err, "Failed to authenticate user")
		return
	}

	sessionToken, err := auth.CreateToken(user.ID, r.PrivateKey)
	if err != nil {
		r.countError(LoginFailedTotal)
		r.errorResponse(w, http.StatusInternalServerError, err, "Failed to generate session token")
		return
	}

	if r.Metrics != nil {
		r.Metrics.IncCounter(LoginSuccessTotal)
		r.Metrics.ObserveHistogram(LoginDurationSeconds, time.Since(startTime).Seconds())
	}

	response := dto.LoginResponseDTO{
		Token:    sessionToken,
		Username: user.Username,
		Name:     user.Name,
	}
	r.jsonResponse(w, http.StatusOK, response)
}

// decodeBody enforces the JSON content type and decodes the request body into
// target. Writes the error response itself and returns false on failure.
func (r *Route) decodeBody(w http.ResponseWriter, req *http.Request, target interface{}, errorCounter string) bool {
	if req.Header.Get(ContentType) != ContentTypeJson {
		r.countError(errorCounter)
		r.errorResponse(w, http.StatusBadRequest,
			fmt.Errorf(ErrInvalidContentTypeFormat, req.Header.Get(ContentType)),
			"Request Content-Type must be application/json")
		return false
	}

	if err := json.NewDecoder(req.Body).Decode(target); err != nil {
		r.countError(errorCounter)
		r.errorResponse(w, http.StatusBadRequest, err, "Invalid request body")
		return false
	}

	if err := r.validator.Struct(target); err != nil {
		r.countError(errorCounter)
		var validationErrors structValidator.ValidationErrors
		if errors.As(err, &validationErrors) {
			r.errorResponse(w, http.StatusBadRequest,
				fmt.Errorf("invalid request data: %s", validationErrors), "Request data validation failed")
			return false
		}
		// Struct can also fail with an InvalidValidationError when handed a
		// non-struct target; that is a server bug, not a client error.
		r.errorResponse(w, http.StatusInternalServerError, err, "Request data validation failed")
		return false
	}

	return true
}

func (r *Route) countError(name string) {
	if r.Metrics != nil {
		r.Metrics.IncCounter(name)
	}
}

func (r *Route) jsonResponse(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set(ContentType, ContentTypeJson)
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		r.Logger.Error(ErrFailedToEncodeResponse, "error", err)
	}
}

func (r *Route) errorResponse(w http.ResponseWriter, status int, err error, message string) {
	w.Header().Set(ContentType, ContentTypeJson)
	w.WriteHeader(status)
	jsonResponse := map[string]string{
		"error":   err.Error(),
		"message": message,
	}
	_ = json.NewEncoder(w).Encode(jsonResponse)
}

// statusForError maps the apperrors taxonomy onto HTTP status codes. A
// non-owner requester maps to 401, not 403, matching the upstream contract.
func statusForError(err error) int {
	switch {
	case apperrors.IsValidation(err):
		return http.StatusBadRequest
	case errors.Is(err, apperrors.ErrMalformedID):
		return http.StatusBadRequest
	case errors.Is(err, apperrors.ErrMissingToken),
		errors.Is(err, apperrors.ErrInvalidToken),
		errors.Is(err, apperrors.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, apperrors.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func toBlogResponse(blog models.BlogWithOwner) dto.BlogResponseDTO {
	response := dto.BlogResponseDTO{
		ID:     blog.Blog.ID,
		Title:  blog.Blog.Title,
		Author: blog.Blog.Author,
		URL:    blog.Blog.URL,
		Likes:  blog.Blog.Likes,
	}
	if blog.Owner != nil {
		response.User = &dto.BlogOwnerDTO{
			ID:       blog.Owner.ID,
			Username: blog.Owner.Username,
			Name:     blog.Owner.Name,
		}
	}
	return response
}

func toUserResponse(user models.UserWithBlogs) dto.UserResponseDTO {
	blogs := make([]dto.BlogResponseDTO, 0, len(user.Blogs))
	for _, blog := range user.Blogs {
		blogs = append(blogs, dto.BlogResponseDTO{
			ID:     blog.ID,
			Title:  blog.Title,
			Author: blog.Author,
			URL:    blog.URL,
			Likes:  blog.Likes,
		})
	}
	return dto.UserResponseDTO{
		ID:       user.User.ID,
		Username: user.User.Username,
		Name:     user.User.Name,
		Blogs:    blogs,
	}
}
