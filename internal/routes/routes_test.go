package routes

import (
	"bytes"
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/x509"
	"encoding/json"
	"encoding/pem"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/haguru/bloglist/internal/apperrors"
	"github.com/haguru/bloglist/internal/auth"
	"github.com/haguru/bloglist/internal/interfaces/mocks"
	"github.com/haguru/bloglist/internal/models"
	"github.com/haguru/bloglist/internal/userservice"
	"github.com/haguru/bloglist/pkg/blogstats"
	"github.com/haguru/bloglist/pkg/zerolog"

	structValidator "github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/time/rate"
)

const testKeyFile = "validKey.pem"

var testLogger = zerolog.NewZerologLogger("routes_test")

func TestMain(m *testing.M) {
	priv, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if err != nil {
		panic("failed to generate ECDSA key: " + err.Error())
	}

	der, err := x509.MarshalECPrivateKey(priv)
	if err != nil {
		panic("failed to marshal ECDSA key: " + err.Error())
	}
	block := &pem.Block{
		Type:  "EC PRIVATE KEY",
		Bytes: der,
	}

	f, err := os.Create(testKeyFile)
	if err != nil {
		panic("failed to create PEM file: " + err.Error())
	}
	if err := pem.Encode(f, block); err != nil {
		f.Close()
		_ = os.Remove(testKeyFile)
		panic("failed to encode PEM: " + err.Error())
	}
	f.Close()

	code := m.Run()

	_ = os.Remove(testKeyFile)

	os.Exit(code)
}

func testPrivateKey(t *testing.T) *ecdsa.PrivateKey {
	t.Helper()
	privateKey, err := auth.LoadECDSAPrivateKey(testKeyFile)
	if err != nil {
		t.Fatalf("Failed to load private key: %v", err)
	}
	return privateKey
}

func hashString(t *testing.T, input string) string {
	t.Helper()
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(input), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("Failed to hash string: %v", err)
	}
	return string(hashedBytes)
}

func TestRoute_Login(t *testing.T) {
	tests := []struct {
		name           string
		contentType    string
		body           string
		wantStatusCode int
	}{
		{
			name:           "valid login request",
			contentType:    "application/json",
			body:           fmt.Sprintf(`{"username":"%s","password":"%s"}`, "hellas", "sekret"),
			wantStatusCode: http.StatusOK,
		},
		{
			name:           "wrong password",
			contentType:    "application/json",
			body:           fmt.Sprintf(`{"username":"%s","password":"%s"}`, "hellas", "wrong"),
			wantStatusCode: http.StatusUnauthorized,
		},
		{
			name:           "unknown user",
			contentType:    "application/json",
			body:           fmt.Sprintf(`{"username":"%s","password":"%s"}`, "nobody", "sekret"),
			wantStatusCode: http.StatusUnauthorized,
		},
		{
			name:           "store failure is not a credential error",
			contentType:    "application/json",
			body:           fmt.Sprintf(`{"username":"%s","password":"%s"}`, "down", "sekret"),
			wantStatusCode: http.StatusInternalServerError,
		},
		{
			name:           "missing Content-Type",
			contentType:    "",
			body:           fmt.Sprintf(`{"username":"%s","password":"%s"}`, "hellas", "sekret"),
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name:           "invalid JSON body",
			contentType:    "application/json",
			body:           fmt.Sprintf(`{"username":"%s""password":"%s"}`, "hellas", "sekret"),
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name:           "missing credentials",
			contentType:    "application/json",
			body:           `{}`,
			wantStatusCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userRepo := mocks.NewMockUserRepository(t)
			userRepo.On("GetUserByUsername", mock.Anything, "hellas").Return(&models.User{
				ID:           "u1",
				Username:     "hellas",
				Name:         "Arto Hellas",
				PasswordHash: hashString(t, "sekret"),
			}, nil).Maybe()
			userRepo.On("GetUserByUsername", mock.Anything, "nobody").Return(nil, nil).Maybe()
			userRepo.On("GetUserByUsername", mock.Anything, "down").
				Return(nil, apperrors.StoreFailure("get user by username", errors.New("connection refused"))).Maybe()

			userService := userservice.NewUserService(userRepo, mocks.NewMockBlogRepository(t), testLogger)

			route := NewRoute(nil, userService, mocks.NewMockBlogService(t), testPrivateKey(t),
				structValidator.New(), testLogger)

			req := httptest.NewRequest(http.MethodPost, LoginRouteAPI, bytes.NewBufferString(tt.body))
			if tt.contentType != "" {
				req.Header.Set(ContentType, tt.contentType)
			}
			rr := httptest.NewRecorder()

			route.Login(rr, req)

			if rr.Code != tt.wantStatusCode {
				t.Fatalf("got status %d, want %d: %s", rr.Code, tt.wantStatusCode, rr.Body.String())
			}

			if tt.wantStatusCode == http.StatusOK {
				var response struct {
					Token    string `json:"token"`
					Username string `json:"username"`
					Name     string `json:"name"`
				}
				if err := json.NewDecoder(rr.Body).Decode(&response); err != nil {
					t.Fatalf("failed to decode login response: %v", err)
				}
				if response.Token == "" {
					t.Errorf("login response has no token")
				}
				if response.Username != "hellas" || response.Name != "Arto Hellas" {
					t.Errorf("login response = %+v, want hellas/Arto Hellas", response)
				}
			}
		})
	}
}

func TestRoute_Signup(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		existing       *models.User
		wantStatusCode int
		wantMessage    string
	}{
		{
			name:           "valid signup",
			body:           `{"username":"hellas","name":"Arto Hellas","password":"sekret"}`,
			wantStatusCode: http.StatusCreated,
		},
		{
			name:           "username too short",
			body:           `{"username":"ab","name":"Arto Hellas","password":"sekret"}`,
			wantStatusCode: http.StatusBadRequest,
			wantMessage:    userservice.MsgUsernameTooShort,
		},
		{
			name:           "password too short",
			body:           `{"username":"hellas","name":"Arto Hellas","password":"pw"}`,
			wantStatusCode: http.StatusBadRequest,
			wantMessage:    userservice.MsgPasswordTooShort,
		},
		{
			name:           "name missing",
			body:           `{"username":"hellas","password":"sekret"}`,
			wantStatusCode: http.StatusBadRequest,
			wantMessage:    userservice.MsgNameRequired,
		},
		{
			name:           "duplicate username",
			body:           `{"username":"hellas","name":"Arto Hellas","password":"sekret"}`,
			existing:       &models.User{ID: "u1", Username: "hellas"},
			wantStatusCode: http.StatusBadRequest,
			wantMessage:    userservice.MsgUsernameNotUnique,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userRepo := mocks.NewMockUserRepository(t)
			userRepo.On("GetUserByUsername", mock.Anything, "hellas").
				Return(tt.existing, nil).Maybe()
			userRepo.On("AddUser", mock.Anything, mock.AnythingOfType("models.User")).
				Return("u1", nil).Maybe()

			userService := userservice.NewUserService(userRepo, mocks.NewMockBlogRepository(t), testLogger)

			route := NewRoute(nil, userService, mocks.NewMockBlogService(t), testPrivateKey(t),
				structValidator.New(), testLogger)

			req := httptest.NewRequest(http.MethodPost, UsersRouteAPI, bytes.NewBufferString(tt.body))
			req.Header.Set(ContentType, ContentTypeJson)
			rr := httptest.NewRecorder()

			route.Signup(rr, req)

			if rr.Code != tt.wantStatusCode {
				t.Fatalf("got status %d, want %d: %s", rr.Code, tt.wantStatusCode, rr.Body.String())
			}

			if tt.wantMessage != "" {
				var response map[string]string
				if err := json.NewDecoder(rr.Body).Decode(&response); err != nil {
					t.Fatalf("failed to decode error response: %v", err)
				}
				if response["error"] != tt.wantMessage {
					t.Errorf("error = %q, want %q", response["error"], tt.wantMessage)
				}
			}
		})
	}
}

func TestRoute_DecodeBodyNonStructTarget(t *testing.T) {
	route := NewRoute(nil, mocks.NewMockUserService(t), mocks.NewMockBlogService(t),
		testPrivateKey(t), structValidator.New(), testLogger)

	req := httptest.NewRequest(http.MethodPost, LoginRouteAPI, bytes.NewBufferString(`"just a string"`))
	req.Header.Set(ContentType, ContentTypeJson)
	rr := httptest.NewRecorder()

	target := ""
	if route.decodeBody(rr, req, &target, LoginFailedTotal) {
		t.Fatalf("decodeBody() accepted a target the validator cannot check")
	}
	if rr.Code != http.StatusInternalServerError {
		t.Errorf("got status %d, want %d: %s", rr.Code, http.StatusInternalServerError, rr.Body.String())
	}
}

// routerFixture wires the full router with mocked services so requests take
// the same path as production traffic, middleware included.
func routerFixture(t *testing.T, blogService *mocks.MockBlogService, userRepo *mocks.MockUserRepository) http.Handler {
	t.Helper()
	privateKey := testPrivateKey(t)

	route := NewRoute(nil, mocks.NewMockUserService(t), blogService, privateKey,
		structValidator.New(), testLogger)

	limiter := rate.NewLimiter(rate.Limit(100), 100)
	return NewRouter(route, &privateKey.PublicKey, userRepo, limiter, testLogger)
}

func TestRouter_ListBlogsIsPublic(t *testing.T) {
	blogService := mocks.NewMockBlogService(t)
	owner := &models.User{ID: "u1", Username: "hellas", Name: "Arto Hellas"}
	blogService.On("ListBlogs", mock.Anything).Return([]models.BlogWithOwner{
		{
			Blog: models.Blog{
				ID:     "b1",
				Title:  "React patterns",
				Author: "Michael Chan",
				URL:    "https://reactpatterns.com/",
				Likes:  7,
				UserID: "u1",
			},
			Owner: owner,
		},
	}, nil)

	router := routerFixture(t, blogService, mocks.NewMockUserRepository(t))

	req := httptest.NewRequest(http.MethodGet, BlogsRouteAPI, nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("got status %d, want %d: %s", rr.Code, http.StatusOK, rr.Body.String())
	}

	var response []map[string]interface{}
	if err := json.NewDecoder(rr.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(response) != 1 {
		t.Fatalf("got %d blogs, want 1", len(response))
	}
	if _, leaked := response[0]["userId"]; leaked {
		t.Errorf("owner id leaked into the blog response body")
	}
	user, ok := response[0]["user"].(map[string]interface{})
	if !ok || user["username"] != "hellas" {
		t.Errorf("blog response user = %v, want embedded owner summary", response[0]["user"])
	}
}

func TestRouter_BlogStats(t *testing.T) {
	blogService := mocks.NewMockBlogService(t)
	blogService.On("Stats", mock.Anything).Return(&blogstats.Summary{
		TotalLikes: 3216,
		Favorite:   &blogstats.Favorite{Title: "Secrets to being pretty", Author: "Michaela", Likes: 2939},
		MostBlogs:  &blogstats.AuthorBlogs{Author: "Michaela", Blogs: 1},
		MostLikes:  &blogstats.AuthorLikes{Author: "Michaela", Likes: 2939},
	}, nil)

	router := routerFixture(t, blogService, mocks.NewMockUserRepository(t))

	req := httptest.NewRequest(http.MethodGet, BlogStatsRouteAPI, nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("got status %d, want %d: %s", rr.Code, http.StatusOK, rr.Body.String())
	}

	var response struct {
		TotalLikes int `json:"totalLikes"`
		Favorite   *struct {
			Title string `json:"title"`
		} `json:"favoriteBlog"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if response.TotalLikes != 3216 {
		t.Errorf("totalLikes = %d, want 3216", response.TotalLikes)
	}
	if response.Favorite == nil || response.Favorite.Title != "Secrets to being pretty" {
		t.Errorf("favorite = %+v, want Secrets to being pretty", response.Favorite)
	}
}

func TestRouter_CreateBlog(t *testing.T) {
	knownUser := &models.User{ID: "u1", Username: "hellas", Name: "Arto Hellas"}

	tests := []struct {
		name           string
		token          bool
		body           string
		wantStatusCode int
	}{
		{
			name:           "without token",
			token:          false,
			body:           `{"title":"React patterns","author":"Michael Chan","url":"https://reactpatterns.com/"}`,
			wantStatusCode: http.StatusUnauthorized,
		},
		{
			name:           "with token",
			token:          true,
			body:           `{"title":"React patterns","author":"Michael Chan","url":"https://reactpatterns.com/","likes":7}`,
			wantStatusCode: http.StatusCreated,
		},
		{
			name:           "with token but invalid payload",
			token:          true,
			body:           `{"author":"Michael Chan"}`,
			wantStatusCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			blogService := mocks.NewMockBlogService(t)
			blogService.On("CreateBlog", mock.Anything, mock.AnythingOfType("models.Blog"), "u1").
				Return(&models.BlogWithOwner{
					Blog: models.Blog{
						ID:     "b1",
						Title:  "React patterns",
						Author: "Michael Chan",
						URL:    "https://reactpatterns.com/",
						Likes:  7,
						UserID: "u1",
					},
					Owner: knownUser,
				}, nil).Maybe()

			userRepo := mocks.NewMockUserRepository(t)
			userRepo.On("GetUserByID", mock.Anything, "u1").Return(knownUser, nil).Maybe()

			router := routerFixture(t, blogService, userRepo)

			req := httptest.NewRequest(http.MethodPost, BlogsRouteAPI, bytes.NewBufferString(tt.body))
			req.Header.Set(ContentType, ContentTypeJson)
			if tt.token {
				token, err := auth.CreateToken("u1", testPrivateKey(t))
				if err != nil {
					t.Fatalf("CreateToken() error = %v", err)
				}
				req.Header.Set("Authorization", "Bearer "+token)
			}
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			if rr.Code != tt.wantStatusCode {
				t.Fatalf("got status %d, want %d: %s", rr.Code, tt.wantStatusCode, rr.Body.String())
			}
		})
	}
}

func TestRouter_DeleteBlogOwnership(t *testing.T) {
	knownUser := &models.User{ID: "u2", Username: "mluukkai", Name: "Matti Luukkainen"}

	blogService := mocks.NewMockBlogService(t)
	blogService.On("DeleteBlog", mock.Anything, "b1", "u2").
		Return(fmt.Errorf("%w: user %q does not own blog %q", apperrors.ErrUnauthorized, "u2", "b1"))

	userRepo := mocks.NewMockUserRepository(t)
	userRepo.On("GetUserByID", mock.Anything, "u2").Return(knownUser, nil)

	router := routerFixture(t, blogService, userRepo)

	token, err := auth.CreateToken("u2", testPrivateKey(t))
	if err != nil {
		t.Fatalf("CreateToken() error = %v", err)
	}

	req := httptest.NewRequest(http.MethodDelete, "/blogs/b1", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("got status %d, want %d: %s", rr.Code, http.StatusUnauthorized, rr.Body.String())
	}
}
