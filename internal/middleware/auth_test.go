package middleware

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/haguru/bloglist/internal/auth"
	"github.com/haguru/bloglist/internal/interfaces/mocks"
	"github.com/haguru/bloglist/internal/models"
	"github.com/haguru/bloglist/pkg/zerolog"

	"github.com/stretchr/testify/mock"
)

var (
	testPrivateKey  *ecdsa.PrivateKey
	otherPrivateKey *ecdsa.PrivateKey
	testLogger      = zerolog.NewZerologLogger("middleware_test")
)

func TestMain(m *testing.M) {
	var err error
	testPrivateKey, err = ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if err != nil {
		log.Fatalf("Failed to generate ECDSA private key for tests: %v", err)
	}
	otherPrivateKey, err = ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if err != nil {
		log.Fatalf("Failed to generate second ECDSA private key for tests: %v", err)
	}

	os.Exit(m.Run())
}

func TestRequireAuth(t *testing.T) {
	knownUser := &models.User{ID: "u1", Username: "hellas", Name: "Arto Hellas"}

	validToken, err := auth.CreateToken("u1", testPrivateKey)
	if err != nil {
		t.Fatalf("CreateToken() error = %v", err)
	}
	foreignToken, err := auth.CreateToken("u1", otherPrivateKey)
	if err != nil {
		t.Fatalf("CreateToken() error = %v", err)
	}
	ghostToken, err := auth.CreateToken("ghost", testPrivateKey)
	if err != nil {
		t.Fatalf("CreateToken() error = %v", err)
	}

	tests := []struct {
		name           string
		header         string
		storedUser     *models.User
		wantStatusCode int
		wantIdentity   bool
	}{
		{
			name:           "valid bearer token",
			header:         "Bearer " + validToken,
			storedUser:     knownUser,
			wantStatusCode: http.StatusOK,
			wantIdentity:   true,
		},
		{
			name:           "missing header",
			header:         "",
			wantStatusCode: http.StatusUnauthorized,
		},
		{
			name:           "wrong scheme",
			header:         "Basic " + validToken,
			wantStatusCode: http.StatusUnauthorized,
		},
		{
			name:           "lowercase bearer prefix is rejected",
			header:         "bearer " + validToken,
			wantStatusCode: http.StatusUnauthorized,
		},
		{
			name:           "empty token after prefix",
			header:         "Bearer ",
			wantStatusCode: http.StatusUnauthorized,
		},
		{
			name:           "token signed by a different key",
			header:         "Bearer " + foreignToken,
			wantStatusCode: http.StatusUnauthorized,
		},
		{
			name:           "token names unknown user",
			header:         "Bearer " + ghostToken,
			storedUser:     nil,
			wantStatusCode: http.StatusUnauthorized,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userRepo := mocks.NewMockUserRepository(t)
			userRepo.On("GetUserByID", mock.Anything, mock.AnythingOfType("string")).
				Return(tt.storedUser, nil).Maybe()

			var gotIdentity Identity
			var handlerCalled bool
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				handlerCalled = true
				gotIdentity, _ = IdentityFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodPost, "/blogs", nil)
			if tt.header != "" {
				req.Header.Set(AuthorizationHeader, tt.header)
			}
			rr := httptest.NewRecorder()

			RequireAuth(&testPrivateKey.PublicKey, userRepo, testLogger)(next).ServeHTTP(rr, req)

			if rr.Code != tt.wantStatusCode {
				t.Fatalf("got status %d, want %d", rr.Code, tt.wantStatusCode)
			}
			if tt.wantIdentity {
				if !handlerCalled {
					t.Fatalf("next handler was not called")
				}
				if gotIdentity.ID != "u1" || gotIdentity.Username != "hellas" {
					t.Errorf("identity = %+v, want u1/hellas", gotIdentity)
				}
				return
			}
			if handlerCalled {
				t.Errorf("next handler must not run for a rejected request")
			}
		})
	}
}

func TestIdentityFromContext_Absent(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/blogs", nil)
	if _, ok := IdentityFromContext(req.Context()); ok {
		t.Errorf("IdentityFromContext() reported an identity on a bare context")
	}
}
