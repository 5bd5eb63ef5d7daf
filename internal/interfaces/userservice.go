package interfaces

import (
	"context"

	"github.com/haguru/bloglist/internal/models"
)

type UserService interface {
	// RegisterUser validates the registration request, checking in order the
	// username length, password length, display name presence and username
	// uniqueness, then hashes the password and stores the user. Returns the
	// new user id.
	RegisterUser(ctx context.Context, username, name, password string) (string, error)
	// AuthenticateUser verifies the credentials and returns the matching user.
	AuthenticateUser(ctx context.Context, username, password string) (*models.User, error)
	// ListUsers returns all users with their owned blogs joined.
	ListUsers(ctx context.Context) ([]models.UserWithBlogs, error)
}
