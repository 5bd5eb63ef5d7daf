package interfaces

import (
	"context"

	"github.com/haguru/bloglist/internal/models"
)

// UserRepository defines the contract for storing and retrieving User data.
// Implementations exist for MongoDB and PostgreSQL; the interface itself is
// database-agnostic.
type UserRepository interface {
	AddUser(ctx context.Context, user models.User) (string, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	GetUserByID(ctx context.Context, id string) (*models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	// AppendBlog adds a blog id to the user's owned-blogs set. Called in the
	// same logical operation as the blog insert to keep the owner reference
	// and the owned-blogs set consistent.
	AppendBlog(ctx context.Context, userID, blogID string) error
	EnsureIndices(ctx context.Context) error
	Close(ctx context.Context) error
}
