package interfaces

import (
	"context"

	"github.com/haguru/bloglist/internal/models"
)

// BlogRepository defines the contract for storing and retrieving Blog data.
type BlogRepository interface {
	AddBlog(ctx context.Context, blog models.Blog) (string, error)
	GetBlogByID(ctx context.Context, id string) (*models.Blog, error)
	ListBlogs(ctx context.Context) ([]models.Blog, error)
	// UpdateBlog replaces the mutable fields (title, author, url, likes) of
	// the blog with the given id.
	UpdateBlog(ctx context.Context, id string, blog models.Blog) error
	DeleteBlog(ctx context.Context, id string) error
	EnsureIndices(ctx context.Context) error
	Close(ctx context.Context) error
}
