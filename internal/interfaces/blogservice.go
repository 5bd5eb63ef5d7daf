package interfaces

import (
	"context"

	"github.com/haguru/bloglist/internal/models"
	"github.com/haguru/bloglist/pkg/blogstats"
)

type BlogService interface {
	ListBlogs(ctx context.Context) ([]models.BlogWithOwner, error)
	GetBlog(ctx context.Context, id string) (*models.BlogWithOwner, error)
	// CreateBlog stores a blog owned by ownerID and appends the new blog id to
	// that user's owned-blogs set in the same logical operation.
	CreateBlog(ctx context.Context, blog models.Blog, ownerID string) (*models.BlogWithOwner, error)
	// UpdateBlog replaces the mutable blog fields. The ownership policy is
	// evaluated before any store mutation; a non-owner requester fails with
	// apperrors.ErrUnauthorized.
	UpdateBlog(ctx context.Context, id string, blog models.Blog, requesterID string) (*models.BlogWithOwner, error)
	// DeleteBlog removes the blog, subject to the same ownership policy.
	DeleteBlog(ctx context.Context, id string, requesterID string) error
	// Stats aggregates the full blog list.
	Stats(ctx context.Context) (*blogstats.Summary, error)
}
