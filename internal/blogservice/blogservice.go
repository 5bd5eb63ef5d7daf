package blogservice

import (
	"context"
	"errors"
	"fmt"

	"github.com/haguru/bloglist/internal/apperrors"
	"github.com/haguru/bloglist/internal/interfaces"
	"github.com/haguru/bloglist/internal/models"
	"github.com/haguru/bloglist/internal/policy"
	"github.com/haguru/bloglist/pkg/blogstats"
	"github.com/haguru/bloglist/pkg/helper"
)

type BlogService struct {
	BlogRepo interfaces.BlogRepository
	UserRepo interfaces.UserRepository
	Logger   interfaces.Logger
}

// NewBlogService creates a new BlogService instance.
func NewBlogService(blogRepo interfaces.BlogRepository, userRepo interfaces.UserRepository,
	logger interfaces.Logger,
) *BlogService {
	return &BlogService{
		BlogRepo: blogRepo,
		UserRepo: userRepo,
		Logger:   logger,
	}
}

// ListBlogs returns all blogs with their owner summaries joined.
func (s *BlogService) ListBlogs(ctx context.Context) ([]models.BlogWithOwner, error) {
	blogs, err := s.BlogRepo.ListBlogs(ctx)
	if err != nil {
		s.Logger.Error(ErrFailedToListBlogs, "error", err)
		return nil, err
	}

	owners := make(map[string]*models.User)
	result := make([]models.BlogWithOwner, 0, len(blogs))
	for _, blog := range blogs {
		owner, err := s.resolveOwner(ctx, owners, blog.UserID)
		if err != nil {
			return nil, err
		}
		result = append(result, models.BlogWithOwner{Blog: blog, Owner: owner})
	}
	return result, nil
}

// GetBlog returns a single blog with its owner summary joined.
func (s *BlogService) GetBlog(ctx context.Context, id string) (*models.BlogWithOwner, error) {
	blog, err := s.BlogRepo.GetBlogByID(ctx, id)
	if err != nil {
		return nil, err
	}

	owner, err := s.resolveOwner(ctx, nil, blog.UserID)
	if err != nil {
		return nil, err
	}
	return &models.BlogWithOwner{Blog: *blog, Owner: owner}, nil
}

// CreateBlog stores a blog owned by ownerID and appends the new blog id to
// that user's owned-blogs set in the same logical operation, keeping the
// owner reference and the owned-blogs set consistent.
func (s *BlogService) CreateBlog(ctx context.Context, blog models.Blog, ownerID string) (*models.BlogWithOwner, error) {
	funcName := helper.GetFuncName()

	owner, err := s.UserRepo.GetUserByID(ctx, ownerID)
	if err != nil {
		s.Logger.Error(ErrRetrievingOwner, "func", funcName, "owner", ownerID, "error", err)
		return nil, err
	}

	blog.UserID = ownerID
	blogID, err := s.BlogRepo.AddBlog(ctx, blog)
	if err != nil {
		s.Logger.Error(ErrFailedToCreateBlog, "func", funcName, "error", err)
		return nil, err
	}

	if err := s.UserRepo.AppendBlog(ctx, ownerID, blogID); err != nil {
		s.Logger.Error(ErrFailedToCreateBlog, "func", funcName, "blog", blogID, "error", err)
		return nil, err
	}

	blog.ID = blogID
	s.Logger.Info("Blog created", "func", funcName, "blog", blogID, "owner", ownerID)
	return &models.BlogWithOwner{Blog: blog, Owner: owner}, nil
}

// UpdateBlog replaces the mutable fields of the blog with the given id. The
// ownership policy is evaluated before any store mutation so a denied request
// never leaves a partial write behind.
func (s *BlogService) UpdateBlog(ctx context.Context, id string, update models.Blog, requesterID string) (*models.BlogWithOwner, error) {
	funcName := helper.GetFuncName()

	existing, err := s.BlogRepo.GetBlogByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !policy.CanModify(existing, requesterID) {
		s.Logger.Warn("Blog update denied", "func", funcName, "blog", id, "requester", requesterID)
		return nil, fmt.Errorf("%w: user %q does not own blog %q", apperrors.ErrUnauthorized, requesterID, id)
	}

	if err := s.BlogRepo.UpdateBlog(ctx, id, update); err != nil {
		s.Logger.Error(ErrFailedToUpdateBlog, "func", funcName, "blog", id, "error", err)
		return nil, err
	}

	updated := existing
	updated.Title = update.Title
	updated.Author = update.Author
	updated.URL = update.URL
	updated.Likes = update.Likes

	owner, err := s.resolveOwner(ctx, nil, updated.UserID)
	if err != nil {
		return nil, err
	}
	return &models.BlogWithOwner{Blog: *updated, Owner: owner}, nil
}

// DeleteBlog removes the blog with the given id, subject to the same
// ownership policy as UpdateBlog.
func (s *BlogService) DeleteBlog(ctx context.Context, id string, requesterID string) error {
	funcName := helper.GetFuncName()

	existing, err := s.BlogRepo.GetBlogByID(ctx, id)
	if err != nil {
		return err
	}

	if !policy.CanModify(existing, requesterID) {
		s.Logger.Warn("Blog delete denied", "func", funcName, "blog", id, "requester", requesterID)
		return fmt.Errorf("%w: user %q does not own blog %q", apperrors.ErrUnauthorized, requesterID, id)
	}

	if err := s.BlogRepo.DeleteBlog(ctx, id); err != nil {
		s.Logger.Error(ErrFailedToDeleteBlog, "func", funcName, "blog", id, "error", err)
		return err
	}

	s.Logger.Info("Blog deleted", "func", funcName, "blog", id, "requester", requesterID)
	return nil
}

// Stats aggregates the full blog list.
func (s *BlogService) Stats(ctx context.Context) (*blogstats.Summary, error) {
	blogs, err := s.BlogRepo.ListBlogs(ctx)
	if err != nil {
		s.Logger.Error(ErrFailedToListBlogs, "error", err)
		return nil, err
	}

	summary := blogstats.Summarize(blogs)
	return &summary, nil
}

// resolveOwner looks up a blog's owner, tolerating legacy ownerless blogs and
// dangling references. cache may be nil.
func (s *BlogService) resolveOwner(ctx context.Context, cache map[string]*models.User, ownerID string) (*models.User, error) {
	if ownerID == "" {
		return nil, nil
	}
	if cache != nil {
		if owner, ok := cache[ownerID]; ok {
			return owner, nil
		}
	}

	owner, err := s.UserRepo.GetUserByID(ctx, ownerID)
	if err != nil {
		// A dangling owner reference degrades to an ownerless view rather than
		// failing the whole listing.
		if errors.Is(err, apperrors.ErrNotFound) || errors.Is(err, apperrors.ErrMalformedID) {
			owner = nil
		} else {
			s.Logger.Error(ErrRetrievingOwner, "owner", ownerID, "error", err)
			return nil, err
		}
	}

	if cache != nil {
		cache[ownerID] = owner
	}
	return owner, nil
}
