package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/haguru/bloglist/internal/apperrors"
	"github.com/haguru/bloglist/internal/blogrepo/constants"
	"github.com/haguru/bloglist/internal/interfaces"
	"github.com/haguru/bloglist/internal/models"
	postgresClient "github.com/haguru/bloglist/pkg/databases/postgres"

	"github.com/go-viper/mapstructure/v2"
	"github.com/google/uuid"
)

// PostgresBlogRepository implements BlogRepository for PostgreSQL databases.
type PostgresBlogRepository struct {
	dbClient *postgresClient.PostgresDatabaseClient
}

// NewPostgresBlogRepository creates a new PostgreSQL repository instance.
func NewPostgresBlogRepository(dbClient interfaces.DBClient) (interfaces.BlogRepository, error) {
	if dbClient == nil {
		return nil, fmt.Errorf("dbClient cannot be nil")
	}
	concrete, ok := dbClient.(*postgresClient.PostgresDatabaseClient)
	if !ok {
		return nil, fmt.Errorf("dbClient must be a PostgreSQL client")
	}
	return &PostgresBlogRepository{dbClient: concrete}, nil
}

// AddBlog saves a new blog and returns the generated id.
func (r *PostgresBlogRepository) AddBlog(ctx context.Context, blog models.Blog) (string, error) {
	doc := map[string]interface{}{
		"title":   blog.Title,
		"author":  blog.Author,
		"url":     blog.URL,
		"likes":   blog.Likes,
		"user_id": blog.UserID,
	}

	insertedID, err := r.dbClient.InsertOne(ctx, constants.BlogsCollection, doc)
	if err != nil {
		return "", apperrors.StoreFailure("add blog", err)
	}

	strID, ok := insertedID.(string)
	if !ok {
		return "", apperrors.StoreFailure("add blog", fmt.Errorf("inserted ID is not a string"))
	}
	return strID, nil
}

// GetBlogByID retrieves a blog by id. Fails with apperrors.ErrMalformedID for
// an id that cannot be a UUID and apperrors.ErrNotFound for a missing one.
func (r *PostgresBlogRepository) GetBlogByID(ctx context.Context, id string) (*models.Blog, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("%w: %q", apperrors.ErrMalformedID, id)
	}

	var blog models.Blog
	filter := map[string]interface{}{"id": id}
	err := r.dbClient.FindOne(ctx, constants.BlogsCollection, filter, &blog)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.StoreFailure("get blog by id", err)
	}

	return &blog, nil
}

// ListBlogs returns all blogs.
func (r *PostgresBlogRepository) ListBlogs(ctx context.Context) ([]models.Blog, error) {
	docs, err := r.dbClient.FindMany(ctx, constants.BlogsCollection, map[string]interface{}{})
	if err != nil {
		return nil, apperrors.StoreFailure("list blogs", err)
	}

	blogs := make([]models.Blog, 0, len(docs))
	for _, doc := range docs {
		blog, err := decodeBlogDocument(doc)
		if err != nil {
			return nil, apperrors.StoreFailure("list blogs", err)
		}
		blogs = append(blogs, *blog)
	}
	return blogs, nil
}

// UpdateBlog replaces the mutable fields of the blog with the given id.
func (r *PostgresBlogRepository) UpdateBlog(ctx context.Context, id string, blog models.Blog) error {
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("%w: %q", apperrors.ErrMalformedID, id)
	}

	update := map[string]interface{}{
		"title":  blog.Title,
		"author": blog.Author,
		"url":    blog.URL,
		"likes":  blog.Likes,
	}

	affected, err := r.dbClient.UpdateOne(ctx, constants.BlogsCollection, map[string]interface{}{"id": id}, update)
	if err != nil {
		return apperrors.StoreFailure("update blog", err)
	}
	if affected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteBlog removes the blog with the given id.
func (r *PostgresBlogRepository) DeleteBlog(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("%w: %q", apperrors.ErrMalformedID, id)
	}

	deleted, err := r.dbClient.DeleteOne(ctx, constants.BlogsCollection, map[string]interface{}{"id": id})
	if err != nil {
		return apperrors.StoreFailure("delete blog", err)
	}
	if deleted == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// EnsureIndices creates the blogs table.
func (r *PostgresBlogRepository) EnsureIndices(ctx context.Context) error {
	return r.dbClient.EnsureSchema(ctx, constants.BlogsCollection, constants.BlogsTableDDL)
}

// Close closes the PostgreSQL database connection.
func (r *PostgresBlogRepository) Close(ctx context.Context) error {
	return r.dbClient.Disconnect(ctx)
}

// decodeBlogDocument converts a generic FindMany document into a models.Blog.
func decodeBlogDocument(doc interfaces.Document) (*models.Blog, error) {
	docMap, ok := doc.(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("unexpected document type %T", doc)
	}

	var blog models.Blog
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &blog,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(docMap); err != nil {
		return nil, err
	}

	if id, ok := docMap["id"].(string); ok {
		blog.ID = id
	}
	return &blog, nil
}
