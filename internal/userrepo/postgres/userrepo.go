package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/haguru/bloglist/internal/apperrors"
	blogconstants "github.com/haguru/bloglist/internal/blogrepo/constants"
	"github.com/haguru/bloglist/internal/interfaces"
	"github.com/haguru/bloglist/internal/models"
	"github.com/haguru/bloglist/internal/userrepo/constants"
	postgresClient "github.com/haguru/bloglist/pkg/databases/postgres"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// PostgresUserRepository implements UserRepository for PostgreSQL databases.
type PostgresUserRepository struct {
	dbClient *postgresClient.PostgresDatabaseClient
}

// NewPostgresUserRepository creates a new PostgreSQL repository instance.
func NewPostgresUserRepository(dbClient interfaces.DBClient) (interfaces.UserRepository, error) {
	if dbClient == nil {
		return nil, fmt.Errorf("dbClient cannot be nil")
	}
	concrete, ok := dbClient.(*postgresClient.PostgresDatabaseClient)
	if !ok {
		return nil, fmt.Errorf("dbClient must be a PostgreSQL client")
	}
	return &PostgresUserRepository{dbClient: concrete}, nil
}

// AddUser saves a new user and returns the generated id.
func (r *PostgresUserRepository) AddUser(ctx context.Context, user models.User) (string, error) {
	doc := map[string]interface{}{
		"username":      user.Username,
		"name":          user.Name,
		"password_hash": user.PasswordHash,
	}

	insertedID, err := r.dbClient.InsertOne(ctx, constants.UsersCollection, doc)
	if err != nil {
		// 23505 is unique_violation; covers the race between the service's
		// uniqueness check and this insert.
		if pgErr, ok := err.(*pq.Error); ok && pgErr.Code == "23505" {
			return "", apperrors.NewValidationError("expected `username` must be unique")
		}
		return "", apperrors.StoreFailure("add user", err)
	}

	strID, ok := insertedID.(string)
	if !ok {
		return "", apperrors.StoreFailure("add user", fmt.Errorf("inserted ID is not a string"))
	}
	return strID, nil
}

// GetUserByUsername retrieves a user by username, with the owned blog ids
// joined from the blogs table. Returns (nil, nil) when no such user exists.
func (r *PostgresUserRepository) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	filter := map[string]interface{}{"username": username}
	err := r.dbClient.FindOne(ctx, constants.UsersCollection, filter, &user)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, apperrors.StoreFailure("get user by username", err)
	}

	if err := r.loadOwnedBlogs(ctx, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// GetUserByID retrieves a user by id. Fails with apperrors.ErrMalformedID for
// an id that cannot be a UUID and apperrors.ErrNotFound for a missing one.
func (r *PostgresUserRepository) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("%w: %q", apperrors.ErrMalformedID, id)
	}

	var user models.User
	filter := map[string]interface{}{"id": id}
	err := r.dbClient.FindOne(ctx, constants.UsersCollection, filter, &user)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.StoreFailure("get user by id", err)
	}

	if err := r.loadOwnedBlogs(ctx, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// ListUsers returns all users with their owned blog ids joined.
func (r *PostgresUserRepository) ListUsers(ctx context.Context) ([]models.User, error) {
	docs, err := r.dbClient.FindMany(ctx, constants.UsersCollection, map[string]interface{}{})
	if err != nil {
		return nil, apperrors.StoreFailure("list users", err)
	}

	blogsByOwner, err := r.ownedBlogIDs(ctx)
	if err != nil {
		return nil, err
	}

	users := make([]models.User, 0, len(docs))
	for _, doc := range docs {
		docMap, ok := doc.(map[string]interface{})
		if !ok {
			return nil, apperrors.StoreFailure("list users", fmt.Errorf("unexpected document type %T", doc))
		}
		user := models.User{
			ID:           stringField(docMap, "id"),
			Username:     stringField(docMap, "username"),
			Name:         stringField(docMap, "name"),
			PasswordHash: stringField(docMap, "password_hash"),
			Blogs:        blogsByOwner[stringField(docMap, "id")],
		}
		if user.Blogs == nil {
			user.Blogs = []string{}
		}
		users = append(users, user)
	}
	return users, nil
}

// AppendBlog is a no-op for PostgreSQL: ownership is the blogs.user_id column,
// so the owned-blogs set is consistent by construction.
func (r *PostgresUserRepository) AppendBlog(ctx context.Context, userID, blogID string) error {
	return nil
}

// EnsureIndices creates the users table and its unique username constraint.
func (r *PostgresUserRepository) EnsureIndices(ctx context.Context) error {
	return r.dbClient.EnsureSchema(ctx, constants.UsersCollection, constants.UsersTableDDL)
}

// Close closes the PostgreSQL database connection.
func (r *PostgresUserRepository) Close(ctx context.Context) error {
	return r.dbClient.Disconnect(ctx)
}

func (r *PostgresUserRepository) loadOwnedBlogs(ctx context.Context, user *models.User) error {
	docs, err := r.dbClient.FindMany(ctx, blogconstants.BlogsCollection, map[string]interface{}{"user_id": user.ID})
	if err != nil {
		return apperrors.StoreFailure("load owned blogs", err)
	}

	user.Blogs = make([]string, 0, len(docs))
	for _, doc := range docs {
		if docMap, ok := doc.(map[string]interface{}); ok {
			user.Blogs = append(user.Blogs, stringField(docMap, "id"))
		}
	}
	return nil
}

func (r *PostgresUserRepository) ownedBlogIDs(ctx context.Context) (map[string][]string, error) {
	docs, err := r.dbClient.FindMany(ctx, blogconstants.BlogsCollection, map[string]interface{}{})
	if err != nil {
		return nil, apperrors.StoreFailure("load owned blogs", err)
	}

	byOwner := make(map[string][]string)
	for _, doc := range docs {
		if docMap, ok := doc.(map[string]interface{}); ok {
			owner := stringField(docMap, "user_id")
			if owner == "" {
				continue
			}
			byOwner[owner] = append(byOwner[owner], stringField(docMap, "id"))
		}
	}
	return byOwner, nil
}

func stringField(docMap map[string]interface{}, key string) string {
	if value, ok := docMap[key].(string); ok {
		return value
	}
	return ""
}
