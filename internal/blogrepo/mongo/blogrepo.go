package mongo

import (
	"context"
	"errors"
	"fmt"

	"github.com/haguru/bloglist/internal/apperrors"
	"github.com/haguru/bloglist/internal/blogrepo/constants"
	"github.com/haguru/bloglist/internal/interfaces"
	"github.com/haguru/bloglist/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	mongoClient "github.com/haguru/bloglist/pkg/databases/mongo"
	"github.com/go-viper/mapstructure/v2"
	mongosdk "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoBlogRepository implements BlogRepository using the generic DBClient.
type MongoBlogRepository struct {
	dbClient interfaces.DBClient
}

// mongoBlog is the BSON shape of a stored blog.
type mongoBlog struct {
	ID     primitive.ObjectID `bson:"_id,omitempty"`
	Title  string             `bson:"title"`
	Author string             `bson:"author"`
	URL    string             `bson:"url"`
	Likes  int                `bson:"likes"`
	UserID string             `bson:"user_id"`
}

// NewMongoBlogRepository creates a new MongoDB repository instance. dbClient
// must be the Mongo implementation of DBClient.
func NewMongoBlogRepository(dbClient interfaces.DBClient) (interfaces.BlogRepository, error) {
	if dbClient == nil {
		return nil, fmt.Errorf("dbClient cannot be nil")
	}
	if _, ok := dbClient.(*mongoClient.MongoDBClient); !ok {
		return nil, fmt.Errorf("dbClient must be a MongoDB client")
	}
	return &MongoBlogRepository{dbClient: dbClient}, nil
}

// AddBlog saves a new blog and returns the generated id.
func (r *MongoBlogRepository) AddBlog(ctx context.Context, blog models.Blog) (string, error) {
	doc := bson.M{
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

	objID, ok := insertedID.(primitive.ObjectID)
	if !ok {
		return "", apperrors.StoreFailure("add blog", fmt.Errorf("inserted ID is not an ObjectID"))
	}
	return objID.Hex(), nil
}

// GetBlogByID retrieves a blog by id. Fails with apperrors.ErrMalformedID for
// an id that cannot be an ObjectID and apperrors.ErrNotFound for a missing one.
func (r *MongoBlogRepository) GetBlogByID(ctx context.Context, id string) (*models.Blog, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", apperrors.ErrMalformedID, id)
	}

	var stored mongoBlog
	filter := bson.M{"_id": objID}
	err = r.dbClient.FindOne(ctx, constants.BlogsCollection, filter, &stored)
	if err != nil {
		if errors.Is(err, mongosdk.ErrNoDocuments) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.StoreFailure("get blog by id", err)
	}

	return stored.toModel(), nil
}

// ListBlogs returns all blogs.
func (r *MongoBlogRepository) ListBlogs(ctx context.Context) ([]models.Blog, error) {
	docs, err := r.dbClient.FindMany(ctx, constants.BlogsCollection, bson.M{})
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
func (r *MongoBlogRepository) UpdateBlog(ctx context.Context, id string, blog models.Blog) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("%w: %q", apperrors.ErrMalformedID, id)
	}

	update := bson.M{
		"title":  blog.Title,
		"author": blog.Author,
		"url":    blog.URL,
		"likes":  blog.Likes,
	}

	matched, err := r.dbClient.UpdateOne(ctx, constants.BlogsCollection, bson.M{"_id": objID}, update)
	if err != nil {
		return apperrors.StoreFailure("update blog", err)
	}
	if matched == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteBlog removes the blog with the given id.
func (r *MongoBlogRepository) DeleteBlog(ctx context.Context, id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("%w: %q", apperrors.ErrMalformedID, id)
	}

	deleted, err := r.dbClient.DeleteOne(ctx, constants.BlogsCollection, bson.M{"_id": objID})
	if err != nil {
		return apperrors.StoreFailure("delete blog", err)
	}
	if deleted == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// EnsureIndices creates the owner index used by owned-blog lookups.
func (r *MongoBlogRepository) EnsureIndices(ctx context.Context) error {
	indexModel := mongosdk.IndexModel{
		Keys:    bson.M{"user_id": 1},
		Options: options.Index(),
	}
	client := r.dbClient.(*mongoClient.MongoDBClient)
	return client.EnsureSchema(ctx, constants.BlogsCollection, indexModel)
}

// Close disconnects the MongoDB client.
func (r *MongoBlogRepository) Close(ctx context.Context) error {
	return r.dbClient.Disconnect(ctx)
}

func (b *mongoBlog) toModel() *models.Blog {
	return &models.Blog{
		ID:     b.ID.Hex(),
		Title:  b.Title,
		Author: b.Author,
		URL:    b.URL,
		Likes:  b.Likes,
		UserID: b.UserID,
	}
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

	if objID, ok := docMap["_id"].(primitive.ObjectID); ok {
		blog.ID = objID.Hex()
	}
	return &blog, nil
}
