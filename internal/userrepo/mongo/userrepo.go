package mongo

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/haguru/bloglist/internal/apperrors"
	"github.com/haguru/bloglist/internal/interfaces"
	"github.com/haguru/bloglist/internal/models"
	"github.com/haguru/bloglist/internal/userrepo/constants"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	mongoClient "github.com/haguru/bloglist/pkg/databases/mongo"
	"github.com/go-viper/mapstructure/v2"
	mongosdk "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoUserRepository implements UserRepository using the generic DBClient.
type MongoUserRepository struct {
	dbClient interfaces.DBClient
}

// mongoUser is the BSON shape of a stored user.
type mongoUser struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Username     string             `bson:"username"`
	Name         string             `bson:"name"`
	PasswordHash string             `bson:"password_hash"`
	Blogs        []string           `bson:"blogs"`
}

// NewMongoUserRepository creates a new MongoDB repository instance. dbClient
// must be the Mongo implementation of DBClient.
func NewMongoUserRepository(dbClient interfaces.DBClient) (interfaces.UserRepository, error) {
	if dbClient == nil {
		return nil, fmt.Errorf("dbClient cannot be nil")
	}
	if _, ok := dbClient.(*mongoClient.MongoDBClient); !ok {
		return nil, fmt.Errorf("dbClient must be a MongoDB client")
	}
	return &MongoUserRepository{dbClient: dbClient}, nil
}

// AddUser saves a new user and returns the generated id.
func (r *MongoUserRepository) AddUser(ctx context.Context, user models.User) (string, error) {
	blogs := user.Blogs
	if blogs == nil {
		blogs = []string{}
	}
	doc := bson.M{
		"username":      user.Username,
		"name":          user.Name,
		"password_hash": user.PasswordHash,
		"blogs":         blogs,
	}

	insertedID, err := r.dbClient.InsertOne(ctx, constants.UsersCollection, doc)
	if err != nil {
		// MongoDB duplicate key error on the unique username index. The service
		// checks uniqueness up front; this covers the race between check and insert.
		if strings.Contains(err.Error(), "E11000 duplicate key error") {
			return "", apperrors.NewValidationError("expected `username` must be unique")
		}
		return "", apperrors.StoreFailure("add user", err)
	}

	objID, ok := insertedID.(primitive.ObjectID)
	if !ok {
		return "", apperrors.StoreFailure("add user", fmt.Errorf("inserted ID is not an ObjectID"))
	}
	return objID.Hex(), nil
}

// GetUserByUsername retrieves a user by username. Returns (nil, nil) when no
// such user exists.
func (r *MongoUserRepository) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	var stored mongoUser
	filter := bson.M{"username": username}
	err := r.dbClient.FindOne(ctx, constants.UsersCollection, filter, &stored)
	if err != nil {
		if errors.Is(err, mongosdk.ErrNoDocuments) {
			return nil, nil
		}
		return nil, apperrors.StoreFailure("get user by username", err)
	}

	return stored.toModel(), nil
}

// GetUserByID retrieves a user by id. Fails with apperrors.ErrMalformedID for
// an id that cannot be an ObjectID and apperrors.ErrNotFound for a missing one.
func (r *MongoUserRepository) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", apperrors.ErrMalformedID, id)
	}

	var stored mongoUser
	filter := bson.M{"_id": objID}
	err = r.dbClient.FindOne(ctx, constants.UsersCollection, filter, &stored)
	if err != nil {
		if errors.Is(err, mongosdk.ErrNoDocuments) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.StoreFailure("get user by id", err)
	}

	return stored.toModel(), nil
}

// ListUsers returns all users.
func (r *MongoUserRepository) ListUsers(ctx context.Context) ([]models.User, error) {
	docs, err := r.dbClient.FindMany(ctx, constants.UsersCollection, bson.M{})
	if err != nil {
		return nil, apperrors.StoreFailure("list users", err)
	}

	users := make([]models.User, 0, len(docs))
	for _, doc := range docs {
		user, err := decodeUserDocument(doc)
		if err != nil {
			return nil, apperrors.StoreFailure("list users", err)
		}
		users = append(users, *user)
	}
	return users, nil
}

// AppendBlog adds a blog id to the user's owned-blogs set.
func (r *MongoUserRepository) AppendBlog(ctx context.Context, userID, blogID string) error {
	user, err := r.GetUserByID(ctx, userID)
	if err != nil {
		return err
	}

	objID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return fmt.Errorf("%w: %q", apperrors.ErrMalformedID, userID)
	}

	blogs := append(user.Blogs, blogID)
	matched, err := r.dbClient.UpdateOne(ctx,
		constants.UsersCollection,
		bson.M{"_id": objID},
		bson.M{"blogs": blogs},
	)
	if err != nil {
		return apperrors.StoreFailure("append blog to user", err)
	}
	if matched == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// EnsureIndices creates the unique username index.
func (r *MongoUserRepository) EnsureIndices(ctx context.Context) error {
	indexModel := mongosdk.IndexModel{
		Keys:    bson.M{"username": 1},
		Options: options.Index().SetUnique(true),
	}
	// Index creation is MongoDB-specific and not part of the generic DBClient.
	client := r.dbClient.(*mongoClient.MongoDBClient)
	return client.EnsureSchema(ctx, constants.UsersCollection, indexModel)
}

// Close disconnects the MongoDB client.
func (r *MongoUserRepository) Close(ctx context.Context) error {
	return r.dbClient.Disconnect(ctx)
}

func (u *mongoUser) toModel() *models.User {
	return &models.User{
		ID:           u.ID.Hex(),
		Username:     u.Username,
		Name:         u.Name,
		PasswordHash: u.PasswordHash,
		Blogs:        u.Blogs,
	}
}

// decodeUserDocument converts a generic FindMany document into a models.User.
func decodeUserDocument(doc interfaces.Document) (*models.User, error) {
	docMap, ok := doc.(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("unexpected document type %T", doc)
	}

	var user models.User
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &user,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(docMap); err != nil {
		return nil, err
	}

	if objID, ok := docMap["_id"].(primitive.ObjectID); ok {
		user.ID = objID.Hex()
	}
	return &user, nil
}
