package mongo

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/haguru/bloglist/config"
	"github.com/haguru/bloglist/internal/interfaces"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	MAXPOOLSIZE = 20
	IDFIELD     = "_id"
)

// MongoDBClient implements the interfaces.DBClient interface for MongoDB operations.
type MongoDBClient struct {
	ServerOpts       *options.ServerAPIOptions
	client           *mongo.Client
	db               *mongo.Database
	timeout          time.Duration
	logger           interfaces.Logger
	validCollections map[string]bool // A map to validate collection names
	validFields      map[string]bool // A map to validate field names
}

// NewMongoDB returns an interface for the db client and an error if it occurs.
func NewMongoDB(dbConfig *config.MongoDBConfig, logger interfaces.Logger) (interfaces.DBClient, error) {
	db := &MongoDBClient{
		timeout:          dbConfig.Timeout,
		ServerOpts:       config.BuildServerAPIOptions(dbConfig.Options),
		logger:           logger,
		validCollections: config.ListToMap(dbConfig.ValidCollections),
		validFields:      config.ListToMap(dbConfig.ValidFields),
	}

	return db, nil
}

// Connect establishes a connection to the MongoDB database using the provided
// DSN. The DSN should be in the format "mongodb://<host>:<port>/<database>";
// the database name is extracted from the DSN path and set as the active
// database for the client.
func (m *MongoDBClient) Connect(ctx context.Context, dsn string) error {
	if dsn == "" {
		return fmt.Errorf("MongoDBClient: DSN is empty")
	}
	if !strings.HasPrefix(dsn, "mongodb://") && !strings.HasPrefix(dsn, "mongodb+srv://") {
		return fmt.Errorf("MongoDBClient: Invalid DSN format, expected 'mongodb://' or 'mongodb+srv://'")
	}

	// Set a timeout for the connection
	if m.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, m.timeout)
		defer cancel()
	}
	clientOptions := options.Client().ApplyURI(dsn)

	// Set the server API options if provided
	if m.ServerOpts != nil {
		clientOptions.SetServerAPIOptions(m.ServerOpts)
	}
	clientOptions.SetMaxPoolSize(MAXPOOLSIZE)
	clientOptions.SetReadPreference(readpref.PrimaryPreferred())

	var err error
	m.client, err = mongo.Connect(ctx, clientOptions)
	if err != nil {
		return err
	}

	// Check if the connection is successful by pinging the server
	if err = m.client.Ping(ctx, readpref.Primary()); err != nil {
		return fmt.Errorf("MongoDBClient: Failed to connect to MongoDB server: %v", err)
	}
	m.logger.Info("Connected to MongoDB server")

	databaseName, err := m.getDBNameFromMongoDSN(dsn)
	if err != nil {
		return fmt.Errorf("MongoDBClient: Failed to extract database name from datasource name(dsn): %v", err)
	}

	m.db = m.client.Database(databaseName)
	return nil
}

// Disconnect closes the connection to the MongoDB database.
func (m *MongoDBClient) Disconnect(ctx context.Context) error {
	if m.client != nil {
		return m.client.Disconnect(ctx)
	}

	return nil
}

// InsertOne inserts a document and returns its ID.
func (m *MongoDBClient) InsertOne(ctx context.Context, collectionName string, document interfaces.Document) (interface{}, error) {
	if !m.validCollections[collectionName] {
		return nil, fmt.Errorf("MongoDBClient: Invalid collection name: %s", collectionName)
	}

	sanitizedDocument, err := m.sanitizeDocument(document, false)
	if err != nil {
		return nil, err
	}

	res, err := m.db.Collection(collectionName).InsertOne(ctx, sanitizedDocument)
	if err != nil {
		return nil, fmt.Errorf("MongoDBClient: Failed to insert one into %s: %w", collectionName, err)
	}

	return res.InsertedID, nil
}

// FindOne retrieves a single document from the specified collection using a
// filter and decodes it into result. mongo.ErrNoDocuments is passed through
// untouched so callers can translate it.
func (m *MongoDBClient) FindOne(ctx context.Context, collectionName string, filter interfaces.Document, result interfaces.Document) error {
	if !m.validCollections[collectionName] {
		return fmt.Errorf("MongoDBClient: Invalid collection name: %s", collectionName)
	}

	sanitizedFilter, err := m.sanitizeDocument(filter, true)
	if err != nil {
		return err
	}

	err = m.db.Collection(collectionName).FindOne(ctx, sanitizedFilter).Decode(result)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return err
		}
		return fmt.Errorf("MongoDBClient: Failed to find one in %s: %v", collectionName, err)
	}

	return nil
}

// FindMany retrieves multiple documents from the specified collection. Each
// result is a map[string]interface{} for the caller to decode.
func (m *MongoDBClient) FindMany(ctx context.Context, collectionName string, filter interfaces.Document) ([]interfaces.Document, error) {
	if !m.validCollections[collectionName] {
		return nil, fmt.Errorf("MongoDBClient: Invalid collection name: %s", collectionName)
	}

	sanitizedFilter, err := m.sanitizeDocument(filter, true)
	if err != nil {
		return nil, err
	}

	cursor, err := m.db.Collection(collectionName).Find(ctx, sanitizedFilter)
	if err != nil {
		return nil, fmt.Errorf("MongoDBClient: Finding many in %s failed: %v", collectionName, err)
	}

	defer func() {
		if err := cursor.Close(ctx); err != nil {
			m.logger.Warn("Failed to close cursor", "error", err)
		}
	}()

	var results []interfaces.Document
	for cursor.Next(ctx) {
		var doc map[string]interface{}
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("MongoDBClient: Failed to decode cursor: %v", err)
		}
		results = append(results, doc)
	}

	return results, nil
}

// UpdateOne modifies a single document in the specified collection. update is
// a plain field map; the client wraps it in a $set so operator injection via
// document keys is impossible. Returns the count of modified documents.
func (m *MongoDBClient) UpdateOne(ctx context.Context, collectionName string, filter interfaces.Document, update interfaces.Document) (int64, error) {
	if !m.validCollections[collectionName] {
		return 0, fmt.Errorf("MongoDBClient: Invalid collection name: %s", collectionName)
	}

	sanitizedFilter, err := m.sanitizeDocument(filter, true)
	if err != nil {
		return 0, err
	}
	sanitizedUpdate, err := m.sanitizeDocument(update, false)
	if err != nil {
		return 0, err
	}

	res, err := m.db.Collection(collectionName).UpdateOne(ctx, sanitizedFilter, bson.M{"$set": sanitizedUpdate})
	if err != nil {
		return 0, fmt.Errorf("MongoDBClient: Failed updating one in %s: %v", collectionName, err)
	}

	return res.MatchedCount, nil
}

// DeleteOne removes a single document from the specified collection using a
// filter. Returns the count of deleted documents.
func (m *MongoDBClient) DeleteOne(ctx context.Context, collectionName string, filter interfaces.Document) (int64, error) {
	if !m.validCollections[collectionName] {
		return 0, fmt.Errorf("MongoDBClient: Invalid collection name: %s", collectionName)
	}

	sanitizedFilter, err := m.sanitizeDocument(filter, true)
	if err != nil {
		return 0, err
	}

	res, err := m.db.Collection(collectionName).DeleteOne(ctx, sanitizedFilter)
	if err != nil {
		return 0, fmt.Errorf("MongoDBClient: Failed deleting one from %s: %v", collectionName, err)
	}

	return res.DeletedCount, nil
}

// DeleteMany removes multiple documents from a collection using a filter.
// Returns the count of deleted documents.
func (m *MongoDBClient) DeleteMany(ctx context.Context, collectionName string, filter interfaces.Document) (int64, error) {
	if !m.validCollections[collectionName] {
		return 0, fmt.Errorf("MongoDBClient: Invalid collection name: %s", collectionName)
	}

	sanitizedFilter, err := m.sanitizeDocument(filter, true)
	if err != nil {
		return 0, err
	}

	res, err := m.db.Collection(collectionName).DeleteMany(ctx, sanitizedFilter)
	if err != nil {
		return 0, fmt.Errorf("MongoDBClient: Failed deleting many from %s: %v", collectionName, err)
	}

	return res.DeletedCount, nil
}

// Ping verifies the MongoDB connection health.
func (m *MongoDBClient) Ping(ctx context.Context) error {
	return m.client.Ping(ctx, nil)
}

// getDBNameFromMongoDSN extracts the database name from a MongoDB DSN.
func (m *MongoDBClient) getDBNameFromMongoDSN(dsn string) (string, error) {
	u, err := url.Parse(dsn)
	if err != nil {
		return "", fmt.Errorf("failed to parse MongoDB DSN: %w", err)
	}

	dbName := strings.TrimPrefix(u.Path, "/")
	if dbName == "" {
		return "", fmt.Errorf("no database name found in MongoDB DSN path: %s", dsn)
	}

	// If the path contains additional segments (e.g., /db/collection), use only
	// the first as the database name.
	if idx := strings.Index(dbName, "/"); idx != -1 {
		dbName = dbName[:idx]
	}

	return dbName, nil
}

// EnsureSchema creates the required index on the specified collection using
// the provided mongo.IndexModel. If the collection does not exist, it will be
// created automatically. This is MongoDB-specific and not part of the generic
// DBClient.
func (m *MongoDBClient) EnsureSchema(ctx context.Context, collectionName string, schema interfaces.Document) error {
	if m.db == nil {
		return fmt.Errorf("MongoDBClient is not connected to a database")
	}

	model, ok := schema.(mongo.IndexModel)
	if !ok {
		return fmt.Errorf("EnsureSchema: expected mongo.IndexModel for MongoDB")
	}

	collection := m.db.Collection(collectionName)
	_, err := collection.Indexes().CreateOne(ctx, model)
	return err
}

// sanitizeDocument copies the document keeping only allow-listed field names,
// guarding against NoSQL injection through keys. The _id field is kept only
// when allowID is set (filters may address records by id; inserts and updates
// must never overwrite it).
func (m *MongoDBClient) sanitizeDocument(document interfaces.Document, allowID bool) (interfaces.Document, error) {
	if document == nil {
		return nil, fmt.Errorf("MongoDBClient: Document cannot be nil")
	}

	var docMap map[string]interface{}
	switch d := document.(type) {
	case bson.M:
		docMap = d
	case map[string]interface{}:
		docMap = d
	default:
		return nil, fmt.Errorf("MongoDBClient: Document must be a map, got %T", document)
	}

	sanitized := make(bson.M)
	for key, value := range docMap {
		if key == IDFIELD {
			if allowID {
				sanitized[key] = value
			}
			continue
		}

		if _, ok := m.validFields[key]; !ok || strings.ContainsAny(key, "$.") {
			m.logger.Warn("Skipping invalid or unsafe field name", "field", key)
			continue
		}

		sanitized[key] = value
	}

	return sanitized, nil
}
