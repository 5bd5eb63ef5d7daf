package interfaces

import "context"

// Document is a generic interface to represent data that can be stored and
// retrieved from the database. It could be a struct, a map[string]interface{},
// or any type the specific database driver can marshal/unmarshal.
type Document interface{}

// DBClient defines the interface for a generic database client. It abstracts
// the operations shared by the MongoDB and PostgreSQL backends; repositories
// build their document semantics on top of it.
type DBClient interface {
	// Connect establishes a connection using the given DSN.
	Connect(ctx context.Context, dsn string) error

	// Disconnect closes the database connection.
	Disconnect(ctx context.Context) error

	// InsertOne inserts a single document into the named collection/table and
	// returns the ID of the inserted document.
	InsertOne(ctx context.Context, collectionName string, document Document) (interface{}, error)

	// FindOne retrieves a single document matching the filter, decoding it
	// into result.
	FindOne(ctx context.Context, collectionName string, filter Document, result Document) error

	// FindMany retrieves all documents matching the filter.
	FindMany(ctx context.Context, collectionName string, filter Document) ([]Document, error)

	// UpdateOne updates a single document matching the filter and returns the
	// modified count.
	UpdateOne(ctx context.Context, collectionName string, filter Document, update Document) (int64, error)

	// DeleteOne deletes a single document matching the filter and returns the
	// deleted count.
	DeleteOne(ctx context.Context, collectionName string, filter Document) (int64, error)

	// DeleteMany deletes all documents matching the filter and returns the
	// deleted count.
	DeleteMany(ctx context.Context, collectionName string, filter Document) (int64, error)

	// Ping checks the health of the database connection.
	Ping(ctx context.Context) error
}
