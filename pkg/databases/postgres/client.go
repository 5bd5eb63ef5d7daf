package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"reflect"
	"sort"
	"strings"
	"time"

	"github.com/haguru/bloglist/config"
	"github.com/haguru/bloglist/internal/interfaces"

	"github.com/google/uuid"
	_ "github.com/lib/pq" // PostgreSQL driver for database/sql
)

const (
	// DefaultMaxOpenConns is the default maximum number of open connections to the database.
	DefaultMaxOpenConns = 10
	// DefaultMaxIdleConns is the default maximum number of idle connections to the database.
	DefaultMaxIdleConns = 5
	// DefaultConnMaxLifetime is the default maximum amount of time a connection may be reused.
	DefaultConnMaxLifetime = 30 * time.Second

	IDFIELD = "id"
)

// PostgresDatabaseClient implements the DBClient interface for PostgreSQL
// databases. Statements are built dynamically from map documents; table and
// field names are checked against allow-lists from the configuration, and
// column order is always sorted so generated SQL is deterministic.
type PostgresDatabaseClient struct {
	db              *sql.DB
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	validTables     map[string]bool
	validFields     map[string]bool
}

func NewPostgresDatabaseClient(cfg *config.PostgresConfig) interfaces.DBClient {
	maxOpen := cfg.Options.MaxOpenConns
	if maxOpen == 0 {
		maxOpen = DefaultMaxOpenConns
	}
	maxIdle := cfg.Options.MaxIdleConns
	if maxIdle == 0 {
		maxIdle = DefaultMaxIdleConns
	}
	lifetime := cfg.Options.ConnMaxLifetime
	if lifetime == 0 {
		lifetime = DefaultConnMaxLifetime
	}

	return &PostgresDatabaseClient{
		MaxOpenConns:    maxOpen,
		MaxIdleConns:    maxIdle,
		ConnMaxLifetime: lifetime,
		validTables:     config.ListToMap(cfg.ValidTables),
		validFields:     config.ListToMap(cfg.ValidFields),
	}
}

// NewPostgresDatabaseClientWithDB wraps an existing *sql.DB. Used by tests to
// inject a sqlmock connection.
func NewPostgresDatabaseClientWithDB(db *sql.DB, tables, fields []string) *PostgresDatabaseClient {
	return &PostgresDatabaseClient{
		db:          db,
		validTables: config.ListToMap(tables),
		validFields: config.ListToMap(fields),
	}
}

// Connect establishes a connection to a PostgreSQL database.
func (p *PostgresDatabaseClient) Connect(ctx context.Context, dsn string) error {
	var err error
	p.db, err = sql.Open("postgres", dsn)
	if err != nil {
		return fmt.Errorf("failed to open PostgreSQL database: %w", err)
	}

	p.db.SetMaxOpenConns(p.MaxOpenConns)
	p.db.SetMaxIdleConns(p.MaxIdleConns)
	p.db.SetConnMaxLifetime(p.ConnMaxLifetime)

	return p.Ping(ctx)
}

// Disconnect closes the PostgreSQL database connection.
func (p *PostgresDatabaseClient) Disconnect(ctx context.Context) error {
	if p.db != nil {
		return p.db.Close()
	}
	return nil
}

// InsertOne inserts a single document into a PostgreSQL table. 'document' is
// expected to be a map[string]interface{}; a UUID id is generated when the
// document does not carry one.
func (p *PostgresDatabaseClient) InsertOne(ctx context.Context, tableName string, document interfaces.Document) (interface{}, error) {
	if !p.validTables[tableName] {
		return nil, fmt.Errorf("PostgresDatabaseClient: Invalid table name: %s", tableName)
	}

	docMap, err := p.sanitizeDocument(document, true)
	if err != nil {
		return nil, err
	}

	if _, exists := docMap[IDFIELD]; !exists {
		docMap[IDFIELD] = uuid.New().String()
	}

	columns := sortedKeys(docMap)
	placeholders := make([]string, 0, len(columns))
	values := make([]interface{}, 0, len(columns))
	for i, col := range columns {
		placeholders = append(placeholders, fmt.Sprintf("$%d", i+1))
		values = append(values, docMap[col])
	}

	// Table and column names come from allow-lists, not user input.
	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) RETURNING id",
		tableName,
		strings.Join(columns, ", "),
		strings.Join(placeholders, ", "),
	) // #nosec G201

	var insertedID interface{}
	err = p.db.QueryRowContext(ctx, query, values...).Scan(&insertedID)
	if err != nil {
		return nil, err
	}
	if b, ok := insertedID.([]byte); ok {
		insertedID = string(b)
	}
	return insertedID, nil
}

// FindOne retrieves a single document from a PostgreSQL table. 'filter' is a
// map[string]interface{} for the WHERE clause; 'result' is a pointer to a
// struct whose 'db' tags name the columns to select and scan. sql.ErrNoRows
// is passed through untouched so callers can translate it.
func (p *PostgresDatabaseClient) FindOne(ctx context.Context, tableName string, filter interfaces.Document, result interfaces.Document) error {
	if !p.validTables[tableName] {
		return fmt.Errorf("PostgresDatabaseClient: Invalid table name: %s", tableName)
	}

	filterMap, err := p.sanitizeDocument(filter, true)
	if err != nil {
		return err
	}
	if len(filterMap) == 0 {
		return fmt.Errorf("PostgresDatabaseClient: FindOne requires a non-empty filter")
	}

	whereString, whereValues := buildWhere(filterMap, 1)

	resultValue := reflect.ValueOf(result)
	if resultValue.Kind() != reflect.Ptr || resultValue.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("result must be a pointer to a struct")
	}
	elem := resultValue.Elem()

	columns := make([]string, 0, elem.NumField())
	fieldPointers := make([]interface{}, 0, elem.NumField())
	for i := 0; i < elem.NumField(); i++ {
		field := elem.Type().Field(i)
		column := field.Tag.Get("db")
		if column == "" {
			column = strings.ToLower(field.Name)
		}
		if column == "-" {
			continue
		}
		columns = append(columns, column)
		fieldPointers = append(fieldPointers, elem.Field(i).Addr().Interface())
	}

	query := fmt.Sprintf("SELECT %s FROM %s WHERE %s LIMIT 1",
		strings.Join(columns, ", "),
		tableName,
		whereString,
	) // #nosec G201

	return p.db.QueryRowContext(ctx, query, whereValues...).Scan(fieldPointers...)
}

// FindMany retrieves multiple documents from a PostgreSQL table as a slice of
// map[string]interface{} for the caller to decode.
func (p *PostgresDatabaseClient) FindMany(ctx context.Context, tableName string, filter interfaces.Document) ([]interfaces.Document, error) {
	if !p.validTables[tableName] {
		return nil, fmt.Errorf("PostgresDatabaseClient: Invalid table name: %s", tableName)
	}

	filterMap, err := p.sanitizeDocument(filter, true)
	if err != nil {
		return nil, err
	}

	whereString := ""
	var whereValues []interface{}
	if len(filterMap) > 0 {
		var clause string
		clause, whereValues = buildWhere(filterMap, 1)
		whereString = " WHERE " + clause
	}

	query := fmt.Sprintf("SELECT * FROM %s%s", tableName, whereString) // #nosec G201

	rows, err := p.db.QueryContext(ctx, query, whereValues...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	var results []interfaces.Document
	for rows.Next() {
		columnPointers := make([]interface{}, len(columns))
		columnValues := make([]interface{}, len(columns))
		for i := range columns {
			columnPointers[i] = &columnValues[i]
		}

		if err := rows.Scan(columnPointers...); err != nil {
			return nil, err
		}

		rowMap := make(map[string]interface{})
		for i, colName := range columns {
			val := columnValues[i]
			if b, ok := val.([]byte); ok {
				rowMap[colName] = string(b)
			} else {
				rowMap[colName] = val
			}
		}
		results = append(results, rowMap)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

// UpdateOne updates a single document in a PostgreSQL table. 'filter' and
// 'update' are map[string]interface{}. Returns the affected row count.
func (p *PostgresDatabaseClient) UpdateOne(ctx context.Context, tableName string, filter interfaces.Document, update interfaces.Document) (int64, error) {
	if !p.validTables[tableName] {
		return 0, fmt.Errorf("PostgresDatabaseClient: Invalid table name: %s", tableName)
	}

	filterMap, err := p.sanitizeDocument(filter, true)
	if err != nil {
		return 0, err
	}
	updateMap, err := p.sanitizeDocument(update, false)
	if err != nil {
		return 0, err
	}

	setColumns := sortedKeys(updateMap)
	setClauses := make([]string, 0, len(setColumns))
	values := make([]interface{}, 0, len(setColumns)+len(filterMap))
	paramCount := 1
	for _, col := range setColumns {
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", col, paramCount))
		values = append(values, updateMap[col])
		paramCount++
	}

	whereString, whereValues := buildWhere(filterMap, paramCount)
	values = append(values, whereValues...)

	query := fmt.Sprintf("UPDATE %s SET %s WHERE %s",
		tableName,
		strings.Join(setClauses, ", "),
		whereString,
	) // #nosec G201

	res, err := p.db.ExecContext(ctx, query, values...)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// DeleteOne deletes a single document from a PostgreSQL table.
func (p *PostgresDatabaseClient) DeleteOne(ctx context.Context, tableName string, filter interfaces.Document) (int64, error) {
	if !p.validTables[tableName] {
		return 0, fmt.Errorf("PostgresDatabaseClient: Invalid table name: %s", tableName)
	}

	filterMap, err := p.sanitizeDocument(filter, true)
	if err != nil {
		return 0, err
	}
	if len(filterMap) == 0 {
		return 0, fmt.Errorf("PostgresDatabaseClient: DeleteOne requires a non-empty filter")
	}

	whereString, whereValues := buildWhere(filterMap, 1)

	query := fmt.Sprintf("DELETE FROM %s WHERE %s", tableName, whereString) // #nosec G201

	res, err := p.db.ExecContext(ctx, query, whereValues...)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// DeleteMany deletes multiple documents from a PostgreSQL table.
func (p *PostgresDatabaseClient) DeleteMany(ctx context.Context, tableName string, filter interfaces.Document) (int64, error) {
	if !p.validTables[tableName] {
		return 0, fmt.Errorf("PostgresDatabaseClient: Invalid table name: %s", tableName)
	}

	filterMap, err := p.sanitizeDocument(filter, true)
	if err != nil {
		return 0, err
	}

	whereString := ""
	var whereValues []interface{}
	if len(filterMap) > 0 {
		var clause string
		clause, whereValues = buildWhere(filterMap, 1)
		whereString = " WHERE " + clause
	}

	query := fmt.Sprintf("DELETE FROM %s%s", tableName, whereString) // #nosec G201

	res, err := p.db.ExecContext(ctx, query, whereValues...)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// Ping checks the health of the PostgreSQL connection.
func (p *PostgresDatabaseClient) Ping(ctx context.Context) error {
	return p.db.PingContext(ctx)
}

// EnsureSchema executes a CREATE TABLE (or index) statement for the table.
// This is PostgreSQL-specific and not part of the generic DBClient.
func (p *PostgresDatabaseClient) EnsureSchema(ctx context.Context, tableName string, schema interfaces.Document) error {
	if p.db == nil {
		return fmt.Errorf("PostgresDatabaseClient is not connected to a database")
	}

	createStmt, ok := schema.(string)
	if !ok {
		return fmt.Errorf("EnsureSchema expects schema to be a DDL statement string")
	}
	_, err := p.db.ExecContext(ctx, createStmt)
	return err
}

// sanitizeDocument copies the document keeping only allow-listed column names.
// The id column is kept only when allowID is set.
func (p *PostgresDatabaseClient) sanitizeDocument(document interfaces.Document, allowID bool) (map[string]interface{}, error) {
	if document == nil {
		return nil, fmt.Errorf("PostgresDatabaseClient: Document cannot be nil")
	}

	docMap, ok := document.(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("PostgresDatabaseClient: Document must be map[string]interface{}, got %T", document)
	}

	sanitized := make(map[string]interface{})
	for key, value := range docMap {
		if key == IDFIELD {
			if allowID {
				sanitized[key] = value
			}
			continue
		}
		if !p.validFields[key] {
			continue
		}
		sanitized[key] = value
	}

	return sanitized, nil
}

func sortedKeys(m map[string]interface{}) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func buildWhere(filterMap map[string]interface{}, firstParam int) (string, []interface{}) {
	columns := sortedKeys(filterMap)
	clauses := make([]string, 0, len(columns))
	values := make([]interface{}, 0, len(columns))
	for i, col := range columns {
		clauses = append(clauses, fmt.Sprintf("%s = $%d", col, firstParam+i))
		values = append(values, filterMap[col])
	}
	return strings.Join(clauses, " AND "), values
}
