package constants

const (
	// UsersCollection is the MongoDB collection / PostgreSQL table for users.
	UsersCollection = "users"

	// UsersTableDDL creates the PostgreSQL users table. blogs ownership lives
	// on the blogs table (user_id column); it is not duplicated here.
	UsersTableDDL = `CREATE TABLE IF NOT EXISTS users (
		id TEXT PRIMARY KEY,
		username TEXT NOT NULL UNIQUE,
		name TEXT NOT NULL,
		password_hash TEXT NOT NULL
	)`
)
