package constants

const (
	// BlogsCollection is the MongoDB collection / PostgreSQL table for blogs.
	BlogsCollection = "blogs"

	// BlogsTableDDL creates the PostgreSQL blogs table. user_id is empty for
	// legacy blogs created before authentication existed.
	BlogsTableDDL = `CREATE TABLE IF NOT EXISTS blogs (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		author TEXT NOT NULL DEFAULT '',
		url TEXT NOT NULL,
		likes INTEGER NOT NULL DEFAULT 0,
		user_id TEXT NOT NULL DEFAULT ''
	)`
)
