package models

// User represents an internal user model for the application/database.
// PasswordHash is a bcrypt hash; the plaintext is never stored.
type User struct {
	ID           string   `bson:"-" mapstructure:"-" db:"id"`
	Username     string   `bson:"username" mapstructure:"username" db:"username"`
	Name         string   `bson:"name" mapstructure:"name" db:"name"`
	PasswordHash string   `bson:"password_hash" mapstructure:"password_hash" db:"password_hash"`
	Blogs        []string `bson:"blogs" mapstructure:"blogs" db:"-"`
}

// NewUser creates a new User instance with the given username, display name
// and password hash. Note: No validation is performed here.
func NewUser(username, name, passwordHash string) *User {
	return &User{
		Username:     username,
		Name:         name,
		PasswordHash: passwordHash,
	}
}
