package models

// BlogWithOwner joins a blog with a summary of its owning user. Owner is nil
// for legacy blogs created before authentication existed.
type BlogWithOwner struct {
	Blog  Blog
	Owner *User
}

// UserWithBlogs joins a user with the blogs they own.
type UserWithBlogs struct {
	User  User
	Blogs []Blog
}
