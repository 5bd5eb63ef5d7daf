package models

// Blog represents a single blog post. UserID references the owning user and
// is empty only for legacy records created before authentication existed.
type Blog struct {
	ID     string `bson:"-" mapstructure:"-" db:"id" json:"id"`
	Title  string `bson:"title" mapstructure:"title" db:"title" json:"title"`
	Author string `bson:"author" mapstructure:"author" db:"author" json:"author"`
	URL    string `bson:"url" mapstructure:"url" db:"url" json:"url"`
	Likes  int    `bson:"likes" mapstructure:"likes" db:"likes" json:"likes"`
	UserID string `bson:"user_id" mapstructure:"user_id" db:"user_id" json:"-"`
}

// NewBlog creates a new Blog instance. Note: No validation is performed here.
func NewBlog(title, author, url string, likes int, userID string) *Blog {
	return &Blog{
		Title:  title,
		Author: author,
		URL:    url,
		Likes:  likes,
		UserID: userID,
	}
}
