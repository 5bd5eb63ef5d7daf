package dto

// BlogCreateRequestDTO carries a blog creation request. Likes is a pointer so
// an omitted value can default to zero without conflating it with an explicit 0.
type BlogCreateRequestDTO struct {
	Title  string `json:"title" validate:"required,min=3,max=100"`
	Author string `json:"author" validate:"omitempty,max=50"`
	URL    string `json:"url" validate:"required,min=3,max=300"`
	Likes  *int   `json:"likes" validate:"omitempty,gte=0"`
}

// BlogUpdateRequestDTO carries a full replacement of the mutable blog fields.
type BlogUpdateRequestDTO struct {
	Title  string `json:"title" validate:"required,min=3,max=100"`
	Author string `json:"author" validate:"omitempty,max=50"`
	URL    string `json:"url" validate:"required,min=3,max=300"`
	Likes  int    `json:"likes" validate:"gte=0"`
}

// BlogOwnerDTO is the owner summary joined onto blog responses.
type BlogOwnerDTO struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
}

type BlogResponseDTO struct {
	ID     string        `json:"id"`
	Title  string        `json:"title"`
	Author string        `json:"author"`
	URL    string        `json:"url"`
	Likes  int           `json:"likes"`
	User   *BlogOwnerDTO `json:"user,omitempty"`
}

// BlogStatsDTO is the aggregate view served by the stats endpoint. The three
// record fields are null when the blog list is empty.
type BlogStatsDTO struct {
	TotalLikes int                 `json:"totalLikes"`
	Favorite   *FavoriteBlogDTO    `json:"favoriteBlog"`
	MostBlogs  *AuthorBlogCountDTO `json:"mostBlogs"`
	MostLikes  *AuthorLikeCountDTO `json:"mostLikes"`
}

type FavoriteBlogDTO struct {
	Title  string `json:"title"`
	Author string `json:"author"`
	Likes  int    `json:"likes"`
}

type AuthorBlogCountDTO struct {
	Author string `json:"author"`
	Blogs  int    `json:"blogs"`
}

type AuthorLikeCountDTO struct {
	Author string `json:"author"`
	Likes  int    `json:"likes"`
}
