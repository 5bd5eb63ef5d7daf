package blogstats

import (
	"errors"

	"github.com/haguru/bloglist/internal/models"
)

// ErrEmptyList is returned by the aggregations that have no meaningful result
// for an empty input.
var ErrEmptyList = errors.New("blog list is empty")

// Favorite is the reduced view of the most-liked blog.
type Favorite struct {
	Title  string
	Author string
	Likes  int
}

// AuthorBlogs pairs an author with the number of blogs they wrote.
type AuthorBlogs struct {
	Author string
	Blogs  int
}

// AuthorLikes pairs an author with the sum of likes across their blogs.
type AuthorLikes struct {
	Author string
	Likes  int
}

// Summary bundles all aggregations over one blog list. The record fields are
// nil when the list is empty.
type Summary struct {
	TotalLikes int
	Favorite   *Favorite
	MostBlogs  *AuthorBlogs
	MostLikes  *AuthorLikes
}

// Summarize computes every aggregation in one pass over the caller's view of
// the blog list. The input is never mutated.
func Summarize(blogs []models.Blog) Summary {
	summary := Summary{TotalLikes: TotalLikes(blogs)}
	summary.Favorite, _ = FavoriteBlog(blogs)
	summary.MostBlogs, _ = MostBlogs(blogs)
	summary.MostLikes, _ = MostLikes(blogs)
	return summary
}

// TotalLikes returns the sum of likes across all blogs. Zero for empty input.
func TotalLikes(blogs []models.Blog) int {
	total := 0
	for _, blog := range blogs {
		total += blog.Likes
	}
	return total
}

// FavoriteBlog returns the blog with the most likes. Ties go to the first
// record encountered in input order. Returns ErrEmptyList for empty input.
func FavoriteBlog(blogs []models.Blog) (*Favorite, error) {
	if len(blogs) == 0 {
		return nil, ErrEmptyList
	}

	favorite := blogs[0]
	for _, blog := range blogs[1:] {
		if blog.Likes > favorite.Likes {
			favorite = blog
		}
	}

	return &Favorite{
		Title:  favorite.Title,
		Author: favorite.Author,
		Likes:  favorite.Likes,
	}, nil
}

// MostBlogs returns the author with the largest number of blogs. Authors are
// grouped by exact string equality; an empty author field forms its own group.
// Ties go to the author seen first in input order. Returns ErrEmptyList for
// empty input.
func MostBlogs(blogs []models.Blog) (*AuthorBlogs, error) {
	if len(blogs) == 0 {
		return nil, ErrEmptyList
	}

	counts := make(map[string]int)
	order := make([]string, 0)
	for _, blog := range blogs {
		if _, seen := counts[blog.Author]; !seen {
			order = append(order, blog.Author)
		}
		counts[blog.Author]++
	}

	top := order[0]
	for _, author := range order[1:] {
		if counts[author] > counts[top] {
			top = author
		}
	}

	return &AuthorBlogs{Author: top, Blogs: counts[top]}, nil
}

// MostLikes returns the author whose blogs have the largest combined number of
// likes. Grouping and tie-break rules match MostBlogs. Returns ErrEmptyList
// for empty input.
func MostLikes(blogs []models.Blog) (*AuthorLikes, error) {
	if len(blogs) == 0 {
		return nil, ErrEmptyList
	}

	likes := make(map[string]int)
	order := make([]string, 0)
	for _, blog := range blogs {
		if _, seen := likes[blog.Author]; !seen {
			order = append(order, blog.Author)
		}
		likes[blog.Author] += blog.Likes
	}

	top := order[0]
	for _, author := range order[1:] {
		if likes[author] > likes[top] {
			top = author
		}
	}

	return &AuthorLikes{Author: top, Likes: likes[top]}, nil
}
