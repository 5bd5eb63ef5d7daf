package blogstats

import (
	"errors"
	"reflect"
	"testing"

	"github.com/haguru/bloglist/internal/models"
)

// listWithManyBlogs mirrors a realistic mixed list: multiple authors, one of
// them appearing three times.
var listWithManyBlogs = []models.Blog{
	{
		ID:     "5a422a851b54a676234d17f7",
		Title:  "React patterns",
		Author: "Michael Chan",
		URL:    "https://reactpatterns.com/",
		Likes:  7,
	},
	{
		ID:     "5a422aa71b54a676234d17f8",
		Title:  "Go To Statement Considered Harmful",
		Author: "Edsger W. Dijkstra",
		URL:    "http://www.u.arizona.edu/~rubinson/copyright_violations/Go_To_Considered_Harmful.html",
		Likes:  5,
	},
	{
		ID:     "5a422b3a1b54a676234d17f9",
		Title:  "Canonical string reduction",
		Author: "Edsger W. Dijkstra",
		URL:    "http://www.cs.utexas.edu/~EWD/transcriptions/EWD08xx/EWD808.html",
		Likes:  12,
	},
	{
		ID:     "5a422b891b54a676234d17fa",
		Title:  "First class tests",
		Author: "Robert C. Martin",
		URL:    "http://blog.cleancoder.com/uncle-bob/2017-05-05-TestDefinitions.html",
		Likes:  10,
	},
	{
		ID:     "5a422ba71b54a676234d17fb",
		Title:  "TDD harms architecture",
		Author: "Robert C. Martin",
		URL:    "http://blog.cleancoder.com/uncle-bob/2017-03-03-TDD-Harms-Architecture.html",
		Likes:  0,
	},
	{
		ID:     "5a422bc61b54a676234d17fc",
		Title:  "Type wars",
		Author: "Robert C. Martin",
		URL:    "http://blog.cleancoder.com/uncle-bob/2016-05-01-TypeWars.html",
		Likes:  2,
	},
}

func TestTotalLikes(t *testing.T) {
	tests := []struct {
		name  string
		blogs []models.Blog
		want  int
	}{
		{
			name:  "empty list is zero",
			blogs: []models.Blog{},
			want:  0,
		},
		{
			name: "single blog equals its likes",
			blogs: []models.Blog{
				{Title: "Secrets to being pretty", Author: "Michaela", Likes: 2939},
			},
			want: 2939,
		},
		{
			name: "two blogs sum",
			blogs: []models.Blog{
				{Title: "Secrets to being pretty", Author: "Michaela", Likes: 2939},
				{Title: "Secrets to being ugly", Author: "Michael", Likes: 277},
			},
			want: 3216,
		},
		{
			name:  "bigger list is calculated right",
			blogs: listWithManyBlogs,
			want:  36,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TotalLikes(tt.blogs); got != tt.want {
				t.Errorf("TotalLikes() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTotalLikes_OrderIndependent(t *testing.T) {
	reversed := make([]models.Blog, 0, len(listWithManyBlogs))
	for i := len(listWithManyBlogs) - 1; i >= 0; i-- {
		reversed = append(reversed, listWithManyBlogs[i])
	}

	if TotalLikes(listWithManyBlogs) != TotalLikes(reversed) {
		t.Errorf("TotalLikes() depends on input order")
	}
}

func TestFavoriteBlog(t *testing.T) {
	tests := []struct {
		name    string
		blogs   []models.Blog
		want    *Favorite
		wantErr error
	}{
		{
			name:    "empty list",
			blogs:   []models.Blog{},
			want:    nil,
			wantErr: ErrEmptyList,
		},
		{
			name: "single blog",
			blogs: []models.Blog{
				{Title: "Secrets to being pretty", Author: "Michaela", Likes: 2939},
			},
			want: &Favorite{Title: "Secrets to being pretty", Author: "Michaela", Likes: 2939},
		},
		{
			name:  "bigger list",
			blogs: listWithManyBlogs,
			want:  &Favorite{Title: "Canonical string reduction", Author: "Edsger W. Dijkstra", Likes: 12},
		},
		{
			name: "tie goes to the first record",
			blogs: []models.Blog{
				{Title: "First", Author: "A", Likes: 5},
				{Title: "Second", Author: "B", Likes: 5},
			},
			want: &Favorite{Title: "First", Author: "A", Likes: 5},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FavoriteBlog(tt.blogs)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("FavoriteBlog() error = %v, want %v", err, tt.wantErr)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("FavoriteBlog() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestMostBlogs(t *testing.T) {
	tests := []struct {
		name    string
		blogs   []models.Blog
		want    *AuthorBlogs
		wantErr error
	}{
		{
			name:    "empty list",
			blogs:   []models.Blog{},
			want:    nil,
			wantErr: ErrEmptyList,
		},
		{
			name: "single blog",
			blogs: []models.Blog{
				{Title: "Only one", Author: "Solo", Likes: 1},
			},
			want: &AuthorBlogs{Author: "Solo", Blogs: 1},
		},
		{
			name:  "bigger list",
			blogs: listWithManyBlogs,
			want:  &AuthorBlogs{Author: "Robert C. Martin", Blogs: 3},
		},
		{
			name: "tie goes to the author seen first",
			blogs: []models.Blog{
				{Title: "a1", Author: "A"},
				{Title: "b1", Author: "B"},
				{Title: "a2", Author: "A"},
				{Title: "b2", Author: "B"},
			},
			want: &AuthorBlogs{Author: "A", Blogs: 2},
		},
		{
			name: "empty author forms its own group",
			blogs: []models.Blog{
				{Title: "anon 1", Author: ""},
				{Title: "anon 2", Author: ""},
				{Title: "named", Author: "A"},
			},
			want: &AuthorBlogs{Author: "", Blogs: 2},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MostBlogs(tt.blogs)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("MostBlogs() error = %v, want %v", err, tt.wantErr)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("MostBlogs() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestMostLikes(t *testing.T) {
	tests := []struct {
		name    string
		blogs   []models.Blog
		want    *AuthorLikes
		wantErr error
	}{
		{
			name:    "empty list",
			blogs:   []models.Blog{},
			want:    nil,
			wantErr: ErrEmptyList,
		},
		{
			name: "single blog",
			blogs: []models.Blog{
				{Title: "Only one", Author: "Solo", Likes: 42},
			},
			want: &AuthorLikes{Author: "Solo", Likes: 42},
		},
		{
			name:  "bigger list",
			blogs: listWithManyBlogs,
			want:  &AuthorLikes{Author: "Edsger W. Dijkstra", Likes: 17},
		},
		{
			name: "tie goes to the author seen first",
			blogs: []models.Blog{
				{Title: "a1", Author: "A", Likes: 3},
				{Title: "b1", Author: "B", Likes: 3},
			},
			want: &AuthorLikes{Author: "A", Likes: 3},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MostLikes(tt.blogs)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("MostLikes() error = %v, want %v", err, tt.wantErr)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("MostLikes() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestSummarize(t *testing.T) {
	summary := Summarize(listWithManyBlogs)

	if summary.TotalLikes != 36 {
		t.Errorf("Summarize().TotalLikes = %v, want 36", summary.TotalLikes)
	}
	if summary.Favorite == nil || summary.Favorite.Title != "Canonical string reduction" {
		t.Errorf("Summarize().Favorite = %+v, want Canonical string reduction", summary.Favorite)
	}
	if summary.MostBlogs == nil || summary.MostBlogs.Author != "Robert C. Martin" {
		t.Errorf("Summarize().MostBlogs = %+v, want Robert C. Martin", summary.MostBlogs)
	}
	if summary.MostLikes == nil || summary.MostLikes.Author != "Edsger W. Dijkstra" {
		t.Errorf("Summarize().MostLikes = %+v, want Edsger W. Dijkstra", summary.MostLikes)
	}
}

func TestSummarize_EmptyList(t *testing.T) {
	summary := Summarize(nil)

	if summary.TotalLikes != 0 {
		t.Errorf("Summarize().TotalLikes = %v, want 0", summary.TotalLikes)
	}
	if summary.Favorite != nil || summary.MostBlogs != nil || summary.MostLikes != nil {
		t.Errorf("Summarize() on empty list should have nil records, got %+v", summary)
	}
}
