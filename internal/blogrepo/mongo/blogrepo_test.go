package mongo

import (
	"context"
	"errors"
	"testing"

	"github.com/haguru/bloglist/internal/apperrors"
	"github.com/haguru/bloglist/internal/blogrepo/constants"
	"github.com/haguru/bloglist/internal/interfaces"
	"github.com/haguru/bloglist/internal/interfaces/mocks"
	"github.com/haguru/bloglist/internal/models"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	mongosdk "go.mongodb.org/mongo-driver/mongo"
)

func TestMongoBlogRepository_AddBlog(t *testing.T) {
	objID := primitive.NewObjectID()

	dbClient := mocks.NewMockDBClient(t)
	dbClient.On("InsertOne", mock.Anything, constants.BlogsCollection,
		mock.MatchedBy(func(doc interfaces.Document) bool {
			docMap, ok := doc.(bson.M)
			return ok && docMap["title"] == "React patterns" && docMap["user_id"] == "u1"
		})).Return(objID, nil)

	repo := &MongoBlogRepository{dbClient: dbClient}

	blogID, err := repo.AddBlog(context.Background(), models.Blog{
		Title:  "React patterns",
		Author: "Michael Chan",
		URL:    "https://reactpatterns.com/",
		Likes:  7,
		UserID: "u1",
	})
	if err != nil {
		t.Fatalf("AddBlog() error = %v", err)
	}
	if blogID != objID.Hex() {
		t.Errorf("AddBlog() id = %q, want %q", blogID, objID.Hex())
	}
}

func TestMongoBlogRepository_GetBlogByID(t *testing.T) {
	objID := primitive.NewObjectID()

	tests := []struct {
		name    string
		id      string
		findErr error
		wantErr error
	}{
		{
			name: "existing blog",
			id:   objID.Hex(),
		},
		{
			name:    "missing blog",
			id:      objID.Hex(),
			findErr: mongosdk.ErrNoDocuments,
			wantErr: apperrors.ErrNotFound,
		},
		{
			name:    "malformed id",
			id:      "not-hex",
			wantErr: apperrors.ErrMalformedID,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dbClient := mocks.NewMockDBClient(t)
			dbClient.On("FindOne", mock.Anything, constants.BlogsCollection,
				bson.M{"_id": objID}, mock.Anything).
				Run(func(args mock.Arguments) {
					if tt.findErr != nil {
						return
					}
					stored := args.Get(3).(*mongoBlog)
					*stored = mongoBlog{
						ID:     objID,
						Title:  "React patterns",
						Author: "Michael Chan",
						URL:    "https://reactpatterns.com/",
						Likes:  7,
						UserID: "u1",
					}
				}).Return(tt.findErr).Maybe()

			repo := &MongoBlogRepository{dbClient: dbClient}

			blog, err := repo.GetBlogByID(context.Background(), tt.id)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("GetBlogByID() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("GetBlogByID() error = %v", err)
			}
			if blog.ID != objID.Hex() || blog.UserID != "u1" {
				t.Errorf("GetBlogByID() blog = %+v", blog)
			}
		})
	}
}

func TestMongoBlogRepository_ListBlogs(t *testing.T) {
	objID := primitive.NewObjectID()

	dbClient := mocks.NewMockDBClient(t)
	dbClient.On("FindMany", mock.Anything, constants.BlogsCollection, bson.M{}).
		Return([]interfaces.Document{
			map[string]interface{}{
				"_id":     objID,
				"title":   "React patterns",
				"author":  "Michael Chan",
				"url":     "https://reactpatterns.com/",
				"likes":   int32(7),
				"user_id": "u1",
			},
			map[string]interface{}{
				"_id":    primitive.NewObjectID(),
				"title":  "Ownerless legacy entry",
				"author": "Unknown",
				"url":    "http://example.com/legacy",
				"likes":  int32(0),
			},
		}, nil)

	repo := &MongoBlogRepository{dbClient: dbClient}

	blogs, err := repo.ListBlogs(context.Background())
	if err != nil {
		t.Fatalf("ListBlogs() error = %v", err)
	}
	if len(blogs) != 2 {
		t.Fatalf("ListBlogs() returned %d blogs, want 2", len(blogs))
	}
	if blogs[0].ID != objID.Hex() || blogs[0].Likes != 7 {
		t.Errorf("ListBlogs() first blog = %+v", blogs[0])
	}
	if blogs[1].UserID != "" {
		t.Errorf("ListBlogs() legacy blog user id = %q, want empty", blogs[1].UserID)
	}
}

func TestMongoBlogRepository_UpdateBlog(t *testing.T) {
	objID := primitive.NewObjectID()

	tests := []struct {
		name    string
		matched int64
		wantErr error
	}{
		{
			name:    "existing blog",
			matched: 1,
		},
		{
			name:    "missing blog",
			matched: 0,
			wantErr: apperrors.ErrNotFound,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dbClient := mocks.NewMockDBClient(t)
			dbClient.On("UpdateOne", mock.Anything, constants.BlogsCollection,
				bson.M{"_id": objID},
				mock.MatchedBy(func(update interfaces.Document) bool {
					updateMap, ok := update.(bson.M)
					return ok && updateMap["likes"] == 8
				})).Return(tt.matched, nil)

			repo := &MongoBlogRepository{dbClient: dbClient}

			err := repo.UpdateBlog(context.Background(), objID.Hex(), models.Blog{
				Title:  "React patterns",
				Author: "Michael Chan",
				URL:    "https://reactpatterns.com/",
				Likes:  8,
			})
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("UpdateBlog() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestMongoBlogRepository_DeleteBlog(t *testing.T) {
	objID := primitive.NewObjectID()

	tests := []struct {
		name    string
		id      string
		deleted int64
		wantErr error
	}{
		{
			name:    "existing blog",
			id:      objID.Hex(),
			deleted: 1,
		},
		{
			name:    "missing blog",
			id:      objID.Hex(),
			deleted: 0,
			wantErr: apperrors.ErrNotFound,
		},
		{
			name:    "malformed id",
			id:      "not-hex",
			wantErr: apperrors.ErrMalformedID,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dbClient := mocks.NewMockDBClient(t)
			dbClient.On("DeleteOne", mock.Anything, constants.BlogsCollection,
				bson.M{"_id": objID}).Return(tt.deleted, nil).Maybe()

			repo := &MongoBlogRepository{dbClient: dbClient}

			err := repo.DeleteBlog(context.Background(), tt.id)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("DeleteBlog() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
