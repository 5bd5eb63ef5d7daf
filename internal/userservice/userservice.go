package userservice

import (
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/haguru/bloglist/internal/apperrors"
	"github.com/haguru/bloglist/internal/interfaces"
	"github.com/haguru/bloglist/internal/models"
	"github.com/haguru/bloglist/pkg/helper"

	"golang.org/x/crypto/bcrypt"
)

type UserService struct {
	UserRepo interfaces.UserRepository
	BlogRepo interfaces.BlogRepository
	Logger   interfaces.Logger
}

// NewUserService creates a new UserService instance.
func NewUserService(userRepo interfaces.UserRepository, blogRepo interfaces.BlogRepository,
	logger interfaces.Logger,
) *UserService {
	return &UserService{
		UserRepo: userRepo,
		BlogRepo: blogRepo,
		Logger:   logger,
	}
}

// RegisterUser validates the registration request, hashes the password and
// adds the user via the repository. The checks short-circuit in a fixed order
// so the caller always sees the first failing rule's message: username length,
// password length, name presence, then username uniqueness.
func (s *UserService) RegisterUser(ctx context.Context, username, name, password string) (string, error) {
	funcName := helper.GetFuncName()
	s.Logger.Debug("Registering user", "func", funcName, "user", username)

	// Lengths are counted in runes so multibyte usernames are measured the
	// same way clients see them.
	if utf8.RuneCountInString(username) < MinUsernameLength {
		return "", apperrors.NewValidationError(MsgUsernameTooShort)
	}
	if utf8.RuneCountInString(password) < MinPasswordLength {
		return "", apperrors.NewValidationError(MsgPasswordTooShort)
	}
	if name == "" {
		return "", apperrors.NewValidationError(MsgNameRequired)
	}

	existing, err := s.UserRepo.GetUserByUsername(ctx, username)
	if err != nil {
		s.Logger.Error(ErrRetrievingUser, "func", funcName, "user", username, "error", err)
		return "", fmt.Errorf("%s: %w", ErrRetrievingUser, err)
	}
	if existing != nil {
		return "", apperrors.NewValidationError(MsgUsernameNotUnique)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		s.Logger.Error(ErrFailedToHashPassword, "func", funcName, "user", username, "error", err)
		return "", fmt.Errorf("%s: %w", ErrFailedToHashPassword, err)
	}

	user := models.User{
		Username:     username,
		Name:         name,
		PasswordHash: string(hashedPassword),
	}

	userID, err := s.UserRepo.AddUser(ctx, user)
	if err != nil {
		s.Logger.Error(ErrFailedToRegisterUser, "func", funcName, "user", username, "error", err)
		if apperrors.IsValidation(err) {
			return "", err
		}
		return "", fmt.Errorf("%s: %w", ErrFailedToRegisterUser, err)
	}

	s.Logger.Info("User registered successfully", "func", funcName, "user", username, "ID", userID)
	return userID, nil
}

// AuthenticateUser verifies a user's credentials and returns the user or an
// error.
func (s *UserService) AuthenticateUser(ctx context.Context, username, password string) (*models.User, error) {
	funcName := helper.GetFuncName()
	s.Logger.Debug("Authenticating user", "func", funcName, "user", username)

	user, err := s.UserRepo.GetUserByUsername(ctx, username)
	if err != nil {
		s.Logger.Error(ErrRetrievingUser, "func", funcName, "user", username, "error", err)
		return nil, fmt.Errorf("%s: %w", ErrRetrievingUser, err)
	}
	if user == nil {
		s.Logger.Warn(ErrUserNotFound, "func", funcName, "user", username)
		return nil, fmt.Errorf("%s: %w", ErrUserNotFound, apperrors.ErrUnauthorized)
	}

	err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password))
	if err != nil {
		s.Logger.Warn(ErrInvalidPassword, "func", funcName, "user", username)
		return nil, fmt.Errorf("%s: %w", ErrInvalidPassword, apperrors.ErrUnauthorized)
	}

	s.Logger.Info("User authenticated successfully", "func", funcName, "user", username)
	return user, nil
}

// ListUsers returns all users with their owned blogs joined.
func (s *UserService) ListUsers(ctx context.Context) ([]models.UserWithBlogs, error) {
	users, err := s.UserRepo.ListUsers(ctx)
	if err != nil {
		return nil, err
	}

	blogs, err := s.BlogRepo.ListBlogs(ctx)
	if err != nil {
		return nil, err
	}

	blogsByID := make(map[string]models.Blog, len(blogs))
	for _, blog := range blogs {
		blogsByID[blog.ID] = blog
	}

	result := make([]models.UserWithBlogs, 0, len(users))
	for _, user := range users {
		owned := make([]models.Blog, 0, len(user.Blogs))
		for _, blogID := range user.Blogs {
			if blog, ok := blogsByID[blogID]; ok {
				owned = append(owned, blog)
			}
		}
		result = append(result, models.UserWithBlogs{User: user, Blogs: owned})
	}
	return result, nil
}
