package service

import (
	"context"
	"errors"
	"sort"
	"strings"

	dom "github.com/2-Sungyoon/likelion-todolist-BE/internal/domain"
	"github.com/2-Sungyoon/likelion-todolist-BE/internal/repo"
	"github.com/2-Sungyoon/likelion-todolist-BE/internal/utils"

	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"
)

// FieldErrors maps a field name to its validation messages. Registration
// returns the whole map to the caller instead of a single message.
type FieldErrors map[string][]string

func (fe FieldErrors) Error() string {
	fields := make([]string, 0, len(fe))
	for f := range fe {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return "invalid fields: " + strings.Join(fields, ", ")
}

// UserService handles registration and credential checks. Passwords are
// stored as bcrypt hashes; a wrong password is indistinguishable from a
// missing user at the API boundary.
type UserService struct {
	repo repo.UserRepo
}

// NewUserService returns a new UserService.
func NewUserService(repo repo.UserRepo) *UserService {
	return &UserService{repo: repo}
}

// Register validates the candidate user, hashes the password and persists.
// Validation failures come back as FieldErrors.
func (s *UserService) Register(ctx context.Context, username, password string) (dom.User, error) {
	username = strings.TrimSpace(username)

	fe := FieldErrors{}
	if username == "" {
		fe["username"] = append(fe["username"], "username is required")
	}
	if password == "" {
		fe["password"] = append(fe["password"], "password is required")
	}
	if len(fe) > 0 {
		return dom.User{}, fe
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return dom.User{}, err
	}
	u, err := s.repo.Create(ctx, username, string(hash))
	if err != nil {
		if utils.IsPGUniqueViolation(err) {
			return dom.User{}, FieldErrors{"username": {"username is already taken"}}
		}
		return dom.User{}, err
	}
	return u, nil
}

// Login checks the credentials and returns the user. Any mismatch, wrong
// password included, is ErrUserNotFound.
func (s *UserService) Login(ctx context.Context, username, password string) (dom.User, error) {
	u, err := s.repo.GetByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.User{}, ErrUserNotFound
		}
		return dom.User{}, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return dom.User{}, ErrUserNotFound
	}
	return u, nil
}
