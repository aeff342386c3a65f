package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"studygeni/internal/auth"
	"studygeni/internal/model"
	"studygeni/internal/repository"
)

var (
	ErrNameRequired       = errors.New("name is required")
	ErrEmailRequired      = errors.New("email is required")
	ErrPasswordTooShort   = errors.New("password must be at least 8 characters")
	ErrInvalidRole        = errors.New("role must be teacher or student")
	ErrEmailTaken         = errors.New("an account with this email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// RegisterInput holds the fields for creating a new account.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     string
}

// AuthService handles account registration and login.
type AuthService interface {
	// Register creates a new account with a bcrypt-hashed password.
	Register(ctx context.Context, in RegisterInput) (*model.User, error)

	// Login checks credentials and returns a signed access token plus the user.
	Login(ctx context.Context, email, password string) (string, *model.User, error)
}

type authService struct {
	repo repository.UserRepository
	jwt  *auth.JWTService
}

// NewAuthService constructs a new AuthService.
func NewAuthService(repo repository.UserRepository, jwt *auth.JWTService) AuthService {
	return &authService{repo: repo, jwt: jwt}
}

func (s *authService) Register(ctx context.Context, in RegisterInput) (*model.User, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))

	if in.Name == "" {
		return nil, ErrNameRequired
	}
	if in.Email == "" || !strings.Contains(in.Email, "@") {
		return nil, ErrEmailRequired
	}
	if len(in.Password) < 8 {
		return nil, ErrPasswordTooShort
	}
	if !model.IsValidRole(in.Role) {
		return nil, ErrInvalidRole
	}

	if existing, err := s.repo.FindByEmail(ctx, in.Email); err == nil && existing != nil {
		return nil, ErrEmailTaken
	} else if err != nil && !isNoRows(err) {
		return nil, err
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		ID:           uuid.New().String(),
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: hash,
		Role:         in.Role,
		CreatedAt:    time.Now().UTC(),
	}
	return s.repo.Create(ctx, user)
}

func (s *authService) Login(ctx context.Context, email, password string) (string, *model.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return "", nil, ErrInvalidCredentials
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if isNoRows(err) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}
	if !auth.CheckPassword(user.PasswordHash, password) {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.jwt.Issue(user.ID, user.Role)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}
