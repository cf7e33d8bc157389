package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"geoguide/internal/apperror"
	"geoguide/internal/token"
)

// bcryptCost is the work factor for password hashing. 12 rounds is slow by
// design: it bounds signup/login throughput and makes offline cracking of a
// leaked hash expensive.
const bcryptCost = 12

// passwordMinLen is the minimum accepted password length.
const passwordMinLen = 6

// emailPattern is a deliberately loose local@domain.tld shape check. Real
// deliverability can only be proven by sending mail; this just catches typos.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// invalidCredentials is the single error returned for every login failure.
// Unknown email and wrong password are indistinguishable on purpose, so the
// endpoint cannot be used to enumerate accounts.
func invalidCredentials() *apperror.AppError {
	return apperror.NewBadRequest("Invalid email or password")
}

// AuthService defines the business logic contract for authentication.
// Handlers call these methods -- they never touch the repository directly.
type AuthService interface {
	Signup(ctx context.Context, req SignupRequest) (*User, string, error)
	Login(ctx context.Context, req LoginRequest) (*User, string, error)
	UserByID(ctx context.Context, id string) (*User, error)
}

// authService implements AuthService with bcrypt hashing and JWT issuance.
type authService struct {
	repo   UserRepository
	tokens *token.Service
}

// NewAuthService creates a new auth service with the given dependencies.
func NewAuthService(repo UserRepository, tokens *token.Service) AuthService {
	return &authService{
		repo:   repo,
		tokens: tokens,
	}
}

// Signup creates a new user account and issues a bearer token for it.
// The email is normalized (trim + lowercase) before the uniqueness check and
// before storage, so lookups are case-insensitive and duplicate-safe.
func (s *authService) Signup(ctx context.Context, req SignupRequest) (*User, string, error) {
	name := strings.TrimSpace(req.Name)
	email := normalizeEmail(req.Email)

	if name == "" {
		return nil, "", apperror.NewValidation("name is required")
	}
	if email == "" {
		return nil, "", apperror.NewValidation("email is required")
	}
	if !emailPattern.MatchString(email) {
		return nil, "", apperror.NewValidation("email must be a valid address")
	}
	if req.Password == "" {
		return nil, "", apperror.NewValidation("password is required")
	}
	if len(req.Password) < passwordMinLen {
		return nil, "", apperror.NewValidation(fmt.Sprintf("password must be at least %d characters", passwordMinLen))
	}

	// Check if email is already taken before doing expensive hashing.
	exists, err := s.repo.EmailExists(ctx, email)
	if err != nil {
		return nil, "", apperror.NewInternal(fmt.Errorf("checking email: %w", err))
	}
	if exists {
		return nil, "", apperror.NewConflict("Email already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return nil, "", apperror.NewInternal(fmt.Errorf("hashing password: %w", err))
	}

	user := &User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, user); err != nil {
		// The repository maps a lost duplicate-insert race to a conflict.
		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			return nil, "", appErr
		}
		return nil, "", apperror.NewInternal(fmt.Errorf("creating user: %w", err))
	}

	tok, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, "", apperror.NewInternal(fmt.Errorf("issuing token: %w", err))
	}

	slog.Info("user registered",
		slog.String("user_id", user.ID),
		slog.String("email", user.Email),
	)

	return user, tok, nil
}

// Login authenticates a user by email and password and issues a fresh token.
func (s *authService) Login(ctx context.Context, req LoginRequest) (*User, string, error) {
	email := normalizeEmail(req.Email)

	if email == "" {
		return nil, "", apperror.NewValidation("email is required")
	}
	if req.Password == "" {
		return nil, "", apperror.NewValidation("password is required")
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		var appErr *apperror.AppError
		if errors.As(err, &appErr) && appErr.Code == 404 {
			return nil, "", invalidCredentials()
		}
		return nil, "", apperror.NewInternal(fmt.Errorf("finding user: %w", err))
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		return nil, "", invalidCredentials()
	}

	tok, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, "", apperror.NewInternal(fmt.Errorf("issuing token: %w", err))
	}

	slog.Info("user logged in",
		slog.String("user_id", user.ID),
		slog.String("email", user.Email),
	)

	return user, tok, nil
}

// UserByID resolves a token subject to its account. Used by the auth gate;
// a missing account means the token's holder was deleted after issuance.
func (s *authService) UserByID(ctx context.Context, id string) (*User, error) {
	return s.repo.FindByID(ctx, id)
}

// normalizeEmail trims whitespace and lowercases an email address. Applied
// before every comparison and before storage.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
