package service

import (
	"context"
	"errors"
	"regexp"
	"time"

	"github.com/dom/game-save-backend/internal/auth"
	"github.com/dom/game-save-backend/internal/domain"
	"github.com/dom/game-save-backend/internal/repository"
	"gorm.io/gorm"
)

var (
	// ErrInvalidCredentials covers both unknown username and wrong
	// password so login failures cannot be used to enumerate usernames.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrInvalidUsername    = errors.New("username must be 3-32 characters of letters, digits, or underscore")
	// ErrUnauthenticated covers missing, malformed, and expired tokens as
	// well as tokens whose subject no longer exists.
	ErrUnauthenticated = errors.New("unauthenticated")
)

var usernamePattern = regexp.MustCompile(`^[A-Za-z0-9_]{3,32}$`)

type AuthService struct {
	userRepo repository.UserRepository
	hasher   *auth.Argon2idHasher
	tokens   *auth.TokenService
}

func NewAuthService(userRepo repository.UserRepository, hasher *auth.Argon2idHasher, tokens *auth.TokenService) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		hasher:   hasher,
		tokens:   tokens,
	}
}

type RegisterInput struct {
	Username string
	Password string
}

type LoginInput struct {
	Username string
	Password string
}

type AuthResult struct {
	User        *domain.User
	AccessToken string
}

func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	if !usernamePattern.MatchString(input.Username) {
		return nil, ErrInvalidUsername
	}

	passwordHash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Username:     input.Username,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now(),
	}

	// The unique index on username decides the winner between concurrent
	// registrations; there is no separate existence check to race.
	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrUsernameTaken
		}
		return nil, err
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, err
	}

	return &AuthResult{User: user, AccessToken: token}, nil
}

func (s *AuthService) Login(ctx context.Context, input LoginInput) (*AuthResult, error) {
	user, err := s.userRepo.GetByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !s.hasher.Verify(input.Password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	// Re-hash when the stored hash uses stale cost parameters. Best
	// effort: a failed update still leaves a verifiable hash in place.
	if s.hasher.NeedsRehash(user.PasswordHash) {
		if newHash, err := s.hasher.Hash(input.Password); err == nil {
			_ = s.userRepo.UpdatePasswordHash(ctx, user.ID, newHash)
		}
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, err
	}

	return &AuthResult{User: user, AccessToken: token}, nil
}

// ResolveCaller maps a bearer token to the user it was issued for. A valid
// token whose user has since been deleted resolves to ErrUnauthenticated,
// not to a distinct error.
func (s *AuthService) ResolveCaller(ctx context.Context, token string) (*domain.User, error) {
	userID, err := s.tokens.Validate(token)
	if err != nil {
		return nil, ErrUnauthenticated
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUnauthenticated
		}
		return nil, err
	}

	return user, nil
}
