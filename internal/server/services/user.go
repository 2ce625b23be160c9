package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/eventauth/internal/common"
	"github.com/dmitrijs2005/eventauth/internal/cryptox"
	"github.com/dmitrijs2005/eventauth/internal/server/auth"
	"github.com/dmitrijs2005/eventauth/internal/server/config"
	"github.com/dmitrijs2005/eventauth/internal/server/models"
	"github.com/dmitrijs2005/eventauth/internal/server/repositories/repomanager"
)

type UserService struct {
	repomanager           repomanager.RepositoryManager
	jwtSecret             []byte
	tokenValidityDuration time.Duration
	bcryptCost            int
}

func NewUserService(m repomanager.RepositoryManager, cfg *config.Config) *UserService {
	cost := cfg.BcryptCost
	if cost == 0 {
		cost = cryptox.DefaultCost
	}
	return &UserService{
		repomanager:           m,
		jwtSecret:             []byte(cfg.SecretKey),
		tokenValidityDuration: cfg.TokenValidityDuration,
		bcryptCost:            cost,
	}
}

// NormalizeEmail trims and lower-cases an email address so lookups and the
// uniqueness constraint treat case variants as one identity.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register stores a new identity. Empty fields yield common.ErrorValidation,
// a taken email common.ErrorAlreadyExists. Other failures wrap
// common.ErrorInternal together with the cause.
func (s *UserService) Register(ctx context.Context, username, email, password string) error {
	username = strings.TrimSpace(username)
	email = NormalizeEmail(email)

	if username == "" || email == "" || password == "" {
		return common.ErrorValidation
	}

	if len(password) > cryptox.MaxPasswordBytes {
		return s.rejectLongPassword(ctx, email)
	}

	hash, err := cryptox.HashPassword(password, s.bcryptCost)
	if err != nil {
		return fmt.Errorf("%w: error hashing password: %w", common.ErrorInternal, err)
	}

	user := &models.User{
		UserName:     username,
		Email:        email,
		PasswordHash: hash,
	}

	_, err = s.repomanager.Users().Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return common.ErrorAlreadyExists
		}
		return fmt.Errorf("%w: error creating user: %w", common.ErrorInternal, err)
	}

	return nil
}

// rejectLongPassword returns common.ErrorAlreadyExists for a taken email and
// common.ErrPasswordTooLong otherwise.
func (s *UserService) rejectLongPassword(ctx context.Context, email string) error {
	_, err := s.repomanager.Users().GetUserByEmail(ctx, email)
	switch {
	case err == nil:
		return common.ErrorAlreadyExists
	case errors.Is(err, common.ErrorNotFound):
		return common.ErrPasswordTooLong
	default:
		return fmt.Errorf("%w: error searching user: %w", common.ErrorInternal, err)
	}
}

// Login checks the credentials and returns a signed token carrying the
// user's name and email.
func (s *UserService) Login(ctx context.Context, email, password string) (string, error) {
	email = NormalizeEmail(email)

	if email == "" || password == "" {
		return "", common.ErrorValidation
	}

	user, err := s.repomanager.Users().GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", common.ErrUserNotRegistered
		}
		return "", fmt.Errorf("%w: error searching user: %w", common.ErrorInternal, err)
	}

	ok, err := cryptox.CheckPassword(user.PasswordHash, password)
	if err != nil {
		return "", fmt.Errorf("%w: error checking password: %w", common.ErrorInternal, err)
	}
	if !ok {
		return "", common.ErrInvalidCredentials
	}

	token, err := auth.GenerateToken(user.UserName, user.Email, s.jwtSecret, s.tokenValidityDuration)
	if err != nil {
		return "", fmt.Errorf("%w: error generating token: %w", common.ErrorInternal, err)
	}

	return token, nil
}
