package core

import (
	"context"
	"errors"
	"fmt"
	"ipregistrar/internal/repository"
	tokenIssuer "ipregistrar/pkg/jwt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrIncorrectPassword = errors.New("incorrect password")
	ErrUserNotFound      = errors.New("user not found")
)

const tokenLifetime = 24 * time.Hour

// Authenticator issues API tokens to operators stored in the ledger.
type Authenticator struct {
	logs      *zap.SugaredLogger
	repo      Repository
	jwtIssuer JWTIssuer
}

func NewAuthenticator(logger *zap.SugaredLogger, repo Repository, jwt JWTIssuer) *Authenticator {
	return &Authenticator{
		logs:      logger,
		repo:      repo,
		jwtIssuer: jwt,
	}
}

// Authenticate checks the credentials and returns a signed token for the user.
func (a *Authenticator) Authenticate(ctx context.Context, msg AuthMessage) (string, error) {
	user, err := a.repo.GetUserFromDB(ctx, msg.Username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return "", ErrUserNotFound
		}
		return "", fmt.Errorf("get user from db: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(msg.Password)); err != nil {
		return "", ErrIncorrectPassword
	}

	token := a.jwtIssuer.Generate(tokenIssuer.TokenInfo{
		UserName: user.Username,
		Subject:  user.ID,
		Lifetime: tokenLifetime,
	})
	signed, err := a.jwtIssuer.Sign(token)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}

	a.logs.Infow("user authenticated", "user_id", user.ID)
	return signed, nil
}

// Authorize validates token and returns the subject it was issued to.
func (a *Authenticator) Authorize(token string) (string, error) {
	claims, err := a.jwtIssuer.Validate(token)
	if err != nil {
		return "", fmt.Errorf("validate jwt token: %w", err)
	}

	subject, ok := claims["sub"].(string)
	if !ok || subject == "" {
		return "", fmt.Errorf("validate jwt token: %w", tokenIssuer.ErrTokenNotValid)
	}
	return subject, nil
}
