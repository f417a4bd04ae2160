package service

import (
	"context"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/ramilexe/bookstore-service/bookstore/internal/errs"
	"github.com/ramilexe/bookstore-service/bookstore/internal/model"
	"github.com/ramilexe/bookstore-service/pkg/password"
)

// Register stores a new user with a bcrypt password digest. The existence
// check is a fast path; the unique index on username is what actually
// guarantees uniqueness under concurrent registrations.
func (s *Service) Register(ctx context.Context, creds model.Credentials) error {
	if _, err := s.repo.GetUser(ctx, creds.Username); err == nil {
		return errs.ErrUserExists
	} else if !errors.Is(err, errs.ErrNotFound) {
		return err
	}
	digest, err := password.Hash(creds.Password)
	if err != nil {
		return errors.Wrap(err, "hash password")
	}
	return s.repo.CreateUser(ctx, model.User{
		Username: creds.Username,
		Password: digest,
	})
}

// Login verifies the supplied password against the stored digest. An
// unknown username and a wrong password both return ErrInvalidCredentials
// so the response cannot reveal which check failed.
func (s *Service) Login(ctx context.Context, creds model.Credentials) (string, error) {
	user, err := s.repo.GetUser(ctx, creds.Username)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return "", errs.ErrInvalidCredentials
		}
		return "", err
	}
	if !password.Verify(user.Password, creds.Password) {
		return "", errs.ErrInvalidCredentials
	}
	if password.IsLegacy(user.Password) {
		s.upgradeDigest(ctx, user.Username, creds.Password)
	}
	return user.Username, nil
}

// upgradeDigest rewrites a legacy sha256 digest as bcrypt after a
// successful login. Best effort: the login already succeeded.
func (s *Service) upgradeDigest(ctx context.Context, username, plaintext string) {
	digest, err := password.Hash(plaintext)
	if err != nil {
		s.log.Warn("digest upgrade hash", zap.String("username", username), zap.Error(err))
		return
	}
	if err := s.repo.SetUserPassword(ctx, username, digest); err != nil {
		s.log.Warn("digest upgrade store", zap.String("username", username), zap.Error(err))
	}
}
