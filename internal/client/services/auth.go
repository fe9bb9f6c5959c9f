package services

import (
	"bytes"
	"context"
	"fmt"

	"github.com/dmitrijs2005/snaphire/internal/client/repositories"
	"github.com/dmitrijs2005/snaphire/internal/common"
	"github.com/dmitrijs2005/snaphire/internal/cryptox"
	"github.com/dmitrijs2005/snaphire/internal/keys"
	"github.com/dmitrijs2005/snaphire/internal/logging"
)

const (
	MinIDLength     = 3
	MinSecretLength = 4
)

// AuthService defines account operations for the CLI.
//
// Contract:
//   - CheckID: validate a user ID for signup (length, then uniqueness).
//   - CheckSecret: validate a secret for signup.
//   - Signup: run both checks in order and persist the credential record.
//   - Login: report whether id/secret match a stored record. Every kind of
//     failure is reported as false.
type AuthService interface {
	CheckID(ctx context.Context, id string) error
	CheckSecret(secret []byte) error
	Signup(ctx context.Context, id string, secret []byte) error
	Login(ctx context.Context, id string, secret []byte) bool
}

type authService struct {
	store  repositories.Store
	keys   keys.Normalizer
	hasher cryptox.SecretHasher
	log    logging.Logger
}

// NewAuthService constructs an AuthService over store. norm decides how user
// IDs map to storage keys and hasher how secrets are stored.
func NewAuthService(store repositories.Store, norm keys.Normalizer, hasher cryptox.SecretHasher, log logging.Logger) AuthService {
	return &authService{store: store, keys: norm, hasher: hasher, log: log}
}

func (a *authService) CheckID(ctx context.Context, id string) error {
	if len(id) < MinIDLength {
		return common.ErrTooShortID
	}
	if a.store.Exists(ctx, a.keys.Key(id)) {
		return common.ErrAlreadyExists
	}
	return nil
}

func (a *authService) CheckSecret(secret []byte) error {
	if len(secret) < MinSecretLength {
		return common.ErrTooShortSecret
	}
	if bytes.ContainsAny(secret, "\r\n") {
		return common.ErrInvalidSecret
	}
	return nil
}

// Signup validates id and secret and creates the credential record.
// Exists followed by WriteCreate is not atomic unless the store was opened
// with exclusive create, in which case a concurrent signup surfaces as
// common.ErrAlreadyExists.
func (a *authService) Signup(ctx context.Context, id string, secret []byte) error {
	if err := a.CheckID(ctx, id); err != nil {
		return err
	}
	if err := a.CheckSecret(secret); err != nil {
		return err
	}

	stored, err := a.hasher.Hash(secret)
	if err != nil {
		return fmt.Errorf("hash secret: %w", err)
	}

	key := a.keys.Key(id)
	if err := a.store.WriteCreate(ctx, key, stored); err != nil {
		a.log.Error(ctx, "create credential record", "key", key, "error", err)
		return fmt.Errorf("signup %q: %w", key, err)
	}

	a.log.Info(ctx, "user signed up", "key", key)
	return nil
}

func (a *authService) Login(ctx context.Context, id string, secret []byte) bool {
	key := a.keys.Key(id)

	stored, ok := a.store.ReadFirstLine(ctx, key)
	if !ok {
		a.log.Debug(ctx, "login: no credential record", "key", key)
		return false
	}
	if !a.hasher.Verify(stored, secret) {
		a.log.Debug(ctx, "login: secret mismatch", "key", key)
		return false
	}
	return true
}
