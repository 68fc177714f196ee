package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/aeropark/parking-system/internal/core/domain"
	"github.com/aeropark/parking-system/internal/core/ports"
)

// Default account seeded on first use.
const (
	defaultAdminUsername = "Abraham"
	defaultAdminPassword = "123456"
	defaultAdminName     = "Administrateur"
)

// AdminService handles administrator credentials and the single current
// session record. Login/logout failures are ordinary results; the error
// return only surfaces storage problems.
type AdminService struct {
	store    ports.KeyValueStore
	verifier ports.CredentialVerifier
	logger   zerolog.Logger
}

func NewAdminService(store ports.KeyValueStore, verifier ports.CredentialVerifier, logger zerolog.Logger) *AdminService {
	return &AdminService{store: store, verifier: verifier, logger: logger}
}

// Initialize seeds the default account when no accounts are stored yet.
func (s *AdminService) Initialize(ctx context.Context) error {
	_, ok, err := s.store.Get(ctx, keyAdmins)
	if err != nil {
		return fmt.Errorf("load %s: %w", keyAdmins, err)
	}
	if ok {
		return nil
	}

	stored, err := s.verifier.Hash(defaultAdminPassword)
	if err != nil {
		return fmt.Errorf("seed default admin: %w", err)
	}
	accounts := []domain.AdminAccount{{
		Username: defaultAdminUsername,
		Password: stored,
		Name:     defaultAdminName,
	}}
	if err := saveCollection(ctx, s.store, keyAdmins, accounts); err != nil {
		return err
	}
	s.logger.Info().Str("username", defaultAdminUsername).Msg("default admin account seeded")
	return nil
}

// Login checks the credentials against the stored accounts and writes the
// session record on success. Any prior session survives a failed attempt.
func (s *AdminService) Login(ctx context.Context, username, password string) (domain.AuthResult, error) {
	if err := s.Initialize(ctx); err != nil {
		return domain.AuthResult{}, err
	}
	accounts, err := loadCollection[domain.AdminAccount](ctx, s.store, keyAdmins)
	if err != nil {
		return domain.AuthResult{}, err
	}

	for _, acc := range accounts {
		if acc.Username != username || !s.verifier.Verify(acc.Password, password) {
			continue
		}
		session := domain.AdminSession{
			Username: acc.Username,
			Name:     acc.Name,
			LoginAt:  time.Now().UTC(),
		}
		if err := saveRecord(ctx, s.store, keyAdminSession, session); err != nil {
			return domain.AuthResult{}, err
		}
		s.logger.Info().Str("username", username).Msg("admin logged in")
		return domain.AuthResult{Success: true, Message: "login successful"}, nil
	}

	s.logger.Warn().Str("username", username).Msg("admin login rejected")
	return domain.AuthResult{Success: false, Message: "incorrect username or password"}, nil
}

// Logout removes the session record unconditionally.
func (s *AdminService) Logout(ctx context.Context) error {
	if err := s.store.Remove(ctx, keyAdminSession); err != nil {
		return fmt.Errorf("remove %s: %w", keyAdminSession, err)
	}
	return nil
}

func (s *AdminService) IsLoggedIn(ctx context.Context) (bool, error) {
	_, ok, err := s.store.Get(ctx, keyAdminSession)
	return ok, err
}

func (s *AdminService) CurrentSession(ctx context.Context) (*domain.AdminSession, error) {
	session, ok, err := loadRecord[domain.AdminSession](ctx, s.store, keyAdminSession)
	if err != nil || !ok {
		return nil, err
	}
	return &session, nil
}

// ChangePassword overwrites the stored password of the logged-in account.
// The session record is left as is.
func (s *AdminService) ChangePassword(ctx context.Context, oldPassword, newPassword string) (domain.AuthResult, error) {
	session, err := s.CurrentSession(ctx)
	if err != nil {
		return domain.AuthResult{}, err
	}
	if session == nil {
		return domain.AuthResult{Success: false, Message: "not logged in"}, nil
	}

	accounts, err := loadCollection[domain.AdminAccount](ctx, s.store, keyAdmins)
	if err != nil {
		return domain.AuthResult{}, err
	}
	idx := -1
	for i := range accounts {
		if accounts[i].Username == session.Username {
			idx = i
			break
		}
	}
	if idx < 0 {
		return domain.AuthResult{Success: false, Message: "account not found"}, nil
	}
	if !s.verifier.Verify(accounts[idx].Password, oldPassword) {
		return domain.AuthResult{Success: false, Message: "old password incorrect"}, nil
	}

	stored, err := s.verifier.Hash(newPassword)
	if err != nil {
		return domain.AuthResult{}, fmt.Errorf("hash new password: %w", err)
	}
	accounts[idx].Password = stored
	if err := saveCollection(ctx, s.store, keyAdmins, accounts); err != nil {
		return domain.AuthResult{}, err
	}

	s.logger.Info().Str("username", session.Username).Msg("admin password changed")
	return domain.AuthResult{Success: true, Message: "password updated"}, nil
}
