package ports

import (
	"context"

	"github.com/aeropark/parking-system/internal/core/domain"
)

// AdminService handles administrator credentials and the single session
// record. LoggedOut → LoggedIn via Login, back via Logout.
type AdminService interface {
	// Initialize seeds the default account when no accounts exist. Idempotent.
	Initialize(ctx context.Context) error
	// Login writes a session record on success. On failure any prior session
	// is left untouched and the result carries a human-readable message.
	Login(ctx context.Context, username, password string) (domain.AuthResult, error)
	// Logout removes the session record unconditionally.
	Logout(ctx context.Context) error
	IsLoggedIn(ctx context.Context) (bool, error)
	// CurrentSession returns nil when nobody is logged in.
	CurrentSession(ctx context.Context) (*domain.AdminSession, error)
	// ChangePassword requires an active session and a matching old password.
	// The session is not re-issued.
	ChangePassword(ctx context.Context, oldPassword, newPassword string) (domain.AuthResult, error)
}
