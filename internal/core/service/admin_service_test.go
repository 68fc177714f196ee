package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
)

func newAdminService(store *stubStore) *AdminService {
	return NewAdminService(store, PlaintextVerifier{}, zerolog.Nop())
}

func TestAdminService_Login_DefaultAccount(t *testing.T) {
	store := newStubStore()
	svc := newAdminService(store)
	ctx := context.Background()

	// Login seeds the default account on a fresh store.
	res, err := svc.Login(ctx, "Abraham", "123456")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if !res.Success {
		t.Fatalf("expected default credentials to work: %s", res.Message)
	}

	loggedIn, err := svc.IsLoggedIn(ctx)
	if err != nil {
		t.Fatalf("IsLoggedIn: %v", err)
	}
	if !loggedIn {
		t.Fatal("expected a session after login")
	}

	session, err := svc.CurrentSession(ctx)
	if err != nil {
		t.Fatalf("CurrentSession: %v", err)
	}
	if session == nil || session.Username != "Abraham" || session.Name != "Administrateur" {
		t.Fatalf("unexpected session: %+v", session)
	}
	if session.LoginAt.IsZero() {
		t.Fatal("expected LoginAt to be set")
	}
}

func TestAdminService_Login_WrongPassword(t *testing.T) {
	store := newStubStore()
	svc := newAdminService(store)
	ctx := context.Background()

	res, err := svc.Login(ctx, "Abraham", "wrong")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if res.Success {
		t.Fatal("expected wrong password to be rejected")
	}
	loggedIn, err := svc.IsLoggedIn(ctx)
	if err != nil {
		t.Fatalf("IsLoggedIn: %v", err)
	}
	if loggedIn {
		t.Fatal("a failed login must not create a session")
	}
}

func TestAdminService_Login_FailureKeepsSession(t *testing.T) {
	store := newStubStore()
	svc := newAdminService(store)
	ctx := context.Background()

	if res, err := svc.Login(ctx, "Abraham", "123456"); err != nil || !res.Success {
		t.Fatalf("Login: res=%+v err=%v", res, err)
	}
	if res, err := svc.Login(ctx, "Abraham", "wrong"); err != nil || res.Success {
		t.Fatalf("expected failed login, res=%+v err=%v", res, err)
	}

	session, err := svc.CurrentSession(ctx)
	if err != nil {
		t.Fatalf("CurrentSession: %v", err)
	}
	if session == nil {
		t.Fatal("a failed attempt must leave the existing session in place")
	}
}

func TestAdminService_Logout(t *testing.T) {
	store := newStubStore()
	svc := newAdminService(store)
	ctx := context.Background()

	if res, err := svc.Login(ctx, "Abraham", "123456"); err != nil || !res.Success {
		t.Fatalf("Login: res=%+v err=%v", res, err)
	}
	if err := svc.Logout(ctx); err != nil {
		t.Fatalf("Logout: %v", err)
	}
	loggedIn, err := svc.IsLoggedIn(ctx)
	if err != nil {
		t.Fatalf("IsLoggedIn: %v", err)
	}
	if loggedIn {
		t.Fatal("expected no session after logout")
	}

	// Logging out twice is fine.
	if err := svc.Logout(ctx); err != nil {
		t.Fatalf("second Logout: %v", err)
	}
}

func TestAdminService_ChangePassword(t *testing.T) {
	store := newStubStore()
	svc := newAdminService(store)
	ctx := context.Background()

	// Not logged in yet.
	res, err := svc.ChangePassword(ctx, "123456", "new-secret")
	if err != nil {
		t.Fatalf("ChangePassword: %v", err)
	}
	if res.Success {
		t.Fatal("expected change to fail without a session")
	}

	if res, err := svc.Login(ctx, "Abraham", "123456"); err != nil || !res.Success {
		t.Fatalf("Login: res=%+v err=%v", res, err)
	}

	res, err = svc.ChangePassword(ctx, "wrong", "new-secret")
	if err != nil {
		t.Fatalf("ChangePassword: %v", err)
	}
	if res.Success {
		t.Fatal("expected wrong old password to be rejected")
	}

	res, err = svc.ChangePassword(ctx, "123456", "new-secret")
	if err != nil {
		t.Fatalf("ChangePassword: %v", err)
	}
	if !res.Success {
		t.Fatalf("expected change to succeed: %s", res.Message)
	}

	// The old password no longer works, the new one does.
	if err := svc.Logout(ctx); err != nil {
		t.Fatalf("Logout: %v", err)
	}
	if res, err := svc.Login(ctx, "Abraham", "123456"); err != nil || res.Success {
		t.Fatalf("old password must be rejected, res=%+v err=%v", res, err)
	}
	if res, err := svc.Login(ctx, "Abraham", "new-secret"); err != nil || !res.Success {
		t.Fatalf("new password must work, res=%+v err=%v", res, err)
	}
}
