package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/aeropark/parking-system/internal/core/domain"
)

type stubAdminService struct {
	loginFn          func(ctx context.Context, username, password string) (domain.AuthResult, error)
	logoutFn         func(ctx context.Context) error
	currentSessionFn func(ctx context.Context) (*domain.AdminSession, error)
	changePasswordFn func(ctx context.Context, oldPassword, newPassword string) (domain.AuthResult, error)
}

func (s *stubAdminService) Initialize(context.Context) error { return nil }

func (s *stubAdminService) Login(ctx context.Context, username, password string) (domain.AuthResult, error) {
	return s.loginFn(ctx, username, password)
}

func (s *stubAdminService) Logout(ctx context.Context) error { return s.logoutFn(ctx) }

func (s *stubAdminService) IsLoggedIn(ctx context.Context) (bool, error) {
	session, err := s.currentSessionFn(ctx)
	return session != nil, err
}

func (s *stubAdminService) CurrentSession(ctx context.Context) (*domain.AdminSession, error) {
	return s.currentSessionFn(ctx)
}

func (s *stubAdminService) ChangePassword(ctx context.Context, oldPassword, newPassword string) (domain.AuthResult, error) {
	return s.changePasswordFn(ctx, oldPassword, newPassword)
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

func TestAdminHandler_Login_Success(t *testing.T) {
	e := newTestEcho()
	session := &domain.AdminSession{Username: "Abraham", Name: "Administrateur", LoginAt: time.Now().UTC()}
	stub := &stubAdminService{
		loginFn: func(ctx context.Context, username, password string) (domain.AuthResult, error) {
			if username != "Abraham" || password != "123456" {
				t.Fatalf("unexpected credentials: %s %s", username, password)
			}
			return domain.AuthResult{Success: true, Message: "login successful"}, nil
		},
		currentSessionFn: func(ctx context.Context) (*domain.AdminSession, error) {
			return session, nil
		},
	}
	handler := NewAdminHandler(stub, "secret", time.Hour)

	body := strings.NewReader(`{"username":"Abraham","password":"123456"}`)
	req := httptest.NewRequest(http.MethodPost, "/admin/login", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["success"] != true {
		t.Fatalf("expected success, got %+v", resp)
	}
	tokenStr, _ := resp["token"].(string)
	if tokenStr == "" {
		t.Fatal("expected a token in the response")
	}

	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(tokenStr, claims, func(*jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	if err != nil || !tkn.Valid {
		t.Fatalf("token does not verify: %v", err)
	}
	if claims["username"] != "Abraham" || claims["name"] != "Administrateur" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestAdminHandler_Login_BadCredentials(t *testing.T) {
	e := newTestEcho()
	stub := &stubAdminService{
		loginFn: func(ctx context.Context, username, password string) (domain.AuthResult, error) {
			return domain.AuthResult{Success: false, Message: "incorrect username or password"}, nil
		},
	}
	handler := NewAdminHandler(stub, "secret", time.Hour)

	body := strings.NewReader(`{"username":"Abraham","password":"wrong"}`)
	req := httptest.NewRequest(http.MethodPost, "/admin/login", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["success"] != false {
		t.Fatalf("expected failure, got %+v", resp)
	}
	if _, present := resp["token"]; present {
		t.Fatal("a failed login must not return a token")
	}
}

func TestAdminHandler_Login_MissingFields(t *testing.T) {
	e := newTestEcho()
	handler := NewAdminHandler(&stubAdminService{}, "secret", time.Hour)

	req := httptest.NewRequest(http.MethodPost, "/admin/login", strings.NewReader(`{"username":"Abraham"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.Login(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestAdminHandler_Session_NotLoggedIn(t *testing.T) {
	e := newTestEcho()
	stub := &stubAdminService{
		currentSessionFn: func(ctx context.Context) (*domain.AdminSession, error) {
			return nil, nil
		},
	}
	handler := NewAdminHandler(stub, "secret", time.Hour)

	req := httptest.NewRequest(http.MethodGet, "/admin/session", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Session(c); err != domain.ErrNotLoggedIn {
		t.Fatalf("expected ErrNotLoggedIn, got %v", err)
	}
}

func TestAdminHandler_ChangePassword(t *testing.T) {
	e := newTestEcho()
	stub := &stubAdminService{
		changePasswordFn: func(ctx context.Context, oldPassword, newPassword string) (domain.AuthResult, error) {
			if oldPassword != "123456" || newPassword != "new-secret" {
				t.Fatalf("unexpected args: %s %s", oldPassword, newPassword)
			}
			return domain.AuthResult{Success: true, Message: "password updated"}, nil
		},
	}
	handler := NewAdminHandler(stub, "secret", time.Hour)

	body := strings.NewReader(`{"old_password":"123456","new_password":"new-secret"}`)
	req := httptest.NewRequest(http.MethodPost, "/admin/password", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.ChangePassword(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
