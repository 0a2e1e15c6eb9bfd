package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/airbean/order-system/internal/core/domain"
)

type stubAuthService struct {
	registerFn func(ctx context.Context, username, password, role string) (*domain.User, error)
	loginFn    func(ctx context.Context, username, password string) (string, *domain.User, error)
}

func (s *stubAuthService) Register(ctx context.Context, username, password, role string) (*domain.User, error) {
	return s.registerFn(ctx, username, password, role)
}

func (s *stubAuthService) Login(ctx context.Context, username, password string) (string, *domain.User, error) {
	return s.loginFn(ctx, username, password)
}

func newAuthContext(t *testing.T, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Register_Success(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, username, password, role string) (*domain.User, error) {
			if username != "alice" || password != "pw123456" || role != "user" {
				t.Fatalf("unexpected args: %s %s %s", username, password, role)
			}
			return &domain.User{Username: username, Role: role}, nil
		},
	}
	h := NewAuthHandler(stub)

	c, rec := newAuthContext(t, `{"username":"alice","password":"pw123456","role":"user"}`)
	if err := h.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["success"] != true {
		t.Fatalf("expected success=true, got %+v", resp)
	}
}

func TestAuthHandler_Register_UserExists(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, username, password, role string) (*domain.User, error) {
			return nil, domain.ErrUserExists
		},
	}
	h := NewAuthHandler(stub)

	c, rec := newAuthContext(t, `{"username":"bob","password":"pw123456"}`)
	if err := h.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestAuthHandler_Register_ValidationFailure(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, username, password, role string) (*domain.User, error) {
			t.Fatalf("service must not be called on invalid payload")
			return nil, nil
		},
	}
	h := NewAuthHandler(stub)

	c, rec := newAuthContext(t, `{"username":"al","password":"pw"}`)
	if err := h.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestAuthHandler_Login_Success(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, username, password string) (string, *domain.User, error) {
			return "signed-token", &domain.User{Username: username, Role: "user"}, nil
		},
	}
	h := NewAuthHandler(stub)

	c, rec := newAuthContext(t, `{"username":"alice","password":"pw123456"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["success"] != true || resp["token"] != "signed-token" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

// Unknown usernames and wrong passwords must produce the exact same
// response, so the login endpoint cannot be used to enumerate accounts.
func TestAuthHandler_Login_CredentialFailuresIndistinguishable(t *testing.T) {
	for name, svcErr := range map[string]error{
		"user not found": domain.ErrUserNotFound,
		"wrong password": domain.ErrInvalidCredentials,
	} {
		stub := &stubAuthService{
			loginFn: func(ctx context.Context, username, password string) (string, *domain.User, error) {
				return "", nil, svcErr
			},
		}
		h := NewAuthHandler(stub)

		c, rec := newAuthContext(t, `{"username":"ghost","password":"whatever"}`)
		if err := h.Login(c); err != nil {
			t.Fatalf("%s: handler error: %v", name, err)
		}
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("%s: expected 400, got %d", name, rec.Code)
		}

		var resp map[string]any
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("%s: invalid json: %v", name, err)
		}
		if resp["message"] != "invalid credentials" {
			t.Fatalf("%s: expected generic message, got %+v", name, resp)
		}
		if _, hasToken := resp["token"]; hasToken {
			t.Fatalf("%s: no token may be issued on failure", name)
		}
	}
}

func TestAuthHandler_Login_ServerError(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, username, password string) (string, *domain.User, error) {
			return "", nil, context.DeadlineExceeded
		},
	}
	h := NewAuthHandler(stub)

	c, rec := newAuthContext(t, `{"username":"alice","password":"pw123456"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
}
