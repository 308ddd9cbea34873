package auth

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type stubSessionManager struct {
	loggedIn  bool
	loginErr  error
	logoutErr error

	loginCalled  bool
	logoutCalled bool
}

func (s *stubSessionManager) LogIn(_ http.ResponseWriter, _ *http.Request) error {
	s.loginCalled = true
	return s.loginErr
}

func (s *stubSessionManager) LogOut(_ http.ResponseWriter, _ *http.Request) error {
	s.logoutCalled = true
	return s.logoutErr
}

func (s *stubSessionManager) IsLoggedIn(_ *http.Request) bool {
	return s.loggedIn
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func postLogin(handler *Handler, password string) *httptest.ResponseRecorder {
	form := url.Values{"password": {password}}
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	handler.HandleLogin(rec, req)
	return rec
}

func TestHandleLogin_CorrectPassword(t *testing.T) {
	sessions := &stubSessionManager{}
	handler := NewHandler(sessions, "secret", nopLogger{})

	rec := postLogin(handler, "secret")

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/admin", rec.Header().Get("Location"))
	assert.True(t, sessions.loginCalled)
}

func TestHandleLogin_WrongPassword(t *testing.T) {
	sessions := &stubSessionManager{}
	handler := NewHandler(sessions, "secret", nopLogger{})

	rec := postLogin(handler, "guess")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, sessions.loginCalled)
}

func TestHandleLogin_EmptyPassword(t *testing.T) {
	sessions := &stubSessionManager{}
	handler := NewHandler(sessions, "secret", nopLogger{})

	rec := postLogin(handler, "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, sessions.loginCalled)
}

func TestHandleLoginForm_RedirectsWhenLoggedIn(t *testing.T) {
	sessions := &stubSessionManager{loggedIn: true}
	handler := NewHandler(sessions, "secret", nopLogger{})

	req := httptest.NewRequest(http.MethodGet, "/login", nil)
	rec := httptest.NewRecorder()
	handler.HandleLoginForm(rec, req)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/admin", rec.Header().Get("Location"))
}

func TestHandleLogout(t *testing.T) {
	sessions := &stubSessionManager{loggedIn: true}
	handler := NewHandler(sessions, "secret", nopLogger{})

	req := httptest.NewRequest(http.MethodGet, "/logout", nil)
	rec := httptest.NewRecorder()
	handler.HandleLogout(rec, req)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))
	assert.True(t, sessions.logoutCalled)
}
