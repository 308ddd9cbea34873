package auth

import "net/http"

// SessionManager управляет админской сессией на подписанной cookie
type SessionManager interface {
	LogIn(w http.ResponseWriter, r *http.Request) error
	LogOut(w http.ResponseWriter, r *http.Request) error
	IsLoggedIn(r *http.Request) bool
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
