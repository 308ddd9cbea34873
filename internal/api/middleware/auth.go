package middleware

import (
	"net/http"

	"github.com/gorilla/mux"
)

// SessionChecker проверяет админскую сессию запроса
type SessionChecker interface {
	IsLoggedIn(r *http.Request) bool
}

// SessionAuth middleware для защиты админских endpoint'ов
// Запросы без валидной сессии перенаправляются на /login
func SessionAuth(sessions SessionChecker) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !sessions.IsLoggedIn(r) {
				http.Redirect(w, r, "/login", http.StatusSeeOther)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
