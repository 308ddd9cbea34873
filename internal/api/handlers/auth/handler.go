package auth

import (
	"crypto/subtle"
	"net/http"

	"github.com/m04kA/BRB-BookingService/internal/api/handlers"
)

const (
	msgLoginPrompt   = "введіть пароль адміністратора"
	msgWrongPassword = "невірний пароль"
	msgMissingForm   = "некоректна форма входу"
)

type Handler struct {
	sessions SessionManager
	password string
	logger   Logger
}

func NewHandler(sessions SessionManager, password string, logger Logger) *Handler {
	return &Handler{
		sessions: sessions,
		password: password,
		logger:   logger,
	}
}

// HandleLoginForm GET /login
// Уже залогиненного админа сразу отправляем в админку
func (h *Handler) HandleLoginForm(w http.ResponseWriter, r *http.Request) {
	if h.sessions.IsLoggedIn(r) {
		http.Redirect(w, r, "/admin", http.StatusSeeOther)
		return
	}

	handlers.RespondMessage(w, http.StatusOK, msgLoginPrompt)
}

// HandleLogin POST /login
// Form params: password
func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.logger.Warn("POST /login - Failed to parse form: %v", err)
		handlers.RespondBadRequest(w, msgMissingForm)
		return
	}

	password := r.PostFormValue("password")
	if subtle.ConstantTimeCompare([]byte(password), []byte(h.password)) != 1 {
		h.logger.Warn("POST /login - Wrong password attempt")
		handlers.RespondUnauthorized(w, msgWrongPassword)
		return
	}

	if err := h.sessions.LogIn(w, r); err != nil {
		h.logger.Error("POST /login - Failed to start session: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /login - Admin logged in successfully")
	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}

// HandleLogout GET /logout
func (h *Handler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	if err := h.sessions.LogOut(w, r); err != nil {
		h.logger.Error("GET /logout - Failed to clear session: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /logout - Admin logged out")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
