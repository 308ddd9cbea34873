// Package session админская сессия на подписанной cookie
// Вместо глобального флага "logged_in" - подписанный токен gorilla/sessions;
// подделка значения без знания секрета невозможна
package session

import (
	"fmt"
	"net/http"

	"github.com/gorilla/sessions"
)

const loggedInKey = "logged_in"

// Manager управляет админской сессией
type Manager struct {
	store *sessions.CookieStore
	name  string
}

// NewManager создает менеджер сессий
// secret - ключ подписи cookie, name - имя cookie
func NewManager(secret, name string) *Manager {
	store := sessions.NewCookieStore([]byte(secret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400, // сутки
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}

	return &Manager{
		store: store,
		name:  name,
	}
}

// LogIn помечает сессию как админскую
func (m *Manager) LogIn(w http.ResponseWriter, r *http.Request) error {
	sess, _ := m.store.Get(r, m.name)
	sess.Values[loggedInKey] = true

	if err := sess.Save(r, w); err != nil {
		return fmt.Errorf("session: failed to save: %w", err)
	}
	return nil
}

// LogOut очищает сессию
func (m *Manager) LogOut(w http.ResponseWriter, r *http.Request) error {
	sess, _ := m.store.Get(r, m.name)
	sess.Values = map[interface{}]interface{}{}
	sess.Options.MaxAge = -1

	if err := sess.Save(r, w); err != nil {
		return fmt.Errorf("session: failed to clear: %w", err)
	}
	return nil
}

// IsLoggedIn проверяет, что запрос несет валидную админскую сессию
func (m *Manager) IsLoggedIn(r *http.Request) bool {
	sess, err := m.store.Get(r, m.name)
	if err != nil {
		return false
	}

	loggedIn, ok := sess.Values[loggedInKey].(bool)
	return ok && loggedIn
}
