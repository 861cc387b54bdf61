package session

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"
)

const (
	cookieName  = "shop_session"
	keyUserID   = "user_id"
	keyUsername = "username"
	keyCartID   = "cart_id"
)

// Manager envuelve el almacén de cookies de sesión. La cookie solo guarda
// los ids de usuario y de carrito; el carrito vive en Mongo.
type Manager struct {
	store *sessions.CookieStore
}

func NewManager(secret string) *Manager {
	store := sessions.NewCookieStore([]byte(secret))
	store.Options = &sessions.Options{
		Path:     "/",
		HttpOnly: true,
		MaxAge:   60 * 60 * 24 * 30, // 30 días
	}
	return &Manager{store: store}
}

func (m *Manager) get(r *http.Request) *sessions.Session {
	// Get nunca devuelve sesión nil: con cookie inválida entrega una nueva
	s, _ := m.store.Get(r, cookieName)
	return s
}

// UserID devuelve el usuario autenticado de la sesión, si existe
func (m *Manager) UserID(r *http.Request) (string, bool) {
	s := m.get(r)
	id, ok := s.Values[keyUserID].(string)
	return id, ok && id != ""
}

// Username devuelve el nombre del usuario autenticado
func (m *Manager) Username(r *http.Request) string {
	s := m.get(r)
	name, _ := s.Values[keyUsername].(string)
	return name
}

// Login marca la sesión como autenticada
func (m *Manager) Login(w http.ResponseWriter, r *http.Request, userID, username string) error {
	s := m.get(r)
	s.Values[keyUserID] = userID
	s.Values[keyUsername] = username
	return s.Save(r, w)
}

// Logout destruye la sesión completa, carrito incluido
func (m *Manager) Logout(w http.ResponseWriter, r *http.Request) error {
	s := m.get(r)
	s.Options.MaxAge = -1
	return s.Save(r, w)
}

// CartID devuelve el id de carrito de la sesión, creándolo si hace falta
func (m *Manager) CartID(w http.ResponseWriter, r *http.Request) (string, error) {
	s := m.get(r)
	if id, ok := s.Values[keyCartID].(string); ok && id != "" {
		return id, nil
	}

	id := uuid.NewString()
	s.Values[keyCartID] = id
	return id, s.Save(r, w)
}
