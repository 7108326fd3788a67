package cart

import "github.com/gorilla/sessions"

// KV is the persisted key-value store the cart lives in. In the web app it
// is backed by the customer's session; tests and CLI tools use MapKV.
type KV interface {
	Get(key string) (string, bool)
	Set(key, value string)
	Delete(key string)
}

// SessionKV adapts a gorilla session to the KV interface. The handler owns
// the session lifecycle and must still call session.Save after mutations.
type SessionKV struct {
	session *sessions.Session
}

// NewSessionKV wraps the given session
func NewSessionKV(session *sessions.Session) *SessionKV {
	return &SessionKV{session: session}
}

func (s *SessionKV) Get(key string) (string, bool) {
	raw, ok := s.session.Values[key]
	if !ok {
		return "", false
	}
	value, ok := raw.(string)
	return value, ok
}

func (s *SessionKV) Set(key, value string) {
	s.session.Values[key] = value
}

func (s *SessionKV) Delete(key string) {
	delete(s.session.Values, key)
}

// MapKV is an in-memory KV store for tests and command-line tools
type MapKV struct {
	values map[string]string
}

// NewMapKV creates an empty in-memory store
func NewMapKV() *MapKV {
	return &MapKV{values: make(map[string]string)}
}

func (m *MapKV) Get(key string) (string, bool) {
	value, ok := m.values[key]
	return value, ok
}

func (m *MapKV) Set(key, value string) {
	m.values[key] = value
}

func (m *MapKV) Delete(key string) {
	delete(m.values, key)
}
