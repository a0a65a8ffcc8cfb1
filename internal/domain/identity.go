package domain

// Identity is the authenticated caller extracted from a verified session
// token. It lives only in the request context and is never persisted.
// Name is set only for Google-derived sessions.
type Identity struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}
