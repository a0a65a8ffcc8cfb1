package http

import (
	"github.com/Kush146/note-app-Backend/internal/application/auth"
	"github.com/Kush146/note-app-Backend/internal/application/note"
	jwtinfra "github.com/Kush146/note-app-Backend/internal/infrastructure/jwt"
	"github.com/Kush146/note-app-Backend/internal/infrastructure/smtp"
)

// Deps holds all infrastructure dependencies for the router.
type Deps struct {
	PasscodeRepo auth.PasscodeStore
	NoteRepo     note.NoteStore
	Mailer       smtp.Mailer
	Google       auth.GoogleExchanger
	JWTProvider  *jwtinfra.Provider
}
