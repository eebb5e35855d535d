package app

import (
	"github.com/ferdiebergado/notekit/internal/auth"
	"github.com/ferdiebergado/notekit/internal/middleware"
	"github.com/ferdiebergado/notekit/internal/note"
	"github.com/ferdiebergado/notekit/internal/platform/jwt"
	"github.com/ferdiebergado/notekit/internal/platform/router"
	"github.com/ferdiebergado/notekit/internal/platform/validation"
	"github.com/ferdiebergado/notekit/internal/user"
)

// collection matches the group root only. A bare "/" would also catch unknown sub-paths.
const collection = "/{$}"

func mountAuthRoutes(r router.Router, handler *auth.Handler, validator validation.Validator, maxBodySize int64) {
	r.Group("/auth", func(gr router.Router) {
		gr.Post("/register", handler.RegisterUser,
			middleware.DecodePayload[auth.RegisterUserRequest](maxBodySize),
			middleware.ValidateInput[auth.RegisterUserRequest](validator))
		gr.Post("/login", handler.LoginUser,
			middleware.DecodePayload[auth.UserLoginRequest](maxBodySize),
			middleware.ValidateInput[auth.UserLoginRequest](validator))
		gr.Post("/refresh", handler.RefreshToken,
			middleware.DecodePayload[auth.RefreshTokenRequest](maxBodySize),
			middleware.ValidateInput[auth.RefreshTokenRequest](validator))
		gr.Get("/check", handler.CheckToken)
		gr.Post("/logout", handler.LogoutUser)
	})
}

func mountUserRoutes(r router.Router, handler *user.Handler, tokens jwt.TokenService) {
	r.Group("/users", func(gr router.Router) {
		gr.Get("/me", handler.Me)
	}, auth.RequireToken(tokens))
}

func mountNoteRoutes(r router.Router, handler *note.Handler, validator validation.Validator, tokens jwt.TokenService, maxBodySize int64) {
	r.Group("/notes", func(gr router.Router) {
		gr.Post(collection, handler.CreateNote,
			middleware.DecodePayload[note.NoteRequest](maxBodySize),
			middleware.ValidateInput[note.NoteRequest](validator))
		gr.Get(collection, handler.ListNotes)
		gr.Get("/{id}", handler.GetNote)
		gr.Put("/{id}", handler.UpdateNote,
			middleware.DecodePayload[note.NoteRequest](maxBodySize),
			middleware.ValidateInput[note.NoteRequest](validator))
		gr.Delete("/{id}", handler.DeleteNote)
	}, auth.RequireToken(tokens))
}
