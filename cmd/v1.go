package main

import (
	"github.com/go-chi/chi/v5"
	"github.com/tesseract-club/arena/middleware"
)

func NewV1Router() *chi.Mux {
	v1 := chi.NewRouter()

	// configure all endpoints
	v1.Get("/healthz", apiConfig.HandlerReadiness)

	// auth layer
	v1.Post("/auth/signup", apiConfig.HandlerSignUp)
	v1.Post("/auth/login", apiConfig.HandlerLogin)
	v1.Post("/auth/logout", apiConfig.HandlerLogout)
	v1.Get("/auth/me", middleware.JWTMiddleware(apiConfig.HandlerGetMe))

	// contests layer
	// discovery feed needs no authentication
	v1.Get("/contests/public", apiConfig.HandlerGetPublicContests)
	// organizer crud
	v1.Post("/contests", middleware.JWTMiddleware(apiConfig.HandlerCreateContest))
	v1.Get("/contests/my-contests", middleware.JWTMiddleware(apiConfig.HandlerGetMyContests))
	v1.Get("/contests/{contest_id}", middleware.JWTMiddleware(apiConfig.HandlerGetContest))
	v1.Put("/contests/{contest_id}", middleware.JWTMiddleware(apiConfig.HandlerUpdateContest))
	v1.Delete("/contests/{contest_id}", middleware.JWTMiddleware(apiConfig.HandlerDeleteContest))

	// participant management
	v1.Post("/contests/{contest_id}/join", middleware.JWTMiddleware(apiConfig.HandlerJoinContest))
	v1.Post("/contests/{contest_id}/leave", middleware.JWTMiddleware(apiConfig.HandlerLeaveContest))
	v1.Get("/contests/{contest_id}/participants", middleware.JWTMiddleware(apiConfig.HandlerGetContestParticipants))

	return v1
}
