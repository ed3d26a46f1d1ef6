package api

import (
	"github.com/go-chi/chi/v5"
)

// setupRoutes registers the public and authenticated route groups
func setupRoutes(r chi.Router, handlers *routeHandlers, authMiddleware authMiddleware) {
	// Public routes
	r.Group(func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)

		r.Post("/register", handlers.authHandler.register())
		r.Post("/login", handlers.authHandler.login())
		r.Post("/logout", handlers.authHandler.logout())

		r.Get("/projects", handlers.projectHandler.getAllProjects())
		r.Get("/project/{projectID}", handlers.projectHandler.getProject())
		r.Get("/skills", handlers.skillHandler.getAllSkills())
		r.Post("/contact", handlers.contactHandler.submitContact())
	})

	// Authenticated routes
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware.authenticate)
		r.Use(ColoredHTTPLoggingMiddleware)

		r.Post("/project", handlers.projectHandler.createProject())
		r.Post("/project/{projectID}/comment", handlers.commentHandler.addComment())
		r.Post("/project/{projectID}/like", handlers.likeHandler.toggleLike())
		r.Put("/comment/{commentID}", handlers.commentHandler.editComment())
		r.Delete("/comment/{commentID}", handlers.commentHandler.deleteComment())

		// Admin moderation; the is_admin check runs inside the services
		r.Get("/admin/comments", handlers.adminHandler.getAllComments())
		r.Get("/admin/contacts", handlers.adminHandler.getAllContacts())
	})
}
