package api

import (
	"github.com/rpupo63/portfolio-site-backend/auth"
	"github.com/rpupo63/portfolio-site-backend/database"
	"github.com/rpupo63/portfolio-site-backend/services"
)

// initializeHandlers wires repositories into services and services into
// handlers, organized in a routeHandlers struct
func initializeHandlers(db database.Database, tokens *auth.TokenManager) *routeHandlers {
	authz := services.NewAuthorizer(db.UserRepo())

	authService := services.NewAuthService(db.UserRepo(), db.UserRepo())
	projectService := services.NewProjectService(db.ProjectRepo(), db.ProjectRepo())
	commentService := services.NewCommentService(db.CommentRepo(), db.ProjectRepo(), authz)
	likeService := services.NewLikeService(db.LikeRepo(), db.ProjectRepo())
	contactService := services.NewContactService(db.ContactRepo(), authz)
	skillService := services.NewSkillService(db.SkillRepo())

	return &routeHandlers{
		authHandler:    newAuthHandler(authService, tokens),
		projectHandler: newProjectHandler(projectService, commentService, likeService),
		commentHandler: newCommentHandler(commentService),
		likeHandler:    newLikeHandler(likeService),
		contactHandler: newContactHandler(contactService),
		skillHandler:   newSkillHandler(skillService),
		adminHandler:   newAdminHandler(commentService, contactService),
	}
}
