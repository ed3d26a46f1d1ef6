package api

import (
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rpupo63/portfolio-site-backend/services"
)

// adminHandler serves the moderation views. The admin check itself lives in
// the services; these routes only require an authenticated identity.
type adminHandler struct {
	responder      Responder
	logger         zerolog.Logger
	commentService *services.CommentService
	contactService *services.ContactService
}

func newAdminHandler(commentService *services.CommentService, contactService *services.ContactService) adminHandler {
	logger := log.With().Str("handlerName", "adminHandler").Logger()

	return adminHandler{
		responder:      NewResponder(logger),
		logger:         logger,
		commentService: commentService,
		contactService: contactService,
	}
}

// getAllComments lists every comment across all projects for moderation
// @Summary Get all comments (admin)
// @Tags Admin
// @Produce json
// @Success 200 {array} models.Comment "All comments, newest first"
// @Failure 403 {object} ErrorResponse "Forbidden - Admin access required"
// @Router /admin/comments [get]
func (h adminHandler) getAllComments() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		comments, err := h.commentService.ListAll(r.Context(), ctxGetUserID(r.Context()))
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, comments)
	}
}

// getAllContacts lists the contact inbox
// @Summary Get contact inbox (admin)
// @Tags Admin
// @Produce json
// @Success 200 {array} models.Contact "Inbox, newest first"
// @Failure 403 {object} ErrorResponse "Forbidden - Admin access required"
// @Router /admin/contacts [get]
func (h adminHandler) getAllContacts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		contacts, err := h.contactService.ListAll(r.Context(), ctxGetUserID(r.Context()))
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, contacts)
	}
}
