package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rpupo63/portfolio-site-backend/errs"
	"github.com/rpupo63/portfolio-site-backend/services"
)

type commentHandler struct {
	responder      Responder
	logger         zerolog.Logger
	commentService *services.CommentService
}

func newCommentHandler(commentService *services.CommentService) commentHandler {
	logger := log.With().Str("handlerName", "commentHandler").Logger()

	return commentHandler{
		responder:      NewResponder(logger),
		logger:         logger,
		commentService: commentService,
	}
}

// CommentRequest is the JSON body for adding or editing a comment
type CommentRequest struct {
	Content string `json:"content"`
}

func commentIDParam(r *http.Request) (uint, error) {
	idStr := chi.URLParam(r, "commentID")
	if idStr == "" {
		return 0, errs.BadRequest("missing commentID")
	}
	id, err := strconv.ParseUint(idStr, 10, 64)
	if err != nil {
		return 0, errs.BadRequest("invalid commentID")
	}
	return uint(id), nil
}

// addComment posts a comment on a project
// @Summary Add comment
// @Tags Comments
// @Accept json
// @Produce json
// @Param projectID path int true "Project ID"
// @Param comment body CommentRequest true "Comment content"
// @Success 201 {object} models.Comment "Created comment"
// @Failure 404 {object} ErrorResponse "Not Found - Project not found"
// @Router /project/{projectID}/comment [post]
func (h commentHandler) addComment() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := projectIDParam(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var req CommentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewMalformedPayloadError("comment", err))
			return
		}

		comment, err := h.commentService.Add(r.Context(), ctxGetUserID(r.Context()), projectID, req.Content)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, comment)
	}
}

// editComment replaces a comment's content. Owner or admin only.
// @Summary Edit comment
// @Tags Comments
// @Accept json
// @Produce json
// @Param commentID path int true "Comment ID"
// @Param comment body CommentRequest true "New content"
// @Success 200 {object} models.Comment "Updated comment"
// @Failure 403 {object} ErrorResponse "Forbidden - Not the owner or an admin"
// @Failure 404 {object} ErrorResponse "Not Found - Comment not found"
// @Router /comment/{commentID} [put]
func (h commentHandler) editComment() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		commentID, err := commentIDParam(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var req CommentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewMalformedPayloadError("comment", err))
			return
		}

		comment, err := h.commentService.Edit(r.Context(), ctxGetUserID(r.Context()), commentID, req.Content)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, comment)
	}
}

// deleteComment removes a comment. Owner or admin only.
// @Summary Delete comment
// @Tags Comments
// @Produce json
// @Param commentID path int true "Comment ID"
// @Success 200 {object} map[string]string "Success message"
// @Failure 403 {object} ErrorResponse "Forbidden - Not the owner or an admin"
// @Failure 404 {object} ErrorResponse "Not Found - Comment not found"
// @Router /comment/{commentID} [delete]
func (h commentHandler) deleteComment() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		commentID, err := commentIDParam(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.commentService.Delete(r.Context(), ctxGetUserID(r.Context()), commentID); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "comment deleted successfully",
		})
	}
}
