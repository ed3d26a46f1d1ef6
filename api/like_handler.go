package api

import (
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rpupo63/portfolio-site-backend/services"
)

type likeHandler struct {
	responder   Responder
	logger      zerolog.Logger
	likeService *services.LikeService
}

func newLikeHandler(likeService *services.LikeService) likeHandler {
	logger := log.With().Str("handlerName", "likeHandler").Logger()

	return likeHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		likeService: likeService,
	}
}

// ToggleLikeResponse reports the resulting like state
type ToggleLikeResponse struct {
	Status services.LikeState `json:"status"`
}

// toggleLike flips the caller's like on a project
// @Summary Toggle like
// @Description Likes the project if the caller has not liked it yet, unlikes it otherwise
// @Tags Likes
// @Produce json
// @Param projectID path int true "Project ID"
// @Success 200 {object} ToggleLikeResponse "Resulting state: liked or unliked"
// @Failure 404 {object} ErrorResponse "Not Found - Project not found"
// @Router /project/{projectID}/like [post]
func (h likeHandler) toggleLike() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := projectIDParam(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		state, err := h.likeService.Toggle(r.Context(), ctxGetUserID(r.Context()), projectID)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, ToggleLikeResponse{Status: state})
	}
}
