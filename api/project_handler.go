package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rpupo63/portfolio-site-backend/errs"
	"github.com/rpupo63/portfolio-site-backend/models"
	"github.com/rpupo63/portfolio-site-backend/services"
)

type projectHandler struct {
	responder      Responder
	logger         zerolog.Logger
	projectService *services.ProjectService
	commentService *services.CommentService
	likeService    *services.LikeService
}

func newProjectHandler(projectService *services.ProjectService, commentService *services.CommentService, likeService *services.LikeService) projectHandler {
	logger := log.With().Str("handlerName", "projectHandler").Logger()

	return projectHandler{
		responder:      NewResponder(logger),
		logger:         logger,
		projectService: projectService,
		commentService: commentService,
		likeService:    likeService,
	}
}

// CreateProjectRequest is the JSON body for project creation
type CreateProjectRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	ImageURL    *string `json:"image_url,omitempty"`
	GithubURL   *string `json:"github_url,omitempty"`
}

// ProjectWithLikes is a project together with its like count
type ProjectWithLikes struct {
	Project   models.Project `json:"project"`
	LikeCount int64          `json:"like_count"`
}

// ProjectDetail is a project with its comments and like count
type ProjectDetail struct {
	Project   models.Project   `json:"project"`
	Comments  []models.Comment `json:"comments"`
	LikeCount int64            `json:"like_count"`
}

// ProjectCollection is the list response
type ProjectCollection struct {
	Projects []ProjectWithLikes `json:"projects"`
	Total    int                `json:"total,omitempty"`
}

// projectIDParam parses the {projectID} URL parameter.
func projectIDParam(r *http.Request) (uint, error) {
	idStr := chi.URLParam(r, "projectID")
	if idStr == "" {
		return 0, errs.BadRequest("missing projectID")
	}
	id, err := strconv.ParseUint(idStr, 10, 64)
	if err != nil {
		return 0, errs.BadRequest("invalid projectID")
	}
	return uint(id), nil
}

// getAllProjects retrieves all projects, newest first
// @Summary Get all projects
// @Description Retrieves all projects with their like counts, newest first
// @Tags Projects
// @Produce json
// @Success 200 {object} ProjectCollection "List of projects"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error fetching projects"
// @Router /projects [get]
func (h projectHandler) getAllProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projects, err := h.projectService.List(r.Context())
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		withLikes := make([]ProjectWithLikes, 0, len(projects))
		for _, project := range projects {
			count, err := h.likeService.Count(r.Context(), project.ID)
			if err != nil {
				h.responder.WriteError(w, err)
				return
			}
			withLikes = append(withLikes, ProjectWithLikes{Project: project, LikeCount: count})
		}

		h.responder.WriteJSON(w, ProjectCollection{
			Projects: withLikes,
			Total:    len(withLikes),
		})
	}
}

// getProject retrieves a specific project by ID with comments and like count
// @Summary Get project
// @Tags Projects
// @Produce json
// @Param projectID path int true "Project ID"
// @Success 200 {object} ProjectDetail "Project details"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid projectID"
// @Failure 404 {object} ErrorResponse "Not Found - Project not found"
// @Router /project/{projectID} [get]
func (h projectHandler) getProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := projectIDParam(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		project, err := h.projectService.Get(r.Context(), projectID)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		comments, err := h.commentService.ListForProject(r.Context(), projectID)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		count, err := h.likeService.Count(r.Context(), projectID)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, ProjectDetail{
			Project:   *project,
			Comments:  comments,
			LikeCount: count,
		})
	}
}

// createProject creates a new project owned by the authenticated user
// @Summary Create project
// @Tags Projects
// @Accept json
// @Produce json
// @Param project body CreateProjectRequest true "Project data"
// @Success 201 {object} models.Project "Created project"
// @Failure 400 {object} ErrorResponse "Bad Request - Missing title or description"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Router /project [post]
func (h projectHandler) createProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateProjectRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewMalformedPayloadError("project", err))
			return
		}

		project, err := h.projectService.Create(
			r.Context(),
			ctxGetUserID(r.Context()),
			req.Title,
			req.Description,
			req.ImageURL,
			req.GithubURL,
		)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, project)
	}
}
