package services

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rpupo63/portfolio-site-backend/errs"
	"github.com/rpupo63/portfolio-site-backend/models"
)

// ProjectReader defines read-only operations for projects.
type ProjectReader interface {
	FindAll(ctx context.Context) ([]models.Project, error)
	FindByID(ctx context.Context, id uint) (*models.Project, error)
}

// ProjectWriter defines write operations for projects.
type ProjectWriter interface {
	Add(ctx context.Context, project *models.Project) error
}

// ProjectService handles the project surface: create and read. There is no
// project edit or delete endpoint at the moment.
type ProjectService struct {
	reader ProjectReader
	writer ProjectWriter
	logger zerolog.Logger
}

func NewProjectService(reader ProjectReader, writer ProjectWriter) *ProjectService {
	return &ProjectService{
		reader: reader,
		writer: writer,
		logger: log.With().Str("serviceName", "projectService").Logger(),
	}
}

// Create inserts a project owned by ownerID. Title and description are
// required; there is no uniqueness constraint on titles.
func (svc *ProjectService) Create(ctx context.Context, ownerID uint, title, description string, imageURL, githubURL *string) (*models.Project, error) {
	if ownerID == AnonymousID {
		return nil, errs.Unauthorized
	}
	if title == "" {
		return nil, errs.NewMissingRequiredFieldError("title")
	}
	if description == "" {
		return nil, errs.NewMissingRequiredFieldError("description")
	}

	project := &models.Project{
		Title:       title,
		Description: description,
		ImageURL:    imageURL,
		GithubURL:   githubURL,
		UserID:      ownerID,
	}
	if err := svc.writer.Add(ctx, project); err != nil {
		return nil, errs.NewDatabaseError("create", "project", err)
	}

	svc.logger.Info().Uint("projectID", project.ID).Uint("ownerID", ownerID).Msg("project created")
	return project, nil
}

// List returns all projects, newest first. The result set is unbounded.
func (svc *ProjectService) List(ctx context.Context) ([]models.Project, error) {
	projects, err := svc.reader.FindAll(ctx)
	if err != nil {
		return nil, errs.NewDatabaseError("find", "projects", err)
	}
	return projects, nil
}

// Get returns a single project by ID.
func (svc *ProjectService) Get(ctx context.Context, id uint) (*models.Project, error) {
	project, err := svc.reader.FindByID(ctx, id)
	if err != nil {
		return nil, errs.NewDatabaseError("find", "project", err)
	}
	if project == nil {
		return nil, errs.NewNotFound("project")
	}
	return project, nil
}
