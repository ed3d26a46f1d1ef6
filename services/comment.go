package services

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rpupo63/portfolio-site-backend/errs"
	"github.com/rpupo63/portfolio-site-backend/models"
)

// CommentRepo defines the storage operations the comment surface needs.
type CommentRepo interface {
	FindByID(ctx context.Context, id uint) (*models.Comment, error)
	FindByProject(ctx context.Context, projectID uint) ([]models.Comment, error)
	FindAll(ctx context.Context) ([]models.Comment, error)
	Add(ctx context.Context, comment *models.Comment) error
	UpdateContent(ctx context.Context, id uint, content string) error
	Delete(ctx context.Context, id uint) error
}

// CommentService handles comment creation and moderation. Mutation is
// restricted to the comment's owner or an admin.
type CommentService struct {
	comments CommentRepo
	projects ProjectReader
	authz    Authorizer
	logger   zerolog.Logger
}

func NewCommentService(comments CommentRepo, projects ProjectReader, authz Authorizer) *CommentService {
	return &CommentService{
		comments: comments,
		projects: projects,
		authz:    authz,
		logger:   log.With().Str("serviceName", "commentService").Logger(),
	}
}

// Add inserts a comment on a project, owned by userID.
func (svc *CommentService) Add(ctx context.Context, userID, projectID uint, content string) (*models.Comment, error) {
	if userID == AnonymousID {
		return nil, errs.Unauthorized
	}
	if content == "" {
		return nil, errs.NewMissingRequiredFieldError("content")
	}

	project, err := svc.projects.FindByID(ctx, projectID)
	if err != nil {
		return nil, errs.NewDatabaseError("find", "project", err)
	}
	if project == nil {
		return nil, errs.NewNotFound("project")
	}

	comment := &models.Comment{
		Content:   content,
		UserID:    userID,
		ProjectID: projectID,
	}
	if err := svc.comments.Add(ctx, comment); err != nil {
		return nil, errs.NewDatabaseError("create", "comment", err)
	}
	return comment, nil
}

// Edit replaces a comment's content. Only the owner or an admin may edit;
// the creation timestamp is preserved.
func (svc *CommentService) Edit(ctx context.Context, userID, commentID uint, content string) (*models.Comment, error) {
	if content == "" {
		return nil, errs.NewMissingRequiredFieldError("content")
	}

	comment, err := svc.loadForModification(ctx, userID, commentID)
	if err != nil {
		return nil, err
	}

	if err := svc.comments.UpdateContent(ctx, commentID, content); err != nil {
		return nil, errs.NewDatabaseError("update", "comment", err)
	}
	comment.Content = content
	return comment, nil
}

// Delete removes a comment. Same authorization as Edit.
func (svc *CommentService) Delete(ctx context.Context, userID, commentID uint) error {
	if _, err := svc.loadForModification(ctx, userID, commentID); err != nil {
		return err
	}

	if err := svc.comments.Delete(ctx, commentID); err != nil {
		return errs.NewDatabaseError("delete", "comment", err)
	}
	svc.logger.Info().Uint("commentID", commentID).Uint("userID", userID).Msg("comment deleted")
	return nil
}

// ListForProject returns a project's comments in posting order.
func (svc *CommentService) ListForProject(ctx context.Context, projectID uint) ([]models.Comment, error) {
	comments, err := svc.comments.FindByProject(ctx, projectID)
	if err != nil {
		return nil, errs.NewDatabaseError("find", "comments", err)
	}
	return comments, nil
}

// ListAll returns every comment across all projects, newest first. Admin
// only; intended for moderation.
func (svc *CommentService) ListAll(ctx context.Context, userID uint) ([]models.Comment, error) {
	admin, err := svc.authz.IsAdmin(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !admin {
		return nil, errs.NewForbidden("admin access required")
	}

	comments, err := svc.comments.FindAll(ctx)
	if err != nil {
		return nil, errs.NewDatabaseError("find", "comments", err)
	}
	return comments, nil
}

// loadForModification fetches the comment and runs the modification
// predicate, returning NotFound or Forbidden as appropriate.
func (svc *CommentService) loadForModification(ctx context.Context, userID, commentID uint) (*models.Comment, error) {
	comment, err := svc.comments.FindByID(ctx, commentID)
	if err != nil {
		return nil, errs.NewDatabaseError("find", "comment", err)
	}
	if comment == nil {
		return nil, errs.NewNotFound("comment")
	}

	allowed, err := svc.authz.CanModifyComment(ctx, userID, comment)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, errs.NewForbidden("you do not have permission to modify this comment")
	}
	return comment, nil
}
