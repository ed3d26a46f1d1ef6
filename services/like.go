package services

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rpupo63/portfolio-site-backend/errs"
)

// LikeState is the resulting state of a like toggle.
type LikeState string

const (
	Liked   LikeState = "liked"
	Unliked LikeState = "unliked"
)

// LikeRepo defines the storage operations the like surface needs. Toggle
// must be atomic with respect to the existence check.
type LikeRepo interface {
	Toggle(ctx context.Context, userID, projectID uint) (liked bool, err error)
	CountForProject(ctx context.Context, projectID uint) (int64, error)
}

// LikeService handles the like toggle.
type LikeService struct {
	likes    LikeRepo
	projects ProjectReader
	logger   zerolog.Logger
}

func NewLikeService(likes LikeRepo, projects ProjectReader) *LikeService {
	return &LikeService{
		likes:    likes,
		projects: projects,
		logger:   log.With().Str("serviceName", "likeService").Logger(),
	}
}

// Toggle flips the like state for (userID, projectID): absent becomes liked,
// present becomes unliked. Calling it twice returns to the original state.
func (svc *LikeService) Toggle(ctx context.Context, userID, projectID uint) (LikeState, error) {
	if userID == AnonymousID {
		return "", errs.Unauthorized
	}

	project, err := svc.projects.FindByID(ctx, projectID)
	if err != nil {
		return "", errs.NewDatabaseError("find", "project", err)
	}
	if project == nil {
		return "", errs.NewNotFound("project")
	}

	liked, err := svc.likes.Toggle(ctx, userID, projectID)
	if err != nil {
		return "", errs.NewDatabaseError("toggle", "like", err)
	}

	state := Unliked
	if liked {
		state = Liked
	}
	svc.logger.Debug().Uint("userID", userID).Uint("projectID", projectID).Str("state", string(state)).Msg("like toggled")
	return state, nil
}

// Count returns the number of likes on a project.
func (svc *LikeService) Count(ctx context.Context, projectID uint) (int64, error) {
	count, err := svc.likes.CountForProject(ctx, projectID)
	if err != nil {
		return 0, errs.NewDatabaseError("count", "likes", err)
	}
	return count, nil
}
