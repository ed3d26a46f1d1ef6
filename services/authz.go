package services

import (
	"context"

	"github.com/rpupo63/portfolio-site-backend/errs"
	"github.com/rpupo63/portfolio-site-backend/models"
)

// AnonymousID is the identity value carried by unauthenticated requests.
const AnonymousID uint = 0

// Authorizer evaluates access-control predicates. Every check loads the user
// fresh so a revoked or granted admin flag takes effect immediately.
type Authorizer struct {
	users UserReader
}

func NewAuthorizer(users UserReader) Authorizer {
	return Authorizer{users: users}
}

// IsAdmin reports whether the identity resolves to an admin user. Anonymous
// identities and identities that no longer resolve to a row are not admins.
func (a Authorizer) IsAdmin(ctx context.Context, userID uint) (bool, error) {
	if userID == AnonymousID {
		return false, nil
	}
	user, err := a.users.FindByID(ctx, userID)
	if err != nil {
		return false, errs.NewDatabaseError("find user", "user", err)
	}
	return user != nil && user.IsAdmin, nil
}

// CanModifyComment reports whether the identity owns the comment or is an
// admin.
func (a Authorizer) CanModifyComment(ctx context.Context, userID uint, comment *models.Comment) (bool, error) {
	if userID != AnonymousID && comment.UserID == userID {
		return true, nil
	}
	return a.IsAdmin(ctx, userID)
}
