package post

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/khoahotran/devconnect/internal/domain/post"
	"github.com/khoahotran/devconnect/pkg/apperror"
)

type DeletePostUseCase struct {
	postRepo post.Repository
}

func NewDeletePostUseCase(pRepo post.Repository) *DeletePostUseCase {
	return &DeletePostUseCase{postRepo: pRepo}
}

type DeletePostInput struct {
	PostID uuid.UUID
	UserID uuid.UUID
}

// Execute checks existence before authorization: a missing post is 404,
// a post owned by someone else is 401.
func (uc *DeletePostUseCase) Execute(ctx context.Context, input DeletePostInput) error {
	p, err := uc.postRepo.FindByID(ctx, input.PostID)
	if err != nil {
		if errors.Is(err, post.ErrPostNotFound) {
			return apperror.NewNotFound("Post not found")
		}
		return err
	}

	if p.UserID != input.UserID {
		return apperror.NewUnauthorized("User not authorized")
	}

	return uc.postRepo.Delete(ctx, input.PostID)
}
