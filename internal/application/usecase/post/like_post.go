package post

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/khoahotran/devconnect/internal/domain/post"
	"github.com/khoahotran/devconnect/pkg/apperror"
)

type LikePostUseCase struct {
	postRepo post.Repository
}

func NewLikePostUseCase(pRepo post.Repository) *LikePostUseCase {
	return &LikePostUseCase{postRepo: pRepo}
}

type LikePostInput struct {
	PostID uuid.UUID
	UserID uuid.UUID
}

type LikePostOutput struct {
	Post *post.Post
}

func (uc *LikePostUseCase) findPost(ctx context.Context, id uuid.UUID) (*post.Post, error) {
	p, err := uc.postRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, post.ErrPostNotFound) {
			return nil, apperror.NewNotFound("Post not found")
		}
		return nil, err
	}
	return p, nil
}

func (uc *LikePostUseCase) Like(ctx context.Context, input LikePostInput) (*LikePostOutput, error) {
	p, err := uc.findPost(ctx, input.PostID)
	if err != nil {
		return nil, err
	}

	if err := p.AddLike(input.UserID); err != nil {
		return nil, apperror.NewBadRequest("Post already liked")
	}

	if err := uc.postRepo.Update(ctx, p); err != nil {
		return nil, err
	}
	return &LikePostOutput{Post: p}, nil
}

func (uc *LikePostUseCase) Unlike(ctx context.Context, input LikePostInput) (*LikePostOutput, error) {
	p, err := uc.findPost(ctx, input.PostID)
	if err != nil {
		return nil, err
	}

	if err := p.RemoveLike(input.UserID); err != nil {
		return nil, apperror.NewBadRequest("Post has not yet been liked")
	}

	if err := uc.postRepo.Update(ctx, p); err != nil {
		return nil, err
	}
	return &LikePostOutput{Post: p}, nil
}
