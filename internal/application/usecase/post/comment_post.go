package post

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/khoahotran/devconnect/internal/domain/post"
	"github.com/khoahotran/devconnect/internal/domain/user"
	"github.com/khoahotran/devconnect/pkg/apperror"
)

type CommentPostUseCase struct {
	postRepo post.Repository
	userRepo user.Repository
}

func NewCommentPostUseCase(pRepo post.Repository, uRepo user.Repository) *CommentPostUseCase {
	return &CommentPostUseCase{
		postRepo: pRepo,
		userRepo: uRepo,
	}
}

type AddCommentInput struct {
	PostID uuid.UUID
	UserID uuid.UUID
	Text   string
}

type RemoveCommentInput struct {
	PostID    uuid.UUID
	CommentID uuid.UUID
	UserID    uuid.UUID
}

type CommentPostOutput struct {
	Post *post.Post
}

func (uc *CommentPostUseCase) findPost(ctx context.Context, id uuid.UUID) (*post.Post, error) {
	p, err := uc.postRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, post.ErrPostNotFound) {
			return nil, apperror.NewNotFound("Post not found")
		}
		return nil, err
	}
	return p, nil
}

// Add prepends a comment carrying the commenter's denormalized name and
// avatar, then persists the whole post.
func (uc *CommentPostUseCase) Add(ctx context.Context, input AddCommentInput) (*CommentPostOutput, error) {
	u, err := uc.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	p, err := uc.findPost(ctx, input.PostID)
	if err != nil {
		return nil, err
	}

	p.AddComment(post.Comment{
		ID:        uuid.New(),
		UserID:    u.ID,
		Name:      u.Name,
		Avatar:    u.Avatar,
		Text:      input.Text,
		CreatedAt: time.Now().UTC(),
	})

	if err := uc.postRepo.Update(ctx, p); err != nil {
		return nil, err
	}
	return &CommentPostOutput{Post: p}, nil
}

func (uc *CommentPostUseCase) Remove(ctx context.Context, input RemoveCommentInput) (*CommentPostOutput, error) {
	p, err := uc.findPost(ctx, input.PostID)
	if err != nil {
		return nil, err
	}

	if err := p.RemoveComment(input.CommentID, input.UserID); err != nil {
		if errors.Is(err, post.ErrNotCommentAuthor) {
			return nil, apperror.NewUnauthorized("User not authorized")
		}
		return nil, apperror.NewBadRequest("Comment does not exist")
	}

	if err := uc.postRepo.Update(ctx, p); err != nil {
		return nil, err
	}
	return &CommentPostOutput{Post: p}, nil
}
