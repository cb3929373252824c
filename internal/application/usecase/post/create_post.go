package post

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/khoahotran/devconnect/internal/domain/post"
	"github.com/khoahotran/devconnect/internal/domain/user"
	"github.com/khoahotran/devconnect/pkg/logger"
)

type CreatePostUseCase struct {
	postRepo post.Repository
	userRepo user.Repository
	logger   logger.Logger
}

func NewCreatePostUseCase(pRepo post.Repository, uRepo user.Repository, log logger.Logger) *CreatePostUseCase {
	return &CreatePostUseCase{
		postRepo: pRepo,
		userRepo: uRepo,
		logger:   log,
	}
}

type CreatePostInput struct {
	UserID uuid.UUID
	Text   string
}

type CreatePostOutput struct {
	Post *post.Post
}

// Execute denormalizes the author's name and avatar onto the new post.
func (uc *CreatePostUseCase) Execute(ctx context.Context, input CreatePostInput) (*CreatePostOutput, error) {
	u, err := uc.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	p := &post.Post{
		ID:        uuid.New(),
		UserID:    u.ID,
		Text:      input.Text,
		Name:      u.Name,
		Avatar:    u.Avatar,
		Likes:     []post.Like{},
		Comments:  []post.Comment{},
		CreatedAt: time.Now().UTC(),
	}

	if err := uc.postRepo.Save(ctx, p); err != nil {
		return nil, err
	}
	return &CreatePostOutput{Post: p}, nil
}
