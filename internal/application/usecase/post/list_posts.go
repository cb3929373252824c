package post

import (
	"context"
	"fmt"

	"github.com/khoahotran/devconnect/internal/domain/post"
)

type ListPostsUseCase struct {
	postRepo post.Repository
}

func NewListPostsUseCase(pRepo post.Repository) *ListPostsUseCase {
	return &ListPostsUseCase{postRepo: pRepo}
}

type ListPostsOutput struct {
	Posts []*post.Post
}

// Execute returns all posts, newest first.
func (uc *ListPostsUseCase) Execute(ctx context.Context) (*ListPostsOutput, error) {
	posts, err := uc.postRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list posts failed: %w", err)
	}
	return &ListPostsOutput{Posts: posts}, nil
}
