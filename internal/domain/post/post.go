package post

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrPostNotFound     = errors.New("post not found")
	ErrAlreadyLiked     = errors.New("post already liked")
	ErrNotYetLiked      = errors.New("post has not yet been liked")
	ErrCommentNotFound  = errors.New("comment does not exist")
	ErrNotCommentAuthor = errors.New("user is not the comment author")
)

type Like struct {
	UserID uuid.UUID `json:"user"`
}

type Comment struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user"`
	Name      string    `json:"name"`
	Avatar    string    `json:"avatar"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"date"`
}

// Post carries the author's name and avatar denormalized at creation
// time. Likes and comments are newest-first.
type Post struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user"`
	Text      string    `json:"text"`
	Name      string    `json:"name"`
	Avatar    string    `json:"avatar"`
	Likes     []Like    `json:"likes"`
	Comments  []Comment `json:"comments"`
	CreatedAt time.Time `json:"date"`
}

// AddLike inserts a like at the head of the sequence. A user may like a
// post at most once.
func (p *Post) AddLike(userID uuid.UUID) error {
	for _, like := range p.Likes {
		if like.UserID == userID {
			return ErrAlreadyLiked
		}
	}
	p.Likes = append([]Like{{UserID: userID}}, p.Likes...)
	return nil
}

func (p *Post) RemoveLike(userID uuid.UUID) error {
	for i, like := range p.Likes {
		if like.UserID == userID {
			p.Likes = append(p.Likes[:i], p.Likes[i+1:]...)
			return nil
		}
	}
	return ErrNotYetLiked
}

func (p *Post) AddComment(c Comment) {
	p.Comments = append([]Comment{c}, p.Comments...)
}

// RemoveComment removes the comment with the given id. Only the
// comment's author may remove it.
func (p *Post) RemoveComment(commentID, callerID uuid.UUID) error {
	for i, c := range p.Comments {
		if c.ID == commentID {
			if c.UserID != callerID {
				return ErrNotCommentAuthor
			}
			p.Comments = append(p.Comments[:i], p.Comments[i+1:]...)
			return nil
		}
	}
	return ErrCommentNotFound
}

type Repository interface {
	Save(ctx context.Context, post *Post) error
	Update(ctx context.Context, post *Post) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*Post, error)
	List(ctx context.Context) ([]*Post, error)
}
