package post

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestPost_AddLike(t *testing.T) {
	p := &Post{ID: uuid.New()}
	alice := uuid.New()
	bob := uuid.New()

	assert.NoError(t, p.AddLike(alice))
	assert.NoError(t, p.AddLike(bob))
	assert.Len(t, p.Likes, 2)

	// newest first
	assert.Equal(t, bob, p.Likes[0].UserID)

	err := p.AddLike(alice)
	assert.ErrorIs(t, err, ErrAlreadyLiked)
	assert.Len(t, p.Likes, 2)
}

func TestPost_RemoveLike(t *testing.T) {
	p := &Post{ID: uuid.New()}
	alice := uuid.New()

	assert.ErrorIs(t, p.RemoveLike(alice), ErrNotYetLiked)

	assert.NoError(t, p.AddLike(alice))
	assert.NoError(t, p.RemoveLike(alice))
	assert.Empty(t, p.Likes)

	assert.ErrorIs(t, p.RemoveLike(alice), ErrNotYetLiked)
}

func TestPost_AddComment_PrependsNewest(t *testing.T) {
	p := &Post{ID: uuid.New()}
	first := Comment{ID: uuid.New(), UserID: uuid.New(), Text: "first", CreatedAt: time.Now()}
	second := Comment{ID: uuid.New(), UserID: uuid.New(), Text: "second", CreatedAt: time.Now()}

	p.AddComment(first)
	p.AddComment(second)

	assert.Len(t, p.Comments, 2)
	assert.Equal(t, "second", p.Comments[0].Text)
	assert.Equal(t, "first", p.Comments[1].Text)
}

func TestPost_RemoveComment(t *testing.T) {
	author := uuid.New()
	stranger := uuid.New()
	comment := Comment{ID: uuid.New(), UserID: author, Text: "hello"}

	p := &Post{ID: uuid.New()}
	p.AddComment(comment)

	err := p.RemoveComment(uuid.New(), author)
	assert.ErrorIs(t, err, ErrCommentNotFound)
	assert.Len(t, p.Comments, 1)

	err = p.RemoveComment(comment.ID, stranger)
	assert.ErrorIs(t, err, ErrNotCommentAuthor)
	assert.Len(t, p.Comments, 1)

	assert.NoError(t, p.RemoveComment(comment.ID, author))
	assert.Empty(t, p.Comments)
}
