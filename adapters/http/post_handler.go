package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	postUC "github.com/khoahotran/devconnect/internal/application/usecase/post"
	"github.com/khoahotran/devconnect/pkg/apperror"
)

type PostHandler struct {
	createPostUseCase  *postUC.CreatePostUseCase
	listPostsUseCase   *postUC.ListPostsUseCase
	getPostUseCase     *postUC.GetPostUseCase
	deletePostUseCase  *postUC.DeletePostUseCase
	likePostUseCase    *postUC.LikePostUseCase
	commentPostUseCase *postUC.CommentPostUseCase
}

func NewPostHandler(
	createUC *postUC.CreatePostUseCase,
	listUC *postUC.ListPostsUseCase,
	getUC *postUC.GetPostUseCase,
	deleteUC *postUC.DeletePostUseCase,
	likeUC *postUC.LikePostUseCase,
	commentUC *postUC.CommentPostUseCase,
) *PostHandler {
	return &PostHandler{
		createPostUseCase:  createUC,
		listPostsUseCase:   listUC,
		getPostUseCase:     getUC,
		deletePostUseCase:  deleteUC,
		likePostUseCase:    likeUC,
		commentPostUseCase: commentUC,
	}
}

func (h *PostHandler) callerID(c *gin.Context) (uuid.UUID, bool) {
	userID, ok := GetUserIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewUnauthorized("user information not found"))
		return uuid.Nil, false
	}
	return userID, true
}

// postID treats a malformed id the same as a missing post.
func postID(c *gin.Context, param string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(param))
	if err != nil {
		return uuid.Nil, apperror.NewNotFound("Post not found")
	}
	return id, nil
}

func (h *PostHandler) CreatePost(c *gin.Context) {
	userID, ok := h.callerID(c)
	if !ok {
		return
	}

	var req CreatePostRequest
	if err := bindJSON(c, &req); err != nil {
		c.Error(err)
		return
	}

	output, err := h.createPostUseCase.Execute(c.Request.Context(), postUC.CreatePostInput{
		UserID: userID,
		Text:   req.Text,
	})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, output.Post)
}

func (h *PostHandler) ListPosts(c *gin.Context) {
	output, err := h.listPostsUseCase.Execute(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, output.Posts)
}

func (h *PostHandler) GetPost(c *gin.Context) {
	id, err := postID(c, "id")
	if err != nil {
		c.Error(err)
		return
	}

	output, err := h.getPostUseCase.Execute(c.Request.Context(), postUC.GetPostInput{PostID: id})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, output.Post)
}

func (h *PostHandler) DeletePost(c *gin.Context) {
	userID, ok := h.callerID(c)
	if !ok {
		return
	}

	id, err := postID(c, "id")
	if err != nil {
		c.Error(err)
		return
	}

	if err := h.deletePostUseCase.Execute(c.Request.Context(), postUC.DeletePostInput{
		PostID: id,
		UserID: userID,
	}); err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"msg": "Post removed"})
}

func (h *PostHandler) LikePost(c *gin.Context) {
	userID, ok := h.callerID(c)
	if !ok {
		return
	}

	id, err := postID(c, "id")
	if err != nil {
		c.Error(err)
		return
	}

	output, err := h.likePostUseCase.Like(c.Request.Context(), postUC.LikePostInput{
		PostID: id,
		UserID: userID,
	})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, output.Post.Likes)
}

func (h *PostHandler) UnlikePost(c *gin.Context) {
	userID, ok := h.callerID(c)
	if !ok {
		return
	}

	id, err := postID(c, "id")
	if err != nil {
		c.Error(err)
		return
	}

	output, err := h.likePostUseCase.Unlike(c.Request.Context(), postUC.LikePostInput{
		PostID: id,
		UserID: userID,
	})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, output.Post)
}

func (h *PostHandler) AddComment(c *gin.Context) {
	userID, ok := h.callerID(c)
	if !ok {
		return
	}

	id, err := postID(c, "id")
	if err != nil {
		c.Error(err)
		return
	}

	var req AddCommentRequest
	if err := bindJSON(c, &req); err != nil {
		c.Error(err)
		return
	}

	output, err := h.commentPostUseCase.Add(c.Request.Context(), postUC.AddCommentInput{
		PostID: id,
		UserID: userID,
		Text:   req.Text,
	})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, output.Post.Comments)
}

func (h *PostHandler) DeleteComment(c *gin.Context) {
	userID, ok := h.callerID(c)
	if !ok {
		return
	}

	id, err := postID(c, "id")
	if err != nil {
		c.Error(err)
		return
	}

	commentID, err := uuid.Parse(c.Param("cid"))
	if err != nil {
		c.Error(apperror.NewBadRequest("Comment does not exist"))
		return
	}

	output, err := h.commentPostUseCase.Remove(c.Request.Context(), postUC.RemoveCommentInput{
		PostID:    id,
		CommentID: commentID,
		UserID:    userID,
	})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, output.Post.Comments)
}
