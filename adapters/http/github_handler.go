package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/khoahotran/devconnect/adapters/github"
)

type GithubHandler struct {
	client *github.Client
}

func NewGithubHandler(client *github.Client) *GithubHandler {
	return &GithubHandler{client: client}
}

// GetRepos proxies the upstream response verbatim.
func (h *GithubHandler) GetRepos(c *gin.Context) {
	repos, err := h.client.ListUserRepos(c.Request.Context(), c.Param("username"))
	if err != nil {
		c.Error(err)
		return
	}

	c.Data(http.StatusOK, "application/json; charset=utf-8", repos)
}
