package controllers

import (
	"errors"
	"net/http"

	"devconnector-be/internal/models"
	"devconnector-be/internal/service"

	"github.com/gin-gonic/gin"
)

type PostController struct {
	postService service.PostService
}

func NewPostController(postService service.PostService) *PostController {
	return &PostController{
		postService: postService,
	}
}

// Create handles POST /api/posts.
func (pc *PostController) Create(c *gin.Context) {
	userID, ok := authedUser(c)
	if !ok {
		return
	}

	var req models.PostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, bindingErrors(err, models.PostMessages))
		return
	}

	post, err := pc.postService.Create(userID, req.Text)
	if err != nil {
		serverError(c, err)
		return
	}

	c.JSON(http.StatusOK, post)
}

// GetAll handles GET /api/posts.
func (pc *PostController) GetAll(c *gin.Context) {
	posts, err := pc.postService.GetAll()
	if err != nil {
		serverError(c, err)
		return
	}

	c.JSON(http.StatusOK, posts)
}

// GetByID handles GET /api/posts/:id.
func (pc *PostController) GetByID(c *gin.Context) {
	post, err := pc.postService.GetByID(c.Param("id"))
	if err != nil {
		pc.respondPostError(c, err)
		return
	}

	c.JSON(http.StatusOK, post)
}

// Delete handles DELETE /api/posts/:id. Only the owner may delete; a
// mismatch leaves the post untouched.
func (pc *PostController) Delete(c *gin.Context) {
	userID, ok := authedUser(c)
	if !ok {
		return
	}

	if err := pc.postService.Delete(c.Param("id"), userID); err != nil {
		pc.respondPostError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"msg": "Post removed"})
}

// Like handles PUT /api/posts/like/:id.
func (pc *PostController) Like(c *gin.Context) {
	userID, ok := authedUser(c)
	if !ok {
		return
	}

	likes, err := pc.postService.Like(c.Param("id"), userID)
	if err != nil {
		if errors.Is(err, service.ErrAlreadyLiked) {
			c.JSON(http.StatusBadRequest, gin.H{"msg": "Post already liked"})
			return
		}
		pc.respondPostError(c, err)
		return
	}

	c.JSON(http.StatusOK, likes)
}

// Unlike handles PUT /api/posts/unlike/:id.
func (pc *PostController) Unlike(c *gin.Context) {
	userID, ok := authedUser(c)
	if !ok {
		return
	}

	likes, err := pc.postService.Unlike(c.Param("id"), userID)
	if err != nil {
		if errors.Is(err, service.ErrNotYetLiked) {
			c.JSON(http.StatusBadRequest, gin.H{"msg": "Post has not yet been liked"})
			return
		}
		pc.respondPostError(c, err)
		return
	}

	c.JSON(http.StatusOK, likes)
}

// AddComment handles POST /api/posts/comment/:id.
func (pc *PostController) AddComment(c *gin.Context) {
	userID, ok := authedUser(c)
	if !ok {
		return
	}

	var req models.PostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, bindingErrors(err, models.PostMessages))
		return
	}

	comments, err := pc.postService.AddComment(c.Param("id"), userID, req.Text)
	if err != nil {
		pc.respondPostError(c, err)
		return
	}

	c.JSON(http.StatusOK, comments)
}

// DeleteComment handles DELETE /api/posts/:id/comment/:comment_id.
func (pc *PostController) DeleteComment(c *gin.Context) {
	userID, ok := authedUser(c)
	if !ok {
		return
	}

	comments, err := pc.postService.DeleteComment(c.Param("id"), c.Param("comment_id"), userID)
	if err != nil {
		if errors.Is(err, service.ErrCommentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"msg": "Comment does not exist"})
			return
		}
		pc.respondPostError(c, err)
		return
	}

	c.JSON(http.StatusOK, comments)
}

func (pc *PostController) respondPostError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrPostNotFound):
		c.JSON(http.StatusNotFound, gin.H{"msg": "Post not found"})
	case errors.Is(err, service.ErrNotAuthorized):
		c.JSON(http.StatusUnauthorized, gin.H{"msg": "User not authorized"})
	default:
		serverError(c, err)
	}
}
