package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/singhbetu188/medium-blog-api/internal/application"
	"github.com/singhbetu188/medium-blog-api/internal/interface/middleware"
	"github.com/singhbetu188/medium-blog-api/pkg/response"
	"github.com/singhbetu188/medium-blog-api/pkg/validation"
)

type PostHandler struct {
	Svc    *application.PostService
	Logger *logrus.Logger
}

func NewPostHandler(svc *application.PostService, logger *logrus.Logger) *PostHandler {
	return &PostHandler{Svc: svc, Logger: logger}
}

type createPostRequest struct {
	Title   string `json:"title" binding:"required,min=3"`
	Content string `json:"content"`
}

type updatePostRequest struct {
	ID      string `json:"id" binding:"required"`
	Title   string `json:"title" binding:"required,min=3"`
	Content string `json:"content"`
}

// List GET /api/v1/posts
func (h *PostHandler) List(c *gin.Context) {
	posts, err := h.Svc.List(c.Request.Context())
	if err != nil {
		response.Error[any](c, http.StatusInternalServerError, "internal server error", nil)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"posts": posts}, "posts")
}

// Get GET /api/v1/posts/:id
func (h *PostHandler) Get(c *gin.Context) {
	id := c.Param("id")
	p, err := h.Svc.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, application.ErrPostNotFound) {
			response.Error[any](c, http.StatusNotFound, "post not found", nil)
			return
		}
		response.Error[any](c, http.StatusInternalServerError, "internal server error", nil)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"post": p}, "post")
}

// Create POST /api/v1/posts (auth required)
func (h *PostHandler) Create(c *gin.Context) {
	var req createPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	// The author is always the authenticated identity from the gate.
	authorID := c.GetString(middleware.CtxUserIDKey)
	p, err := h.Svc.Create(c.Request.Context(), authorID, req.Title, req.Content)
	if err != nil {
		response.Error[any](c, http.StatusInternalServerError, "internal server error", nil)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"post": p}, "post created")
}

// Update PUT /api/v1/posts (auth required; body carries the target id)
func (h *PostHandler) Update(c *gin.Context) {
	var req updatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	actorID := c.GetString(middleware.CtxUserIDKey)
	p, err := h.Svc.Update(c.Request.Context(), actorID, req.ID, req.Title, req.Content)
	if err != nil {
		if errors.Is(err, application.ErrNotFoundOrUnauthorized) {
			response.Error[any](c, http.StatusNotFound, "post not found or unauthorized", nil)
			return
		}
		response.Error[any](c, http.StatusInternalServerError, "internal server error", nil)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"post": p}, "post updated")
}
