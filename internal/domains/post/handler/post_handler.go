package handler

import (
	"github.com/gin-gonic/gin"

	"blog-backend/internal/domains/post"
	"blog-backend/internal/shared/apperror"
	"blog-backend/internal/shared/middleware"
	"blog-backend/internal/shared/response"
)

type PostHandler struct {
	repo post.Repository
}

func NewPostHandler(repo post.Repository) *PostHandler {
	return &PostHandler{repo: repo}
}

// RegisterRoutes mounts the post endpoints on r.
func (h *PostHandler) RegisterRoutes(r gin.IRouter) {
	posts := r.Group("/posts")
	{
		posts.GET("", h.List)
		posts.GET("/:id", middleware.BindURI[post.PostIDParam](), h.GetByID)
		posts.POST("", middleware.BindBody[post.PostCreateDTO](), h.Create)
		posts.PATCH("/:id",
			middleware.BindURI[post.PostIDParam](),
			middleware.BindBody[post.PostUpdateDTO](),
			h.Update,
		)
		posts.DELETE("/:id", middleware.BindURI[post.PostIDParam](), h.Delete)
	}
}

// GET /posts
func (h *PostHandler) List(c *gin.Context) {
	list, err := h.repo.FindAll(c.Request.Context())
	if err != nil {
		_ = c.Error(apperror.WithMessage(err, post.ListErrorMessage))
		return
	}

	response.OK(c, list)
}

// GET /posts/:id
func (h *PostHandler) GetByID(c *gin.Context) {
	id := middleware.Params[post.PostIDParam](c).ID

	dto, err := h.repo.FindByID(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(apperror.WithMessage(err, post.GetErrorMessage(id)))
		return
	}

	response.OK(c, dto)
}

// POST /posts
func (h *PostHandler) Create(c *gin.Context) {
	dto, err := h.repo.Create(c.Request.Context(), middleware.Body[post.PostCreateDTO](c))
	if err != nil {
		_ = c.Error(apperror.WithMessage(err, post.CreateErrorMessage))
		return
	}

	response.Created(c, dto)
}

// PATCH /posts/:id
func (h *PostHandler) Update(c *gin.Context) {
	id := middleware.Params[post.PostIDParam](c).ID

	dto, err := h.repo.Update(c.Request.Context(), id, middleware.Body[post.PostUpdateDTO](c))
	if err != nil {
		_ = c.Error(apperror.WithMessage(err, post.UpdateErrorMessage(id)))
		return
	}

	response.OK(c, dto)
}

// DELETE /posts/:id
func (h *PostHandler) Delete(c *gin.Context) {
	id := middleware.Params[post.PostIDParam](c).ID

	if err := h.repo.Delete(c.Request.Context(), id); err != nil {
		_ = c.Error(apperror.WithMessage(err, post.DeleteErrorMessage(id)))
		return
	}

	response.NoContent(c)
}
