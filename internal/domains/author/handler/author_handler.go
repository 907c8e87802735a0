package handler

import (
	"github.com/gin-gonic/gin"

	"blog-backend/internal/domains/author"
	"blog-backend/internal/shared/apperror"
	"blog-backend/internal/shared/middleware"
	"blog-backend/internal/shared/response"
)

type AuthorHandler struct {
	repo author.Repository
}

func NewAuthorHandler(repo author.Repository) *AuthorHandler {
	return &AuthorHandler{
		repo: repo,
	}
}

// RegisterRoutes mounts the author endpoints on r.
func (h *AuthorHandler) RegisterRoutes(r gin.IRouter) {
	authors := r.Group("/authors")
	{
		authors.GET("", h.List)
		authors.GET("/:id", middleware.BindURI[author.AuthorIDParam](), h.GetByID)
		authors.POST("", middleware.BindBody[author.AuthorCreateDTO](), h.Create)
		authors.PATCH("/:id",
			middleware.BindURI[author.AuthorIDParam](),
			middleware.BindBody[author.AuthorUpdateDTO](),
			h.Update,
		)
		authors.DELETE("/:id", middleware.BindURI[author.AuthorIDParam](), h.Delete)
	}
}

// ════════════════════════════════════════════════════════════════
// LIST: GET /authors
// ════════════════════════════════════════════════════════════════

func (h *AuthorHandler) List(c *gin.Context) {
	list, err := h.repo.FindAll(c.Request.Context())
	if err != nil {
		_ = c.Error(apperror.WithMessage(err, author.ListErrorMessage))
		return
	}

	response.OK(c, list)
}

// ════════════════════════════════════════════════════════════════
// READ: GET /authors/:id
// ════════════════════════════════════════════════════════════════

func (h *AuthorHandler) GetByID(c *gin.Context) {
	id := middleware.Params[author.AuthorIDParam](c).ID

	dto, err := h.repo.FindByID(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(apperror.WithMessage(err, author.GetErrorMessage(id)))
		return
	}

	response.OK(c, dto)
}

// ════════════════════════════════════════════════════════════════
// CREATE: POST /authors
// ════════════════════════════════════════════════════════════════

func (h *AuthorHandler) Create(c *gin.Context) {
	body := middleware.Body[author.AuthorCreateDTO](c)

	dto, err := h.repo.Create(c.Request.Context(), body)
	if err != nil {
		_ = c.Error(apperror.WithMessage(err, author.CreateErrorMessage))
		return
	}

	response.Created(c, dto)
}

// ════════════════════════════════════════════════════════════════
// UPDATE: PATCH /authors/:id
// ════════════════════════════════════════════════════════════════

func (h *AuthorHandler) Update(c *gin.Context) {
	id := middleware.Params[author.AuthorIDParam](c).ID
	body := middleware.Body[author.AuthorUpdateDTO](c)

	dto, err := h.repo.Update(c.Request.Context(), id, body)
	if err != nil {
		_ = c.Error(apperror.WithMessage(err, author.UpdateErrorMessage(id)))
		return
	}

	response.OK(c, dto)
}

// ════════════════════════════════════════════════════════════════
// DELETE: DELETE /authors/:id
// ════════════════════════════════════════════════════════════════

func (h *AuthorHandler) Delete(c *gin.Context) {
	id := middleware.Params[author.AuthorIDParam](c).ID

	if err := h.repo.Delete(c.Request.Context(), id); err != nil {
		_ = c.Error(apperror.WithMessage(err, author.DeleteErrorMessage(id)))
		return
	}

	response.NoContent(c)
}
