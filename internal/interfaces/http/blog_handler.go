package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/perfectpolymers-api/internal/application/dto"
	"github.com/jhoicas/perfectpolymers-api/internal/application/usecase"
)

// BlogHandler artículos publicados.
type BlogHandler struct {
	uc *usecase.BlogUseCase
}

func NewBlogHandler(uc *usecase.BlogUseCase) *BlogHandler {
	return &BlogHandler{uc: uc}
}

// List godoc
// @Summary      Listar artículos publicados (más recientes primero)
// @Tags         blog
// @Produce      json
// @Param        q    query  string  false  "Búsqueda en título, resumen y autor"
// @Param        tag  query  string  false  "Etiqueta exacta"
// @Success      200  {object}  dto.BlogListResponse
// @Router       /api/blog [get]
func (h *BlogHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(dto.BlogQuery{Search: c.Query("q"), Tag: c.Query("tag")})
	if err != nil {
		return respondError(c, err, "", "")
	}
	return c.JSON(out)
}

// Tags godoc
// @Summary      Etiquetas del blog con número de artículos
// @Tags         blog
// @Produce      json
// @Success      200  {object}  dto.BlogTagsResponse
// @Router       /api/blog/tags [get]
func (h *BlogHandler) Tags(c *fiber.Ctx) error {
	out, err := h.uc.Tags()
	if err != nil {
		return respondError(c, err, "", "")
	}
	return c.JSON(out)
}

// GetBySlug godoc
// @Summary      Artículo por slug
// @Tags         blog
// @Produce      json
// @Param        slug  path  string  true  "Slug del artículo"
// @Success      200  {object}  dto.BlogPostResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/blog/{slug} [get]
func (h *BlogHandler) GetBySlug(c *fiber.Ctx) error {
	out, err := h.uc.GetBySlug(c.Params("slug"))
	if err != nil {
		return respondError(c, err, "Article not found", "/blog")
	}
	return c.JSON(out)
}
