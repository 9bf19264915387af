package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/perfectpolymers-api/internal/application/usecase"
)

// SiteHandler portada, datos de contacto, opciones de formularios y sitemap.
type SiteHandler struct {
	uc *usecase.SiteUseCase
}

func NewSiteHandler(uc *usecase.SiteUseCase) *SiteHandler {
	return &SiteHandler{uc: uc}
}

// Home godoc
// @Summary      Contenido de la portada
// @Tags         site
// @Produce      json
// @Success      200  {object}  dto.HomeResponse
// @Router       /api/home [get]
func (h *SiteHandler) Home(c *fiber.Ctx) error {
	out, err := h.uc.Home()
	if err != nil {
		return respondError(c, err, "", "")
	}
	return c.JSON(out)
}

// Info godoc
// @Summary      Datos de contacto de la empresa
// @Tags         site
// @Produce      json
// @Success      200  {object}  dto.SiteResponse
// @Router       /api/site [get]
func (h *SiteHandler) Info(c *fiber.Ctx) error {
	out, err := h.uc.Info()
	if err != nil {
		return respondError(c, err, "", "")
	}
	return c.JSON(out)
}

// ContactTopics godoc
// @Summary      Temas del formulario de contacto
// @Tags         forms
// @Produce      json
// @Success      200  {object}  dto.ContactTopicsResponse
// @Router       /api/contact/topics [get]
func (h *SiteHandler) ContactTopics(c *fiber.Ctx) error {
	return c.JSON(h.uc.ContactTopics())
}

// RFQOptions godoc
// @Summary      Grados y unidades admitidos en una RFQ
// @Tags         forms
// @Produce      json
// @Success      200  {object}  dto.RFQOptionsResponse
// @Router       /api/rfq/options [get]
func (h *SiteHandler) RFQOptions(c *fiber.Ctx) error {
	return c.JSON(h.uc.RFQOptions())
}

// Sitemap godoc
// @Summary      sitemap.xml del sitio público
// @Tags         site
// @Produce      xml
// @Success      200  {string}  string
// @Router       /sitemap.xml [get]
func (h *SiteHandler) Sitemap(c *fiber.Ctx) error {
	out, err := h.uc.Sitemap()
	if err != nil {
		return respondError(c, err, "", "")
	}
	c.Set(fiber.HeaderContentType, "application/xml; charset=utf-8")
	return c.Send(out)
}
