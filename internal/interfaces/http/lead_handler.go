package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/perfectpolymers-api/internal/application/dto"
	"github.com/jhoicas/perfectpolymers-api/internal/application/lead"
)

// LeadHandler recibe los formularios de contacto y de cotización.
type LeadHandler struct {
	contact *lead.ContactUseCase
	rfq     *lead.RFQUseCase
}

func NewLeadHandler(contact *lead.ContactUseCase, rfq *lead.RFQUseCase) *LeadHandler {
	return &LeadHandler{contact: contact, rfq: rfq}
}

// Contact godoc
// @Summary      Enviar formulario de contacto
// @Tags         forms
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ContactRequest  true  "Formulario"
// @Success      201  {object}  dto.LeadResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.ValidationErrorResponse
// @Failure      429  {object}  dto.ErrorResponse
// @Failure      502  {object}  dto.SubmissionErrorResponse
// @Failure      504  {object}  dto.SubmissionErrorResponse
// @Router       /api/contact [post]
func (h *LeadHandler) Contact(c *fiber.Ctx) error {
	var in dto.ContactRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.contact.Submit(c.UserContext(), in)
	if err != nil {
		return respondError(c, err, "", "")
	}
	logFrom(c).Info().Str("lead_id", out.ID).Str("topic", in.Topic).Msg("contacto enviado")
	return c.Status(fiber.StatusCreated).JSON(out)
}

// RFQ godoc
// @Summary      Enviar solicitud de cotización (RFQ)
// @Description  Solo se envían las líneas con código y cantidad; la unidad por defecto es MT.
// @Tags         forms
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RFQRequest  true  "Solicitud"
// @Success      201  {object}  dto.LeadResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.ValidationErrorResponse
// @Failure      429  {object}  dto.ErrorResponse
// @Failure      502  {object}  dto.SubmissionErrorResponse
// @Failure      504  {object}  dto.SubmissionErrorResponse
// @Router       /api/rfq [post]
func (h *LeadHandler) RFQ(c *fiber.Ctx) error {
	var in dto.RFQRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.rfq.Submit(c.UserContext(), in)
	if err != nil {
		return respondError(c, err, "", "")
	}
	logFrom(c).Info().Str("lead_id", out.ID).Int("items", out.Items).Msg("rfq enviada")
	return c.Status(fiber.StatusCreated).JSON(out)
}
