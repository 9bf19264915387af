package http

import (
	"bytes"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/perfectpolymers-api/internal/application/dto"
	"github.com/jhoicas/perfectpolymers-api/internal/application/usecase"
)

const (
	backToProducts      = "/products"
	msgProductNotFound  = "Product not found"
	msgCategoryNotFound = "Category not found"
)

// CatalogHandler maneja el catálogo de productos y categorías (público).
type CatalogHandler struct {
	uc *usecase.CatalogUseCase
}

// NewCatalogHandler construye el handler.
func NewCatalogHandler(uc *usecase.CatalogUseCase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

// ListProducts godoc
// @Summary      Listar productos
// @Description  Búsqueda por código, nombre o familia; filtros por grado y familia (repetibles o separados por comas).
// @Tags         products
// @Produce      json
// @Param        q       query  string  false  "Texto de búsqueda"
// @Param        grade   query  []string  false  "Prime, Off Spec, Off Grade, Recycled"  collectionFormat(multi)
// @Param        family  query  []string  false  "Familia (PP, HDPE, ...)"  collectionFormat(multi)
// @Param        sort    query  string  false  "name | family | grade | newest"
// @Success      200  {object}  dto.ProductListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/products [get]
func (h *CatalogHandler) ListProducts(c *fiber.Ctx) error {
	out, err := h.uc.ListProducts(dto.ProductQuery{
		Search:   c.Query("q"),
		Grades:   multiQuery(c, "grade"),
		Families: multiQuery(c, "family"),
		Sort:     c.Query("sort"),
	})
	if err != nil {
		return respondError(c, err, msgProductNotFound, backToProducts)
	}
	return c.JSON(out)
}

// Facets godoc
// @Summary      Valores disponibles para los filtros del catálogo
// @Tags         products
// @Produce      json
// @Success      200  {object}  dto.FacetsResponse
// @Router       /api/catalog/filters [get]
func (h *CatalogHandler) Facets(c *fiber.Ctx) error {
	out, err := h.uc.Facets()
	if err != nil {
		return respondError(c, err, "", "")
	}
	return c.JSON(out)
}

// Category godoc
// @Summary      Productos de una categoría o subcategoría
// @Tags         categories
// @Produce      json
// @Param        category     path  string  true   "Slug de la categoría raíz"
// @Param        subcategory  path  string  false  "Slug de la subcategoría"
// @Success      200  {object}  dto.CategoryPageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{category} [get]
// @Router       /api/products/{category}/{subcategory} [get]
func (h *CatalogHandler) Category(c *fiber.Ctx) error {
	out, err := h.uc.ResolveCategory(c.Params("category"), c.Params("subcategory"))
	if err != nil {
		return respondError(c, err, msgCategoryNotFound, backToProducts)
	}
	return c.JSON(out)
}

// CategoryTree godoc
// @Summary      Árbol de categorías activas
// @Tags         categories
// @Produce      json
// @Success      200  {object}  dto.CategoryTreeResponse
// @Router       /api/categories [get]
func (h *CatalogHandler) CategoryTree(c *fiber.Ctx) error {
	out, err := h.uc.CategoryTree()
	if err != nil {
		return respondError(c, err, "", "")
	}
	return c.JSON(out)
}

// GetProduct godoc
// @Summary      Detalle de producto con relacionados
// @Tags         products
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  dto.ProductDetailResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/product/{id} [get]
func (h *CatalogHandler) GetProduct(c *fiber.Ctx) error {
	out, err := h.uc.GetProduct(c.Params("id"))
	if err != nil {
		return respondError(c, err, msgProductNotFound, backToProducts)
	}
	return c.JSON(out)
}

// Datasheet godoc
// @Summary      Ficha técnica en PDF
// @Tags         products
// @Produce      application/pdf
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/product/{id}/datasheet [get]
func (h *CatalogHandler) Datasheet(c *fiber.Ctx) error {
	pdf, filename, err := h.uc.Datasheet(c.Params("id"))
	if err != nil {
		return respondError(c, err, msgProductNotFound, backToProducts)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`inline; filename="%s"`, filename))
	return c.Send(pdf)
}

// ExportCSV godoc
// @Summary      Catálogo activo en CSV
// @Tags         products
// @Produce      text/csv
// @Success      200  {file}  binary
// @Router       /api/catalog/export.csv [get]
func (h *CatalogHandler) ExportCSV(c *fiber.Ctx) error {
	var buf bytes.Buffer
	if err := h.uc.ExportCSV(&buf); err != nil {
		return respondError(c, err, "", "")
	}
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="perfect-polymers-catalog.csv"`)
	return c.Send(buf.Bytes())
}
