package http

import (
	"context"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/misikss/nova-salud-api/internal/application/dto"
	"github.com/misikss/nova-salud-api/internal/application/sales"
	"github.com/misikss/nova-salud-api/internal/domain/entity"
	"github.com/misikss/nova-salud-api/pkg/validate"
)

// ReceiptRenderer genera el comprobante PDF de una venta.
type ReceiptRenderer interface {
	Generate(ctx context.Context, sale *entity.Sale, details []*entity.SaleDetail) ([]byte, error)
}

// SaleHandler maneja las peticiones HTTP para ventas y sus reportes.
type SaleHandler struct {
	createUC *sales.CreateSaleUseCase
	voidUC   *sales.VoidSaleUseCase
	queryUC  *sales.SaleQueryUseCase
	reportUC *sales.ReportUseCase
	receipts ReceiptRenderer
}

// NewSaleHandler construye el handler.
func NewSaleHandler(
	createUC *sales.CreateSaleUseCase,
	voidUC *sales.VoidSaleUseCase,
	queryUC *sales.SaleQueryUseCase,
	reportUC *sales.ReportUseCase,
	receipts ReceiptRenderer,
) *SaleHandler {
	return &SaleHandler{
		createUC: createUC,
		voidUC:   voidUC,
		queryUC:  queryUC,
		reportUC: reportUC,
		receipts: receipts,
	}
}

// Create godoc
// @Summary      Registrar venta
// @Tags         ventas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSaleRequest  true  "Detalles de la venta"
// @Success      201   {object}  dto.SaleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/ventas [post]
func (h *SaleHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSaleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Error("cuerpo inválido"))
	}
	if err := validate.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ValidationError("datos inválidos", validate.Errors(err)))
	}
	out, err := h.createUC.Execute(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar ventas
// @Tags         ventas
// @Security     Bearer
// @Produce      json
// @Param        desde   query  string  false  "Fecha inicial YYYY-MM-DD"
// @Param        hasta   query  string  false  "Fecha final YYYY-MM-DD"
// @Param        estado  query  string  false  "Completada, Anulada o Pendiente"
// @Success      200  {array}  dto.SaleResponse
// @Router       /api/ventas [get]
func (h *SaleHandler) List(c *fiber.Ctx) error {
	var in dto.SaleListFilter
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Error("filtros inválidos"))
	}
	out, err := h.queryUC.List(GetUserID(c), GetUserRole(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener venta con sus detalles
// @Tags         ventas
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la venta"
// @Success      200  {object}  dto.SaleResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/ventas/{id} [get]
func (h *SaleHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.queryUC.GetByID(GetUserID(c), GetUserRole(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Void godoc
// @Summary      Anular venta y reponer stock
// @Tags         ventas
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la venta"
// @Success      200  {object}  dto.SaleResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/ventas/{id}/anular [put]
func (h *SaleHandler) Void(c *fiber.Ctx) error {
	out, err := h.voidUC.Execute(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Receipt godoc
// @Summary      Comprobante de venta en PDF
// @Tags         ventas
// @Security     Bearer
// @Produce      application/pdf
// @Param        id  path  string  true  "ID de la venta"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/ventas/{id}/pdf [get]
func (h *SaleHandler) Receipt(c *fiber.Ctx) error {
	sale, details, err := h.queryUC.GetForReceipt(GetUserID(c), GetUserRole(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	pdfBytes, err := h.receipts.Generate(c.UserContext(), sale, details)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`inline; filename="venta-%s.pdf"`, sale.ID))
	return c.Send(pdfBytes)
}

// DailyReport godoc
// @Summary      Reporte diario de ventas
// @Tags         ventas
// @Security     Bearer
// @Produce      json
// @Param        fecha  query  string  false  "YYYY-MM-DD, por defecto hoy"
// @Success      200  {object}  dto.DailyReportDTO
// @Router       /api/ventas/reportes/diario [get]
func (h *SaleHandler) DailyReport(c *fiber.Ctx) error {
	out, err := h.reportUC.Daily(c.UserContext(), c.Query("fecha"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// MonthlyReport godoc
// @Summary      Reporte mensual de ventas
// @Tags         ventas
// @Security     Bearer
// @Produce      json
// @Param        mes   query  int  false  "1..12, por defecto el mes actual"
// @Param        anio  query  int  false  "Año, por defecto el actual"
// @Success      200  {object}  dto.MonthlyReportDTO
// @Router       /api/ventas/reportes/mensual [get]
func (h *SaleHandler) MonthlyReport(c *fiber.Ctx) error {
	out, err := h.reportUC.Monthly(c.UserContext(), c.QueryInt("mes", 0), c.QueryInt("anio", 0))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// TopProductsReport godoc
// @Summary      Productos más vendidos
// @Tags         ventas
// @Security     Bearer
// @Produce      json
// @Param        limite  query  int     false  "Cantidad de productos"  default(10)
// @Param        desde   query  string  false  "Fecha inicial YYYY-MM-DD"
// @Param        hasta   query  string  false  "Fecha final YYYY-MM-DD"
// @Success      200  {array}  dto.TopProductDTO
// @Router       /api/ventas/reportes/productos-mas-vendidos [get]
func (h *SaleHandler) TopProductsReport(c *fiber.Ctx) error {
	out, err := h.reportUC.TopProducts(c.UserContext(), c.Query("desde"), c.Query("hasta"), c.QueryInt("limite", 0))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
