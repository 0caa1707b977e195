package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/misikss/nova-salud-api/internal/application/analytics"
)

// DashboardHandler maneja las consultas agregadas del dashboard.
type DashboardHandler struct {
	uc *analytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *analytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Summary godoc
// @Summary      Contadores principales del dashboard
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardSummaryDTO
// @Router       /api/dashboard [get]
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	out, err := h.uc.Summary(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Total godoc
// @Summary      Total histórico de ventas completadas
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.SalesTotalsDTO
// @Router       /api/dashboard/total [get]
func (h *DashboardHandler) Total(c *fiber.Ctx) error {
	out, err := h.uc.Total(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Customers godoc
// @Summary      Cantidad de clientes registrados
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.CountDTO
// @Router       /api/dashboard/clientes [get]
func (h *DashboardHandler) Customers(c *fiber.Ctx) error {
	out, err := h.uc.Customers(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Products godoc
// @Summary      Cantidad de productos activos
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.CountDTO
// @Router       /api/dashboard/productos [get]
func (h *DashboardHandler) Products(c *fiber.Ctx) error {
	out, err := h.uc.Products(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Monthly godoc
// @Summary      Ventas de los últimos seis meses
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.MonthlySalesDTO
// @Router       /api/dashboard/mensuales [get]
func (h *DashboardHandler) Monthly(c *fiber.Ctx) error {
	out, err := h.uc.Monthly(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// LowStock godoc
// @Summary      Productos con stock bajo
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.ProductResponse
// @Router       /api/dashboard/productos/stock-bajo [get]
func (h *DashboardHandler) LowStock(c *fiber.Ctx) error {
	out, err := h.uc.LowStock()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// TopProducts godoc
// @Summary      Productos más vendidos (widget)
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.TopProductDTO
// @Router       /api/dashboard/productos-mas-vendidos [get]
func (h *DashboardHandler) TopProducts(c *fiber.Ctx) error {
	return c.JSON(h.uc.TopProducts(c.UserContext()))
}
