package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/misikss/nova-salud-api/internal/application/dto"
	"github.com/misikss/nova-salud-api/internal/domain/entity"
)

// Acciones sobre un recurso.
const (
	ActionRead   = "read"
	ActionWrite  = "write"
	ActionDelete = "delete"
	ActionVoid   = "anular"
	ActionReport = "reportes"
)

type policyKey struct {
	Resource string
	Action   string
}

// policy tabla declarativa (recurso, acción) → roles permitidos.
// Un recurso/acción ausente de la tabla queda denegado para todos;
// añadir una entrada aquí es la única forma de abrir una ruta.
var policy = map[policyKey][]string{
	{"usuarios", ActionRead}:      {entity.RoleAdmin},
	{"usuarios", ActionWrite}:     {entity.RoleAdmin},
	{"usuarios", ActionDelete}:    {entity.RoleAdmin},
	{"categorias", ActionRead}:    {entity.RoleAdmin, entity.RoleVendedor},
	{"categorias", ActionWrite}:   {entity.RoleAdmin},
	{"categorias", ActionDelete}:  {entity.RoleAdmin},
	{"proveedores", ActionRead}:   {entity.RoleAdmin, entity.RoleVendedor},
	{"proveedores", ActionWrite}:  {entity.RoleAdmin},
	{"proveedores", ActionDelete}: {entity.RoleAdmin},
	{"productos", ActionRead}:     {entity.RoleAdmin, entity.RoleVendedor},
	{"productos", ActionWrite}:    {entity.RoleAdmin},
	{"productos", ActionDelete}:   {entity.RoleAdmin},
	{"clientes", ActionRead}:      {entity.RoleAdmin, entity.RoleVendedor},
	{"clientes", ActionWrite}:     {entity.RoleAdmin, entity.RoleVendedor},
	{"clientes", ActionDelete}:    {entity.RoleAdmin},
	{"ventas", ActionRead}:        {entity.RoleAdmin, entity.RoleVendedor},
	{"ventas", ActionWrite}:       {entity.RoleAdmin, entity.RoleVendedor},
	{"ventas", ActionVoid}:        {entity.RoleAdmin},
	{"ventas", ActionReport}:      {entity.RoleAdmin},
	{"dashboard", ActionRead}:     {entity.RoleAdmin, entity.RoleVendedor},
}

// Allowed indica si el rol puede ejecutar la acción sobre el recurso.
func Allowed(rol, resource, action string) bool {
	for _, r := range policy[policyKey{resource, action}] {
		if r == rol {
			return true
		}
	}
	return false
}

// Authorize middleware que aplica la tabla de políticas sobre el rol extraído
// por AuthMiddleware. Va siempre después de él en la cadena.
func Authorize(resource, action string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !Allowed(GetUserRole(c), resource, action) {
			return c.Status(fiber.StatusForbidden).JSON(dto.Error("no tiene permisos para esta operación"))
		}
		return c.Next()
	}
}
