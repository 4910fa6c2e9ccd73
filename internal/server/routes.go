package server

import (
	"github.com/Karthik-Kakumanu/BrahminFoods-Website/internal/handler"

	"github.com/labstack/echo/v4"
)

func RegisterRoutes(
	e *echo.Echo,
	guard echo.MiddlewareFunc,
	orderH *handler.OrderHandler,
	adminOrderH *handler.AdminOrderHandler,
	adminH *handler.AdminHandler,
	healthH *handler.HealthHandler,
) {
	orderH.RegisterRoutes(e)
	adminOrderH.RegisterRoutes(e, guard)
	adminH.RegisterRoutes(e, guard)
	healthH.RegisterRoutes(e)
}
