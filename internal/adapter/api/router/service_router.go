package router

import (
	"arunika/internal/adapter/api/handler"
	"arunika/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupServiceRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	serviceHandler := handler.GetServiceHandler()

	admin := e.Group("/v1/admin/services")
	admin.Use(authMiddleware.Authenticate)
	admin.Use(adminMiddleware.AdminOnly)

	admin.POST("", serviceHandler.CreateService)
	admin.GET("", serviceHandler.ListServices)
	admin.GET("/:id", serviceHandler.GetService)
	admin.PUT("/:id", serviceHandler.UpdateService)
	admin.DELETE("/:id", serviceHandler.DeleteService)
}
