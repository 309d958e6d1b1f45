package router

import (
	"arunika/internal/adapter/api/handler"
	"arunika/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupProjectRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	projectHandler := handler.GetProjectHandler()

	admin := e.Group("/v1/admin/projects")
	admin.Use(authMiddleware.Authenticate)
	admin.Use(adminMiddleware.AdminOnly)

	admin.POST("", projectHandler.CreateProject)
	admin.GET("", projectHandler.ListProjects)
	admin.GET("/:id", projectHandler.GetProject)
	admin.PUT("/:id", projectHandler.UpdateProject)
	admin.DELETE("/:id", projectHandler.DeleteProject)
}
