package router

import (
	"arunika/internal/adapter/api/handler"
	"arunika/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupMilestoneRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	milestoneHandler := handler.GetMilestoneHandler()

	admin := e.Group("/v1/admin/milestones")
	admin.Use(authMiddleware.Authenticate)
	admin.Use(adminMiddleware.AdminOnly)

	admin.POST("", milestoneHandler.CreateMilestone)
	admin.GET("", milestoneHandler.ListMilestones)
	admin.GET("/:id", milestoneHandler.GetMilestone)
	admin.PUT("/:id", milestoneHandler.UpdateMilestone)
	admin.DELETE("/:id", milestoneHandler.DeleteMilestone)
}
