package router

import (
	"arunika/internal/adapter/api/handler"
	"arunika/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupTeamMemberRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	teamMemberHandler := handler.GetTeamMemberHandler()

	admin := e.Group("/v1/admin/team-members")
	admin.Use(authMiddleware.Authenticate)
	admin.Use(adminMiddleware.AdminOnly)

	admin.POST("", teamMemberHandler.CreateTeamMember)
	admin.GET("", teamMemberHandler.ListTeamMembers)
	admin.GET("/:id", teamMemberHandler.GetTeamMember)
	admin.PUT("/:id", teamMemberHandler.UpdateTeamMember)
	admin.DELETE("/:id", teamMemberHandler.DeleteTeamMember)
}
