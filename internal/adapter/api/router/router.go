package router

import (
	"arunika/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func Setup(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	SetupHealthRouter(e)
	SetupProjectRouter(e, authMiddleware, adminMiddleware)
	SetupServiceRouter(e, authMiddleware, adminMiddleware)
	SetupTeamMemberRouter(e, authMiddleware, adminMiddleware)
	SetupMilestoneRouter(e, authMiddleware, adminMiddleware)
	SetupConsultationRouter(e, authMiddleware, adminMiddleware)
}
