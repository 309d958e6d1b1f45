package router

import (
	"arunika/internal/adapter/api/handler"
	"arunika/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupConsultationRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	consultationHandler := handler.GetConsultationHandler()

	// Public contact form submission
	e.POST("/v1/consultations", consultationHandler.SubmitConsultation)

	admin := e.Group("/v1/admin/consultations")
	admin.Use(authMiddleware.Authenticate)
	admin.Use(adminMiddleware.AdminOnly)

	admin.GET("", consultationHandler.ListConsultations)
	admin.GET("/:id", consultationHandler.GetConsultation)
	admin.PATCH("/:id/status", consultationHandler.UpdateConsultationStatus)
	admin.DELETE("/:id", consultationHandler.DeleteConsultation)
}
