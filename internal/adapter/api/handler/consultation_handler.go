package handler

import (
	"github.com/labstack/echo/v4"

	"arunika/internal/usecase"
	"arunika/pkg/response"
	"arunika/pkg/utils"
)

type ConsultationHandler struct {
	consultationUseCase *usecase.ConsultationUseCase
}

func NewConsultationHandler(consultationUseCase *usecase.ConsultationUseCase) *ConsultationHandler {
	return &ConsultationHandler{
		consultationUseCase: consultationUseCase,
	}
}

type submitConsultationRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone"`
	Company string `json:"company"`
	Message string `json:"message" validate:"required"`
}

// SubmitConsultation is the only unauthenticated mutation: the public site
// contact form posts here.
func (h *ConsultationHandler) SubmitConsultation(c echo.Context) error {
	var req submitConsultationRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	consultation, err := h.consultationUseCase.SubmitConsultation(c.Request().Context(), usecase.SubmitConsultationInput{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Company: req.Company,
		Message: req.Message,
	})

	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, "Consultation request submitted successfully", consultation)
}

func (h *ConsultationHandler) GetConsultation(c echo.Context) error {
	consultation, err := h.consultationUseCase.GetConsultationByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, "Consultation retrieved successfully", consultation)
}

func (h *ConsultationHandler) ListConsultations(c echo.Context) error {
	pagination := utils.GetPaginationParams(c)

	consultations, total, err := h.consultationUseCase.ListConsultations(
		c.Request().Context(),
		c.QueryParam("status"),
		pagination.Page,
		pagination.PageSize,
	)

	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, "Consultations retrieved successfully", consultations, total, pagination.Page, pagination.PageSize)
}

type updateConsultationStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=new reviewed archived"`
}

func (h *ConsultationHandler) UpdateConsultationStatus(c echo.Context) error {
	var req updateConsultationStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	consultation, err := h.consultationUseCase.UpdateConsultationStatus(c.Request().Context(), c.Param("id"), req.Status)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, "Consultation status updated successfully", consultation)
}

func (h *ConsultationHandler) DeleteConsultation(c echo.Context) error {
	if err := h.consultationUseCase.DeleteConsultation(c.Request().Context(), c.Param("id")); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, "Consultation deleted successfully", nil)
}
