package handler

import (
	"github.com/labstack/echo/v4"

	"arunika/internal/upload"
	"arunika/internal/usecase"
	"arunika/pkg/response"
	"arunika/pkg/utils"
)

type ServiceHandler struct {
	serviceUseCase *usecase.ServiceUseCase
	gate           *upload.Gate
}

func NewServiceHandler(serviceUseCase *usecase.ServiceUseCase, gate *upload.Gate) *ServiceHandler {
	return &ServiceHandler{
		serviceUseCase: serviceUseCase,
		gate:           gate,
	}
}

type serviceRequest struct {
	Title        string `form:"title" validate:"required"`
	Summary      string `form:"summary"`
	Description  string `form:"description"`
	DisplayOrder int    `form:"display_order"`
	Status       string `form:"status" validate:"omitempty,oneof=active inactive"`
	RemoveIcon   bool   `form:"remove_icon"`
	RemoveImage  bool   `form:"remove_image"`
}

func (h *ServiceHandler) CreateService(c echo.Context) error {
	var req serviceRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	form, _ := c.MultipartForm()
	files, err := h.gate.Parse(c.Request().Context(), form, upload.ServiceForm)
	if err != nil {
		return response.Error(c, err)
	}

	service, err := h.serviceUseCase.CreateService(c.Request().Context(), usecase.CreateServiceInput{
		Title:        req.Title,
		Summary:      req.Summary,
		Description:  req.Description,
		DisplayOrder: req.DisplayOrder,
		Status:       req.Status,
	}, files)

	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, "Service created successfully", service)
}

func (h *ServiceHandler) GetService(c echo.Context) error {
	service, err := h.serviceUseCase.GetServiceByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, "Service retrieved successfully", service)
}

func (h *ServiceHandler) ListServices(c echo.Context) error {
	pagination := utils.GetPaginationParams(c)

	services, total, err := h.serviceUseCase.ListServices(
		c.Request().Context(),
		c.QueryParam("status"),
		pagination.Page,
		pagination.PageSize,
	)

	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, "Services retrieved successfully", services, total, pagination.Page, pagination.PageSize)
}

func (h *ServiceHandler) UpdateService(c echo.Context) error {
	var req serviceRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	form, _ := c.MultipartForm()
	files, err := h.gate.Parse(c.Request().Context(), form, upload.ServiceForm)
	if err != nil {
		return response.Error(c, err)
	}

	service, err := h.serviceUseCase.UpdateService(c.Request().Context(), c.Param("id"), usecase.UpdateServiceInput{
		Title:        req.Title,
		Summary:      req.Summary,
		Description:  req.Description,
		DisplayOrder: req.DisplayOrder,
		Status:       req.Status,
		RemoveIcon:   req.RemoveIcon,
		RemoveImage:  req.RemoveImage,
	}, files)

	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, "Service updated successfully", service)
}

func (h *ServiceHandler) DeleteService(c echo.Context) error {
	if err := h.serviceUseCase.DeleteService(c.Request().Context(), c.Param("id")); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, "Service deleted successfully", nil)
}
