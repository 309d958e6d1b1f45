package handler

import (
	"github.com/labstack/echo/v4"

	"arunika/internal/usecase"
	"arunika/pkg/response"
	"arunika/pkg/utils"
)

type MilestoneHandler struct {
	milestoneUseCase *usecase.MilestoneUseCase
}

func NewMilestoneHandler(milestoneUseCase *usecase.MilestoneUseCase) *MilestoneHandler {
	return &MilestoneHandler{
		milestoneUseCase: milestoneUseCase,
	}
}

type milestoneRequest struct {
	Title        string `json:"title" validate:"required"`
	Description  string `json:"description"`
	Year         int    `json:"year" validate:"required,min=1990,max=2100"`
	DisplayOrder int    `json:"display_order"`
}

func (h *MilestoneHandler) CreateMilestone(c echo.Context) error {
	var req milestoneRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	milestone, err := h.milestoneUseCase.CreateMilestone(c.Request().Context(), usecase.MilestoneInput{
		Title:        req.Title,
		Description:  req.Description,
		Year:         req.Year,
		DisplayOrder: req.DisplayOrder,
	})

	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, "Milestone created successfully", milestone)
}

func (h *MilestoneHandler) GetMilestone(c echo.Context) error {
	milestone, err := h.milestoneUseCase.GetMilestoneByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, "Milestone retrieved successfully", milestone)
}

func (h *MilestoneHandler) ListMilestones(c echo.Context) error {
	pagination := utils.GetPaginationParams(c)

	milestones, total, err := h.milestoneUseCase.ListMilestones(c.Request().Context(), pagination.Page, pagination.PageSize)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, "Milestones retrieved successfully", milestones, total, pagination.Page, pagination.PageSize)
}

func (h *MilestoneHandler) UpdateMilestone(c echo.Context) error {
	var req milestoneRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	milestone, err := h.milestoneUseCase.UpdateMilestone(c.Request().Context(), c.Param("id"), usecase.MilestoneInput{
		Title:        req.Title,
		Description:  req.Description,
		Year:         req.Year,
		DisplayOrder: req.DisplayOrder,
	})

	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, "Milestone updated successfully", milestone)
}

func (h *MilestoneHandler) DeleteMilestone(c echo.Context) error {
	if err := h.milestoneUseCase.DeleteMilestone(c.Request().Context(), c.Param("id")); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, "Milestone deleted successfully", nil)
}
