package handler

import (
	"github.com/labstack/echo/v4"

	"arunika/internal/upload"
	"arunika/internal/usecase"
	"arunika/pkg/response"
	"arunika/pkg/utils"
)

type TeamMemberHandler struct {
	memberUseCase *usecase.TeamMemberUseCase
	gate          *upload.Gate
}

func NewTeamMemberHandler(memberUseCase *usecase.TeamMemberUseCase, gate *upload.Gate) *TeamMemberHandler {
	return &TeamMemberHandler{
		memberUseCase: memberUseCase,
		gate:          gate,
	}
}

type teamMemberRequest struct {
	Name         string `form:"name" validate:"required"`
	Position     string `form:"position" validate:"required"`
	Bio          string `form:"bio"`
	LinkedinURL  string `form:"linkedin_url" validate:"omitempty,url"`
	DisplayOrder int    `form:"display_order"`
}

func (h *TeamMemberHandler) CreateTeamMember(c echo.Context) error {
	var req teamMemberRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	form, _ := c.MultipartForm()
	files, err := h.gate.Parse(c.Request().Context(), form, upload.TeamMemberForm)
	if err != nil {
		return response.Error(c, err)
	}

	member, err := h.memberUseCase.CreateTeamMember(c.Request().Context(), usecase.TeamMemberInput{
		Name:         req.Name,
		Position:     req.Position,
		Bio:          req.Bio,
		LinkedinURL:  req.LinkedinURL,
		DisplayOrder: req.DisplayOrder,
	}, files)

	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, "Team member created successfully", member)
}

func (h *TeamMemberHandler) GetTeamMember(c echo.Context) error {
	member, err := h.memberUseCase.GetTeamMemberByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, "Team member retrieved successfully", member)
}

func (h *TeamMemberHandler) ListTeamMembers(c echo.Context) error {
	pagination := utils.GetPaginationParams(c)

	members, total, err := h.memberUseCase.ListTeamMembers(c.Request().Context(), pagination.Page, pagination.PageSize)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, "Team members retrieved successfully", members, total, pagination.Page, pagination.PageSize)
}

func (h *TeamMemberHandler) UpdateTeamMember(c echo.Context) error {
	var req teamMemberRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	form, _ := c.MultipartForm()
	files, err := h.gate.Parse(c.Request().Context(), form, upload.TeamMemberForm)
	if err != nil {
		return response.Error(c, err)
	}

	member, err := h.memberUseCase.UpdateTeamMember(c.Request().Context(), c.Param("id"), usecase.TeamMemberInput{
		Name:         req.Name,
		Position:     req.Position,
		Bio:          req.Bio,
		LinkedinURL:  req.LinkedinURL,
		DisplayOrder: req.DisplayOrder,
	}, files)

	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, "Team member updated successfully", member)
}

func (h *TeamMemberHandler) DeleteTeamMember(c echo.Context) error {
	if err := h.memberUseCase.DeleteTeamMember(c.Request().Context(), c.Param("id")); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, "Team member deleted successfully", nil)
}
