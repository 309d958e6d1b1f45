package handler

import (
	"github.com/labstack/echo/v4"

	"arunika/internal/upload"
	"arunika/internal/usecase"
	"arunika/pkg/response"
	"arunika/pkg/utils"
)

type ProjectHandler struct {
	projectUseCase *usecase.ProjectUseCase
	gate           *upload.Gate
}

func NewProjectHandler(projectUseCase *usecase.ProjectUseCase, gate *upload.Gate) *ProjectHandler {
	return &ProjectHandler{
		projectUseCase: projectUseCase,
		gate:           gate,
	}
}

type projectRequest struct {
	Title       string `form:"title" validate:"required"`
	Client      string `form:"client"`
	Category    string `form:"category" validate:"required"`
	Year        int    `form:"year" validate:"omitempty,min=1990,max=2100"`
	Summary     string `form:"summary"`
	Description string `form:"description"`
	Status      string `form:"status" validate:"omitempty,oneof=draft published archived"`
}

func (h *ProjectHandler) CreateProject(c echo.Context) error {
	var req projectRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	// Field validation above runs before any file leaves this process.
	form, _ := c.MultipartForm()
	files, err := h.gate.Parse(c.Request().Context(), form, upload.ProjectForm)
	if err != nil {
		return response.Error(c, err)
	}

	project, err := h.projectUseCase.CreateProject(c.Request().Context(), usecase.CreateProjectInput{
		Title:       req.Title,
		Client:      req.Client,
		Category:    req.Category,
		Year:        req.Year,
		Summary:     req.Summary,
		Description: req.Description,
		Status:      req.Status,
	}, files)

	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, "Project created successfully", project)
}

func (h *ProjectHandler) GetProject(c echo.Context) error {
	project, err := h.projectUseCase.GetProjectByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, "Project retrieved successfully", project)
}

func (h *ProjectHandler) ListProjects(c echo.Context) error {
	pagination := utils.GetPaginationParams(c)

	projects, total, err := h.projectUseCase.ListProjects(
		c.Request().Context(),
		c.QueryParam("status"),
		c.QueryParam("category"),
		pagination.Page,
		pagination.PageSize,
	)

	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, "Projects retrieved successfully", projects, total, pagination.Page, pagination.PageSize)
}

func (h *ProjectHandler) UpdateProject(c echo.Context) error {
	var req projectRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	form, _ := c.MultipartForm()
	files, err := h.gate.Parse(c.Request().Context(), form, upload.ProjectForm)
	if err != nil {
		return response.Error(c, err)
	}

	var removeImages []string
	if form != nil {
		removeImages = form.Value["remove_images"]
	}

	project, err := h.projectUseCase.UpdateProject(c.Request().Context(), c.Param("id"), usecase.UpdateProjectInput{
		Title:        req.Title,
		Client:       req.Client,
		Category:     req.Category,
		Year:         req.Year,
		Summary:      req.Summary,
		Description:  req.Description,
		Status:       req.Status,
		RemoveImages: removeImages,
	}, files)

	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, "Project updated successfully", project)
}

func (h *ProjectHandler) DeleteProject(c echo.Context) error {
	if err := h.projectUseCase.DeleteProject(c.Request().Context(), c.Param("id")); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, "Project deleted successfully", nil)
}
