package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/erp-backend/internal/api/dto"
	"github.com/spec-kit/erp-backend/internal/domain"
	"github.com/spec-kit/erp-backend/internal/repository"
	apperrors "github.com/spec-kit/erp-backend/pkg/util"
)

// ProjectsHandler covers projects and manufacturing work orders.
type ProjectsHandler struct {
	projects   repository.ProjectRepository
	workOrders repository.WorkOrderRepository
}

// NewProjectsHandler constructs handler.
func NewProjectsHandler(projects repository.ProjectRepository, workOrders repository.WorkOrderRepository) *ProjectsHandler {
	return &ProjectsHandler{projects: projects, workOrders: workOrders}
}

// CreateProject POST /projects.
func (h *ProjectsHandler) CreateProject(c *fiber.Ctx) error {
	principal, err := requirePrincipal(c)
	if err != nil {
		return err
	}
	var req dto.CreateProjectRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Name == "" {
		return apperrors.NewValidationError("name required", nil)
	}
	if req.Status == "" {
		req.Status = "planning"
	}

	project := &domain.Project{
		Name:        req.Name,
		Description: req.Description,
		Status:      req.Status,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Budget:      req.Budget,
		Progress:    req.Progress,
		CreatedBy:   actorRef(principal),
	}
	if err := h.projects.Create(c.Context(), project); err != nil {
		return apperrors.MapError(err)
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.NewProjectResponse(project)})
}

// ListProjects GET /projects.
func (h *ProjectsHandler) ListProjects(c *fiber.Ctx) error {
	if _, err := requirePrincipal(c); err != nil {
		return err
	}
	projects, err := h.projects.List(c.Context(), queryInt(c, "limit", 100), queryInt(c, "skip", 0))
	if err != nil {
		return apperrors.MapError(err)
	}
	items := make([]dto.ProjectResponse, 0, len(projects))
	for i := range projects {
		items = append(items, dto.NewProjectResponse(&projects[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// GetProject GET /projects/:id.
func (h *ProjectsHandler) GetProject(c *fiber.Ctx) error {
	if _, err := requirePrincipal(c); err != nil {
		return err
	}
	project, err := h.projects.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(fiber.Map{"data": dto.NewProjectResponse(project)})
}

// UpdateProject PUT /projects/:id.
func (h *ProjectsHandler) UpdateProject(c *fiber.Ctx) error {
	if _, err := requirePrincipal(c); err != nil {
		return err
	}
	var req dto.UpdateProjectRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	project, err := h.projects.Update(c.Context(), c.Params("id"), repository.ProjectUpdate{
		Name:        req.Name,
		Description: req.Description,
		Status:      req.Status,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Budget:      req.Budget,
		Progress:    req.Progress,
	})
	if err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(fiber.Map{"data": dto.NewProjectResponse(project)})
}

// DeleteProject DELETE /projects/:id.
func (h *ProjectsHandler) DeleteProject(c *fiber.Ctx) error {
	if _, err := requirePrincipal(c); err != nil {
		return err
	}
	if err := h.projects.Delete(c.Context(), c.Params("id")); err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"message": "project deleted"}})
}

// CreateWorkOrder POST /manufacturing/work-orders.
func (h *ProjectsHandler) CreateWorkOrder(c *fiber.Ctx) error {
	principal, err := requirePrincipal(c)
	if err != nil {
		return err
	}
	var req dto.CreateWorkOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.WorkOrderID == "" || req.Product == "" {
		return apperrors.NewValidationError("work_order_id and product required", nil)
	}
	if req.Status == "" {
		req.Status = "pending"
	}

	taken, err := h.workOrders.ExistsByWorkOrderID(c.Context(), req.WorkOrderID)
	if err != nil {
		return apperrors.MapError(err)
	}
	if taken {
		return apperrors.NewConflict("work order id already exists", fiber.Map{"work_order_id": req.WorkOrderID})
	}

	wo := &domain.WorkOrder{
		WorkOrderID: req.WorkOrderID,
		Product:     req.Product,
		Quantity:    req.Quantity,
		Status:      req.Status,
		StartDate:   req.StartDate,
		DueDate:     req.DueDate,
		CreatedBy:   actorRef(principal),
	}
	if err := h.workOrders.Create(c.Context(), wo); err != nil {
		return apperrors.MapError(err)
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.NewWorkOrderResponse(wo)})
}

// ListWorkOrders GET /manufacturing/work-orders.
func (h *ProjectsHandler) ListWorkOrders(c *fiber.Ctx) error {
	if _, err := requirePrincipal(c); err != nil {
		return err
	}
	orders, err := h.workOrders.List(c.Context(), queryInt(c, "limit", 100), queryInt(c, "skip", 0))
	if err != nil {
		return apperrors.MapError(err)
	}
	items := make([]dto.WorkOrderResponse, 0, len(orders))
	for i := range orders {
		items = append(items, dto.NewWorkOrderResponse(&orders[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// GetWorkOrder GET /manufacturing/work-orders/:id.
func (h *ProjectsHandler) GetWorkOrder(c *fiber.Ctx) error {
	if _, err := requirePrincipal(c); err != nil {
		return err
	}
	wo, err := h.workOrders.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(fiber.Map{"data": dto.NewWorkOrderResponse(wo)})
}

// UpdateWorkOrder PUT /manufacturing/work-orders/:id.
func (h *ProjectsHandler) UpdateWorkOrder(c *fiber.Ctx) error {
	if _, err := requirePrincipal(c); err != nil {
		return err
	}
	var req dto.UpdateWorkOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	wo, err := h.workOrders.Update(c.Context(), c.Params("id"), repository.WorkOrderUpdate{
		Product:   req.Product,
		Quantity:  req.Quantity,
		Status:    req.Status,
		StartDate: req.StartDate,
		DueDate:   req.DueDate,
	})
	if err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(fiber.Map{"data": dto.NewWorkOrderResponse(wo)})
}

// DeleteWorkOrder DELETE /manufacturing/work-orders/:id.
func (h *ProjectsHandler) DeleteWorkOrder(c *fiber.Ctx) error {
	if _, err := requirePrincipal(c); err != nil {
		return err
	}
	if err := h.workOrders.Delete(c.Context(), c.Params("id")); err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"message": "work order deleted"}})
}
