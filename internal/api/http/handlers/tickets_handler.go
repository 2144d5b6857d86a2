package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/erp-backend/internal/api/dto"
	"github.com/spec-kit/erp-backend/internal/domain"
	"github.com/spec-kit/erp-backend/internal/repository"
	"github.com/spec-kit/erp-backend/internal/service"
	apperrors "github.com/spec-kit/erp-backend/pkg/util"
)

// TicketsHandler manages the ticket subsystem endpoints.
type TicketsHandler struct {
	service *service.TicketService
}

// NewTicketsHandler constructs handler.
func NewTicketsHandler(ticketService *service.TicketService) *TicketsHandler {
	return &TicketsHandler{service: ticketService}
}

// Create POST /tickets.
func (h *TicketsHandler) Create(c *fiber.Ctx) error {
	principal, err := requirePrincipal(c)
	if err != nil {
		return err
	}
	var req dto.CreateTicketRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	ticket, err := h.service.CreateTicket(c.Context(), principal.UserID(), service.TicketCreateInput{
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
		TicketType:  req.TicketType,
		Department:  req.Department,
		Module:      req.Module,
		DueDate:     req.DueDate,
		AssignedTo:  req.AssignedTo,
		GroupID:     req.GroupID,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.NewTicketResponse(ticket)})
}

// List GET /tickets.
func (h *TicketsHandler) List(c *fiber.Ctx) error {
	if _, err := requirePrincipal(c); err != nil {
		return err
	}
	filter := parseTicketFilter(c)
	tickets, err := h.service.ListTickets(c.Context(), filter)
	if err != nil {
		return err
	}
	items := make([]dto.TicketResponse, 0, len(tickets))
	for i := range tickets {
		items = append(items, dto.NewTicketResponse(&tickets[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// Stats GET /tickets/stats/summary.
func (h *TicketsHandler) Stats(c *fiber.Ctx) error {
	if _, err := requirePrincipal(c); err != nil {
		return err
	}
	stats, err := h.service.Stats(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewTicketStatsResponse(stats)})
}

// Get GET /tickets/:id.
func (h *TicketsHandler) Get(c *fiber.Ctx) error {
	if _, err := requirePrincipal(c); err != nil {
		return err
	}
	ticket, err := h.service.GetTicket(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewTicketResponse(ticket)})
}

// Update PUT /tickets/:id.
func (h *TicketsHandler) Update(c *fiber.Ctx) error {
	principal, err := requirePrincipal(c)
	if err != nil {
		return err
	}
	var req dto.UpdateTicketRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	ticket, err := h.service.UpdateTicket(c.Context(), principal.UserID(), c.Params("id"), service.TicketUpdateInput{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		Priority:    req.Priority,
		TicketType:  req.TicketType,
		Department:  req.Department,
		Module:      req.Module,
		DueDate:     req.DueDate,
		AssignedTo:  req.AssignedTo,
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewTicketResponse(ticket)})
}

// Delete DELETE /tickets/:id.
func (h *TicketsHandler) Delete(c *fiber.Ctx) error {
	if _, err := requirePrincipal(c); err != nil {
		return err
	}
	if err := h.service.DeleteTicket(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"message": "ticket deleted"}})
}

// AddComment POST /tickets/:id/comments.
func (h *TicketsHandler) AddComment(c *fiber.Ctx) error {
	principal, err := requirePrincipal(c)
	if err != nil {
		return err
	}
	var req dto.CreateCommentRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	comment, err := h.service.AddComment(c.Context(), principal.UserID(), c.Params("id"), service.CommentInput{
		Comment:    req.Comment,
		IsInternal: req.IsInternal,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.NewCommentResponse(comment)})
}

// ListComments GET /tickets/:id/comments.
func (h *TicketsHandler) ListComments(c *fiber.Ctx) error {
	if _, err := requirePrincipal(c); err != nil {
		return err
	}
	includeInternal := queryBool(c, "include_internal", false)
	comments, err := h.service.ListComments(c.Context(), c.Params("id"), includeInternal)
	if err != nil {
		return err
	}
	items := make([]dto.CommentResponse, 0, len(comments))
	for i := range comments {
		items = append(items, dto.NewCommentResponse(&comments[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// AddAttachment POST /tickets/:id/attachments.
func (h *TicketsHandler) AddAttachment(c *fiber.Ctx) error {
	principal, err := requirePrincipal(c)
	if err != nil {
		return err
	}
	var req dto.CreateAttachmentRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	att, err := h.service.AddAttachment(c.Context(), principal.UserID(), c.Params("id"), service.AttachmentInput{
		Filename: req.Filename,
		FilePath: req.FilePath,
		FileSize: req.FileSize,
		MimeType: req.MimeType,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.NewAttachmentResponse(att)})
}

// ListAttachments GET /tickets/:id/attachments.
func (h *TicketsHandler) ListAttachments(c *fiber.Ctx) error {
	if _, err := requirePrincipal(c); err != nil {
		return err
	}
	atts, err := h.service.ListAttachments(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	items := make([]dto.AttachmentResponse, 0, len(atts))
	for i := range atts {
		items = append(items, dto.NewAttachmentResponse(&atts[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// ListHistory GET /tickets/:id/history.
func (h *TicketsHandler) ListHistory(c *fiber.Ctx) error {
	if _, err := requirePrincipal(c); err != nil {
		return err
	}
	history, err := h.service.ListHistory(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	items := make([]dto.HistoryResponse, 0, len(history))
	for i := range history {
		items = append(items, dto.NewHistoryResponse(&history[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

func parseTicketFilter(c *fiber.Ctx) repository.TicketFilter {
	filter := repository.TicketFilter{
		Department: optionalQuery(c, "department"),
		AssignedTo: optionalQuery(c, "assigned_to"),
		CreatedBy:  optionalQuery(c, "created_by"),
		Search:     optionalQuery(c, "search"),
		SortBy:     c.Query("sort_by"),
		SortOrder:  c.Query("sort_order"),
		Limit:      queryInt(c, "limit", 50),
		Offset:     queryInt(c, "skip", 0),
	}
	if raw := c.Query("status"); raw != "" {
		status := domain.TicketStatus(raw)
		filter.Status = &status
	}
	if raw := c.Query("priority"); raw != "" {
		priority := domain.TicketPriority(raw)
		filter.Priority = &priority
	}
	if raw := c.Query("ticket_type"); raw != "" {
		ticketType := domain.TicketType(raw)
		filter.TicketType = &ticketType
	}
	return filter
}
