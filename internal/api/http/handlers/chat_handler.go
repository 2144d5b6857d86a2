package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/erp-backend/internal/api/dto"
	"github.com/spec-kit/erp-backend/internal/service"
	apperrors "github.com/spec-kit/erp-backend/pkg/util"
)

// ChatHandler covers team chat messages and typing indicators.
type ChatHandler struct {
	chat *service.ChatService
}

// NewChatHandler constructs handler.
func NewChatHandler(chat *service.ChatService) *ChatHandler {
	return &ChatHandler{chat: chat}
}

// SendMessage POST /chat/messages.
func (h *ChatHandler) SendMessage(c *fiber.Ctx) error {
	principal, err := requirePrincipal(c)
	if err != nil {
		return err
	}
	var req dto.SendChatMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	view, err := h.chat.SendMessage(c.Context(), principal.UserID(), req.Content)
	if err != nil {
		return apperrors.MapError(err)
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.NewChatMessageResponse(view)})
}

// ListMessages GET /chat/messages.
func (h *ChatHandler) ListMessages(c *fiber.Ctx) error {
	if _, err := requirePrincipal(c); err != nil {
		return err
	}
	views, err := h.chat.ListMessages(c.Context(), queryInt(c, "limit", 50), queryInt(c, "skip", 0))
	if err != nil {
		return apperrors.MapError(err)
	}
	items := make([]dto.ChatMessageResponse, 0, len(views))
	for i := range views {
		items = append(items, dto.NewChatMessageResponse(&views[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// DeleteMessage DELETE /chat/messages/:id.
func (h *ChatHandler) DeleteMessage(c *fiber.Ctx) error {
	principal, err := requirePrincipal(c)
	if err != nil {
		return err
	}
	if err := h.chat.DeleteMessage(c.Context(), principal.UserID(), c.Params("id")); err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"message": "message deleted"}})
}

// SetTyping POST /chat/typing-indicators.
func (h *ChatHandler) SetTyping(c *fiber.Ctx) error {
	principal, err := requirePrincipal(c)
	if err != nil {
		return err
	}
	var req dto.SetTypingRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if _, err := h.chat.SetTyping(c.Context(), principal.UserID(), req.IsTyping); err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"is_typing": req.IsTyping}})
}

// ListTyping GET /chat/typing-indicators.
func (h *ChatHandler) ListTyping(c *fiber.Ctx) error {
	principal, err := requirePrincipal(c)
	if err != nil {
		return err
	}
	views, err := h.chat.ActiveTypists(c.Context(), principal.UserID())
	if err != nil {
		return apperrors.MapError(err)
	}
	items := make([]dto.TypingIndicatorResponse, 0, len(views))
	for i := range views {
		items = append(items, dto.NewTypingIndicatorResponse(&views[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}
