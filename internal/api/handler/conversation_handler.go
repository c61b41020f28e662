package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/freelancehub/marketplace-api/internal/api/middleware"
	"github.com/freelancehub/marketplace-api/internal/core/domain"
	"github.com/freelancehub/marketplace-api/internal/core/ports"
)

type ConversationHandler struct {
	convs    ports.ConversationService
	messages ports.MessageService
}

func NewConversationHandler(convs ports.ConversationService, messages ports.MessageService) *ConversationHandler {
	return &ConversationHandler{convs: convs, messages: messages}
}

// List returns the principal's conversations.
func (h *ConversationHandler) List(c echo.Context) error {
	convs, err := h.convs.List(c.Request().Context(), middleware.CurrentUser(c).ID)
	if err != nil {
		return err
	}
	if convs == nil {
		convs = []domain.Conversation{}
	}
	return c.JSON(http.StatusOK, convs)
}

// Create opens a thread; the principal must be one of the two parties.
func (h *ConversationHandler) Create(c echo.Context) error {
	var req createConversationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	conv, err := h.convs.Create(c.Request().Context(), ports.CreateConversationInput{
		JobID:        req.JobID,
		ClientID:     req.ClientID,
		FreelancerID: req.FreelancerID,
		ActorID:      middleware.CurrentUser(c).ID,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, conv)
}

// Messages returns a conversation's messages in send order.
func (h *ConversationHandler) Messages(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	msgs, err := h.convs.Messages(c.Request().Context(), id)
	if err != nil {
		return err
	}
	if msgs == nil {
		msgs = []domain.Message{}
	}
	return c.JSON(http.StatusOK, msgs)
}

// SendMessage persists a message through the REST path, with the same
// content rules the socket path applies.
func (h *ConversationHandler) SendMessage(c echo.Context) error {
	var req sendMessageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	msg, err := h.messages.Create(c.Request().Context(), ports.CreateMessageInput{
		ConversationID: req.ConversationID,
		SenderID:       middleware.CurrentUser(c).ID,
		ReceiverID:     req.ReceiverID,
		Content:        req.Content,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, msg)
}

// GetMessage returns a single message by id.
func (h *ConversationHandler) GetMessage(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	msg, err := h.messages.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, msg)
}
