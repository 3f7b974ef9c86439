package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/researchnexus/nexus/internal/core/ports"
)

// ChatHandler serves the assistant widget. The conversation is the
// caller's browser profile.
type ChatHandler struct {
	service ports.ChatService
}

func NewChatHandler(service ports.ChatService) *ChatHandler {
	return &ChatHandler{service: service}
}

// Transcript returns the visible conversation.
//
// @Summary      Chat transcript
// @Tags         chat
// @Produce      json
// @Success      200  {object}  chatTranscriptResponse
// @Router       /v1/chat [get]
func (h *ChatHandler) Transcript(c echo.Context) error {
	profile, err := ctxProfile(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, chatTranscriptResponse{
		Messages: h.service.Transcript(c.Request().Context(), profile),
	})
}

// Send appends the user's message; the reply arrives asynchronously.
//
// @Summary      Send a chat message
// @Tags         chat
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key  header    string       false  "Idempotency key to prevent duplicate submissions"
// @Param        body             body      chatRequest  true   "Message"
// @Success      202              {object}  chatSendResponse
// @Success      200              {object}  chatSendResponse  "duplicate submission"
// @Failure      400              {object}  errorResponse
// @Failure      503              {object}  errorResponse  "reply queue full"
// @Router       /v1/chat [post]
func (h *ChatHandler) Send(c echo.Context) error {
	var req chatRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	profile, err := ctxProfile(c)
	if err != nil {
		return err
	}

	idempotencyKey := c.Request().Header.Get("Idempotency-Key")
	res, err := h.service.Send(c.Request().Context(), profile, req.Text, idempotencyKey)
	if err != nil {
		return err
	}

	status := http.StatusAccepted
	if res.Duplicate {
		status = http.StatusOK
	}
	return c.JSON(status, chatSendResponse{Message: res.Message, Duplicate: res.Duplicate})
}
