package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"parking-backend/internal/domains/chatbot"
	"parking-backend/internal/domains/visitor/model"
	"parking-backend/internal/shared/response"
)

type ChatHandler struct {
	service *chatbot.Service
}

func NewChatHandler(svc *chatbot.Service) *ChatHandler {
	return &ChatHandler{
		service: svc,
	}
}

// ════════════════════════════════════════════════════════════════
// CHAT: POST /v1/chat
// ════════════════════════════════════════════════════════════════

// Chat always answers 200 with a reply once the request parses; failures
// inside the assistant surface as apologetic text, not as HTTP errors.
func (h *ChatHandler) Chat(c *gin.Context) {
	var req model.ChatRequest

	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid request", err)
		return
	}

	reply := h.service.Respond(c.Request.Context(), req.Message)

	response.Success(c, http.StatusOK, gin.H{"reply": reply})
}
