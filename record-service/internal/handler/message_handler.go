package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/socialmedia/records/shared/cqrs"
	"github.com/socialmedia/records/shared/middleware"
)

// Content rules are left to the store so that author resolution is reported
// first; the requests carry no validate tags.
type PostMessageRequest struct {
	MessageText string `json:"message_text"`
	PostedBy    string `json:"posted_by"`
}

type UpdateMessageRequest struct {
	MessageText string `json:"message_text"`
}

func (h *RecordHandler) PostMessage(c *gin.Context) {
	var req PostMessageRequest
	if !middleware.BindAndValidate(c, &req) {
		return
	}

	message, err := h.commands.PostMessage(c.Request.Context(), cqrs.PostMessageCommand{
		Text:     req.MessageText,
		PostedBy: req.PostedBy,
	})
	if err != nil {
		respondWithStoreError(c, err, http.StatusBadRequest, "Failed to post message")
		return
	}

	c.JSON(http.StatusOK, message)
}

func (h *RecordHandler) ListMessages(c *gin.Context) {
	c.JSON(http.StatusOK, h.queries.ListMessages(c.Request.Context()))
}

// GetMessage answers 200 with an empty body when the message does not exist.
func (h *RecordHandler) GetMessage(c *gin.Context) {
	message, ok := h.queries.GetMessage(c.Request.Context(), cqrs.GetMessageQuery{
		MessageID: c.Param("message_id"),
	})
	if !ok {
		c.Status(http.StatusOK)
		return
	}

	c.JSON(http.StatusOK, message)
}

func (h *RecordHandler) UpdateMessage(c *gin.Context) {
	var req UpdateMessageRequest
	if !middleware.BindAndValidate(c, &req) {
		return
	}

	message, err := h.commands.UpdateMessage(c.Request.Context(), cqrs.UpdateMessageCommand{
		MessageID: c.Param("message_id"),
		Text:      req.MessageText,
	})
	if err != nil {
		respondWithStoreError(c, err, http.StatusBadRequest, "Failed to update message")
		return
	}

	c.JSON(http.StatusOK, message)
}

// DeleteMessage is idempotent: deleting an unknown message is 200 with an empty body.
func (h *RecordHandler) DeleteMessage(c *gin.Context) {
	message, err := h.commands.DeleteMessage(c.Request.Context(), cqrs.DeleteMessageCommand{
		MessageID: c.Param("message_id"),
	})
	if err != nil {
		_ = c.Error(err)
		middleware.RespondWithError(c, http.StatusInternalServerError, "Failed to delete message")
		return
	}
	if message == nil {
		c.Status(http.StatusOK)
		return
	}

	c.JSON(http.StatusOK, message)
}
