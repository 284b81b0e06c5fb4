package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/socialmedia/records/record-service/internal/store"
	"github.com/socialmedia/records/shared/cqrs"
	"github.com/socialmedia/records/shared/middleware"
	"github.com/socialmedia/records/shared/models"
)

// RecordCommander defines the write-side operations used by RecordHandler.
type RecordCommander interface {
	Register(context.Context, cqrs.RegisterAccountCommand) (*models.Account, error)
	PostMessage(context.Context, cqrs.PostMessageCommand) (*models.Message, error)
	UpdateMessage(context.Context, cqrs.UpdateMessageCommand) (*models.Message, error)
	DeleteMessage(context.Context, cqrs.DeleteMessageCommand) (*models.Message, error)
}

// RecordQuerier defines the read-side operations used by RecordHandler.
type RecordQuerier interface {
	Authenticate(context.Context, cqrs.AuthenticateCommand) (*models.Account, error)
	GetAccount(context.Context, cqrs.GetAccountQuery) (*models.Account, error)
	ListMessages(context.Context) []models.Message
	GetMessage(context.Context, cqrs.GetMessageQuery) (*models.Message, bool)
	ListMessagesByAccount(context.Context, cqrs.ListMessagesByAccountQuery) []models.Message
	Stats(context.Context) (accounts, messages int)
}

// TokenIssuer signs the token handed out on login.
type TokenIssuer interface {
	GenerateToken(accountID, username string) (string, error)
}

// RecordHandler routes requests to the command or query service as appropriate.
type RecordHandler struct {
	commands RecordCommander
	queries  RecordQuerier
	tokens   TokenIssuer
}

func NewRecordHandler(commands RecordCommander, queries RecordQuerier, tokens TokenIssuer) *RecordHandler {
	return &RecordHandler{commands: commands, queries: queries, tokens: tokens}
}

// RegisterRoutes mounts every record route. auth guards the routes that need a login token.
func RegisterRoutes(router gin.IRouter, h *RecordHandler, auth gin.HandlerFunc) {
	router.POST("/register", h.Register)
	router.POST("/login", h.Login)

	router.GET("/accounts/me", auth, h.GetCurrentAccount)
	router.GET("/accounts/:account_id/messages", h.ListMessagesByAccount)

	messages := router.Group("/messages")
	{
		messages.POST("", h.PostMessage)
		messages.GET("", h.ListMessages)
		messages.GET("/:message_id", h.GetMessage)
		messages.PATCH("/:message_id", h.UpdateMessage)
		messages.DELETE("/:message_id", h.DeleteMessage)
	}

	router.GET("/health", h.Health)
}

func (h *RecordHandler) Health(c *gin.Context) {
	accounts, messages := h.queries.Stats(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"status": "ok", "accounts": accounts, "messages": messages})
}

var errorMessages = []struct {
	err     error
	message string
}{
	{store.ErrDuplicateUsername, "Username already exists!"},
	{store.ErrInvalidUsername, "Username must not be empty!"},
	{store.ErrWeakPassword, "Password must be at least 4 characters long!"},
	{store.ErrInvalidCredentials, "Invalid username/password!"},
	{store.ErrUnknownAuthor, "User not found!"},
	{store.ErrInvalidContent, "Invalid message!"},
	{store.ErrNotFound, "Message not found!"},
}

// respondWithStoreError answers with status for any known store error and 500 otherwise.
func respondWithStoreError(c *gin.Context, err error, status int, fallback string) {
	for _, known := range errorMessages {
		if errors.Is(err, known.err) {
			middleware.RespondWithError(c, status, known.message)
			return
		}
	}
	_ = c.Error(err)
	middleware.RespondWithError(c, http.StatusInternalServerError, fallback)
}
