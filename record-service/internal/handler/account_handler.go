package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/socialmedia/records/shared/cqrs"
	"github.com/socialmedia/records/shared/middleware"
)

type RegisterRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *RecordHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if !middleware.BindAndValidate(c, &req) {
		return
	}

	account, err := h.commands.Register(c.Request.Context(), cqrs.RegisterAccountCommand{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		respondWithStoreError(c, err, http.StatusBadRequest, "Failed to register account")
		return
	}

	c.JSON(http.StatusOK, account.ToView())
}

// Login answers with the stored account and, when tokens are enabled, a
// bearer token in the Authorization response header.
func (h *RecordHandler) Login(c *gin.Context) {
	var req LoginRequest
	if !middleware.BindAndValidate(c, &req) {
		return
	}

	account, err := h.queries.Authenticate(c.Request.Context(), cqrs.AuthenticateCommand{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		respondWithStoreError(c, err, http.StatusUnauthorized, "Failed to authenticate")
		return
	}

	if h.tokens != nil {
		token, err := h.tokens.GenerateToken(account.ID, account.Username)
		if err != nil {
			_ = c.Error(err)
			middleware.RespondWithError(c, http.StatusInternalServerError, "Failed to generate token")
			return
		}
		c.Header("Authorization", "Bearer "+token)
	}

	c.JSON(http.StatusOK, account.ToView())
}

func (h *RecordHandler) GetCurrentAccount(c *gin.Context) {
	accountID, ok := middleware.GetAccountID(c)
	if !ok {
		middleware.RespondWithError(c, http.StatusUnauthorized, "Authorization required")
		return
	}

	account, err := h.queries.GetAccount(c.Request.Context(), cqrs.GetAccountQuery{AccountID: accountID})
	if err != nil {
		middleware.RespondWithError(c, http.StatusNotFound, "Account not found")
		return
	}

	c.JSON(http.StatusOK, account.ToView())
}

// ListMessagesByAccount answers 200 with an empty list for unknown accounts.
func (h *RecordHandler) ListMessagesByAccount(c *gin.Context) {
	messages := h.queries.ListMessagesByAccount(c.Request.Context(), cqrs.ListMessagesByAccountQuery{
		AccountID: c.Param("account_id"),
	})
	c.JSON(http.StatusOK, messages)
}
