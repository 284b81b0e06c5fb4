package handler

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/socialmedia/records/record-service/internal/service"
	"github.com/socialmedia/records/record-service/internal/store"
	"github.com/socialmedia/records/shared/middleware"
	"github.com/socialmedia/records/shared/models"
	"github.com/stretchr/testify/require"
)

func newServiceRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	tokens, err := middleware.NewTokenManager("test-secret", time.Hour)
	require.NoError(t, err)

	svc := service.New(service.Options{Hasher: store.PlainHasher{}})
	r := gin.New()
	RegisterRoutes(r, NewRecordHandler(svc, svc, tokens), tokens.AuthMiddleware())
	return r
}

func decode[T any](t *testing.T, body []byte) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(body, &out), "body: %s", body)
	return out
}

func TestRoutes_JasonScenario(t *testing.T) {
	r := require.New(t)
	router := newServiceRouter(t)

	w := recordDoRequest(router, http.MethodPost, "/register", map[string]string{"username": "jason", "password": "password"})
	r.Equal(http.StatusOK, w.Code, w.Body.String())
	jason := decode[models.AccountView](t, w.Body.Bytes())
	r.NotEmpty(jason.ID)

	w = recordDoRequest(router, http.MethodPost, "/register", map[string]string{"username": "jason", "password": "other"})
	r.Equal(http.StatusBadRequest, w.Code)

	w = recordDoRequest(router, http.MethodPost, "/messages", map[string]string{"message_text": "Hello, world!", "posted_by": jason.ID})
	r.Equal(http.StatusOK, w.Code, w.Body.String())
	posted := decode[models.Message](t, w.Body.Bytes())
	r.Equal("Hello, world!", posted.Text)
	r.Equal(jason.ID, posted.PostedBy)

	w = recordDoRequest(router, http.MethodGet, "/accounts/"+jason.ID+"/messages", nil)
	r.Equal(http.StatusOK, w.Code)
	r.Equal([]models.Message{posted}, decode[[]models.Message](t, w.Body.Bytes()))

	w = recordDoRequest(router, http.MethodPatch, "/messages/"+posted.ID, map[string]string{"message_text": strings.Repeat("x", 256)})
	r.Equal(http.StatusBadRequest, w.Code)

	w = recordDoRequest(router, http.MethodPatch, "/messages/"+posted.ID, map[string]string{"message_text": "Hi!"})
	r.Equal(http.StatusOK, w.Code)
	r.Equal("Hi!", decode[models.Message](t, w.Body.Bytes()).Text)

	w = recordDoRequest(router, http.MethodDelete, "/messages/"+posted.ID, nil)
	r.Equal(http.StatusOK, w.Code)
	r.Equal(posted.ID, decode[models.Message](t, w.Body.Bytes()).ID)

	w = recordDoRequest(router, http.MethodDelete, "/messages/"+posted.ID, nil)
	r.Equal(http.StatusOK, w.Code)
	r.Zero(w.Body.Len())

	w = recordDoRequest(router, http.MethodGet, "/messages/"+posted.ID, nil)
	r.Equal(http.StatusOK, w.Code)
	r.Zero(w.Body.Len())

	w = recordDoRequest(router, http.MethodGet, "/messages", nil)
	r.Equal(http.StatusOK, w.Code)
	r.Equal("[]", strings.TrimSpace(w.Body.String()))
}

func TestRoutes_LoginTokenOpensAccountsMe(t *testing.T) {
	r := require.New(t)
	router := newServiceRouter(t)

	w := recordDoRequest(router, http.MethodPost, "/register", map[string]string{"username": "jason", "password": "password"})
	r.Equal(http.StatusOK, w.Code)
	jason := decode[models.AccountView](t, w.Body.Bytes())

	w = recordDoRequest(router, http.MethodPost, "/login", map[string]string{"username": "jason", "password": "wrong"})
	r.Equal(http.StatusUnauthorized, w.Code)

	w = recordDoRequest(router, http.MethodPost, "/login", map[string]string{"username": "jason", "password": "password"})
	r.Equal(http.StatusOK, w.Code)
	r.Equal(jason, decode[models.AccountView](t, w.Body.Bytes()))
	header := w.Header().Get("Authorization")
	r.True(strings.HasPrefix(header, "Bearer "), header)

	req, _ := http.NewRequest(http.MethodGet, "/accounts/me", nil)
	w = doRaw(router, req)
	r.Equal(http.StatusUnauthorized, w.Code)

	req, _ = http.NewRequest(http.MethodGet, "/accounts/me", nil)
	req.Header.Set("Authorization", header)
	w = doRaw(router, req)
	r.Equal(http.StatusOK, w.Code, w.Body.String())
	r.Equal(jason, decode[models.AccountView](t, w.Body.Bytes()))
	r.NotContains(w.Body.String(), "password")
}

func TestRoutes_Health(t *testing.T) {
	router := newServiceRouter(t)
	w := recordDoRequest(router, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode[map[string]any](t, w.Body.Bytes())
	require.Equal(t, "ok", body["status"])
}

func TestRoutes_WithoutTokens(t *testing.T) {
	r := require.New(t)
	gin.SetMode(gin.TestMode)
	svc := service.New(service.Options{Hasher: store.PlainHasher{}})
	router := gin.New()
	RegisterRoutes(router, NewRecordHandler(svc, svc, nil), middleware.DisabledAuth())

	w := recordDoRequest(router, http.MethodPost, "/register", map[string]string{"username": "jason", "password": "password"})
	r.Equal(http.StatusOK, w.Code)

	w = recordDoRequest(router, http.MethodPost, "/register", map[string]string{"username": "jason", "password": "pw"})
	r.Equal(http.StatusBadRequest, w.Code)
	r.Contains(w.Body.String(), "Username already exists!")

	w = recordDoRequest(router, http.MethodPost, "/login", map[string]string{"username": "jason", "password": "password"})
	r.Equal(http.StatusOK, w.Code)
	r.Empty(w.Header().Get("Authorization"))

	w = recordDoRequest(router, http.MethodGet, "/accounts/me", nil)
	r.Equal(http.StatusUnauthorized, w.Code)
}
