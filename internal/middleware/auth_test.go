package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Suvay/sjnhs-web-draft/internal/entity"
	"github.com/Suvay/sjnhs-web-draft/internal/middleware"
	"github.com/Suvay/sjnhs-web-draft/internal/service"
	"github.com/Suvay/sjnhs-web-draft/internal/storage/storagetest"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type middlewareFixture struct {
	engine *gin.Engine
	tokens map[string]string
}

func newMiddlewareFixture(t *testing.T) *middlewareFixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := storagetest.New()
	auth := service.NewAuthService(store, "unit-test-secret", time.Hour)
	mw := middleware.NewAuthMiddleware(auth, store)

	tokens := make(map[string]string)
	for _, role := range []string{entity.RoleViewer, entity.RoleEditor, entity.RoleAdmin} {
		user := &entity.User{Username: role + "-user", Password: "x", Role: role}
		require.NoError(t, store.CreateUser(t.Context(), user))
		token, err := auth.IssueToken(user)
		require.NoError(t, err)
		tokens[role] = token
	}

	engine := gin.New()
	authed := engine.Group("", mw.RequireAuth())
	authed.GET("/any", func(c *gin.Context) {
		user, ok := middleware.CurrentUser(c)
		require.True(t, ok)
		c.JSON(http.StatusOK, gin.H{"username": user.Username})
	})
	authed.GET("/editor", mw.RequireEditor(), func(c *gin.Context) { c.Status(http.StatusOK) })
	authed.GET("/admin", mw.RequireAdmin(), func(c *gin.Context) { c.Status(http.StatusOK) })

	return &middlewareFixture{engine: engine, tokens: tokens}
}

func (f *middlewareFixture) get(path, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	f.engine.ServeHTTP(rec, req)
	return rec
}

func TestRequireAuth(t *testing.T) {
	f := newMiddlewareFixture(t)

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic abc", http.StatusUnauthorized},
		{"garbage token", "Bearer not-a-token", http.StatusUnauthorized},
		{"valid token", "Bearer " + f.tokens[entity.RoleViewer], http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := f.get("/any", tt.header)
			assert.Equal(t, tt.want, rec.Code, "body: %s", rec.Body.String())
		})
	}
}

func TestRequireAuthRejectsDeletedUser(t *testing.T) {
	gin.SetMode(gin.TestMode)

	store := storagetest.New()
	auth := service.NewAuthService(store, "unit-test-secret", time.Hour)
	mw := middleware.NewAuthMiddleware(auth, store)

	// Token for a user that was never persisted.
	ghost := &entity.User{Username: "ghost", Role: entity.RoleAdmin}
	token, err := auth.IssueToken(ghost)
	require.NoError(t, err)

	engine := gin.New()
	engine.GET("/any", mw.RequireAuth(), func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/any", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRoleRanking(t *testing.T) {
	f := newMiddlewareFixture(t)

	tests := []struct {
		role string
		path string
		want int
	}{
		{entity.RoleViewer, "/editor", http.StatusForbidden},
		{entity.RoleViewer, "/admin", http.StatusForbidden},
		{entity.RoleEditor, "/editor", http.StatusOK},
		{entity.RoleEditor, "/admin", http.StatusForbidden},
		{entity.RoleAdmin, "/editor", http.StatusOK},
		{entity.RoleAdmin, "/admin", http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.role+" on "+tt.path, func(t *testing.T) {
			rec := f.get(tt.path, "Bearer "+f.tokens[tt.role])
			assert.Equal(t, tt.want, rec.Code, "body: %s", rec.Body.String())
		})
	}
}
