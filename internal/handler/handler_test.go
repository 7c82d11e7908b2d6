package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Suvay/sjnhs-web-draft/internal/config"
	"github.com/Suvay/sjnhs-web-draft/internal/entity"
	"github.com/Suvay/sjnhs-web-draft/internal/server"
	"github.com/Suvay/sjnhs-web-draft/internal/service"
	"github.com/Suvay/sjnhs-web-draft/internal/storage/storagetest"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const testSecret = "test-secret"

type testEnv struct {
	engine *gin.Engine
	store  *storagetest.Fake
	auth   service.AuthService

	adminToken  string
	editorToken string
	viewerToken string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := storagetest.New()
	cfg := &config.Config{
		AllowedOrigins: "http://localhost:3000",
		JWTSecret:      testSecret,
		JWTTTL:         time.Hour,
	}

	srv := server.New(cfg, store, nil, zap.NewNop())
	auth := service.NewAuthService(store, testSecret, time.Hour)

	env := &testEnv{
		engine: srv.Engine(),
		store:  store,
		auth:   auth,
	}
	env.adminToken = env.seedUser(t, "admin", "admin123", entity.RoleAdmin)
	env.editorToken = env.seedUser(t, "demo", "demo123", entity.RoleEditor)
	env.viewerToken = env.seedUser(t, "viewer", "viewer123", entity.RoleViewer)
	return env
}

func (e *testEnv) seedUser(t *testing.T, username, password, role string) string {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	user := &entity.User{
		Username: username,
		Password: string(hashed),
		Role:     role,
	}
	require.NoError(t, e.store.CreateUser(t.Context(), user))

	token, err := e.auth.IssueToken(user)
	require.NoError(t, err)
	return token
}

// do performs a request against the test server. body may be nil; token may
// be empty for unauthenticated calls.
func (e *testEnv) do(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	e.engine.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out), "body: %s", rec.Body.String())
}

func decodeList(t *testing.T, rec *httptest.ResponseRecorder) []map[string]interface{} {
	t.Helper()
	var list []map[string]interface{}
	decodeBody(t, rec, &list)
	return list
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	require.Equal(t, want, rec.Code, "body: %s", rec.Body.String())
}
