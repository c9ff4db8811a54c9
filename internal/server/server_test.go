package server

import (
	"encoding/base64"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/justicekonjengbam/DreamWorld-sub000/internal/content"
	"github.com/justicekonjengbam/DreamWorld-sub000/pkg/types"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testService(t *testing.T) *Service {
	t.Helper()

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	config := &types.Config{
		ServerPort:       8080,
		AdminPassword:    "hunter2",
		CookieName:       "admin_session",
		SessionMaxAgeSec: 3600,
		CookieHashKey:    base64.StdEncoding.EncodeToString([]byte("0123456789abcdef0123456789abcdef")),
		CookieBlockKey:   base64.StdEncoding.EncodeToString([]byte("0123456789abcdef")),
	}

	s, err := New(config, logger, content.NewStore(logger, content.Repositories{}), nil, nil, nil, nil)
	require.NoError(t, err)
	return s
}

func TestHealthz(t *testing.T) {
	s := testService(t)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rr := httptest.NewRecorder()
	s.server.Handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestContentEndpointServesBeforeFirstRefresh(t *testing.T) {
	s := testService(t)

	req := httptest.NewRequest(http.MethodGet, "/api/content", nil)
	rr := httptest.NewRecorder()
	s.server.Handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"loading":true`)
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	s := testService(t)

	form := url.Values{"password": {"wrong"}}
	req := httptest.NewRequest(http.MethodPost, "/admin/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rr := httptest.NewRecorder()
	s.server.Handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Empty(t, rr.Result().Cookies())
}

func TestLoginIssuesSessionCookie(t *testing.T) {
	s := testService(t)

	form := url.Values{"password": {"hunter2"}}
	req := httptest.NewRequest(http.MethodPost, "/admin/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rr := httptest.NewRecorder()
	s.server.Handler.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	cookies := rr.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "admin_session", cookies[0].Name)
	assert.True(t, cookies[0].HttpOnly)

	// The issued cookie passes the admin gate.
	gated := s.RequireAdmin(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	req = httptest.NewRequest(http.MethodGet, "/admin/refresh", nil)
	req.AddCookie(cookies[0])
	rr = httptest.NewRecorder()
	gated.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNoContent, rr.Code)
}

func TestRequireAdminRejectsMissingOrForgedCookie(t *testing.T) {
	s := testService(t)

	gated := s.RequireAdmin(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	req := httptest.NewRequest(http.MethodGet, "/admin/refresh", nil)
	rr := httptest.NewRecorder()
	gated.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	req = httptest.NewRequest(http.MethodGet, "/admin/refresh", nil)
	req.AddCookie(&http.Cookie{Name: "admin_session", Value: "forged"})
	rr = httptest.NewRecorder()
	gated.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestStripTrailingSlashRedirects(t *testing.T) {
	s := testService(t)

	req := httptest.NewRequest(http.MethodGet, "/api/content/", nil)
	rr := httptest.NewRecorder()
	s.server.Handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusMovedPermanently, rr.Code)
	assert.Equal(t, "/api/content", rr.Header().Get("Location"))
}
