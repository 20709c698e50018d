package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"busadmin/config"
	"busadmin/middleware"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func authRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/auth/login", LoginHandler)
	r.GET("/api/auth/logout", LogoutHandler)
	return r
}

func TestLoginHandler_Success(t *testing.T) {
	config.AppConfig.AdminPassword = "hunter2"
	r := authRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(`{"password":"hunter2"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"success":true`)

	cookies := w.Result().Cookies()
	var session *http.Cookie
	for _, ck := range cookies {
		if ck.Name == middleware.AdminCookieName {
			session = ck
		}
	}
	if assert.NotNil(t, session, "login must set the admin cookie") {
		assert.Equal(t, "true", session.Value)
		assert.True(t, session.HttpOnly)
		assert.Equal(t, 60*60*24, session.MaxAge)
		assert.Equal(t, http.SameSiteLaxMode, session.SameSite)
	}
}

func TestLoginHandler_WrongPassword(t *testing.T) {
	config.AppConfig.AdminPassword = "hunter2"
	r := authRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(`{"password":"nope"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), `"success":false`)
	assert.Empty(t, w.Result().Cookies())
}

func TestLoginHandler_MalformedJSON(t *testing.T) {
	r := authRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(`{"password":`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLogoutHandler_ClearsCookieAndRedirects(t *testing.T) {
	r := authRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/auth/logout", nil)
	req.AddCookie(&http.Cookie{Name: middleware.AdminCookieName, Value: "true"})
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))

	cookies := w.Result().Cookies()
	if assert.Len(t, cookies, 1) {
		assert.Equal(t, middleware.AdminCookieName, cookies[0].Name)
		assert.Less(t, cookies[0].MaxAge, 0)
	}
}

func TestAdminAuthMiddleware_RejectsMissingCookie(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/analytics", middleware.AdminAuthMiddleware(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": true})
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/analytics", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/analytics", nil)
	req.AddCookie(&http.Cookie{Name: middleware.AdminCookieName, Value: "true"})
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}
