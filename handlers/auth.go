package handlers

import (
	"net/http"

	"busadmin/config"
	"busadmin/middleware"
	"busadmin/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const adminCookieMaxAge = 60 * 60 * 24 // one day

// LoginHandler checks the submitted password against the configured admin
// secret and issues the session cookie.
func LoginHandler(c *gin.Context) {
	var input struct {
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid JSON body", err.Error())
		return
	}

	if input.Password == "" || input.Password != config.AppConfig.AdminPassword {
		zap.L().Warn("admin login rejected", zap.String("ip", c.ClientIP()))
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Invalid password"})
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.AdminCookieName, "true", adminCookieMaxAge, "/", "", config.IsProduction(), true)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// LogoutHandler clears the session cookie and sends the operator back to the
// login page.
func LogoutHandler(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.AdminCookieName, "", -1, "/", "", config.IsProduction(), true)
	c.Redirect(http.StatusFound, "/login")
}
