package session

import (
	"log"
	"net/http"

	"github.com/riftcup/gateway/config"
	"github.com/riftcup/gateway/internal/middleware"
	"github.com/riftcup/gateway/pkg/token"
	"github.com/gin-gonic/gin"
)

type SessionController struct {
	strategies []Strategy
	config     *config.Config
}

func NewSessionController(repo AuthRepository, cfg *config.Config) *SessionController {
	return &SessionController{
		strategies: DefaultStrategies(repo),
		config:     cfg,
	}
}

// LoginRequest carries the single shared login form: admins use a username,
// captains and players their telegram handle. One field serves both.
type LoginRequest struct {
	Login    string `json:"login" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse is what the UI stores for the lifetime of the session.
type LoginResponse struct {
	Success  bool   `json:"success"`
	Token    string `json:"token"`
	Username string `json:"username"`
	Role     string `json:"role"`
	TeamID   *int   `json:"teamId,omitempty"`
}

// @Summary      Log in
// @Description  Tries the admin auth endpoint first, then falls back to the user auth endpoint. Single attempt, no retries.
// @Tags         Session
// @Accept       json
// @Produce      json
// @Param        credentials  body  LoginRequest  true  "Login credentials"
// @Success      200   {object} LoginResponse "Session token and role"
// @Failure      400   {object} map[string]string "Invalid input"
// @Failure      401   {object} map[string]string "Both endpoints rejected the credentials"
// @Failure      502   {object} map[string]string "Backend unreachable"
// @Router       /auth/login [post]
func (sc *SessionController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	outcome, err := Login(c.Request.Context(), sc.strategies, req.Login, req.Password)
	if err == ErrInvalidCredentials {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Неверный логин или пароль"})
		return
	}
	if err != nil {
		log.Printf("login failed: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"success": false, "error": "Не удалось выполнить вход"})
		return
	}

	role, backendToken, teamID := sc.sessionFields(outcome)

	sessionToken, err := token.GenerateSession(
		outcome.DisplayName(), role, backendToken, teamID,
		sc.config.Session.Secret, sc.config.Session.ExpiryMinutes,
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Не удалось создать сессию"})
		return
	}

	c.JSON(http.StatusOK, LoginResponse{
		Success:  true,
		Token:    sessionToken,
		Username: outcome.DisplayName(),
		Role:     role,
		TeamID:   teamID,
	})
}

// sessionFields flattens an outcome into the claim fields. The distinguished
// super-admin username is promoted regardless of what the backend reports.
func (sc *SessionController) sessionFields(outcome *Outcome) (role, backendToken string, teamID *int) {
	switch outcome.Kind {
	case KindAdmin:
		role = outcome.Admin.Role
		if role == "" {
			role = token.RoleAdmin
		}
		if outcome.Admin.Username == sc.config.Admin.SuperAdminUsername {
			role = token.RoleSuperAdmin
		}
		backendToken = outcome.Admin.Token
	case KindUser:
		role = outcome.User.UserType
		backendToken = outcome.User.Token
		if outcome.User.UserType == token.RoleTeamCaptain {
			teamID = outcome.User.TeamID
		}
	}
	return role, backendToken, teamID
}

// @Summary      Log out
// @Description  Sessions are stateless; the backend keeps no revocation list, so logout just tells the client to drop its token.
// @Tags         Session
// @Produce      json
// @Success      200 {object} map[string]interface{} "Logged out"
// @Router       /auth/logout [post]
func (sc *SessionController) Logout(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Выход выполнен"})
}

// @Summary      Current session
// @Description  Echoes the session claims so the UI can restore its panels after a reload.
// @Tags         Session
// @Security     BearerAuth
// @Produce      json
// @Success      200 {object} map[string]interface{} "Session claims"
// @Failure      401 {object} map[string]string "No valid session"
// @Router       /auth/me [get]
func (sc *SessionController) Me(c *gin.Context) {
	claims, err := middleware.GetClaims(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"username": claims.Username,
		"role":     claims.Role,
		"teamId":   claims.TeamID,
	})
}
