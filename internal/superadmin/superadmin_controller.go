package superadmin

import (
	"net/http"
	"strconv"

	"github.com/riftcup/gateway/config"
	"github.com/riftcup/gateway/internal/backend"
	"github.com/riftcup/gateway/internal/middleware"
	"github.com/riftcup/gateway/internal/roster"
	"github.com/riftcup/gateway/pkg/responses"

	"github.com/gin-gonic/gin"
)

// SuperAdminController is the account management and bulk wipe panel.
type SuperAdminController struct {
	accounts AccountRepository
	roster   roster.RosterRepository
	config   *config.Config
}

func NewSuperAdminController(accounts AccountRepository, rosterRepo roster.RosterRepository, appConfig *config.Config) *SuperAdminController {
	return &SuperAdminController{accounts: accounts, roster: rosterRepo, config: appConfig}
}

// CreateAdminRequest is the new-account payload. The six character minimum
// matches the registration password rule.
type CreateAdminRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
}

// DeleteAdminRequest names the account being deleted so the protected
// username is rejected without a network call. The backend enforces the same
// rule by id.
type DeleteAdminRequest struct {
	Username string `json:"username"`
}

// ListAdmins godoc
// @Summary List admin accounts
// @Tags superadmin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} responses.SuccessResponse
// @Router /admin/accounts [get]
func (ctrl *SuperAdminController) ListAdmins(c *gin.Context) {
	claims, err := middleware.GetClaims(c)
	if err != nil {
		responses.Unauthorized(c, "")
		return
	}

	admins, err := ctrl.accounts.ListAdmins(c.Request.Context(), claims.BackendToken)
	if err != nil {
		responses.BadGateway(c, backend.UserMessage(err, "Не удалось загрузить список администраторов"))
		return
	}
	responses.SendSuccess(c, http.StatusOK, "", gin.H{"admins": admins})
}

// CreateAdmin godoc
// @Summary Create an admin account
// @Tags superadmin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body CreateAdminRequest true "New account"
// @Success 201 {object} responses.SuccessResponse
// @Router /admin/accounts [post]
func (ctrl *SuperAdminController) CreateAdmin(c *gin.Context) {
	var req CreateAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ValidationFailed(c, err)
		return
	}

	claims, err := middleware.GetClaims(c)
	if err != nil {
		responses.Unauthorized(c, "")
		return
	}
	if err := ctrl.accounts.CreateAdmin(c.Request.Context(), req.Username, req.Password, claims.BackendToken); err != nil {
		responses.BadGateway(c, backend.UserMessage(err, "Не удалось создать администратора"))
		return
	}
	responses.SendSuccess(c, http.StatusCreated, "Администратор создан", nil)
}

// DeleteAdmin godoc
// @Summary Delete an admin account
// @Description The distinguished super admin account can never be deleted.
// @Tags superadmin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Admin ID"
// @Param body body DeleteAdminRequest false "Account username, checked against the protected name"
// @Success 200 {object} responses.SuccessResponse
// @Failure 403 {object} responses.ErrorResponse
// @Router /admin/accounts/{id} [delete]
func (ctrl *SuperAdminController) DeleteAdmin(c *gin.Context) {
	adminID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		responses.BadRequest(c, "Invalid admin ID format")
		return
	}
	var req DeleteAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		responses.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}
	if req.Username != "" && req.Username == ctrl.config.Admin.SuperAdminUsername {
		responses.Forbidden(c, "Этого администратора нельзя удалить")
		return
	}

	claims, err := middleware.GetClaims(c)
	if err != nil {
		responses.Unauthorized(c, "")
		return
	}
	if err := ctrl.accounts.DeleteAdmin(c.Request.Context(), adminID, claims.BackendToken); err != nil {
		responses.BadGateway(c, backend.UserMessage(err, "Не удалось удалить администратора"))
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Администратор удалён", nil)
}

// ClearApplications godoc
// @Summary Delete every team and player application
// @Description Requires both confirm=true and confirm_again=true query parameters.
// @Tags superadmin
// @Produce json
// @Security BearerAuth
// @Param confirm query bool true "First confirmation"
// @Param confirm_again query bool true "Second confirmation"
// @Success 200 {object} responses.SuccessResponse
// @Failure 400 {object} responses.ErrorResponse
// @Router /admin/applications [delete]
func (ctrl *SuperAdminController) ClearApplications(c *gin.Context) {
	if c.Query("confirm") != "true" || c.Query("confirm_again") != "true" {
		responses.BadRequest(c, "Wiping all applications requires confirm=true and confirm_again=true")
		return
	}

	claims, err := middleware.GetClaims(c)
	if err != nil {
		responses.Unauthorized(c, "")
		return
	}
	result, err := ctrl.roster.ClearAllApplications(c.Request.Context(), claims.BackendToken)
	if err != nil {
		responses.BadGateway(c, backend.UserMessage(err, "Не удалось удалить заявки"))
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Все заявки удалены", result)
}
