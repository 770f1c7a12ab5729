package roster

import (
	"net/http"
	"strconv"

	"github.com/riftcup/gateway/config"
	"github.com/riftcup/gateway/internal/backend"
	"github.com/riftcup/gateway/internal/middleware"
	"github.com/riftcup/gateway/internal/session"
	"github.com/riftcup/gateway/pkg/responses"
	"github.com/riftcup/gateway/pkg/token"

	"github.com/gin-gonic/gin"
)

// RosterController handles team and player listing, registration, moderation
// and self-service editing.
type RosterController struct {
	repo   RosterRepository
	config *config.Config
}

func NewRosterController(repo RosterRepository, appConfig *config.Config) *RosterController {
	return &RosterController{repo: repo, config: appConfig}
}

// StatusRequest is the moderation payload for teams and players.
type StatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending approved rejected"`
}

// TeamUpdateRequest is the team edit payload. Password is only consulted when
// the caller has no admin or captain session.
type TeamUpdateRequest struct {
	TeamUpdate
	Password string `json:"password"`
}

// DeleteRequest carries the self-service password for a delete without a
// privileged session.
type DeleteRequest struct {
	Password string `json:"password"`
}

// ListTeams godoc
// @Summary List teams by moderation status
// @Description Returns approved teams for everyone; the pending queue requires an admin session.
// @Tags teams
// @Produce json
// @Param status query string false "Moderation status" Enums(approved, pending) default(approved)
// @Success 200 {object} responses.SuccessResponse
// @Failure 403 {object} responses.ErrorResponse
// @Router /teams [get]
func (ctrl *RosterController) ListTeams(c *gin.Context) {
	status := c.DefaultQuery("status", StatusApproved)
	if status != StatusApproved && status != StatusPending {
		responses.BadRequest(c, "Unknown status filter: "+status)
		return
	}
	if status == StatusPending {
		claims := middleware.MaybeClaims(c)
		if claims == nil || !claims.IsAdmin() {
			responses.Forbidden(c, "The pending queue is admin-only")
			return
		}
	}

	teams := ctrl.repo.LoadTeams(c.Request.Context(), status)
	responses.SendSuccess(c, http.StatusOK, "", gin.H{"teams": teams})
}

// GetTeam godoc
// @Summary Get a single team
// @Tags teams
// @Produce json
// @Param id path int true "Team ID"
// @Success 200 {object} responses.SuccessResponse
// @Failure 404 {object} responses.ErrorResponse
// @Router /teams/{id} [get]
func (ctrl *RosterController) GetTeam(c *gin.Context) {
	teamID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		responses.BadRequest(c, "Invalid team ID format")
		return
	}

	team, err := ctrl.repo.GetTeam(c.Request.Context(), teamID)
	if err != nil {
		responses.NotFound(c, "Team")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "", gin.H{"team": team})
}

// ListPlayers godoc
// @Summary List individual players
// @Description Returns approved free agents. The pending list is filled only for admin sessions.
// @Tags players
// @Produce json
// @Success 200 {object} responses.SuccessResponse
// @Router /players [get]
func (ctrl *RosterController) ListPlayers(c *gin.Context) {
	lists := ctrl.repo.LoadPlayers(c.Request.Context())

	claims := middleware.MaybeClaims(c)
	if claims == nil || !claims.IsAdmin() {
		lists.Pending = []Player{}
	}
	responses.SendSuccess(c, http.StatusOK, "", lists)
}

// RegisterTeam godoc
// @Summary Submit a team registration
// @Tags register
// @Accept json
// @Produce json
// @Param team body TeamForm true "Team registration form"
// @Success 201 {object} responses.SuccessResponse
// @Failure 400 {object} responses.ErrorResponse
// @Router /register/team [post]
func (ctrl *RosterController) RegisterTeam(c *gin.Context) {
	var form TeamForm
	if err := c.ShouldBindJSON(&form); err != nil {
		responses.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}
	if err := form.Validate(); err != nil {
		responses.BadRequest(c, err.Error())
		return
	}

	if err := ctrl.repo.RegisterTeam(c.Request.Context(), form.Payload()); err != nil {
		responses.BadGateway(c, backend.UserMessage(err, "Не удалось зарегистрировать команду"))
		return
	}
	responses.SendSuccess(c, http.StatusCreated, "Команда зарегистрирована!", nil)
}

// RegisterPlayer godoc
// @Summary Submit a free-agent registration
// @Tags register
// @Accept json
// @Produce json
// @Param player body IndividualForm true "Individual registration form"
// @Success 201 {object} responses.SuccessResponse
// @Failure 400 {object} responses.ErrorResponse
// @Router /register/player [post]
func (ctrl *RosterController) RegisterPlayer(c *gin.Context) {
	var form IndividualForm
	if err := c.ShouldBindJSON(&form); err != nil {
		responses.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}
	if err := form.Validate(); err != nil {
		responses.BadRequest(c, err.Error())
		return
	}

	if err := ctrl.repo.RegisterPlayer(c.Request.Context(), form.Payload()); err != nil {
		responses.BadGateway(c, backend.UserMessage(err, "Не удалось зарегистрироваться"))
		return
	}
	responses.SendSuccess(c, http.StatusCreated, "Регистрация отправлена!", nil)
}

// SetTeamStatus godoc
// @Summary Moderate a team application
// @Tags teams
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Team ID"
// @Param status body StatusRequest true "New status"
// @Success 200 {object} responses.SuccessResponse
// @Router /teams/{id}/status [put]
func (ctrl *RosterController) SetTeamStatus(c *gin.Context) {
	teamID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		responses.BadRequest(c, "Invalid team ID format")
		return
	}
	var req StatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ValidationFailed(c, err)
		return
	}

	claims, err := middleware.GetClaims(c)
	if err != nil {
		responses.Unauthorized(c, "")
		return
	}
	if err := ctrl.repo.SetTeamStatus(c.Request.Context(), teamID, req.Status, claims.BackendToken); err != nil {
		responses.BadGateway(c, backend.UserMessage(err, "Не удалось обновить статус"))
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Статус обновлён", nil)
}

// SetPlayerStatus godoc
// @Summary Moderate an individual application
// @Tags players
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Player ID"
// @Param status body StatusRequest true "New status"
// @Success 200 {object} responses.SuccessResponse
// @Router /players/{id}/status [put]
func (ctrl *RosterController) SetPlayerStatus(c *gin.Context) {
	playerID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		responses.BadRequest(c, "Invalid player ID format")
		return
	}
	var req StatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ValidationFailed(c, err)
		return
	}

	claims, err := middleware.GetClaims(c)
	if err != nil {
		responses.Unauthorized(c, "")
		return
	}
	if err := ctrl.repo.SetPlayerStatus(c.Request.Context(), playerID, req.Status, claims.BackendToken); err != nil {
		responses.BadGateway(c, backend.UserMessage(err, "Не удалось обновить статус"))
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Статус обновлён", nil)
}

// UpdateTeam godoc
// @Summary Edit a team roster
// @Description Admins edit any team; a captain edits their own team; anyone else must supply the team password.
// @Tags teams
// @Accept json
// @Produce json
// @Param id path int true "Team ID"
// @Param team body TeamUpdateRequest true "Updated roster"
// @Success 200 {object} responses.SuccessResponse
// @Failure 400 {object} responses.ErrorResponse
// @Failure 403 {object} responses.ErrorResponse
// @Router /teams/{id} [put]
func (ctrl *RosterController) UpdateTeam(c *gin.Context) {
	teamID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		responses.BadRequest(c, "Invalid team ID format")
		return
	}
	var req TeamUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	actor, ok := ctrl.resolveActor(c, teamID, req.Password)
	if !ok {
		return
	}
	if err := ctrl.repo.UpdateTeam(c.Request.Context(), teamID, req.TeamUpdate, actor); err != nil {
		responses.BadGateway(c, backend.UserMessage(err, "Не удалось сохранить изменения"))
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Изменения сохранены", nil)
}

// DeleteTeam godoc
// @Summary Withdraw or remove a team application
// @Tags teams
// @Accept json
// @Produce json
// @Param id path int true "Team ID"
// @Param body body DeleteRequest false "Team password for self-service withdrawal"
// @Success 200 {object} responses.SuccessResponse
// @Router /teams/{id} [delete]
func (ctrl *RosterController) DeleteTeam(c *gin.Context) {
	ctrl.deleteEntry(c, "team")
}

// DeletePlayer godoc
// @Summary Withdraw or remove an individual application
// @Tags players
// @Accept json
// @Produce json
// @Param id path int true "Player ID"
// @Param body body DeleteRequest false "Registration password for self-service withdrawal"
// @Success 200 {object} responses.SuccessResponse
// @Router /players/{id} [delete]
func (ctrl *RosterController) DeletePlayer(c *gin.Context) {
	ctrl.deleteEntry(c, "player")
}

func (ctrl *RosterController) deleteEntry(c *gin.Context, entryType string) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		responses.BadRequest(c, "Invalid ID format")
		return
	}
	var req DeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		responses.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	var actor Actor
	capability, backendToken := session.Authorize(middleware.MaybeClaims(c))
	if capability == session.Authorized {
		actor.AdminToken = backendToken
	} else {
		if req.Password == "" {
			responses.BadRequest(c, "Введите пароль")
			return
		}
		actor.Password = req.Password
	}

	var deleteErr error
	if entryType == "team" {
		deleteErr = ctrl.repo.DeleteTeam(c.Request.Context(), id, actor)
	} else {
		deleteErr = ctrl.repo.DeletePlayer(c.Request.Context(), id, actor)
	}
	if deleteErr != nil {
		responses.BadGateway(c, backend.UserMessage(deleteErr, "Не удалось удалить заявку"))
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Заявка удалена", nil)
}

// resolveActor picks the credential for a team mutation. Admins act with the
// backend token, a captain acts with their session token on their own team
// only, everyone else needs the team password.
func (ctrl *RosterController) resolveActor(c *gin.Context, teamID int, password string) (Actor, bool) {
	claims := middleware.MaybeClaims(c)

	capability, backendToken := session.Authorize(claims)
	if capability == session.Authorized {
		return Actor{AdminToken: backendToken}, true
	}

	if claims != nil && claims.Role == token.RoleTeamCaptain {
		if claims.TeamID == nil || *claims.TeamID != teamID {
			responses.Forbidden(c, "Вы можете редактировать только свою команду")
			return Actor{}, false
		}
		return Actor{SessionToken: claims.BackendToken}, true
	}

	if password == "" {
		responses.BadRequest(c, "Введите пароль")
		return Actor{}, false
	}
	return Actor{Password: password}, true
}
