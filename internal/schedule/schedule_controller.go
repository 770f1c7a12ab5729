package schedule

import (
	"net/http"
	"strconv"

	"github.com/riftcup/gateway/internal/backend"
	"github.com/riftcup/gateway/internal/middleware"
	"github.com/riftcup/gateway/pkg/responses"

	"github.com/gin-gonic/gin"
)

// ScheduleController serves the public schedule view and the admin match CRUD.
type ScheduleController struct {
	repo ScheduleRepository
}

func NewScheduleController(repo ScheduleRepository) *ScheduleController {
	return &ScheduleController{repo: repo}
}

// PublishRequest flips the schedule's public visibility.
type PublishRequest struct {
	Published *bool `json:"published" binding:"required"`
}

// GetSchedule godoc
// @Summary Get the match schedule grouped by day
// @Description Public callers see the published schedule only; admin sessions always see it.
// @Tags schedule
// @Produce json
// @Success 200 {object} responses.SuccessResponse
// @Router /schedule [get]
func (ctrl *ScheduleController) GetSchedule(c *gin.Context) {
	adminToken := ""
	if claims := middleware.MaybeClaims(c); claims != nil && claims.IsAdmin() {
		adminToken = claims.BackendToken
	}

	matches := ctrl.repo.LoadMatches(c.Request.Context(), adminToken)
	responses.SendSuccess(c, http.StatusOK, "", gin.H{
		"days":    GroupByDate(matches),
		"matches": matches,
	})
}

// GetPublished godoc
// @Summary Check whether the schedule is published
// @Tags schedule
// @Produce json
// @Success 200 {object} responses.SuccessResponse
// @Router /schedule/published [get]
func (ctrl *ScheduleController) GetPublished(c *gin.Context) {
	published := ctrl.repo.IsPublished(c.Request.Context())
	responses.SendSuccess(c, http.StatusOK, "", gin.H{"published": published})
}

// CreateMatch godoc
// @Summary Create a match
// @Tags schedule
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param match body MatchForm true "Match form"
// @Success 201 {object} responses.SuccessResponse
// @Failure 400 {object} responses.ErrorResponse
// @Router /admin/matches [post]
func (ctrl *ScheduleController) CreateMatch(c *gin.Context) {
	var form MatchForm
	if err := c.ShouldBindJSON(&form); err != nil {
		responses.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}
	if err := form.Validate(); err != nil {
		responses.BadRequest(c, err.Error())
		return
	}

	claims, err := middleware.GetClaims(c)
	if err != nil {
		responses.Unauthorized(c, "")
		return
	}
	if err := ctrl.repo.CreateMatch(c.Request.Context(), form.Payload(), claims.BackendToken); err != nil {
		responses.BadGateway(c, backend.UserMessage(err, "Не удалось создать матч"))
		return
	}
	responses.SendSuccess(c, http.StatusCreated, "Матч создан", nil)
}

// UpdateMatch godoc
// @Summary Update a match's status, score or stream link
// @Tags schedule
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Match ID"
// @Param match body MatchUpdate true "Updated fields"
// @Success 200 {object} responses.SuccessResponse
// @Router /admin/matches/{id} [put]
func (ctrl *ScheduleController) UpdateMatch(c *gin.Context) {
	matchID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		responses.BadRequest(c, "Invalid match ID format")
		return
	}
	var update MatchUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		responses.ValidationFailed(c, err)
		return
	}

	claims, err := middleware.GetClaims(c)
	if err != nil {
		responses.Unauthorized(c, "")
		return
	}
	if err := ctrl.repo.UpdateMatch(c.Request.Context(), matchID, update, claims.BackendToken); err != nil {
		responses.BadGateway(c, backend.UserMessage(err, "Не удалось обновить матч"))
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Матч обновлён", nil)
}

// DeleteMatch godoc
// @Summary Delete a match
// @Description Requires the confirm=true query parameter.
// @Tags schedule
// @Produce json
// @Security BearerAuth
// @Param id path int true "Match ID"
// @Param confirm query bool true "Confirmation flag"
// @Success 200 {object} responses.SuccessResponse
// @Router /admin/matches/{id} [delete]
func (ctrl *ScheduleController) DeleteMatch(c *gin.Context) {
	matchID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		responses.BadRequest(c, "Invalid match ID format")
		return
	}
	if c.Query("confirm") != "true" {
		responses.BadRequest(c, "Deletion requires confirm=true")
		return
	}

	claims, err := middleware.GetClaims(c)
	if err != nil {
		responses.Unauthorized(c, "")
		return
	}
	if err := ctrl.repo.DeleteMatch(c.Request.Context(), matchID, claims.BackendToken); err != nil {
		responses.BadGateway(c, backend.UserMessage(err, "Не удалось удалить матч"))
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Матч удалён", nil)
}

// ClearSchedule godoc
// @Summary Delete every match
// @Description Requires the confirm=true query parameter.
// @Tags schedule
// @Produce json
// @Security BearerAuth
// @Param confirm query bool true "Confirmation flag"
// @Success 200 {object} responses.SuccessResponse
// @Router /admin/matches [delete]
func (ctrl *ScheduleController) ClearSchedule(c *gin.Context) {
	if c.Query("confirm") != "true" {
		responses.BadRequest(c, "Clearing the schedule requires confirm=true")
		return
	}

	claims, err := middleware.GetClaims(c)
	if err != nil {
		responses.Unauthorized(c, "")
		return
	}
	if err := ctrl.repo.ClearSchedule(c.Request.Context(), claims.BackendToken); err != nil {
		responses.BadGateway(c, backend.UserMessage(err, "Не удалось очистить расписание"))
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Расписание очищено", nil)
}

// SetPublished godoc
// @Summary Publish or hide the schedule
// @Tags schedule
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body PublishRequest true "Publish flag"
// @Success 200 {object} responses.SuccessResponse
// @Router /admin/schedule/publish [put]
func (ctrl *ScheduleController) SetPublished(c *gin.Context) {
	var req PublishRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ValidationFailed(c, err)
		return
	}

	claims, err := middleware.GetClaims(c)
	if err != nil {
		responses.Unauthorized(c, "")
		return
	}
	if err := ctrl.repo.SetPublished(c.Request.Context(), *req.Published, claims.BackendToken); err != nil {
		responses.BadGateway(c, backend.UserMessage(err, "Не удалось изменить видимость расписания"))
		return
	}

	message := "Расписание скрыто"
	if *req.Published {
		message = "Расписание опубликовано"
	}
	responses.SendSuccess(c, http.StatusOK, message, gin.H{"published": *req.Published})
}
