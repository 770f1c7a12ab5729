package settings

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/riftcup/gateway/internal/backend"
	"github.com/riftcup/gateway/internal/middleware"
	"github.com/riftcup/gateway/pkg/responses"

	"github.com/gin-gonic/gin"
)

// SettingsController serves the public site configuration and the admin
// editors for it.
type SettingsController struct {
	repo SettingsRepository
}

func NewSettingsController(repo SettingsRepository) *SettingsController {
	return &SettingsController{repo: repo}
}

// RegistrationRequest toggles whether new applications are accepted.
type RegistrationRequest struct {
	Open *bool `json:"open" binding:"required"`
}

// BracketRequest sets the embedded bracket URL. An empty string hides the
// bracket page content.
type BracketRequest struct {
	URL string `json:"url"`
}

// HomeRequest is the home page editor payload. Fields are written to the
// backend one key at a time, in declaration order.
type HomeRequest struct {
	Title       string      `json:"title" binding:"required"`
	Subtitle    string      `json:"subtitle" binding:"required"`
	Description string      `json:"description" binding:"required"`
	InfoBlocks  []InfoBlock `json:"infoBlocks"`
}

// GetSettings godoc
// @Summary Get the site configuration
// @Tags settings
// @Produce json
// @Success 200 {object} responses.SuccessResponse
// @Router /settings [get]
func (ctrl *SettingsController) GetSettings(c *gin.Context) {
	loaded := ctrl.repo.Load(c.Request.Context())
	responses.SendSuccess(c, http.StatusOK, "", loaded)
}

// SetRegistration godoc
// @Summary Open or close registration
// @Tags settings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body RegistrationRequest true "Registration flag"
// @Success 200 {object} responses.SuccessResponse
// @Router /admin/settings/registration [put]
func (ctrl *SettingsController) SetRegistration(c *gin.Context) {
	var req RegistrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ValidationFailed(c, err)
		return
	}

	claims, err := middleware.GetClaims(c)
	if err != nil {
		responses.Unauthorized(c, "")
		return
	}
	if err := ctrl.repo.Put(c.Request.Context(), KeyRegistrationOpen, strconv.FormatBool(*req.Open), claims.BackendToken); err != nil {
		responses.BadGateway(c, backend.UserMessage(err, "Не удалось изменить настройку регистрации"))
		return
	}

	message := "Регистрация закрыта"
	if *req.Open {
		message = "Регистрация открыта"
	}
	responses.SendSuccess(c, http.StatusOK, message, gin.H{"registrationOpen": *req.Open})
}

// SetBracket godoc
// @Summary Set the tournament bracket URL
// @Tags settings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body BracketRequest true "Bracket URL"
// @Success 200 {object} responses.SuccessResponse
// @Router /admin/settings/bracket [put]
func (ctrl *SettingsController) SetBracket(c *gin.Context) {
	var req BracketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	claims, err := middleware.GetClaims(c)
	if err != nil {
		responses.Unauthorized(c, "")
		return
	}
	if err := ctrl.repo.Put(c.Request.Context(), KeyChallongeURL, req.URL, claims.BackendToken); err != nil {
		responses.BadGateway(c, backend.UserMessage(err, "Не удалось сохранить ссылку на сетку"))
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Ссылка на сетку сохранена", nil)
}

// UpdateHome godoc
// @Summary Edit the home page texts
// @Description Writes title, subtitle, description and info blocks as separate keys, stopping at the first failure. Earlier writes are not rolled back.
// @Tags settings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body HomeRequest true "Home page content"
// @Success 200 {object} responses.SuccessResponse
// @Failure 502 {object} responses.ErrorResponse
// @Router /admin/settings/home [put]
func (ctrl *SettingsController) UpdateHome(c *gin.Context) {
	var req HomeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ValidationFailed(c, err)
		return
	}
	if req.InfoBlocks == nil {
		req.InfoBlocks = []InfoBlock{}
	}
	blocks, err := json.Marshal(req.InfoBlocks)
	if err != nil {
		responses.BadRequest(c, "Invalid info blocks")
		return
	}

	claims, err := middleware.GetClaims(c)
	if err != nil {
		responses.Unauthorized(c, "")
		return
	}

	writes := []struct {
		key   string
		value string
	}{
		{KeyHomeTitle, req.Title},
		{KeyHomeSubtitle, req.Subtitle},
		{KeyHomeDescription, req.Description},
		{KeyHomeInfoBlocks, string(blocks)},
	}
	for _, w := range writes {
		if err := ctrl.repo.Put(c.Request.Context(), w.key, w.value, claims.BackendToken); err != nil {
			responses.BadGateway(c, backend.UserMessage(err, "Не удалось сохранить поле "+w.key))
			return
		}
	}
	responses.SendSuccess(c, http.StatusOK, "Главная страница обновлена", nil)
}

// UpdateTournamentInfo godoc
// @Summary Edit the tournament info block
// @Tags settings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body object true "Tournament info key/value pairs"
// @Success 200 {object} responses.SuccessResponse
// @Router /admin/settings/tournament-info [put]
func (ctrl *SettingsController) UpdateTournamentInfo(c *gin.Context) {
	var info map[string]interface{}
	if err := c.ShouldBindJSON(&info); err != nil {
		responses.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}
	encoded, err := json.Marshal(info)
	if err != nil {
		responses.BadRequest(c, "Invalid tournament info")
		return
	}

	claims, err := middleware.GetClaims(c)
	if err != nil {
		responses.Unauthorized(c, "")
		return
	}
	if err := ctrl.repo.Put(c.Request.Context(), KeyTournamentInfo, string(encoded), claims.BackendToken); err != nil {
		responses.BadGateway(c, backend.UserMessage(err, "Не удалось сохранить информацию о турнире"))
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Информация о турнире сохранена", nil)
}
