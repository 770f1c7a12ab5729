package roster

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/riftcup/gateway/config"
	"github.com/riftcup/gateway/internal/middleware"
	"github.com/riftcup/gateway/pkg/token"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubRosterRepo counts calls so tests can assert nothing went upstream.
type stubRosterRepo struct {
	calls int
	teams []Team
}

func (s *stubRosterRepo) LoadTeams(ctx context.Context, status string) []Team {
	s.calls++
	return s.teams
}
func (s *stubRosterRepo) LoadPlayers(ctx context.Context) PlayerLists {
	s.calls++
	return PlayerLists{
		Approved: []Player{{ID: 1, Nickname: "A", Status: StatusApproved}},
		Pending:  []Player{{ID: 2, Nickname: "B", Status: StatusPending}},
	}
}
func (s *stubRosterRepo) GetTeam(ctx context.Context, teamID int) (*Team, error) {
	s.calls++
	return &Team{ID: teamID}, nil
}
func (s *stubRosterRepo) RegisterTeam(ctx context.Context, reg TeamRegistration) error {
	s.calls++
	return nil
}
func (s *stubRosterRepo) RegisterPlayer(ctx context.Context, reg IndividualRegistration) error {
	s.calls++
	return nil
}
func (s *stubRosterRepo) SetTeamStatus(ctx context.Context, teamID int, status, adminToken string) error {
	s.calls++
	return nil
}
func (s *stubRosterRepo) SetPlayerStatus(ctx context.Context, playerID int, status, adminToken string) error {
	s.calls++
	return nil
}
func (s *stubRosterRepo) UpdateTeam(ctx context.Context, teamID int, update TeamUpdate, actor Actor) error {
	s.calls++
	return nil
}
func (s *stubRosterRepo) DeleteTeam(ctx context.Context, teamID int, actor Actor) error {
	s.calls++
	return nil
}
func (s *stubRosterRepo) DeletePlayer(ctx context.Context, playerID int, actor Actor) error {
	s.calls++
	return nil
}
func (s *stubRosterRepo) ClearAllApplications(ctx context.Context, superAdminToken string) (*ClearAllResult, error) {
	s.calls++
	return &ClearAllResult{}, nil
}

func rosterRouter(repo RosterRepository, claims *token.Claims) *gin.Engine {
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{}
	controller := NewRosterController(repo, cfg)

	r := gin.New()
	if claims != nil {
		r.Use(func(c *gin.Context) {
			c.Set(middleware.AuthClaimsKey, claims)
		})
	}
	r.GET("/teams", controller.ListTeams)
	r.GET("/players", controller.ListPlayers)
	r.PUT("/teams/:id", controller.UpdateTeam)
	r.POST("/register/team", controller.RegisterTeam)
	r.POST("/register/player", controller.RegisterPlayer)
	return r
}

func TestPendingQueueRequiresAdmin(t *testing.T) {
	repo := &stubRosterRepo{}
	router := rosterRouter(repo, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/teams?status=pending", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Zero(t, repo.calls)
}

func TestPendingQueueVisibleToAdmin(t *testing.T) {
	repo := &stubRosterRepo{teams: []Team{{ID: 1, TeamName: "Alpha", Status: StatusPending}}}
	router := rosterRouter(repo, &token.Claims{Role: token.RoleAdmin, BackendToken: "tok"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/teams?status=pending", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Alpha")
}

func TestPendingPlayersHiddenFromAnonymous(t *testing.T) {
	router := rosterRouter(&stubRosterRepo{}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/players", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"A"`)
	assert.NotContains(t, w.Body.String(), `"B"`, "pending players leak to anonymous callers")
}

func TestRegisterTeamValidatesBeforeUpstream(t *testing.T) {
	repo := &stubRosterRepo{}
	router := rosterRouter(repo, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/register/team", strings.NewReader(
		`{"teamName":"Alpha","captainNick":"Cap","captainTelegram":"@cap","password":"short","confirmPassword":"short"}`))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Пароль должен быть не менее 6 символов")
	assert.Zero(t, repo.calls, "invalid forms must never reach the backend")
}

func TestRegisterTeamSuccessMessage(t *testing.T) {
	repo := &stubRosterRepo{}
	router := rosterRouter(repo, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/register/team", strings.NewReader(
		`{"teamName":"Alpha","captainNick":"Cap","captainTelegram":"@cap","password":"secret1","confirmPassword":"secret1"}`))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "Команда зарегистрирована!")
	assert.Equal(t, 1, repo.calls)
}

func TestRegisterPlayerValidatesRoles(t *testing.T) {
	repo := &stubRosterRepo{}
	router := rosterRouter(repo, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/register/player", strings.NewReader(
		`{"nickname":"Solo","telegram":"@solo","preferredRoles":[]}`))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Заполните все поля и выберите роли")
	assert.Zero(t, repo.calls)
}

func TestUpdateTeamAnonymousNeedsPassword(t *testing.T) {
	repo := &stubRosterRepo{}
	router := rosterRouter(repo, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/teams/5", strings.NewReader(`{"teamName":"New"}`))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Введите пароль")
	assert.Zero(t, repo.calls)
}

func TestUpdateTeamCaptainLimitedToOwnTeam(t *testing.T) {
	teamID := 5
	claims := &token.Claims{Role: token.RoleTeamCaptain, BackendToken: "sess", TeamID: &teamID}
	repo := &stubRosterRepo{}
	router := rosterRouter(repo, claims)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/teams/6", strings.NewReader(`{"teamName":"New"}`))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Zero(t, repo.calls)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPut, "/teams/5", strings.NewReader(`{"teamName":"New"}`))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, repo.calls)
}
