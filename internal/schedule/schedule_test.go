package schedule

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/riftcup/gateway/config"
	"github.com/riftcup/gateway/internal/backend"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchFormValidate(t *testing.T) {
	form := MatchForm{
		MatchDate: "2025-06-01", MatchTime: "18:00",
		Team1Name: "Alpha", Team2Name: "Beta", Round: "Групповой этап",
	}
	assert.NoError(t, form.Validate())

	missing := form
	missing.Round = ""
	require.Error(t, missing.Validate())
	assert.Equal(t, "Заполните все поля матча", missing.Validate().Error())

	sameTeam := form
	sameTeam.Team2Name = " alpha "
	require.Error(t, sameTeam.Validate())
	assert.Equal(t, "Команда не может играть сама с собой", sameTeam.Validate().Error())
}

func TestMatchFormPayloadStartsWaiting(t *testing.T) {
	form := MatchForm{
		MatchDate: "2025-06-01", MatchTime: "18:00",
		Team1Name: " Alpha ", Team2Name: "Beta", Round: "Финал",
	}

	payload := form.Payload()
	assert.Equal(t, StatusWaiting, payload.Status)
	assert.Equal(t, "Alpha", payload.Team1Name)
}

func TestGroupByDateKeepsBackendOrder(t *testing.T) {
	matches := []Match{
		{ID: 1, MatchDate: "2025-06-02", Team1Name: "A", Team2Name: "B"},
		{ID: 2, MatchDate: "2025-06-01", Team1Name: "C", Team2Name: "D"},
		{ID: 3, MatchDate: "2025-06-02", Team1Name: "E", Team2Name: "F"},
	}

	days := GroupByDate(matches)
	require.Len(t, days, 2)
	assert.Equal(t, "2025-06-02", days[0].Date, "day order follows first occurrence, not calendar order")
	require.Len(t, days[0].Matches, 2)
	assert.Equal(t, 1, days[0].Matches[0].ID)
	assert.Equal(t, 3, days[0].Matches[1].ID)
	assert.Equal(t, "2025-06-01", days[1].Date)
}

func TestGroupByDateEmpty(t *testing.T) {
	days := GroupByDate(nil)
	require.NotNil(t, days)
	assert.Empty(t, days)
}

type recordedRequest struct {
	Method string
	Query  map[string]string
	Header http.Header
	Body   map[string]interface{}
}

func newFakeBackend(t *testing.T, status int, response string) (*httptest.Server, *[]recordedRequest) {
	t.Helper()
	var seen []recordedRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := recordedRequest{Method: r.Method, Query: map[string]string{}, Header: r.Header.Clone()}
		for key := range r.URL.Query() {
			rec.Query[key] = r.URL.Query().Get(key)
		}
		if r.Body != nil {
			json.NewDecoder(r.Body).Decode(&rec.Body)
		}
		seen = append(seen, rec)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		w.Write([]byte(response))
	}))
	return server, &seen
}

func repoFor(serverURL string) ScheduleRepository {
	cfg := &config.Config{}
	cfg.Backend.ScheduleURL = serverURL
	cfg.Backend.TimeoutSeconds = 5
	return NewScheduleRepository(backend.NewClient(cfg))
}

func TestLoadMatchesFailSoft(t *testing.T) {
	server, _ := newFakeBackend(t, http.StatusInternalServerError, `{"error":"boom"}`)
	defer server.Close()

	matches := repoFor(server.URL).LoadMatches(context.Background(), "")
	require.NotNil(t, matches)
	assert.Empty(t, matches)
}

func TestLoadMatchesSendsAdminToken(t *testing.T) {
	server, seen := newFakeBackend(t, http.StatusOK,
		`[{"id":1,"match_date":"2025-06-01","match_time":"18:00","team1_name":"A","team2_name":"B","status":"waiting","round":"Финал"}]`)
	defer server.Close()

	matches := repoFor(server.URL).LoadMatches(context.Background(), "admin-tok")
	require.Len(t, matches, 1)
	assert.Equal(t, StatusWaiting, matches[0].Status)
	assert.Equal(t, "admin-tok", (*seen)[0].Header.Get(backend.HeaderAdminToken))
}

func TestIsPublishedFailSoft(t *testing.T) {
	server, seen := newFakeBackend(t, http.StatusBadGateway, ``)
	defer server.Close()

	assert.False(t, repoFor(server.URL).IsPublished(context.Background()))
	assert.Equal(t, "true", (*seen)[0].Query["check_published"])
}

func TestCreateMatchPostsWaitingStatus(t *testing.T) {
	server, seen := newFakeBackend(t, http.StatusOK, `{"success":true}`)
	defer server.Close()

	form := MatchForm{
		MatchDate: "2025-06-01", MatchTime: "18:00",
		Team1Name: "Alpha", Team2Name: "Beta", Round: "Финал",
	}
	err := repoFor(server.URL).CreateMatch(context.Background(), form.Payload(), "admin-tok")
	require.NoError(t, err)

	req := (*seen)[0]
	assert.Equal(t, http.MethodPost, req.Method)
	assert.Equal(t, StatusWaiting, req.Body["status"])
	assert.Equal(t, "admin-tok", req.Header.Get(backend.HeaderAdminToken))
}

func TestUpdateMatchSendsScore(t *testing.T) {
	server, seen := newFakeBackend(t, http.StatusOK, `{"success":true}`)
	defer server.Close()

	winner, s1, s2 := 3, 2, 1
	err := repoFor(server.URL).UpdateMatch(context.Background(), 7, MatchUpdate{
		Status:       StatusCompleted,
		WinnerTeamID: &winner,
		ScoreTeam1:   &s1,
		ScoreTeam2:   &s2,
	}, "admin-tok")
	require.NoError(t, err)

	req := (*seen)[0]
	assert.Equal(t, float64(7), req.Body["id"])
	assert.Equal(t, StatusCompleted, req.Body["status"])
	assert.Equal(t, float64(3), req.Body["winner_team_id"])
}

func TestDeleteMatchUsesQueryID(t *testing.T) {
	server, seen := newFakeBackend(t, http.StatusOK, `{"success":true}`)
	defer server.Close()

	err := repoFor(server.URL).DeleteMatch(context.Background(), 7, "admin-tok")
	require.NoError(t, err)

	req := (*seen)[0]
	assert.Equal(t, http.MethodDelete, req.Method)
	assert.Equal(t, "7", req.Query["id"])
}

func TestClearScheduleUsesClearAllFlag(t *testing.T) {
	server, seen := newFakeBackend(t, http.StatusOK, `{"success":true}`)
	defer server.Close()

	err := repoFor(server.URL).ClearSchedule(context.Background(), "admin-tok")
	require.NoError(t, err)
	assert.Equal(t, "true", (*seen)[0].Query["clear_all"])
}

func TestSetPublishedBody(t *testing.T) {
	server, seen := newFakeBackend(t, http.StatusOK, `{"success":true}`)
	defer server.Close()

	err := repoFor(server.URL).SetPublished(context.Background(), true, "admin-tok")
	require.NoError(t, err)
	assert.Equal(t, true, (*seen)[0].Body["publish_schedule"])
}
