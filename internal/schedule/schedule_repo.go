package schedule

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"net/url"

	"github.com/riftcup/gateway/internal/backend"
)

// ScheduleRepository wraps the schedule endpoint.
//
// LoadMatches and IsPublished follow the fail-soft read contract: failures
// degrade to an empty schedule or an unpublished flag and are only logged.
type ScheduleRepository interface {
	LoadMatches(ctx context.Context, adminToken string) []Match
	IsPublished(ctx context.Context) bool

	CreateMatch(ctx context.Context, create MatchCreate, adminToken string) error
	UpdateMatch(ctx context.Context, matchID int, update MatchUpdate, adminToken string) error
	DeleteMatch(ctx context.Context, matchID int, adminToken string) error
	ClearSchedule(ctx context.Context, adminToken string) error
	SetPublished(ctx context.Context, published bool, adminToken string) error
}

type httpScheduleRepository struct {
	client *backend.Client
}

func NewScheduleRepository(client *backend.Client) ScheduleRepository {
	return &httpScheduleRepository{client: client}
}

// LoadMatches fetches the match list. The admin token is optional: with it
// the backend returns the schedule even while unpublished, without it an
// unpublished schedule comes back empty.
func (r *httpScheduleRepository) LoadMatches(ctx context.Context, adminToken string) []Match {
	var matches []Match
	err := r.client.Do(ctx, backend.Request{
		Method: http.MethodGet,
		URL:    r.client.ScheduleURL,
		Header: backend.AuthHeader(backend.HeaderAdminToken, adminToken),
	}, &matches)
	if err != nil {
		log.Printf("load schedule degraded to empty list: %v", err)
		return []Match{}
	}
	if matches == nil {
		return []Match{}
	}
	return matches
}

func (r *httpScheduleRepository) IsPublished(ctx context.Context) bool {
	var resp struct {
		Published bool `json:"published"`
	}
	err := r.client.Do(ctx, backend.Request{
		Method: http.MethodGet,
		URL:    r.client.ScheduleURL,
		Query:  url.Values{"check_published": {"true"}},
	}, &resp)
	if err != nil {
		log.Printf("check schedule published degraded to false: %v", err)
		return false
	}
	return resp.Published
}

func (r *httpScheduleRepository) CreateMatch(ctx context.Context, create MatchCreate, adminToken string) error {
	err := r.client.Do(ctx, backend.Request{
		Method: http.MethodPost,
		URL:    r.client.ScheduleURL,
		Header: backend.AuthHeader(backend.HeaderAdminToken, adminToken),
		Body:   create,
	}, nil)
	if err != nil {
		return fmt.Errorf("create match: %w", err)
	}
	return nil
}

func (r *httpScheduleRepository) UpdateMatch(ctx context.Context, matchID int, update MatchUpdate, adminToken string) error {
	err := r.client.Do(ctx, backend.Request{
		Method: http.MethodPut,
		URL:    r.client.ScheduleURL,
		Header: backend.AuthHeader(backend.HeaderAdminToken, adminToken),
		Body: map[string]interface{}{
			"id":             matchID,
			"status":         update.Status,
			"winner_team_id": update.WinnerTeamID,
			"score_team1":    update.ScoreTeam1,
			"score_team2":    update.ScoreTeam2,
			"stream_url":     update.StreamURL,
		},
	}, nil)
	if err != nil {
		return fmt.Errorf("update match %d: %w", matchID, err)
	}
	return nil
}

func (r *httpScheduleRepository) DeleteMatch(ctx context.Context, matchID int, adminToken string) error {
	err := r.client.Do(ctx, backend.Request{
		Method: http.MethodDelete,
		URL:    r.client.ScheduleURL,
		Query:  url.Values{"id": {fmt.Sprint(matchID)}},
		Header: backend.AuthHeader(backend.HeaderAdminToken, adminToken),
	}, nil)
	if err != nil {
		return fmt.Errorf("delete match %d: %w", matchID, err)
	}
	return nil
}

func (r *httpScheduleRepository) ClearSchedule(ctx context.Context, adminToken string) error {
	err := r.client.Do(ctx, backend.Request{
		Method: http.MethodDelete,
		URL:    r.client.ScheduleURL,
		Query:  url.Values{"clear_all": {"true"}},
		Header: backend.AuthHeader(backend.HeaderAdminToken, adminToken),
	}, nil)
	if err != nil {
		return fmt.Errorf("clear schedule: %w", err)
	}
	return nil
}

func (r *httpScheduleRepository) SetPublished(ctx context.Context, published bool, adminToken string) error {
	err := r.client.Do(ctx, backend.Request{
		Method: http.MethodPut,
		URL:    r.client.ScheduleURL,
		Header: backend.AuthHeader(backend.HeaderAdminToken, adminToken),
		Body:   map[string]bool{"publish_schedule": published},
	}, nil)
	if err != nil {
		return fmt.Errorf("set schedule published=%t: %w", published, err)
	}
	return nil
}
