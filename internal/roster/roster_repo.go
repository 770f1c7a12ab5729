package roster

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"net/url"

	"github.com/riftcup/gateway/internal/backend"
)

// Actor carries whichever credential the caller has for a privileged
// mutation. Exactly one of the fields is expected to be set: an admin token
// (replayed as X-Auth-Token), a captain session token (X-Session-Token), or
// the entry's own password (forwarded in the body for backend arbitration).
type Actor struct {
	AdminToken   string
	SessionToken string
	Password     string
}

// TeamUpdate is the mutable subset of a team record. The captain contact is
// the login identity and stays immutable, like the team password.
type TeamUpdate struct {
	TeamName        string `json:"teamName"`
	TopNick         string `json:"topNick"`
	TopTelegram     string `json:"topTelegram"`
	JungleNick      string `json:"jungleNick"`
	JungleTelegram  string `json:"jungleTelegram"`
	MidNick         string `json:"midNick"`
	MidTelegram     string `json:"midTelegram"`
	AdcNick         string `json:"adcNick"`
	AdcTelegram     string `json:"adcTelegram"`
	SupportNick     string `json:"supportNick"`
	SupportTelegram string `json:"supportTelegram"`
	Sub1Nick        string `json:"sub1Nick"`
	Sub1Telegram    string `json:"sub1Telegram"`
	Sub2Nick        string `json:"sub2Nick"`
	Sub2Telegram    string `json:"sub2Telegram"`
}

// RosterRepository wraps the teams and register endpoints.
//
// The Load* methods implement the documented fail-soft contract: on any
// failure (non-OK response, network error, bad JSON) they log and return the
// empty default so the UI degrades to "no data" instead of erroring.
type RosterRepository interface {
	LoadTeams(ctx context.Context, status string) []Team
	LoadPlayers(ctx context.Context) PlayerLists
	GetTeam(ctx context.Context, teamID int) (*Team, error)

	RegisterTeam(ctx context.Context, reg TeamRegistration) error
	RegisterPlayer(ctx context.Context, reg IndividualRegistration) error

	SetTeamStatus(ctx context.Context, teamID int, status, adminToken string) error
	SetPlayerStatus(ctx context.Context, playerID int, status, adminToken string) error

	UpdateTeam(ctx context.Context, teamID int, update TeamUpdate, actor Actor) error
	DeleteTeam(ctx context.Context, teamID int, actor Actor) error
	DeletePlayer(ctx context.Context, playerID int, actor Actor) error

	ClearAllApplications(ctx context.Context, superAdminToken string) (*ClearAllResult, error)
}

type httpRosterRepository struct {
	client *backend.Client
}

// NewRosterRepository creates a RosterRepository backed by the remote endpoints.
func NewRosterRepository(client *backend.Client) RosterRepository {
	return &httpRosterRepository{client: client}
}

func (r *httpRosterRepository) LoadTeams(ctx context.Context, status string) []Team {
	var resp struct {
		Teams []Team `json:"teams"`
	}

	err := r.client.Do(ctx, backend.Request{
		Method: http.MethodGet,
		URL:    r.client.TeamsURL,
		Query:  url.Values{"status": {status}},
	}, &resp)
	if err != nil {
		log.Printf("load teams (status=%s) degraded to empty list: %v", status, err)
		return []Team{}
	}
	if resp.Teams == nil {
		return []Team{}
	}
	return resp.Teams
}

func (r *httpRosterRepository) LoadPlayers(ctx context.Context) PlayerLists {
	lists := PlayerLists{Approved: []Player{}, Pending: []Player{}}

	var resp struct {
		Players []Player `json:"players"`
	}
	err := r.client.Do(ctx, backend.Request{
		Method: http.MethodGet,
		URL:    r.client.TeamsURL,
		Query:  url.Values{"type": {"individual"}},
	}, &resp)
	if err != nil {
		log.Printf("load players degraded to empty lists: %v", err)
		return lists
	}

	for _, p := range resp.Players {
		switch p.Status {
		case StatusApproved:
			lists.Approved = append(lists.Approved, p)
		case StatusPending:
			lists.Pending = append(lists.Pending, p)
		}
	}
	return lists
}

func (r *httpRosterRepository) GetTeam(ctx context.Context, teamID int) (*Team, error) {
	var resp struct {
		Team *Team `json:"team"`
	}
	err := r.client.Do(ctx, backend.Request{
		Method: http.MethodGet,
		URL:    r.client.TeamsURL,
		Query:  url.Values{"teamId": {fmt.Sprint(teamID)}},
	}, &resp)
	if err != nil {
		return nil, fmt.Errorf("get team %d: %w", teamID, err)
	}
	if resp.Team == nil {
		return nil, fmt.Errorf("get team %d: empty response", teamID)
	}
	return resp.Team, nil
}

func (r *httpRosterRepository) RegisterTeam(ctx context.Context, reg TeamRegistration) error {
	err := r.client.Do(ctx, backend.Request{
		Method: http.MethodPost,
		URL:    r.client.RegisterURL,
		Body:   reg,
	}, nil)
	if err != nil {
		return fmt.Errorf("register team: %w", err)
	}
	return nil
}

func (r *httpRosterRepository) RegisterPlayer(ctx context.Context, reg IndividualRegistration) error {
	err := r.client.Do(ctx, backend.Request{
		Method: http.MethodPost,
		URL:    r.client.RegisterURL,
		Body:   reg,
	}, nil)
	if err != nil {
		return fmt.Errorf("register player: %w", err)
	}
	return nil
}

func (r *httpRosterRepository) SetTeamStatus(ctx context.Context, teamID int, status, adminToken string) error {
	err := r.client.Do(ctx, backend.Request{
		Method: http.MethodPut,
		URL:    r.client.TeamsURL,
		Header: backend.AuthHeader(backend.HeaderAuthToken, adminToken),
		Body: map[string]interface{}{
			"teamId": teamID,
			"status": status,
		},
	}, nil)
	if err != nil {
		return fmt.Errorf("set team %d status %s: %w", teamID, status, err)
	}
	return nil
}

func (r *httpRosterRepository) SetPlayerStatus(ctx context.Context, playerID int, status, adminToken string) error {
	err := r.client.Do(ctx, backend.Request{
		Method: http.MethodPut,
		URL:    r.client.TeamsURL,
		Header: backend.AuthHeader(backend.HeaderAuthToken, adminToken),
		Body: map[string]interface{}{
			"playerId": playerID,
			"status":   status,
		},
	}, nil)
	if err != nil {
		return fmt.Errorf("set player %d status %s: %w", playerID, status, err)
	}
	return nil
}

func (r *httpRosterRepository) UpdateTeam(ctx context.Context, teamID int, update TeamUpdate, actor Actor) error {
	body := map[string]interface{}{
		"action":          "update",
		"teamId":          teamID,
		"teamName":        update.TeamName,
		"topNick":         update.TopNick,
		"topTelegram":     update.TopTelegram,
		"jungleNick":      update.JungleNick,
		"jungleTelegram":  update.JungleTelegram,
		"midNick":         update.MidNick,
		"midTelegram":     update.MidTelegram,
		"adcNick":         update.AdcNick,
		"adcTelegram":     update.AdcTelegram,
		"supportNick":     update.SupportNick,
		"supportTelegram": update.SupportTelegram,
		"sub1Nick":        update.Sub1Nick,
		"sub1Telegram":    update.Sub1Telegram,
		"sub2Nick":        update.Sub2Nick,
		"sub2Telegram":    update.Sub2Telegram,
	}
	if actor.Password != "" {
		body["password"] = actor.Password
	}

	header := http.Header{}
	if actor.AdminToken != "" {
		header.Set(backend.HeaderAuthToken, actor.AdminToken)
	}
	if actor.SessionToken != "" {
		header.Set(backend.HeaderSessionToken, actor.SessionToken)
	}

	err := r.client.Do(ctx, backend.Request{
		Method: http.MethodPut,
		URL:    r.client.TeamsURL,
		Header: header,
		Body:   body,
	}, nil)
	if err != nil {
		return fmt.Errorf("update team %d: %w", teamID, err)
	}
	return nil
}

func (r *httpRosterRepository) DeleteTeam(ctx context.Context, teamID int, actor Actor) error {
	return r.deleteEntry(ctx, "team", teamID, actor)
}

func (r *httpRosterRepository) DeletePlayer(ctx context.Context, playerID int, actor Actor) error {
	return r.deleteEntry(ctx, "player", playerID, actor)
}

// deleteEntry follows the two delete paths the backend supports: an admin
// token with adminAction, or the entry's own password.
func (r *httpRosterRepository) deleteEntry(ctx context.Context, entryType string, id int, actor Actor) error {
	var header http.Header
	body := map[string]interface{}{
		"id":   id,
		"type": entryType,
	}
	if actor.AdminToken != "" {
		header = backend.AuthHeader(backend.HeaderAuthToken, actor.AdminToken)
		body["adminAction"] = true
	} else {
		body["password"] = actor.Password
	}

	err := r.client.Do(ctx, backend.Request{
		Method: http.MethodDelete,
		URL:    r.client.TeamsURL,
		Header: header,
		Body:   body,
	}, nil)
	if err != nil {
		return fmt.Errorf("delete %s %d: %w", entryType, id, err)
	}
	return nil
}

func (r *httpRosterRepository) ClearAllApplications(ctx context.Context, superAdminToken string) (*ClearAllResult, error) {
	var resp struct {
		Success        bool `json:"success"`
		DeletedTeams   int  `json:"deletedTeams"`
		DeletedPlayers int  `json:"deletedPlayers"`
	}
	err := r.client.Do(ctx, backend.Request{
		Method: http.MethodDelete,
		URL:    r.client.TeamsURL,
		Header: backend.AuthHeader(backend.HeaderAuthToken, superAdminToken),
		Body:   map[string]string{"action": "clear_all"},
	}, &resp)
	if err != nil {
		return nil, fmt.Errorf("clear all applications: %w", err)
	}
	return &ClearAllResult{
		DeletedTeams:   resp.DeletedTeams,
		DeletedPlayers: resp.DeletedPlayers,
	}, nil
}
