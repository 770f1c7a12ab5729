package schedule

import "strings"

// ValidationError is a client-side form rejection, raised before any network
// call.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// MatchForm is the admin create-match form. Teams are referenced by name; the
// backend resolves names to ids.
type MatchForm struct {
	MatchDate string `json:"match_date"`
	MatchTime string `json:"match_time"`
	Team1Name string `json:"team1_name"`
	Team2Name string `json:"team2_name"`
	Round     string `json:"round"`
	StreamURL string `json:"stream_url"`
}

func (f *MatchForm) Validate() error {
	if f.MatchDate == "" || f.MatchTime == "" || f.Team1Name == "" || f.Team2Name == "" || f.Round == "" {
		return &ValidationError{Message: "Заполните все поля матча"}
	}
	if strings.EqualFold(strings.TrimSpace(f.Team1Name), strings.TrimSpace(f.Team2Name)) {
		return &ValidationError{Message: "Команда не может играть сама с собой"}
	}
	return nil
}

// MatchCreate is the payload sent to the schedule endpoint. Every new match
// starts in the waiting state.
type MatchCreate struct {
	MatchDate string `json:"match_date"`
	MatchTime string `json:"match_time"`
	Team1Name string `json:"team1_name"`
	Team2Name string `json:"team2_name"`
	Round     string `json:"round"`
	StreamURL string `json:"stream_url"`
	Status    string `json:"status"`
}

func (f *MatchForm) Payload() MatchCreate {
	return MatchCreate{
		MatchDate: f.MatchDate,
		MatchTime: f.MatchTime,
		Team1Name: strings.TrimSpace(f.Team1Name),
		Team2Name: strings.TrimSpace(f.Team2Name),
		Round:     f.Round,
		StreamURL: f.StreamURL,
		Status:    StatusWaiting,
	}
}

// MatchUpdate is the admin edit payload. Winner and scores are pointers so an
// untouched field stays null instead of zero.
type MatchUpdate struct {
	Status       string `json:"status" binding:"required,oneof=waiting live playing completed"`
	WinnerTeamID *int   `json:"winner_team_id"`
	ScoreTeam1   *int   `json:"score_team1"`
	ScoreTeam2   *int   `json:"score_team2"`
	StreamURL    string `json:"stream_url"`
}
