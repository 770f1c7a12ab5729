package schedule

// Match lifecycle. A match is created waiting; admins move it through live or
// playing to completed, where the winner and score become meaningful.
const (
	StatusWaiting   = "waiting"
	StatusLive      = "live"
	StatusPlaying   = "playing"
	StatusCompleted = "completed"
)

// Match mirrors the backend's match record. Team names are denormalized by
// the backend when the match is created, so the list renders without extra
// lookups.
type Match struct {
	ID           int    `json:"id"`
	MatchDate    string `json:"match_date"`
	MatchTime    string `json:"match_time"`
	Team1ID      int    `json:"team1_id"`
	Team2ID      int    `json:"team2_id"`
	Team1Name    string `json:"team1_name"`
	Team2Name    string `json:"team2_name"`
	Status       string `json:"status"`
	WinnerTeamID *int   `json:"winner_team_id"`
	ScoreTeam1   *int   `json:"score_team1"`
	ScoreTeam2   *int   `json:"score_team2"`
	Round        string `json:"round"`
	StreamURL    string `json:"stream_url"`
}

// MatchDay is one date's worth of matches in the public view.
type MatchDay struct {
	Date    string  `json:"date"`
	Matches []Match `json:"matches"`
}

// GroupByDate folds a flat match list into per-date groups. Day order follows
// the first occurrence of each date in the backend's list and matches keep
// their relative order; the backend already returns them sorted.
func GroupByDate(matches []Match) []MatchDay {
	days := []MatchDay{}
	index := map[string]int{}
	for _, m := range matches {
		i, ok := index[m.MatchDate]
		if !ok {
			i = len(days)
			index[m.MatchDate] = i
			days = append(days, MatchDay{Date: m.MatchDate})
		}
		days[i].Matches = append(days[i].Matches, m)
	}
	return days
}
