package settings

// Backend settings keys. Every value is stored as a string; booleans are the
// literals "true"/"false" and the structured values are JSON strings.
const (
	KeyRegistrationOpen = "registration_open"
	KeyChallongeURL     = "challonge_url"
	KeyHomeTitle        = "home_title"
	KeyHomeSubtitle     = "home_subtitle"
	KeyHomeDescription  = "home_description"
	KeyHomeInfoBlocks   = "home_info_blocks"
	KeyTournamentInfo   = "tournament_info"
)

// InfoBlock is one card on the home page.
type InfoBlock struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// SiteSettings is the decoded site configuration. Defaults returns the values
// used when the backend is unreachable or a key is missing.
type SiteSettings struct {
	RegistrationOpen bool                   `json:"registrationOpen"`
	ChallongeURL     string                 `json:"challongeUrl"`
	HomeTitle        string                 `json:"homeTitle"`
	HomeSubtitle     string                 `json:"homeSubtitle"`
	HomeDescription  string                 `json:"homeDescription"`
	HomeInfoBlocks   []InfoBlock            `json:"homeInfoBlocks"`
	TournamentInfo   map[string]interface{} `json:"tournamentInfo"`
}

// Defaults are what visitors see on a fresh deployment, and what every read
// degrades to when the settings endpoint fails.
func Defaults() SiteSettings {
	return SiteSettings{
		RegistrationOpen: true,
		ChallongeURL:     "",
		HomeTitle:        "League of Legends: Wild Rift",
		HomeSubtitle:     "Турнир 5x5",
		HomeDescription:  "Соберите команду и докажите своё мастерство в «Диком ущелье»",
		HomeInfoBlocks:   []InfoBlock{},
		TournamentInfo:   map[string]interface{}{},
	}
}
