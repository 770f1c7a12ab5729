package roster

// Moderation status values shared by teams and individual players. An entry
// is owned by exactly one status at a time; rejected entries are effectively
// deleted and never shown again.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// Role labels used in the serialized players list. The backend stores what
// it receives; labels match the original registration form.
const (
	RoleLabelCaptain = "Капитан"
	RoleLabelTop     = "TOP"
	RoleLabelJungle  = "JUNGLE"
	RoleLabelMid     = "MID"
	RoleLabelADC     = "ADC"
	RoleLabelSupport = "SUPPORT"
	RoleLabelSub1    = "Запасной 1"
	RoleLabelSub2    = "Запасной 2"
)

// Team mirrors the backend's team record. Field names follow the backend's
// JSON; the password never appears here.
type Team struct {
	ID              int    `json:"id"`
	TeamName        string `json:"teamName"`
	CaptainNick     string `json:"captainNick"`
	CaptainTelegram string `json:"captainTelegram"`
	Status          string `json:"status"`
	CreatedAt       string `json:"createdAt"`
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
	// IsEdited flags teams a captain changed after approval; moderation
	// resets it on re-approval.
	IsEdited bool `json:"isEdited"`
}

// Player mirrors the backend's individual player record, friends flattened
// the way the backend stores them.
type Player struct {
	ID              int      `json:"id"`
	Nickname        string   `json:"nickname"`
	Telegram        string   `json:"telegram"`
	PreferredRoles  []string `json:"preferredRoles"`
	Status          string   `json:"status"`
	CreatedAt       string   `json:"createdAt"`
	HasFriends      bool     `json:"hasFriends"`
	Friend1Nickname string   `json:"friend1Nickname,omitempty"`
	Friend1Telegram string   `json:"friend1Telegram,omitempty"`
	Friend1Roles    []string `json:"friend1Roles,omitempty"`
	Friend2Nickname string   `json:"friend2Nickname,omitempty"`
	Friend2Telegram string   `json:"friend2Telegram,omitempty"`
	Friend2Roles    []string `json:"friend2Roles,omitempty"`
}

// PlayerLists is the individual-player view split by moderation status.
type PlayerLists struct {
	Approved []Player `json:"approved"`
	Pending  []Player `json:"pending"`
}

// RosterEntry is one serialized slot in a team registration payload.
type RosterEntry struct {
	Nickname string `json:"nickname"`
	Telegram string `json:"telegram"`
	Role     string `json:"role"`
}

// Friend is one complete friend record in an individual registration.
type Friend struct {
	Nickname       string   `json:"nickname"`
	Telegram       string   `json:"telegram"`
	PreferredRoles []string `json:"preferredRoles"`
}

// ClearAllResult reports what the bulk wipe removed.
type ClearAllResult struct {
	DeletedTeams   int `json:"deletedTeams"`
	DeletedPlayers int `json:"deletedPlayers"`
}
