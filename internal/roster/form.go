package roster

import "strings"

// ValidationError is a client-side form rejection. It is raised before any
// network call is made and its message is shown to the user as-is.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// TeamForm is the raw team registration form, one field per input.
type TeamForm struct {
	TeamName        string `json:"teamName"`
	CaptainNick     string `json:"captainNick"`
	CaptainTelegram string `json:"captainTelegram"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
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

// Validate applies the registration rules. Any failure aborts the submission
// before a request is built.
func (f *TeamForm) Validate() error {
	if f.TeamName == "" || f.CaptainNick == "" || f.CaptainTelegram == "" || f.Password == "" {
		return &ValidationError{Message: "Заполните обязательные поля"}
	}
	if f.Password != f.ConfirmPassword {
		return &ValidationError{Message: "Пароли не совпадают"}
	}
	if len(f.Password) < 6 {
		return &ValidationError{Message: "Пароль должен быть не менее 6 символов"}
	}
	return nil
}

// TeamRegistration is the payload sent to the register endpoint.
type TeamRegistration struct {
	Type            string        `json:"type"`
	TeamName        string        `json:"teamName"`
	CaptainNick     string        `json:"captainNick"`
	CaptainTelegram string        `json:"captainTelegram"`
	Password        string        `json:"password"`
	Players         []RosterEntry `json:"players"`
}

// Payload assembles the registration payload. The captain always leads the
// players list; role and substitute slots are included only when filled.
func (f *TeamForm) Payload() TeamRegistration {
	players := []RosterEntry{
		{Nickname: f.CaptainNick, Telegram: f.CaptainTelegram, Role: RoleLabelCaptain},
	}

	slots := []struct {
		nick     string
		telegram string
		role     string
	}{
		{f.TopNick, f.TopTelegram, RoleLabelTop},
		{f.JungleNick, f.JungleTelegram, RoleLabelJungle},
		{f.MidNick, f.MidTelegram, RoleLabelMid},
		{f.AdcNick, f.AdcTelegram, RoleLabelADC},
		{f.SupportNick, f.SupportTelegram, RoleLabelSupport},
		{f.Sub1Nick, f.Sub1Telegram, RoleLabelSub1},
		{f.Sub2Nick, f.Sub2Telegram, RoleLabelSub2},
	}
	for _, slot := range slots {
		if slot.nick != "" {
			players = append(players, RosterEntry{
				Nickname: slot.nick,
				Telegram: slot.telegram,
				Role:     slot.role,
			})
		}
	}

	return TeamRegistration{
		Type:            "team",
		TeamName:        strings.TrimSpace(f.TeamName),
		CaptainNick:     strings.TrimSpace(f.CaptainNick),
		CaptainTelegram: strings.TrimSpace(f.CaptainTelegram),
		Password:        f.Password,
		Players:         players,
	}
}

// IndividualForm is the raw free-agent registration form.
type IndividualForm struct {
	Nickname        string   `json:"nickname"`
	Telegram        string   `json:"telegram"`
	PreferredRoles  []string `json:"preferredRoles"`
	HasFriends      bool     `json:"hasFriends"`
	Friend1Nickname string   `json:"friend1Nickname"`
	Friend1Telegram string   `json:"friend1Telegram"`
	Friend1Roles    []string `json:"friend1Roles"`
	Friend2Nickname string   `json:"friend2Nickname"`
	Friend2Telegram string   `json:"friend2Telegram"`
	Friend2Roles    []string `json:"friend2Roles"`
}

// Validate requires nickname, contact and at least one preferred role.
// Friend fields are deliberately not validated: incomplete friend entries
// are dropped during assembly, they never fail the form.
func (f *IndividualForm) Validate() error {
	if f.Nickname == "" || f.Telegram == "" || len(f.PreferredRoles) == 0 {
		return &ValidationError{Message: "Заполните все поля и выберите роли"}
	}
	return nil
}

// IndividualRegistration is the payload sent to the register endpoint.
type IndividualRegistration struct {
	Type           string   `json:"type"`
	Nickname       string   `json:"nickname"`
	Telegram       string   `json:"telegram"`
	PreferredRoles []string `json:"preferredRoles"`
	Friends        []Friend `json:"friends"`
}

// Payload assembles the registration payload, keeping only friend entries
// that have a nickname, a contact and at least one role.
func (f *IndividualForm) Payload() IndividualRegistration {
	friends := []Friend{}
	if f.HasFriends {
		if f.Friend1Nickname != "" && f.Friend1Telegram != "" && len(f.Friend1Roles) > 0 {
			friends = append(friends, Friend{
				Nickname:       strings.TrimSpace(f.Friend1Nickname),
				Telegram:       strings.TrimSpace(f.Friend1Telegram),
				PreferredRoles: f.Friend1Roles,
			})
		}
		if f.Friend2Nickname != "" && f.Friend2Telegram != "" && len(f.Friend2Roles) > 0 {
			friends = append(friends, Friend{
				Nickname:       strings.TrimSpace(f.Friend2Nickname),
				Telegram:       strings.TrimSpace(f.Friend2Telegram),
				PreferredRoles: f.Friend2Roles,
			})
		}
	}

	return IndividualRegistration{
		Type:           "individual",
		Nickname:       strings.TrimSpace(f.Nickname),
		Telegram:       strings.TrimSpace(f.Telegram),
		PreferredRoles: f.PreferredRoles,
		Friends:        friends,
	}
}
