package roster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fullTeamForm() TeamForm {
	return TeamForm{
		TeamName:        "Baron Nashor",
		CaptainNick:     "Cap",
		CaptainTelegram: "@cap",
		Password:        "secret1",
		ConfirmPassword: "secret1",
		TopNick:         "TopGod",
		TopTelegram:     "@top",
		JungleNick:      "Jg",
		JungleTelegram:  "@jg",
		MidNick:         "Midlane",
		MidTelegram:     "@mid",
		AdcNick:         "Carry",
		AdcTelegram:     "@adc",
		SupportNick:     "Supp",
		SupportTelegram: "@supp",
	}
}

func TestTeamFormValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*TeamForm)
		message string
	}{
		{
			name:    "missing team name",
			mutate:  func(f *TeamForm) { f.TeamName = "" },
			message: "Заполните обязательные поля",
		},
		{
			name:    "missing captain contact",
			mutate:  func(f *TeamForm) { f.CaptainTelegram = "" },
			message: "Заполните обязательные поля",
		},
		{
			name:    "password mismatch",
			mutate:  func(f *TeamForm) { f.ConfirmPassword = "other" },
			message: "Пароли не совпадают",
		},
		{
			name: "password too short",
			mutate: func(f *TeamForm) {
				f.Password = "12345"
				f.ConfirmPassword = "12345"
			},
			message: "Пароль должен быть не менее 6 символов",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := fullTeamForm()
			tt.mutate(&form)

			err := form.Validate()
			require.Error(t, err)
			assert.Equal(t, tt.message, err.Error())
		})
	}
}

func TestTeamFormValidateAcceptsEmptyRoleSlots(t *testing.T) {
	form := fullTeamForm()
	form.TopNick = ""
	form.JungleNick = ""
	form.MidNick = ""
	form.AdcNick = ""
	form.SupportNick = ""

	assert.NoError(t, form.Validate(), "role slots are optional at submission time")
}

func TestTeamFormPayloadFiltersEmptySlots(t *testing.T) {
	form := fullTeamForm()

	payload := form.Payload()

	assert.Equal(t, "team", payload.Type)
	require.Len(t, payload.Players, 6, "captain plus five filled roles, no substitutes")
	assert.Equal(t, RoleLabelCaptain, payload.Players[0].Role)
	assert.Equal(t, "Cap", payload.Players[0].Nickname)
	assert.Equal(t, RoleLabelSupport, payload.Players[5].Role)
	for _, p := range payload.Players {
		assert.NotEqual(t, RoleLabelSub1, p.Role)
		assert.NotEqual(t, RoleLabelSub2, p.Role)
	}
}

func TestTeamFormPayloadKeepsSubstitutes(t *testing.T) {
	form := fullTeamForm()
	form.Sub1Nick = "Bench"
	form.Sub1Telegram = "@bench"

	payload := form.Payload()
	require.Len(t, payload.Players, 7)
	assert.Equal(t, RoleLabelSub1, payload.Players[6].Role)
}

func TestTeamFormPayloadTrimsNames(t *testing.T) {
	form := fullTeamForm()
	form.TeamName = "  Baron Nashor  "
	form.CaptainNick = " Cap "

	payload := form.Payload()
	assert.Equal(t, "Baron Nashor", payload.TeamName)
	assert.Equal(t, "Cap", payload.CaptainNick)
}

func TestIndividualFormValidate(t *testing.T) {
	form := IndividualForm{Nickname: "Solo", Telegram: "@solo"}
	err := form.Validate()
	require.Error(t, err)
	assert.Equal(t, "Заполните все поля и выберите роли", err.Error())

	form.PreferredRoles = []string{"MID"}
	assert.NoError(t, form.Validate())
}

func TestIndividualFormPayloadDropsIncompleteFriends(t *testing.T) {
	form := IndividualForm{
		Nickname:        "Solo",
		Telegram:        "@solo",
		PreferredRoles:  []string{"MID", "TOP"},
		HasFriends:      true,
		Friend1Nickname: "Buddy",
		Friend1Telegram: "@buddy",
		Friend1Roles:    []string{"SUPPORT"},
		Friend2Nickname: "NoContact",
		// Friend2Telegram left empty: the entry must be dropped silently.
		Friend2Roles: []string{"ADC"},
	}

	payload := form.Payload()
	assert.Equal(t, "individual", payload.Type)
	require.Len(t, payload.Friends, 1)
	assert.Equal(t, "Buddy", payload.Friends[0].Nickname)
}

func TestIndividualFormPayloadFriendsNeverNil(t *testing.T) {
	form := IndividualForm{Nickname: "Solo", Telegram: "@solo", PreferredRoles: []string{"MID"}}
	payload := form.Payload()
	require.NotNil(t, payload.Friends)
	assert.Empty(t, payload.Friends)
}
