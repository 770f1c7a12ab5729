package session

import "errors"

// ErrInvalidCredentials is returned by a strategy when the backend rejected
// the login. The next strategy in order gets a turn; any other error aborts
// the whole attempt.
var ErrInvalidCredentials = errors.New("invalid credentials")

// Kind tags which strategy produced an outcome.
type Kind string

const (
	KindAdmin Kind = "admin"
	KindUser  Kind = "user"
)

// AdminSession is a successful login against the admin auth endpoint.
type AdminSession struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	Token    string `json:"token"`
}

// UserSession is a successful login against the user auth endpoint, either a
// team captain or an individual player.
type UserSession struct {
	Token       string `json:"token"`
	UserType    string `json:"userType"`
	TeamID      *int   `json:"teamId,omitempty"`
	CaptainNick string `json:"captainNick,omitempty"`
	Nickname    string `json:"nickname,omitempty"`
	PlayerID    *int   `json:"playerId,omitempty"`
}

// Outcome is the tagged result of one authentication strategy. Exactly one of
// Admin or User is set, matching Kind.
type Outcome struct {
	Kind  Kind
	Admin *AdminSession
	User  *UserSession
}

// DisplayName picks the name shown in the welcome toast and stored in the
// session claims.
func (o *Outcome) DisplayName() string {
	switch o.Kind {
	case KindAdmin:
		return o.Admin.Username
	case KindUser:
		if o.User.UserType == "team_captain" {
			return o.User.CaptainNick
		}
		return o.User.Nickname
	}
	return ""
}
