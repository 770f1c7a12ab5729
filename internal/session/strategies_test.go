package session

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAuthRepository scripts both endpoints and records which were called.
type fakeAuthRepository struct {
	adminSession *AdminSession
	adminErr     error
	userSession  *UserSession
	userErr      error

	adminCalls int
	userCalls  int
}

func (f *fakeAuthRepository) AdminLogin(ctx context.Context, username, password string) (*AdminSession, error) {
	f.adminCalls++
	return f.adminSession, f.adminErr
}

func (f *fakeAuthRepository) UserLogin(ctx context.Context, telegram, password string) (*UserSession, error) {
	f.userCalls++
	return f.userSession, f.userErr
}

func TestLoginAdminShortCircuits(t *testing.T) {
	repo := &fakeAuthRepository{
		adminSession: &AdminSession{Username: "Xuna", Role: "admin", Token: "tok"},
		userErr:      ErrInvalidCredentials,
	}

	outcome, err := Login(context.Background(), DefaultStrategies(repo), "Xuna", "pw")
	require.NoError(t, err)

	assert.Equal(t, KindAdmin, outcome.Kind)
	assert.Equal(t, "Xuna", outcome.DisplayName())
	assert.Equal(t, 1, repo.adminCalls)
	assert.Equal(t, 0, repo.userCalls, "user endpoint must not be tried after an admin success")
}

func TestLoginFallsBackToUser(t *testing.T) {
	teamID := 7
	repo := &fakeAuthRepository{
		adminErr: ErrInvalidCredentials,
		userSession: &UserSession{
			Token:       "user-tok",
			UserType:    "team_captain",
			TeamID:      &teamID,
			CaptainNick: "Faker",
		},
	}

	outcome, err := Login(context.Background(), DefaultStrategies(repo), "@faker", "pw")
	require.NoError(t, err)

	assert.Equal(t, KindUser, outcome.Kind)
	assert.Equal(t, "Faker", outcome.DisplayName())
	assert.Equal(t, 1, repo.adminCalls)
	assert.Equal(t, 1, repo.userCalls)
}

func TestLoginAllRejected(t *testing.T) {
	repo := &fakeAuthRepository{
		adminErr: ErrInvalidCredentials,
		userErr:  ErrInvalidCredentials,
	}

	_, err := Login(context.Background(), DefaultStrategies(repo), "nobody", "pw")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Equal(t, 1, repo.adminCalls)
	assert.Equal(t, 1, repo.userCalls)
}

func TestLoginAbortsOnBackendFailure(t *testing.T) {
	backendDown := errors.New("admin login: backend request failed")
	repo := &fakeAuthRepository{
		adminErr: backendDown,
		userErr:  ErrInvalidCredentials,
	}

	_, err := Login(context.Background(), DefaultStrategies(repo), "Xuna", "pw")
	require.Error(t, err)

	assert.NotErrorIs(t, err, ErrInvalidCredentials)
	assert.Equal(t, 0, repo.userCalls, "a hard failure must abort, not fall through")
}

func TestDisplayNameIndividualPlayer(t *testing.T) {
	outcome := &Outcome{
		Kind: KindUser,
		User: &UserSession{UserType: "individual_player", Nickname: "SoloQ"},
	}
	assert.Equal(t, "SoloQ", outcome.DisplayName())
}
