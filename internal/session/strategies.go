package session

import "context"

// Strategy is one way to turn a login/password pair into a session. The
// login flow tries strategies in a fixed order and short-circuits on the
// first success; ErrInvalidCredentials hands over to the next strategy.
type Strategy interface {
	Name() string
	Authenticate(ctx context.Context, login, password string) (*Outcome, error)
}

type adminStrategy struct {
	repo AuthRepository
}

func (s adminStrategy) Name() string { return "admin" }

func (s adminStrategy) Authenticate(ctx context.Context, login, password string) (*Outcome, error) {
	admin, err := s.repo.AdminLogin(ctx, login, password)
	if err != nil {
		return nil, err
	}
	return &Outcome{Kind: KindAdmin, Admin: admin}, nil
}

type userStrategy struct {
	repo AuthRepository
}

func (s userStrategy) Name() string { return "user" }

func (s userStrategy) Authenticate(ctx context.Context, login, password string) (*Outcome, error) {
	user, err := s.repo.UserLogin(ctx, login, password)
	if err != nil {
		return nil, err
	}
	return &Outcome{Kind: KindUser, User: user}, nil
}

// DefaultStrategies is the order the original site used: the admin endpoint
// first, then the user endpoint as fallback.
func DefaultStrategies(repo AuthRepository) []Strategy {
	return []Strategy{
		adminStrategy{repo: repo},
		userStrategy{repo: repo},
	}
}

// Login runs the strategies in order. It returns ErrInvalidCredentials only
// when every strategy rejected the credentials.
func Login(ctx context.Context, strategies []Strategy, login, password string) (*Outcome, error) {
	for _, s := range strategies {
		outcome, err := s.Authenticate(ctx, login, password)
		if err == nil {
			return outcome, nil
		}
		if err == ErrInvalidCredentials {
			continue
		}
		return nil, err
	}
	return nil, ErrInvalidCredentials
}
