package directory

import (
	"context"

	"github.com/viant/personnel/client"
	"github.com/viant/personnel/validate"
)

// AuthService handles registration and session endpoints
type AuthService struct {
	client *client.Client
}

// Register creates an account and returns response status code
func (s *AuthService) Register(ctx context.Context, user *User) (int, error) {
	if err := validate.Struct(user); err != nil {
		return 0, err
	}
	response, err := s.client.Post(ctx, pathRegister, user, nil)
	if err != nil {
		return 0, err
	}
	return response.StatusCode, nil
}

// Login authenticates the user, the session cookie is kept by the client and cached responses are dropped
func (s *AuthService) Login(ctx context.Context, user *User) (*User, error) {
	if err := validate.Struct(user); err != nil {
		return nil, err
	}
	ret, err := s.user(s.client.Post(ctx, pathLogin, user, nil))
	if err != nil {
		return nil, err
	}
	if err = s.client.ClearCache(ctx); err != nil {
		return nil, err
	}
	return ret, nil
}

// Logout ends the session, drops cached responses and returns response status code
func (s *AuthService) Logout(ctx context.Context) (int, error) {
	response, err := s.client.Post(ctx, pathLogout, nil, nil)
	if err != nil {
		return 0, err
	}
	if err = s.client.ClearCache(ctx); err != nil {
		return response.StatusCode, err
	}
	return response.StatusCode, nil
}

// Profile returns the authenticated user profile
func (s *AuthService) Profile(ctx context.Context) (*User, error) {
	return s.user(s.client.Get(ctx, pathProfile, nil))
}

// CheckSession returns the session user or a status error when session is not valid
func (s *AuthService) CheckSession(ctx context.Context) (*User, error) {
	return s.user(s.client.Get(ctx, pathCheckSession, nil))
}

func (s *AuthService) user(response *client.Response, err error) (*User, error) {
	if err != nil {
		return nil, err
	}
	if response.Payload == nil {
		return nil, nil
	}
	ret := &User{}
	if err = response.Decode(ret); err != nil {
		return nil, err
	}
	return ret, nil
}
