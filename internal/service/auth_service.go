package service

import (
	"context"

	"gatepass/internal/errors"
	"gatepass/internal/metrics"
	"gatepass/internal/model"
	"gatepass/internal/store"
)

// AuthService handles the login check.
type AuthService interface {
	// Authenticate matches userID, password and role exactly against the
	// user collection. Passwords are compared as plaintext; there are no
	// sessions or tokens beyond this check.
	Authenticate(ctx context.Context, userID, password string, role model.Role) (*model.User, error)
}

type authService struct {
	store store.Store
}

// NewAuthService creates a new authentication service.
func NewAuthService(st store.Store) AuthService {
	return &authService{store: st}
}

func (s *authService) Authenticate(ctx context.Context, userID, password string, role model.Role) (*model.User, error) {
	ds := s.store.Load(ctx)
	for i := range ds.Users {
		u := ds.Users[i]
		if u.ID == userID && u.Password == password && u.Role == role {
			metrics.LoginAttempts.WithLabelValues("success").Inc()
			return &u, nil
		}
	}
	metrics.LoginAttempts.WithLabelValues("failure").Inc()
	return nil, errors.ErrInvalidCredentials
}
