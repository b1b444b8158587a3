// internal/auth/service.go
package auth

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"github.com/Thangttq233/FYP2025-FE/internal/api"
	"github.com/Thangttq233/FYP2025-FE/internal/models"
	"github.com/Thangttq233/FYP2025-FE/internal/session"
)

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

var validate = validator.New()

// Service wires login/logout to the session lifecycle. The login call is the
// one request that carries no bearer header.
type Service struct {
	api     *api.Client
	session *session.Store
	log     *logrus.Logger
}

func NewService(client *api.Client, sess *session.Store, log *logrus.Logger) *Service {
	return &Service{api: client, session: sess, log: log}
}

// Login authenticates and initializes the process-wide session.
func (s *Service) Login(ctx context.Context, email, password string) (models.User, error) {
	req := LoginRequest{Email: email, Password: password}
	if err := validate.Struct(req); err != nil {
		return models.User{}, fmt.Errorf("login: %w", err)
	}

	var resp LoginResponse
	if err := s.api.Post(ctx, "/api/auth/login", req, &resp, api.WithoutAuth()); err != nil {
		return models.User{}, fmt.Errorf("login: %w", err)
	}

	s.session.Init(resp.Token, resp.User)
	s.log.WithField("user_id", resp.User.ID).Info("Logged in")
	return resp.User, nil
}

// Logout tears the session down locally.
func (s *Service) Logout() {
	s.session.Clear()
	s.log.Info("Logged out")
}
