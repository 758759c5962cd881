package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/gahalberto/ImobiManager/internal/domain/entity"
	"github.com/gahalberto/ImobiManager/internal/domain/repository"
	"github.com/gahalberto/ImobiManager/pkg/helpers"
	"github.com/gahalberto/ImobiManager/pkg/mailer"
)

// AuthService implements signup and signin on top of the user directory.
type AuthService struct {
	Users  repository.UserRepository
	JWT    *helpers.JWTManager
	Logger *logrus.Logger
	// Pub enqueues the welcome email; nil disables sending entirely.
	Pub         *helpers.RabbitPublisher
	MailEnabled bool
}

func NewAuthService(users repository.UserRepository, jwt *helpers.JWTManager, logger *logrus.Logger, pub *helpers.RabbitPublisher, mailEnabled bool) *AuthService {
	return &AuthService{Users: users, JWT: jwt, Logger: logger, Pub: pub, MailEnabled: mailEnabled}
}

type SignupInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
}

// Signup creates the account and issues a token. The pre-check keeps the
// common duplicate case off the insert path, but the unique constraint is
// what actually guarantees the invariant.
func (s *AuthService) Signup(ctx context.Context, in SignupInput) (*entity.User, string, error) {
	if _, err := s.Users.GetByEmail(ctx, in.Email); err == nil {
		return nil, "", ErrEmailTaken
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, "", err
	}

	hash, err := helpers.HashPassword(in.Password)
	if err != nil {
		return nil, "", fmt.Errorf("hash password: %w", err)
	}

	u := &entity.User{
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     in.Email,
		Password:  hash,
	}
	if err := s.Users.Create(ctx, u); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, "", ErrEmailTaken
		}
		return nil, "", err
	}

	token, err := s.JWT.Generate(u.Email)
	if err != nil {
		return nil, "", fmt.Errorf("sign token: %w", err)
	}

	s.sendWelcome(ctx, u)
	return u, token, nil
}

// Signin validates credentials and issues a token. Unknown email and wrong
// password are indistinguishable to the caller.
func (s *AuthService) Signin(ctx context.Context, email, password string) (*entity.User, string, error) {
	u, err := s.Users.GetByEmail(ctx, email)
	if err != nil {
		return nil, "", ErrInvalidCredentials
	}
	if !helpers.CompareHashAndPassword(u.Password, password) {
		return nil, "", ErrInvalidCredentials
	}
	token, err := s.JWT.Generate(u.Email)
	if err != nil {
		return nil, "", fmt.Errorf("sign token: %w", err)
	}
	return u, token, nil
}

// sendWelcome enqueues the welcome email. Best-effort: a broker outage never
// fails a signup.
func (s *AuthService) sendWelcome(ctx context.Context, u *entity.User) {
	if s.Pub == nil || !s.MailEnabled {
		return
	}
	job := mailer.EmailJob{
		To:      u.Email,
		Subject: "Welcome to ImobiManager",
		Text:    fmt.Sprintf("Hi %s, your ImobiManager account is ready.", u.FirstName),
	}
	if err := s.Pub.PublishJSON(ctx, job); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("email", u.Email).Warn("enqueue welcome email failed")
	}
}
