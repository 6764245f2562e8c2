package app

import (
	"context"
	"log/slog"

	"github.com/jsamuelsen11/college-predictor/internal/domain"
	"github.com/jsamuelsen11/college-predictor/internal/domain/registration"
	"github.com/jsamuelsen11/college-predictor/internal/ports"
)

// Compile-time check that RegistrationService implements ports.RegistrationService.
var _ ports.RegistrationService = (*RegistrationService)(nil)

// RegistrationService implements ports.RegistrationService by validating form
// submissions and storing them through the UserRepository port.
type RegistrationService struct {
	users  ports.UserRepository
	logger *slog.Logger
}

// NewRegistrationService creates a RegistrationService. A nil logger discards output.
func NewRegistrationService(users ports.UserRepository, logger *slog.Logger) *RegistrationService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &RegistrationService{
		users:  users,
		logger: logger,
	}
}

// Register validates u and stores it.
func (s *RegistrationService) Register(ctx context.Context, u *registration.User) error {
	if u == nil {
		return &domain.ValidationError{Message: "user is required"}
	}

	s.logger.InfoContext(ctx, "registering user", slog.String("school", u.School))

	if err := u.Validate(); err != nil {
		return err
	}

	if err := s.users.CreateUser(ctx, u); err != nil {
		s.logger.ErrorContext(ctx, "failed to register user",
			slog.String("operation", "Register"),
			slog.String("email", u.Email),
			slog.Any("error", err),
		)
		return err
	}

	return nil
}
