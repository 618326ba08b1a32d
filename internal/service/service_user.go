package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-finance-advisor/internal/logger"
	"github.com/MKhiriev/go-finance-advisor/internal/store"
	"github.com/MKhiriev/go-finance-advisor/models"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type userService struct {
	userRepository store.UserRepository
	bcryptCost     int

	logger *logger.Logger
}

func NewUserService(userRepository store.UserRepository, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		bcryptCost:     bcrypt.DefaultCost,
		logger:         logger,
	}
}

func (s *userService) GetUser(ctx context.Context, userID uuid.UUID) (models.User, error) {
	if userID == uuid.Nil {
		return models.User{}, ErrNoUserID
	}

	user, err := s.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("user_id", userID.String()).Msg("user lookup failed")
		return models.User{}, fmt.Errorf("user lookup failed: %w", err)
	}

	return user, nil
}

// ChangePassword replaces the password hash after checking the confirmation
// and the current password, in that order.
func (s *userService) ChangePassword(ctx context.Context, userID uuid.UUID, request models.PasswordChangeRequest) error {
	log := logger.FromContext(ctx).With().Str("user_id", userID.String()).Logger()

	if request.NewPassword != request.NewPasswordConfirm {
		log.Warn().Msg("password confirmation mismatch")
		return ErrPasswordMismatch
	}

	user, err := s.GetUser(ctx, userID)
	if err != nil {
		return err
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(request.CurrentPassword)); err != nil {
		log.Warn().Msg("invalid current password")
		return ErrWrongPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(request.NewPassword), s.bcryptCost)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	if err = s.userRepository.UpdatePasswordHash(ctx, userID, string(hash)); err != nil {
		log.Err(err).Msg("password update failed")
		return fmt.Errorf("password update failed: %w", err)
	}

	log.Info().Msg("password changed")
	return nil
}
