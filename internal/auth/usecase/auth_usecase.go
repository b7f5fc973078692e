package usecase

import (
	"context"
	"strings"

	"wordbook/domain"
	"wordbook/internal/service/logger"
	"wordbook/internal/service/middleware"
	"wordbook/internal/service/validation"

	"go.uber.org/zap"
)

type AuthUsecase interface {
	ListUsers(ctx context.Context) ([]domain.UserResponse, error)
	Signup(ctx context.Context, name string, email string, password string) (string, error)
	Login(ctx context.Context, email string, password string) (*domain.User, error)
}

type authUsecase struct {
	authRepository domain.AuthRepository
}

func NewAuthUsecase(authRepository domain.AuthRepository) AuthUsecase {
	return &authUsecase{
		authRepository: authRepository,
	}
}

func (uc *authUsecase) ListUsers(ctx context.Context) ([]domain.UserResponse, error) {
	return uc.authRepository.ListUsers(ctx)
}

// Signup runs every rule and collects all failures before touching the store;
// no user is created when any rule failed.
func (uc *authUsecase) Signup(ctx context.Context, name string, email string, password string) (string, error) {
	requestID := middleware.GetRequestID(ctx)
	name = strings.TrimSpace(name)
	email = validation.NormalizeEmail(email)
	password = strings.TrimSpace(password)

	violations := make([]domain.Violation, 0)
	if !validation.ValidEmail(email) {
		violations = append(violations, domain.Violation{Param: "email", Message: validation.MsgInvalidEmail})
	} else {
		exists, err := uc.authRepository.EmailExists(ctx, email)
		if err != nil {
			return "", err
		}
		if exists {
			violations = append(violations, domain.Violation{Param: "email", Message: validation.MsgEmailTaken})
		}
	}
	if !validation.ValidPassword(password) {
		violations = append(violations, domain.Violation{Param: "password", Message: validation.MsgShortPassword})
	}
	if !validation.NotEmpty(name) {
		violations = append(violations, domain.Violation{Param: "name", Message: validation.MsgEmptyName})
	}
	if len(violations) > 0 {
		logger.AccessLogger.Warn("Signup validation failed",
			zap.String("request_id", requestID),
			zap.Int("violations", len(violations)),
		)
		return "", &domain.ValidationError{Violations: violations}
	}

	hashedPassword, err := middleware.HashPassword(password)
	if err != nil {
		logger.AccessLogger.Error("Failed to hash password", zap.String("request_id", requestID), zap.Error(err))
		return "", err
	}

	user := &domain.User{
		Name:     name,
		Email:    email,
		Password: hashedPassword,
	}
	return uc.authRepository.CreateUser(ctx, user)
}

// Login answers the same "invalid credentials" error for an unknown email, a
// wrong password and a malformed payload, so callers cannot probe which
// emails are registered.
func (uc *authUsecase) Login(ctx context.Context, email string, password string) (*domain.User, error) {
	requestID := middleware.GetRequestID(ctx)
	email = validation.NormalizeEmail(email)
	password = strings.TrimSpace(password)

	if len(validation.Login(email, password)) > 0 {
		logger.AccessLogger.Warn("Login payload failed validation", zap.String("request_id", requestID))
		return nil, domain.ErrInvalidCredentials
	}

	user, err := uc.authRepository.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		logger.AccessLogger.Warn("Login with unknown email", zap.String("request_id", requestID))
		return nil, domain.ErrInvalidCredentials
	}

	if !middleware.CheckPassword(user.Password, password) {
		logger.AccessLogger.Warn("Login with wrong password", zap.String("request_id", requestID))
		return nil, domain.ErrInvalidCredentials
	}

	return user, nil
}
