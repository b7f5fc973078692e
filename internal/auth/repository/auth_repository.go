package repository

import (
	"context"
	"errors"

	"wordbook/domain"
	"wordbook/internal/service/logger"
	"wordbook/internal/service/middleware"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type authRepository struct {
	db *gorm.DB
}

func NewAuthRepository(db *gorm.DB) domain.AuthRepository {
	return &authRepository{
		db: db,
	}
}

func (r *authRepository) CreateUser(ctx context.Context, user *domain.User) (string, error) {
	requestID := middleware.GetRequestID(ctx)
	logger.DBLogger.Info("CreateUser called", zap.String("request_id", requestID), zap.String("email", user.Email))

	if err := r.db.Create(user).Error; err != nil {
		logger.DBLogger.Error("Error creating user", zap.String("request_id", requestID), zap.String("email", user.Email), zap.Error(err))
		return "", errors.New("failed to create user")
	}

	logger.DBLogger.Info("Successfully created user", zap.String("request_id", requestID), zap.String("user_id", user.UUID))
	return user.UUID, nil
}

// GetUserByEmail returns (nil, nil) when no user holds the address; the
// usecase folds that into the credentials error.
func (r *authRepository) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	requestID := middleware.GetRequestID(ctx)
	logger.DBLogger.Info("GetUserByEmail called", zap.String("request_id", requestID))

	var user domain.User
	if err := r.db.First(&user, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.DBLogger.Warn("User not found", zap.String("request_id", requestID))
			return nil, nil
		}
		logger.DBLogger.Error("Error getting user", zap.String("request_id", requestID), zap.Error(err))
		return nil, errors.New("failed to fetch user")
	}
	return &user, nil
}

func (r *authRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	requestID := middleware.GetRequestID(ctx)

	var count int64
	if err := r.db.Model(&domain.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		logger.DBLogger.Error("Error checking email", zap.String("request_id", requestID), zap.Error(err))
		return false, errors.New("failed to check email")
	}
	return count > 0, nil
}

// ListUsers derives each user's words collection from words.creator_id, in
// creation order, instead of reading a stored index.
func (r *authRepository) ListUsers(ctx context.Context) ([]domain.UserResponse, error) {
	requestID := middleware.GetRequestID(ctx)
	logger.DBLogger.Info("ListUsers called", zap.String("request_id", requestID))

	var users []domain.User
	if err := r.db.Find(&users).Error; err != nil {
		logger.DBLogger.Error("Error fetching users", zap.String("request_id", requestID), zap.Error(err))
		return nil, errors.New("failed to fetch users")
	}

	var words []domain.Word
	if err := r.db.Order("created_at").Find(&words).Error; err != nil {
		logger.DBLogger.Error("Error fetching user words", zap.String("request_id", requestID), zap.Error(err))
		return nil, errors.New("failed to fetch user words")
	}

	wordsByCreator := make(map[string][]string, len(users))
	for _, word := range words {
		wordsByCreator[word.CreatorID] = append(wordsByCreator[word.CreatorID], word.UUID)
	}

	response := make([]domain.UserResponse, len(users))
	for i, user := range users {
		ids := wordsByCreator[user.UUID]
		if ids == nil {
			ids = make([]string, 0)
		}
		response[i] = domain.UserResponse{
			ID:    user.UUID,
			Name:  user.Name,
			Email: user.Email,
			Words: ids,
		}
	}

	logger.DBLogger.Info("Successfully fetched users", zap.String("request_id", requestID), zap.Int("count", len(response)))
	return response, nil
}
