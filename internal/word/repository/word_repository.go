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

type wordRepository struct {
	db *gorm.DB
}

func NewWordRepository(db *gorm.DB) domain.WordRepository {
	return &wordRepository{
		db: db,
	}
}

func (r *wordRepository) ListWords(ctx context.Context) ([]domain.Word, error) {
	requestID := middleware.GetRequestID(ctx)
	logger.DBLogger.Info("ListWords called", zap.String("request_id", requestID))

	words := make([]domain.Word, 0)
	if err := r.db.Order("created_at").Find(&words).Error; err != nil {
		logger.DBLogger.Error("Error fetching words", zap.String("request_id", requestID), zap.Error(err))
		return nil, errors.New("failed to fetch words")
	}
	return words, nil
}

func (r *wordRepository) GetWordByID(ctx context.Context, id string) (*domain.Word, error) {
	requestID := middleware.GetRequestID(ctx)
	logger.DBLogger.Info("GetWordByID called", zap.String("request_id", requestID), zap.String("word_id", id))

	var word domain.Word
	if err := r.db.First(&word, "uuid = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.DBLogger.Warn("Word not found", zap.String("request_id", requestID), zap.String("word_id", id))
			return nil, domain.ErrWordNotFound
		}
		logger.DBLogger.Error("Error getting word", zap.String("request_id", requestID), zap.Error(err))
		return nil, errors.New("failed to fetch word")
	}
	return &word, nil
}

// WordExists expects its argument already lowercased; word text is stored
// lowercased, so equality is the case-insensitive check.
func (r *wordRepository) WordExists(ctx context.Context, word string) (bool, error) {
	requestID := middleware.GetRequestID(ctx)

	var count int64
	if err := r.db.Model(&domain.Word{}).Where("word = ?", word).Count(&count).Error; err != nil {
		logger.DBLogger.Error("Error checking word", zap.String("request_id", requestID), zap.Error(err))
		return false, errors.New("failed to check word")
	}
	return count > 0, nil
}

func (r *wordRepository) CreateWord(ctx context.Context, word *domain.Word) error {
	requestID := middleware.GetRequestID(ctx)
	logger.DBLogger.Info("CreateWord called", zap.String("request_id", requestID), zap.String("word", word.Word))

	if err := r.db.Create(word).Error; err != nil {
		logger.DBLogger.Error("Error creating word", zap.String("request_id", requestID), zap.Error(err))
		return errors.New("failed to create word")
	}

	logger.DBLogger.Info("Successfully created word", zap.String("request_id", requestID), zap.String("word_id", word.UUID))
	return nil
}

func (r *wordRepository) UpdateWord(ctx context.Context, id string, word string, translate string, description string) (*domain.Word, error) {
	requestID := middleware.GetRequestID(ctx)
	logger.DBLogger.Info("UpdateWord called", zap.String("request_id", requestID), zap.String("word_id", id))

	updates := map[string]interface{}{
		"word":        word,
		"translate":   translate,
		"description": description,
	}
	if err := r.db.Model(&domain.Word{}).Where("uuid = ?", id).Updates(updates).Error; err != nil {
		logger.DBLogger.Error("Error updating word", zap.String("request_id", requestID), zap.Error(err))
		return nil, errors.New("failed to update word")
	}

	var updated domain.Word
	if err := r.db.First(&updated, "uuid = ?", id).Error; err != nil {
		logger.DBLogger.Error("Error reloading word", zap.String("request_id", requestID), zap.Error(err))
		return nil, errors.New("failed to fetch word")
	}

	logger.DBLogger.Info("Successfully updated word", zap.String("request_id", requestID), zap.String("word_id", id))
	return &updated, nil
}

func (r *wordRepository) DeleteWord(ctx context.Context, id string) error {
	requestID := middleware.GetRequestID(ctx)
	logger.DBLogger.Info("DeleteWord called", zap.String("request_id", requestID), zap.String("word_id", id))

	if err := r.db.Where("uuid = ?", id).Delete(&domain.Word{}).Error; err != nil {
		logger.DBLogger.Error("Error deleting word", zap.String("request_id", requestID), zap.Error(err))
		return errors.New("failed to delete word")
	}

	logger.DBLogger.Info("Successfully deleted word", zap.String("request_id", requestID), zap.String("word_id", id))
	return nil
}

func (r *wordRepository) GetCreator(ctx context.Context, userID string) (*domain.CreatorSummary, error) {
	requestID := middleware.GetRequestID(ctx)

	var user domain.User
	if err := r.db.First(&user, "uuid = ?", userID).Error; err != nil {
		logger.DBLogger.Error("Error fetching creator", zap.String("request_id", requestID), zap.String("user_id", userID), zap.Error(err))
		return nil, errors.New("failed to fetch creator")
	}
	return &domain.CreatorSummary{ID: user.UUID, Name: user.Name}, nil
}
