package usecase

import (
	"context"
	"strings"

	"wordbook/domain"
	"wordbook/internal/service/cache"
	"wordbook/internal/service/logger"
	"wordbook/internal/service/middleware"
	"wordbook/internal/service/validation"

	"go.uber.org/zap"
)

type WordUsecase interface {
	ListWords(ctx context.Context) ([]domain.Word, error)
	GetWord(ctx context.Context, id string) (*domain.Word, error)
	AddWord(ctx context.Context, callerID string, payload domain.WordRequest) (*domain.Word, *domain.CreatorSummary, error)
	UpdateWord(ctx context.Context, id string, callerID string, payload domain.WordRequest) (*domain.Word, error)
	DeleteWord(ctx context.Context, id string, callerID string) (*domain.Word, error)
}

type wordUsecase struct {
	wordRepository domain.WordRepository
	wordsCache     *cache.WordsCache
}

func NewWordUsecase(wordRepository domain.WordRepository, wordsCache *cache.WordsCache) WordUsecase {
	return &wordUsecase{
		wordRepository: wordRepository,
		wordsCache:     wordsCache,
	}
}

func (uc *wordUsecase) ListWords(ctx context.Context) ([]domain.Word, error) {
	requestID := middleware.GetRequestID(ctx)

	if words, ok := uc.wordsCache.Get(ctx); ok {
		logger.AccessLogger.Info("Words served from cache", zap.String("request_id", requestID))
		return words, nil
	}

	words, err := uc.wordRepository.ListWords(ctx)
	if err != nil {
		return nil, err
	}
	uc.wordsCache.Set(ctx, words)
	return words, nil
}

func (uc *wordUsecase) GetWord(ctx context.Context, id string) (*domain.Word, error) {
	return uc.wordRepository.GetWordByID(ctx, id)
}

// AddWord collects every rule failure before any write. Word and translate are
// stored lowercased; word text is unique across all users.
func (uc *wordUsecase) AddWord(ctx context.Context, callerID string, payload domain.WordRequest) (*domain.Word, *domain.CreatorSummary, error) {
	requestID := middleware.GetRequestID(ctx)
	wordText := strings.ToLower(strings.TrimSpace(payload.Word))
	translate := strings.ToLower(strings.TrimSpace(payload.Translate))
	description := strings.TrimSpace(payload.Description)

	violations := make([]domain.Violation, 0)
	if wordText == "" {
		violations = append(violations, domain.Violation{Param: "word", Message: validation.MsgEmptyWord})
	} else {
		exists, err := uc.wordRepository.WordExists(ctx, wordText)
		if err != nil {
			return nil, nil, err
		}
		if exists {
			violations = append(violations, domain.Violation{Param: "word", Message: validation.MsgWordTaken})
		}
	}
	if translate == "" {
		violations = append(violations, domain.Violation{Param: "translate", Message: validation.MsgEmptyTranslate})
	}
	if len(violations) > 0 {
		logger.AccessLogger.Warn("AddWord validation failed",
			zap.String("request_id", requestID),
			zap.Int("violations", len(violations)),
		)
		return nil, nil, &domain.ValidationError{Violations: violations}
	}

	word := &domain.Word{
		Word:        wordText,
		Translate:   translate,
		Description: description,
		CreatorID:   callerID,
	}
	if err := uc.wordRepository.CreateWord(ctx, word); err != nil {
		return nil, nil, err
	}

	creator, err := uc.wordRepository.GetCreator(ctx, callerID)
	if err != nil {
		return nil, nil, err
	}

	uc.wordsCache.Invalidate(ctx)
	return word, creator, nil
}

func (uc *wordUsecase) UpdateWord(ctx context.Context, id string, callerID string, payload domain.WordRequest) (*domain.Word, error) {
	requestID := middleware.GetRequestID(ctx)
	wordText := strings.ToLower(strings.TrimSpace(payload.Word))
	translate := strings.ToLower(strings.TrimSpace(payload.Translate))
	description := strings.TrimSpace(payload.Description)

	if violations := validation.WordPayload(wordText, translate); len(violations) > 0 {
		logger.AccessLogger.Warn("UpdateWord validation failed",
			zap.String("request_id", requestID),
			zap.Int("violations", len(violations)),
		)
		return nil, &domain.ValidationError{Violations: violations}
	}

	word, err := uc.wordRepository.GetWordByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if word.CreatorID != callerID {
		logger.AccessLogger.Warn("UpdateWord by non-creator",
			zap.String("request_id", requestID),
			zap.String("word_id", id),
		)
		return nil, domain.ErrNotAuthorized
	}

	updated, err := uc.wordRepository.UpdateWord(ctx, id, wordText, translate, description)
	if err != nil {
		return nil, err
	}

	uc.wordsCache.Invalidate(ctx)
	return updated, nil
}

// DeleteWord returns the pre-deletion snapshot of the removed word.
func (uc *wordUsecase) DeleteWord(ctx context.Context, id string, callerID string) (*domain.Word, error) {
	requestID := middleware.GetRequestID(ctx)

	word, err := uc.wordRepository.GetWordByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if word.CreatorID != callerID {
		logger.AccessLogger.Warn("DeleteWord by non-creator",
			zap.String("request_id", requestID),
			zap.String("word_id", id),
		)
		return nil, domain.ErrNotAuthorized
	}

	if err := uc.wordRepository.DeleteWord(ctx, id); err != nil {
		return nil, err
	}

	uc.wordsCache.Invalidate(ctx)
	return word, nil
}
