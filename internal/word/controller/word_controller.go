package controller

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"wordbook/domain"
	"wordbook/internal/service/logger"
	"wordbook/internal/service/middleware"
	"wordbook/internal/word/usecase"

	"github.com/gorilla/mux"
	"github.com/microcosm-cc/bluemonday"
	"go.uber.org/zap"
)

type WordHandler struct {
	usecase usecase.WordUsecase
}

func NewWordHandler(usecase usecase.WordUsecase) *WordHandler {
	return &WordHandler{
		usecase: usecase,
	}
}

func (h *WordHandler) ListWords(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	requestID := middleware.GetRequestID(r.Context())
	ctx, cancel := middleware.WithTimeout(r.Context())
	defer cancel()

	logger.AccessLogger.Info("Received ListWords request",
		zap.String("request_id", requestID),
		zap.String("method", r.Method),
		zap.String("url", r.URL.String()),
	)

	words, err := h.usecase.ListWords(ctx)
	if err != nil {
		h.handleError(w, err, requestID)
		return
	}

	body := map[string]interface{}{
		"message": "Fetched words successfully.",
		"words":   words,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.handleError(w, err, requestID)
		return
	}

	duration := time.Since(start)
	logger.AccessLogger.Info("Completed ListWords request",
		zap.String("request_id", requestID),
		zap.Duration("duration", duration),
		zap.Int("status", http.StatusOK),
	)
}

func (h *WordHandler) GetWord(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	requestID := middleware.GetRequestID(r.Context())
	ctx, cancel := middleware.WithTimeout(r.Context())
	defer cancel()

	logger.AccessLogger.Info("Received GetWord request",
		zap.String("request_id", requestID),
		zap.String("method", r.Method),
		zap.String("url", r.URL.String()),
	)

	wordID := mux.Vars(r)["wordId"]
	word, err := h.usecase.GetWord(ctx, wordID)
	if err != nil {
		h.handleError(w, err, requestID)
		return
	}

	body := map[string]interface{}{
		"message": "Word fetched.",
		"word":    word,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.handleError(w, err, requestID)
		return
	}

	duration := time.Since(start)
	logger.AccessLogger.Info("Completed GetWord request",
		zap.String("request_id", requestID),
		zap.Duration("duration", duration),
		zap.Int("status", http.StatusOK),
	)
}

func (h *WordHandler) AddWord(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	requestID := middleware.GetRequestID(r.Context())
	ctx, cancel := middleware.WithTimeout(r.Context())
	sanitizer := bluemonday.UGCPolicy()
	defer cancel()

	logger.AccessLogger.Info("Received AddWord request",
		zap.String("request_id", requestID),
		zap.String("method", r.Method),
		zap.String("url", r.URL.String()),
	)

	callerID := middleware.GetUserID(r.Context())
	if callerID == "" {
		h.handleError(w, domain.ErrNotAuthenticated, requestID)
		return
	}

	var payload domain.WordRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		logger.AccessLogger.Error("Failed to decode request body",
			zap.String("request_id", requestID),
			zap.Error(err),
		)
		h.handleError(w, err, requestID)
		return
	}

	payload.Word = sanitizer.Sanitize(payload.Word)
	payload.Translate = sanitizer.Sanitize(payload.Translate)
	payload.Description = sanitizer.Sanitize(payload.Description)

	word, creator, err := h.usecase.AddWord(ctx, callerID, payload)
	if err != nil {
		h.handleError(w, err, requestID)
		return
	}

	body := map[string]interface{}{
		"message": "Word added successfully.",
		"word":    word,
		"creator": creator,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.handleError(w, err, requestID)
		return
	}

	duration := time.Since(start)
	logger.AccessLogger.Info("Completed AddWord request",
		zap.String("request_id", requestID),
		zap.Duration("duration", duration),
		zap.Int("status", http.StatusCreated),
	)
}

func (h *WordHandler) UpdateWord(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	requestID := middleware.GetRequestID(r.Context())
	ctx, cancel := middleware.WithTimeout(r.Context())
	sanitizer := bluemonday.UGCPolicy()
	defer cancel()

	logger.AccessLogger.Info("Received UpdateWord request",
		zap.String("request_id", requestID),
		zap.String("method", r.Method),
		zap.String("url", r.URL.String()),
	)

	callerID := middleware.GetUserID(r.Context())
	if callerID == "" {
		h.handleError(w, domain.ErrNotAuthenticated, requestID)
		return
	}

	var payload domain.WordRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		logger.AccessLogger.Error("Failed to decode request body",
			zap.String("request_id", requestID),
			zap.Error(err),
		)
		h.handleError(w, err, requestID)
		return
	}

	payload.Word = sanitizer.Sanitize(payload.Word)
	payload.Translate = sanitizer.Sanitize(payload.Translate)
	payload.Description = sanitizer.Sanitize(payload.Description)

	wordID := mux.Vars(r)["wordId"]
	word, err := h.usecase.UpdateWord(ctx, wordID, callerID, payload)
	if err != nil {
		h.handleError(w, err, requestID)
		return
	}

	body := map[string]interface{}{
		"message": "Word updated.",
		"word":    word,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.handleError(w, err, requestID)
		return
	}

	duration := time.Since(start)
	logger.AccessLogger.Info("Completed UpdateWord request",
		zap.String("request_id", requestID),
		zap.Duration("duration", duration),
		zap.Int("status", http.StatusOK),
	)
}

func (h *WordHandler) DeleteWord(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	requestID := middleware.GetRequestID(r.Context())
	ctx, cancel := middleware.WithTimeout(r.Context())
	defer cancel()

	logger.AccessLogger.Info("Received DeleteWord request",
		zap.String("request_id", requestID),
		zap.String("method", r.Method),
		zap.String("url", r.URL.String()),
	)

	callerID := middleware.GetUserID(r.Context())
	if callerID == "" {
		h.handleError(w, domain.ErrNotAuthenticated, requestID)
		return
	}

	wordID := mux.Vars(r)["wordId"]
	word, err := h.usecase.DeleteWord(ctx, wordID, callerID)
	if err != nil {
		h.handleError(w, err, requestID)
		return
	}

	body := map[string]interface{}{
		"message": "Word deleted.",
		"word":    word,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.handleError(w, err, requestID)
		return
	}

	duration := time.Since(start)
	logger.AccessLogger.Info("Completed DeleteWord request",
		zap.String("request_id", requestID),
		zap.Duration("duration", duration),
		zap.Int("status", http.StatusOK),
	)
}

func (h *WordHandler) handleError(w http.ResponseWriter, err error, requestID string) {
	logger.AccessLogger.Error("Handling error",
		zap.String("request_id", requestID),
		zap.Error(err),
	)

	w.Header().Set("Content-Type", "application/json")

	var vErr *domain.ValidationError
	if errors.As(err, &vErr) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		errorResponse := map[string]interface{}{
			"message": vErr.Error(),
			"array":   vErr.Violations,
		}
		if jsonErr := json.NewEncoder(w).Encode(errorResponse); jsonErr != nil {
			http.Error(w, jsonErr.Error(), http.StatusInternalServerError)
		}
		return
	}

	errorResponse := map[string]string{"message": err.Error()}

	switch err.Error() {
	case "not authenticated":
		w.WriteHeader(http.StatusUnauthorized)
	case "not authorized":
		w.WriteHeader(http.StatusForbidden)
	case "could not find word":
		w.WriteHeader(http.StatusNotFound)
	default:
		w.WriteHeader(http.StatusInternalServerError)
	}

	if jsonErr := json.NewEncoder(w).Encode(errorResponse); jsonErr != nil {
		logger.AccessLogger.Error("Failed to encode error response",
			zap.String("request_id", requestID),
			zap.Error(jsonErr),
		)
		http.Error(w, jsonErr.Error(), http.StatusInternalServerError)
	}
}
