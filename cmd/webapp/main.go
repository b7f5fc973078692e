package main

import (
	"fmt"
	"log"
	"net/http"
	"os"

	authController "wordbook/internal/auth/controller"
	authRepository "wordbook/internal/auth/repository"
	authUsecase "wordbook/internal/auth/usecase"

	wordController "wordbook/internal/word/controller"
	wordRepository "wordbook/internal/word/repository"
	wordUsecase "wordbook/internal/word/usecase"

	"wordbook/internal/service/cache"
	"wordbook/internal/service/logger"
	"wordbook/internal/service/middleware"
	"wordbook/internal/service/router"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	db := middleware.DbConnect()
	jwtToken, err := middleware.NewJwtToken(os.Getenv("JWT_SECRET"))
	if err != nil {
		log.Fatalf("Failed to create JWT token: %v", err)
	}

	if err := logger.InitLoggers(); err != nil {
		log.Fatalf("Failed to initialize loggers: %v", err)
	}
	defer func() {
		err := logger.SyncLoggers()
		if err != nil {
			log.Fatalf("Failed to sync loggers: %v", err)
		}
	}()

	var wordsCache *cache.WordsCache
	if redisClient, err := cache.NewRedisClient(); err != nil {
		log.Printf("Words cache disabled: %v", err)
	} else {
		wordsCache = cache.NewWordsCache(redisClient)
	}

	authRepo := authRepository.NewAuthRepository(db)
	authUC := authUsecase.NewAuthUsecase(authRepo)
	authHandler := authController.NewAuthHandler(authUC, jwtToken)

	wordRepo := wordRepository.NewWordRepository(db)
	wordUC := wordUsecase.NewWordUsecase(wordRepo, wordsCache)
	wordHandler := wordController.NewWordHandler(wordUC)

	mainRouter := router.SetUpRoutes(authHandler, wordHandler, jwtToken)
	mainRouter.Use(middleware.RequestIDMiddleware)
	mainRouter.Use(middleware.RateLimitMiddleware)
	http.Handle("/", middleware.EnableCORS(mainRouter))
	fmt.Printf("Starting HTTP server on address %s\n", os.Getenv("BACKEND_URL"))
	if err := http.ListenAndServe(os.Getenv("BACKEND_URL"), nil); err != nil {
		fmt.Printf("Error on starting server: %s", err)
	}
}
