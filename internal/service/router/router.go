package router

import (
	auth "wordbook/internal/auth/controller"
	"wordbook/internal/service/middleware"
	word "wordbook/internal/word/controller"

	"github.com/gorilla/mux"
)

func SetUpRoutes(authHandler *auth.AuthHandler, wordHandler *word.WordHandler, jwtToken middleware.JwtTokenService) *mux.Router {
	router := mux.NewRouter()

	router.HandleFunc("/auth", authHandler.ListUsers).Methods("GET") // Get all users
	router.HandleFunc("/auth", authHandler.Signup).Methods("PUT")    // Signup new user
	router.HandleFunc("/auth", authHandler.Login).Methods("POST")    // User login

	words := router.PathPrefix("/word").Subrouter()
	words.Use(middleware.Auth(jwtToken))
	words.HandleFunc("", wordHandler.ListWords).Methods("GET")
	words.HandleFunc("/{wordId}", wordHandler.GetWord).Methods("GET")
	words.HandleFunc("", wordHandler.AddWord).Methods("POST")
	words.HandleFunc("/{wordId}", wordHandler.UpdateWord).Methods("PUT")
	words.HandleFunc("/{wordId}", wordHandler.DeleteWord).Methods("DELETE")

	return router
}
