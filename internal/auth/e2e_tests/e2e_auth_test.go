package e2e_tests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"wordbook/domain"
	auth "wordbook/internal/auth/controller"
	authRepository "wordbook/internal/auth/repository"
	authUsecase "wordbook/internal/auth/usecase"
	"wordbook/internal/service/dsn"
	"wordbook/internal/service/logger"
	"wordbook/internal/service/middleware"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	_ = godotenv.Load("../../../.env")
	testDSN := dsn.FromEnvE2E()
	if testDSN == "" {
		t.Skip("DB_*_TEST environment is not configured")
	}

	db, err := gorm.Open(postgres.Open(testDSN), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&domain.User{}, &domain.Word{}))
	return db
}

func cleanupTestDB(t *testing.T, db *gorm.DB) {
	assert.NoError(t, db.Migrator().DropTable(&domain.Word{}, &domain.User{}))
}

func setupAuthServer(t *testing.T, db *gorm.DB) (*httptest.Server, middleware.JwtTokenService) {
	jwtToken, err := middleware.NewJwtToken("secret-key")
	require.NoError(t, err)

	require.NoError(t, logger.InitLoggers())

	authRepo := authRepository.NewAuthRepository(db)
	authUC := authUsecase.NewAuthUsecase(authRepo)
	authHandler := auth.NewAuthHandler(authUC, jwtToken)

	router := mux.NewRouter()
	router.HandleFunc("/auth", authHandler.ListUsers).Methods("GET")
	router.HandleFunc("/auth", authHandler.Signup).Methods("PUT")
	router.HandleFunc("/auth", authHandler.Login).Methods("POST")
	router.Use(middleware.RequestIDMiddleware)

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)
	return server, jwtToken
}

func TestSignupAndLoginE2E(t *testing.T) {
	db := setupTestDB(t)
	defer cleanupTestDB(t, db)

	server, jwtToken := setupAuthServer(t, db)

	// Signup normalizes the email and answers with the new user id.
	signupBody, _ := json.Marshal(domain.SignupRequest{Name: "A", Email: "A@X.com", Password: "12345"})
	req, _ := http.NewRequest(http.MethodPut, server.URL+"/auth", bytes.NewReader(signupBody))
	req.Header.Set("Content-Type", "application/json")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var signup map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&signup))
	assert.Equal(t, "User created.", signup["message"])
	userID := signup["userId"]
	require.NotEmpty(t, userID)

	var stored domain.User
	require.NoError(t, db.First(&stored, "uuid = ?", userID).Error)
	assert.Equal(t, "a@x.com", stored.Email)
	assert.NotEqual(t, "12345", stored.Password)

	// Duplicate signup is rejected with the email violation and persists nothing.
	resp2, err := http.DefaultClient.Do(cloneRequest(t, http.MethodPut, server.URL+"/auth", signupBody))
	require.NoError(t, err)
	defer resp2.Body.Close()
	assert.Equal(t, http.StatusUnprocessableEntity, resp2.StatusCode)

	var dup map[string]interface{}
	require.NoError(t, json.NewDecoder(resp2.Body).Decode(&dup))
	violations := dup["array"].([]interface{})
	require.Len(t, violations, 1)
	assert.Equal(t, "email", violations[0].(map[string]interface{})["param"])

	var count int64
	require.NoError(t, db.Model(&domain.User{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)

	// Login with the original casing issues a token the middleware accepts.
	loginBody, _ := json.Marshal(domain.LoginRequest{Email: "A@X.com", Password: "12345"})
	resp3, err := http.DefaultClient.Do(cloneRequest(t, http.MethodPost, server.URL+"/auth", loginBody))
	require.NoError(t, err)
	defer resp3.Body.Close()
	assert.Equal(t, http.StatusOK, resp3.StatusCode)

	var login map[string]string
	require.NoError(t, json.NewDecoder(resp3.Body).Decode(&login))
	assert.Equal(t, userID, login["userId"])

	claims, err := jwtToken.Validate(login["token"])
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserId)

	// Unknown email and wrong password yield the same observable answer.
	unknownBody, _ := json.Marshal(domain.LoginRequest{Email: "missing@x.com", Password: "12345"})
	wrongBody, _ := json.Marshal(domain.LoginRequest{Email: "a@x.com", Password: "54321"})

	respUnknown, err := http.DefaultClient.Do(cloneRequest(t, http.MethodPost, server.URL+"/auth", unknownBody))
	require.NoError(t, err)
	defer respUnknown.Body.Close()
	respWrong, err := http.DefaultClient.Do(cloneRequest(t, http.MethodPost, server.URL+"/auth", wrongBody))
	require.NoError(t, err)
	defer respWrong.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, respUnknown.StatusCode)
	assert.Equal(t, http.StatusUnauthorized, respWrong.StatusCode)

	var unknownResp, wrongResp map[string]string
	require.NoError(t, json.NewDecoder(respUnknown.Body).Decode(&unknownResp))
	require.NoError(t, json.NewDecoder(respWrong.Body).Decode(&wrongResp))
	assert.Equal(t, unknownResp["message"], wrongResp["message"])
}

func cloneRequest(t *testing.T, method, url string, body []byte) *http.Request {
	req, err := http.NewRequest(method, url, bytes.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	return req
}
