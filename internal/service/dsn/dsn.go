package dsn

import (
	"fmt"
	"os"
)

func build(host, port, user, pass, dbname string) string {
	if host == "" {
		return ""
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable", host, port, user, pass, dbname)
}

// FromEnv assembles the application DSN from DB_* environment variables.
func FromEnv() string {
	return build(
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASS"),
		os.Getenv("DB_NAME"),
	)
}

// FromEnvE2E assembles the DSN of the throwaway database used by e2e tests.
func FromEnvE2E() string {
	return build(
		os.Getenv("DB_HOST_TEST"),
		os.Getenv("DB_PORT_TEST"),
		os.Getenv("DB_USER_TEST"),
		os.Getenv("DB_PASS_TEST"),
		os.Getenv("DB_NAME_TEST"),
	)
}
