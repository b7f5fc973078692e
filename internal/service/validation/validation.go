package validation

import (
	"regexp"
	"strings"

	"wordbook/domain"
)

const (
	MsgInvalidEmail   = "Please enter a valid email."
	MsgEmailTaken     = "E-mail address already exists."
	MsgShortPassword  = "Password must be at least 5 characters long."
	MsgEmptyName      = "Name must not be empty."
	MsgEmptyWord      = "Word must not be empty."
	MsgWordTaken      = "This word already exists."
	MsgEmptyTranslate = "Translate must not be empty."
)

const minPasswordLen = 5

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// NormalizeEmail trims and lowercases an address; every email is stored and
// compared in this form.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func ValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

func ValidPassword(password string) bool {
	return len(strings.TrimSpace(password)) >= minPasswordLen
}

func NotEmpty(value string) bool {
	return strings.TrimSpace(value) != ""
}

// Login checks email shape and password length only; existence is deliberately
// not checked here so login validation cannot leak which emails are registered.
func Login(email string, password string) []domain.Violation {
	violations := make([]domain.Violation, 0)
	if !ValidEmail(email) {
		violations = append(violations, domain.Violation{Param: "email", Message: MsgInvalidEmail})
	}
	if !ValidPassword(password) {
		violations = append(violations, domain.Violation{Param: "password", Message: MsgShortPassword})
	}
	return violations
}

// WordPayload covers both add-word and update-word; the word-uniqueness rule
// applies only on add and is appended by the usecase.
func WordPayload(word string, translate string) []domain.Violation {
	violations := make([]domain.Violation, 0)
	if !NotEmpty(word) {
		violations = append(violations, domain.Violation{Param: "word", Message: MsgEmptyWord})
	}
	if !NotEmpty(translate) {
		violations = append(violations, domain.Violation{Param: "translate", Message: MsgEmptyTranslate})
	}
	return violations
}
