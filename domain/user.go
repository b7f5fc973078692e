package domain

import "context"

type User struct {
	UUID     string `gorm:"type:uuid;primaryKey;default:gen_random_uuid();column:uuid" json:"id"`
	Name     string `gorm:"type:varchar(255);not null;column:name" json:"name"`
	Email    string `gorm:"type:varchar(255);unique;not null;column:email" json:"email"`
	Password string `gorm:"type:varchar(255);not null;column:password" json:"-"`
}

type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserResponse is what GET /auth serializes: the password hash never leaves
// the store, and words is the ordered id list of the user's vocabulary.
type UserResponse struct {
	ID    string   `json:"id"`
	Name  string   `json:"name"`
	Email string   `json:"email"`
	Words []string `json:"words"`
}

type AuthRepository interface {
	CreateUser(ctx context.Context, user *User) (string, error)
	GetUserByEmail(ctx context.Context, email string) (*User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	ListUsers(ctx context.Context) ([]UserResponse, error)
}
