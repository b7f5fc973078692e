package domain

import (
	"context"
	"time"
)

type Word struct {
	UUID        string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid();column:uuid" json:"id"`
	Word        string    `gorm:"type:varchar(255);unique;not null;column:word" json:"word"`
	Translate   string    `gorm:"type:varchar(255);not null;column:translate" json:"translate"`
	Description string    `gorm:"type:text;column:description" json:"description,omitempty"`
	CreatorID   string    `gorm:"column:creator_id;not null;index" json:"creator"`
	CreatedAt   time.Time `gorm:"column:created_at" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"column:updated_at" json:"updatedAt"`
	Creator     User      `gorm:"foreignkey:CreatorID;references:UUID" json:"-"`
}

type WordRequest struct {
	Word        string `json:"word"`
	Translate   string `json:"translate"`
	Description string `json:"description"`
}

type CreatorSummary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type WordRepository interface {
	ListWords(ctx context.Context) ([]Word, error)
	GetWordByID(ctx context.Context, id string) (*Word, error)
	WordExists(ctx context.Context, word string) (bool, error)
	CreateWord(ctx context.Context, word *Word) error
	UpdateWord(ctx context.Context, id string, word string, translate string, description string) (*Word, error)
	DeleteWord(ctx context.Context, id string) error
	GetCreator(ctx context.Context, userID string) (*CreatorSummary, error)
}
