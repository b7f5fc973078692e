package mocks

import (
	"context"

	"wordbook/domain"

	"github.com/stretchr/testify/mock"
)

type MockWordRepository struct {
	mock.Mock
}

func (m *MockWordRepository) ListWords(ctx context.Context) ([]domain.Word, error) {
	args := m.Called(ctx)
	if args.Get(0) != nil {
		return args.Get(0).([]domain.Word), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockWordRepository) GetWordByID(ctx context.Context, id string) (*domain.Word, error) {
	args := m.Called(ctx, id)
	if args.Get(0) != nil {
		return args.Get(0).(*domain.Word), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockWordRepository) WordExists(ctx context.Context, word string) (bool, error) {
	args := m.Called(ctx, word)
	return args.Bool(0), args.Error(1)
}

func (m *MockWordRepository) CreateWord(ctx context.Context, word *domain.Word) error {
	args := m.Called(ctx, word)
	return args.Error(0)
}

func (m *MockWordRepository) UpdateWord(ctx context.Context, id string, word string, translate string, description string) (*domain.Word, error) {
	args := m.Called(ctx, id, word, translate, description)
	if args.Get(0) != nil {
		return args.Get(0).(*domain.Word), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockWordRepository) DeleteWord(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockWordRepository) GetCreator(ctx context.Context, userID string) (*domain.CreatorSummary, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) != nil {
		return args.Get(0).(*domain.CreatorSummary), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockWordUsecase struct {
	mock.Mock
}

func (m *MockWordUsecase) ListWords(ctx context.Context) ([]domain.Word, error) {
	args := m.Called(ctx)
	if args.Get(0) != nil {
		return args.Get(0).([]domain.Word), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockWordUsecase) GetWord(ctx context.Context, id string) (*domain.Word, error) {
	args := m.Called(ctx, id)
	if args.Get(0) != nil {
		return args.Get(0).(*domain.Word), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockWordUsecase) AddWord(ctx context.Context, callerID string, payload domain.WordRequest) (*domain.Word, *domain.CreatorSummary, error) {
	args := m.Called(ctx, callerID, payload)
	var word *domain.Word
	var creator *domain.CreatorSummary
	if args.Get(0) != nil {
		word = args.Get(0).(*domain.Word)
	}
	if args.Get(1) != nil {
		creator = args.Get(1).(*domain.CreatorSummary)
	}
	return word, creator, args.Error(2)
}

func (m *MockWordUsecase) UpdateWord(ctx context.Context, id string, callerID string, payload domain.WordRequest) (*domain.Word, error) {
	args := m.Called(ctx, id, callerID, payload)
	if args.Get(0) != nil {
		return args.Get(0).(*domain.Word), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockWordUsecase) DeleteWord(ctx context.Context, id string, callerID string) (*domain.Word, error) {
	args := m.Called(ctx, id, callerID)
	if args.Get(0) != nil {
		return args.Get(0).(*domain.Word), args.Error(1)
	}
	return nil, args.Error(1)
}
