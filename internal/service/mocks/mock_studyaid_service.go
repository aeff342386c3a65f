package mocks

import (
	"context"

	"studygeni/internal/service"

	"github.com/stretchr/testify/mock"
)

type MockStudyAidService struct {
	mock.Mock
}

func (m *MockStudyAidService) Summary(ctx context.Context, docID string) (*service.SummaryResult, error) {
	args := m.Called(ctx, docID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.SummaryResult), args.Error(1)
}

func (m *MockStudyAidService) Quiz(ctx context.Context, docID string) (*service.QuizResult, error) {
	args := m.Called(ctx, docID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.QuizResult), args.Error(1)
}
