package mocks

import (
	"context"

	"studygeni/internal/storage"

	"github.com/stretchr/testify/mock"
)

type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) UploadFile(ctx context.Context, localPath string, opt storage.UploadOptions) (storage.UploadResult, error) {
	args := m.Called(ctx, localPath, opt)
	return args.Get(0).(storage.UploadResult), args.Error(1)
}

func (m *MockStorage) Remove(ctx context.Context, storageID string) error {
	args := m.Called(ctx, storageID)
	return args.Error(0)
}
