package mocks

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"fileapi/internal/model"
	"fileapi/internal/service"
)

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Signup(ctx context.Context, in service.SignupInput) (*model.User, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, identifier, password string) (*service.LoginResult, error) {
	args := m.Called(ctx, identifier, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.LoginResult), args.Error(1)
}

func (m *MockAuthService) ListUsers(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

type MockFileService struct {
	mock.Mock
}

func (m *MockFileService) Ingest(ctx context.Context, r io.Reader, originalFilename, contentType string, size int64, tagHint string) ([]service.FileLink, error) {
	args := m.Called(ctx, r, originalFilename, contentType, size, tagHint)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]service.FileLink), args.Error(1)
}

func (m *MockFileService) List(ctx context.Context) ([]service.FileLink, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]service.FileLink), args.Error(1)
}
