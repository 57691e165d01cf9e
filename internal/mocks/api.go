package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/lamdoan/classdesk/internal/model"
)

// AuthAPI is a mock of model.AuthAPI.
type AuthAPI struct {
	mock.Mock
}

func (m *AuthAPI) Login(ctx context.Context, email, password string) (model.Session, error) {
	args := m.Called(ctx, email, password)
	return args.Get(0).(model.Session), args.Error(1)
}

func (m *AuthAPI) Logout(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *AuthAPI) Verify(ctx context.Context) (model.User, error) {
	args := m.Called(ctx)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *AuthAPI) SetToken(token string) error {
	args := m.Called(token)
	return args.Error(0)
}

// CatalogAPI is a mock of model.CatalogAPI.
type CatalogAPI struct {
	mock.Mock
}

func (m *CatalogAPI) Students(ctx context.Context) ([]model.Student, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Student), args.Error(1)
}

func (m *CatalogAPI) Users(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

func (m *CatalogAPI) Classes(ctx context.Context) ([]model.Class, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Class), args.Error(1)
}

func (m *CatalogAPI) Scores(ctx context.Context) ([]model.Score, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Score), args.Error(1)
}

// HealthAPI is a mock of model.HealthAPI.
type HealthAPI struct {
	mock.Mock
}

func (m *HealthAPI) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
