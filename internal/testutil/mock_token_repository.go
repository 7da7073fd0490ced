package testutil

import (
	"github.com/stretchr/testify/mock"

	"cfswitch/internal/core/domain"
)

// MockTokenRepository provides a testify mock for core.TokenRepository
type MockTokenRepository struct {
	mock.Mock
}

func (m *MockTokenRepository) StoreToken(profileName, token string) error {
	args := m.Called(profileName, token)
	return args.Error(0)
}

func (m *MockTokenRepository) ResolveToken(profileName string, profile domain.Profile) (string, error) {
	args := m.Called(profileName, profile)
	return args.String(0), args.Error(1)
}

func (m *MockTokenRepository) DeleteToken(profileName string) error {
	args := m.Called(profileName)
	return args.Error(0)
}
