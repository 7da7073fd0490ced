package testutil

import (
	"github.com/stretchr/testify/mock"

	"cfswitch/internal/core/domain"
)

type MockProfileRepository struct {
	mock.Mock
}

func (m *MockProfileRepository) LoadConfig() (*domain.Config, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Config), args.Error(1)
}

func (m *MockProfileRepository) SaveConfig(config *domain.Config) error {
	args := m.Called(config)
	return args.Error(0)
}
