package testutil

import (
	"github.com/stretchr/testify/mock"
)

// MockCloudflareClient provides a testify mock for ports.CloudflareClient
type MockCloudflareClient struct {
	mock.Mock
}

func (m *MockCloudflareClient) PurgeZone(email, token, zone string) error {
	args := m.Called(email, token, zone)
	return args.Error(0)
}

func (m *MockCloudflareClient) CreateProxiedCNAME(email, token, zone, name, content string) (bool, error) {
	args := m.Called(email, token, zone, name, content)
	return args.Bool(0), args.Error(1)
}
