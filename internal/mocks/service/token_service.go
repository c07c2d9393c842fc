package service

import (
	"time"

	"authgate/internal/domain/entity"

	"github.com/stretchr/testify/mock"
)

// MockTokenService is a testify mock for service.TokenService.
type MockTokenService struct {
	mock.Mock
}

func (m *MockTokenService) Issue(identity entity.Identity) (string, error) {
	args := m.Called(identity)

	return args.String(0), args.Error(1)
}

func (m *MockTokenService) Verify(token string) (*entity.Identity, error) {
	args := m.Called(token)
	if identity, ok := args.Get(0).(*entity.Identity); ok {
		return identity, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockTokenService) TokenTTL() time.Duration {
	args := m.Called()

	return args.Get(0).(time.Duration)
}
