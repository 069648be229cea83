package mocks

import (
	"github.com/stretchr/testify/mock"
)

type MockTextExtractor struct {
	mock.Mock
}

func (m *MockTextExtractor) Extract(data []byte, mimeType string) (string, error) {
	args := m.Called(data, mimeType)
	return args.String(0), args.Error(1)
}
