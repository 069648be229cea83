package mocks

import (
	"alumnihub/internal/notify"
	"github.com/stretchr/testify/mock"
)

type MockQueue struct {
	mock.Mock
}

func (m *MockQueue) Enqueue(n notify.Notification) bool {
	args := m.Called(n)
	return args.Bool(0)
}
