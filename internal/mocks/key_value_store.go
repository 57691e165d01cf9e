// Package mocks provides testify mocks for the model ports.
package mocks

import (
	"github.com/stretchr/testify/mock"
)

// KeyValueStore is a mock of model.KeyValueStore.
type KeyValueStore struct {
	mock.Mock
}

func (m *KeyValueStore) Get(key string) (string, error) {
	args := m.Called(key)
	return args.String(0), args.Error(1)
}

func (m *KeyValueStore) Set(key, value string) error {
	args := m.Called(key, value)
	return args.Error(0)
}

func (m *KeyValueStore) Remove(key string) error {
	args := m.Called(key)
	return args.Error(0)
}
