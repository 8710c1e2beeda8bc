package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// Store is a mock implementation of snapshot.Store
type Store struct {
	mock.Mock
}

func (m *Store) Load(ctx context.Context) (map[int]int, error) {
	args := m.Called(ctx)
	if snap, ok := args.Get(0).(map[int]int); ok {
		return snap, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Store) Save(ctx context.Context, snap map[int]int) error {
	args := m.Called(ctx, snap)
	return args.Error(0)
}

func (m *Store) Location() string {
	args := m.Called()
	return args.String(0)
}
