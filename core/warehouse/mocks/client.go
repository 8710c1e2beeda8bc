package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// Client is a mock implementation of warehouse.Client
type Client struct {
	mock.Mock
}

func (m *Client) GetStock(ctx context.Context, productID int) (int, error) {
	args := m.Called(ctx, productID)
	return args.Int(0), args.Error(1)
}

func (m *Client) UpdateStock(ctx context.Context, productID, quantity int) error {
	args := m.Called(ctx, productID, quantity)
	return args.Error(0)
}

func (m *Client) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
