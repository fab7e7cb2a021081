package services_test

import (
	"context"
	"encoding/json"

	"github.com/stretchr/testify/mock"
)

// mockAPI stands in for the REST transport.
type mockAPI struct {
	mock.Mock
}

func (m *mockAPI) Get(ctx context.Context, path string, out any) error {
	args := m.Called(ctx, path, out)

	return args.Error(0)
}

func (m *mockAPI) Post(ctx context.Context, path string, body, out any) error {
	args := m.Called(ctx, path, body, out)

	return args.Error(0)
}

func (m *mockAPI) Put(ctx context.Context, path string, body, out any) error {
	args := m.Called(ctx, path, body, out)

	return args.Error(0)
}

func (m *mockAPI) Delete(ctx context.Context, path string) error {
	args := m.Called(ctx, path)

	return args.Error(0)
}

// respondWith decodes canned JSON into the out argument at the given index,
// simulating a parsed response body.
func respondWith(raw string, outIndex int) func(mock.Arguments) {
	return func(args mock.Arguments) {
		_ = json.Unmarshal([]byte(raw), args.Get(outIndex))
	}
}
