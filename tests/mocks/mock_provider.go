package mocks

import (
	"context"

	"fittrack/internal/nutrientdb"

	"github.com/stretchr/testify/mock"
)

// Shared MockNutrientProvider
type MockNutrientProvider struct {
	mock.Mock
}

func (m *MockNutrientProvider) Search(ctx context.Context, query string) ([]string, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockNutrientProvider) Lookup(ctx context.Context, foodName string) (nutrientdb.Nutrients, error) {
	args := m.Called(ctx, foodName)
	return args.Get(0).(nutrientdb.Nutrients), args.Error(1)
}
