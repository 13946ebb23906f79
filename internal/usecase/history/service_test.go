package history

import (
	"context"
	"errors"
	"testing"

	"github.com/bnema/zerowrap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/dbs3/internal/boundaries/out/mocks"
	"github.com/bnema/dbs3/internal/domain"
)

func TestService_Recent_DefaultLimit(t *testing.T) {
	store := mocks.NewMockHistoryStore(t)
	store.EXPECT().List(mock.Anything, DefaultLimit).Return([]domain.BackupRun{{ID: "r1"}}, nil)

	runs, err := NewService(store, zerowrap.Default()).Recent(context.Background(), 0)
	require.NoError(t, err)
	assert.Len(t, runs, 1)
}

func TestService_Recent_PassesLimit(t *testing.T) {
	store := mocks.NewMockHistoryStore(t)
	store.EXPECT().List(mock.Anything, 5).Return(nil, nil)

	_, err := NewService(store, zerowrap.Default()).Recent(context.Background(), 5)
	require.NoError(t, err)
}

func TestService_Recent_StoreError(t *testing.T) {
	store := mocks.NewMockHistoryStore(t)
	store.EXPECT().List(mock.Anything, mock.Anything).Return(nil, errors.New("database is locked"))

	_, err := NewService(store, zerowrap.Default()).Recent(context.Background(), 5)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "database is locked")
}

func TestService_Recent_Disabled(t *testing.T) {
	runs, err := NewService(nil, zerowrap.Default()).Recent(context.Background(), 5)
	require.NoError(t, err)
	assert.Empty(t, runs)
}
