package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stpnv0/CafeBooker/internal/domain"
	"github.com/stpnv0/CafeBooker/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAvailabilityService_Get(t *testing.T) {
	repo := mocks.NewMockReservationRepo(t)
	svc := NewAvailabilityService(repo, 50)

	repo.EXPECT().BookedTerminals(mock.Anything, "2025-06-01").Return(12, nil)

	a, err := svc.Get(context.Background(), "2025-06-01")

	require.NoError(t, err)
	assert.Equal(t, &domain.Availability{
		Date:           "2025-06-01",
		TotalBooked:    12,
		Available:      38,
		TotalComputers: 50,
	}, a)
	assert.False(t, a.FullyBooked())
}

func TestAvailabilityService_Get_Overbooked(t *testing.T) {
	repo := mocks.NewMockReservationRepo(t)
	svc := NewAvailabilityService(repo, 50)

	repo.EXPECT().BookedTerminals(mock.Anything, "2025-06-01").Return(53, nil)

	a, err := svc.Get(context.Background(), "2025-06-01")

	require.NoError(t, err)
	assert.Equal(t, -3, a.Available)
	assert.True(t, a.FullyBooked())
}

func TestAvailabilityService_Get_UnknownDate(t *testing.T) {
	env := newTestEnv(t, 50)

	a, err := env.availability.Get(context.Background(), "not-a-date")

	require.NoError(t, err)
	assert.Equal(t, 0, a.TotalBooked)
	assert.Equal(t, 50, a.Available)
}

func TestAvailabilityService_Get_StoreError(t *testing.T) {
	repo := mocks.NewMockReservationRepo(t)
	svc := NewAvailabilityService(repo, 50)

	repo.EXPECT().BookedTerminals(mock.Anything, "2025-06-01").
		Return(0, errors.Join(domain.ErrStoreUnavailable, errors.New("timeout")))

	_, err := svc.Get(context.Background(), "2025-06-01")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
}

func TestAvailabilityService_SmallPool(t *testing.T) {
	env := newTestEnv(t, 3)
	ctx := context.Background()

	_, err := env.svc.Create(ctx, userU, validInput("2025-06-01", 2))
	require.NoError(t, err)

	_, err = env.svc.Create(ctx, userV, validInput("2025-06-01", 2))
	assert.Equal(t, domain.ReasonInsufficientCapacity, domain.ReasonOf(err))

	a, err := env.availability.Get(ctx, "2025-06-01")
	require.NoError(t, err)
	assert.Equal(t, 1, a.Available)
	assert.Equal(t, 3, a.TotalComputers)
}
