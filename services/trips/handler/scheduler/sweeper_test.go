package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/golang/mock/gomock"
	"github.com/piresc/cabbooking/internal/pkg/constants"
	"github.com/piresc/cabbooking/internal/pkg/database"
	"github.com/piresc/cabbooking/internal/pkg/models"
	"github.com/piresc/cabbooking/services/trips/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sweepConfig() models.TripsConfig {
	return models.TripsConfig{SweepIntervalSec: 60, SweepLockTTLSec: 55}
}

func setupLocker(t *testing.T) (*miniredis.Miniredis, *database.RedisClient) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return mr, &database.RedisClient{Client: client}
}

func TestRunOnce_OneSweepPerLockWindow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mr, locker := setupLocker(t)
	tripUC := mocks.NewMockTripUC(ctrl)
	sweeper := NewSweeper(tripUC, locker, nil, sweepConfig())
	other := NewSweeper(tripUC, locker, nil, sweepConfig())

	tripUC.EXPECT().AssignDriversToScheduledTrips(gomock.Any()).
		Return(models.SweepResult{Due: 1, Promoted: 1}, nil).Times(2)

	assert.True(t, sweeper.RunOnce(context.Background()))
	assert.False(t, other.RunOnce(context.Background()), "second replica must skip while the lock is held")
	assert.True(t, mr.Exists(constants.KeyTripSweepLock))
	assert.Equal(t, 55*time.Second, mr.TTL(constants.KeyTripSweepLock))

	mr.FastForward(56 * time.Second)
	assert.True(t, other.RunOnce(context.Background()))
}

func TestRunOnce_UseCaseErrorStillCountsAsRun(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	_, locker := setupLocker(t)
	tripUC := mocks.NewMockTripUC(ctrl)
	sweeper := NewSweeper(tripUC, locker, nil, sweepConfig())

	tripUC.EXPECT().AssignDriversToScheduledTrips(gomock.Any()).
		Return(models.SweepResult{}, errors.New("connection refused"))

	assert.True(t, sweeper.RunOnce(context.Background()))
}

func TestRunOnce_RedisDownStillSweeps(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mr, locker := setupLocker(t)
	mr.Close()
	tripUC := mocks.NewMockTripUC(ctrl)
	sweeper := NewSweeper(tripUC, locker, nil, sweepConfig())

	tripUC.EXPECT().AssignDriversToScheduledTrips(gomock.Any()).Return(models.SweepResult{}, nil)

	assert.True(t, sweeper.RunOnce(context.Background()))
}

func TestNewSweeper_Defaults(t *testing.T) {
	sweeper := NewSweeper(nil, nil, nil, models.TripsConfig{})
	assert.Equal(t, time.Minute, sweeper.interval)
	assert.Equal(t, 54*time.Second, sweeper.lockTTL)

	sweeper = NewSweeper(nil, nil, nil, models.TripsConfig{SweepIntervalSec: 30, SweepLockTTLSec: 90})
	assert.Equal(t, 27*time.Second, sweeper.lockTTL, "lock must expire before the next tick")
}

func TestStartStop(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tripUC := mocks.NewMockTripUC(ctrl)
	sweeper := NewSweeper(tripUC, nil, nil, sweepConfig())
	sweeper.interval = 10 * time.Millisecond

	ran := make(chan struct{}, 1)
	tripUC.EXPECT().AssignDriversToScheduledTrips(gomock.Any()).
		DoAndReturn(func(context.Context) (models.SweepResult, error) {
			select {
			case ran <- struct{}{}:
			default:
			}
			return models.SweepResult{}, nil
		}).MinTimes(1)

	sweeper.Start(context.Background())
	sweeper.Start(context.Background())

	select {
	case <-ran:
	case <-time.After(2 * time.Second):
		t.Fatal("sweeper never ticked")
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, sweeper.Stop(ctx))
	require.NoError(t, sweeper.Stop(ctx), "stopping twice is harmless")
}
