package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/piresc/cabbooking/internal/pkg/models"
	"github.com/piresc/cabbooking/services/trips/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookTrip_ImmediateAssignsDriver(t *testing.T) {
	repo := newMemoryRepo()
	customer := repo.addCustomer("alice")
	driver := repo.addDriver("bob", "Sedan", 4.0, 10, 0, 0, 10)
	uc := newTestUC(repo, nopGW{})

	trip, err := uc.BookTrip(context.Background(), customer.ID, bookRequest("Sedan"))

	require.NoError(t, err)
	assert.Equal(t, models.TripStatusConfirmed, trip.Status)
	require.NotNil(t, trip.DriverID)
	assert.Equal(t, driver.UserID, *trip.DriverID)
	assert.Equal(t, driver.Cab.ID, *trip.CabID)
	assert.Equal(t, 10.0, *trip.PerKmRate)
	assert.Equal(t, "alice", trip.CustomerUsername)
	assert.Equal(t, fixedNow, *trip.FromDateTime)
	assert.NotEmpty(t, trip.PickupGeohash)

	stored := repo.driver(driver.UserID)
	assert.False(t, stored.IsAvailable)
	assert.False(t, stored.Cab.IsAvailable)
}

func TestBookTrip_NoEligibleDriver(t *testing.T) {
	tests := []struct {
		name  string
		setup func(repo *memoryRepo)
	}{
		{name: "no drivers at all", setup: func(repo *memoryRepo) {}},
		{name: "only other car types", setup: func(repo *memoryRepo) {
			repo.addDriver("bob", "SUV", 5.0, 10, 0, 0, 10)
		}},
		{name: "driver outside pickup radius", setup: func(repo *memoryRepo) {
			repo.addDriver("bob", "Sedan", 5.0, 10, 10, 10, 10)
		}},
		{name: "driver already busy", setup: func(repo *memoryRepo) {
			d := repo.addDriver("bob", "Sedan", 5.0, 10, 0, 0, 10)
			repo.drivers[d.UserID].IsAvailable = false
		}},
		{name: "driver not verified", setup: func(repo *memoryRepo) {
			d := repo.addDriver("bob", "Sedan", 5.0, 10, 0, 0, 10)
			repo.drivers[d.UserID].Verified = false
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newMemoryRepo()
			customer := repo.addCustomer("alice")
			tt.setup(repo)
			uc := newTestUC(repo, nopGW{})

			trip, err := uc.BookTrip(context.Background(), customer.ID, bookRequest("Sedan"))

			assert.Nil(t, trip)
			assert.ErrorIs(t, err, models.ErrNoDriverAvailable)
			assert.Contains(t, err.Error(), "Sedan")
			assert.Empty(t, repo.trips)
		})
	}
}

func TestBookTrip_PicksHighestRatedDriver(t *testing.T) {
	repo := newMemoryRepo()
	customer := repo.addCustomer("alice")
	repo.addDriver("low", "Sedan", 3.5, 10, 0.01, 0.01, 10)
	best := repo.addDriver("best", "Sedan", 4.8, 10, 0.02, 0.02, 10)
	repo.addDriver("mid", "Sedan", 4.2, 10, 0, 0, 10)
	uc := newTestUC(repo, nopGW{})

	trip, err := uc.BookTrip(context.Background(), customer.ID, bookRequest("sedan"))

	require.NoError(t, err)
	assert.Equal(t, best.UserID, *trip.DriverID)
}

func TestBookTrip_RetriesNextCandidateOnConflict(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockTripRepo(ctrl)
	gw := mocks.NewMockTripGW(ctrl)
	uc := newTestUC(repo, gw)

	customer := &models.Customer{ID: uuid.New(), Username: "alice"}
	first := newDriver("first", "Sedan", 4.9, 0, 0, 10)
	second := newDriver("second", "Sedan", 4.1, 0, 0, 12)

	repo.EXPECT().FindCustomerByID(gomock.Any(), customer.ID).Return(customer, nil)
	repo.EXPECT().FindEligibleDrivers(gomock.Any(), "Sedan").Return([]*models.Driver{second, first}, nil)
	gomock.InOrder(
		repo.EXPECT().CreateTripWithReservation(gomock.Any(), gomock.Any(), first).Return(models.ErrDriverReserved),
		repo.EXPECT().CreateTripWithReservation(gomock.Any(), gomock.Any(), second).Return(nil),
	)
	gw.EXPECT().PublishTripBooked(gomock.Any(), gomock.Any()).Return(nil)

	trip, err := uc.BookTrip(context.Background(), customer.ID, bookRequest("Sedan"))

	require.NoError(t, err)
	assert.Equal(t, second.UserID, *trip.DriverID)
	assert.Equal(t, 12.0, *trip.PerKmRate)
}

func TestBookTrip_StopsAfterMaxReservationTries(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockTripRepo(ctrl)
	gw := mocks.NewMockTripGW(ctrl)
	uc := newTestUC(repo, gw)

	customer := &models.Customer{ID: uuid.New(), Username: "alice"}
	drivers := []*models.Driver{
		newDriver("d1", "Sedan", 4.9, 0, 0, 10),
		newDriver("d2", "Sedan", 4.8, 0, 0, 10),
		newDriver("d3", "Sedan", 4.7, 0, 0, 10),
		newDriver("d4", "Sedan", 4.6, 0, 0, 10),
	}

	repo.EXPECT().FindCustomerByID(gomock.Any(), customer.ID).Return(customer, nil)
	repo.EXPECT().FindEligibleDrivers(gomock.Any(), "Sedan").Return(drivers, nil)
	repo.EXPECT().CreateTripWithReservation(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(models.ErrDriverReserved).Times(3)

	trip, err := uc.BookTrip(context.Background(), customer.ID, bookRequest("Sedan"))

	assert.Nil(t, trip)
	assert.ErrorIs(t, err, models.ErrNoDriverAvailable)
}

func TestBookTrip_StorageErrorStopsMatching(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockTripRepo(ctrl)
	gw := mocks.NewMockTripGW(ctrl)
	uc := newTestUC(repo, gw)

	customer := &models.Customer{ID: uuid.New(), Username: "alice"}
	dbErr := errors.New("connection refused")

	repo.EXPECT().FindCustomerByID(gomock.Any(), customer.ID).Return(customer, nil)
	repo.EXPECT().FindEligibleDrivers(gomock.Any(), "Sedan").Return([]*models.Driver{
		newDriver("d1", "Sedan", 4.9, 0, 0, 10),
		newDriver("d2", "Sedan", 4.8, 0, 0, 10),
	}, nil)
	repo.EXPECT().CreateTripWithReservation(gomock.Any(), gomock.Any(), gomock.Any()).Return(dbErr).Times(1)

	_, err := uc.BookTrip(context.Background(), customer.ID, bookRequest("Sedan"))

	assert.ErrorIs(t, err, dbErr)
	assert.NotErrorIs(t, err, models.ErrNoDriverAvailable)
}

func TestBookTrip_FutureRequestIsScheduled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockTripRepo(ctrl)
	gw := mocks.NewMockTripGW(ctrl)
	uc := newTestUC(repo, gw)

	customer := &models.Customer{ID: uuid.New(), Username: "alice"}
	scheduledAt := fixedNow.Add(2 * time.Hour)
	req := bookRequest("SUV")
	req.ScheduledAt = &scheduledAt

	repo.EXPECT().FindCustomerByID(gomock.Any(), customer.ID).Return(customer, nil)
	repo.EXPECT().CreateTrip(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, trip *models.Trip) error {
		assert.Equal(t, models.TripStatusScheduled, trip.Status)
		assert.Nil(t, trip.DriverID)
		return nil
	})
	gw.EXPECT().PublishTripBooked(gomock.Any(), gomock.Any()).Return(errors.New("nats down"))

	trip, err := uc.BookTrip(context.Background(), customer.ID, req)

	require.NoError(t, err)
	assert.Equal(t, models.TripStatusScheduled, trip.Status)
	assert.True(t, scheduledAt.Equal(*trip.FromDateTime))
	assert.False(t, trip.HasAssignment())
}

func TestBookTrip_RejectedBeforeMatching(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockTripRepo(ctrl)
	gw := mocks.NewMockTripGW(ctrl)
	uc := newTestUC(repo, gw)

	t.Run("invalid request", func(t *testing.T) {
		req := bookRequest("Sedan")
		req.DistanceKm = 0

		_, err := uc.BookTrip(context.Background(), uuid.New(), req)
		assert.ErrorIs(t, err, models.ErrValidation)
	})

	t.Run("unknown customer", func(t *testing.T) {
		id := uuid.New()
		repo.EXPECT().FindCustomerByID(gomock.Any(), id).Return(nil, models.ErrNotFound)

		_, err := uc.BookTrip(context.Background(), id, bookRequest("Sedan"))
		assert.ErrorIs(t, err, models.ErrNotFound)
	})
}
