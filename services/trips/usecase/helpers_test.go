package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/piresc/cabbooking/internal/pkg/models"
	"github.com/piresc/cabbooking/services/trips"
)

var fixedNow = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

func testConfig() *models.Config {
	cfg := &models.Config{}
	cfg.Trips.NearbyRadiusKm = 50
	cfg.Trips.LookaheadMinutes = 15
	cfg.Trips.MaxReservationTries = 3
	return cfg
}

func newTestUC(repo trips.TripRepo, gw trips.TripGW) *TripUC {
	uc := NewTripUC(testConfig(), repo, gw)
	uc.now = func() time.Time { return fixedNow }
	return uc
}

func newDriver(username, carType string, rating, lat, lng, rate float64) *models.Driver {
	id := uuid.New()
	return &models.Driver{
		UserID:       id,
		Username:     username,
		Verified:     true,
		IsAvailable:  true,
		Rating:       &rating,
		TotalRatings: 10,
		Latitude:     &lat,
		Longitude:    &lng,
		Cab: &models.Cab{
			ID:          uuid.New(),
			DriverID:    id,
			CarType:     carType,
			PerKmRate:   rate,
			IsAvailable: true,
		},
	}
}

func assignedTrip(status models.TripStatus, driver *models.Driver, customerUsername string) *models.Trip {
	from := fixedNow.Add(-30 * time.Minute)
	trip := &models.Trip{
		ID:               uuid.New(),
		CustomerID:       uuid.New(),
		CustomerUsername: customerUsername,
		FromLocation:     "Central Station",
		ToLocation:       "Airport",
		FromDateTime:     &from,
		DistanceKm:       10,
		CarType:          driver.Cab.CarType,
		Status:           status,
		CreatedAt:        from,
		UpdatedAt:        from,
	}
	trip.AssignTo(driver)
	return trip
}

func bookRequest(carType string) models.BookTripRequest {
	return models.BookTripRequest{
		FromLocation:  "Central Station",
		ToLocation:    "Airport",
		DistanceKm:    5,
		CarType:       carType,
		FromLatitude:  0,
		FromLongitude: 0,
	}
}
