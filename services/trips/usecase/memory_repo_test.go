package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/cabbooking/internal/pkg/models"
)

// memoryRepo is a TripRepo with the same compare-and-set semantics as the
// Postgres implementation, used to exercise concurrent bookings.
type memoryRepo struct {
	mu        sync.Mutex
	customers map[uuid.UUID]*models.Customer
	drivers   map[uuid.UUID]*models.Driver
	trips     map[uuid.UUID]*models.Trip
	history   map[uuid.UUID][]models.TripStatus

	// findBarrier, when set, holds every FindEligibleDrivers caller until all
	// of them have read the driver list
	findBarrier *sync.WaitGroup
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{
		customers: map[uuid.UUID]*models.Customer{},
		drivers:   map[uuid.UUID]*models.Driver{},
		trips:     map[uuid.UUID]*models.Trip{},
		history:   map[uuid.UUID][]models.TripStatus{},
	}
}

func (r *memoryRepo) addCustomer(username string) *models.Customer {
	c := &models.Customer{ID: uuid.New(), Username: username, Email: username + "@example.com"}
	r.customers[c.ID] = c
	return c
}

func (r *memoryRepo) addDriver(username, carType string, rating float64, totalRatings int, lat, lng, rate float64) *models.Driver {
	id := uuid.New()
	d := &models.Driver{
		UserID:       id,
		Username:     username,
		Verified:     true,
		IsAvailable:  true,
		Rating:       &rating,
		TotalRatings: totalRatings,
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
	r.drivers[id] = d
	return copyDriver(d)
}

func (r *memoryRepo) driver(id uuid.UUID) *models.Driver {
	r.mu.Lock()
	defer r.mu.Unlock()
	return copyDriver(r.drivers[id])
}

func (r *memoryRepo) activeTripsOf(driverID uuid.UUID) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, t := range r.trips {
		if t.DriverID != nil && *t.DriverID == driverID && !t.Status.IsTerminal() && t.Status != models.TripStatusScheduled {
			n++
		}
	}
	return n
}

func copyDriver(d *models.Driver) *models.Driver {
	cp := *d
	if d.Cab != nil {
		cab := *d.Cab
		cp.Cab = &cab
	}
	return &cp
}

func copyTrip(t *models.Trip) *models.Trip {
	cp := *t
	return &cp
}

func (r *memoryRepo) FindCustomerByID(_ context.Context, customerID uuid.UUID) (*models.Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.customers[customerID]
	if !ok {
		return nil, fmt.Errorf("%w: customer %s", models.ErrNotFound, customerID)
	}
	cp := *c
	return &cp, nil
}

func (r *memoryRepo) FindEligibleDrivers(_ context.Context, carType string) ([]*models.Driver, error) {
	r.mu.Lock()
	var out []*models.Driver
	for _, d := range r.drivers {
		if d.IsEligibleFor(carType) && d.Cab.IsAvailable && !r.hasActiveTripLocked(d.UserID) {
			out = append(out, copyDriver(d))
		}
	}
	r.mu.Unlock()

	if r.findBarrier != nil {
		r.findBarrier.Done()
		r.findBarrier.Wait()
	}
	return out, nil
}

func (r *memoryRepo) hasActiveTripLocked(driverID uuid.UUID) bool {
	for _, t := range r.trips {
		if t.DriverID != nil && *t.DriverID == driverID &&
			(t.Status == models.TripStatusConfirmed || t.Status == models.TripStatusInProgress) {
			return true
		}
	}
	return false
}

func (r *memoryRepo) reserveLocked(d *models.Driver) error {
	stored, ok := r.drivers[d.UserID]
	if !ok || stored.Cab == nil || !stored.IsAvailable || !stored.Verified || !stored.Cab.IsAvailable {
		return models.ErrDriverReserved
	}
	stored.IsAvailable = false
	stored.Cab.IsAvailable = false
	d.IsAvailable = false
	d.Cab.IsAvailable = false
	return nil
}

func (r *memoryRepo) record(t *models.Trip) {
	r.trips[t.ID] = copyTrip(t)
	r.history[t.ID] = append(r.history[t.ID], t.Status)
}

func (r *memoryRepo) CreateTrip(_ context.Context, trip *models.Trip) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.record(trip)
	return nil
}

func (r *memoryRepo) CreateTripWithReservation(_ context.Context, trip *models.Trip, driver *models.Driver) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.reserveLocked(driver); err != nil {
		return err
	}
	r.record(trip)
	return nil
}

func (r *memoryRepo) AssignScheduledTrip(_ context.Context, trip *models.Trip, driver *models.Driver) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.trips[trip.ID]
	if !ok || stored.Status != models.TripStatusScheduled || stored.DriverID != nil {
		return fmt.Errorf("%w: trip %s is no longer scheduled", models.ErrIllegalState, trip.ID)
	}
	if err := r.reserveLocked(driver); err != nil {
		return err
	}
	r.record(trip)
	return nil
}

func (r *memoryRepo) UpdateTripStatus(_ context.Context, trip *models.Trip, from models.TripStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.trips[trip.ID]
	if !ok || stored.Status != from {
		return fmt.Errorf("%w: trip %s changed status concurrently", models.ErrIllegalState, trip.ID)
	}
	r.record(trip)
	if trip.Status.IsTerminal() && trip.DriverID != nil {
		if d, ok := r.drivers[*trip.DriverID]; ok {
			d.IsAvailable = true
			if d.Cab != nil {
				d.Cab.IsAvailable = true
			}
		}
	}
	return nil
}

func (r *memoryRepo) RateTrip(_ context.Context, trip *models.Trip, rating int) (*models.Driver, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.trips[trip.ID]
	if !ok || stored.Status != models.TripStatusCompleted || stored.CustomerRating != nil {
		return nil, fmt.Errorf("%w: trip %s is already rated", models.ErrIllegalState, trip.ID)
	}
	stored.CustomerRating = &rating
	d := r.drivers[*stored.DriverID]
	d.ApplyRating(rating)
	return copyDriver(d), nil
}

func (r *memoryRepo) GetTripByID(_ context.Context, tripID uuid.UUID) (*models.Trip, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.trips[tripID]
	if !ok {
		return nil, fmt.Errorf("%w: trip %s", models.ErrNotFound, tripID)
	}
	return copyTrip(t), nil
}

func (r *memoryRepo) filter(keep func(*models.Trip) bool) []*models.Trip {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []*models.Trip{}
	for _, t := range r.trips {
		if keep(t) {
			out = append(out, copyTrip(t))
		}
	}
	sort.Slice(out, func(i, j int) bool { return strings.Compare(out[i].ID.String(), out[j].ID.String()) < 0 })
	return out
}

func (r *memoryRepo) ListDueScheduledTrips(_ context.Context, before time.Time) ([]*models.Trip, error) {
	return r.filter(func(t *models.Trip) bool {
		return t.Status == models.TripStatusScheduled && t.FromDateTime != nil && t.FromDateTime.Before(before)
	}), nil
}

func (r *memoryRepo) ListTripsByCustomer(_ context.Context, customerID uuid.UUID) ([]*models.Trip, error) {
	return r.filter(func(t *models.Trip) bool { return t.CustomerID == customerID }), nil
}

func (r *memoryRepo) ListTripsByDriver(_ context.Context, driverID uuid.UUID) ([]*models.Trip, error) {
	return r.filter(func(t *models.Trip) bool { return t.DriverID != nil && *t.DriverID == driverID }), nil
}

func (r *memoryRepo) ListTripsByDateRange(_ context.Context, start, end time.Time) ([]*models.Trip, error) {
	return r.filter(func(t *models.Trip) bool {
		return t.FromDateTime != nil && !t.FromDateTime.Before(start) && !t.FromDateTime.After(end)
	}), nil
}

// nopGW drops every event
type nopGW struct{}

func (nopGW) PublishTripBooked(context.Context, *models.Trip) error        { return nil }
func (nopGW) PublishTripStatusChanged(context.Context, *models.Trip) error { return nil }
func (nopGW) PublishTripRated(context.Context, *models.Trip) error         { return nil }
