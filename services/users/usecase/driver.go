package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/piresc/cabbooking/internal/pkg/logger"
	"github.com/piresc/cabbooking/internal/pkg/models"
	"github.com/piresc/cabbooking/internal/utils"
)

func isNotFound(err error) bool {
	return errors.Is(err, models.ErrNotFound)
}

// UpdateDriverLocation records the driver's last known position
func (uc *UserUC) UpdateDriverLocation(ctx context.Context, driverID uuid.UUID, req models.DriverLocationRequest) (*models.Driver, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	hash := utils.EncodeLocation(utils.GeoPoint{Latitude: req.Latitude, Longitude: req.Longitude}, utils.DefaultGeohashPrecision)
	driver, err := uc.userRepo.UpdateDriverLocation(ctx, driverID, req.Latitude, req.Longitude, hash)
	if err != nil {
		return nil, err
	}

	logger.DebugCtx(ctx, "Driver location updated",
		logger.String("driver_id", driverID.String()),
		logger.String("geohash", hash))
	return driver, nil
}

// RegisterCab attaches a cab to the driver, replacing the details of an
// existing one
func (uc *UserUC) RegisterCab(ctx context.Context, driverID uuid.UUID, req models.CabRequest) (*models.Cab, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	user, err := uc.userRepo.GetUserByID(ctx, driverID)
	if err != nil {
		return nil, err
	}
	if user.Role != models.RoleDriver {
		return nil, fmt.Errorf("%w: only drivers can register a cab", models.ErrForbidden)
	}

	cab := &models.Cab{
		DriverID:    driverID,
		CarType:     strings.ToLower(strings.TrimSpace(req.CarType)),
		PlateNumber: strings.ToUpper(strings.TrimSpace(req.PlateNumber)),
		PerKmRate:   req.PerKmRate,
		IsAvailable: true,
	}
	if err := uc.userRepo.UpsertCab(ctx, cab); err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "Cab registered",
		logger.String("driver_id", driverID.String()),
		logger.String("cab_id", cab.ID.String()),
		logger.String("car_type", cab.CarType),
		logger.Float64("per_km_rate", cab.PerKmRate))
	return cab, nil
}

// SetDriverVerified sets the admin-controlled verification flag. Only
// verified drivers are matched to trips.
func (uc *UserUC) SetDriverVerified(ctx context.Context, driverID uuid.UUID, verified bool) (*models.Driver, error) {
	driver, err := uc.userRepo.SetDriverVerified(ctx, driverID, verified)
	if err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "Driver verification changed",
		logger.String("driver_id", driverID.String()),
		logger.Bool("verified", verified))

	if err := uc.userGW.PublishDriverVerified(ctx, driver); err != nil {
		logger.WarnCtx(ctx, "Failed to publish driver verification event",
			logger.String("driver_id", driverID.String()),
			logger.Err(err))
	}
	return driver, nil
}
