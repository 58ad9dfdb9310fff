package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/rockside/internal/client/device"
	"github.com/dmitrijs2005/rockside/internal/client/models"
	"github.com/dmitrijs2005/rockside/internal/metrics"
)

// Location status lines shown on the questionnaire.
const (
	LocationWaiting = "Waiting..."
	LocationDenied  = "Permission to access location was denied"
)

// LocationResult is the outcome of one acquisition. Location is nil unless
// a fix was obtained.
type LocationResult struct {
	Location *models.Location
	Status   string
}

// LocationService asks for location permission and, when granted, takes a
// single position fix. There is no retry or polling.
type LocationService struct {
	locator device.Locator
	timeout time.Duration
	opts    options
}

// NewLocationService bounds each position fix by timeout; zero means no
// bound beyond the caller's context. Time spent answering the permission
// question does not count against it.
func NewLocationService(locator device.Locator, timeout time.Duration, opts ...Option) *LocationService {
	return &LocationService{locator: locator, timeout: timeout, opts: buildOptions(opts)}
}

// Acquire returns a denied status (and nil error) when permission is
// refused. On any other failure the status stays LocationWaiting and the
// error is returned.
func (s *LocationService) Acquire(ctx context.Context) (LocationResult, error) {
	waiting := LocationResult{Status: LocationWaiting}

	perm, err := s.locator.RequestPermission(ctx)
	if err != nil {
		s.opts.observer.ObserveLocation(metrics.OutcomeError)
		return waiting, fmt.Errorf("location permission: %w", err)
	}
	if perm != device.PermissionGranted {
		s.opts.observer.ObserveLocation(metrics.OutcomeDenied)
		s.opts.logger.Info(ctx, "location permission not granted", "permission", perm)
		return LocationResult{Status: LocationDenied}, nil
	}

	fixCtx := ctx
	if s.timeout > 0 {
		var cancel context.CancelFunc
		fixCtx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	loc, err := s.locator.CurrentPosition(fixCtx)
	if err != nil {
		if errors.Is(err, device.ErrPermissionDenied) {
			s.opts.observer.ObserveLocation(metrics.OutcomeDenied)
			return LocationResult{Status: LocationDenied}, nil
		}
		s.opts.observer.ObserveLocation(metrics.OutcomeError)
		return waiting, fmt.Errorf("current position: %w", err)
	}

	s.opts.observer.ObserveLocation(metrics.OutcomeOK)
	s.opts.logger.Debug(ctx, "location acquired", "lat", loc.Lat, "lon", loc.Lon)
	return LocationResult{Location: &loc, Status: loc.String()}, nil
}
