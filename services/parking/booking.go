package parking

import (
	"context"
	"time"

	"parksmart/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// paymentMethodCard is recorded on completed bookings. Payment capture itself
// happens outside this service.
const paymentMethodCard = "card"

func (svc *DefaultParkingService) logger() *zap.Logger {
	if svc.Logger != nil {
		return svc.Logger
	}
	return zap.L()
}

// Book reserves the spot and opens an active booking. The availability check
// and flip happen as one conditional write in the repository, so concurrent
// bookings of the same spot cannot both win.
func (svc *DefaultParkingService) Book(ctx context.Context, userID, spotID string) (*models.Booking, error) {
	claimed, err := svc.Spots.ClaimIfAvailable(ctx, spotID)
	if err != nil {
		return nil, RepositoryError{Op: "claim spot", Err: err}
	}
	if !claimed {
		return nil, SpotUnavailableError{SpotID: spotID}
	}

	spot, err := svc.Spots.GetByID(ctx, spotID)
	if err != nil {
		svc.logger().Warn("failed to load spot snapshot after claim",
			zap.String("spotId", spotID), zap.Error(err))
	}

	now := time.Now()
	booking := &models.Booking{
		ID:            uuid.New().String(),
		UserID:        userID,
		SpotID:        spotID,
		Status:        models.BookingStatusActive,
		StartTime:     now,
		EndTime:       nil,
		TotalCost:     0,
		PaymentMethod: "pending",
		CreatedAt:     now,
	}

	if err := svc.Bookings.Insert(ctx, booking); err != nil {
		// The spot is already flagged unavailable with no booking behind it;
		// roll the flag back rather than strand the spot.
		if relErr := svc.Spots.Release(ctx, spotID); relErr != nil {
			svc.logger().Error("failed to release spot after booking insert failure",
				zap.String("spotId", spotID), zap.Error(relErr))
		}
		return nil, RepositoryError{Op: "insert booking", Err: err}
	}

	booking.Spot = spot
	if svc.Sessions != nil {
		if err := svc.Sessions.SaveActiveBooking(ctx, userID, booking); err != nil {
			svc.logger().Warn("failed to cache active booking", zap.Error(err))
		}
	}

	svc.logger().Info("booking created",
		zap.String("bookingId", booking.ID),
		zap.String("userId", userID),
		zap.String("spotId", spotID))
	return booking, nil
}

// Finish completes an active booking, bills the elapsed time at the spot's
// hourly rate, and releases the spot.
func (svc *DefaultParkingService) Finish(ctx context.Context, bookingID string) (*models.Booking, error) {
	booking, err := svc.Bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, RepositoryError{Op: "fetch booking", Err: err}
	}
	if booking == nil {
		return nil, BookingNotFoundError{BookingID: bookingID}
	}
	if booking.Status != models.BookingStatusActive {
		return nil, InvalidStateError{BookingID: bookingID, Status: booking.Status}
	}

	spot, err := svc.Spots.GetByID(ctx, booking.SpotID)
	if err != nil {
		return nil, RepositoryError{Op: "fetch spot", Err: err}
	}
	var hourlyRate float64
	if spot != nil {
		hourlyRate = spot.Price
	}

	now := time.Now()
	cost := ComputeParkingCost(booking.StartTime, now, hourlyRate)

	completed, err := svc.Bookings.Complete(ctx, bookingID, now, cost.TotalCost, paymentMethodCard)
	if err != nil {
		return nil, RepositoryError{Op: "complete booking", Err: err}
	}
	if !completed {
		// Lost a race against another finish/cancel of the same booking.
		return nil, InvalidStateError{BookingID: bookingID, Status: models.BookingStatusCompleted}
	}

	if err := svc.Spots.Release(ctx, booking.SpotID); err != nil {
		svc.logger().Error("failed to release spot after finish",
			zap.String("spotId", booking.SpotID), zap.Error(err))
	}

	booking.Status = models.BookingStatusCompleted
	booking.EndTime = &now
	booking.TotalCost = cost.TotalCost
	booking.PaymentMethod = paymentMethodCard
	booking.Spot = spot

	if svc.Sessions != nil {
		if err := svc.Sessions.ClearActiveBooking(ctx, booking.UserID); err != nil {
			svc.logger().Warn("failed to clear cached booking", zap.Error(err))
		}
	}

	svc.logger().Info("booking completed",
		zap.String("bookingId", bookingID),
		zap.Float64("totalCost", cost.TotalCost),
		zap.Float64("billingHours", cost.BillingHours))
	return booking, nil
}

// Cancel marks the booking cancelled without billing and releases the spot.
// No status precondition: a terminal booking can be re-cancelled, overwriting
// its end time. That mirrors the upstream behavior and is recorded as a
// deliberate policy in DESIGN.md.
func (svc *DefaultParkingService) Cancel(ctx context.Context, bookingID string) (*models.Booking, error) {
	booking, err := svc.Bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, RepositoryError{Op: "fetch booking", Err: err}
	}
	if booking == nil {
		return nil, BookingNotFoundError{BookingID: bookingID}
	}

	now := time.Now()
	if err := svc.Bookings.Cancel(ctx, bookingID, now); err != nil {
		return nil, RepositoryError{Op: "cancel booking", Err: err}
	}
	if err := svc.Spots.Release(ctx, booking.SpotID); err != nil {
		svc.logger().Error("failed to release spot after cancel",
			zap.String("spotId", booking.SpotID), zap.Error(err))
	}

	booking.Status = models.BookingStatusCancelled
	booking.EndTime = &now

	if svc.Sessions != nil {
		if err := svc.Sessions.ClearActiveBooking(ctx, booking.UserID); err != nil {
			svc.logger().Warn("failed to clear cached booking", zap.Error(err))
		}
	}

	svc.logger().Info("booking cancelled", zap.String("bookingId", bookingID))
	return booking, nil
}
