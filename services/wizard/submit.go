// File: services/wizard/submit.go
package wizard

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	bookingRepo "salonbook/database/repository/booking"
	"salonbook/models"
)

// SubmissionService is the booking-creation boundary. The wizard treats
// it as opaque: any failure leaves the wizard in a retryable
// Confirmation state.
type SubmissionService interface {
	CreateBooking(ctx context.Context, req models.BookingRequest) (*models.Booking, error)
}

// MongoSubmissionService persists confirmed bookings after a final
// conflict re-check, so a slot taken between selection and submission
// surfaces as a retryable failure instead of a double booking.
type MongoSubmissionService struct {
	Bookings bookingRepo.BookingRepository
	Logger   *zap.Logger
}

func (s *MongoSubmissionService) CreateBooking(ctx context.Context, req models.BookingRequest) (*models.Booking, error) {
	existing, err := s.Bookings.ListForStaffOnDate(ctx, req.StaffID, req.Date)
	if err != nil {
		return nil, &SubmissionError{Code: SubmissionCodePersistence, Err: err}
	}

	end := req.StartMinute + req.DurationMin
	for _, b := range existing {
		occupied := models.Interval{Start: b.StartMinute, End: b.EndMinute}
		if occupied.Overlaps(req.StartMinute, end) {
			return nil, &SubmissionError{
				Code: SubmissionCodeSlotTaken,
				Err:  fmt.Errorf("slot at %s on %s already booked", models.MinuteClock(req.StartMinute), req.Date),
			}
		}
	}

	booking := &models.Booking{
		ID:          uuid.New().String(),
		ServiceIDs:  req.ServiceIDs,
		StaffID:     req.StaffID,
		Date:        req.Date,
		StartMinute: req.StartMinute,
		EndMinute:   end,
		TotalPrice:  req.TotalPrice,
		DurationMin: req.DurationMin,
		Status:      models.BookingStatusConfirmed,
		CreatedAt:   time.Now(),
	}
	if err := s.Bookings.Create(ctx, booking); err != nil {
		return nil, &SubmissionError{Code: SubmissionCodePersistence, Err: err}
	}

	s.Logger.Info("booking created",
		zap.String("bookingId", booking.ID),
		zap.String("staffId", booking.StaffID),
		zap.String("date", booking.Date),
		zap.String("start", models.MinuteClock(booking.StartMinute)))
	return booking, nil
}

// Submit finalizes the wizard from the Confirmation stage. Re-entrant
// calls are refused while a submission is in flight. On success the
// session is deleted (wizards are single-use per booking attempt); on
// any failure the wizard stays in Confirmation and the error is
// retryable with the unchanged draft.
func (s *DefaultWizardService) Submit(ctx context.Context, sessionID string) (*models.Booking, error) {
	session, err := s.Sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Submitting {
		return nil, ErrSubmissionInFlight
	}
	if session.Stage != StageConfirm {
		return nil, refuse(session.Stage, "submit is only allowed from confirmation")
	}

	// Mutations are still allowed at confirmation and can invalidate
	// earlier selections without demoting the stage, so the draft is
	// re-validated here instead of trusting the stage alone.
	draft := &session.Draft
	if len(draft.SelectedServices) == 0 || draft.TotalDurationMin() <= 0 {
		return nil, refuse(session.Stage, "draft has no services selected")
	}
	if draft.SelectedDate == nil || draft.SelectedTime == nil {
		return nil, refuse(session.Stage, "draft is missing a date or time")
	}
	if draft.SelectedStaff == nil {
		return nil, refuse(session.Stage, "draft is missing a stylist")
	}

	session.Submitting = true
	if err := s.Sessions.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to store wizard session: %w", err)
	}

	serviceIDs := make([]string, 0, len(draft.SelectedServices))
	for _, svc := range draft.SelectedServices {
		serviceIDs = append(serviceIDs, svc.ID)
	}
	req := models.BookingRequest{
		ServiceIDs:  serviceIDs,
		StaffID:     draft.SelectedStaff.ID,
		Date:        draft.SelectedDate.Date.Format(dateLayout),
		StartMinute: draft.SelectedTime.Start,
		DurationMin: draft.TotalDurationMin(),
		TotalPrice:  draft.TotalPrice(),
	}

	booking, err := s.Submitter.CreateBooking(ctx, req)
	if err != nil {
		s.Logger.Warn("booking submission failed",
			zap.String("sessionId", sessionID),
			zap.Error(err))
		s.clearSubmitting(ctx, sessionID)
		if _, ok := err.(*SubmissionError); ok {
			return nil, err
		}
		return nil, &SubmissionError{Code: SubmissionCodePersistence, Err: err}
	}

	// Terminal: the draft is discarded with the session.
	if err := s.Sessions.Delete(ctx, sessionID); err != nil {
		s.Logger.Warn("failed to delete submitted wizard session",
			zap.String("sessionId", sessionID), zap.Error(err))
	}
	s.Logger.Info("wizard submitted",
		zap.String("sessionId", sessionID),
		zap.String("bookingId", booking.ID))
	return booking, nil
}

// clearSubmitting returns a failed submission to a retryable state.
func (s *DefaultWizardService) clearSubmitting(ctx context.Context, sessionID string) {
	session, err := s.Sessions.Get(ctx, sessionID)
	if err != nil {
		s.Logger.Error("failed to reload session after submission failure",
			zap.String("sessionId", sessionID), zap.Error(err))
		return
	}
	session.Submitting = false
	if err := s.Sessions.Save(ctx, session); err != nil {
		s.Logger.Error("failed to clear submitting flag",
			zap.String("sessionId", sessionID), zap.Error(err))
	}
}
