// File: services/wizard/wizard.go
package wizard

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"salonbook/models"
	"salonbook/services/scheduling"
)

const dateLayout = "2006-01-02"

// StylistRole filters the staff roster to bookable stylists.
const StylistRole = "stylist"

// BusyIntervalSource feeds existing bookings into slot availability.
type BusyIntervalSource interface {
	ListForStaffOnDate(ctx context.Context, staffID, date string) ([]models.Booking, error)
}

// Start creates a fresh single-use wizard session at the service
// selection stage and returns it together with the bookable services.
func (s *DefaultWizardService) Start(ctx context.Context) (*StartResult, error) {
	services, err := s.Catalog.ListActive(ctx)
	if err != nil {
		s.Logger.Error("failed to list active services", zap.Error(err))
		return nil, fmt.Errorf("failed to list active services: %w", err)
	}

	session := &WizardSession{
		ID:        uuid.New().String(),
		Stage:     StageServices,
		Direction: DirectionForward,
		CreatedAt: s.now(),
	}
	if err := s.Sessions.Save(ctx, session); err != nil {
		s.Logger.Error("failed to store wizard session", zap.Error(err))
		return nil, fmt.Errorf("failed to store wizard session: %w", err)
	}

	s.Logger.Info("wizard session started", zap.String("sessionId", session.ID))
	return &StartResult{
		SessionID: session.ID,
		View:      s.view(session, false),
		Services:  services,
	}, nil
}

// Get returns the current wizard state.
func (s *DefaultWizardService) Get(ctx context.Context, sessionID string) (*View, error) {
	session, err := s.Sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return s.view(session, false), nil
}

// loadMutable fetches a session for an action that changes it. Actions
// are refused while a submission is in flight.
func (s *DefaultWizardService) loadMutable(ctx context.Context, sessionID string) (*WizardSession, error) {
	session, err := s.Sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Submitting {
		return nil, ErrSubmissionInFlight
	}
	return session, nil
}

func (s *DefaultWizardService) weeklyHours(ctx context.Context) (models.WeeklyHours, error) {
	records, err := s.Outlet.GetWorkingHours(ctx)
	if err != nil {
		s.Logger.Error("failed to load outlet working hours", zap.Error(err))
		return nil, fmt.Errorf("failed to load outlet working hours: %w", err)
	}
	week, err := models.BuildWeeklyHours(records)
	if err != nil {
		return nil, &scheduling.ConfigError{Reason: err.Error()}
	}
	return week, nil
}

// ToggleService adds or removes a service from the draft. The slot
// sequence is invalidated and regenerated because slot boundaries shift
// with the aggregate duration.
func (s *DefaultWizardService) ToggleService(ctx context.Context, sessionID, serviceID string) (*View, error) {
	session, err := s.loadMutable(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	services, err := s.Catalog.GetByIDs(ctx, []string{serviceID})
	if err != nil {
		s.Logger.Error("failed to fetch service", zap.String("serviceId", serviceID), zap.Error(err))
		return nil, fmt.Errorf("failed to fetch service: %w", err)
	}
	if len(services) == 0 {
		return nil, refuse(session.Stage, "unknown service %q", serviceID)
	}
	svc := services[0]
	if !svc.Active {
		return nil, refuse(session.Stage, "service %q is no longer bookable", serviceID)
	}
	if err := models.ValidateService(svc); err != nil {
		return nil, &scheduling.ConfigError{Reason: fmt.Sprintf("service %q fails catalog integrity: %v", svc.ID, err)}
	}

	week, err := s.weeklyHours(ctx)
	if err != nil {
		return nil, err
	}

	timeCleared := session.toggleService(svc, week)
	if err := s.Sessions.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to store wizard session: %w", err)
	}

	if session.Draft.SelectedDate != nil && session.Draft.TotalDurationMin() > 0 {
		session, err = s.attachSlots(ctx, session, week)
		if err != nil {
			return nil, err
		}
	}
	return s.view(session, timeCleared), nil
}

// MonthGrid returns the 42-day calendar for the viewed month, clamped so
// the view is never anchored before the present month.
func (s *DefaultWizardService) MonthGrid(ctx context.Context, sessionID string, year int, month time.Month) ([]models.CalendarDay, error) {
	if _, err := s.Sessions.Get(ctx, sessionID); err != nil {
		return nil, err
	}
	week, err := s.weeklyHours(ctx)
	if err != nil {
		return nil, err
	}
	return scheduling.BuildMonthGrid(year, month, s.now(), week), nil
}

// SelectDate records the chosen day and computes its slot sequence for
// the draft's aggregate duration. The previously selected time is
// always cleared.
func (s *DefaultWizardService) SelectDate(ctx context.Context, sessionID, date string) (*View, error) {
	session, err := s.loadMutable(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	parsed, err := time.ParseInLocation(dateLayout, date, s.now().Location())
	if err != nil {
		return nil, refuse(session.Stage, "invalid date %q", date)
	}

	week, err := s.weeklyHours(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	hours, configured := week[parsed.Weekday()]
	day := models.CalendarDay{
		Date:           parsed,
		IsOpen:         configured && hours.IsOpen && !parsed.Before(today),
		IsToday:        parsed.Equal(today),
		IsCurrentMonth: true,
	}
	if !day.IsOpen {
		return nil, refuse(session.Stage, "day %s is not open for booking", date)
	}

	session.selectDate(day)
	if err := s.Sessions.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to store wizard session: %w", err)
	}

	if session.Draft.TotalDurationMin() > 0 {
		session, err = s.attachSlots(ctx, session, week)
		if err != nil {
			return nil, err
		}
	}
	return s.view(session, false), nil
}

// SelectTime records a slot picked from the current sequence.
func (s *DefaultWizardService) SelectTime(ctx context.Context, sessionID string, startMinute int) (*View, error) {
	session, err := s.loadMutable(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Draft.SelectedDate == nil {
		return nil, refuse(session.Stage, "select a date before a time")
	}
	if session.Draft.TotalDurationMin() <= 0 {
		return nil, refuse(session.Stage, "select services before a time")
	}

	for _, slot := range session.Slots {
		if slot.Start != startMinute {
			continue
		}
		if !slot.Available {
			return nil, refuse(session.Stage, "slot %s is unavailable", slot.Clock)
		}
		session.selectTime(slot)
		if err := s.Sessions.Save(ctx, session); err != nil {
			return nil, fmt.Errorf("failed to store wizard session: %w", err)
		}
		return s.view(session, false), nil
	}
	return nil, refuse(session.Stage, "start time %d is not in the current slot sequence", startMinute)
}

// SelectStaff records the chosen stylist. Existing service, date, and
// time selections survive; availability is recomputed against the
// stylist's bookings.
func (s *DefaultWizardService) SelectStaff(ctx context.Context, sessionID, staffID string) (*View, error) {
	session, err := s.loadMutable(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	member, err := s.Staff.GetByID(ctx, staffID)
	if err != nil {
		return nil, refuse(session.Stage, "unknown stylist %q", staffID)
	}

	session.selectStaff(*member)
	if err := s.Sessions.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to store wizard session: %w", err)
	}

	if session.Draft.SelectedDate != nil && session.Draft.TotalDurationMin() > 0 {
		week, err := s.weeklyHours(ctx)
		if err != nil {
			return nil, err
		}
		session, err = s.attachSlots(ctx, session, week)
		if err != nil {
			return nil, err
		}
	}
	return s.view(session, false), nil
}

// Advance moves the wizard forward when the current stage's guard holds.
func (s *DefaultWizardService) Advance(ctx context.Context, sessionID string) (*View, error) {
	session, err := s.loadMutable(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if err := session.Advance(); err != nil {
		return nil, err
	}
	if err := s.Sessions.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to store wizard session: %w", err)
	}
	return s.view(session, false), nil
}

// Back moves the wizard one stage backward without clearing selections.
func (s *DefaultWizardService) Back(ctx context.Context, sessionID string) (*View, error) {
	session, err := s.loadMutable(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if err := session.Back(); err != nil {
		return nil, err
	}
	if err := s.Sessions.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to store wizard session: %w", err)
	}
	return s.view(session, false), nil
}

// Cancel abandons the wizard and discards its draft.
func (s *DefaultWizardService) Cancel(ctx context.Context, sessionID string) error {
	if err := s.Sessions.Delete(ctx, sessionID); err != nil {
		s.Logger.Error("failed to delete wizard session", zap.String("sessionId", sessionID), zap.Error(err))
		return fmt.Errorf("failed to delete wizard session: %w", err)
	}
	return nil
}

// ListServices returns the bookable service catalog.
func (s *DefaultWizardService) ListServices(ctx context.Context) ([]models.Service, error) {
	return s.Catalog.ListActive(ctx)
}

// ListStylists returns the bookable staff roster.
func (s *DefaultWizardService) ListStylists(ctx context.Context) ([]models.Staff, error) {
	return s.Staff.ListByRole(ctx, StylistRole)
}

// OutletHours returns the outlet's weekly operating-hours configuration.
func (s *DefaultWizardService) OutletHours(ctx context.Context) ([]models.WorkingHours, error) {
	return s.Outlet.GetWorkingHours(ctx)
}

// computeSlots generates the slot sequence for the session's current
// date, aggregate duration, and stylist (whose existing bookings become
// busy intervals). Without a stylist chosen, slots default to available.
func (s *DefaultWizardService) computeSlots(ctx context.Context, session *WizardSession, week models.WeeklyHours) ([]models.TimeSlot, error) {
	day := session.Draft.SelectedDate
	hours, configured := week[day.Date.Weekday()]
	if !configured {
		return nil, &scheduling.ConfigError{Reason: fmt.Sprintf("no working hours configured for %s", day.Date.Weekday())}
	}

	var busy []models.Interval
	if session.Draft.SelectedStaff != nil {
		bookings, err := s.Bookings.ListForStaffOnDate(ctx, session.Draft.SelectedStaff.ID, day.Date.Format(dateLayout))
		if err != nil {
			s.Logger.Error("failed to load existing bookings", zap.Error(err))
			return nil, fmt.Errorf("failed to load existing bookings: %w", err)
		}
		for _, b := range bookings {
			busy = append(busy, models.Interval{Start: b.StartMinute, End: b.EndMinute})
		}
	}

	return scheduling.BuildTimeSlots(*day, hours, session.Draft.TotalDurationMin(), s.StepMin, busy, s.now())
}

// attachSlots computes a fresh slot sequence and attaches it only if
// the session has not been mutated since it was read: a stale
// generation pass never overwrites newer selections.
func (s *DefaultWizardService) attachSlots(ctx context.Context, session *WizardSession, week models.WeeklyHours) (*WizardSession, error) {
	rev := session.Revision
	slots, err := s.computeSlots(ctx, session, week)
	if err != nil {
		return nil, err
	}

	latest, err := s.Sessions.Get(ctx, session.ID)
	if err != nil {
		return nil, err
	}
	if latest.Revision != rev {
		s.Logger.Debug("discarding stale slot sequence",
			zap.String("sessionId", session.ID),
			zap.Int64("computedFor", rev),
			zap.Int64("current", latest.Revision))
		return latest, nil
	}

	latest.Slots = slots
	if err := s.Sessions.Save(ctx, latest); err != nil {
		return nil, fmt.Errorf("failed to store wizard session: %w", err)
	}
	return latest, nil
}
