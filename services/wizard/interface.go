package wizard

import (
	"context"
	"time"

	"go.uber.org/zap"

	catalogRepo "salonbook/database/repository/catalog"
	outletRepo "salonbook/database/repository/outlet"
	staffRepo "salonbook/database/repository/staff"
	"salonbook/models"
)

// WizardService drives a single-use, four-stage booking wizard:
// service selection, date/time selection, stylist selection,
// confirmation. Session state lives in the SessionStore between calls.
type WizardService interface {
	Start(ctx context.Context) (*StartResult, error)
	Get(ctx context.Context, sessionID string) (*View, error)
	ToggleService(ctx context.Context, sessionID, serviceID string) (*View, error)
	MonthGrid(ctx context.Context, sessionID string, year int, month time.Month) ([]models.CalendarDay, error)
	SelectDate(ctx context.Context, sessionID, date string) (*View, error)
	SelectTime(ctx context.Context, sessionID string, startMinute int) (*View, error)
	SelectStaff(ctx context.Context, sessionID, staffID string) (*View, error)
	Advance(ctx context.Context, sessionID string) (*View, error)
	Back(ctx context.Context, sessionID string) (*View, error)
	Submit(ctx context.Context, sessionID string) (*models.Booking, error)
	Cancel(ctx context.Context, sessionID string) error

	ListServices(ctx context.Context) ([]models.Service, error)
	ListStylists(ctx context.Context) ([]models.Staff, error)
	OutletHours(ctx context.Context) ([]models.WorkingHours, error)
}

// StartResult is returned when a new wizard session is created.
type StartResult struct {
	SessionID string           `json:"sessionId"`
	View      *View            `json:"view"`
	Services  []models.Service `json:"services"`
}

// View is the wizard state exposed to the caller after each action.
type View struct {
	SessionID        string              `json:"sessionId"`
	Stage            string              `json:"stage"`
	Direction        Direction           `json:"direction"`
	Draft            models.BookingDraft `json:"draft"`
	TotalDurationMin int                 `json:"totalDurationMin"`
	TotalPrice       float64             `json:"totalPrice"`
	Slots            []models.TimeSlot   `json:"slots,omitempty"`
	TimeCleared      bool                `json:"timeCleared,omitempty"` // a prior time selection was invalidated by this action
}

// DefaultWizardService implements WizardService.
type DefaultWizardService struct {
	Catalog   catalogRepo.ServiceRepository
	Staff     staffRepo.StaffRepository
	Outlet    outletRepo.OutletRepository
	Bookings  BusyIntervalSource
	Sessions  SessionStore
	Submitter SubmissionService
	Logger    *zap.Logger

	// StepMin is the slot granularity in minutes.
	StepMin int

	// Clock is injectable for tests; defaults to time.Now.
	Clock func() time.Time
}

func (s *DefaultWizardService) now() time.Time {
	if s.Clock != nil {
		return s.Clock()
	}
	return time.Now()
}

func (s *DefaultWizardService) view(session *WizardSession, timeCleared bool) *View {
	return &View{
		SessionID:        session.ID,
		Stage:            session.Stage.String(),
		Direction:        session.Direction,
		Draft:            session.Draft,
		TotalDurationMin: session.Draft.TotalDurationMin(),
		TotalPrice:       session.Draft.TotalPrice(),
		Slots:            session.Slots,
		TimeCleared:      timeCleared,
	}
}
