// File: services/wizard/state.go
package wizard

// Stage is one step of the four-stage booking wizard, plus the terminal
// Submitted state. Stages are strictly ordered.
type Stage int

const (
	StageServices Stage = iota
	StageDateTime
	StageStylist
	StageConfirm
	StageSubmitted
)

func (s Stage) String() string {
	switch s {
	case StageServices:
		return "service_selection"
	case StageDateTime:
		return "datetime_selection"
	case StageStylist:
		return "stylist_selection"
	case StageConfirm:
		return "confirmation"
	case StageSubmitted:
		return "submitted"
	default:
		return "unknown"
	}
}

// Direction indicates which way the wizard last moved. Presentation
// only: it has no effect on transition legality.
type Direction string

const (
	DirectionForward  Direction = "forward"
	DirectionBackward Direction = "backward"
)

// canAdvance checks the current stage's forward guard against the draft.
func (s *WizardSession) canAdvance() error {
	switch s.Stage {
	case StageServices:
		if len(s.Draft.SelectedServices) == 0 {
			return refuse(s.Stage, "select at least one service")
		}
	case StageDateTime:
		if s.Draft.SelectedDate == nil {
			return refuse(s.Stage, "select a date")
		}
		if s.Draft.SelectedTime == nil {
			return refuse(s.Stage, "select a time slot")
		}
	case StageStylist:
		if s.Draft.SelectedStaff == nil {
			return refuse(s.Stage, "select a stylist")
		}
	case StageConfirm:
		return refuse(s.Stage, "confirmation is finalized by submit, not advance")
	case StageSubmitted:
		return refuse(s.Stage, "wizard already submitted")
	}
	return nil
}

// Advance moves the wizard one stage forward when the current stage's
// precondition holds.
func (s *WizardSession) Advance() error {
	if err := s.canAdvance(); err != nil {
		return err
	}
	s.Stage++
	s.Direction = DirectionForward
	return nil
}

// Back moves one stage backward. Always permitted between stages and
// never clears selections already made.
func (s *WizardSession) Back() error {
	switch s.Stage {
	case StageServices:
		return refuse(s.Stage, "already at the first stage")
	case StageSubmitted:
		return refuse(s.Stage, "wizard already submitted")
	}
	s.Stage--
	s.Direction = DirectionBackward
	return nil
}
