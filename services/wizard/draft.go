// File: services/wizard/draft.go
package wizard

import (
	"salonbook/models"
	"salonbook/services/scheduling"
)

// toggleService adds the service to the draft if absent, removes it if
// present. The slot sequence is always invalidated (slot boundaries
// shift with the aggregate duration), and the selected time is cleared
// when the new aggregate no longer fits that slot's remaining window.
// Returns whether the selected time was cleared.
func (s *WizardSession) toggleService(svc models.Service, week models.WeeklyHours) bool {
	if s.Draft.HasService(svc.ID) {
		kept := s.Draft.SelectedServices[:0]
		for _, selected := range s.Draft.SelectedServices {
			if selected.ID != svc.ID {
				kept = append(kept, selected)
			}
		}
		s.Draft.SelectedServices = kept
	} else {
		s.Draft.SelectedServices = append(s.Draft.SelectedServices, svc)
	}

	s.Slots = nil
	s.Revision++

	if s.Draft.SelectedDate == nil || s.Draft.SelectedTime == nil {
		return false
	}
	hours, ok := week[s.Draft.SelectedDate.Date.Weekday()]
	if ok && scheduling.FitsWindow(s.Draft.SelectedTime.Start, s.Draft.TotalDurationMin(), hours) {
		return false
	}
	s.Draft.SelectedTime = nil
	return true
}

// selectDate records the chosen day and clears the previously selected
// time: a slot is only meaningful relative to the date it was computed
// for. Services and stylist survive.
func (s *WizardSession) selectDate(day models.CalendarDay) {
	s.Draft.SelectedDate = &day
	s.Draft.SelectedTime = nil
	s.Slots = nil
	s.Revision++
}

// selectTime records a slot chosen from the current sequence.
func (s *WizardSession) selectTime(slot models.TimeSlot) {
	s.Draft.SelectedTime = &slot
	s.Revision++
}

// selectStaff records the chosen stylist without clearing any other
// selection.
func (s *WizardSession) selectStaff(member models.Staff) {
	s.Draft.SelectedStaff = &member
	s.Revision++
}
