package models

// BookingDraft holds the customer's in-progress wizard selections.
// It lives only inside a wizard session and is discarded after a
// successful submission or session expiry.
type BookingDraft struct {
	SelectedServices []Service    `json:"selectedServices"` // unique by ID, selection order preserved for display
	SelectedDate     *CalendarDay `json:"selectedDate,omitempty"`
	SelectedTime     *TimeSlot    `json:"selectedTime,omitempty"`
	SelectedStaff    *Staff       `json:"selectedStaff,omitempty"`
}

// TotalDurationMin is the aggregate duration of the selected services.
// This value, not a constant, drives slot spacing and availability.
func (d *BookingDraft) TotalDurationMin() int {
	total := 0
	for _, svc := range d.SelectedServices {
		total += svc.DurationMin
	}
	return total
}

// TotalPrice sums the selected services' prices.
func (d *BookingDraft) TotalPrice() float64 {
	total := 0.0
	for _, svc := range d.SelectedServices {
		total += svc.Price
	}
	return total
}

// HasService reports whether a service is already selected.
func (d *BookingDraft) HasService(serviceID string) bool {
	for _, svc := range d.SelectedServices {
		if svc.ID == serviceID {
			return true
		}
	}
	return false
}
